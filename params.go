package sfv

// Parameters is an ordered mapping from key to BareItem, attached to
// an item or an inner list. Iteration order is insertion order, kept
// explicitly rather than borrowed from Go's map semantics, because
// serialization must reproduce it exactly.
//
// Setting a key that is already present discards the earlier entry
// entirely: the key moves to the end with the new value. This is the
// same last-wins policy the parser applies to duplicate keys on the
// wire, so a Parameters value never reflects more than the final
// occurrence of a key.
//
// A nil *Parameters behaves as an empty, read-only parameter set. All
// read methods are nil-safe; Set requires a value from NewParameters.
type Parameters struct {
	keys   []string
	values map[string]BareItem
}

// NewParameters returns a new, empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{
		values: map[string]BareItem{},
	}
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the parameter keys in order. The returned slice is a
// copy; modifying it does not affect the parameter set.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}
	ks := make([]string, len(p.keys))
	copy(ks, p.keys)
	return ks
}

// Get returns the value for the given key and whether it was present.
func (p *Parameters) Get(key string) (BareItem, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Set adds or replaces the value for the given key. A replaced key
// moves to the end of the iteration order.
func (p *Parameters) Set(key string, value BareItem) {
	if _, ok := p.values[key]; ok {
		p.remove(key)
	}
	p.keys = append(p.keys, key)
	p.values[key] = value
}

// Delete removes the given key, if present.
func (p *Parameters) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; ok {
		p.remove(key)
		delete(p.values, key)
	}
}

func (p *Parameters) remove(key string) {
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the parameter order and lookup
// structure. The BareItem values themselves are shared, which is safe
// for every variant but Bytes; clone those yourself if you intend to
// mutate them.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return nil
	}
	ps := &Parameters{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]BareItem, len(p.values)),
	}
	copy(ps.keys, p.keys)
	for k, v := range p.values {
		ps.values[k] = v
	}
	return ps
}
