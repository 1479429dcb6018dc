package sfv

// Member is one member of a List or one value of a Dictionary: either
// an Item or an InnerList. It is a closed set; nothing else
// implements it.
type Member interface {
	member()
}

// Item is a bare value together with its parameters. Params may be
// nil, which means no parameters; the parser leaves it nil unless the
// input carried at least one ";".
type Item struct {
	Value  BareItem
	Params *Parameters
}

func (Item) member() {}

// Param returns the bare value of the named parameter and whether it
// was present.
func (i Item) Param(key string) (BareItem, bool) {
	return i.Params.Get(key)
}

// InnerList is a parenthesized sequence of items together with
// parameters attached to the list as a whole. An inner list may be
// empty.
type InnerList struct {
	Items  []Item
	Params *Parameters
}

func (InnerList) member() {}

// Param returns the bare value of the named parameter on the inner
// list itself and whether it was present.
func (l InnerList) Param(key string) (BareItem, bool) {
	return l.Params.Get(key)
}

// List is a top-level ordered sequence of items and inner lists. An
// empty List serializes to the empty string, which on the wire means
// the header is simply not sent.
type List []Member

// Dictionary is a top-level ordered mapping from key to Item or
// InnerList. As with Parameters, iteration order is insertion order
// and setting an existing key discards the earlier entry and appends
// at the end: the wire's last occurrence of a key determines both the
// value and the position. An empty Dictionary serializes to the empty
// string, meaning the header is not sent.
type Dictionary struct {
	keys    []string
	members map[string]Member
}

// NewDictionary returns a new, empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		members: map[string]Member{},
	}
}

// Len returns the number of members.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the member keys in order. The returned slice is a
// copy; modifying it does not affect the dictionary.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	ks := make([]string, len(d.keys))
	copy(ks, d.keys)
	return ks
}

// Get returns the member for the given key and whether it was
// present.
func (d *Dictionary) Get(key string) (Member, bool) {
	if d == nil {
		return nil, false
	}
	m, ok := d.members[key]
	return m, ok
}

// Set adds or replaces the member for the given key. A replaced key
// moves to the end of the iteration order.
func (d *Dictionary) Set(key string, member Member) {
	if _, ok := d.members[key]; ok {
		d.remove(key)
	}
	d.keys = append(d.keys, key)
	d.members[key] = member
}

// Delete removes the given key, if present.
func (d *Dictionary) Delete(key string) {
	if d == nil {
		return
	}
	if _, ok := d.members[key]; ok {
		d.remove(key)
		delete(d.members, key)
	}
}

func (d *Dictionary) remove(key string) {
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}
