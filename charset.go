package sfv

// Character class predicates shared by the parser and the serializer.
// These encode the grammar's charsets exactly; both directions of the
// codec must agree on them or round-tripping breaks.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isLCAlpha(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isTokenStart matches the first character of a token.
func isTokenStart(c byte) bool {
	return isAlpha(c) || c == '*'
}

// isTokenChar matches characters after the first in a token: the
// HTTP tchar set plus ":" and "/".
func isTokenChar(c byte) bool {
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~', ':', '/':
		return true
	}
	return isAlpha(c) || isDigit(c)
}

// isKeyStart matches the first character of a parameter or dictionary
// key.
func isKeyStart(c byte) bool {
	return isLCAlpha(c) || c == '*'
}

// isKeyChar matches characters after the first in a parameter or
// dictionary key.
func isKeyChar(c byte) bool {
	switch c {
	case '_', '-', '.', '*':
		return true
	}
	return isLCAlpha(c) || isDigit(c)
}

// isPrintable matches the printable ASCII range that may appear raw
// inside strings and display strings.
func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// isLowerHex matches the lowercase hexadecimal digits used by display
// string escapes. Uppercase hex is a parse error there.
func isLowerHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f')
}

// unhex returns the value of a lowercase hex digit.
func unhex(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

// isBase64Char matches the standard base64 alphabet plus the padding
// character.
func isBase64Char(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '+' || c == '/' || c == '='
}

// ValidToken reports whether s can serialize as a Token. Callers
// producing fields from free-form text can use this to decide between
// a Token and a String.
func ValidToken(s string) bool {
	return validToken(s)
}

// ValidKey reports whether s can serve as a parameter or dictionary
// key.
func ValidKey(s string) bool {
	return validKey(s)
}

// validToken reports whether s is a legal token.
func validToken(s string) bool {
	if s == "" || !isTokenStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// validKey reports whether s is a legal parameter or dictionary key.
func validKey(s string) bool {
	if s == "" || !isKeyStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isKeyChar(s[i]) {
			return false
		}
	}
	return true
}
