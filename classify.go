package infix

// isNumChar reports whether c can appear in the mantissa of a numeric
// literal.
func isNumChar(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

// isIdentStart reports whether c can start a variable or function name.
func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isIdentChar reports whether c can continue a variable or function name.
func isIdentChar(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}

// validIdent reports whether name is a legal variable or formula name: a
// letter or underscore followed by letters, digits, or underscores.
func validIdent(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentChar(name[i]) {
			return false
		}
	}
	return true
}
