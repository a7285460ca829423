package http1

func isLetter(c byte) bool {
	c |= 0x20
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isHeaderNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

// isVersionChar compares the char to the upper-cased expected one case-insensitively.
func isVersionChar(c, upper byte) bool {
	return c == upper || c == upper|0x20
}
