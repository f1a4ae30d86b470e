package csvcodec

// fieldNeedsQuote reports whether a formatted field must be quoted: it
// contains the delimiter, the quote character or a line-break byte.
func fieldNeedsQuote(field []byte, delimiter, quote byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case delimiter, quote, '\n', '\r':
			return true
		}
	}
	return false
}

// appendField appends field to dst, quoted if structurally required or if
// forceQuote is set (empty non-null text fields, which must stay
// distinguishable from the null sentinel). Quote characters inside a quoted
// field are doubled.
func appendField(dst, field []byte, delimiter, quote byte, forceQuote bool) []byte {
	if !forceQuote && !fieldNeedsQuote(field, delimiter, quote) {
		return append(dst, field...)
	}
	dst = append(dst, quote)
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			dst = append(dst, field[start:i+1]...)
			dst = append(dst, quote)
			start = i + 1
		}
	}
	dst = append(dst, field[start:]...)
	return append(dst, quote)
}
