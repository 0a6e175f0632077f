package token

import "strconv"

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func asciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// numByte reports whether the byte at d[i] begins or extends a
// numeric run: a digit or '.', or a '-' immediately followed by one.
// A '-' followed by anything else is an operator, not a sign.
func numByte(d []byte, i int) bool {
	switch c := d[i]; {
	case asciiDigit(c), c == '.':
		return true
	case c == '-':
		return i+1 < len(d) && (asciiDigit(d[i+1]) || d[i+1] == '.')
	}
	return false
}

// checkNumber validates a numeric run before it is emitted. Runs like
// 1.2.3 or 2-3 scan as a single run but are not numbers.
func checkNumber(b []byte) error {
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return ErrNumber
	}
	return nil
}
