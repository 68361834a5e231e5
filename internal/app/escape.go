package app

import "strings"

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// unescape interprets backslash escapes in a FORMAT operand: the C
// single-character escapes, \NNN octal (one to three digits) and \xHH hex
// (one or two digits). Unknown escapes are kept as written.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		c = s[i]
		if r, ok := simpleEscapes[c]; ok {
			sb.WriteByte(r)
			continue
		}
		switch {
		case isOctal(c):
			v, n := 0, 0
			for n < 3 && i < len(s) && isOctal(s[i]) {
				v = v*8 + int(s[i]-'0')
				i++
				n++
			}
			i--
			sb.WriteByte(byte(v))
		case c == 'x' && i+1 < len(s) && hexVal(s[i+1]) >= 0:
			v, n := 0, 0
			for n < 2 && i+1 < len(s) && hexVal(s[i+1]) >= 0 {
				v = v*16 + hexVal(s[i+1])
				i++
				n++
			}
			sb.WriteByte(byte(v))
		default:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

func hexVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
