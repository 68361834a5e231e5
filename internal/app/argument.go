package app

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// argument is a command-line operand, parsed according to the verb that
// consumes it.
type argument string

func (a argument) Convert(verb byte) (any, error) {
	s := string(a)
	switch verb {
	case 'd', 'i':
		return parseInt(s)
	case 'u', 'o', 'x', 'X', 'p':
		return parseUint(s)
	case 'c':
		if s == "" {
			return byte(0), nil
		}
		return s[0], nil
	case 'f', 'F':
		if s == "" {
			return 0.0, nil
		}
		if c, ok := charConst(s); ok {
			return float64(c), nil
		}
		return strconv.ParseFloat(strings.TrimLeft(s, " \t"), 64)
	}
	return s, nil
}

// charConst reports the code of a leading-quote character constant such
// as 'A or "A.
func charConst(s string) (rune, bool) {
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return r, true
}

func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if c, ok := charConst(s); ok {
		return int64(c), nil
	}
	return strconv.ParseInt(strings.TrimLeft(s, " \t"), 0, 64)
}

// parseUint accepts negative operands and wraps them, as printf(1) does.
func parseUint(s string) (uint64, error) {
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, "-") {
		v, err := parseInt(s)
		return uint64(v), err
	}
	if s == "" {
		return 0, nil
	}
	if c, ok := charConst(s); ok {
		return uint64(c), nil
	}
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, 64)
}
