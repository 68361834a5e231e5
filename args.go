package cfmt

import (
	"fmt"
	"reflect"
	"unsafe"
)

// intBits returns the two's complement bits of an integer argument, sign
// extended to 64 bits.
func intBits(arg any) (uint64, bool) {
	switch v := arg.(type) {
	case int:
		return uint64(v), true
	case int8:
		return uint64(v), true
	case int16:
		return uint64(v), true
	case int32:
		return uint64(v), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}

// signedArg narrows bits to the C type selected by the length modifier.
// Without a modifier the argument is an int (32 bits).
func signedArg(bits uint64, l Length) int64 {
	switch l {
	case LengthHH:
		return int64(int8(bits))
	case LengthH:
		return int64(int16(bits))
	case LengthNone:
		return int64(int32(bits))
	}
	return int64(bits)
}

func unsignedArg(bits uint64, l Length) uint64 {
	switch l {
	case LengthHH:
		return uint64(uint8(bits))
	case LengthH:
		return uint64(uint16(bits))
	case LengthNone:
		return uint64(uint32(bits))
	}
	return bits
}

func floatArg(arg any) (float64, bool) {
	switch v := arg.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// stringArg returns the text of a %s argument. A nil argument reports
// null.
func stringArg(arg any) (s string, null, ok bool) {
	switch v := arg.(type) {
	case nil:
		return "", true, true
	case string:
		return v, false, true
	case []byte:
		if v == nil {
			return "", true, true
		}
		return string(v), false, true
	case error:
		return v.Error(), false, true
	case fmt.Stringer:
		return v.String(), false, true
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() == reflect.String {
		return rv.String(), false, true
	}
	return "", false, false
}

func pointerArg(arg any) (uintptr, bool) {
	switch v := arg.(type) {
	case nil:
		return 0, true
	case unsafe.Pointer:
		return uintptr(v), true
	case uintptr:
		return v, true
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.Pointer(), true
	}
	if bits, ok := intBits(arg); ok {
		return uintptr(bits), true
	}
	return 0, false
}

// Append formats one argument per s and appends it to dst. Arguments
// implementing Converter are converted first. A mistyped argument appends
// the zero value's formatting and returns an error wrapping
// ErrArgumentType.
func (s Spec) Append(dst []byte, arg any) ([]byte, error) {
	e := newEngine(dst)
	err := e.format(s, arg)
	return e.buf, err
}

// format dispatches on the verb. It returns the first argument error; the
// output for a bad argument is that of the zero value.
func (e *engine) format(sp Spec, arg any) error {
	if c, ok := arg.(Converter); ok {
		v, err := c.Convert(sp.Verb)
		if err != nil {
			e.formatZero(sp)
			return fmt.Errorf("%w: %s: %w", ErrConvert, sp, err)
		}
		arg = v
	}

	switch sp.Verb {
	case '%':
		e.fmtPercent()
		return nil
	case 'd', 'i':
		bits, ok := intBits(arg)
		e.fmtInteger(sp, signedArg(bits, sp.Length))
		if !ok {
			return typeError(sp, arg)
		}
	case 'u', 'o', 'x', 'X':
		bits, ok := intBits(arg)
		e.fmtUnsigned(sp, unsignedArg(bits, sp.Length))
		if !ok {
			return typeError(sp, arg)
		}
	case 'c':
		bits, ok := intBits(arg)
		if sp.Length == LengthL {
			e.fmtRune(sp, rune(bits))
		} else {
			e.fmtChar(sp, byte(bits))
		}
		if !ok {
			return typeError(sp, arg)
		}
	case 's':
		s, null, ok := stringArg(arg)
		if null {
			e.fmtNull(sp)
		} else {
			e.fmtString(sp, s)
		}
		if !ok {
			return typeError(sp, arg)
		}
	case 'p':
		p, ok := pointerArg(arg)
		e.fmtPointer(sp, p)
		if !ok {
			return typeError(sp, arg)
		}
	case 'f', 'F':
		v, ok := floatArg(arg)
		e.fmtFloat(sp, v)
		if !ok {
			return typeError(sp, arg)
		}
	}
	return nil
}

// formatZero writes the output of a zero argument for sp.
func (e *engine) formatZero(sp Spec) {
	switch sp.Verb {
	case 's':
		e.fmtString(sp, "")
	case 'f', 'F':
		e.fmtFloat(sp, 0)
	default:
		_ = e.format(sp, 0)
	}
}

func typeError(sp Spec, arg any) error {
	return fmt.Errorf("%w: %s given %T", ErrArgumentType, sp, arg)
}
