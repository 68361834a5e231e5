package cfmt

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrArgumentType    = errors.New("wrong argument type")
	ErrConvert         = errors.New("cannot convert argument")
)

// Flags is the set of flag characters given in a directive.
type Flags uint8

const (
	FlagMinus Flags = 1 << iota // '-' left-justify
	FlagPlus                    // '+' sign on non-negative numbers
	FlagSpace                   // ' ' blank in place of a '+' sign
	FlagZero                    // '0' pad with zeros
	FlagHash                    // '#' alternate form
)

var flagChars = [...]struct {
	c byte
	f Flags
}{
	{'-', FlagMinus},
	{'+', FlagPlus},
	{' ', FlagSpace},
	{'0', FlagZero},
	{'#', FlagHash},
}

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// String returns the flag characters in canonical order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, fc := range flagChars {
		if f.Has(fc.f) {
			sb.WriteByte(fc.c)
		}
	}
	return sb.String()
}

// Length is a length modifier selecting the argument's integer width.
type Length uint8

const (
	LengthNone Length = iota
	LengthHH          // hh: char
	LengthH           // h: short
	LengthL           // l: long
	LengthLL          // ll: long long
	LengthJ           // j: intmax_t
	LengthZ           // z: size_t
	LengthT           // t: ptrdiff_t
	LengthBigL        // L: long double
)

var lengthNames = map[string]Length{
	"hh": LengthHH,
	"h":  LengthH,
	"l":  LengthL,
	"ll": LengthLL,
	"j":  LengthJ,
	"z":  LengthZ,
	"t":  LengthT,
	"L":  LengthBigL,
}

// String returns the modifier as written in a directive.
func (l Length) String() string {
	for name, v := range lengthNames {
		if v == l {
			return name
		}
	}
	return ""
}

// NoPrecision marks a Spec whose precision was not given.
const NoPrecision = -1

// MaxWidth caps width and precision values.
const MaxWidth = 1<<31 - 1

// Spec is one resolved conversion directive.
type Spec struct {
	Flags     Flags
	Width     int
	Precision int
	Length    Length
	Verb      byte
}

// HasPrecision reports whether a precision was given.
func (s Spec) HasPrecision() bool { return s.Precision >= 0 }

// String renders the directive back to its %-form.
func (s Spec) String() string {
	var sb strings.Builder
	sb.WriteByte('%')
	sb.WriteString(s.Flags.String())
	if s.Width > 0 {
		sb.WriteString(strconv.Itoa(s.Width))
	}
	if s.HasPrecision() {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(s.Precision))
	}
	sb.WriteString(s.Length.String())
	if s.Verb != 0 {
		sb.WriteByte(s.Verb)
	}
	return sb.String()
}

// padByte returns the byte used to fill the field. MINUS always wins over
// ZERO.
func (s Spec) padByte() byte {
	if s.Flags.Has(FlagZero) && !s.Flags.Has(FlagMinus) {
		return '0'
	}
	return ' '
}

var verbs = []byte{'d', 'i', 'u', 'o', 'x', 'X', 'c', 's', 'p', 'f', 'F', '%'}

// Verbs returns every supported conversion character.
func Verbs() []byte {
	out := make([]byte, len(verbs))
	copy(out, verbs)
	return out
}

// IsSupported reports whether c is a conversion character the engine
// formats. Other characters are copied through literally.
func IsSupported(c byte) bool {
	for _, v := range verbs {
		if v == c {
			return true
		}
	}
	return false
}

// Converter is checked on every argument before it is formatted. Convert
// returns the value to format for the given verb.
type Converter interface {
	Convert(verb byte) (any, error)
}

// Printer formats templates. The zero value formats exactly like the
// platform's C printf.
type Printer struct {
	// DisplayWidth measures %s and %c width and precision in terminal
	// columns instead of bytes.
	DisplayWidth bool

	// DefaultLength applies to directives written without a length
	// modifier. The zero value narrows integers to a 32-bit C int.
	DefaultLength Length
}

// Append formats according to format, appends the result to dst, and
// returns the extended buffer together with the number of arguments the
// template consumed. The error reports the first argument that was
// missing or of the wrong type; best-effort output is still appended.
func (p Printer) Append(dst []byte, format string, args ...any) ([]byte, int, error) {
	pr := newPrinter(p)
	pr.buf = dst
	pr.doPrintf(format, args)
	out, used, err := pr.buf, pr.argNum, pr.err
	pr.buf = nil
	pr.free()
	return out, used, err
}

// Fprintf formats according to format and writes to w. It returns the
// number of bytes written. If an argument is missing or of the wrong type,
// nothing is written and the error wraps ErrMissingArgument or
// ErrArgumentType.
func (p Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	pr := newPrinter(p)
	defer pr.free()
	pr.doPrintf(format, args)
	if pr.err != nil {
		return 0, pr.err
	}
	return w.Write(pr.buf)
}

// Fprintf formats according to format and writes to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return Printer{}.Fprintf(w, format, args...)
}

// Printf formats according to format and writes to standard output.
func Printf(format string, args ...any) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}

// Sprintf formats according to format and returns the result. Argument
// errors are ignored; a missing or mistyped argument formats as zero.
func Sprintf(format string, args ...any) string {
	return string(Appendf(nil, format, args...))
}

// Appendf formats according to format and appends the result to dst.
// Argument errors are ignored as in Sprintf.
func Appendf(dst []byte, format string, args ...any) []byte {
	out, _, _ := Printer{}.Append(dst, format, args...)
	return out
}

// Marshal formats according to format and returns the bytes.
func Marshal(format string, args ...any) ([]byte, error) {
	out, _, err := Printer{}.Append(nil, format, args...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
