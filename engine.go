package cfmt

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// engine formats single conversions into buf. Each fmt method returns the
// number of bytes it appended.
type engine struct {
	buf     []byte
	s       scratch
	columns bool
}

// field is a formatted value split into the groups that surround the
// padding: head (sign and radix prefix), zeros, then body and str.
type field struct {
	head     string
	zeros    int
	body     []byte
	str      string
	cols     int
	measured bool
}

// size is the number of columns the field occupies before padding.
func (f field) size() int {
	if f.measured {
		return len(f.head) + f.zeros + f.cols
	}
	return len(f.head) + f.zeros + len(f.body) + len(f.str)
}

func (e *engine) put(b []byte)   { e.buf = append(e.buf, b...) }
func (e *engine) puts(s string)  { e.buf = append(e.buf, s...) }
func (e *engine) putByte(c byte) { e.buf = append(e.buf, c) }

func (e *engine) repeat(c byte, n int) {
	for n > 0 {
		p := e.s.padding(c, n)
		e.put(p)
		n -= len(p)
	}
}

func (e *engine) putField(f field) {
	e.puts(f.head)
	e.repeat('0', f.zeros)
	e.put(f.body)
	e.puts(f.str)
}

// justify writes f padded to sp.Width with pad byte c. Left-justified fields
// are always padded with spaces; zero fill goes between head and body.
func (e *engine) justify(sp Spec, c byte, f field) int {
	start := len(e.buf)
	n := sp.Width - f.size()
	switch {
	case n <= 0:
		e.putField(f)
	case sp.Flags.Has(FlagMinus):
		e.putField(f)
		e.repeat(' ', n)
	case c == '0':
		e.puts(f.head)
		e.repeat('0', n+f.zeros)
		e.put(f.body)
		e.puts(f.str)
	default:
		e.repeat(c, n)
		e.putField(f)
	}
	return len(e.buf) - start
}

func (e *engine) fmtChar(sp Spec, c byte) int {
	e.s.reset()
	e.s.prepend(c)
	return e.justify(sp, sp.padByte(), field{body: e.s.run()})
}

// fmtRune writes r as UTF-8; used for %lc.
func (e *engine) fmtRune(sp Spec, r rune) int {
	if r < utf8.RuneSelf {
		return e.fmtChar(sp, byte(r))
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	e.s.putBytes(tmp[:n])
	f := field{body: e.s.run()}
	if e.columns {
		f.cols, f.measured = runewidth.RuneWidth(r), true
	}
	return e.justify(sp, sp.padByte(), f)
}

// fmtString writes at most sp.Precision bytes of str.
func (e *engine) fmtString(sp Spec, str string) int {
	f := field{}
	if e.columns {
		if sp.HasPrecision() {
			str = runewidth.Truncate(str, sp.Precision, "")
		}
		f.cols, f.measured = runewidth.StringWidth(str), true
	} else if sp.HasPrecision() && sp.Precision < len(str) {
		str = str[:sp.Precision]
	}
	f.str = str
	return e.justify(sp, sp.padByte(), f)
}

// fmtNull writes the placeholder for a nil %s argument. Short precisions
// print nothing rather than a truncated placeholder.
func (e *engine) fmtNull(sp Spec) int {
	if sp.HasPrecision() && sp.Precision < len("(null)") {
		return e.justify(sp, sp.padByte(), field{})
	}
	return e.fmtString(sp, "(null)")
}

func (e *engine) fmtPercent() int {
	e.putByte('%')
	return 1
}

// signByte returns the character placed before a number: '-' for negative
// values, otherwise '+' or ' ' when requested, otherwise 0.
func signByte(sp Spec, neg bool) byte {
	switch {
	case neg:
		return '-'
	case sp.Flags.Has(FlagPlus):
		return '+'
	case sp.Flags.Has(FlagSpace):
		return ' '
	}
	return 0
}

func headOf(sign byte, prefix string) string {
	if sign == 0 {
		return prefix
	}
	if prefix == "" {
		return string(sign)
	}
	return string(sign) + prefix
}

func (e *engine) fmtInteger(sp Spec, v int64) int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	e.s.putUint(u, 10, false)
	return e.fmtNumber(sp, signByte(sp, neg), "", false)
}

// fmtUnsigned formats %u, %o, %x and %X. Unsigned conversions never carry
// a sign.
func (e *engine) fmtUnsigned(sp Spec, u uint64) int {
	var (
		base   uint64 = 10
		upper  bool
		prefix string
	)
	alt := sp.Flags.Has(FlagHash)
	switch sp.Verb {
	case 'o':
		base = 8
		// '#' keeps the single '0' digit that precision 0 would drop. The
		// precision stays explicit so the field is still space padded.
		if alt && u == 0 && sp.Precision == 0 {
			sp.Precision = 1
		}
	case 'x':
		base = 16
		if alt && u != 0 {
			prefix = "0x"
		}
	case 'X':
		base, upper = 16, true
		if alt && u != 0 {
			prefix = "0X"
		}
	}
	e.s.putUint(u, base, upper)
	return e.fmtNumber(sp, 0, prefix, alt && sp.Verb == 'o')
}

// fmtPointer formats %p as 0x-prefixed lowercase hex. A nil pointer
// prints "(nil)".
func (e *engine) fmtPointer(sp Spec, p uintptr) int {
	if p == 0 {
		sp.Flags &^= FlagZero
		sp.Precision = NoPrecision
		return e.fmtString(sp, "(nil)")
	}
	e.s.putUint(uint64(p), 16, false)
	return e.fmtNumber(sp, signByte(sp, false), "0x", false)
}

// fmtNumber lays out the digit run held in the scratch buffer.
func (e *engine) fmtNumber(sp Spec, sign byte, prefix string, altOctal bool) int {
	pad := sp.padByte()
	length := e.s.len()

	// Precision 0 suppresses a lone zero digit. With a width the field is
	// all padding.
	if sp.Precision == 0 && length == 1 && e.s.first() == '0' {
		if sp.Width == 0 {
			return 0
		}
		e.s.buf[e.s.ind] = ' '
	}
	if sp.HasPrecision() {
		pad = ' '
	}

	zeros := 0
	if sp.Precision > length {
		zeros = e.s.prependZeros(sp.Precision - length)
	}
	if altOctal && zeros == 0 && e.s.first() != '0' {
		e.s.prepend('0')
	}

	f := field{head: headOf(sign, prefix), zeros: zeros}
	zeroFill := pad == '0' && sp.Width > f.size()+e.s.len()
	if f.head != "" && zeros == 0 && !zeroFill && e.s.prependString(f.head) {
		f.head = ""
	}
	f.body = e.s.run()
	return e.justify(sp, pad, f)
}

// fmtFloat formats %f and %F.
func (e *engine) fmtFloat(sp Spec, v float64) int {
	sign := signByte(sp, math.Signbit(v))
	upper := sp.Verb == 'F'

	if math.IsInf(v, 0) || math.IsNaN(v) {
		str := "inf"
		switch {
		case math.IsNaN(v) && upper:
			str = "NAN"
		case math.IsNaN(v):
			str = "nan"
		case upper:
			str = "INF"
		}
		sp.Flags &^= FlagZero
		return e.justify(sp, ' ', field{head: headOf(sign, ""), str: str})
	}

	prec := 6
	if sp.HasPrecision() {
		prec = sp.Precision
	}
	var tmp [64]byte
	digits := strconv.AppendFloat(tmp[:0], math.Abs(v), 'f', prec, 64)
	if prec == 0 && sp.Flags.Has(FlagHash) {
		digits = append(digits, '.')
	}

	pad := sp.padByte()
	f := field{head: headOf(sign, ""), body: digits}
	if e.s.putBytes(digits) {
		zeroFill := pad == '0' && sp.Width > f.size()
		if f.head != "" && !zeroFill && e.s.prependString(f.head) {
			f.head = ""
		}
		f.body = e.s.run()
	}
	return e.justify(sp, pad, f)
}

func newEngine(dst []byte) *engine {
	e := &engine{buf: dst}
	e.s.reset()
	return e
}

// AppendInt appends v formatted per sp (a %d or %i directive) to dst.
func AppendInt(dst []byte, sp Spec, v int64) []byte {
	e := newEngine(dst)
	e.fmtInteger(sp, v)
	return e.buf
}

// AppendUint appends u formatted per sp to dst. The verb selects the base:
// 'o' octal, 'x'/'X' hex, anything else decimal.
func AppendUint(dst []byte, sp Spec, u uint64) []byte {
	e := newEngine(dst)
	e.fmtUnsigned(sp, u)
	return e.buf
}

// AppendChar appends r formatted per sp to dst. Runes outside ASCII are
// written as UTF-8.
func AppendChar(dst []byte, sp Spec, r rune) []byte {
	e := newEngine(dst)
	e.fmtRune(sp, r)
	return e.buf
}

// AppendString appends str formatted per sp to dst.
func AppendString(dst []byte, sp Spec, str string) []byte {
	e := newEngine(dst)
	e.fmtString(sp, str)
	return e.buf
}

// AppendPointer appends p formatted per sp (a %p directive) to dst.
func AppendPointer(dst []byte, sp Spec, p uintptr) []byte {
	e := newEngine(dst)
	e.fmtPointer(sp, p)
	return e.buf
}

// AppendFloat appends v formatted per sp (a %f or %F directive) to dst.
func AppendFloat(dst []byte, sp Spec, v float64) []byte {
	e := newEngine(dst)
	e.fmtFloat(sp, v)
	return e.buf
}
