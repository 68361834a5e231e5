package cfmt

import (
	"fmt"
	"sync"
)

// printer holds the state of one formatting call and is reused through
// ppFree.
type printer struct {
	engine
	length Length
	args   []any
	argNum int
	err    error
}

var ppFree = sync.Pool{
	New: func() any { return new(printer) },
}

func newPrinter(cfg Printer) *printer {
	p := ppFree.Get().(*printer)
	p.columns = cfg.DisplayWidth
	p.length = cfg.DefaultLength
	p.s.reset()
	return p
}

// free returns p to the pool. Large buffers are dropped so the pool holds
// entries of similar size.
func (p *printer) free() {
	if cap(p.buf) > 64<<10 {
		p.buf = nil
	}
	p.buf = p.buf[:0]
	p.args = nil
	p.argNum = 0
	p.err = nil
	ppFree.Put(p)
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// nextArg returns the next argument. A missing argument is recorded as an
// error.
func (p *printer) nextArg(sp Spec) (any, bool) {
	if p.argNum >= len(p.args) {
		p.fail(fmt.Errorf("%w: %s (argument %d)", ErrMissingArgument, sp, p.argNum+1))
		return nil, false
	}
	arg := p.args[p.argNum]
	p.argNum++
	return arg, true
}

// intArg pulls an int for a '*' width or precision.
func (p *printer) intArg(what string) int {
	sp := Spec{Verb: '*', Precision: NoPrecision}
	arg, ok := p.nextArg(sp)
	if !ok {
		return 0
	}
	bits, ok := intBits(arg)
	if !ok {
		p.fail(fmt.Errorf("%w: %s given %T", ErrArgumentType, what, arg))
		return 0
	}
	return int(int32(bits))
}

func (p *printer) doPrintf(format string, args []any) {
	p.args = args
	end := len(format)
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		if i > lasti {
			p.puts(format[lasti:i])
		}
		if i >= end {
			break
		}

		start := i
		i++
		if i >= end {
			// A lone '%' at the end of the template is copied as is.
			p.putByte('%')
			break
		}
		tok, next := p.scan(format, i)
		i = next
		if !IsSupported(tok.Verb) {
			p.puts(format[start:i])
			continue
		}

		sp := Resolve(tok)
		if sp.Length == LengthNone {
			sp.Length = p.length
		}
		if sp.Verb == '%' {
			p.fmtPercent()
			continue
		}
		arg, ok := p.nextArg(sp)
		if !ok {
			// Missing arguments format as zero.
			p.formatZero(sp)
			continue
		}
		if err := p.format(sp, arg); err != nil {
			p.fail(err)
		}
	}
}

// scan reads flags, width, precision, length modifier and verb starting at
// format[i]. '*' values are pulled from the argument list in template
// order. It returns the index just past the directive; an unterminated
// directive leaves Verb zero.
func (p *printer) scan(format string, i int) (Tokens, int) {
	var tok Tokens
	end := len(format)

	start := i
	for i < end && isFlag(format[i]) {
		i++
	}
	tok.Flags = format[start:i]

	if i < end && format[i] == '*' {
		tok.Width = "*"
		tok.WidthArg = p.intArg("width")
		i++
	} else {
		start = i
		for i < end && isDigit(format[i]) {
			i++
		}
		tok.Width = format[start:i]
	}

	if i < end && format[i] == '.' {
		tok.Dot = true
		i++
		if i < end && format[i] == '*' {
			tok.Precision = "*"
			tok.PrecisionArg = p.intArg("precision")
			i++
		} else {
			start = i
			for i < end && isDigit(format[i]) {
				i++
			}
			tok.Precision = format[start:i]
		}
	}

	start = i
	for i < end && isLength(format[i]) && i-start < 2 {
		i++
	}
	tok.Length = format[start:i]

	if i < end {
		tok.Verb = format[i]
		i++
	}
	return tok, i
}

func isFlag(c byte) bool {
	switch c {
	case '-', '+', ' ', '0', '#':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLength(c byte) bool {
	switch c {
	case 'h', 'l', 'j', 'z', 't', 'L', 'q':
		return true
	}
	return false
}
