package cfmt

// Tokens holds the raw pieces of one directive as scanned from a template.
// Width and Precision are digit strings or "*"; for "*" the driver pulls
// an int argument into WidthArg or PrecisionArg.
type Tokens struct {
	Flags        string
	Width        string
	Dot          bool
	Precision    string
	Length       string
	Verb         byte
	WidthArg     int
	PrecisionArg int
}

// Resolve turns scanned tokens into a Spec. It never fails: unknown flag
// bytes and length modifiers are ignored.
func Resolve(t Tokens) Spec {
	sp := Spec{Precision: NoPrecision, Verb: t.Verb}

	for i := 0; i < len(t.Flags); i++ {
		for _, fc := range flagChars {
			if fc.c == t.Flags[i] {
				sp.Flags |= fc.f
			}
		}
	}

	if t.Width == "*" {
		w := t.WidthArg
		if w < 0 {
			sp.Flags |= FlagMinus
			w = -w
		}
		sp.Width = clampWidth(w)
	} else {
		sp.Width = atoiSat(t.Width)
	}

	if t.Dot {
		switch t.Precision {
		case "*":
			// A negative precision argument is taken as if it were omitted.
			if t.PrecisionArg >= 0 {
				sp.Precision = clampWidth(t.PrecisionArg)
			}
		default:
			sp.Precision = atoiSat(t.Precision)
		}
	}

	sp.Length = lengthNames[t.Length]
	if t.Length == "q" {
		// BSD spelling of ll.
		sp.Length = LengthLL
	}
	return sp
}

func clampWidth(n int) int {
	if n < 0 || n > MaxWidth {
		return MaxWidth
	}
	return n
}

// atoiSat parses a run of decimal digits, saturating at MaxWidth. Anything
// that is not a digit ends the run.
func atoiSat(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n > (MaxWidth-int(c-'0'))/10 {
			return MaxWidth
		}
		n = n*10 + int(c-'0')
	}
	return n
}
