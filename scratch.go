package cfmt

const (
	scratchSize = 1024
	// scratchMid is the lowest index a digit run may reach. Indices below
	// it form the pad region.
	scratchMid = scratchSize / 2
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// scratch assembles one conversion. Digits are written from the top of buf
// downward, so a run always occupies buf[ind:scratchSize] and never needs
// reversing. Pad bytes are written upward from index 0.
type scratch struct {
	buf [scratchSize]byte
	ind int
}

func (s *scratch) reset() { s.ind = scratchSize }

// run returns the assembled digit run.
func (s *scratch) run() []byte { return s.buf[s.ind:] }

func (s *scratch) len() int { return scratchSize - s.ind }

func (s *scratch) room() int { return s.ind - scratchMid }

// first returns the leading byte of the run, or 0 for an empty run.
func (s *scratch) first() byte {
	if s.ind == scratchSize {
		return 0
	}
	return s.buf[s.ind]
}

// prepend writes c in front of the run. It reports false when the run has
// reached the pad region.
func (s *scratch) prepend(c byte) bool {
	if s.ind <= scratchMid {
		return false
	}
	s.ind--
	s.buf[s.ind] = c
	return true
}

// prependString writes str in front of the run, or nothing if it does not
// fit.
func (s *scratch) prependString(str string) bool {
	if len(str) > s.room() {
		return false
	}
	s.ind -= len(str)
	copy(s.buf[s.ind:], str)
	return true
}

// prependZeros writes up to n '0' bytes in front of the run and returns how
// many did not fit.
func (s *scratch) prependZeros(n int) int {
	for n > 0 && s.prepend('0') {
		n--
	}
	return n
}

// putUint writes the digits of u in the given base. Zero writes a single
// '0'.
func (s *scratch) putUint(u uint64, base uint64, upper bool) {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	s.reset()
	if u == 0 {
		s.prepend('0')
		return
	}
	for u > 0 {
		s.prepend(digits[u%base])
		u /= base
	}
}

// putBytes replaces the run with b. It reports false when b is longer than
// the digit half of the buffer.
func (s *scratch) putBytes(b []byte) bool {
	s.reset()
	if len(b) > s.room() {
		return false
	}
	s.ind -= len(b)
	copy(s.buf[s.ind:], b)
	return true
}

// padding fills the pad region with c and returns up to n bytes of it.
func (s *scratch) padding(c byte, n int) []byte {
	if n > scratchMid {
		n = scratchMid
	}
	p := s.buf[:n]
	for i := range p {
		p[i] = c
	}
	return p
}
