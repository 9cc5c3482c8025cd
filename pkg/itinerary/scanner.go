package itinerary

import "strings"

// ScanState is the lexical state of the balance scanner.
type ScanState int

const (
	StateNormal ScanState = iota
	StateInString
	StateEscaped
)

func (s ScanState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInString:
		return "in_string"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Balance is the result of scanning a JSON fragment. Braces and Brackets are
// signed: positive means unmatched openers, negative means extra closers.
type Balance struct {
	Braces   int
	Brackets int
	State    ScanState
	open     []byte
}

// Closed reports whether every opener has a matching closer and the scan
// did not stop inside a string literal.
func (b Balance) Closed() bool {
	return b.Braces == 0 && b.Brackets == 0 && b.State == StateNormal
}

// Closers returns the closing characters needed to balance the fragment,
// innermost first.
func (b Balance) Closers() string {
	var sb strings.Builder
	for i := len(b.open) - 1; i >= 0; i-- {
		if b.open[i] == '{' {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Scanner walks JSON text one byte at a time. Counters only move in
// StateNormal, and StateEscaped swallows exactly one byte.
type Scanner struct {
	bal Balance
}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) State() ScanState {
	return s.bal.State
}

func (s *Scanner) Balance() Balance {
	out := s.bal
	out.open = append([]byte(nil), s.bal.open...)
	return out
}

// Depth is the number of currently open containers.
func (s *Scanner) Depth() int {
	return len(s.bal.open)
}

// Feed advances the scanner by one byte. It returns true when c closed a
// container, along with the opener of the enclosing container (0 at top level).
func (s *Scanner) Feed(c byte) (closed bool, parent byte) {
	switch s.bal.State {
	case StateEscaped:
		s.bal.State = StateInString
		return false, 0
	case StateInString:
		switch c {
		case '\\':
			s.bal.State = StateEscaped
		case '"':
			s.bal.State = StateNormal
		}
		return false, 0
	}

	switch c {
	case '"':
		s.bal.State = StateInString
	case '{':
		s.bal.Braces++
		s.bal.open = append(s.bal.open, c)
	case '[':
		s.bal.Brackets++
		s.bal.open = append(s.bal.open, c)
	case '}':
		s.bal.Braces--
		return s.pop('{')
	case ']':
		s.bal.Brackets--
		return s.pop('[')
	}
	return false, 0
}

func (s *Scanner) pop(opener byte) (bool, byte) {
	n := len(s.bal.open)
	if n == 0 || s.bal.open[n-1] != opener {
		return false, 0
	}
	s.bal.open = s.bal.open[:n-1]
	if n == 1 {
		return true, 0
	}
	return true, s.bal.open[n-2]
}

// Scan runs a fresh Scanner over text.
func Scan(text string) Balance {
	s := NewScanner()
	for i := 0; i < len(text); i++ {
		s.Feed(text[i])
	}
	return s.Balance()
}
