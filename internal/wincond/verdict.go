package wincond

// Verdict is the final classification of a match.
type Verdict int

const (
	// Draw means no side reached the condition, e.g. when a round limit
	// stopped the match.
	Draw Verdict = iota
	AWins
	BWins
	// BothWin is a tie finish: both flags were set at once.
	BothWin
)

func (v Verdict) String() string {
	switch v {
	case AWins:
		return "a"
	case BWins:
		return "b"
	case BothWin:
		return "both"
	default:
		return "draw"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
