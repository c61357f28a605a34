package rules

import "fmt"

// Side identifies which player, if any, scored a round.
type Side int

const (
	NoOne Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case NoOne:
		return "none"
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return "unknown"
	}
}

// MarshalText lets Side appear as a word in match records.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the resolution of a single round.
type Outcome struct {
	Winner   Side
	Beater   string
	Relation string
	Beaten   string
}

// Scored reports whether either side won the round.
func (o Outcome) Scored() bool {
	return o.Winner != NoOne
}

// Sentence renders the deciding rule, e.g. "Schere schneidet Papier".
// It is empty when no one scored.
func (o Outcome) Sentence() string {
	if !o.Scored() {
		return ""
	}
	return fmt.Sprintf("%s %s %s", o.Beater, o.Relation, o.Beaten)
}
