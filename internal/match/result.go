package match

import (
	"time"

	"github.com/lox/rpsduel/internal/wincond"
)

// Result is the final state of a match.
type Result struct {
	MatchID      string            `json:"match_id"`
	Players      [2]string         `json:"players"`
	Scores       [2]int            `json:"scores"`
	Rounds       int               `json:"rounds"`
	Condition    wincond.Condition `json:"condition"`
	Verdict      wincond.Verdict   `json:"verdict"`
	Winners      []string          `json:"winners,omitempty"`
	RoundLimited bool              `json:"round_limited,omitempty"`
	StartedAt    time.Time         `json:"started_at"`
	FinishedAt   time.Time         `json:"finished_at"`
}

// Duration is the wall time between the first round and the end.
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Winner returns the single winner's name, if there is exactly one.
func (r Result) Winner() (string, bool) {
	if len(r.Winners) != 1 {
		return "", false
	}
	return r.Winners[0], true
}
