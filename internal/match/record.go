package match

import (
	"time"

	"github.com/lox/rpsduel/internal/fileutil"
	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

// RoundRecord is one round as stored in a match record.
type RoundRecord struct {
	Round    int        `json:"round"`
	Choices  [2]string  `json:"choices"`
	Winner   rules.Side `json:"winner"`
	Relation string     `json:"relation,omitempty"`
	Scores   [2]int     `json:"scores"`
	At       time.Time  `json:"at"`
}

// RuleRecord is one rule of the rule set a match was played under.
type RuleRecord struct {
	Beater   string `json:"beater"`
	Relation string `json:"relation"`
	Beaten   string `json:"beaten"`
}

// Record is the full history of a match.
type Record struct {
	MatchID   string            `json:"match_id"`
	Players   [2]string         `json:"players"`
	Objects   []string          `json:"objects"`
	Rules     []RuleRecord      `json:"rules"`
	Condition wincond.Condition `json:"condition"`
	Rounds    []RoundRecord     `json:"rounds"`
	Result    *Result           `json:"result,omitempty"`
}

// Recorder is a Subscriber that collects a Record as the match runs.
type Recorder struct {
	record Record
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnEvent(event Event) {
	switch e := event.(type) {
	case MatchStartEvent:
		r.record = Record{
			MatchID:   e.MatchID,
			Players:   e.Players,
			Objects:   e.Objects,
			Rules:     make([]RuleRecord, len(e.Rules)),
			Condition: e.Condition,
		}
		for i, rule := range e.Rules {
			r.record.Rules[i] = RuleRecord{Beater: rule.Beater, Relation: rule.Relation, Beaten: rule.Beaten}
		}
	case RoundEndEvent:
		r.record.Rounds = append(r.record.Rounds, RoundRecord{
			Round:    e.Round,
			Choices:  e.Choices,
			Winner:   e.Outcome.Winner,
			Relation: e.Outcome.Relation,
			Scores:   e.Scores,
			At:       e.Timestamp(),
		})
	case MatchEndEvent:
		res := e.Result
		r.record.Result = &res
	}
}

// Record returns what has been collected so far. Result is nil until the
// match has finished.
func (r *Recorder) Record() Record {
	return r.record
}

// WriteFile stores the record as JSON at path.
func (r *Recorder) WriteFile(path string) error {
	return fileutil.WriteJSON(path, r.record)
}
