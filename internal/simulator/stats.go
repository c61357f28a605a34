package simulator

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lox/rpsduel/internal/match"
	"github.com/lox/rpsduel/internal/wincond"
)

// Stats aggregates simulated match results.
type Stats struct {
	Names         [2]string
	Matches       int
	Wins          [2]int
	BothWin       int
	Draws         int
	Rounds        int
	RoundsSq      float64 // Sum of squared match lengths for variance
	NoScoreRounds int
	LongestMatch  int
	Lengths       []int // Rounds per match, in match order
}

func NewStats(names [2]string) *Stats {
	return &Stats{Names: names}
}

// Add records one finished match and its count of rounds nobody scored.
func (s *Stats) Add(res *match.Result, noScore int) {
	s.Matches++
	s.Rounds += res.Rounds
	s.RoundsSq += float64(res.Rounds * res.Rounds)
	s.NoScoreRounds += noScore
	s.LongestMatch = max(s.LongestMatch, res.Rounds)
	s.Lengths = append(s.Lengths, res.Rounds)

	switch res.Verdict {
	case wincond.AWins:
		s.Wins[0]++
	case wincond.BWins:
		s.Wins[1]++
	case wincond.BothWin:
		s.BothWin++
	default:
		s.Draws++
	}
}

// WinRate returns the share of matches side i (0 or 1) won outright.
func (s *Stats) WinRate(i int) float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Wins[i]) / float64(s.Matches)
}

// WinRateCI95 returns the normal-approximation 95% confidence interval for
// WinRate(i).
func (s *Stats) WinRateCI95(i int) (float64, float64) {
	if s.Matches == 0 {
		return 0, 0
	}
	p := s.WinRate(i)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Matches))
	return max(0, p-margin), min(1, p+margin)
}

// AverageRounds returns the mean match length.
func (s *Stats) AverageRounds() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Matches)
}

// RoundsStdDev returns the sample standard deviation of match length.
func (s *Stats) RoundsStdDev() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.AverageRounds()
	variance := (s.RoundsSq - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
	return math.Sqrt(max(0, variance))
}

// RoundsPercentile returns the match length at percentile p (0.0 to 1.0),
// interpolating between neighbours.
func (s *Stats) RoundsPercentile(p float64) float64 {
	if len(s.Lengths) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Lengths)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// Summary renders the statistics as a short report.
func (s *Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matches:         %d\n", s.Matches)
	for i := range s.Names {
		low, high := s.WinRateCI95(i)
		fmt.Fprintf(&b, "%-16s %d (%.1f%%, 95%% CI %.1f-%.1f%%)\n",
			s.Names[i]+":", s.Wins[i], 100*s.WinRate(i), 100*low, 100*high)
	}
	fmt.Fprintf(&b, "Both win:        %d\n", s.BothWin)
	fmt.Fprintf(&b, "Draws:           %d\n", s.Draws)
	fmt.Fprintf(&b, "Rounds:          %d (%.2f ± %.2f per match, median %.0f, longest %d)\n",
		s.Rounds, s.AverageRounds(), s.RoundsStdDev(), s.RoundsPercentile(0.5), s.LongestMatch)
	fmt.Fprintf(&b, "No-score rounds: %d\n", s.NoScoreRounds)
	return b.String()
}
