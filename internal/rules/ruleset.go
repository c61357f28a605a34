// Package rules implements the object/relation table that decides every round.
//
// A RuleSet is built from rules of the form "<beater> <relation> <beaten>",
// for example "Schere schneidet Papier". Construction validates that the rules
// form a complete tournament: for N distinct objects exactly N·(N−1)/2 rules
// are required, one per unordered pair of objects.
//
// # Basic Usage
//
//	rs, err := rules.ParseFile("my-rules.txt")
//	if err != nil {
//	    // a *rules.ConfigError, fatal before the first round
//	}
//	out := rs.Resolve("Schere", "Papier")
//	// out.Winner == rules.SideA, out.Relation == "schneidet"
package rules

import (
	"fmt"
	"slices"
)

// Rule says that Beater defeats Beaten, described by Relation.
type Rule struct {
	Beater   string
	Relation string
	Beaten   string
}

// String renders the rule in rule-file form.
func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s", r.Beater, r.Relation, r.Beaten)
}

type pair struct {
	beater, beaten string
}

// RuleSet is an immutable, validated rule table.
type RuleSet struct {
	objects []string
	rules   []Rule
	beats   map[pair]string
	index   map[string]int
}

// New builds a RuleSet from rules in the given order.
func New(rules []Rule) (*RuleSet, error) {
	return build("", rules)
}

func build(source string, rules []Rule) (*RuleSet, error) {
	if len(rules) == 0 {
		return nil, &ConfigError{Source: source, Err: ErrNoRules}
	}

	rs := &RuleSet{
		rules: make([]Rule, 0, len(rules)),
		beats: make(map[pair]string, len(rules)),
		index: make(map[string]int),
	}

	for _, r := range rules {
		if r.Beater == r.Beaten {
			return nil, &ConfigError{Source: source, Err: fmt.Errorf("%w: %q", ErrSelfRule, r.String())}
		}
		if prev, ok := rs.beats[pair{r.Beater, r.Beaten}]; ok {
			return nil, &ConfigError{Source: source, Err: fmt.Errorf("%w: %s %s %s (already %q)",
				ErrDuplicateRule, r.Beater, r.Relation, r.Beaten, prev)}
		}
		if prev, ok := rs.beats[pair{r.Beaten, r.Beater}]; ok {
			return nil, &ConfigError{Source: source, Err: fmt.Errorf("%w: %q contradicts %q",
				ErrConflictingRule, r.String(), Rule{r.Beaten, prev, r.Beater}.String())}
		}

		rs.beats[pair{r.Beater, r.Beaten}] = r.Relation
		rs.rules = append(rs.rules, r)
		rs.addObject(r.Beater)
		rs.addObject(r.Beaten)
	}

	n := len(rs.objects)
	if want := n * (n - 1) / 2; len(rs.rules) != want {
		return nil, &ConfigError{Source: source, Err: fmt.Errorf("%w: %d objects need %d rules, got %d",
			ErrIncomplete, n, want, len(rs.rules))}
	}

	return rs, nil
}

func (rs *RuleSet) addObject(object string) {
	if _, ok := rs.index[object]; ok {
		return
	}
	rs.index[object] = len(rs.objects)
	rs.objects = append(rs.objects, object)
}

// Objects returns the distinct object labels in order of first appearance.
func (rs *RuleSet) Objects() []string {
	return slices.Clone(rs.objects)
}

// Rules returns the rules in the order they were supplied.
func (rs *RuleSet) Rules() []Rule {
	return slices.Clone(rs.rules)
}

// Len returns the number of distinct objects.
func (rs *RuleSet) Len() int {
	return len(rs.objects)
}

// Contains reports whether object is playable under this rule set.
func (rs *RuleSet) Contains(object string) bool {
	_, ok := rs.index[object]
	return ok
}

// Beats returns the relation by which a defeats b, if any.
func (rs *RuleSet) Beats(a, b string) (string, bool) {
	relation, ok := rs.beats[pair{a, b}]
	return relation, ok
}

// Resolve decides a round between choice a (side A) and choice b (side B).
// Equal choices, and pairs the table does not relate, score for no one.
func (rs *RuleSet) Resolve(a, b string) Outcome {
	if relation, ok := rs.Beats(a, b); ok {
		return Outcome{Winner: SideA, Beater: a, Relation: relation, Beaten: b}
	}
	if relation, ok := rs.Beats(b, a); ok {
		return Outcome{Winner: SideB, Beater: b, Relation: relation, Beaten: a}
	}
	return Outcome{Winner: NoOne}
}
