package rules

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

//go:embed builtin/*.txt
var builtinFS embed.FS

// Builtin rule set names.
const (
	Classic  = "classic"
	Extended = "extended"
)

// word matches a single token. Letters are Unicode-aware so relations like
// "zerschlägt" stay in one piece.
var word = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Parse reads rules from r, one per line. Lines that do not hold exactly
// three word tokens are skipped.
func Parse(r io.Reader) (*RuleSet, error) {
	return parse("", r)
}

// ParseString parses rules held in memory.
func ParseString(s string) (*RuleSet, error) {
	return parse("", strings.NewReader(s))
}

// ParseFile reads and parses the rule file at path.
func ParseFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: err}
	}
	defer f.Close()

	return parse(path, f)
}

// Builtin returns one of the rule sets shipped with the game.
func Builtin(name string) (*RuleSet, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".txt")
	if err != nil {
		return nil, &ConfigError{Source: name, Err: fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownBuiltin, name, strings.Join(BuiltinNames(), ", "))}
	}
	return parse(name, strings.NewReader(string(data)))
}

// BuiltinNames lists the available built-in rule sets.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func parse(source string, r io.Reader) (*RuleSet, error) {
	var rules []Rule

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := word.FindAllString(scanner.Text(), -1)
		if len(tokens) != 3 {
			continue
		}
		rules = append(rules, Rule{Beater: tokens[0], Relation: tokens[1], Beaten: tokens[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Source: source, Err: fmt.Errorf("failed to read rules: %w", err)}
	}

	return build(source, rules)
}
