package rules

import (
	"errors"
	"fmt"
)

var (
	ErrNoRules         = errors.New("no rules defined")
	ErrIncomplete      = errors.New("not enough rules to cover every pair of objects")
	ErrSelfRule        = errors.New("object cannot beat itself")
	ErrDuplicateRule   = errors.New("pair defined more than once")
	ErrConflictingRule = errors.New("pair defined in both directions")
	ErrUnknownBuiltin  = errors.New("unknown built-in rule set")
)

// ConfigError is a fatal rule configuration problem, detected before any
// round is played.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid rules: %v", e.Err)
	}
	return fmt.Sprintf("invalid rules in %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
