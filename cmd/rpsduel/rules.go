package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rpsduel/internal/config"
	"github.com/lox/rpsduel/internal/rules"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	objectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// RulesCmd validates a rule set and prints it.
type RulesCmd struct {
	RuleFlags `embed:""`

	List bool `help:"List the built-in rule sets"`
}

func (c *RulesCmd) Run(g *Globals) error {
	if c.List {
		for _, name := range rules.BuiltinNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	var o config.Overrides
	c.RuleFlags.apply(&o)

	cfg, err := g.loadConfig(o)
	if err != nil {
		return err
	}

	rs, err := cfg.RuleSet()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, headerStyle.Render(fmt.Sprintf("%s: %d objects, %d rules", cfg.RulesSource(), rs.Len(), len(rs.Rules()))))
	fmt.Fprintln(stdout)
	for i, object := range rs.Objects() {
		fmt.Fprintf(stdout, "%s %s\n", faintStyle.Render(fmt.Sprintf("[%d]", i)), objectStyle.Render(object))
	}
	fmt.Fprintln(stdout)
	for _, rule := range rs.Rules() {
		fmt.Fprintln(stdout, rule)
	}
	return nil
}
