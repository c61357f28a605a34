package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" type:"path" env:"RPSDUEL_CONFIG" help:"Config file (.hcl or .toml)"`
	LogLevel string `env:"RPSDUEL_LOG_LEVEL" help:"Log level: debug, info, warn or error"`
	LogFile  string `type:"path" env:"RPSDUEL_LOG_FILE" help:"Write logs to a file instead of stderr"`
	NoColor  bool   `env:"RPSDUEL_NO_COLOR" help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a match (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many computer matches and print statistics"`
	Rules    RulesCmd         `cmd:"" help:"Validate and print a rule set"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsduel"),
		kong.Description(heredoc.Doc(`
			Rock, paper, scissors and its relatives, played in the terminal.

			Each rule set lists every pair of objects once, as
			"<object> <relation> <object>". The classic set has three objects,
			the extended set adds Echse and Spock.
		`)),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
