// Package display renders a match for people: a console event renderer and
// the line readers used by human players.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/rpsduel/internal/match"
	"github.com/lox/rpsduel/internal/player"
	"github.com/lox/rpsduel/internal/wincond"
)

const ruleWidth = 80

// Console prints match events as they happen.
type Console struct {
	out    io.Writer
	styles Styles
}

// NewConsole creates a renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, styles: DefaultStyles()}
}

// OnEvent implements match.Subscriber.
func (c *Console) OnEvent(event match.Event) {
	switch e := event.(type) {
	case match.MatchStartEvent:
		c.matchStart(e)
	case match.RoundStartEvent:
		c.println(c.styles.Rule.Render(strings.Repeat("-", ruleWidth)))
		c.println(c.styles.Round.Render(fmt.Sprintf("Round %d", e.Round)))
	case match.ChoiceEvent:
		c.println(fmt.Sprintf("%s chose %s.", c.styles.Player.Render(e.Player), c.styles.Object.Render(e.Object)))
	case match.RoundEndEvent:
		c.roundEnd(e)
	case match.MatchEndEvent:
		c.matchEnd(e.Result)
	}
}

func (c *Console) matchStart(e match.MatchStartEvent) {
	c.println(c.styles.Header.Render(strings.Join(e.Objects, " · ")))
	c.println(c.styles.Info.Render(fmt.Sprintf("%s vs %s, %s. Type %q to leave.",
		e.Players[0], e.Players[1], DescribeCondition(e.Condition), player.QuitWord)))
}

func (c *Console) roundEnd(e match.RoundEndEvent) {
	c.println("")
	if !e.Outcome.Scored() {
		c.println(c.styles.Warning.Render("Tie! Nobody gets a point."))
		c.println("")
		return
	}
	c.println(c.styles.Action.Render(e.Outcome.Sentence()))
	c.println(c.styles.Success.Render(fmt.Sprintf("%s gets a point", e.Scorer)))
	c.println(c.styles.Score.Render(ScoreLine(e.Players, e.Scores)))
}

func (c *Console) matchEnd(res match.Result) {
	c.println(c.styles.Rule.Render(strings.Repeat("=", ruleWidth)))
	c.println(c.styles.Score.Render(ScoreLine(res.Players, res.Scores)))

	switch res.Verdict {
	case wincond.BothWin:
		c.println(c.styles.Success.Render("Both win!"))
	case wincond.AWins, wincond.BWins:
		winner, _ := res.Winner()
		c.println(c.styles.Success.Render(fmt.Sprintf("%s wins!", winner)))
	default:
		c.println(c.styles.Warning.Render(fmt.Sprintf("Draw! Nobody won after %d rounds.", res.Rounds)))
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// ScoreLine renders "A: 2 - 1 :B".
func ScoreLine(players [2]string, scores [2]int) string {
	return fmt.Sprintf("%s: %d - %d :%s", players[0], scores[0], scores[1], players[1])
}

// DescribeCondition renders a win condition for people.
func DescribeCondition(c wincond.Condition) string {
	switch c.Kind {
	case wincond.BestOutOf:
		return fmt.Sprintf("best of %d", c.N)
	case wincond.NumberOfWins:
		return fmt.Sprintf("first to win more than %d rounds", c.N)
	case wincond.NumberOfGames:
		return fmt.Sprintf("%d scored rounds", c.N)
	default:
		return c.String()
	}
}
