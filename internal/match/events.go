package match

import (
	"time"

	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

// EventType identifies a match event.
type EventType string

const (
	EventTypeMatchStart EventType = "match_start"
	EventTypeRoundStart EventType = "round_start"
	EventTypeChoice     EventType = "choice"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeMatchEnd   EventType = "match_end"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything published while a match runs.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// MatchStartEvent is published once before the first round.
type MatchStartEvent struct {
	MatchID   string
	Players   [2]string
	Objects   []string
	Rules     []rules.Rule
	Condition wincond.Condition
	timestamp time.Time
}

func (e MatchStartEvent) EventType() EventType { return EventTypeMatchStart }
func (e MatchStartEvent) Timestamp() time.Time { return e.timestamp }

// RoundStartEvent is published before either player chooses.
type RoundStartEvent struct {
	Round     int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// ChoiceEvent is published for each player once both have chosen, A first.
type ChoiceEvent struct {
	Round     int
	Side      rules.Side
	Player    string
	Object    string
	timestamp time.Time
}

func (e ChoiceEvent) EventType() EventType { return EventTypeChoice }
func (e ChoiceEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent carries the resolution of a round and the scores after it.
type RoundEndEvent struct {
	Round     int
	Choices   [2]string
	Outcome   rules.Outcome
	Scorer    string
	Scores    [2]int
	Players   [2]string
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// MatchEndEvent is published once the win condition is met.
type MatchEndEvent struct {
	Result    Result
	timestamp time.Time
}

func (e MatchEndEvent) EventType() EventType { return EventTypeMatchEnd }
func (e MatchEndEvent) Timestamp() time.Time { return e.timestamp }

// Subscriber receives match events.
type Subscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(Event)

func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus delivers events to subscribers in subscription order.
type EventBus struct {
	subscribers []Subscriber
}

func (bus *EventBus) Subscribe(subscriber Subscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

func (bus *EventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
