package scene

type EventType int

const (
	EventPaused EventType = iota
	EventResumed
	EventPoolFull // emitted once, the step the pool first reaches capacity
)

func (t EventType) String() string {
	switch t {
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventPoolFull:
		return "pool-full"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Time  float64 // simulated seconds when emitted
	Count int     // live particles
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
