package sim

type EventType int

const (
	EventSound EventType = iota
	EventText
	EventLevelStart
	EventAbsorption
	EventStateChange
)

// SoundKind names a sound trigger. Loops get a start and a stop; one-shots only start.
type SoundKind int

const (
	SoundMove SoundKind = iota
	SoundAbsorb
	SoundIntersect
	SoundAbsorbed
	SoundLevelWon
	SoundGameWon
)

var soundNames = [...]string{
	SoundMove:      "move",
	SoundAbsorb:    "absorb",
	SoundIntersect: "intersect",
	SoundAbsorbed:  "absorbed",
	SoundLevelWon:  "level-won",
	SoundGameWon:   "game-won",
}

func (k SoundKind) String() string {
	if int(k) < len(soundNames) {
		return soundNames[k]
	}
	return "unknown"
}

// Looping reports whether the sound holds until explicitly stopped.
func (k SoundKind) Looping() bool {
	return k == SoundMove || k == SoundAbsorb || k == SoundIntersect
}

type Event struct {
	Type EventType

	Sound SoundKind
	Start bool // false = stop

	Text     string
	Delay    float64 // ms before a banner should appear
	Duration float64 // ms a banner stays up; 0 = until replaced

	Level      int
	State      GameState
	Absorption Absorption
}

// Name is the wire name of a sound event, e.g. "move-start" or "absorbed".
func (e Event) Name() string {
	if e.Type != EventSound {
		return ""
	}
	if !e.Sound.Looping() {
		return e.Sound.String()
	}
	if e.Start {
		return e.Sound.String() + "-start"
	}
	return e.Sound.String() + "-stop"
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
