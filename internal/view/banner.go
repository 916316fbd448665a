package view

import "absorb/internal/sim"

// Banner tracks the display text the simulation asked for. Timing starts at the
// first Visible call after the text arrives, so frontends need no shared clock
// with the event bus.
type Banner struct {
	text     string
	delay    float64
	duration float64
	start    float64
	stamped  bool
}

// Watch replaces the banner on every text event.
func (b *Banner) Watch(events *sim.EventBus) {
	events.Subscribe(sim.EventText, func(e sim.Event) { b.Set(e.Text, e.Delay, e.Duration) })
}

func (b *Banner) Set(text string, delay, duration float64) {
	*b = Banner{text: text, delay: delay, duration: duration}
}

// Visible returns the text to show at now (ms), or "" if none.
func (b *Banner) Visible(now float64) string {
	if b.text == "" {
		return ""
	}
	if !b.stamped {
		b.start, b.stamped = now, true
	}
	at := b.start + b.delay
	if now < at {
		return ""
	}
	if b.duration > 0 && now >= at+b.duration {
		return ""
	}
	return b.text
}

// Prompt is the standing hint for the current state, shown under the banner.
func Prompt(s sim.GameState) string {
	switch s {
	case sim.StateIdle:
		return "Press any direction to start"
	case sim.StateGameWon:
		return "Thanks for playing"
	}
	return ""
}
