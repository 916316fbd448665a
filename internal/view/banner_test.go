package view

import (
	"testing"

	"absorb/internal/sim"
)

func TestBannerDelayAndDuration(t *testing.T) {
	var b Banner
	bus := sim.NewEventBus()
	b.Watch(bus)
	bus.Emit(sim.Event{Type: sim.EventText, Text: "Level 1", Duration: 1000})
	if got := b.Visible(100); got != "Level 1" {
		t.Fatalf("Visible = %q", got)
	}
	if got := b.Visible(1099); got != "Level 1" {
		t.Errorf("banner gone early: %q", got)
	}
	if got := b.Visible(1100); got != "" {
		t.Errorf("banner should hide after its duration, got %q", got)
	}

	bus.Emit(sim.Event{Type: sim.EventText, Text: "Absorbed", Delay: 600})
	if got := b.Visible(2000); got != "" {
		t.Errorf("delayed banner shown early: %q", got)
	}
	if got := b.Visible(2600); got != "Absorbed" {
		t.Errorf("Visible = %q, want Absorbed", got)
	}
	if got := b.Visible(60000); got != "Absorbed" {
		t.Error("zero duration banner should persist")
	}
}

func TestPrompt(t *testing.T) {
	if Prompt(sim.StateIdle) == "" || Prompt(sim.StatePlaying) != "" {
		t.Error("prompt only shows while idle or finished")
	}
}
