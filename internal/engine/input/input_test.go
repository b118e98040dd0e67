package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key  sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_W, ActionUp},
		{sdl.SCANCODE_UP, ActionUp},
		{sdl.SCANCODE_S, ActionDown},
		{sdl.SCANCODE_LEFT, ActionLeft},
		{sdl.SCANCODE_D, ActionRight},
		{sdl.SCANCODE_SPACE, ActionFire},
		{sdl.SCANCODE_RETURN, ActionConfirm},
		{sdl.SCANCODE_E, ActionToggleDebug},
		{sdl.SCANCODE_TAB, ActionToggleInvulnerable},
		{sdl.SCANCODE_F12, ActionScreenshot},
		{sdl.SCANCODE_ESCAPE, ActionQuit},
		{sdl.SCANCODE_Q, ActionNone},
	}
	for _, tt := range tests {
		if got := b.Action(tt.key); got != tt.want {
			t.Errorf("Action(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

type call struct {
	action Action
	down   bool
}

func TestDispatch(t *testing.T) {
	var calls []call
	record := func(a Action) func(bool) {
		return func(down bool) { calls = append(calls, call{a, down}) }
	}
	h := Handlers{
		ActionUp:   record(ActionUp),
		ActionFire: record(ActionFire),
	}

	events := []Event{
		{Type: EventKeyDown, Key: sdl.SCANCODE_W},
		{Type: EventKeyDown, Key: sdl.SCANCODE_W, Repeat: true},
		{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE},
		{Type: EventWindowResize, Width: 800, Height: 600},
		{Type: EventKeyDown, Key: sdl.SCANCODE_Q},
		{Type: EventKeyDown, Key: sdl.SCANCODE_E}, // bound, no handler
		{Type: EventKeyUp, Key: sdl.SCANCODE_UP},
		{Type: EventKeyUp, Key: sdl.SCANCODE_SPACE},
	}
	Dispatch(events, DefaultBindings(), h)

	want := []call{
		{ActionUp, true},
		{ActionFire, true},
		{ActionUp, false},
		{ActionFire, false},
	}
	if len(calls) != len(want) {
		t.Fatalf("got %d calls %v, want %v", len(calls), calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestIsKeyPressedIgnoresRepeats(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12, Repeat: true},
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE},
	)
	if in.IsKeyPressed(sdl.SCANCODE_F12) {
		t.Error("a repeat should not count as a press")
	}
	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("a release should not count as a press")
	}

	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12})
	if !in.IsKeyPressed(sdl.SCANCODE_F12) {
		t.Error("F12 press not seen")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleInvulnerable.String() != "toggle_invulnerable" || Action(200).String() != "none" {
		t.Error("unexpected action names")
	}
}
