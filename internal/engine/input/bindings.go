package input

import "github.com/veandco/go-sdl2/sdl"

// Action is what a bound key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionConfirm
	ActionToggleDebug
	ActionToggleInvulnerable
	ActionScreenshot
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionConfirm:
		return "confirm"
	case ActionToggleDebug:
		return "toggle_debug"
	case ActionToggleInvulnerable:
		return "toggle_invulnerable"
	case ActionScreenshot:
		return "screenshot"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Bindings maps physical keys to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings binds WASD and the arrows to movement.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_W:      ActionUp,
		sdl.SCANCODE_UP:     ActionUp,
		sdl.SCANCODE_S:      ActionDown,
		sdl.SCANCODE_DOWN:   ActionDown,
		sdl.SCANCODE_A:      ActionLeft,
		sdl.SCANCODE_LEFT:   ActionLeft,
		sdl.SCANCODE_D:      ActionRight,
		sdl.SCANCODE_RIGHT:  ActionRight,
		sdl.SCANCODE_SPACE:  ActionFire,
		sdl.SCANCODE_RETURN: ActionConfirm,
		sdl.SCANCODE_E:      ActionToggleDebug,
		sdl.SCANCODE_TAB:    ActionToggleInvulnerable,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// Action returns the action bound to a key, or ActionNone.
func (b Bindings) Action(key sdl.Scancode) Action {
	return b[key]
}

// Handlers receive the key state of an action.
type Handlers map[Action]func(down bool)

// Dispatch routes key events through the bindings. Auto-repeats are
// dropped, so a handler sees one call per press and one per release.
func Dispatch(events []Event, b Bindings, h Handlers) {
	for _, e := range events {
		if e.Repeat || (e.Type != EventKeyDown && e.Type != EventKeyUp) {
			continue
		}
		fn, ok := h[b.Action(e.Key)]
		if !ok || fn == nil {
			continue
		}
		fn(e.Type == EventKeyDown)
	}
}
