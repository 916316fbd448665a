package tui

import "github.com/gdamore/tcell/v2"

// Action is a non-movement key command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMute
	ActionVolumeUp
	ActionVolumeDown
	ActionZoom
)

// keyDirection maps arrows, WASD and hjkl to a direction.
func keyDirection(ev *tcell.EventKey) (Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return DirLeft, true
	case tcell.KeyRight:
		return DirRight, true
	case tcell.KeyUp:
		return DirUp, true
	case tcell.KeyDown:
		return DirDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return DirLeft, true
		case 'd', 'D', 'l':
			return DirRight, true
		case 'w', 'W', 'k':
			return DirUp, true
		case 's', 'S', 'j':
			return DirDown, true
		}
	}
	return 0, false
}

func keyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'm', 'M':
			return ActionMute
		case '+', '=':
			return ActionVolumeUp
		case '-', '_':
			return ActionVolumeDown
		case 'z', 'Z':
			return ActionZoom
		}
	}
	return ActionNone
}
