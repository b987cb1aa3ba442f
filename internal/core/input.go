package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionDrop              // Space, Down, Enter - start the run / drop the block
	ActionConfirm           // Enter - confirm selection in menus
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionPause             // P - pause/unpause
	ActionSlowMotion        // 1 - request slow motion
	ActionHint              // 2 - request hint guide
	ActionRevive            // V - request revive on the result screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSlowMotion:
		return "SlowMotion"
	case ActionHint:
		return "Hint"
	case ActionRevive:
		return "Revive"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
// Repeated presses within a tick collapse into one, which is the debounce
// the drop input relies on.
type InputFrame struct {
	Actions map[Action]bool

	// Elapsed is the wall-clock time since the previous tick. Zero means
	// unknown and is treated as one nominal frame.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Elapsed = 0
}
