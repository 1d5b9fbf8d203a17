package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W - primary action (jump, or restart after game over)
	ActionQuit              // Q, Ctrl+C - exit the program
	ActionScreenshot        // Ctrl+S - dump the current screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
