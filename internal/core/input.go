package core

// Action represents a semantic command, abstracted from physical key presses.
// Movement is not an Action: directional keys feed the garden's held-key state.
type Action int

const (
	ActionNone       Action = iota
	ActionConfirm           // Enter, Space - start from the title screen
	ActionRestart           // R - new run after game over
	ActionShare             // S - show the share message after game over
	ActionScoreboard        // Tab - open the run history
	ActionBack              // B, Esc - leave the current overlay
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionShare:
		return "Share"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
