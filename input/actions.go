package input

// Action is a logical game input, decoupled from physical keys
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHold
	ActionPause
	ActionRestart
	ActionQuit

	// ActionCount is the number of recognized actions
	ActionCount
)

var actionNames = [ActionCount]string{
	"MoveLeft",
	"MoveRight",
	"SoftDrop",
	"HardDrop",
	"RotateCW",
	"RotateCCW",
	"Hold",
	"Pause",
	"Restart",
	"Quit",
}

// String returns the action's debug name
func (a Action) String() string {
	if a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}
