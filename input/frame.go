package input

// Frame is the per-frame input snapshot the controller consumes: for
// each action, whether it was newly pressed since the last frame
// (edge) and whether it is currently held. A pressed action is always
// also held for that frame.
type Frame struct {
	pressed [ActionCount]bool
	held    [ActionCount]bool
}

// Press marks an action newly pressed this frame
func (f *Frame) Press(a Action) {
	f.pressed[a] = true
	f.held[a] = true
}

// SetHeld marks an action held without a new press edge
func (f *Frame) SetHeld(a Action) {
	f.held[a] = true
}

// Pressed reports whether the action was newly pressed this frame
func (f *Frame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Held reports whether the action is currently held
func (f *Frame) Held(a Action) bool {
	return f.held[a]
}
