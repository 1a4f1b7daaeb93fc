package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move cursor north-east
	ActionDown              // S, Down arrow - move cursor south-west
	ActionLeft              // A, Left arrow - move cursor west
	ActionRight             // D, Right arrow - move cursor east
	ActionNext              // Tab - jump to next frontier cell
	ActionPrev              // Shift+Tab - jump to previous frontier cell
	ActionRotate            // E - rotate next tile clockwise
	ActionRotateBack        // Z - rotate next tile counter-clockwise
	ActionConfirm           // Space, Enter - place tile
	ActionDraw              // N - draw a batch of tiles (endless only)
	ActionUndo              // U - undo last placement
	ActionBack              // B, Escape - back
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionRotate:
		return "Rotate"
	case ActionRotateBack:
		return "RotateBack"
	case ActionConfirm:
		return "Confirm"
	case ActionDraw:
		return "Draw"
	case ActionUndo:
		return "Undo"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse event in screen cell coordinates.
type Pointer struct {
	X, Y  int
	Click bool // Left button pressed (as opposed to motion)
}

// InputFrame represents the input state for a single player during one tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the last mouse event of the frame, if any.
	Pointer *Pointer
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

// SetPointer records a mouse event. A click is never downgraded by later motion.
func (f *InputFrame) SetPointer(x, y int, click bool) {
	if f.Pointer != nil && f.Pointer.Click && !click {
		return
	}
	f.Pointer = &Pointer{X: x, Y: y, Click: click}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
