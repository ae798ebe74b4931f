package core

// Action is a semantic command, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota

	// Directions move the cursor, or swap when a token is picked
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	ActionSelect  // Pick up or drop the token under the cursor
	ActionConfirm // Trigger a bomb
	ActionBack    // Leave to the menu
	ActionRestart // New run after game over
	ActionQuit    // Leave the program
	ActionPause   // Toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Select", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// PointerKind is the phase of a mouse gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a mouse event in screen cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame is the input gathered between two ticks. The zero value is an
// empty frame.
type InputFrame struct {
	actions uint32 // Bit a is set when Action a fired

	// Pointer holds mouse events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.actions |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.actions&(1<<a) != 0
}

// Count returns how many distinct actions fired.
func (f InputFrame) Count() int {
	n := 0
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			n++
		}
	}
	return n
}

func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear empties the frame, keeping the pointer buffer for reuse.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Pointer = f.Pointer[:0]
}

// Clone returns a copy that does not share the pointer buffer.
func (f InputFrame) Clone() InputFrame {
	c := InputFrame{actions: f.actions}
	if len(f.Pointer) > 0 {
		c.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return c
}
