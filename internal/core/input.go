package core

import "time"

// Button identifies one of the four physical controls.
// The layout follows a two-by-two pad: A and X on top fire, B and Y below move.
type Button int

const (
	ButtonA Button = iota // fire left
	ButtonB               // move left
	ButtonX               // fire right
	ButtonY               // move right
	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	default:
		return "Unknown"
	}
}

// InputFrame is the raw input for one simulation tick: the sampled "pressed"
// level of every button plus the monotonic time since boot at which the
// sample was taken.
type InputFrame struct {
	Down [ButtonCount]bool
	At   time.Duration
}

// NewInputFrame creates an input frame with the given buttons held.
func NewInputFrame(held ...Button) InputFrame {
	var f InputFrame
	for _, b := range held {
		f.Set(b)
	}
	return f
}

// Set marks a button as held.
func (f *InputFrame) Set(b Button) {
	if b >= 0 && b < ButtonCount {
		f.Down[b] = true
	}
}

// Has returns true if the given button is held.
func (f InputFrame) Has(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return f.Down[b]
}

// Any reports whether any button is held.
func (f InputFrame) Any() bool {
	for _, d := range f.Down {
		if d {
			return true
		}
	}
	return false
}

// Edges holds the buttons that went from released to pressed this tick.
type Edges [ButtonCount]bool

// Has reports whether the button was just pressed.
func (e Edges) Has(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return e[b]
}

// Any reports whether any button was just pressed.
func (e Edges) Any() bool {
	for _, j := range e {
		if j {
			return true
		}
	}
	return false
}

// EdgeDetector computes just-pressed edges by comparing each frame's levels
// against the previous frame's.
type EdgeDetector struct {
	prev [ButtonCount]bool
}

// Detect returns the edges for this frame and remembers its levels.
func (d *EdgeDetector) Detect(f InputFrame) Edges {
	var e Edges
	for i, down := range f.Down {
		e[i] = down && !d.prev[i]
	}
	d.prev = f.Down
	return e
}

// KeyLatch turns discrete key press events into held levels.
// Terminals report presses (and auto-repeat) but never releases, so a button
// counts as held for a hold window after its most recent press.
type KeyLatch struct {
	hold time.Duration
	last [ButtonCount]time.Duration
	seen [ButtonCount]bool
}

// NewKeyLatch creates a latch with the given hold window.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{hold: hold}
}

// Press records a press of b at time at.
func (l *KeyLatch) Press(b Button, at time.Duration) {
	if b < 0 || b >= ButtonCount {
		return
	}
	l.last[b] = at
	l.seen[b] = true
}

// Sample returns the held levels at time now.
func (l *KeyLatch) Sample(now time.Duration) InputFrame {
	f := InputFrame{At: now}
	for i := range f.Down {
		f.Down[i] = l.seen[i] && now-l.last[i] < l.hold
	}
	return f
}

// Release drops every held button.
func (l *KeyLatch) Release() {
	l.seen = [ButtonCount]bool{}
}
