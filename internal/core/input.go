package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C - end the session
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received since the previous tick, in arrival order.
// Order matters: a later direction press overrides an earlier one.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}

// Set appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}

// InputSource yields the actions received since the last poll.
// Poll never blocks.
type InputSource interface {
	Poll() InputFrame
}

// InputQueue is an InputSource fed by a platform event handler.
// Push may be called from another goroutine than Poll.
type InputQueue struct {
	mu    sync.Mutex
	frame InputFrame
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push enqueues an action.
func (q *InputQueue) Push(a Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.frame.Set(a)
}

// Poll drains the queue and returns everything received since the last poll.
func (q *InputQueue) Poll() InputFrame {
	q.mu.Lock()
	defer q.mu.Unlock()
	frame := q.frame.Clone()
	q.frame.Clear()
	return frame
}
