package core

import (
	"sync"
	"testing"
)

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (ActionNone must be dropped)", f.Len())
	}
	if f.Actions[0] != ActionUp || f.Actions[1] != ActionLeft {
		t.Errorf("Actions = %v, expected [Up Left]", f.Actions)
	}
	if !f.Has(ActionLeft) || f.Has(ActionQuit) {
		t.Error("Has() reports the wrong actions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear() should empty the frame")
	}
	if clone.Len() != 2 {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestInputQueuePollDrains(t *testing.T) {
	q := NewInputQueue()
	q.Push(ActionDown)
	q.Push(ActionRight)

	first := q.Poll()
	if first.Len() != 2 || first.Actions[0] != ActionDown || first.Actions[1] != ActionRight {
		t.Errorf("first Poll() = %v, expected [Down Right]", first.Actions)
	}

	second := q.Poll()
	if second.Len() != 0 {
		t.Errorf("second Poll() = %v, expected empty", second.Actions)
	}
}

func TestInputQueueConcurrentPush(t *testing.T) {
	q := NewInputQueue()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Push(ActionUp)
			}
		}()
	}
	wg.Wait()

	if n := q.Poll().Len(); n != 800 {
		t.Errorf("Poll() returned %d actions, expected 800", n)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.a.String() != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, tc.a.String(), tc.expected)
		}
	}
}
