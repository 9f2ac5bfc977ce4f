package tui

import "github.com/pmc-dev/pmc/internal/screens"

// Stack is the process-wide screen stack. Menu actions push onto it; the
// shell renders whatever is on top and esc pops.
type Stack struct {
	items []screens.Screen
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push places a screen on top of the stack.
func (s *Stack) Push(screen screens.Screen) {
	s.items = append(s.items, screen)
}

// Pop removes and returns the top screen; nil when empty.
func (s *Stack) Pop() screens.Screen {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Top returns the top screen without removing it; nil when empty.
func (s *Stack) Top() screens.Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Replace swaps the top screen after its Update returned a new model.
func (s *Stack) Replace(screen screens.Screen) {
	if len(s.items) == 0 {
		s.items = []screens.Screen{screen}
		return
	}
	s.items[len(s.items)-1] = screen
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.items)
}
