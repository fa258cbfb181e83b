package skill

import "slices"

// History is an unbounded LIFO stack of visited values. Duplicates are kept.
type History[T comparable] struct {
	stack []T
}

// NewHistory creates an empty history
func NewHistory[T comparable]() *History[T] {
	return &History[T]{}
}

// NewHistoryWith creates a history holding initial
func NewHistoryWith[T comparable](initial T) *History[T] {
	return &History[T]{stack: []T{initial}}
}

func (h *History[T]) Push(v T) {
	h.stack = append(h.stack, v)
}

// Pop removes and returns the top value
func (h *History[T]) Pop() (T, bool) {
	var zero T
	if len(h.stack) == 0 {
		return zero, false
	}
	top := h.stack[len(h.stack)-1]
	h.stack[len(h.stack)-1] = zero
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Current returns the top value without removing it
func (h *History[T]) Current() (T, bool) {
	if len(h.stack) == 0 {
		var zero T
		return zero, false
	}
	return h.stack[len(h.stack)-1], true
}

func (h *History[T]) Len() int {
	return len(h.stack)
}

func (h *History[T]) IsEmpty() bool {
	return len(h.stack) == 0
}

func (h *History[T]) Reset() {
	h.stack = nil
}

// ResetTo leaves v as the only value
func (h *History[T]) ResetTo(v T) {
	h.stack = []T{v}
}

func (h *History[T]) Contains(v T) bool {
	return slices.Contains(h.stack, v)
}
