package minidown

// NavigationHistory is a bounded browser-style back/forward stack.
//
// Back and Forward take the state being left and return the state to show,
// so callers never juggle the two stacks themselves. Visit clears the
// forward stack. Each stack keeps at most maxSize entries (oldest dropped);
// maxSize <= 0 means unbounded.
type NavigationHistory[T any] struct {
	back    []T
	forward []T
	maxSize int
}

// NewNavigationHistory creates an empty history holding at most maxSize entries per direction.
func NewNavigationHistory[T any](maxSize int) *NavigationHistory[T] {
	return &NavigationHistory[T]{maxSize: maxSize}
}

func (h *NavigationHistory[T]) push(stack []T, state T) []T {
	stack = append(stack, state)
	if h.maxSize > 0 && len(stack) > h.maxSize {
		stack = stack[len(stack)-h.maxSize:]
	}
	return stack
}

func pop[T any](stack []T) ([]T, T) {
	last := len(stack) - 1
	state := stack[last]
	return stack[:last], state
}

// Visit records the state being left for a new page.
func (h *NavigationHistory[T]) Visit(current T) {
	h.back = h.push(h.back, current)
	h.forward = nil
}

// Back returns the previous state and moves current onto the forward stack.
func (h *NavigationHistory[T]) Back(current T) (T, bool) {
	if len(h.back) == 0 {
		var zero T
		return zero, false
	}
	var prev T
	h.back, prev = pop(h.back)
	h.forward = h.push(h.forward, current)
	return prev, true
}

// Forward returns the next state and moves current onto the back stack.
func (h *NavigationHistory[T]) Forward(current T) (T, bool) {
	if len(h.forward) == 0 {
		var zero T
		return zero, false
	}
	var next T
	h.forward, next = pop(h.forward)
	h.back = h.push(h.back, current)
	return next, true
}

func (h *NavigationHistory[T]) CanGoBack() bool    { return len(h.back) > 0 }
func (h *NavigationHistory[T]) CanGoForward() bool { return len(h.forward) > 0 }

// Len returns the sizes of the back and forward stacks.
func (h *NavigationHistory[T]) Len() (back, forward int) {
	return len(h.back), len(h.forward)
}

// Clear drops all entries.
func (h *NavigationHistory[T]) Clear() {
	h.back = nil
	h.forward = nil
}
