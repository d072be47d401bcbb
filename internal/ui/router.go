package ui

// Router is the navigation stack. The bottom entry is never popped.
type Router struct {
	stack []screen
}

// Push adds a screen to the top of the stack.
func (r *Router) Push(s screen) {
	r.stack = append(r.stack, s)
}

// Pop closes and removes the top screen and returns the new top.
// Returns nil if the stack has one or fewer entries.
func (r *Router) Pop() screen {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	top.Close()
	r.stack = r.stack[:len(r.stack)-1]
	return r.Current()
}

// Replace swaps the top screen for s, closing the old one.
func (r *Router) Replace(s screen) {
	if len(r.stack) == 0 {
		r.Push(s)
		return
	}
	r.stack[len(r.stack)-1].Close()
	r.stack[len(r.stack)-1] = s
}

// PopToRoot closes every screen above the root.
func (r *Router) PopToRoot() screen {
	for len(r.stack) > 1 {
		r.Pop()
	}
	return r.Current()
}

// CloseAll closes every screen and empties the stack.
func (r *Router) CloseAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		r.stack[i].Close()
	}
	r.stack = nil
}

// Current returns the top screen, or nil if empty.
func (r *Router) Current() screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the current stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

// CanGoBack reports whether there is a previous screen.
func (r *Router) CanGoBack() bool {
	return len(r.stack) > 1
}

// Breadcrumbs returns the title chain for all screens in the stack.
func (r *Router) Breadcrumbs() []string {
	crumbs := make([]string, len(r.stack))
	for i, s := range r.stack {
		crumbs[i] = s.Title()
	}
	return crumbs
}

// Screens returns the stack from bottom to top.
func (r *Router) Screens() []screen {
	return r.stack
}
