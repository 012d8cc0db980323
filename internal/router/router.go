package router

import (
	tea "charm.land/bubbletea/v2"

	"assay/internal/screen"
)

// PushMsg asks the router to push a screen onto the stack.
type PushMsg struct {
	Screen screen.Screen
}

// PopMsg asks the router to pop the active screen.
type PopMsg struct{}

// ReplaceMsg asks the router to swap the active screen in place, so
// popping afterwards skips the replaced one.
type ReplaceMsg struct {
	Screen screen.Screen
}

// Push returns a command that pushes s.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Pop returns a command that pops the active screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// Replace returns a command that replaces the active screen with s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Screen: s} }
}

// Router is the page state machine: a stack of screens where the top
// one is active. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router rooted at the given screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the current stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

func (r *Router) push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

func (r *Router) replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update routes navigation messages, forwarding everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.push(msg.Screen)
	case PopMsg:
		r.pop()
		return nil
	case ReplaceMsg:
		return r.replace(msg.Screen)
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
