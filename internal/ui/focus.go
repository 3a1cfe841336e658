package ui

import tea "github.com/charmbracelet/bubbletea"

// Focusable is a form control that can take keyboard focus.
// *textinput.Model and *textarea.Model satisfy it.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}

// FocusManager tracks and rotates focus across the controls of a form.
type FocusManager struct {
	Current  string               // ID of the focused control
	Order    []string             // Tab order for focus rotation
	Controls map[string]Focusable // Controls by ID; IDs without one are plain stops (buttons)
}

// Next advances focus to the next control in order.
func (f *FocusManager) Next() tea.Cmd {
	return f.step(1)
}

// Prev moves focus to the previous control in order.
func (f *FocusManager) Prev() tea.Cmd {
	return f.step(-1)
}

// SetFocus focuses id. Reports false if id is not in Order.
func (f *FocusManager) SetFocus(id string) (tea.Cmd, bool) {
	for _, o := range f.Order {
		if o == id {
			return f.move(id), true
		}
	}
	return nil, false
}

// Focused reports whether id holds focus.
func (f *FocusManager) Focused(id string) bool {
	return f.Current == id
}

func (f *FocusManager) step(delta int) tea.Cmd {
	n := len(f.Order)
	if n == 0 {
		return nil
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	return f.move(f.Order[((idx+delta)%n+n)%n])
}

func (f *FocusManager) move(to string) tea.Cmd {
	if c, ok := f.Controls[f.Current]; ok && f.Current != to {
		c.Blur()
	}
	f.Current = to
	if c, ok := f.Controls[to]; ok {
		return c.Focus()
	}
	return nil
}
