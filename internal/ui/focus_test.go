package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeControl struct {
	focused bool
	focuses int
}

func (c *fakeControl) Focus() tea.Cmd {
	c.focused = true
	c.focuses++
	return nil
}

func (c *fakeControl) Blur() { c.focused = false }

func TestFocusManager_NextPrevWrap(t *testing.T) {
	a, b := &fakeControl{}, &fakeControl{}
	f := &FocusManager{
		Order:    []string{"a", "b", "button"},
		Controls: map[string]Focusable{"a": a, "b": b},
	}

	f.Next()
	if f.Current != "a" || !a.focused {
		t.Fatalf("first Next: expected a focused, got %q", f.Current)
	}
	f.Next()
	if f.Current != "b" || a.focused || !b.focused {
		t.Errorf("second Next: expected only b focused, got %q a=%v b=%v", f.Current, a.focused, b.focused)
	}
	f.Next()
	if f.Current != "button" || b.focused {
		t.Errorf("third Next: expected button with b blurred, got %q", f.Current)
	}
	f.Next()
	if f.Current != "a" {
		t.Errorf("Next should wrap to a, got %q", f.Current)
	}
	f.Prev()
	if f.Current != "button" {
		t.Errorf("Prev should wrap to button, got %q", f.Current)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	a := &fakeControl{}
	f := &FocusManager{Order: []string{"a", "send"}, Controls: map[string]Focusable{"a": a}}

	if _, ok := f.SetFocus("missing"); ok {
		t.Error("SetFocus on unknown id should fail")
	}
	if _, ok := f.SetFocus("a"); !ok || !f.Focused("a") || !a.focused {
		t.Error("expected a focused")
	}
	if _, ok := f.SetFocus("send"); !ok || a.focused {
		t.Error("moving to send should blur a")
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if f.Next() != nil || f.Prev() != nil || f.Current != "" {
		t.Error("empty manager should be a no-op")
	}
}
