package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"coffeeflavours/internal/viewstate"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("ctrl+c", viewstate.ScreenHome) == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("space q", viewstate.ScreenHome) == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown", viewstate.ScreenHome) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ScreenFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForScreens("SPC h", tea.Quit, "Home", []viewstate.Screen{viewstate.ScreenStory})

	if reg.Lookup("SPC h", viewstate.ScreenHome) != nil {
		t.Error("SPC h should not fire on home")
	}
	if reg.Lookup("SPC h", viewstate.ScreenStory) == nil {
		t.Error("SPC h should fire on story")
	}
	if _, ok := reg.LeaderHints("", viewstate.ScreenHome)["h"]; ok {
		t.Error("SPC h should not be hinted on home")
	}
	if got := reg.LeaderHints("", viewstate.ScreenStory)["h"]; got != "Home" {
		t.Errorf("expected hint Home on story, got %q", got)
	}
}

func TestKeybindRegistry_LeaderHintsSubmenu(t *testing.T) {
	reg := NewGlobalKeybinds()

	top := reg.LeaderHints("", viewstate.ScreenHome)
	if top["g"] != "Go to" {
		t.Errorf("expected g to show submenu label, got %q", top["g"])
	}
	if top["q"] != "Quit" {
		t.Errorf("expected q Quit, got %q", top["q"])
	}

	next := reg.LeaderHints("SPC g", viewstate.ScreenHome)
	want := map[string]string{"h": "Home", "s": "Our Story", "m": "Menu", "l": "Locations", "c": "Contact"}
	for k, desc := range want {
		if next[k] != desc {
			t.Errorf("SPC g %s: expected %q, got %q", k, desc, next[k])
		}
	}
	if len(next) != len(want) {
		t.Errorf("expected %d hints under SPC g, got %d", len(want), len(next))
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "), viewstate.ScreenHome)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), viewstate.ScreenHome)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	h := NewKeyHandler(NewGlobalKeybinds())

	h.Handle(keyMsg(" "), viewstate.ScreenHome)
	consumed, cmd := h.Handle(keyMsg("g"), viewstate.ScreenHome)
	if !consumed || cmd != nil {
		t.Fatalf("g: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Fatal("expected leader to keep waiting after SPC g")
	}
	if h.CurrentSeq() != "SPC g" {
		t.Errorf("expected current seq SPC g, got %q", h.CurrentSeq())
	}

	_, cmd = h.Handle(keyMsg("l"), viewstate.ScreenHome)
	if cmd == nil {
		t.Fatal("expected command for SPC g l")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Page != viewstate.PageLocations {
		t.Errorf("expected NavigateMsg{locations}, got %#v", msg)
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), viewstate.ScreenHome)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), viewstate.ScreenHome)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// esc outside leader mode belongs to the views
	consumed, _ = h.Handle(keyMsg("esc"), viewstate.ScreenHome)
	if consumed {
		t.Error("esc outside leader mode should fall through")
	}
}

func TestKeyHandler_UnknownSequenceLeavesLeader(t *testing.T) {
	h := NewKeyHandler(NewGlobalKeybinds())
	h.Handle(keyMsg(" "), viewstate.ScreenHome)

	consumed, cmd := h.Handle(keyMsg("z"), viewstate.ScreenHome)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	h := NewKeyHandler(NewGlobalKeybinds())
	consumed, cmd := h.Handle(keyMsg("j"), viewstate.ScreenHome)
	if consumed || cmd != nil {
		t.Errorf("j: expected fall through, got consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(NewGlobalKeybinds())
	if got := RenderKeybindHelp(nil, viewstate.ScreenHome); got != "" {
		t.Errorf("nil handler: expected empty help, got %q", got)
	}
	h.Handle(keyMsg(" "), viewstate.ScreenHome)
	out := RenderKeybindHelp(h, viewstate.ScreenHome)
	for _, want := range []string{"SPC", "Quit", "Go to", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in help, got %q", want, out)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
