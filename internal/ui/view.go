package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View renders one screen of the storefront.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Resettable views are restored to their entry state each time their layer
// becomes visible.
type Resettable interface {
	Reset() tea.Cmd
}
