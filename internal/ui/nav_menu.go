package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/viewstate"
)

// NavMenuView is the slide-in navigation overlay listing every page.
type NavMenuView struct {
	ctrl          *viewstate.Controller
	Cursor        int
	width, height int
}

// Ensure NavMenuView implements View and Resettable.
var (
	_ View       = (*NavMenuView)(nil)
	_ Resettable = (*NavMenuView)(nil)
)

// NewNavMenuView creates the nav menu over ctrl.
func NewNavMenuView(ctrl *viewstate.Controller) *NavMenuView {
	return &NavMenuView{ctrl: ctrl, width: 80, height: 24}
}

// Init implements View.
func (v *NavMenuView) Init() tea.Cmd {
	return nil
}

// Reset puts the cursor on the active page.
func (v *NavMenuView) Reset() tea.Cmd {
	v.Cursor = int(v.ctrl.State().ActivePage)
	return nil
}

// Update implements View.
func (v *NavMenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *NavMenuView) handleKey(msg tea.KeyMsg) tea.Cmd {
	pages := viewstate.Pages
	switch s := msg.String(); s {
	case "down", "j", "tab":
		v.Cursor = (v.Cursor + 1) % len(pages)
	case "up", "k", "shift+tab":
		v.Cursor = (v.Cursor - 1 + len(pages)) % len(pages)
	case "enter":
		return reportErr(viewstate.OpNavigateFromMenu, v.ctrl.NavigateFromMenu(pages[v.Cursor]))
	case "esc", "m":
		v.ctrl.CloseMenu()
	case "h":
		v.ctrl.GoHome()
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(pages) {
			v.Cursor = n - 1
			return reportErr(viewstate.OpNavigateFromMenu, v.ctrl.NavigateFromMenu(pages[v.Cursor]))
		}
	}
	return nil
}

// View implements View.
func (v *NavMenuView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Brand.Render(catalog.Brand))
	b.WriteString(Styles.Hint.Render("   (h) home   esc close"))
	b.WriteString("\n\n")

	for i, p := range viewstate.Pages {
		num := fmt.Sprintf("%02d", i+1)
		label := strings.ToUpper(p.Label())
		if i == v.Cursor {
			b.WriteString(Styles.Selected.Render("▸ " + num + "  " + label))
		} else {
			b.WriteString(Styles.Muted.Render("  "+num+"  ") + Styles.Body.Render(label))
		}
		b.WriteString("\n\n")
	}

	footer := fmt.Sprintf("Est. %d   %s", catalog.Established, strings.Join(catalog.SocialLinks, " · "))
	b.WriteString(Styles.Muted.Render(footer))

	return lipgloss.NewStyle().
		Width(v.width).
		Height(v.height).
		Padding(1, 4).
		Background(lipgloss.Color(ColorPaper)).
		Render(b.String())
}
