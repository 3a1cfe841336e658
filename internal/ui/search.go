package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/ui/textutil"
	"coffeeflavours/internal/viewstate"
)

// SearchView is the full-screen search overlay. The query is captured but
// never executed.
type SearchView struct {
	ctrl          *viewstate.Controller
	Input         textinput.Model
	width, height int
}

// Ensure SearchView implements View and Resettable.
var (
	_ View       = (*SearchView)(nil)
	_ Resettable = (*SearchView)(nil)
)

// NewSearchView creates the search overlay over ctrl.
func NewSearchView(ctrl *viewstate.Controller) *SearchView {
	ti := textinput.New()
	ti.Placeholder = "What are you looking for?"
	ti.Prompt = "⌕ "
	ti.CharLimit = 120
	ti.Width = 60
	return &SearchView{ctrl: ctrl, Input: ti, width: 80, height: 24}
}

// Init implements View.
func (v *SearchView) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and focuses the input.
func (v *SearchView) Reset() tea.Cmd {
	v.Input.Reset()
	return v.Input.Focus()
}

// Query returns the text typed so far.
func (v *SearchView) Query() string {
	return v.Input.Value()
}

// Update implements View.
func (v *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.Input.Width = max(20, msg.Width-12)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			v.Input.Blur()
			v.ctrl.CloseSearch()
			return v, nil
		case "enter":
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.Input, cmd = v.Input.Update(msg)
	return v, cmd
}

// View implements View.
func (v *SearchView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Brand.Render(catalog.Brand))
	b.WriteString(Styles.Hint.Render("   esc close"))
	b.WriteString("\n\n")
	b.WriteString(v.Input.View())
	b.WriteString("\n\n")

	b.WriteString(Styles.Kicker.Render(textutil.Spaced("popular searches")))
	b.WriteString("\n")
	for _, s := range catalog.PopularSearches {
		b.WriteString(Styles.Body.Render("  " + s))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(Styles.Kicker.Render(textutil.Spaced("recent flavour discoveries")))
	b.WriteString("\n")
	cardWidth := max(14, (v.width-8)/catalog.RecentDiscoveryCount-3)
	cards := make([]string, 0, catalog.RecentDiscoveryCount)
	for _, it := range v.ctrl.Catalog().Head(catalog.RecentDiscoveryCount) {
		_, accent := HeroStyles(it)
		body := accent.Bold(true).Render(textutil.Truncate(it.Name, cardWidth)) + "\n" +
			Styles.Muted.Render(textutil.Truncate(it.ID, cardWidth))
		cards = append(cards, Styles.Card.Width(cardWidth).Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	return Styles.Page.Render(b.String())
}
