package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/ui/textutil"
	"coffeeflavours/internal/viewstate"
)

// ContentPage is a read-only full-screen page rendered into a scrollable
// viewport. Story, menu and locations share it.
type ContentPage struct {
	ctrl     *viewstate.Controller
	Page     viewstate.Page
	render   func(width int) string
	Viewport viewport.Model
	width    int
}

// Ensure ContentPage implements View and Resettable.
var (
	_ View       = (*ContentPage)(nil)
	_ Resettable = (*ContentPage)(nil)
)

func newContentPage(ctrl *viewstate.Controller, page viewstate.Page, render func(int) string) *ContentPage {
	p := &ContentPage{
		ctrl:     ctrl,
		Page:     page,
		render:   render,
		Viewport: viewport.New(80, 20),
		width:    80,
	}
	p.refresh()
	return p
}

// NewStoryPage creates the "Our Story" page.
func NewStoryPage(ctrl *viewstate.Controller) *ContentPage {
	return newContentPage(ctrl, viewstate.PageStory, renderStory)
}

// NewMenuPage creates the menu page.
func NewMenuPage(ctrl *viewstate.Controller) *ContentPage {
	return newContentPage(ctrl, viewstate.PageMenu, renderMenu)
}

// NewLocationsPage creates the locations page.
func NewLocationsPage(ctrl *viewstate.Controller) *ContentPage {
	return newContentPage(ctrl, viewstate.PageLocations, renderLocations)
}

// Init implements View.
func (p *ContentPage) Init() tea.Cmd {
	return nil
}

// Reset scrolls back to the top.
func (p *ContentPage) Reset() tea.Cmd {
	p.Viewport.GotoTop()
	return nil
}

// Update implements View.
func (p *ContentPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.Viewport.Width = msg.Width
		p.Viewport.Height = max(3, msg.Height-4)
		p.refresh()
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			p.ctrl.GoHome()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.Viewport, cmd = p.Viewport.Update(msg)
	return p, cmd
}

func (p *ContentPage) refresh() {
	p.Viewport.SetContent(p.render(max(20, p.width-8)))
}

// View implements View.
func (p *ContentPage) View() string {
	header := Styles.Brand.Render(catalog.Brand) + "   " +
		Styles.Selected.Render(strings.ToUpper(p.Page.Label())) +
		Styles.Hint.Render("   esc close   ↑/↓ scroll")
	scroll := Styles.Hint.Render(fmt.Sprintf("%3.f%%", p.Viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", p.Viewport.View(), scroll)
}

func renderStory(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Kicker.Render(textutil.Spaced(catalog.Story.Kicker)) + "\n\n")
	for _, l := range textutil.Wrap(catalog.Story.Headline, width) {
		b.WriteString(Styles.Headline.UnsetMarginBottom().Render(l) + "\n")
	}
	b.WriteString("\n")
	for _, l := range textutil.Wrap(catalog.Story.Quote, width-2) {
		b.WriteString(Styles.Muted.Italic(true).Render("│ "+l) + "\n")
	}
	b.WriteString("\n")
	for _, l := range textutil.Wrap(catalog.Story.Body, width) {
		b.WriteString(Styles.Body.Render(l) + "\n")
	}
	b.WriteString("\n")
	stats := make([]string, len(catalog.Story.Stats))
	for i, s := range catalog.Story.Stats {
		stats[i] = Styles.Card.Render(Styles.Headline.UnsetMarginBottom().Render(s.Value) + "\n" + Styles.Label.Render(s.Label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...) + "\n\n")
	b.WriteString(Styles.Muted.Render(textutil.Truncate(catalog.Story.Image, width)))
	return b.String()
}

func renderMenu(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Headline.Render("Our Menu") + "\n")
	for _, cat := range catalog.MenuCategories() {
		b.WriteString(Styles.Title.Render(cat.Name) + "\n\n")
		for _, e := range cat.Entries {
			name := textutil.PadRight(e.Name, max(10, width-10))
			b.WriteString(Styles.Selected.Render(name) + Styles.Body.Render(e.Price) + "\n")
			b.WriteString(Styles.Muted.Render(textutil.Truncate(e.Ingredients, width)) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLocations(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Headline.Render("Visit Us") + "\n")
	cardWidth := max(20, width-4)
	for _, loc := range catalog.Locations {
		body := Styles.Selected.Render(loc.Name) + "\n" +
			Styles.Body.Render(textutil.Truncate(loc.Address, cardWidth)) + "\n" +
			Styles.Muted.Render("Open "+loc.Hours)
		b.WriteString(Styles.Card.Width(cardWidth).Render(body) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
