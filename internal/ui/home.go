package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/ui/textutil"
	"coffeeflavours/internal/viewstate"
)

// HomeView is the landing screen: a hero panel tinted with the selected
// coffee and the carousel rail.
type HomeView struct {
	ctrl          *viewstate.Controller
	width, height int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home screen over ctrl.
func NewHomeView(ctrl *viewstate.Controller) *HomeView {
	return &HomeView{ctrl: ctrl, width: 80, height: 24}
}

// Init implements View.
func (v *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *HomeView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s := msg.String(); s {
	case "right", "l", "j", "down":
		v.ctrl.NextCoffee()
	case "left", "h", "k", "up":
		v.ctrl.PrevCoffee()
	case "b", "enter":
		v.ctrl.OpenBooking()
	case "/":
		v.ctrl.OpenSearch()
	case "m":
		v.ctrl.OpenMenu()
	case "q":
		return tea.Quit
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 9 {
			return reportErr(viewstate.OpSelectCoffee, v.ctrl.SelectCoffee(n-1))
		}
	}
	return nil
}

// View implements View.
func (v *HomeView) View() string {
	item := v.ctrl.CurrentCoffee()
	heroWidth := v.width * 3 / 5
	if heroWidth < 30 {
		heroWidth = 30
	}
	railWidth := v.width - heroWidth - 2
	if railWidth < 18 {
		railWidth = 18
	}

	header := v.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		v.renderHero(item, heroWidth),
		"  ",
		v.renderRail(railWidth),
	)
	footer := Styles.Muted.Render(strings.Join(catalog.SocialLinks, "  ·  "))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (v *HomeView) renderHeader() string {
	brand := Styles.Brand.Render(catalog.Brand)
	hints := Styles.Hint.Render("/ search   m menu   b book   SPC more")
	gap := v.width - lipgloss.Width(brand) - lipgloss.Width(hints)
	if gap < 2 {
		gap = 2
	}
	return brand + strings.Repeat(" ", gap) + hints
}

func (v *HomeView) renderHero(item catalog.CoffeeItem, width int) string {
	panel, accent := HeroStyles(item)
	inner := width - 4
	lines := []string{
		accent.Bold(true).Render(textutil.Spaced("signature")),
		"",
		panel.Bold(true).Render(strings.ToUpper(item.Name)),
		accent.Render(v.ctrl.PositionLabel()),
		"",
	}
	for _, l := range textutil.Wrap(item.Description, inner) {
		lines = append(lines, panel.Render(l))
	}
	lines = append(lines,
		"",
		panel.Faint(true).Render(textutil.Truncate(item.Image, inner)),
		"",
		Styles.ButtonAccent.Render("Book Now"),
	)
	return panel.Width(width).Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (v *HomeView) renderRail(width int) string {
	state := v.ctrl.State()
	items := v.ctrl.Catalog().Items()
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, Styles.Kicker.Render(textutil.Spaced("flavours")), "")
	for i, it := range items {
		label := textutil.Truncate(fmt.Sprintf("%02d  %s", i+1, it.Name), width-2)
		if i == state.SelectedIndex {
			lines = append(lines, Styles.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, Styles.Muted.Render("  "+label))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
