package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/inquiry"
	"coffeeflavours/internal/ui/textutil"
	"coffeeflavours/internal/viewstate"
)

// BookingModal is the centered reservation dialog. The selected coffee is
// carried into the reservation when the modal opens.
type BookingModal struct {
	ctrl    *viewstate.Controller
	service inquiry.Service
	ctx     context.Context

	Reservation inquiry.Reservation
	Submitting  bool
	Err         error
	spinner     spinner.Model

	width, height int
}

// Ensure BookingModal implements View and Resettable.
var (
	_ View       = (*BookingModal)(nil)
	_ Resettable = (*BookingModal)(nil)
)

// NewBookingModal creates the booking modal submitting through svc.
func NewBookingModal(ctx context.Context, ctrl *viewstate.Controller, svc inquiry.Service) *BookingModal {
	return &BookingModal{
		ctrl:        ctrl,
		service:     svc,
		ctx:         ctx,
		Reservation: inquiry.NewReservation(ctrl.CurrentCoffee().ID),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:       80,
		height:      24,
	}
}

// Init implements View.
func (m *BookingModal) Init() tea.Cmd {
	return nil
}

// Reset starts a fresh reservation for the selected coffee.
func (m *BookingModal) Reset() tea.Cmd {
	m.Reservation = inquiry.NewReservation(m.ctrl.CurrentCoffee().ID)
	m.Submitting = false
	m.Err = nil
	return nil
}

// Update implements View.
func (m *BookingModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case inquiry.ResultMsg:
		if msg.Kind != inquiry.KindReservation {
			return m, nil
		}
		m.Submitting = false
		m.Err = msg.Err
		if msg.Err == nil {
			m.ctrl.CloseBooking()
		}
	case spinner.TickMsg:
		if m.Submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		if m.Submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			m.ctrl.CloseBooking()
		case "+", "=", "right", "l":
			m.Reservation = m.Reservation.AddGuests(1)
		case "-", "left", "h":
			m.Reservation = m.Reservation.AddGuests(-1)
		case "enter":
			m.Submitting = true
			m.Err = nil
			return m, tea.Batch(m.service.Reserve(m.ctx, m.Reservation), m.spinner.Tick)
		}
	}
	return m, nil
}

// View implements View.
func (m *BookingModal) View() string {
	coffee := m.ctrl.CurrentCoffee()
	if i := m.ctrl.Catalog().IndexOf(m.Reservation.CoffeeID); i >= 0 {
		coffee, _ = m.ctrl.Catalog().At(i)
	}
	_, accent := HeroStyles(coffee)

	field := func(label, value string) string {
		return Styles.Label.Render(label) + "\n" + Styles.Field.Width(32).Render(textutil.Truncate(value, 30))
	}
	lines := []string{
		Styles.Kicker.Render(textutil.Spaced("reservation")),
		Styles.Headline.Render("Book a Table"),
		accent.Render("with a " + coffee.Name),
		"",
		field("LOCATION", m.Reservation.Location),
		"",
		field("DATE", m.Reservation.DateLabel()),
		"",
		field("GUESTS", "−  "+m.Reservation.GuestsLabel()+"  +"),
		"",
		Styles.Button.Render("Confirm Booking"),
	}
	switch {
	case m.Submitting:
		lines = append(lines, "", m.spinner.View()+Styles.Muted.Render(" booking"))
	case m.Err != nil:
		lines = append(lines, "", Styles.Error.Render(m.Err.Error()))
	}
	lines = append(lines, "", Styles.Hint.Render("+/- guests   enter confirm   esc close"))

	box := Styles.Modal.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(ColorPaper)),
	)
}
