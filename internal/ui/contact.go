package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/inquiry"
	"coffeeflavours/internal/viewstate"
)

// Contact form control IDs, in tab order.
const (
	fieldName    = "name"
	fieldEmail   = "email"
	fieldMessage = "message"
	fieldSend    = "send"
)

// ContactPage is the contact page with its message form.
type ContactPage struct {
	ctrl    *viewstate.Controller
	service inquiry.Service
	ctx     context.Context

	Name    textinput.Model
	Email   textinput.Model
	Message textarea.Model
	Focus   *FocusManager
	spinner spinner.Model

	Submitting bool
	Err        error
	Receipt    *inquiry.Receipt
	width      int
}

// Ensure ContactPage implements View and Resettable.
var (
	_ View       = (*ContactPage)(nil)
	_ Resettable = (*ContactPage)(nil)
)

// NewContactPage creates the contact page submitting through svc.
func NewContactPage(ctx context.Context, ctrl *viewstate.Controller, svc inquiry.Service) *ContactPage {
	p := &ContactPage{
		ctrl:    ctrl,
		service: svc,
		ctx:     ctx,
		Name:    textinput.New(),
		Email:   textinput.New(),
		Message: textarea.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   80,
	}
	p.Name.Placeholder = "Your name"
	p.Name.CharLimit = 80
	p.Email.Placeholder = "you@example.com"
	p.Email.CharLimit = 120
	p.Message.Placeholder = "How can we help?"
	p.Message.ShowLineNumbers = false
	p.Message.SetHeight(4)
	p.Focus = &FocusManager{
		Order: []string{fieldName, fieldEmail, fieldMessage, fieldSend},
		Controls: map[string]Focusable{
			fieldName:    &p.Name,
			fieldEmail:   &p.Email,
			fieldMessage: &p.Message,
		},
	}
	p.resize(80)
	return p
}

// Init implements View.
func (p *ContactPage) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form and focuses the name field.
func (p *ContactPage) Reset() tea.Cmd {
	p.Name.Reset()
	p.Email.Reset()
	p.Message.Reset()
	p.Err = nil
	p.Receipt = nil
	p.Submitting = false
	cmd, _ := p.Focus.SetFocus(fieldName)
	return cmd
}

// Form returns the message as currently typed.
func (p *ContactPage) Form() inquiry.ContactMessage {
	return inquiry.ContactMessage{
		Name:    p.Name.Value(),
		Email:   p.Email.Value(),
		Message: p.Message.Value(),
	}
}

func (p *ContactPage) resize(width int) {
	p.width = width
	w := max(20, min(60, width-12))
	p.Name.Width = w
	p.Email.Width = w
	p.Message.SetWidth(w)
}

// Update implements View.
func (p *ContactPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width)
		return p, nil
	case inquiry.ResultMsg:
		if msg.Kind != inquiry.KindContact {
			return p, nil
		}
		p.Submitting = false
		p.Err = msg.Err
		if msg.Err == nil {
			r := msg.Receipt
			p.Receipt = &r
			p.Name.Reset()
			p.Email.Reset()
			p.Message.Reset()
		}
		return p, nil
	case spinner.TickMsg:
		if !p.Submitting {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.ctrl.GoHome()
			return p, nil
		case "tab":
			return p, p.Focus.Next()
		case "shift+tab":
			return p, p.Focus.Prev()
		case "ctrl+s":
			return p, p.submit()
		case "enter":
			if p.Focus.Focused(fieldSend) {
				return p, p.submit()
			}
			if !p.Focus.Focused(fieldMessage) {
				return p, p.Focus.Next()
			}
		}
	}
	return p, p.updateFocused(msg)
}

func (p *ContactPage) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.Focus.Current {
	case fieldName:
		p.Name, cmd = p.Name.Update(msg)
	case fieldEmail:
		p.Email, cmd = p.Email.Update(msg)
	case fieldMessage:
		p.Message, cmd = p.Message.Update(msg)
	}
	return cmd
}

func (p *ContactPage) submit() tea.Cmd {
	if p.Submitting {
		return nil
	}
	p.Submitting = true
	p.Err = nil
	p.Receipt = nil
	return tea.Batch(p.service.SendMessage(p.ctx, p.Form()), p.spinner.Tick)
}

// View implements View.
func (p *ContactPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Brand.Render(catalog.Brand) + "   " +
		Styles.Selected.Render(strings.ToUpper(viewstate.PageContact.Label())) +
		Styles.Hint.Render("   esc close   tab next field   ctrl+s send"))
	b.WriteString("\n\n")
	b.WriteString(Styles.Headline.Render(catalog.Contact.Headline))
	b.WriteString("\n")
	b.WriteString(Styles.Label.Render("EMAIL ") + Styles.Body.Render(catalog.Contact.Email) + "\n")
	b.WriteString(Styles.Label.Render("PHONE ") + Styles.Body.Render(catalog.Contact.Phone) + "\n\n")

	b.WriteString(Styles.Label.Render("NAME") + "\n" + p.Name.View() + "\n\n")
	b.WriteString(Styles.Label.Render("EMAIL") + "\n" + p.Email.View() + "\n\n")
	b.WriteString(Styles.Label.Render("MESSAGE") + "\n" + p.Message.View() + "\n\n")

	button := Styles.Button
	if p.Focus.Focused(fieldSend) {
		button = Styles.ButtonFocused
	}
	b.WriteString(button.Render("Send Message"))

	switch {
	case p.Submitting:
		b.WriteString("  " + p.spinner.View() + Styles.Muted.Render(" sending"))
	case p.Err != nil:
		b.WriteString("\n" + Styles.Error.Render(p.Err.Error()))
	case p.Receipt != nil:
		b.WriteString("\n" + Styles.Success.Render("Thanks! We'll be in touch. Ref "+shortRef(p.Receipt.Reference)))
	}
	return Styles.Page.Render(b.String())
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
