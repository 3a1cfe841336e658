package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"coffeeflavours/internal/config"
	"coffeeflavours/internal/inquiry"
	"coffeeflavours/internal/logging"
	"coffeeflavours/internal/viewstate"
)

// AppModel is the root model. It renders the topmost screen of the
// controller state and routes keys to it.
type AppModel struct {
	Ctrl        *viewstate.Controller
	Config      *config.Config
	Log         *logrus.Logger
	KeyHandler  *KeyHandler
	Animator    *Animator
	Transitions <-chan viewstate.Transition

	Home      *HomeView
	NavMenu   *NavMenuView
	Search    *SearchView
	Booking   *BookingModal
	Story     *ContentPage
	MenuPage  *ContentPage
	Locations *ContentPage
	Contact   *ContactPage

	Status    string
	StatusErr bool

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Deps are the collaborators of the app. Zero fields get defaults: an
// info-level config, a discarding logger and the stub inquiry service.
type Deps struct {
	Ctx         context.Context
	Config      *config.Config
	Log         *logrus.Logger
	Service     inquiry.Service
	Transitions <-chan viewstate.Transition
}

// NewAppModel creates the root application model over ctrl.
func NewAppModel(ctrl *viewstate.Controller, deps Deps) *AppModel {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	if deps.Service == nil {
		deps.Service = &inquiry.StubService{}
	}
	return &AppModel{
		Ctrl:        ctrl,
		Config:      deps.Config,
		Log:         deps.Log,
		KeyHandler:  NewKeyHandler(NewGlobalKeybinds()),
		Animator:    NewAnimator(deps.Config.Animations, deps.Config.FrameRate),
		Transitions: deps.Transitions,
		Home:        NewHomeView(ctrl),
		NavMenu:     NewNavMenuView(ctrl),
		Search:      NewSearchView(ctrl),
		Booking:     NewBookingModal(deps.Ctx, ctrl, deps.Service),
		Story:       NewStoryPage(ctrl),
		MenuPage:    NewMenuPage(ctrl),
		Locations:   NewLocationsPage(ctrl),
		Contact:     NewContactPage(deps.Ctx, ctrl, deps.Service),
		width:       80,
		height:      24,
	}
}

// NewGlobalKeybinds returns the SPC-leader bindings available on every
// screen that does not take text input.
func NewGlobalKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC m", msgCmd(OpenMenuMsg{}), "Menu")
	reg.BindWithDesc("SPC /", msgCmd(OpenSearchMsg{}), "Search")
	reg.BindWithDesc("SPC b", msgCmd(OpenBookingMsg{}), "Book a table")
	reg.BindWithDesc("SPC r", msgCmd(ResetMsg{}), "Reset")

	notHome := []viewstate.Screen{
		viewstate.ScreenStory, viewstate.ScreenMenuPage, viewstate.ScreenLocations,
		viewstate.ScreenContact, viewstate.ScreenNavMenu, viewstate.ScreenSearch, viewstate.ScreenBooking,
	}
	reg.BindWithDescForScreens("SPC h", msgCmd(GoHomeMsg{}), "Home", notHome)

	goKeys := map[viewstate.Page]string{
		viewstate.PageHome:      "h",
		viewstate.PageStory:     "s",
		viewstate.PageMenu:      "m",
		viewstate.PageLocations: "l",
		viewstate.PageContact:   "c",
	}
	for _, p := range viewstate.Pages {
		reg.BindWithDesc("SPC g "+goKeys[p], msgCmd(NavigateMsg{Page: p}), p.Label())
	}
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		listenTransitions(a.Transitions),
		a.Search.Init(),
		a.Contact.Init(),
	)
}

// Update implements tea.Model. After every message the views whose layer
// just became visible are reset.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := a.Ctrl.State()
	cmd := a.update(msg)
	if after := a.Ctrl.State(); after != before {
		cmd = tea.Batch(cmd, a.revealed(before, after))
	}
	return a, cmd
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		for _, v := range a.views() {
			_, cmd := v.Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	case transitionMsg:
		return tea.Batch(a.Animator.Start(msg.Transition), listenTransitions(a.Transitions))
	case frameMsg:
		return a.Animator.Update(msg)
	case NavigateMsg:
		return a.warn(viewstate.OpNavigate, a.Ctrl.Navigate(msg.Page))
	case OpenMenuMsg:
		a.Ctrl.OpenMenu()
		return nil
	case OpenSearchMsg:
		a.Ctrl.OpenSearch()
		return nil
	case OpenBookingMsg:
		a.Ctrl.OpenBooking()
		return nil
	case GoHomeMsg:
		a.Ctrl.GoHome()
		return nil
	case ResetMsg:
		a.Ctrl.Reset()
		a.setStatus("", false)
		return nil
	case ControllerErrMsg:
		return a.warn(msg.Op, msg.Err)
	case inquiry.ResultMsg:
		a.recordResult(msg)
		_, c1 := a.Booking.Update(msg)
		_, c2 := a.Contact.Update(msg)
		return tea.Batch(c1, c2)
	case spinner.TickMsg:
		_, c1 := a.Booking.Update(msg)
		_, c2 := a.Contact.Update(msg)
		return tea.Batch(c1, c2)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		screen := a.Ctrl.State().Screen()
		if a.KeyHandler != nil && !takesText(screen) {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, screen); consumed {
				return keyCmd
			}
		}
	}

	_, cmd := a.currentView().Update(msg)
	return cmd
}

// takesText reports whether screen has a focused text field, in which case
// the leader key is typed rather than interpreted.
func takesText(s viewstate.Screen) bool {
	return s == viewstate.ScreenSearch || s == viewstate.ScreenContact
}

func (a *appModelAdapter) warn(op viewstate.Op, err error) tea.Cmd {
	if err != nil {
		a.Log.WithError(err).WithField("op", string(op)).Warn("view operation rejected")
	}
	return nil
}

func (a *AppModel) recordResult(msg inquiry.ResultMsg) {
	if msg.Err != nil {
		a.Log.WithError(msg.Err).WithField("kind", string(msg.Kind)).Info("inquiry rejected")
		a.setStatus(string(msg.Kind)+" failed: "+msg.Err.Error(), true)
		return
	}
	a.Log.WithFields(logrus.Fields{
		"kind":      string(msg.Receipt.Kind),
		"reference": msg.Receipt.Reference,
	}).Info("inquiry accepted")
	switch msg.Kind {
	case inquiry.KindReservation:
		a.setStatus("Table booked · ref "+shortRef(msg.Receipt.Reference), false)
	default:
		a.setStatus("Message sent · ref "+shortRef(msg.Receipt.Reference), false)
	}
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusErr = isErr
}

// revealed resets every view whose layer is visible in after but was not in
// before.
func (a *appModelAdapter) revealed(before, after viewstate.State) tea.Cmd {
	was := make(map[viewstate.Screen]bool)
	for _, s := range before.Layers() {
		was[s] = true
	}
	var cmds []tea.Cmd
	for _, s := range after.Layers() {
		if was[s] {
			continue
		}
		if r, ok := a.viewFor(s).(Resettable); ok {
			cmds = append(cmds, r.Reset())
		}
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	screen := a.Ctrl.State().Screen()
	out := a.Animator.Apply(screen, a.viewFor(screen).View())
	if a.Status != "" {
		style := Styles.Success
		if a.StatusErr {
			style = Styles.Error
		}
		out += "\n" + style.Render(a.Status)
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		out += "\n" + RenderKeybindHelp(a.KeyHandler, screen)
	}
	return out
}

func (a *AppModel) currentView() View {
	return a.viewFor(a.Ctrl.State().Screen())
}

func (a *AppModel) viewFor(s viewstate.Screen) View {
	switch s {
	case viewstate.ScreenNavMenu:
		return a.NavMenu
	case viewstate.ScreenSearch:
		return a.Search
	case viewstate.ScreenBooking:
		return a.Booking
	case viewstate.ScreenStory:
		return a.Story
	case viewstate.ScreenMenuPage:
		return a.MenuPage
	case viewstate.ScreenLocations:
		return a.Locations
	case viewstate.ScreenContact:
		return a.Contact
	default:
		return a.Home
	}
}

func (a *AppModel) views() []View {
	return []View{a.Home, a.NavMenu, a.Search, a.Booking, a.Story, a.MenuPage, a.Locations, a.Contact}
}
