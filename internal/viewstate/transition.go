package viewstate

import "time"

// Op names a controller operation. Used as a transition and span label.
type Op string

const (
	OpSelectCoffee     Op = "select_coffee"
	OpNextCoffee       Op = "next_coffee"
	OpPrevCoffee       Op = "prev_coffee"
	OpOpenMenu         Op = "open_menu"
	OpCloseMenu        Op = "close_menu"
	OpOpenSearch       Op = "open_search"
	OpCloseSearch      Op = "close_search"
	OpOpenBooking      Op = "open_booking"
	OpCloseBooking     Op = "close_booking"
	OpNavigate         Op = "navigate"
	OpNavigateFromMenu Op = "navigate_from_menu"
	OpGoHome           Op = "go_home"
	OpReset            Op = "reset"
)

// Transition describes a state change. It is only emitted when From != To.
// The rendering layer uses it to sequence exit-then-enter visuals.
type Transition struct {
	Op   Op
	From State
	To   State
	At   time.Time
}

// CoffeeChanged reports whether the carousel selection moved.
func (t Transition) CoffeeChanged() bool {
	return t.From.SelectedIndex != t.To.SelectedIndex
}

// ScreenChanged reports whether the topmost visible layer changed.
func (t Transition) ScreenChanged() bool {
	return t.From.Screen() != t.To.Screen()
}

// Observer receives transitions. Implementations must not block; the
// controller does not wait on them.
type Observer interface {
	OnTransition(Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Transition)

// OnTransition implements Observer.
func (f ObserverFunc) OnTransition(t Transition) { f(t) }

// MultiObserver fans out transitions to multiple observers.
// Nil observers are skipped.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver forwarding to all non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Len returns the number of observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

// OnTransition forwards the transition to all observers.
// A panicking observer does not stop the others.
func (m *MultiObserver) OnTransition(t Transition) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnTransition(t) })
	}
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// ChanEmitter forwards transitions to a channel.
type ChanEmitter struct {
	Ch chan<- Transition
}

// Ensure ChanEmitter implements Observer.
var _ Observer = (*ChanEmitter)(nil)

// OnTransition sends the transition (non-blocking; drops if full).
func (e *ChanEmitter) OnTransition(t Transition) {
	select {
	case e.Ch <- t:
	default:
		// Channel full; drop rather than stall the update loop
	}
}
