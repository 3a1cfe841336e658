// Package viewstate owns all mutable UI state of the storefront and the
// rules for moving between views. Renderers read snapshots; every write goes
// through a Controller operation.
package viewstate

import (
	"fmt"
	"sync"
	"time"

	"coffeeflavours/internal/catalog"
)

// Controller is the single owner of ViewState. Operations are synchronous,
// total and idempotent; observers hear about every change that actually
// alters the state.
type Controller struct {
	mu        sync.RWMutex
	catalog   *catalog.Catalog
	state     State
	exclusive bool
	observer  Observer
	now       func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver sets the transition observer. Use NewMultiObserver to attach
// several.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithExclusiveOverlays makes opening any overlay or page close the others,
// so at most one layer is ever active above home.
func WithExclusiveOverlays(enabled bool) Option {
	return func(c *Controller) { c.exclusive = enabled }
}

// WithClock overrides the transition timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a controller in the default state over cat.
// cat must hold at least one item.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		state:   DefaultState(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the controller selects from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Exclusive reports whether single-layer mode is on.
func (c *Controller) Exclusive() bool {
	return c.exclusive
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentCoffee returns the selected catalog item.
func (c *Controller) CurrentCoffee() catalog.CoffeeItem {
	item, _ := c.catalog.At(c.State().SelectedIndex)
	return item
}

// PositionLabel renders the carousel position, e.g. "03 / 05".
func (c *Controller) PositionLabel() string {
	return PositionLabel(c.State().SelectedIndex, c.catalog.Len())
}

// PositionLabel formats index (0-based) against total, both zero padded to
// two digits.
func PositionLabel(index, total int) string {
	return fmt.Sprintf("%02d / %02d", index+1, total)
}

// SelectCoffee selects the catalog item at i.
func (c *Controller) SelectCoffee(i int) error {
	if i < 0 || i >= c.catalog.Len() {
		return fmt.Errorf("select coffee %d of %d: %w", i, c.catalog.Len(), ErrOutOfRange)
	}
	c.apply(OpSelectCoffee, func(s *State) { s.SelectedIndex = i })
	return nil
}

// NextCoffee advances the carousel, wrapping after the last item.
func (c *Controller) NextCoffee() {
	n := c.catalog.Len()
	c.apply(OpNextCoffee, func(s *State) { s.SelectedIndex = (s.SelectedIndex + 1) % n })
}

// PrevCoffee steps the carousel back, wrapping before the first item.
func (c *Controller) PrevCoffee() {
	n := c.catalog.Len()
	c.apply(OpPrevCoffee, func(s *State) { s.SelectedIndex = (s.SelectedIndex - 1 + n) % n })
}

// OpenMenu opens the slide-in navigation menu.
func (c *Controller) OpenMenu() {
	c.apply(OpOpenMenu, func(s *State) {
		c.clearOthers(s)
		s.MenuOpen = true
	})
}

// CloseMenu closes the navigation menu.
func (c *Controller) CloseMenu() {
	c.apply(OpCloseMenu, func(s *State) { s.MenuOpen = false })
}

// OpenSearch opens the search overlay.
func (c *Controller) OpenSearch() {
	c.apply(OpOpenSearch, func(s *State) {
		c.clearOthers(s)
		s.SearchOpen = true
	})
}

// CloseSearch closes the search overlay.
func (c *Controller) CloseSearch() {
	c.apply(OpCloseSearch, func(s *State) { s.SearchOpen = false })
}

// OpenBooking opens the booking modal.
func (c *Controller) OpenBooking() {
	c.apply(OpOpenBooking, func(s *State) {
		c.clearOthers(s)
		s.BookingOpen = true
	})
}

// CloseBooking closes the booking modal.
func (c *Controller) CloseBooking() {
	c.apply(OpCloseBooking, func(s *State) { s.BookingOpen = false })
}

// Navigate makes p the active page.
func (c *Controller) Navigate(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("navigate to page %d: %w", int(p), ErrUnknownPage)
	}
	c.apply(OpNavigate, func(s *State) {
		c.clearOthers(s)
		s.ActivePage = p
	})
	return nil
}

// NavigateFromMenu is Navigate as triggered from the nav menu: the menu
// closes as part of the same transition.
func (c *Controller) NavigateFromMenu(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("navigate from menu to page %d: %w", int(p), ErrUnknownPage)
	}
	c.apply(OpNavigateFromMenu, func(s *State) {
		c.clearOthers(s)
		s.ActivePage = p
		s.MenuOpen = false
	})
	return nil
}

// NavigateTo parses a page id and navigates to it.
func (c *Controller) NavigateTo(id string) error {
	p, err := ParsePage(id)
	if err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	return c.Navigate(p)
}

// GoHome returns to the home page and closes every overlay. The carousel
// selection is kept.
func (c *Controller) GoHome() {
	c.apply(OpGoHome, func(s *State) {
		s.ActivePage = PageHome
		s.MenuOpen = false
		s.SearchOpen = false
		s.BookingOpen = false
	})
}

// Reset restores the mount-time defaults.
func (c *Controller) Reset() {
	c.apply(OpReset, func(s *State) { *s = DefaultState() })
}

// clearOthers closes every layer when single-layer mode is on. The caller
// then opens the one it wants.
func (c *Controller) clearOthers(s *State) {
	if !c.exclusive {
		return
	}
	s.ActivePage = PageHome
	s.MenuOpen = false
	s.SearchOpen = false
	s.BookingOpen = false
}

// apply mutates state under the lock and notifies the observer outside it.
func (c *Controller) apply(op Op, mutate func(*State)) {
	c.mu.Lock()
	from := c.state
	mutate(&c.state)
	to := c.state
	c.mu.Unlock()

	if from == to || c.observer == nil {
		return
	}
	c.observer.OnTransition(Transition{Op: op, From: from, To: to, At: c.now()})
}
