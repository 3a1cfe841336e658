package viewstate

// State is a snapshot of all mutable UI state. It is comparable, so two
// snapshots can be checked for equality with ==.
type State struct {
	SelectedIndex int  `json:"selected_index"`
	MenuOpen      bool `json:"menu_open"`
	SearchOpen    bool `json:"search_open"`
	BookingOpen   bool `json:"booking_open"`
	ActivePage    Page `json:"active_page"`
}

// DefaultState is the state at mount: first coffee, nothing open, home page.
func DefaultState() State {
	return State{ActivePage: PageHome}
}

// IsHome reports the canonical home state for the current selection:
// home page with every overlay closed.
func (s State) IsHome() bool {
	return s.ActivePage == PageHome && !s.MenuOpen && !s.SearchOpen && !s.BookingOpen
}

// OpenOverlays counts how many overlays (menu, search, booking) are open.
func (s State) OpenOverlays() int {
	n := 0
	for _, open := range []bool{s.MenuOpen, s.SearchOpen, s.BookingOpen} {
		if open {
			n++
		}
	}
	return n
}

// Screen returns the topmost visible layer. Content pages sit above every
// overlay, then booking, search and the nav menu, then home.
func (s State) Screen() Screen {
	switch {
	case s.ActivePage != PageHome:
		return pageScreen(s.ActivePage)
	case s.BookingOpen:
		return ScreenBooking
	case s.SearchOpen:
		return ScreenSearch
	case s.MenuOpen:
		return ScreenNavMenu
	default:
		return ScreenHome
	}
}

// Layers returns every visible layer from bottom to top. Home is always
// present underneath.
func (s State) Layers() []Screen {
	layers := []Screen{ScreenHome}
	if s.MenuOpen {
		layers = append(layers, ScreenNavMenu)
	}
	if s.SearchOpen {
		layers = append(layers, ScreenSearch)
	}
	if s.BookingOpen {
		layers = append(layers, ScreenBooking)
	}
	if s.ActivePage != PageHome {
		layers = append(layers, pageScreen(s.ActivePage))
	}
	return layers
}
