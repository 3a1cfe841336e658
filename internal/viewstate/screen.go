package viewstate

// Screen identifies a single visible layer: the home view, one of the four
// content pages, or one of the three overlays.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenStory
	ScreenMenuPage
	ScreenLocations
	ScreenContact
	ScreenNavMenu
	ScreenSearch
	ScreenBooking
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenStory:
		return "story"
	case ScreenMenuPage:
		return "menu-page"
	case ScreenLocations:
		return "locations"
	case ScreenContact:
		return "contact"
	case ScreenNavMenu:
		return "nav-menu"
	case ScreenSearch:
		return "search"
	case ScreenBooking:
		return "booking"
	default:
		return "unknown"
	}
}

// IsPage reports whether the screen is a full-screen content page.
func (s Screen) IsPage() bool {
	return s >= ScreenStory && s <= ScreenContact
}

// IsOverlay reports whether the screen is the nav menu, search or booking.
func (s Screen) IsOverlay() bool {
	return s >= ScreenNavMenu && s <= ScreenBooking
}

func pageScreen(p Page) Screen {
	switch p {
	case PageStory:
		return ScreenStory
	case PageMenu:
		return ScreenMenuPage
	case PageLocations:
		return ScreenLocations
	case PageContact:
		return ScreenContact
	default:
		return ScreenHome
	}
}
