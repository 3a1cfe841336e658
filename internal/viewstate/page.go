package viewstate

import (
	"encoding/json"
	"fmt"
)

// Page is one of the five named content views shown as the main view.
type Page int

const (
	PageHome Page = iota
	PageStory
	PageMenu
	PageLocations
	PageContact
)

// Pages lists every page in nav menu order.
var Pages = []Page{PageHome, PageStory, PageMenu, PageLocations, PageContact}

// String returns the page id.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageStory:
		return "story"
	case PageMenu:
		return "menu"
	case PageLocations:
		return "locations"
	case PageContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Label returns the nav menu caption for the page.
func (p Page) Label() string {
	switch p {
	case PageHome:
		return "Home"
	case PageStory:
		return "Our Story"
	case PageMenu:
		return "Menu"
	case PageLocations:
		return "Locations"
	case PageContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the five known pages.
func (p Page) Valid() bool {
	return p >= PageHome && p <= PageContact
}

// ParsePage converts a page id into a Page.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if p.String() == s {
			return p, nil
		}
	}
	return PageHome, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// MarshalJSON encodes the page as its id.
func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a page id.
func (p *Page) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePage(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
