// Package inquiry models table reservations and contact messages and the
// service that accepts them. Nothing is sent anywhere: the stub service
// acknowledges every valid request with a receipt.
package inquiry

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"coffeeflavours/internal/catalog"
)

// Kind identifies what a receipt acknowledges.
type Kind string

const (
	KindReservation Kind = "reservation"
	KindContact     Kind = "contact"
)

const (
	MinGuests     = 1
	MaxGuests     = 8
	DefaultGuests = 2
)

// DefaultDate is the reservation date offered by the booking modal.
var DefaultDate = time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

// Reservation is a table booking at one of the stores.
type Reservation struct {
	Location string
	Date     time.Time
	Guests   int
	CoffeeID string // coffee on screen when booking was opened
}

// NewReservation returns the modal defaults: flagship store, default date,
// two guests.
func NewReservation(coffeeID string) Reservation {
	return Reservation{
		Location: catalog.Locations[0].Name,
		Date:     DefaultDate,
		Guests:   DefaultGuests,
		CoffeeID: coffeeID,
	}
}

// AddGuests changes the party size by delta, clamped to [MinGuests, MaxGuests].
func (r Reservation) AddGuests(delta int) Reservation {
	r.Guests += delta
	if r.Guests < MinGuests {
		r.Guests = MinGuests
	}
	if r.Guests > MaxGuests {
		r.Guests = MaxGuests
	}
	return r
}

// GuestsLabel renders the party size, e.g. "2 People".
func (r Reservation) GuestsLabel() string {
	if r.Guests == 1 {
		return "1 Person"
	}
	return fmt.Sprintf("%d People", r.Guests)
}

// DateLabel renders the date as shown in the modal, e.g. "Feb 28, 2026".
func (r Reservation) DateLabel() string {
	return r.Date.Format("Jan 2, 2006")
}

// Validate checks the reservation against the store list and party limits.
func (r Reservation) Validate() error {
	known := false
	for _, loc := range catalog.Locations {
		if loc.Name == r.Location {
			known = true
			break
		}
	}
	if !known {
		return &ValidationError{Field: "location", Reason: fmt.Sprintf("unknown store %q", r.Location)}
	}
	if r.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if r.Guests < MinGuests || r.Guests > MaxGuests {
		return &ValidationError{Field: "guests", Reason: fmt.Sprintf("must be between %d and %d", MinGuests, MaxGuests)}
	}
	return nil
}

// ContactMessage is the contact page form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Validate requires every field and a parseable email address.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	email := strings.TrimSpace(m.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Reason: "not a valid address"}
	}
	if strings.TrimSpace(m.Message) == "" {
		return &ValidationError{Field: "message", Reason: "required"}
	}
	return nil
}

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Receipt acknowledges an accepted reservation or message.
type Receipt struct {
	Reference string
	Kind      Kind
	At        time.Time
}

// ResultMsg is the tea.Msg delivered when a submission finishes.
// Exactly one of Receipt and Err is meaningful.
type ResultMsg struct {
	Kind    Kind
	Receipt Receipt
	Err     error
}
