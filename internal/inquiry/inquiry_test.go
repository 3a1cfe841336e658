package inquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewReservation_Defaults(t *testing.T) {
	r := NewReservation("latte")
	if r.Location != "Downtown Hub" {
		t.Errorf("Location: expected Downtown Hub, got %q", r.Location)
	}
	if r.DateLabel() != "Feb 28, 2026" {
		t.Errorf("DateLabel: expected Feb 28, 2026, got %q", r.DateLabel())
	}
	if r.GuestsLabel() != "2 People" {
		t.Errorf("GuestsLabel: expected 2 People, got %q", r.GuestsLabel())
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestReservation_AddGuestsClamps(t *testing.T) {
	r := NewReservation("")
	r = r.AddGuests(-5)
	if r.Guests != MinGuests {
		t.Errorf("expected %d guests, got %d", MinGuests, r.Guests)
	}
	if r.GuestsLabel() != "1 Person" {
		t.Errorf("GuestsLabel: got %q", r.GuestsLabel())
	}
	r = r.AddGuests(100)
	if r.Guests != MaxGuests {
		t.Errorf("expected %d guests, got %d", MaxGuests, r.Guests)
	}
}

func TestReservation_Validate(t *testing.T) {
	r := NewReservation("")
	r.Location = "Moon Base"
	var vErr *ValidationError
	if err := r.Validate(); !errors.As(err, &vErr) || vErr.Field != "location" {
		t.Errorf("expected location error, got %v", err)
	}
	r = NewReservation("")
	r.Guests = 0
	if err := r.Validate(); !errors.As(err, &vErr) || vErr.Field != "guests" {
		t.Errorf("expected guests error, got %v", err)
	}
}

func TestContactMessage_Validate(t *testing.T) {
	tests := []struct {
		name  string
		msg   ContactMessage
		field string
	}{
		{"ok", ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"}, ""},
		{"no name", ContactMessage{Email: "ada@example.com", Message: "Hi"}, "name"},
		{"no email", ContactMessage{Name: "Ada", Message: "Hi"}, "email"},
		{"bad email", ContactMessage{Name: "Ada", Email: "ada at example", Message: "Hi"}, "email"},
		{"blank message", ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "  "}, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestStubService_ReserveReturnsReceipt(t *testing.T) {
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc := &StubService{Now: func() time.Time { return at }}
	cmd := svc.Reserve(context.Background(), NewReservation("mocha"))
	if cmd == nil {
		t.Fatal("Reserve should return non-nil Cmd")
	}
	res, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Kind != KindReservation || res.Receipt.Kind != KindReservation {
		t.Errorf("expected reservation kind, got %s/%s", res.Kind, res.Receipt.Kind)
	}
	if _, err := uuid.Parse(res.Receipt.Reference); err != nil {
		t.Errorf("reference should be a uuid: %v", err)
	}
	if !res.Receipt.At.Equal(at) {
		t.Errorf("expected receipt time %v, got %v", at, res.Receipt.At)
	}
}

func TestStubService_SendMessageValidationError(t *testing.T) {
	svc := &StubService{}
	res := svc.SendMessage(context.Background(), ContactMessage{Name: "Ada"})().(ResultMsg)
	var vErr *ValidationError
	if !errors.As(res.Err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", res.Err)
	}
	if res.Receipt.Reference != "" {
		t.Error("failed submission should carry no receipt")
	}
}

func TestStubService_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := &StubService{Delay: time.Second}
	res := svc.Reserve(ctx, NewReservation(""))().(ResultMsg)
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", res.Err)
	}
}
