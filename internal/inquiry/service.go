package inquiry

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Service accepts reservations and contact messages. Calls return a
// command; the result arrives as a ResultMsg.
type Service interface {
	Reserve(ctx context.Context, r Reservation) tea.Cmd
	SendMessage(ctx context.Context, m ContactMessage) tea.Cmd
}

// StubService validates requests and answers with a fresh receipt after
// Delay. It never talks to a backend.
type StubService struct {
	Delay time.Duration
	Now   func() time.Time
}

// Ensure StubService implements Service.
var _ Service = (*StubService)(nil)

// Reserve implements Service.
func (s *StubService) Reserve(ctx context.Context, r Reservation) tea.Cmd {
	return s.submit(ctx, KindReservation, r.Validate())
}

// SendMessage implements Service.
func (s *StubService) SendMessage(ctx context.Context, m ContactMessage) tea.Cmd {
	return s.submit(ctx, KindContact, m.Validate())
}

func (s *StubService) submit(ctx context.Context, kind Kind, validation error) tea.Cmd {
	return func() tea.Msg {
		if validation != nil {
			return ResultMsg{Kind: kind, Err: validation}
		}
		if s.Delay > 0 {
			select {
			case <-ctx.Done():
				return ResultMsg{Kind: kind, Err: ctx.Err()}
			case <-time.After(s.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return ResultMsg{Kind: kind, Err: err}
		}
		return ResultMsg{Kind: kind, Receipt: Receipt{
			Reference: uuid.NewString(),
			Kind:      kind,
			At:        s.now(),
		}}
	}
}

func (s *StubService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
