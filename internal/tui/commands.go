package tui

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// API is the part of the HTTP client the interface uses.
type API interface {
	Board(ctx context.Context) ([]domain.BoardEntry, error)
	Bookings(ctx context.Context) ([]domain.Booking, error)
	Drivers(ctx context.Context) ([]domain.Driver, error)
	RegisterDriver(ctx context.Context, req client.RegisterDriverRequest) (*domain.Driver, error)
	UpdateDriverStatus(ctx context.Context, req client.UpdateStatusRequest) (*domain.DriverStatus, error)
	CreateBooking(ctx context.Context, req client.CreateBookingRequest) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	DeleteDriver(ctx context.Context, id string) error
}

type tickMsg time.Time

type dataMsg struct {
	board    []domain.BoardEntry
	bookings []domain.Booking
	drivers  []domain.Driver
	err      error
}

// actionMsg reports the outcome of a form submission or delete.
type actionMsg struct {
	notice string
	err    error
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetch() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var msg dataMsg
		if msg.board, msg.err = api.Board(ctx); msg.err != nil {
			return msg
		}
		if msg.bookings, msg.err = api.Bookings(ctx); msg.err != nil {
			return msg
		}
		msg.drivers, msg.err = api.Drivers(ctx)
		return msg
	}
}

func (m Model) action(notice, failure string, call func(ctx context.Context) error) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := call(ctx); err != nil {
			return actionMsg{notice: failure, err: err}
		}
		return actionMsg{notice: notice}
	}
}
