package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Board(ctx context.Context) ([]domain.BoardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BoardEntry), args.Error(1)
}

func (m *MockAPI) Bookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockAPI) Drivers(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockAPI) RegisterDriver(ctx context.Context, req client.RegisterDriverRequest) (*domain.Driver, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockAPI) UpdateDriverStatus(ctx context.Context, req client.UpdateStatusRequest) (*domain.DriverStatus, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverStatus), args.Error(1)
}

func (m *MockAPI) CreateBooking(ctx context.Context, req client.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockAPI) DeleteBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) DeleteDriver(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var testBoard = []domain.BoardEntry{
	{
		ID:            "sched-001",
		DriverID:      "driver-001",
		DriverName:    "John Mbugua",
		BusNumber:     "KCC 456",
		Stage:         "Nairobi Central",
		DepartureTime: "06:00",
		Phone:         "+254712345678",
		Route:         domain.RouteName,
		Source:        domain.BoardSourceSeed,
		WhatsAppURL:   "https://wa.me/254712345678?text=Hi",
	},
}

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 5, 30, 0, 0, time.UTC) }

func loaded(t *testing.T, api *MockAPI) Model {
	t.Helper()
	m := New(api, WithClock(fixedNow))
	updated, _ := m.Update(dataMsg{
		board:    testBoard,
		bookings: []domain.Booking{{ID: "b-1", PassengerName: "Wanjiru", SeatNumber: "A1"}},
		drivers:  []domain.Driver{{ID: "d-1", Name: "Peter", Status: "active"}},
	})
	return updated.(Model)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var updated tea.Model = m
	for _, k := range keys {
		updated, cmd = updated.(Model).Update(k)
	}
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_FetchPopulatesTabs(t *testing.T) {
	api := &MockAPI{}
	api.On("Board", mock.Anything).Return(testBoard, nil)
	api.On("Bookings", mock.Anything).Return([]domain.Booking{}, nil)
	api.On("Drivers", mock.Anything).Return([]domain.Driver{}, nil)

	m := New(api)
	msg := m.fetch()()
	updated, _ := m.Update(msg)
	view := updated.(Model).View()

	assert.Contains(t, view, "John Mbugua")
	assert.Contains(t, view, "https://wa.me/254712345678?text=Hi")
	api.AssertExpectations(t)
}

func TestModel_FetchError(t *testing.T) {
	api := &MockAPI{}
	api.On("Board", mock.Anything).Return(nil, errors.New("connection refused"))

	m := New(api)
	updated, _ := m.Update(m.fetch()())

	assert.Contains(t, updated.(Model).View(), "Could not reach the server")
	api.AssertNotCalled(t, "Bookings", mock.Anything)
}

func TestModel_TabSwitching(t *testing.T) {
	m := loaded(t, &MockAPI{})

	m, _ = press(t, m, runes("2"))
	assert.Equal(t, tabBookings, m.active)
	assert.Contains(t, m.View(), "Wanjiru")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabDrivers, m.active)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabSchedules, m.active)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabDrivers, m.active)
}

func TestModel_QuickBooking(t *testing.T) {
	api := &MockAPI{}
	m := loaded(t, api)

	m, _ = press(t, m, runes("b"))
	require.NotNil(t, m.form)
	assert.Equal(t, formBooking, m.form.kind)

	m, _ = press(t, m, runes("Wanjiru"), tea.KeyMsg{Type: tea.KeyTab}, runes("A3"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Nil(t, m.form)

	want := client.BookingFromBoard(testBoard[0], "Wanjiru", "A3", fixedNow())
	api.On("CreateBooking", mock.Anything, want).Return(&domain.Booking{ID: "b-2"}, nil)

	msg := cmd()
	assert.Equal(t, actionMsg{notice: "Booking confirmed!"}, msg)
	api.AssertExpectations(t)

	updated, refresh := m.Update(msg)
	assert.NotNil(t, refresh)
	assert.Contains(t, updated.(Model).View(), "Booking confirmed!")
}

func TestModel_IncompleteForm(t *testing.T) {
	api := &MockAPI{}
	m := loaded(t, api)

	m, _ = press(t, m, runes("3"), runes("n"))
	require.NotNil(t, m.form)
	assert.Equal(t, formRegister, m.form.kind)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.NotNil(t, m.form)
	assert.Contains(t, m.View(), msgFillAllFields)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.form)
}

func TestModel_StatusFormPrefilled(t *testing.T) {
	api := &MockAPI{}
	m := loaded(t, api)

	m, _ = press(t, m, runes("u"))
	require.NotNil(t, m.form)
	assert.Equal(t, "Nairobi Central", m.form.value(0))
	assert.Equal(t, "06:00", m.form.value(1))

	m.form.fields[0].input.SetValue("Ruiru")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	api.On("UpdateDriverStatus", mock.Anything, client.StatusFromBoard(testBoard[0], "Ruiru", "06:00")).
		Return(&domain.DriverStatus{DriverID: "driver-001"}, nil)
	assert.Equal(t, actionMsg{notice: "Updated successfully!"}, cmd())
	api.AssertExpectations(t)
}

func TestModel_DeleteBookingFailure(t *testing.T) {
	api := &MockAPI{}
	m := loaded(t, api)

	m, cmd := press(t, m, runes("2"), runes("d"))
	require.NotNil(t, cmd)

	api.On("DeleteBooking", mock.Anything, "b-1").Return(errors.New("500: Error deleting booking"))
	msg := cmd()

	updated, _ := m.Update(msg)
	view := updated.(Model).View()
	assert.True(t, strings.Contains(view, "Error cancelling booking"))
}

func TestModel_TickSchedulesFetch(t *testing.T) {
	m := New(&MockAPI{}, WithInterval(time.Second))

	_, cmd := m.Update(tickMsg(time.Now()))

	assert.NotNil(t, cmd)
}
