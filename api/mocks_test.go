package api

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/Domenick1991/busbooking/internal/service/drivers"
	"github.com/Domenick1991/busbooking/internal/service/schedules"
	"github.com/stretchr/testify/mock"
)

// MockDriverUseCase is a mock implementation of drivers.DriverUseCase
type MockDriverUseCase struct {
	mock.Mock
}

func (m *MockDriverUseCase) Register(ctx context.Context, input drivers.RegisterDriverInput) (*domain.Driver, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverUseCase) List(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockDriverUseCase) UpdateStatus(ctx context.Context, input drivers.UpdateStatusInput) (*domain.DriverStatus, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverStatus), args.Error(1)
}

func (m *MockDriverUseCase) GetStatus(ctx context.Context, driverID string) (*domain.DriverStatus, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverStatus), args.Error(1)
}

func (m *MockDriverUseCase) Delete(ctx context.Context, driverID string) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

// MockScheduleUseCase is a mock implementation of schedules.ScheduleUseCase
type MockScheduleUseCase struct {
	mock.Mock
}

func (m *MockScheduleUseCase) Add(ctx context.Context, input schedules.AddScheduleInput) (*domain.Schedule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleUseCase) List(ctx context.Context) ([]domain.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleUseCase) Board(ctx context.Context) ([]domain.BoardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BoardEntry), args.Error(1)
}

func (m *MockScheduleUseCase) Stages() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
