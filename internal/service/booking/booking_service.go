package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings       repository.BookingRepository
	producer       Producer
	eventsTopic    string
	publishTimeout time.Duration
	logger         *zap.Logger
	now            func() time.Time
	newID          func() string
}

// CreateBookingInput mirrors what a client knows about the departure it is
// booking; only schedule, passenger and seat are required.
type CreateBookingInput struct {
	ScheduleID    string `json:"scheduleId"`
	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	BusNumber     string `json:"busNumber"`
	Stage         string `json:"stage"`
	DepartureTime string `json:"departureTime"`
	PassengerName string `json:"passengerName"`
	SeatNumber    string `json:"seatNumber"`
	Phone         string `json:"phone"`
	BookingDate   string `json:"bookingDate"`
	Status        string `json:"status"`
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

// WithPublishTimeout caps each event publish. Zero leaves the request
// context as is.
func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.publishTimeout = timeout
	}
}

func WithLogger(logger *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		logger:         zap.NewNop(),
		publishTimeout: kafka.DefaultPublishTimeout,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking records a seat reservation. The schedule is not looked up and
// the seat is not checked against other bookings.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := domain.RequireFields(map[string]string{
		"passengerName": input.PassengerName,
		"seatNumber":    input.SeatNumber,
		"scheduleId":    input.ScheduleID,
	}); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:            s.newID(),
		ScheduleID:    input.ScheduleID,
		DriverID:      input.DriverID,
		DriverName:    input.DriverName,
		BusNumber:     input.BusNumber,
		Stage:         input.Stage,
		DepartureTime: input.DepartureTime,
		PassengerName: input.PassengerName,
		SeatNumber:    input.SeatNumber,
		Phone:         input.Phone,
		BookingDate:   input.BookingDate,
		Status:        input.Status,
		CreatedAt:     domain.Timestamp(s.now()),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingCreated, booking)
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// DeleteBooking removes the booking from every index it is listed in. Deleting
// an unknown booking is not an error.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil && !domain.IsNotFound(err) {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if current != nil {
		s.publish(ctx, kafka.EventBookingDeleted, current)
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	event, err := kafka.NewEvent(eventType, booking.ID, booking.DriverID, booking)
	if err == nil {
		err = s.producer.Publish(ctx, s.eventsTopic, booking.ID, event)
	}
	if err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", eventType), zap.String("booking_id", booking.ID), zap.Error(err))
	}
}

var _ BookingUseCase = (*BookingService)(nil)
