package drivers

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DriverUseCase interface {
	Register(ctx context.Context, input RegisterDriverInput) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.DriverStatus, error)
	GetStatus(ctx context.Context, driverID string) (*domain.DriverStatus, error)
	Delete(ctx context.Context, driverID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BoardInvalidator interface {
	InvalidateBoard(ctx context.Context) error
}

type RegisterDriverInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Route     string `json:"route"`
	BusNumber string `json:"busNumber"`
}

type UpdateStatusInput struct {
	DriverID        string `json:"driverId"`
	DriverName      string `json:"driverName"`
	BusNumber       string `json:"busNumber"`
	CurrentLocation string `json:"currentLocation"`
	DepartureTime   string `json:"departureTime"`
	Route           string `json:"route"`
	Phone           string `json:"phone"`
}

type DriverService struct {
	drivers        repository.DriverRepository
	statuses       repository.StatusRepository
	schedules      repository.ScheduleRepository
	producer       Producer
	eventsTopic    string
	publishTimeout time.Duration
	board          BoardInvalidator
	logger         *zap.Logger
	now            func() time.Time
	newID          func() string
}

type DriverServiceOption func(*DriverService)

func WithProducer(producer Producer, topic string) DriverServiceOption {
	return func(s *DriverService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

// WithPublishTimeout caps each event publish. Zero leaves the request
// context as is.
func WithPublishTimeout(timeout time.Duration) DriverServiceOption {
	return func(s *DriverService) {
		s.publishTimeout = timeout
	}
}

func WithBoardInvalidator(board BoardInvalidator) DriverServiceOption {
	return func(s *DriverService) {
		s.board = board
	}
}

func WithLogger(logger *zap.Logger) DriverServiceOption {
	return func(s *DriverService) {
		s.logger = logger
	}
}

func NewDriverService(
	drivers repository.DriverRepository,
	statuses repository.StatusRepository,
	schedules repository.ScheduleRepository,
	opts ...DriverServiceOption,
) *DriverService {
	service := &DriverService{
		drivers:        drivers,
		statuses:       statuses,
		schedules:      schedules,
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

// Register stores a new driver parked at the route origin with the default
// departure time.
func (s *DriverService) Register(ctx context.Context, input RegisterDriverInput) (*domain.Driver, error) {
	if err := domain.RequireFields(map[string]string{
		"name":      input.Name,
		"phone":     input.Phone,
		"route":     input.Route,
		"busNumber": input.BusNumber,
	}); err != nil {
		return nil, err
	}

	driver := &domain.Driver{
		ID:              s.newID(),
		Name:            input.Name,
		Phone:           input.Phone,
		Route:           input.Route,
		BusNumber:       input.BusNumber,
		CurrentLocation: domain.OriginStage,
		DepartureTime:   domain.DefaultDepartureTime,
		Status:          domain.DriverStatusActive,
		CreatedAt:       domain.Timestamp(s.now()),
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	s.publish(ctx, kafka.EventDriverRegistered, driver.ID, driver)
	return driver, nil
}

func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.List(ctx)
}

// UpdateStatus overwrites the driver's status record. The driver does not
// have to be registered.
func (s *DriverService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.DriverStatus, error) {
	if err := domain.RequireFields(map[string]string{
		"driverId":        input.DriverID,
		"currentLocation": input.CurrentLocation,
		"departureTime":   input.DepartureTime,
	}); err != nil {
		return nil, err
	}

	status := &domain.DriverStatus{
		DriverID:        input.DriverID,
		DriverName:      input.DriverName,
		BusNumber:       input.BusNumber,
		CurrentLocation: input.CurrentLocation,
		DepartureTime:   input.DepartureTime,
		Route:           input.Route,
		Phone:           input.Phone,
		Status:          domain.DriverStatusUpdated,
		UpdatedAt:       domain.Timestamp(s.now()),
	}
	if err := s.statuses.Save(ctx, status); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	s.publish(ctx, kafka.EventDriverStatusUpdated, status.DriverID, status)
	return status, nil
}

func (s *DriverService) GetStatus(ctx context.Context, driverID string) (*domain.DriverStatus, error) {
	return s.statuses.GetByDriverID(ctx, driverID)
}

// Delete removes the driver, its status record and all of its schedules.
// Bookings made against the driver are left in place.
func (s *DriverService) Delete(ctx context.Context, driverID string) error {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil && !domain.IsNotFound(err) {
		return err
	}

	if err := s.drivers.Delete(ctx, driverID); err != nil {
		return err
	}
	if err := s.statuses.Delete(ctx, driverID); err != nil {
		return err
	}
	removed, err := s.schedules.DeleteByDriver(ctx, driverID)
	if err != nil {
		return err
	}
	s.logger.Info("driver deleted", zap.String("driver_id", driverID), zap.Int("schedules_removed", len(removed)))

	s.invalidateBoard(ctx)
	if driver != nil {
		s.publish(ctx, kafka.EventDriverDeleted, driverID, driver)
	} else {
		s.publish(ctx, kafka.EventDriverDeleted, driverID, nil)
	}
	return nil
}

func (s *DriverService) invalidateBoard(ctx context.Context) {
	if s.board == nil {
		return
	}
	if err := s.board.InvalidateBoard(ctx); err != nil {
		s.logger.Warn("failed to invalidate board cache", zap.Error(err))
	}
}

func (s *DriverService) publish(ctx context.Context, eventType, driverID string, record any) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	event, err := kafka.NewEvent(eventType, driverID, driverID, record)
	if err == nil {
		err = s.producer.Publish(ctx, s.eventsTopic, driverID, event)
	}
	if err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", eventType), zap.String("driver_id", driverID), zap.Error(err))
	}
}

var _ DriverUseCase = (*DriverService)(nil)
