package schedules

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/notify"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleUseCase interface {
	Add(ctx context.Context, input AddScheduleInput) (*domain.Schedule, error)
	List(ctx context.Context) ([]domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	Board(ctx context.Context) ([]domain.BoardEntry, error)
	Stages() []string
}

type BoardCache interface {
	GetBoard(ctx context.Context) ([]domain.BoardEntry, error)
	BoardVersion(ctx context.Context) (int64, error)
	SetBoard(ctx context.Context, version int64, board []domain.BoardEntry) error
	InvalidateBoard(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type AddScheduleInput struct {
	DriverID      string `json:"driverId"`
	Stage         string `json:"stage"`
	DepartureTime string `json:"departureTime"`
}

type ScheduleService struct {
	schedules      repository.ScheduleRepository
	drivers        repository.DriverRepository
	statuses       repository.StatusRepository
	cache          BoardCache
	producer       Producer
	eventsTopic    string
	publishTimeout time.Duration
	seed           bool
	logger         *zap.Logger
	now            func() time.Time
	newID          func() string
}

type ScheduleServiceOption func(*ScheduleService)

func WithCache(cache BoardCache) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, topic string) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

// WithPublishTimeout caps each event publish. Zero leaves the request
// context as is.
func WithPublishTimeout(timeout time.Duration) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.publishTimeout = timeout
	}
}

// WithSeed toggles the built-in departures at the top of the board.
func WithSeed(enabled bool) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.seed = enabled
	}
}

func WithLogger(logger *zap.Logger) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.logger = logger
	}
}

func NewScheduleService(
	schedules repository.ScheduleRepository,
	drivers repository.DriverRepository,
	statuses repository.StatusRepository,
	opts ...ScheduleServiceOption,
) *ScheduleService {
	service := &ScheduleService{
		schedules:      schedules,
		drivers:        drivers,
		statuses:       statuses,
		seed:           true,
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

func (s *ScheduleService) Add(ctx context.Context, input AddScheduleInput) (*domain.Schedule, error) {
	if err := domain.RequireFields(map[string]string{
		"driverId":      input.DriverID,
		"stage":         input.Stage,
		"departureTime": input.DepartureTime,
	}); err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{
		ID:            s.newID(),
		DriverID:      input.DriverID,
		Stage:         input.Stage,
		DepartureTime: input.DepartureTime,
		CreatedAt:     domain.Timestamp(s.now()),
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	s.publish(ctx, kafka.EventScheduleAdded, schedule.ID, schedule.DriverID, schedule)
	return schedule, nil
}

func (s *ScheduleService) List(ctx context.Context) ([]domain.Schedule, error) {
	return s.schedules.List(ctx)
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.schedules.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateBoard(ctx)
	s.publish(ctx, kafka.EventScheduleDeleted, id, "", nil)
	return nil
}

func (s *ScheduleService) Stages() []string {
	return append([]string(nil), domain.Stages...)
}

// Board merges seed departures, one entry per registered driver and every
// stored schedule into a single list. A driver's entry follows the latest
// status report when there is one.
func (s *ScheduleService) Board(ctx context.Context) ([]domain.BoardEntry, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		if cached, err := s.cache.GetBoard(ctx); err == nil && cached != nil {
			return cached, nil
		}
		v, err := s.cache.BoardVersion(ctx)
		if err != nil {
			s.logger.Warn("failed to read board version", zap.Error(err))
		} else {
			cacheable, version = true, v
		}
	}

	board, err := s.buildBoard(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetBoard(ctx, version, board); err != nil {
			s.logger.Warn("failed to cache board", zap.Error(err))
		}
	}
	return board, nil
}

func (s *ScheduleService) buildBoard(ctx context.Context) ([]domain.BoardEntry, error) {
	board := make([]domain.BoardEntry, 0, len(seedDepartures))
	if s.seed {
		for _, entry := range seedDepartures {
			entry.Source = domain.BoardSourceSeed
			board = append(board, withLink(entry))
		}
	}

	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Driver, len(drivers))
	for _, d := range drivers {
		byID[d.ID] = d

		stage, departure := d.CurrentLocation, d.DepartureTime
		status, err := s.statuses.GetByDriverID(ctx, d.ID)
		switch {
		case err == nil:
			stage, departure = status.CurrentLocation, status.DepartureTime
		case !domain.IsNotFound(err):
			return nil, err
		}

		board = append(board, withLink(domain.BoardEntry{
			ID:            "sched-" + d.ID,
			DriverID:      d.ID,
			DriverName:    d.Name,
			BusNumber:     d.BusNumber,
			Stage:         stage,
			DepartureTime: departure,
			Phone:         d.Phone,
			Route:         d.Route,
			Source:        domain.BoardSourceDriver,
		}))
	}

	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range schedules {
		entry := domain.BoardEntry{
			ID:            sc.ID,
			DriverID:      sc.DriverID,
			Stage:         sc.Stage,
			DepartureTime: sc.DepartureTime,
			Route:         domain.RouteName,
			Source:        domain.BoardSourceSchedule,
		}
		if d, ok := byID[sc.DriverID]; ok {
			entry.DriverName = d.Name
			entry.BusNumber = d.BusNumber
			entry.Phone = d.Phone
			if d.Route != "" {
				entry.Route = d.Route
			}
		}
		board = append(board, withLink(entry))
	}
	return board, nil
}

func withLink(entry domain.BoardEntry) domain.BoardEntry {
	if entry.Phone != "" {
		entry.WhatsAppURL = notify.BookingLink(entry.Phone, entry.Stage, entry.DepartureTime, entry.BusNumber)
	}
	return entry
}

func (s *ScheduleService) invalidateBoard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBoard(ctx); err != nil {
		s.logger.Warn("failed to invalidate board cache", zap.Error(err))
	}
}

func (s *ScheduleService) publish(ctx context.Context, eventType, id, driverID string, record any) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	event, err := kafka.NewEvent(eventType, id, driverID, record)
	if err == nil {
		err = s.producer.Publish(ctx, s.eventsTopic, id, event)
	}
	if err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", eventType), zap.String("schedule_id", id), zap.Error(err))
	}
}

var _ ScheduleUseCase = (*ScheduleService)(nil)
