package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type RedisBookingRepository struct {
	table Table
}

func NewBookingRepository(client redis.Cmdable) BookingRepository {
	return &RedisBookingRepository{table: NewTable(client, bookingPrefix, bookingsIndex, ownedBookings)}
}

func (r *RedisBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.table.Put(ctx, booking.ID, booking.DriverID, *booking)
}

func (r *RedisBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	found, err := r.table.Get(ctx, id, &b)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NotFoundError{Resource: "Booking"}
	}
	return &b, nil
}

func (r *RedisBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return scanAll[domain.Booking](ctx, r.table)
}

func (r *RedisBookingRepository) Delete(ctx context.Context, id string) error {
	driverID, err := r.table.Field(ctx, id, "driverId")
	if err != nil {
		return err
	}
	return r.table.Delete(ctx, id, driverID)
}

var _ BookingRepository = (*RedisBookingRepository)(nil)
