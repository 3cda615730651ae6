package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	List(ctx context.Context) ([]domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	DeleteByDriver(ctx context.Context, driverID string) ([]string, error)
}

type RedisScheduleRepository struct {
	table Table
}

func NewScheduleRepository(client redis.Cmdable) ScheduleRepository {
	return &RedisScheduleRepository{table: NewTable(client, schedulePrefix, schedulesIndex, ownedSchedules)}
}

func (r *RedisScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	return r.table.Put(ctx, schedule.ID, schedule.DriverID, *schedule)
}

func (r *RedisScheduleRepository) List(ctx context.Context) ([]domain.Schedule, error) {
	return scanAll[domain.Schedule](ctx, r.table)
}

func (r *RedisScheduleRepository) Delete(ctx context.Context, id string) error {
	driverID, err := r.table.Field(ctx, id, "driverId")
	if err != nil {
		return err
	}
	return r.table.Delete(ctx, id, driverID)
}

// DeleteByDriver removes every schedule indexed under the driver and returns
// their ids.
func (r *RedisScheduleRepository) DeleteByDriver(ctx context.Context, driverID string) ([]string, error) {
	return r.table.DropOwner(ctx, driverID)
}

var _ ScheduleRepository = (*RedisScheduleRepository)(nil)
