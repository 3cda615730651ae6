package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	Delete(ctx context.Context, id string) error
}

type RedisDriverRepository struct {
	table Table
}

func NewDriverRepository(client redis.Cmdable) DriverRepository {
	return &RedisDriverRepository{table: NewTable(client, driverPrefix, driversIndex, "")}
}

func (r *RedisDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	return r.table.Put(ctx, driver.ID, "", *driver)
}

func (r *RedisDriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	var d domain.Driver
	found, err := r.table.Get(ctx, id, &d)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NotFoundError{Resource: "Driver"}
	}
	return &d, nil
}

func (r *RedisDriverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	return scanAll[domain.Driver](ctx, r.table)
}

// Delete removes the driver record and its index entry only; cascading to
// status and schedules is the caller's job.
func (r *RedisDriverRepository) Delete(ctx context.Context, id string) error {
	return r.table.Delete(ctx, id, "")
}

var _ DriverRepository = (*RedisDriverRepository)(nil)
