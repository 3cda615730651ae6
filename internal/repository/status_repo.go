package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type StatusRepository interface {
	Save(ctx context.Context, status *domain.DriverStatus) error
	GetByDriverID(ctx context.Context, driverID string) (*domain.DriverStatus, error)
	Delete(ctx context.Context, driverID string) error
}

// RedisStatusRepository keeps one status hash per driver. Every save also
// appends the driver id to the driver-updates list, which nothing reads.
type RedisStatusRepository struct {
	client redis.Cmdable
}

func NewStatusRepository(client redis.Cmdable) StatusRepository {
	return &RedisStatusRepository{client: client}
}

func statusKey(driverID string) string {
	return statusPrefix + ":" + driverID
}

func (r *RedisStatusRepository) Save(ctx context.Context, status *domain.DriverStatus) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, statusKey(status.DriverID), *status)
		pipe.LPush(ctx, updatesIndex, status.DriverID)
		return nil
	})
	return errors.Wrapf(err, "save %s", statusKey(status.DriverID))
}

func (r *RedisStatusRepository) GetByDriverID(ctx context.Context, driverID string) (*domain.DriverStatus, error) {
	cmd := r.client.HGetAll(ctx, statusKey(driverID))
	if err := cmd.Err(); err != nil {
		return nil, errors.Wrapf(err, "get %s", statusKey(driverID))
	}
	if len(cmd.Val()) == 0 {
		return nil, domain.NotFoundError{Resource: "Driver status"}
	}
	var s domain.DriverStatus
	if err := cmd.Scan(&s); err != nil {
		return nil, errors.Wrapf(err, "scan %s", statusKey(driverID))
	}
	return &s, nil
}

func (r *RedisStatusRepository) Delete(ctx context.Context, driverID string) error {
	return errors.Wrapf(r.client.Del(ctx, statusKey(driverID)).Err(), "delete %s", statusKey(driverID))
}

var _ StatusRepository = (*RedisStatusRepository)(nil)
