package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the rendered departure board for a short time. A zero TTL
// turns it into a no-op.
//
// Every invalidation bumps a version counter. SetBoard only stores a board
// built against the current version, so a board computed before a mutation
// never lands in the cache after that mutation invalidated it.
type RedisCache struct {
	client   redis.UniversalClient
	boardTTL time.Duration
}

func NewRedisCache(client redis.UniversalClient, boardTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, boardTTL: boardTTL}
}

// GetBoard returns nil, nil on a miss.
func (c *RedisCache) GetBoard(ctx context.Context) ([]domain.BoardEntry, error) {
	if c.boardTTL <= 0 {
		return nil, nil
	}
	data, err := c.client.Get(ctx, boardKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read board cache")
	}

	var board []domain.BoardEntry
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, errors.Wrap(err, "decode board cache")
	}
	return board, nil
}

// BoardVersion reads the invalidation counter. Callers pass it back to
// SetBoard.
func (c *RedisCache) BoardVersion(ctx context.Context) (int64, error) {
	if c.boardTTL <= 0 {
		return 0, nil
	}
	version, err := readVersion(ctx, c.client)
	return version, errors.Wrap(err, "read board version")
}

// SetBoard drops the write when the board was invalidated after version was
// read.
func (c *RedisCache) SetBoard(ctx context.Context, version int64, board []domain.BoardEntry) error {
	if c.boardTTL <= 0 {
		return nil
	}
	payload, err := json.Marshal(board)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, boardKey(), payload, c.boardTTL)
			return nil
		})
		return err
	}, versionKey())
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return errors.Wrap(err, "write board cache")
}

func (c *RedisCache) InvalidateBoard(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey())
		pipe.Del(ctx, boardKey())
		return nil
	})
	return errors.Wrap(err, "invalidate board cache")
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, client getter) (int64, error) {
	version, err := client.Get(ctx, versionKey()).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return version, err
}

func boardKey() string {
	return "cache:board"
}

func versionKey() string {
	return "cache:board:version"
}
