package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Table stores flat records as Redis hashes and keeps two kinds of index
// lists next to them:
//
//	<prefix>:<id>              hash, the record itself
//	<index>                    list of every id, newest first
//	driver:<owner>:<owned>     list of ids owned by one driver (optional)
//
// Writes of one record and its index entries go out in a single MULTI.
// Nothing enforces that an owner exists.
type Table struct {
	client redis.Cmdable
	prefix string
	index  string
	owned  string
}

func NewTable(client redis.Cmdable, prefix, index, owned string) Table {
	return Table{client: client, prefix: prefix, index: index, owned: owned}
}

func (t Table) key(id string) string {
	return t.prefix + ":" + id
}

func (t Table) ownerKey(ownerID string) string {
	return driverKey(ownerID) + ":" + t.owned
}

func (t Table) hasOwner(ownerID string) bool {
	return t.owned != "" && ownerID != ""
}

// Put writes the record and pushes its id onto the global and owner indexes.
func (t Table) Put(ctx context.Context, id, ownerID string, record any) error {
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, t.key(id), record)
		pipe.LPush(ctx, t.index, id)
		if t.hasOwner(ownerID) {
			pipe.LPush(ctx, t.ownerKey(ownerID), id)
		}
		return nil
	})
	return errors.Wrapf(err, "put %s", t.key(id))
}

// Get scans the record into dst and reports whether it existed.
func (t Table) Get(ctx context.Context, id string, dst any) (bool, error) {
	cmd := t.client.HGetAll(ctx, t.key(id))
	if err := cmd.Err(); err != nil {
		return false, errors.Wrapf(err, "get %s", t.key(id))
	}
	if len(cmd.Val()) == 0 {
		return false, nil
	}
	if err := cmd.Scan(dst); err != nil {
		return false, errors.Wrapf(err, "scan %s", t.key(id))
	}
	return true, nil
}

// Field reads one field of a record; a missing record yields "".
func (t Table) Field(ctx context.Context, id, field string) (string, error) {
	val, err := t.client.HGet(ctx, t.key(id), field).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, errors.Wrapf(err, "read %s.%s", t.key(id), field)
}

func (t Table) IDs(ctx context.Context) ([]string, error) {
	ids, err := t.client.LRange(ctx, t.index, 0, -1).Result()
	return ids, errors.Wrapf(err, "read index %s", t.index)
}

func (t Table) OwnedIDs(ctx context.Context, ownerID string) ([]string, error) {
	ids, err := t.client.LRange(ctx, t.ownerKey(ownerID), 0, -1).Result()
	return ids, errors.Wrapf(err, "read index %s", t.ownerKey(ownerID))
}

// Delete removes the record and every index entry for id. Unknown ids are
// not an error.
func (t Table) Delete(ctx context.Context, id, ownerID string) error {
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, t.key(id))
		pipe.LRem(ctx, t.index, 0, id)
		if t.hasOwner(ownerID) {
			pipe.LRem(ctx, t.ownerKey(ownerID), 0, id)
		}
		return nil
	})
	return errors.Wrapf(err, "delete %s", t.key(id))
}

// DropOwner deletes every record listed under ownerID together with its
// global index entry, then the owner list itself. It returns the removed ids.
func (t Table) DropOwner(ctx context.Context, ownerID string) ([]string, error) {
	ids, err := t.OwnedIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	_, err = t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.Del(ctx, t.key(id))
			pipe.LRem(ctx, t.index, 0, id)
		}
		pipe.Del(ctx, t.ownerKey(ownerID))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "drop %s", t.ownerKey(ownerID))
	}
	return ids, nil
}

// scanAll loads every indexed record in index order. Ids whose record is gone
// are skipped without error.
func scanAll[T any](ctx context.Context, t Table) ([]T, error) {
	ids, err := t.IDs(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = t.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, t.key(id))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", t.index)
	}

	for i, cmd := range cmds {
		if len(cmd.Val()) == 0 {
			continue
		}
		var rec T
		if err := cmd.Scan(&rec); err != nil {
			return nil, errors.Wrapf(err, "scan %s", t.key(ids[i]))
		}
		records = append(records, rec)
	}
	return records, nil
}
