package archive

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Execer is the part of pgxpool.Pool the archive needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type EventArchive interface {
	Record(ctx context.Context, event kafka.Event) error
}

// PGArchive appends every consumed event to the bus_events table.
type PGArchive struct {
	db Execer
}

func NewPGArchive(db Execer) *PGArchive {
	return &PGArchive{db: db}
}

func (a *PGArchive) Record(ctx context.Context, event kafka.Event) error {
	var record any
	if len(event.Record) > 0 {
		record = event.Record
	}
	var driverID any
	if event.DriverID != "" {
		driverID = event.DriverID
	}

	_, err := a.db.Exec(ctx, `
		INSERT INTO bus_events (type, entity_id, driver_id, record, occurred_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)
	`, event.Type, event.ID, driverID, record, event.OccurredAt)
	if err != nil {
		return errors.Wrapf(err, "archive %s event %s", event.Type, event.ID)
	}
	return nil
}

var _ EventArchive = (*PGArchive)(nil)
