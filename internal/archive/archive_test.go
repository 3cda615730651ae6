package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExecer struct {
	mock.Mock
}

func (m *MockExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), args.Error(0)
}

func TestPGArchive_Record(t *testing.T) {
	db := &MockExecer{}
	archive := NewPGArchive(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	event := kafka.Event{
		Type:       kafka.EventBookingCreated,
		ID:         "b-1",
		DriverID:   "d-1",
		OccurredAt: at,
		Record:     []byte(`{"id":"b-1"}`),
	}
	db.On("Exec", ctx, mock.AnythingOfType("string"),
		[]any{kafka.EventBookingCreated, "b-1", "d-1", json.RawMessage(`{"id":"b-1"}`), at}).Return(nil)

	require.NoError(t, archive.Record(ctx, event))
	db.AssertExpectations(t)
}

func TestPGArchive_Record_NullableColumns(t *testing.T) {
	db := &MockExecer{}
	archive := NewPGArchive(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	db.On("Exec", ctx, mock.AnythingOfType("string"),
		[]any{kafka.EventScheduleDeleted, "s-1", nil, nil, at}).Return(nil)

	require.NoError(t, archive.Record(ctx, kafka.Event{Type: kafka.EventScheduleDeleted, ID: "s-1", OccurredAt: at}))
	db.AssertExpectations(t)
}

func TestPGArchive_Record_Error(t *testing.T) {
	db := &MockExecer{}
	archive := NewPGArchive(db)

	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := archive.Record(context.Background(), kafka.Event{Type: kafka.EventDriverDeleted, ID: "d-1"})
	assert.ErrorContains(t, err, "archive driver_deleted event d-1")
}

func TestMigrations_Embedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/000001_create_bus_events.down.sql",
		"migrations/000001_create_bus_events.up.sql",
	}, names)
}
