package kafka

import (
	"encoding/json"
	"testing"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_EmbedsRecord(t *testing.T) {
	booking := domain.Booking{ID: "b1", DriverID: "d1", PassengerName: "Wanjiku", SeatNumber: "12"}

	event, err := NewEvent(EventBookingCreated, booking.ID, booking.DriverID, booking)
	require.NoError(t, err)
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.False(t, event.OccurredAt.IsZero())

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))

	var got domain.Booking
	require.NoError(t, decoded.DecodeRecord(&got))
	assert.Equal(t, booking, got)
}

func TestNewEvent_WithoutRecord(t *testing.T) {
	event, err := NewEvent(EventDriverDeleted, "d1", "d1", nil)
	require.NoError(t, err)
	assert.Empty(t, event.Record)

	var got domain.Driver
	assert.NoError(t, event.DecodeRecord(&got))
	assert.Equal(t, domain.Driver{}, got)
}
