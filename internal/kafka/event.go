package kafka

import (
	"encoding/json"
	"time"
)

const (
	EventDriverRegistered    = "driver_registered"
	EventDriverStatusUpdated = "driver_status_updated"
	EventDriverDeleted       = "driver_deleted"
	EventScheduleAdded       = "schedule_added"
	EventScheduleDeleted     = "schedule_deleted"
	EventBookingCreated      = "booking_created"
	EventBookingDeleted      = "booking_deleted"
)

// Event is the envelope written to the events topic. Record holds the JSON
// of the entity the event is about, if it was known.
type Event struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	DriverID   string          `json:"driver_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Record     json.RawMessage `json:"record,omitempty"`
}

func NewEvent(eventType, id, driverID string, record any) (Event, error) {
	event := Event{
		Type:       eventType,
		ID:         id,
		DriverID:   driverID,
		OccurredAt: time.Now().UTC(),
	}
	if record != nil {
		data, err := json.Marshal(record)
		if err != nil {
			return Event{}, err
		}
		event.Record = data
	}
	return event, nil
}

// DecodeRecord unmarshals the embedded entity into dst.
func (e Event) DecodeRecord(dst any) error {
	if len(e.Record) == 0 {
		return nil
	}
	return json.Unmarshal(e.Record, dst)
}
