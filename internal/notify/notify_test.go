package notify

import (
	"context"
	"testing"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBookingLink(t *testing.T) {
	link := BookingLink("+254 712-345-678", "Nairobi Central", "06:00", "KCC 456")
	assert.Equal(t,
		"https://wa.me/254712345678?text=Hi%2C%20I%20would%20like%20to%20book%20a%20seat%20on%20the%20bus%20departing%20from%20Nairobi%20Central%20at%2006%3A00.%20Bus%20number%3A%20KCC%20456",
		link)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "Murang'a%20Road", encodeURIComponent("Murang'a Road"))
	assert.Equal(t, "a%2Bb%3Dc%26d", encodeURIComponent("a+b=c&d"))
	assert.Equal(t, "-_.!~*'()", encodeURIComponent("-_.!~*'()"))
	assert.Equal(t, "%C3%A9", encodeURIComponent("é"))
}

func TestSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewSender(zap.New(core))

	booking := domain.Booking{ID: "b1", DriverID: "d1", PassengerName: "Akinyi", SeatNumber: "3",
		BusNumber: "KCA 789", Stage: "Roysambu", DepartureTime: "07:30", Phone: "+254723456789"}
	event, err := kafka.NewEvent(kafka.EventBookingCreated, booking.ID, booking.DriverID, booking)
	require.NoError(t, err)

	require.NoError(t, sender.Send(context.Background(), event))
	entries := logs.FilterMessage("notify driver").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["link"], "https://wa.me/254723456789?text=New%20booking%3A%20Akinyi")
}

func TestSender_IgnoresOtherEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sender := NewSender(zap.New(core))

	event, err := kafka.NewEvent(kafka.EventDriverDeleted, "d1", "d1", nil)
	require.NoError(t, err)
	require.NoError(t, sender.Send(context.Background(), event))
	assert.Zero(t, logs.Len())
}
