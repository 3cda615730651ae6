package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender tells drivers about new seat bookings. Delivery is a structured log
// line carrying a WhatsApp link to the driver.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	if event.Type != kafka.EventBookingCreated {
		return nil
	}

	var booking domain.Booking
	if err := event.DecodeRecord(&booking); err != nil {
		return fmt.Errorf("decode booking %s: %w", event.ID, err)
	}
	if booking.Phone == "" {
		s.logger.Info("booking has no driver phone, skipping notification", zap.String("booking_id", booking.ID))
		return nil
	}

	text := fmt.Sprintf("New booking: %s, seat %s, bus %s from %s at %s",
		booking.PassengerName, booking.SeatNumber, booking.BusNumber, booking.Stage, booking.DepartureTime)
	s.logger.Info("notify driver",
		zap.String("booking_id", booking.ID),
		zap.String("driver_id", booking.DriverID),
		zap.String("link", WhatsAppLink(booking.Phone, text)),
	)
	return nil
}
