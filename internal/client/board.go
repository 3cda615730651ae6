package client

import (
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
)

// BookingFromBoard fills a booking request from the departure the passenger
// picked, the way the booking form does.
func BookingFromBoard(entry domain.BoardEntry, passengerName, seatNumber string, now time.Time) CreateBookingRequest {
	return CreateBookingRequest{
		ScheduleID:    entry.ID,
		DriverID:      entry.DriverID,
		DriverName:    entry.DriverName,
		BusNumber:     entry.BusNumber,
		Stage:         entry.Stage,
		DepartureTime: entry.DepartureTime,
		PassengerName: passengerName,
		SeatNumber:    seatNumber,
		Phone:         entry.Phone,
		BookingDate:   domain.Timestamp(now),
		Status:        domain.BookingStatusActive,
	}
}

// StatusFromBoard builds a status update for the driver behind entry.
func StatusFromBoard(entry domain.BoardEntry, location, departureTime string) UpdateStatusRequest {
	return UpdateStatusRequest{
		DriverID:        entry.DriverID,
		DriverName:      entry.DriverName,
		BusNumber:       entry.BusNumber,
		CurrentLocation: location,
		DepartureTime:   departureTime,
		Route:           entry.Route,
		Phone:           entry.Phone,
	}
}

// FindEntry returns the board entry with the given id.
func FindEntry(board []domain.BoardEntry, id string) (domain.BoardEntry, bool) {
	for _, entry := range board {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.BoardEntry{}, false
}
