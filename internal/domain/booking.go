package domain

const BookingStatusActive = "active"

// Booking is a passenger seat reservation. Schedule and driver details are
// copied in at creation time and never re-validated.
type Booking struct {
	ID            string `json:"id" redis:"id"`
	ScheduleID    string `json:"scheduleId" redis:"scheduleId"`
	DriverID      string `json:"driverId" redis:"driverId"`
	DriverName    string `json:"driverName" redis:"driverName"`
	BusNumber     string `json:"busNumber" redis:"busNumber"`
	Stage         string `json:"stage" redis:"stage"`
	DepartureTime string `json:"departureTime" redis:"departureTime"`
	PassengerName string `json:"passengerName" redis:"passengerName"`
	SeatNumber    string `json:"seatNumber" redis:"seatNumber"`
	Phone         string `json:"phone" redis:"phone"`
	BookingDate   string `json:"bookingDate" redis:"bookingDate"`
	Status        string `json:"status" redis:"status"`
	CreatedAt     string `json:"createdAt" redis:"createdAt"`
}
