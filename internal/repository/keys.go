package repository

const (
	driverPrefix   = "driver"
	driversIndex   = "drivers"
	statusPrefix   = "driver-status"
	updatesIndex   = "driver-updates"
	schedulePrefix = "schedule"
	schedulesIndex = "schedules"
	bookingPrefix  = "booking"
	bookingsIndex  = "bookings"

	ownedSchedules = "schedules"
	ownedBookings  = "bookings"
)

func driverKey(id string) string {
	return driverPrefix + ":" + id
}
