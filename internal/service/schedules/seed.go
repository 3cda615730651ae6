package schedules

import "github.com/Domenick1991/busbooking/internal/domain"

// seedDepartures are the standing morning departures shown on the board
// before any driver registers. They are never written to the store.
var seedDepartures = []domain.BoardEntry{
	{ID: "sched-001", DriverID: "driver-001", DriverName: "John Mbugua", BusNumber: "KCC 456", Stage: "Nairobi Central", DepartureTime: "06:00", Phone: "+254712345678", Route: domain.RouteName},
	{ID: "sched-002", DriverID: "driver-002", DriverName: "Peter Kariuki", BusNumber: "KCA 789", Stage: "Roysambu", DepartureTime: "07:30", Phone: "+254723456789", Route: domain.RouteName},
	{ID: "sched-003", DriverID: "driver-003", DriverName: "David Mwangi", BusNumber: "KCC 123", Stage: "Kasarani", DepartureTime: "08:15", Phone: "+254734567890", Route: domain.RouteName},
	{ID: "sched-004", DriverID: "driver-004", DriverName: "Samuel Kipchoge", BusNumber: "KCB 234", Stage: "Ruiru", DepartureTime: "09:00", Phone: "+254745678901", Route: domain.RouteName},
	{ID: "sched-005", DriverID: "driver-005", DriverName: "James Ochieng", BusNumber: "KCC 567", Stage: "Thika Town", DepartureTime: "10:30", Phone: "+254756789012", Route: domain.RouteName},
}
