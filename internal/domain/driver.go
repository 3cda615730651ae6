package domain

const (
	DriverStatusActive  = "active"
	DriverStatusUpdated = "updated"

	DefaultDepartureTime = "08:00"
)

// Driver is the registration record of a bus driver. Location and departure
// time hold the registration defaults; later reports live in DriverStatus.
type Driver struct {
	ID              string `json:"id" redis:"id"`
	Name            string `json:"name" redis:"name"`
	Phone           string `json:"phone" redis:"phone"`
	Route           string `json:"route" redis:"route"`
	BusNumber       string `json:"busNumber" redis:"busNumber"`
	CurrentLocation string `json:"currentLocation" redis:"currentLocation"`
	DepartureTime   string `json:"departureTime" redis:"departureTime"`
	Status          string `json:"status" redis:"status"`
	CreatedAt       string `json:"createdAt" redis:"createdAt"`
}

// DriverStatus is the most recent location report for a driver. It is keyed by
// driver ID but deliberately kept apart from Driver.
type DriverStatus struct {
	DriverID        string `json:"driverId" redis:"driverId"`
	DriverName      string `json:"driverName" redis:"driverName"`
	BusNumber       string `json:"busNumber" redis:"busNumber"`
	CurrentLocation string `json:"currentLocation" redis:"currentLocation"`
	DepartureTime   string `json:"departureTime" redis:"departureTime"`
	Route           string `json:"route" redis:"route"`
	Phone           string `json:"phone" redis:"phone"`
	Status          string `json:"status" redis:"status"`
	UpdatedAt       string `json:"updatedAt" redis:"updatedAt"`
}
