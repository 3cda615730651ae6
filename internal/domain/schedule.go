package domain

type Schedule struct {
	ID            string `json:"id" redis:"id"`
	DriverID      string `json:"driverId" redis:"driverId"`
	Stage         string `json:"stage" redis:"stage"`
	DepartureTime string `json:"departureTime" redis:"departureTime"`
	CreatedAt     string `json:"createdAt" redis:"createdAt"`
}

type BoardSource string

const (
	BoardSourceSeed     BoardSource = "seed"
	BoardSourceDriver   BoardSource = "driver"
	BoardSourceSchedule BoardSource = "schedule"
)

// BoardEntry is one departure on the public board. It is a read model built
// from seed departures, registered drivers and stored schedules.
type BoardEntry struct {
	ID            string      `json:"id"`
	DriverID      string      `json:"driverId"`
	DriverName    string      `json:"driverName"`
	BusNumber     string      `json:"busNumber"`
	Stage         string      `json:"stage"`
	DepartureTime string      `json:"departureTime"`
	Phone         string      `json:"phone"`
	Route         string      `json:"route"`
	Source        BoardSource `json:"source"`
	WhatsAppURL   string      `json:"whatsappUrl"`
}
