package domain

import "time"

const (
	RouteName = "Nairobi - Thika"

	// OriginStage is where every newly registered bus is assumed to wait.
	OriginStage = "Nairobi Central"
)

// Stages lists the Thika Superhighway stops in travel order.
var Stages = []string{
	"Nairobi Central",
	"Roysambu",
	"Kasarani",
	"Ruiru",
	"Thika Town",
	"Garissa Lodge",
	"Murang'a Road",
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp renders t as a UTC ISO-8601 string with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
