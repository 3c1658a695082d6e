package models

// VehicleStatus is the operating state of a fleet vehicle.
type VehicleStatus string

const (
	StatusActive      VehicleStatus = "active"
	StatusMaintenance VehicleStatus = "maintenance"
	StatusIdle        VehicleStatus = "idle"
	StatusCharging    VehicleStatus = "charging"
)

// VehicleStatuses lists every status in display order.
var VehicleStatuses = []VehicleStatus{
	StatusActive,
	StatusMaintenance,
	StatusIdle,
	StatusCharging,
}

// IsValid reports whether s is one of the known statuses.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusIdle, StatusCharging:
		return true
	default:
		return false
	}
}

// Driver represents a vehicle operator.
type Driver struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Rating float64 `json:"rating"` // 0-5
}

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID           string        `json:"id"`
	VIN          string        `json:"vin"`
	Name         string        `json:"name"`
	Model        string        `json:"model"`
	Image        string        `json:"image"`
	Status       VehicleStatus `json:"status"`
	BatteryLevel int           `json:"batteryLevel"` // 0-100
	Range        int           `json:"range"`        // km
	Location     Location      `json:"location"`
	Speed        float64       `json:"speed"` // km/h
	Driver       Driver        `json:"driver"`
	Temperature  float64       `json:"temperature"` // cabin, Celsius
	Odometer     int           `json:"odometer"`    // km
	Efficiency   string        `json:"efficiency"`  // e.g. "22 kWh/100km"
}
