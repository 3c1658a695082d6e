package models

// MaintenanceEntry is one line of a vehicle's service history.
type MaintenanceEntry struct {
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"` // "Completed", "Scheduled", "Overdue"
	Cost        string `json:"cost"`
}

// ScheduledService is an upcoming or overdue service across the fleet.
type ScheduledService struct {
	VehicleName string `json:"vehicleName"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Urgent      bool   `json:"urgent"`
}

// UsageBar is one day of the weekly fleet usage chart.
type UsageBar struct {
	Day     string `json:"day"`
	Percent int    `json:"percent"`
}

// DriverProfile is a driver as listed in the drivers directory.
type DriverProfile struct {
	Driver
	VehicleName string        `json:"vehicleName"`
	Status      VehicleStatus `json:"status"`
	Trips       int           `json:"trips"`
	SafetyScore int           `json:"safetyScore"`
}

// Unassigned is the vehicle name shown for drivers without a vehicle.
const Unassigned = "Unassigned"
