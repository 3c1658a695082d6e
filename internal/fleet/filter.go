package fleet

import "github.com/ukydev/fleetpulse/internal/models"

// All is the filter value that matches every vehicle or alert.
const All = "all"

// Tab is one entry of the Fleet Status filter bar.
type Tab struct {
	ID    string
	Label string
}

// Tabs lists the Fleet Status filters in display order.
var Tabs = []Tab{
	{ID: All, Label: "All Vehicles"},
	{ID: string(models.StatusActive), Label: "Active"},
	{ID: string(models.StatusMaintenance), Label: "In Maintenance"},
	{ID: string(models.StatusCharging), Label: "Charging"},
}

// FilterByStatus returns the vehicles whose status equals status, keeping
// their relative order. The All value returns vehicles unchanged.
func FilterByStatus(vehicles []models.Vehicle, status string) []models.Vehicle {
	if status == All {
		return vehicles
	}
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if string(v.Status) == status {
			out = append(out, v)
		}
	}
	return out
}

// FilterAlertsByType is FilterByStatus for alerts.
func FilterAlertsByType(alerts []models.Alert, alertType string) []models.Alert {
	if alertType == All {
		return alerts
	}
	out := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if string(a.Type) == alertType {
			out = append(out, a)
		}
	}
	return out
}
