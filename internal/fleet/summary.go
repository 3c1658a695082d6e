package fleet

import "github.com/ukydev/fleetpulse/internal/models"

// Summary aggregates the fleet the way the stats endpoint reports it.
type Summary struct {
	TotalVehicles   int                          `json:"totalVehicles"`
	ByStatus        map[models.VehicleStatus]int `json:"byStatus"`
	CriticalAlerts  int                          `json:"criticalAlerts"`
	TotalOdometerKm int                          `json:"totalOdometerKm"`
	AvgBattery      float64                      `json:"avgBattery"`
}

// Summarize computes a Summary. Every known status is present in ByStatus,
// with zero counts where no vehicle has it.
func Summarize(vehicles []models.Vehicle, alerts []models.Alert) Summary {
	s := Summary{
		TotalVehicles: len(vehicles),
		ByStatus:      make(map[models.VehicleStatus]int, len(models.VehicleStatuses)),
	}
	for _, st := range models.VehicleStatuses {
		s.ByStatus[st] = 0
	}

	battery := 0
	for _, v := range vehicles {
		s.ByStatus[v.Status]++
		s.TotalOdometerKm += v.Odometer
		battery += v.BatteryLevel
	}
	if len(vehicles) > 0 {
		s.AvgBattery = float64(battery) / float64(len(vehicles))
	}

	for _, a := range alerts {
		if a.Type == models.AlertCritical {
			s.CriticalAlerts++
		}
	}
	return s
}
