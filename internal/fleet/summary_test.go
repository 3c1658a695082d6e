package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/fleetpulse/internal/models"
	"github.com/ukydev/fleetpulse/internal/store"
)

func TestSummarize_Fixtures(t *testing.T) {
	s := store.Default()

	sum := Summarize(s.Vehicles(), s.AlertFeed())

	assert.Equal(t, 4, sum.TotalVehicles)
	assert.Equal(t, map[models.VehicleStatus]int{
		models.StatusActive:      2,
		models.StatusMaintenance: 0,
		models.StatusIdle:        1,
		models.StatusCharging:    1,
	}, sum.ByStatus)
	assert.Equal(t, 2, sum.CriticalAlerts)
	assert.Equal(t, 12450+45200+8900+85430, sum.TotalOdometerKm)
	assert.InDelta(t, (78+24+92+45)/4.0, sum.AvgBattery, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil, nil)

	assert.Zero(t, sum.TotalVehicles)
	assert.Zero(t, sum.AvgBattery)
	assert.Zero(t, sum.CriticalAlerts)
	assert.Len(t, sum.ByStatus, len(models.VehicleStatuses))
}
