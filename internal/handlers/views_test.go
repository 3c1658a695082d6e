package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleetpulse/internal/models"
	"github.com/ukydev/fleetpulse/internal/router"
	"github.com/ukydev/fleetpulse/internal/store"
)

func TestMarkerPosition(t *testing.T) {
	tests := []struct {
		id        string
		top, left int
	}{
		{"v1", 33, 33},
		{"v2", 46, 56},
		{"v3", 59, 79},
		{"v4", 72, 22},
		{"v0", 20, 10},
		{"truck", 20, 10},
		{"", 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			top, left := MarkerPosition(tt.id)
			assert.Equal(t, tt.top, top)
			assert.Equal(t, tt.left, left)
		})
	}
}

func TestShortEfficiency(t *testing.T) {
	assert.Equal(t, "1.8", ShortEfficiency("1.8 kWh/km"))
	assert.Equal(t, "22", ShortEfficiency("22 kWh/100km"))
	assert.Equal(t, "n/a", ShortEfficiency("n/a"))
}

func TestOdometerK(t *testing.T) {
	assert.Equal(t, "45.2k", OdometerK(45200))
	assert.Equal(t, "85.4k", OdometerK(85430))
	assert.Equal(t, "0.0k", OdometerK(0))
}

func TestAlertRows(t *testing.T) {
	s, err := store.New(store.Data{
		Vehicles: []models.Vehicle{{ID: "v1"}},
		Alerts: []models.Alert{
			{ID: "a1", Type: models.AlertCritical, VehicleID: "v1"},
			{ID: "a2", Type: models.AlertWarning, VehicleID: "v404"},
			{ID: "a3", Type: models.AlertInfo},
		},
	})
	require.NoError(t, err)

	rows := alertRows(s, s.Alerts())
	require.Len(t, rows, 3)

	assert.Equal(t, "v1", rows[0].VehicleLabel)
	assert.True(t, rows[0].Linked)
	assert.Equal(t, "alert-circle", rows[0].Style.Icon)

	assert.Equal(t, SystemLabel, rows[1].VehicleLabel)
	assert.False(t, rows[1].Linked)

	assert.Equal(t, SystemLabel, rows[2].VehicleLabel)
	assert.False(t, rows[2].Linked)
}

func TestBuildPage(t *testing.T) {
	s := store.Default()

	t.Run("dashboard", func(t *testing.T) {
		p := buildPage(s, router.Initial(), pageOptions{Insight: "All good."})
		assert.Equal(t, "dashboard", p.View)
		assert.Len(t, p.Stats, 4)
		assert.Len(t, p.Vehicles, 4)
		assert.Len(t, p.Markers, 4)
		assert.Len(t, p.Alerts, 3)
		assert.Equal(t, "All good.", p.Insight)
	})

	t.Run("fleet defaults to all", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionFleet}, pageOptions{})
		assert.Equal(t, "all", p.Filter)
		assert.Len(t, p.Vehicles, 4)
	})

	t.Run("fleet filtered", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionFleet}, pageOptions{Filter: "charging"})
		require.Len(t, p.Vehicles, 1)
		assert.Equal(t, "v2", p.Vehicles[0].ID)
	})

	t.Run("alerts feed", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionAlerts}, pageOptions{})
		assert.Len(t, p.Alerts, 6)
	})

	t.Run("settings tab", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionSettings}, pageOptions{SettingsTab: "security"})
		assert.Equal(t, models.TabSecurity, p.SettingsTab)
	})

	t.Run("vehicle detail", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionMap, SelectedVehicleID: "v3"}, pageOptions{})
		assert.Equal(t, router.ViewVehicleDetail, p.View)
		assert.Equal(t, "Vehicle Details", p.Title)
		assert.Equal(t, "v3", p.Vehicle.ID)
		assert.Len(t, p.Maintenance, 3)
		assert.False(t, p.MapLayout)

		for _, item := range p.Nav {
			assert.Equal(t, item.Section == router.SectionFleet, item.Active, item.Section)
		}
	})

	t.Run("unresolvable selection renders section", func(t *testing.T) {
		p := buildPage(s, router.State{ActiveSection: router.SectionMap, SelectedVehicleID: "v99"}, pageOptions{})
		assert.Equal(t, "map", p.View)
		assert.Equal(t, "Live Map", p.Title)
		assert.True(t, p.MapLayout)
		assert.Len(t, p.Markers, 4)
		assert.Empty(t, p.Vehicle.ID)
		assert.Empty(t, p.Maintenance)
	})
}

func TestNavLabelsComplete(t *testing.T) {
	for _, s := range router.Sections {
		assert.NotEmpty(t, navLabels[s], "missing label for %s", s)
	}
}
