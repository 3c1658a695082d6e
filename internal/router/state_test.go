package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/fleetpulse/internal/store"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, SectionDashboard, s.ActiveSection)
	assert.False(t, s.HasSelection())
	assert.Equal(t, "dashboard", s.View())
	assert.Equal(t, "Dashboard", s.Title())
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		input string
		want  Section
	}{
		{"dashboard", SectionDashboard},
		{"fleet", SectionFleet},
		{"map", SectionMap},
		{"analytics", SectionAnalytics},
		{"drivers", SectionDrivers},
		{"alerts", SectionAlerts},
		{"settings", SectionSettings},
		{"billing", SectionDashboard},
		{"", SectionDashboard},
		{"Fleet", SectionDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSection(tt.input))
		})
	}
}

func TestReduce_SelectSectionClearsSelection(t *testing.T) {
	s := State{ActiveSection: SectionFleet, SelectedVehicleID: "v1"}

	next := Reduce(s, SelectSection{Name: "alerts"}, nil)

	assert.Equal(t, State{ActiveSection: SectionAlerts}, next)
	assert.Equal(t, "v1", s.SelectedVehicleID, "input state must not change")
}

func TestReduce_SelectVehicle(t *testing.T) {
	vehicles := store.Default()

	tests := []struct {
		name  string
		start State
		id    string
		want  State
	}{
		{
			name:  "known vehicle",
			start: Initial(),
			id:    "v2",
			want:  State{ActiveSection: SectionDashboard, SelectedVehicleID: "v2"},
		},
		{
			name:  "unknown vehicle from no selection",
			start: Initial(),
			id:    "v99",
			want:  Initial(),
		},
		{
			name:  "unknown vehicle keeps previous selection",
			start: State{ActiveSection: SectionFleet, SelectedVehicleID: "v1"},
			id:    "nope",
			want:  State{ActiveSection: SectionFleet, SelectedVehicleID: "v1"},
		},
		{
			name:  "empty id",
			start: Initial(),
			id:    "",
			want:  Initial(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.start, SelectVehicle{ID: tt.id}, vehicles))
		})
	}
}

func TestReduce_SelectVehicleWithoutFinder(t *testing.T) {
	s := Initial()
	assert.Equal(t, s, Reduce(s, SelectVehicle{ID: "v1"}, nil))
}

func TestMapThenVehicleShowsDetail(t *testing.T) {
	s := Initial().
		SelectSection("map").
		SelectVehicle("v3", store.Default())

	assert.Equal(t, "v3", s.SelectedVehicleID)
	assert.Equal(t, SectionMap, s.ActiveSection)
	assert.Equal(t, ViewVehicleDetail, s.View())
	assert.Equal(t, "Vehicle Details", s.Title())
	assert.Equal(t, SectionFleet, s.Highlighted())

	back := s.ClearSelection()
	assert.Equal(t, "map", back.View())
	assert.Equal(t, "Live Map", back.Title())
	assert.Equal(t, SectionMap, back.Highlighted())
}

func TestTitle(t *testing.T) {
	tests := []struct {
		section Section
		want    string
	}{
		{SectionDashboard, "Dashboard"},
		{SectionFleet, "Fleet"},
		{SectionMap, "Live Map"},
		{SectionAnalytics, "Analytics"},
		{SectionDrivers, "Drivers"},
		{SectionAlerts, "Alerts"},
		{SectionSettings, "Settings"},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			assert.Equal(t, tt.want, State{ActiveSection: tt.section}.Title())
		})
	}
}
