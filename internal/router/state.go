package router

import (
	"strings"

	"github.com/ukydev/fleetpulse/internal/store"
)

type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionFleet     Section = "fleet"
	SectionMap       Section = "map"
	SectionAnalytics Section = "analytics"
	SectionDrivers   Section = "drivers"
	SectionAlerts    Section = "alerts"
	SectionSettings  Section = "settings"
)

// Sections lists the navigable sections in sidebar order.
var Sections = []Section{
	SectionDashboard,
	SectionFleet,
	SectionMap,
	SectionAnalytics,
	SectionDrivers,
	SectionAlerts,
	SectionSettings,
}

// ViewVehicleDetail is the view shown while a vehicle is selected.
const ViewVehicleDetail = "vehicle-detail"

// ParseSection maps a name to a known section. Unknown names resolve to
// the dashboard.
func ParseSection(name string) Section {
	for _, s := range Sections {
		if string(s) == name {
			return s
		}
	}
	return SectionDashboard
}

// State is the navigation state of one browser session.
type State struct {
	ActiveSection     Section `json:"section"`
	SelectedVehicleID string  `json:"vehicle,omitempty"`
}

// Initial returns the state of a fresh session.
func Initial() State {
	return State{ActiveSection: SectionDashboard}
}

// HasSelection reports whether a vehicle is selected.
func (s State) HasSelection() bool {
	return s.SelectedVehicleID != ""
}

// View returns the effective view name. A selected vehicle takes
// precedence over the active section.
func (s State) View() string {
	if s.HasSelection() {
		return ViewVehicleDetail
	}
	return string(s.ActiveSection)
}

// Title returns the header title for the current view.
func (s State) Title() string {
	if s.HasSelection() {
		return "Vehicle Details"
	}
	if s.ActiveSection == SectionMap {
		return "Live Map"
	}
	name := string(s.ActiveSection)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Highlighted returns the sidebar entry to highlight.
func (s State) Highlighted() Section {
	if s.HasSelection() {
		return SectionFleet
	}
	return s.ActiveSection
}

// SelectSection is shorthand for Reduce with a SelectSection action.
func (s State) SelectSection(name string) State {
	return Reduce(s, SelectSection{Name: name}, nil)
}

// SelectVehicle is shorthand for Reduce with a SelectVehicle action.
func (s State) SelectVehicle(id string, vehicles store.VehicleFinder) State {
	return Reduce(s, SelectVehicle{ID: id}, vehicles)
}

// ClearSelection is shorthand for Reduce with a ClearSelection action.
func (s State) ClearSelection() State {
	return Reduce(s, ClearSelection{}, nil)
}
