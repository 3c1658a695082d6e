package handlers

import (
	"fmt"
	"strings"

	"github.com/ukydev/fleetpulse/internal/fleet"
	"github.com/ukydev/fleetpulse/internal/models"
	"github.com/ukydev/fleetpulse/internal/router"
	"github.com/ukydev/fleetpulse/internal/store"
)

// SystemLabel is shown for alerts not tied to a known vehicle.
const SystemLabel = "SYSTEM"

// NavItem is one sidebar entry.
type NavItem struct {
	Section router.Section
	Label   string
	Active  bool
}

var navLabels = map[router.Section]string{
	router.SectionDashboard: "Dashboard",
	router.SectionFleet:     "Fleet Status",
	router.SectionMap:       "Live Map",
	router.SectionAnalytics: "Analytics",
	router.SectionDrivers:   "Drivers",
	router.SectionAlerts:    "Alerts",
	router.SectionSettings:  "Settings",
}

// Marker is a vehicle pin on the schematic map, positioned in percent.
type Marker struct {
	Vehicle models.Vehicle
	Top     int
	Left    int
}

// AlertRow is an alert together with its resolved presentation.
type AlertRow struct {
	models.Alert
	Style        models.Style
	VehicleLabel string
	Linked       bool // VehicleLabel names a vehicle that can be opened
}

// Page is the data handed to the layout template.
type Page struct {
	View        string
	Title       string
	MapLayout   bool
	Nav         []NavItem
	Profile     models.Profile
	Vehicles    []models.Vehicle
	Markers     []Marker
	Stats       []models.Stat
	Alerts      []AlertRow
	Insight     string
	Tabs        []fleet.Tab
	Filter      string
	Usage       []models.UsageBar
	Schedule    []models.ScheduledService
	Drivers     []models.DriverProfile
	SettingsTab models.SettingsTab
	TabList     []models.SettingsTab
	Vehicle     models.Vehicle
	Maintenance []models.MaintenanceEntry
}

// MarkerPosition places a vehicle on the map from the last digit of its id.
// Ids not ending in a digit are placed as if the digit were zero.
func MarkerPosition(id string) (top, left int) {
	d := 0
	if n := len(id); n > 0 && id[n-1] >= '0' && id[n-1] <= '9' {
		d = int(id[n-1] - '0')
	}
	return (d*13 + 20) % 80, (d*23 + 10) % 80
}

// ShortEfficiency drops the unit from an efficiency string.
func ShortEfficiency(e string) string {
	if i := strings.IndexByte(e, ' '); i >= 0 {
		return e[:i]
	}
	return e
}

// OdometerK renders kilometres in thousands with one decimal.
func OdometerK(km int) string {
	return fmt.Sprintf("%.1fk", float64(km)/1000)
}

func navItems(state router.State) []NavItem {
	items := make([]NavItem, 0, len(router.Sections))
	for _, s := range router.Sections {
		items = append(items, NavItem{
			Section: s,
			Label:   navLabels[s],
			Active:  state.Highlighted() == s,
		})
	}
	return items
}

func markers(vehicles []models.Vehicle) []Marker {
	out := make([]Marker, 0, len(vehicles))
	for _, v := range vehicles {
		top, left := MarkerPosition(v.ID)
		out = append(out, Marker{Vehicle: v, Top: top, Left: left})
	}
	return out
}

func alertRows(s *store.Store, alerts []models.Alert) []AlertRow {
	rows := make([]AlertRow, 0, len(alerts))
	for _, a := range alerts {
		row := AlertRow{Alert: a, Style: a.Type.Style(), VehicleLabel: SystemLabel}
		if v, ok := s.AlertVehicle(a); ok {
			row.VehicleLabel = v.ID
			row.Linked = true
		}
		rows = append(rows, row)
	}
	return rows
}

// pageOptions carries the view-local toggles read from the query string.
type pageOptions struct {
	Filter      string
	SettingsTab string
	Insight     string
}

// buildPage assembles the data for the view selected by state.
func buildPage(s *store.Store, state router.State, opts pageOptions) Page {
	state.ActiveSection = router.ParseSection(string(state.ActiveSection))

	var (
		vehicle models.Vehicle
		found   bool
	)
	if state.HasSelection() {
		if vehicle, found = s.Vehicle(state.SelectedVehicleID); !found {
			// unresolvable selection renders the section
			state = state.ClearSelection()
		}
	}

	p := Page{
		View:      state.View(),
		Title:     state.Title(),
		MapLayout: state.View() == string(router.SectionMap),
		Nav:       navItems(state),
		Profile:   s.Profile(),
	}
	if found {
		p.Vehicle = vehicle
		p.Maintenance = s.MaintenanceLog(vehicle.ID)
		return p
	}

	switch state.ActiveSection {
	case router.SectionFleet:
		p.Tabs = fleet.Tabs
		p.Filter = opts.Filter
		if p.Filter == "" {
			p.Filter = fleet.All
		}
		p.Vehicles = fleet.FilterByStatus(s.Vehicles(), p.Filter)
	case router.SectionMap:
		p.Markers = markers(s.Vehicles())
	case router.SectionAnalytics:
		p.Usage = s.WeeklyUsage()
		p.Schedule = s.Schedule()
	case router.SectionDrivers:
		p.Drivers = s.Drivers()
	case router.SectionAlerts:
		p.Alerts = alertRows(s, s.AlertFeed())
	case router.SectionSettings:
		p.SettingsTab = models.ParseSettingsTab(opts.SettingsTab)
		p.TabList = models.SettingsTabs
	default:
		p.Stats = s.Stats()
		p.Vehicles = s.Vehicles()
		p.Markers = markers(p.Vehicles)
		p.Alerts = alertRows(s, s.Alerts())
		p.Insight = opts.Insight
	}
	return p
}
