package store

import (
	"errors"
	"fmt"

	"github.com/ukydev/fleetpulse/internal/models"
)

var (
	ErrDuplicateVehicle = errors.New("duplicate vehicle id")
	ErrEmptyVehicleID   = errors.New("empty vehicle id")
	ErrInvalidRole      = errors.New("invalid profile role")
)

// Data holds the raw fixture collections a Store is built from.
type Data struct {
	Vehicles      []models.Vehicle
	Alerts        []models.Alert // shown on the dashboard panel
	EarlierAlerts []models.Alert // appended to Alerts in the full feed
	Stats         []models.Stat
	ExtraDrivers  []models.DriverProfile
	DriverStats   map[string]DriverStats // keyed by driver id
	Maintenance   map[string][]models.MaintenanceEntry
	Schedule      []models.ScheduledService
	WeeklyUsage   []models.UsageBar
	Profile       models.Profile
}

// DriverStats carries the directory numbers for a vehicle-assigned driver.
type DriverStats struct {
	Trips       int
	SafetyScore int
}

// VehicleFinder looks up a vehicle by id.
type VehicleFinder interface {
	Vehicle(id string) (models.Vehicle, bool)
}

// Store is the read-only fixture store. It is safe for concurrent use
// because nothing mutates it after New returns; accessors hand out copies.
type Store struct {
	data Data
	byID map[string]int
}

// New builds a Store from d, rejecting empty or duplicate vehicle ids and
// an unknown profile role. Alert vehicle references are not checked.
func New(d Data) (*Store, error) {
	if d.Profile.Role != "" && !models.IsValidRole(d.Profile.Role) {
		return nil, fmt.Errorf("role %q: %w", d.Profile.Role, ErrInvalidRole)
	}
	byID := make(map[string]int, len(d.Vehicles))
	for i, v := range d.Vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("vehicle at index %d: %w", i, ErrEmptyVehicleID)
		}
		if _, exists := byID[v.ID]; exists {
			return nil, fmt.Errorf("vehicle %q: %w", v.ID, ErrDuplicateVehicle)
		}
		byID[v.ID] = i
	}
	return &Store{data: d, byID: byID}, nil
}

// Default returns the store seeded with the built-in fleet fixtures.
func Default() *Store {
	s, err := New(Seed())
	if err != nil {
		panic(fmt.Sprintf("store: invalid seed data: %v", err))
	}
	return s
}

// Vehicles returns every vehicle in fixture order.
func (s *Store) Vehicles() []models.Vehicle {
	return append([]models.Vehicle(nil), s.data.Vehicles...)
}

// Vehicle finds a vehicle by its ID.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Vehicle{}, false
	}
	return s.data.Vehicles[i], true
}

// Alerts returns the live alerts shown on the dashboard.
func (s *Store) Alerts() []models.Alert {
	return append([]models.Alert(nil), s.data.Alerts...)
}

// AlertFeed returns the live alerts followed by the earlier ones.
func (s *Store) AlertFeed() []models.Alert {
	feed := make([]models.Alert, 0, len(s.data.Alerts)+len(s.data.EarlierAlerts))
	feed = append(feed, s.data.Alerts...)
	return append(feed, s.data.EarlierAlerts...)
}

// Alert finds an alert of the full feed by its ID.
func (s *Store) Alert(id string) (models.Alert, bool) {
	for _, feed := range [][]models.Alert{s.data.Alerts, s.data.EarlierAlerts} {
		for _, a := range feed {
			if a.ID == id {
				return a, true
			}
		}
	}
	return models.Alert{}, false
}

// AlertVehicle resolves the vehicle an alert refers to. A missing or
// dangling reference is legal and reports ok=false.
func (s *Store) AlertVehicle(a models.Alert) (models.Vehicle, bool) {
	if a.VehicleID == "" {
		return models.Vehicle{}, false
	}
	return s.Vehicle(a.VehicleID)
}

// Stats returns the dashboard summary cards.
func (s *Store) Stats() []models.Stat {
	return append([]models.Stat(nil), s.data.Stats...)
}

// Drivers returns the drivers directory: one entry per vehicle driver,
// followed by the unassigned drivers.
func (s *Store) Drivers() []models.DriverProfile {
	out := make([]models.DriverProfile, 0, len(s.data.Vehicles)+len(s.data.ExtraDrivers))
	for _, v := range s.data.Vehicles {
		st := s.data.DriverStats[v.Driver.ID]
		out = append(out, models.DriverProfile{
			Driver:      v.Driver,
			VehicleName: v.Name,
			Status:      v.Status,
			Trips:       st.Trips,
			SafetyScore: st.SafetyScore,
		})
	}
	return append(out, s.data.ExtraDrivers...)
}

// MaintenanceLog returns the service history of a vehicle, newest first.
func (s *Store) MaintenanceLog(vehicleID string) []models.MaintenanceEntry {
	return append([]models.MaintenanceEntry(nil), s.data.Maintenance[vehicleID]...)
}

// Schedule returns the fleet-wide maintenance schedule.
func (s *Store) Schedule() []models.ScheduledService {
	return append([]models.ScheduledService(nil), s.data.Schedule...)
}

// WeeklyUsage returns the bars of the weekly usage chart.
func (s *Store) WeeklyUsage() []models.UsageBar {
	return append([]models.UsageBar(nil), s.data.WeeklyUsage...)
}

// Profile returns the account shown on the settings page.
func (s *Store) Profile() models.Profile {
	return s.data.Profile
}
