package router

import "github.com/ukydev/fleetpulse/internal/store"

// Action is a navigation event raised by a view.
type Action interface {
	action()
}

// SelectSection switches to a section and drops any vehicle selection.
type SelectSection struct {
	Name string
}

// SelectVehicle opens the detail view of a vehicle.
type SelectVehicle struct {
	ID string
}

// ClearSelection returns from the detail view to the active section.
type ClearSelection struct{}

func (SelectSection) action()  {}
func (SelectVehicle) action()  {}
func (ClearSelection) action() {}

// Reduce applies a to s and returns the next state. SelectVehicle with an
// id that vehicles cannot resolve, or with a nil finder, leaves s unchanged.
func Reduce(s State, a Action, vehicles store.VehicleFinder) State {
	switch a := a.(type) {
	case SelectSection:
		return State{ActiveSection: ParseSection(a.Name)}
	case SelectVehicle:
		if vehicles == nil {
			return s
		}
		v, ok := vehicles.Vehicle(a.ID)
		if !ok {
			return s
		}
		s.SelectedVehicleID = v.ID
		return s
	case ClearSelection:
		s.SelectedVehicleID = ""
		return s
	default:
		return s
	}
}
