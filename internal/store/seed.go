package store

import "github.com/ukydev/fleetpulse/internal/models"

// Seed returns a fresh copy of the built-in fleet fixtures.
func Seed() Data {
	return Data{
		Vehicles: []models.Vehicle{
			{
				ID:           "v1",
				VIN:          "TSLA-S-99283",
				Name:         "Logistics Unit A1",
				Model:        "Tesla Semi",
				Image:        "https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&q=80&w=800",
				Status:       models.StatusActive,
				BatteryLevel: 78,
				Range:        420,
				Location:     models.Location{Lat: 40.7128, Lng: -74.0060, Address: "Broadway, New York"},
				Speed:        65,
				Driver:       models.Driver{ID: "d1", Name: "Alex M.", Avatar: "https://i.pravatar.cc/150?u=a042581f4e29026024d", Rating: 4.9},
				Temperature:  21,
				Odometer:     12450,
				Efficiency:   "1.8 kWh/km",
			},
			{
				ID:           "v2",
				VIN:          "MB-SPR-1102",
				Name:         "Rapid Delivery 04",
				Model:        "eSprinter Van",
				Image:        "https://images.unsplash.com/photo-1591293836371-9231f827255f?auto=format&fit=crop&q=80&w=800",
				Status:       models.StatusCharging,
				BatteryLevel: 24,
				Range:        45,
				Location:     models.Location{Lat: 40.7580, Lng: -73.9855, Address: "Charging Station 4"},
				Speed:        0,
				Driver:       models.Driver{ID: "d2", Name: "Sarah J.", Avatar: "https://i.pravatar.cc/150?u=a042581f4e29026704d", Rating: 4.7},
				Temperature:  19,
				Odometer:     45200,
				Efficiency:   "22 kWh/100km",
			},
			{
				ID:           "v3",
				VIN:          "RIV-EDV-552",
				Name:         "Urban Hauler X",
				Model:        "Rivian EDV",
				Image:        "https://images.unsplash.com/photo-1675258364539-780c74996459?auto=format&fit=crop&q=80&w=800",
				Status:       models.StatusIdle,
				BatteryLevel: 92,
				Range:        200,
				Location:     models.Location{Lat: 40.7829, Lng: -73.9654, Address: "Central Depot"},
				Speed:        0,
				Driver:       models.Driver{ID: "d3", Name: "Mike T.", Avatar: "https://i.pravatar.cc/150?u=a04258114e29026302d", Rating: 4.8},
				Temperature:  22,
				Odometer:     8900,
				Efficiency:   "19 kWh/100km",
			},
			{
				ID:           "v4",
				VIN:          "VOL-FH-883",
				Name:         "Heavy Freight 02",
				Model:        "Volvo FH Electric",
				Image:        "https://images.unsplash.com/photo-1601584115197-04ecc0da31d7?auto=format&fit=crop&q=80&w=800",
				Status:       models.StatusActive,
				BatteryLevel: 45,
				Range:        180,
				Location:     models.Location{Lat: 40.7484, Lng: -73.9857, Address: "Empire State Delivery"},
				Speed:        42,
				Driver:       models.Driver{ID: "d4", Name: "David L.", Avatar: "https://i.pravatar.cc/150?u=a04258114e29026708c", Rating: 5.0},
				Temperature:  20,
				Odometer:     85430,
				Efficiency:   "1.2 kWh/km",
			},
		},

		Alerts: []models.Alert{
			{ID: "a1", Type: models.AlertCritical, Message: "Tire pressure low - Vehicle v1", Timestamp: "2 min ago", VehicleID: "v1"},
			{ID: "a2", Type: models.AlertWarning, Message: "Unexpected stop detected", Timestamp: "15 min ago", VehicleID: "v4"},
			{ID: "a3", Type: models.AlertInfo, Message: "Vehicle v2 started charging", Timestamp: "1 hour ago", VehicleID: "v2"},
		},
		EarlierAlerts: []models.Alert{
			{ID: "a4", Type: models.AlertWarning, Message: "Geofence exit detected: Unit A1", Timestamp: "3 hours ago", VehicleID: "v1"},
			{ID: "a5", Type: models.AlertInfo, Message: "Scheduled maintenance upcoming", Timestamp: "5 hours ago", VehicleID: "v3"},
			{ID: "a6", Type: models.AlertCritical, Message: "Battery temperature warning", Timestamp: "Yesterday", VehicleID: "v4"},
		},

		Stats: []models.Stat{
			{Label: "Active Vehicles", Value: "24", Trend: 12, TrendUp: true, Icon: models.IconCar, Variant: models.VariantBlue},
			{Label: "Critical Alerts", Value: "3", Trend: 2, TrendUp: false, Icon: models.IconAlert, Variant: models.VariantAmber},
			{Label: "Total Distance", Value: "1,847 km", Trend: 8, TrendUp: true, Icon: models.IconMap, Variant: models.VariantDefault},
			{Label: "Avg Efficiency", Value: "94%", Trend: 3, TrendUp: true, Icon: models.IconBattery, Variant: models.VariantEmerald},
		},

		DriverStats: map[string]DriverStats{
			"d1": {Trips: 412, SafetyScore: 97},
			"d2": {Trips: 268, SafetyScore: 93},
			"d3": {Trips: 185, SafetyScore: 95},
			"d4": {Trips: 530, SafetyScore: 99},
		},
		ExtraDrivers: []models.DriverProfile{
			{
				Driver:      models.Driver{ID: "d5", Name: "James W.", Avatar: "https://i.pravatar.cc/150?u=james", Rating: 4.5},
				VehicleName: models.Unassigned,
				Status:      models.StatusIdle,
				Trips:       320,
				SafetyScore: 88,
			},
			{
				Driver:      models.Driver{ID: "d6", Name: "Elena R.", Avatar: "https://i.pravatar.cc/150?u=elena", Rating: 4.9},
				VehicleName: models.Unassigned,
				Status:      models.StatusIdle,
				Trips:       150,
				SafetyScore: 98,
			},
		},

		Maintenance: map[string][]models.MaintenanceEntry{
			"v1": serviceHistory(),
			"v2": serviceHistory(),
			"v3": serviceHistory(),
			"v4": serviceHistory(),
		},
		Schedule: []models.ScheduledService{
			{VehicleName: "Logistics Unit A1", Status: "Scheduled", Date: "Tomorrow, 09:00 AM", ServiceType: "Tire Rotation"},
			{VehicleName: "Heavy Freight 02", Status: "Overdue", Date: "Yesterday", ServiceType: "Battery Inspection", Urgent: true},
			{VehicleName: "Urban Hauler X", Status: "Completed", Date: "Oct 24, 2023", ServiceType: "Software Update"},
		},
		WeeklyUsage: []models.UsageBar{
			{Day: "Mon", Percent: 45},
			{Day: "Tue", Percent: 70},
			{Day: "Wed", Percent: 35},
			{Day: "Thu", Percent: 90},
			{Day: "Fri", Percent: 60},
			{Day: "Sat", Percent: 20},
			{Day: "Sun", Percent: 50},
		},

		Profile: models.Profile{
			FullName:             "Qclay Admin",
			Email:                "admin@fleetpulse.com",
			Role:                 models.RoleManager,
			Phone:                "+1 (555) 123-4567",
			Avatar:               "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=150",
			DarkMode:             false,
			DesktopNotifications: true,
		},
	}
}

// every vehicle shares the same demo history
func serviceHistory() []models.MaintenanceEntry {
	return []models.MaintenanceEntry{
		{Date: "2023-10-15", ServiceType: "Tire Rotation", Status: "Completed", Cost: "$120"},
		{Date: "2023-09-01", ServiceType: "Annual Inspection", Status: "Completed", Cost: "$450"},
		{Date: "2023-06-20", ServiceType: "Software Update 2.1", Status: "Completed", Cost: "$0"},
	}
}
