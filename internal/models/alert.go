package models

// AlertType is the severity class of an alert.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// AlertTypes lists every alert type from most to least severe.
var AlertTypes = []AlertType{AlertCritical, AlertWarning, AlertInfo}

// Alert is a fleet notification. VehicleID is a soft reference and may be
// empty or point at a vehicle that does not exist.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	VehicleID string    `json:"vehicleId,omitempty"`
}

// StatIcon tags the glyph shown on a stat card.
type StatIcon string

const (
	IconCar     StatIcon = "car"
	IconAlert   StatIcon = "alert"
	IconMap     StatIcon = "map"
	IconFuel    StatIcon = "fuel"
	IconBattery StatIcon = "battery"
)

// StatVariant tags the colour scheme of a stat card.
type StatVariant string

const (
	VariantDefault StatVariant = "default"
	VariantBlue    StatVariant = "blue"
	VariantEmerald StatVariant = "emerald"
	VariantViolet  StatVariant = "violet"
	VariantAmber   StatVariant = "amber"
)

// Stat is a summary card on the dashboard.
type Stat struct {
	Label   string      `json:"label"`
	Value   string      `json:"value"`
	Trend   float64     `json:"trend"`   // percentage
	TrendUp bool        `json:"trendUp"` // true if the metric increased
	Icon    StatIcon    `json:"icon"`
	Variant StatVariant `json:"variant,omitempty"`
}
