package models

// Style is the presentation attached to a status or alert type.
type Style struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Badge  string `json:"badge"`  // CSS class for list and detail badges
	Marker string `json:"marker"` // CSS class for map markers
}

var statusStyles = map[VehicleStatus]Style{
	StatusActive:      {Label: "Active", Icon: "navigation", Badge: "badge-emerald", Marker: "marker-indigo"},
	StatusMaintenance: {Label: "In Maintenance", Icon: "wrench", Badge: "badge-red", Marker: "marker-red"},
	StatusIdle:        {Label: "Idle", Icon: "pause", Badge: "badge-slate", Marker: "marker-slate"},
	StatusCharging:    {Label: "Charging", Icon: "zap", Badge: "badge-amber", Marker: "marker-slate"},
}

var alertStyles = map[AlertType]Style{
	AlertCritical: {Label: "Critical", Icon: "alert-circle", Badge: "alert-rose", Marker: "marker-red"},
	AlertWarning:  {Label: "Warning", Icon: "alert-triangle", Badge: "alert-amber", Marker: "marker-amber"},
	AlertInfo:     {Label: "Info", Icon: "info", Badge: "alert-blue", Marker: "marker-blue"},
}

// Style returns the presentation for s. Unknown statuses get the idle style.
func (s VehicleStatus) Style() Style {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return statusStyles[StatusIdle]
}

// Style returns the presentation for t. Unknown types get the info style.
func (t AlertType) Style() Style {
	if st, ok := alertStyles[t]; ok {
		return st
	}
	return alertStyles[AlertInfo]
}
