package handlers

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/ukydev/fleetpulse/internal/models"
)

var templateFuncs = template.FuncMap{
	"upper":     strings.ToUpper,
	"shortEff":  ShortEfficiency,
	"odometerK": OdometerK,
	"coord": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 4, 64)
	},
	"tabLabel": func(t models.SettingsTab) string {
		s := string(t)
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"gradient": func(v models.StatVariant) bool {
		return v != "" && v != models.VariantDefault
	},
}

var pageTemplate = template.Must(template.New("fleetpulse").Funcs(templateFuncs).Parse(layoutHTML + partialsHTML + viewsHTML))

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>FleetPulse - {{.Title}}</title>
<style>
body{margin:0;font-family:Inter,system-ui,sans-serif;background:#f8fafc;color:#1e293b;display:flex}
aside{width:16rem;min-height:100vh;background:#0f172a;color:#fff;display:flex;flex-direction:column}
aside a{display:block;padding:.75rem 1rem;margin:.25rem .75rem;border-radius:.5rem;color:#94a3b8;text-decoration:none}
aside a.active{background:rgba(79,70,229,.1);color:#818cf8}
main{flex:1;padding:2rem}main.map-layout{padding:1rem}
header{height:5rem;display:flex;align-items:center;justify-content:space-between;border-bottom:1px solid #e2e8f0;padding:0 2rem}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:1.5rem;padding:1.5rem;margin-bottom:1.5rem}
.grid{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fill,minmax(18rem,1fr))}
.badge{padding:.25rem .75rem;border-radius:999px;font-size:.75rem;font-weight:700;text-transform:uppercase;color:#fff}
.badge-emerald{background:#10b981}.badge-red{background:#ef4444}.badge-amber{background:#f59e0b}.badge-slate{background:#64748b}
.alert-rose{background:#fff1f2;color:#e11d48}.alert-amber{background:#fffbeb;color:#d97706}.alert-blue{background:#eff6ff;color:#2563eb}
.map{position:relative;height:400px;background:#e5e7eb;border-radius:1.5rem;overflow:hidden}
.map.full{height:calc(100vh - 8rem)}
.marker{position:absolute;width:2rem;height:2rem;border-radius:999px;border:2px solid #fff}
.marker-indigo{background:#4f46e5}.marker-red{background:#ef4444}.marker-slate{background:#334155}
.stat{border-radius:1.5rem;padding:1.5rem;background:#fff;border:1px solid #e2e8f0}
.stat-blue{background:linear-gradient(135deg,#3b82f6,#6366f1);color:#fff}
.stat-emerald{background:linear-gradient(135deg,#10b981,#059669);color:#fff}
.stat-violet{background:linear-gradient(135deg,#8b5cf6,#6d28d9);color:#fff}
.stat-amber{background:linear-gradient(135deg,#f59e0b,#ea580c);color:#fff}
.tab{padding:.5rem 1.5rem;border-radius:.5rem;color:#64748b;text-decoration:none}.tab.active{background:#0f172a;color:#fff}
.bar{background:#f1f5f9;height:16rem;position:relative;flex:1;border-radius:.75rem .75rem 0 0}
.bar span{position:absolute;bottom:0;left:0;right:0;background:#6366f1;border-radius:.75rem .75rem 0 0}
</style>
</head>
<body>
<aside>
  <div style="padding:1.5rem;font-weight:700">FleetPulse</div>
  <nav>
  {{range .Nav}}<a href="/nav/section/{{.Section}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
  {{end}}</nav>
  <div style="margin-top:auto;padding:1rem;display:flex;gap:.75rem;align-items:center">
    <img src="{{.Profile.Avatar}}" alt="Admin" width="40" height="40" style="border-radius:999px">
    <div><p style="margin:0">{{.Profile.FullName}}</p><p style="margin:0;font-size:.75rem;color:#64748b">{{.Profile.Role.Label}}</p></div>
  </div>
</aside>
<div style="flex:1;display:flex;flex-direction:column">
<header>
  <div><h1 style="margin:0;font-size:1.25rem">{{.Title}}</h1><p style="margin:0;font-size:.75rem;color:#64748b">Real-time fleet monitoring</p></div>
  <input type="text" placeholder="Search vehicle, driver...">
</header>
<main{{if .MapLayout}} class="map-layout"{{end}}>
{{if eq .View "vehicle-detail"}}{{template "vehicle-detail" .}}
{{else if eq .View "fleet"}}{{template "fleet" .}}
{{else if eq .View "map"}}{{template "live-map" .}}
{{else if eq .View "analytics"}}{{template "analytics" .}}
{{else if eq .View "drivers"}}{{template "drivers" .}}
{{else if eq .View "alerts"}}{{template "alerts" .}}
{{else if eq .View "settings"}}{{template "settings" .}}
{{else}}{{template "dashboard" .}}{{end}}
</main>
</div>
</body>
</html>{{end}}`

const partialsHTML = `
{{define "stat-card"}}<div class="stat{{if gradient .Variant}} stat-{{.Variant}}{{end}}" data-icon="{{.Icon}}">
  {{if .Trend}}<span class="trend">{{if .TrendUp}}&#8599;{{else}}&#8600;{{end}} {{.Trend}}%</span>{{end}}
  <h3 style="font-size:1.875rem;margin:.5rem 0">{{.Value}}</h3>
  <p style="margin:0">{{.Label}}</p>
</div>{{end}}

{{define "vehicle-list"}}<div class="grid">
{{range .}}<a class="card vehicle" href="/nav/vehicle/{{.ID}}" style="text-decoration:none;color:inherit">
  <div style="position:relative">
    <img src="{{.Image}}" alt="{{.Name}}" style="width:100%;height:12rem;object-fit:cover;border-radius:1rem">
    <span class="badge {{.Status.Style.Badge}}" style="position:absolute;top:1rem;right:1rem">{{.Status}}</span>
  </div>
  <h3>{{.Name}}</h3><p style="font-family:monospace">{{.VIN}}</p>
  <div style="display:flex;justify-content:space-between;align-items:center">
    <div><img src="{{.Driver.Avatar}}" alt="{{.Driver.Name}}" width="40" height="40" style="border-radius:999px">
      <strong>{{.Driver.Name}}</strong> <span>Driver Rating {{.Driver.Rating}} &#9733;</span></div>
    <p style="font-size:1.5rem;font-weight:700">{{.Speed}} <small>km/h</small></p>
  </div>
  <div style="display:flex;gap:.5rem">
    <div><strong>{{.BatteryLevel}}%</strong> <small>CHARGE</small></div>
    <div><strong>{{.Range}}</strong> <small>RANGE (KM)</small></div>
    <div><strong>{{shortEff .Efficiency}}</strong> <small>EFF.</small></div>
  </div>
</a>
{{end}}</div>{{end}}

{{define "map-widget"}}
  <div style="position:absolute;top:1rem;left:1rem" class="card">Live Tracking</div>
  {{range .}}<a class="marker {{.Vehicle.Status.Style.Marker}}" href="/nav/vehicle/{{.Vehicle.ID}}" style="top:{{.Top}}%;left:{{.Left}}%" title="{{.Vehicle.Name}} - {{.Vehicle.Speed}} km/h - {{.Vehicle.BatteryLevel}}% Bat"></a>
  {{end}}
  <div class="card" style="position:absolute;bottom:1.5rem;left:1.5rem;right:1.5rem;margin:0">
    <p style="margin:0;font-size:.75rem;text-transform:uppercase">Current Route</p>
    <h4 style="margin:0">412 North City Road #14-3</h4>
  </div>
{{end}}

`

const viewsHTML = `
{{define "dashboard"}}<section class="card insight" style="background:#0f172a;color:#fff;display:flex;justify-content:space-between;align-items:center">
  <div>
    <h2>Fleet Intelligence</h2>
    {{if .Insight}}<p class="insight-text">{{.Insight}}</p>
    {{else}}<p style="color:#94a3b8">Generate real-time AI analysis of your fleet's efficiency and maintenance needs.</p>{{end}}
  </div>
  <form method="post" action="/insight"><button type="submit">Analyze Fleet</button></form>
</section>
<div class="grid">{{range .Stats}}{{template "stat-card" .}}{{end}}</div>
<div style="display:grid;grid-template-columns:2fr 1fr;gap:2rem;margin-top:2rem">
  <div>
    <h2>Live Location</h2>
    <div class="map">{{template "map-widget" .Markers}}</div>
    <h2>Active Vehicles</h2>
    {{template "vehicle-list" .Vehicles}}
  </div>
  <div>
    <section class="card">
      <h3>Live Alerts</h3>
      {{range .Alerts}}<div class="alert" style="display:flex;gap:1rem;margin-bottom:1rem">
        <span class="{{.Style.Badge}}" data-icon="{{.Style.Icon}}" style="padding:.5rem;border-radius:.75rem">{{.Style.Label}}</span>
        <div><p style="margin:0;font-weight:600">{{.Message}}</p><small>{{.Timestamp}}</small></div>
      </div>
      {{else}}<p class="all-clear">All systems normal</p>{{end}}
    </section>
    <section class="card">
      <h3>Fleet Efficiency</h3>
      <p style="font-size:2.25rem;font-weight:700;text-align:center">84%<br><small>ECO SCORE</small></p>
      <p>CO2 Saved <strong>124kg</strong></p>
      <p>Fuel Saved <strong>$450</strong></p>
    </section>
  </div>
</div>{{end}}

{{define "fleet"}}<div>
  <h2>Fleet Status</h2>
  <p>Manage and monitor all vehicles in your fleet.</p>
  <nav class="tabs">{{$filter := .Filter}}{{range .Tabs}}<a class="tab{{if eq .ID $filter}} active{{end}}" href="/?status={{.ID}}">{{.Label}}</a>{{end}}</nav>
  {{template "vehicle-list" .Vehicles}}
</div>{{end}}

{{define "live-map"}}<div>
  <h2>Live Operations Map</h2>
  <p>Real-time geospatial tracking of all assets.</p>
  <input placeholder="Find vehicle on map...">
  <div class="map full">{{template "map-widget" .Markers}}</div>
</div>{{end}}

{{define "analytics"}}<div>
  <h2>Performance Analytics</h2>
  <p>Key metrics and efficiency trends for the current period.</p>
  <div class="grid">
    <div class="card"><p>Operational Savings</p><h3>$24,500</h3><span>&#8599; 12%</span></div>
    <div class="card"><p>Energy Efficiency</p><h3>14.2 <small>kWh/100km</small></h3><span>&#8599; 5%</span></div>
    <div class="card"><p>Total Distance</p><h3>128,450 <small>km</small></h3><span>&#8600; 2%</span></div>
  </div>
  <div class="grid">
    <section class="card">
      <h3>Weekly Fleet Usage</h3>
      <div style="display:flex;gap:1rem;align-items:flex-end">
      {{range .Usage}}<div style="flex:1;text-align:center"><div class="bar"><span style="height:{{.Percent}}%"></span></div><small>{{.Day}}</small></div>
      {{end}}</div>
    </section>
    <section class="card">
      <h3>Maintenance Schedule</h3>
      {{range .Schedule}}<div class="schedule{{if .Urgent}} urgent{{end}}" style="display:flex;justify-content:space-between">
        <div><p style="margin:0;font-weight:700">{{.VehicleName}}</p><small>{{.ServiceType}}</small></div>
        <div style="text-align:right"><p style="margin:0;font-weight:700{{if .Urgent}};color:#e11d48{{end}}">{{.Status}}</p><small>{{.Date}}</small></div>
      </div>
      {{end}}
    </section>
  </div>
</div>{{end}}

{{define "drivers"}}<div>
  <h2>Drivers Directory</h2>
  <p>Manage driver profiles, performance, and assignments.</p>
  <div class="grid">
  {{range .Drivers}}<div class="card driver">
    <img src="{{.Avatar}}" alt="{{.Name}}" width="80" height="80" style="border-radius:1rem">
    <span class="badge {{if eq .Status "active"}}badge-emerald{{else}}badge-slate{{end}}">{{.Status}}</span>
    <span>&#9733; {{.Rating}}</span>
    <h3>{{.Name}}</h3>
    <p>ID: #{{upper .ID}}</p>
    <p>Total Trips <strong>{{.Trips}}</strong></p>
    <p>Safety Score <strong>{{.SafetyScore}}/100</strong></p>
    <p>{{.VehicleName}}</p>
    <p>+1 (555) 000-0000</p>
  </div>
  {{end}}</div>
</div>{{end}}

{{define "alerts"}}<div>
  <h2>System Alerts</h2>
  <p>Notifications, warnings, and critical events.</p>
  <div class="card">
  {{range .Alerts}}<div class="alert-row" style="display:flex;gap:1rem;border-bottom:1px solid #f1f5f9;padding:1rem 0">
    <span class="{{.Style.Badge}}" data-icon="{{.Style.Icon}}" style="padding:.75rem;border-radius:1rem">{{.Style.Label}}</span>
    <div style="flex:1">
      <h4 style="margin:0">{{upper (print .Type)}} ALERT</h4>
      <small>{{.Timestamp}}</small>
      <p>{{.Message}}</p>
      <span class="vehicle-ref" style="font-family:monospace">ID: {{.VehicleLabel}}</span>
      {{if .Linked}}<a href="/nav/vehicle/{{.VehicleLabel}}">View Diagnostics</a>{{end}}
    </div>
  </div>
  {{end}}
  <p style="text-align:center">Load older alerts</p>
  </div>
</div>{{end}}

{{define "settings"}}<div>
  <h2>Settings</h2>
  <p>Manage your account preferences and application settings.</p>
  <div style="display:grid;grid-template-columns:1fr 3fr;gap:2rem">
    <nav>{{$tab := .SettingsTab}}{{range .TabList}}<a class="tab{{if eq . $tab}} active{{end}}" href="/?tab={{.}}">{{tabLabel .}}</a>
    {{end}}</nav>
    <div>
      <section class="card">
        <h3>Profile Information</h3>
        <img src="{{.Profile.Avatar}}" alt="Profile" width="96" height="96" style="border-radius:999px">
        <label>Full Name <input type="text" value="{{.Profile.FullName}}"></label>
        <label>Email Address <input type="email" value="{{.Profile.Email}}"></label>
        <label>Role <input type="text" value="{{.Profile.Role.Label}}" disabled></label>
        <label>Phone <input type="tel" value="{{.Profile.Phone}}"></label>
      </section>
      <section class="card">
        <h3>Preferences</h3>
        <label><input type="checkbox"{{if .Profile.DarkMode}} checked{{end}}> Dark Mode</label>
        <label><input type="checkbox"{{if .Profile.DesktopNotifications}} checked{{end}}> Desktop Notifications</label>
      </section>
    </div>
  </div>
</div>{{end}}

{{define "vehicle-detail"}}{{with .Vehicle}}<div>
  <a href="/nav/back">Back to Fleet</a>
  <section class="card">
    <img src="{{.Image}}" alt="{{.Name}}" style="width:100%;height:20rem;object-fit:cover;border-radius:1rem">
    <span class="badge {{.Status.Style.Badge}}">{{.Status}}</span> <span class="badge badge-slate">{{.Model}}</span>
    <h1>{{.Name}}</h1>
    <p style="font-family:monospace">{{.VIN}}</p>
    <div style="display:flex;justify-content:space-around">
      <div>Battery <strong>{{.BatteryLevel}}%</strong></div>
      <div>Range <strong>{{.Range}} km</strong></div>
      <div>Odometer <strong>{{odometerK .Odometer}}</strong></div>
      <div>Efficiency <strong>{{shortEff .Efficiency}}</strong></div>
    </div>
  </section>
  <section class="card">
    <h3>Technical Diagnostics</h3>
    <p>Cabin Temperature <strong>{{.Temperature}}&#176;C</strong></p>
    <p>Tire Pressure <strong>Optimal (36 PSI)</strong></p>
    <p>Last Sync <strong>2 mins ago</strong></p>
    <p>Software Version <strong>v2023.44.1</strong></p>
    <p>Battery Health <strong>98% (Excellent)</strong></p>
    <p>Next Service <strong>in 4,500 km</strong></p>
  </section>
  <section class="card">
    <h3>Assigned Driver</h3>
    <img src="{{.Driver.Avatar}}" alt="{{.Driver.Name}}" width="64" height="64" style="border-radius:1rem">
    <h4>{{.Driver.Name}}</h4>
    <p>&#9733; {{.Driver.Rating}} Rating</p>
  </section>
  <section class="card">
    <h3>Current Location</h3>
    <p style="font-weight:700">{{.Location.Address}}</p>
    <p style="font-family:monospace">{{coord .Location.Lat}}, {{coord .Location.Lng}}</p>
  </section>
</div>{{end}}
<section class="card">
  <h3>Maintenance History</h3>
  <table>
    <thead><tr><th>Date</th><th>Service Type</th><th>Cost</th><th>Status</th></tr></thead>
    <tbody>{{range .Maintenance}}<tr><td>{{.Date}}</td><td>{{.ServiceType}}</td><td>{{.Cost}}</td><td>{{.Status}}</td></tr>
    {{end}}</tbody>
  </table>
</section>{{end}}
`
