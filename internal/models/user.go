package models

// Role represents the role of the signed-in fleet operator.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

var roleLabels = map[Role]string{
	RoleAdmin:    "Administrator",
	RoleManager:  "Fleet Manager",
	RoleOperator: "Fleet Operator",
	RoleViewer:   "Viewer",
}

// Label returns the display name of r, or r itself when it is unknown.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Profile is the account shown on the settings page.
type Profile struct {
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	Role                 Role   `json:"role"`
	Phone                string `json:"phone"`
	Avatar               string `json:"avatar"`
	DarkMode             bool   `json:"darkMode"`
	DesktopNotifications bool   `json:"desktopNotifications"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	_, ok := roleLabels[role]
	return ok
}

// SettingsTab identifies a tab of the settings page.
type SettingsTab string

const (
	TabProfile       SettingsTab = "profile"
	TabNotifications SettingsTab = "notifications"
	TabSecurity      SettingsTab = "security"
	TabLanguage      SettingsTab = "language"
)

// SettingsTabs lists the settings tabs in display order.
var SettingsTabs = []SettingsTab{TabProfile, TabNotifications, TabSecurity, TabLanguage}

// ParseSettingsTab returns the tab named s, or the profile tab when s is unknown.
func ParseSettingsTab(s string) SettingsTab {
	for _, t := range SettingsTabs {
		if string(t) == s {
			return t
		}
	}
	return TabProfile
}
