package domain

// Units selects the measurement system used for display.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Theme selects the application colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// UserPreferences is the user-editable configuration record. It is always
// passed through validation before use.
type UserPreferences struct {
	Units                  Units        `json:"units"`
	DefaultActivityType    ActivityType `json:"default_activity_type"`
	AutoBackgroundTracking bool         `json:"auto_background_tracking"`
	GPSUpdateInterval      float64      `json:"gps_update_interval_s"`
	Theme                  Theme        `json:"theme"`
	EnableHapticFeedback   bool         `json:"enable_haptic_feedback"`
	EnableAnimations       bool         `json:"enable_animations"`
	MinDistanceFilter      *float64     `json:"min_distance_filter_m,omitempty"`
	ShowCharacter          *bool        `json:"show_character,omitempty"`
}

// DefaultUserPreferences returns the documented first-run configuration:
// metric units, walking as the default activity, automatic background
// tracking, a 5 second GPS update interval, the auto theme, and haptics and
// animations enabled.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Units:                  UnitsMetric,
		DefaultActivityType:    ActivityWalk,
		AutoBackgroundTracking: true,
		GPSUpdateInterval:      5,
		Theme:                  ThemeAuto,
		EnableHapticFeedback:   true,
		EnableAnimations:       true,
	}
}
