package validate

import (
	"errors"

	"example.com/tracking/internal/domain"
)

var (
	errUnits          = errors.New("Units must be metric or imperial")
	errDefaultType    = errors.New("Default activity type must be one of walk, run, bike")
	errTheme          = errors.New("Theme must be light, dark, or auto")
	errUpdateInterval = errors.New("GPS update interval must be a positive number")
	errDistanceFilter = errors.New("Minimum distance filter must be a non-negative number")
)

// Preferences checks each configuration field against its closed set or
// numeric range. DefaultUserPreferences must always pass; the test suite
// guards that invariant.
func Preferences(p domain.UserPreferences) error {
	switch p.Units {
	case domain.UnitsMetric, domain.UnitsImperial:
	default:
		return errUnits
	}
	if !p.DefaultActivityType.IsValid() {
		return errDefaultType
	}
	switch p.Theme {
	case domain.ThemeLight, domain.ThemeDark, domain.ThemeAuto:
	default:
		return errTheme
	}
	if p.GPSUpdateInterval <= 0 {
		return errUpdateInterval
	}
	if p.MinDistanceFilter != nil && *p.MinDistanceFilter < 0 {
		return errDistanceFilter
	}
	return nil
}
