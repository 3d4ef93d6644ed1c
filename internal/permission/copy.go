package permission

import "fmt"

// Platform identifies the host operating system. Platform variance lives
// entirely in this file's lookup tables; the state machine itself is
// platform-independent.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

type promptCopy struct {
	Title   string
	Message string
}

type platformCopy struct {
	rationale        map[Kind]promptCopy
	guidance         map[Kind]promptCopy
	serviceDisabled  promptCopy
	settingsRedirect promptCopy
	settingsURI      func(bundleID string) string
}

var copyByPlatform = map[Platform]platformCopy{
	PlatformIOS: {
		rationale: map[Kind]promptCopy{
			KindWhenInUse: {
				Title:   "Allow Location Access",
				Message: "Your location is used to map your route and measure distance and pace while you work out.",
			},
			KindAlways: {
				Title:   "Allow Background Location",
				Message: "Background location keeps recording your route when the screen is locked or the app is in the background.",
			},
		},
		guidance: map[Kind]promptCopy{
			KindWhenInUse: {
				Title:   "Location Still Needed",
				Message: "Workouts can't be recorded without location access. Please allow access when prompted.",
			},
			KindAlways: {
				Title:   "Background Location Still Needed",
				Message: "Without background access, recording stops when you lock your screen. Please choose \"Always\" when prompted.",
			},
		},
		serviceDisabled: promptCopy{
			Title:   "Location Services Off",
			Message: "Turn on Location Services in Settings > Privacy to record workouts.",
		},
		settingsRedirect: promptCopy{
			Title:   "Location Permission Needed",
			Message: "Location access was denied. You can enable it for this app in Settings.",
		},
		settingsURI: func(string) string { return "app-settings:" },
	},
	PlatformAndroid: {
		rationale: map[Kind]promptCopy{
			KindWhenInUse: {
				Title:   "Allow Location Access",
				Message: "Precise location is used to map your route and measure distance and pace while you work out.",
			},
			KindAlways: {
				Title:   "Allow Location All the Time",
				Message: "Choosing \"Allow all the time\" keeps your route recording while the app is in the background.",
			},
		},
		guidance: map[Kind]promptCopy{
			KindWhenInUse: {
				Title:   "Location Still Needed",
				Message: "Workouts can't be recorded without location access. Please allow access on the next prompt.",
			},
			KindAlways: {
				Title:   "Background Location Still Needed",
				Message: "Without \"Allow all the time\", recording stops when the app leaves the screen.",
			},
		},
		serviceDisabled: promptCopy{
			Title:   "Location Is Off",
			Message: "Turn on device location to record workouts.",
		},
		settingsRedirect: promptCopy{
			Title:   "Location Permission Needed",
			Message: "Location access was denied. You can enable it in the app's settings page.",
		},
		settingsURI: func(bundleID string) string { return fmt.Sprintf("package:%s", bundleID) },
	},
}

// copyFor resolves the copy table for a platform, defaulting to iOS when the
// identifier is unknown so that the flow always has usable text.
func copyFor(platform Platform) platformCopy {
	if c, ok := copyByPlatform[platform]; ok {
		return c
	}
	return copyByPlatform[PlatformIOS]
}
