// Package permission orchestrates the platform location-permission flow: a
// base orchestrator that queries and requests the underlying capability, and
// a guided policy that layers a bounded escalation protocol (rationale,
// guidance, suppression) on top of it.
package permission

import "context"

// Kind distinguishes the two location capabilities the platform exposes.
type Kind string

const (
	// KindWhenInUse is the foreground ("while in use") location permission.
	KindWhenInUse Kind = "when-in-use"
	// KindAlways is the background ("always") location permission.
	KindAlways Kind = "always"
)

// Status classifies the platform's answer for a permission kind.
type Status string

const (
	StatusGranted      Status = "granted"
	StatusDenied       Status = "denied"
	StatusUndetermined Status = "undetermined"
)

// Result is the normalized outcome of a permission check or request.
type Result struct {
	Status      Status `json:"status"`
	Granted     bool   `json:"granted"`
	CanAskAgain bool   `json:"can_ask_again"`
}

// Granted builds a granted result.
func Granted() Result {
	return Result{Status: StatusGranted, Granted: true, CanAskAgain: true}
}

// Denied builds a denied result. canAskAgain is false when the platform
// reports the denial as permanent.
func Denied(canAskAgain bool) Result {
	return Result{Status: StatusDenied, CanAskAgain: canAskAgain}
}

// Capability abstracts the operating system's location permission surface.
// Implementations bridge to the actual platform APIs; tests use fakes.
type Capability interface {
	// Status reports the current permission state without prompting.
	Status(ctx context.Context, kind Kind) (Result, error)
	// Request invokes the platform permission dialog for the given kind.
	Request(ctx context.Context, kind Kind) (Result, error)
	// ServiceEnabled reports whether device location services are on at all.
	ServiceEnabled(ctx context.Context) (bool, error)
	// OpenAppSettings opens the generic application settings surface.
	OpenAppSettings(ctx context.Context) error
	// OpenURL opens a platform deep link, used as a settings fallback.
	OpenURL(ctx context.Context, uri string) error
}

// Action is one labeled choice on a blocking prompt.
type Action struct {
	Label string
}

// Prompt is a blocking modal with ordered actions: cancel-like first,
// affirmative last. Exactly one action fires per presentation.
type Prompt struct {
	Title   string
	Message string
	Actions []Action
}

// Prompter presents a blocking prompt and returns the index of the action
// the user chose.
type Prompter interface {
	Present(ctx context.Context, p Prompt) (int, error)
}

// Requester is the capability surface the guided policy decorates.
type Requester interface {
	CheckStatus(ctx context.Context, kind Kind) Result
	RequestStatus(ctx context.Context, kind Kind) Result
	OpenSettings(ctx context.Context)
}
