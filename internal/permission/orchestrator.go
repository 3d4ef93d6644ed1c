package permission

import (
	"context"
	"log"

	"example.com/tracking/internal/observability"
)

// Orchestrator drives the base permission state machine over a platform
// Capability. Capability failures never propagate to the caller; they
// degrade to a safe denied result.
type Orchestrator struct {
	capability Capability
	prompter   Prompter
	platform   Platform
	bundleID   string
	logger     *log.Logger
}

// Option configures optional behaviour for the Orchestrator.
type Option func(*Orchestrator)

// WithLogger overrides the logger used to report capability failures.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator constructs an Orchestrator for the given platform.
func NewOrchestrator(capability Capability, prompter Prompter, platform Platform, bundleID string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		capability: capability,
		prompter:   prompter,
		platform:   platform,
		bundleID:   bundleID,
		logger:     log.New(log.Writer(), "[permission] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CheckStatus reads the current permission state. A failing capability check
// reports as permanently denied rather than raising.
func (o *Orchestrator) CheckStatus(ctx context.Context, kind Kind) Result {
	res, err := o.capability.Status(ctx, kind)
	if err != nil {
		o.logger.Printf("status check failed (kind=%s): %v", kind, err)
		return Denied(false)
	}
	return res
}

// RequestStatus requests the permission of the given kind. The location
// service itself is confirmed first: if it is disabled, a blocking
// explanatory prompt is shown and the request API is never invoked. A
// permanent denial surfaces a settings-redirecting prompt.
func (o *Orchestrator) RequestStatus(ctx context.Context, kind Kind) Result {
	enabled, err := o.capability.ServiceEnabled(ctx)
	if err != nil {
		o.logger.Printf("service check failed: %v", err)
		enabled = false
	}
	if !enabled {
		c := copyFor(o.platform).serviceDisabled
		if o.present(ctx, c, "Cancel", "Open Settings") {
			o.OpenSettings(ctx)
		}
		res := Denied(true)
		observability.RecordPermissionRequest(string(kind), string(res.Status))
		return res
	}

	res, err := o.capability.Request(ctx, kind)
	if err != nil {
		o.logger.Printf("request failed (kind=%s): %v", kind, err)
		res = Denied(false)
		observability.RecordPermissionRequest(string(kind), string(res.Status))
		return res
	}
	if res.Status == StatusDenied && !res.CanAskAgain {
		c := copyFor(o.platform).settingsRedirect
		if o.present(ctx, c, "Not Now", "Open Settings") {
			o.OpenSettings(ctx)
		}
	}
	observability.RecordPermissionRequest(string(kind), string(res.Status))
	return res
}

// OpenSettings opens the app's settings surface. The generic capability is
// tried first; on failure the platform deep link is attempted. Failures of
// both are logged and swallowed, settings navigation is best-effort.
func (o *Orchestrator) OpenSettings(ctx context.Context) {
	if err := o.capability.OpenAppSettings(ctx); err == nil {
		return
	}
	uri := copyFor(o.platform).settingsURI(o.bundleID)
	if err := o.capability.OpenURL(ctx, uri); err != nil {
		o.logger.Printf("settings fallback %q failed: %v", uri, err)
	}
}

// present shows a two-action prompt and reports whether the affirmative
// (last) action was chosen. Prompter failures count as cancellation.
func (o *Orchestrator) present(ctx context.Context, c promptCopy, cancelLabel, okLabel string) bool {
	choice, err := o.prompter.Present(ctx, Prompt{
		Title:   c.Title,
		Message: c.Message,
		Actions: []Action{{Label: cancelLabel}, {Label: okLabel}},
	})
	if err != nil {
		o.logger.Printf("prompt %q failed: %v", c.Title, err)
		return false
	}
	return choice == 1
}
