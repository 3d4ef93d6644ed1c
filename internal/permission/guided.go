package permission

import (
	"context"
	"log"
	"sync"
)

// DefaultMaxAttempts caps how many denied requests per kind keep triggering
// explanatory prompts before the flow goes quiet.
const DefaultMaxAttempts = 3

// Guided decorates a Requester with a bounded escalation protocol: a
// rationale prompt before the first request, a "still needed" guidance
// prompt after repeated denial, and full prompt suppression once the attempt
// cap is reached. Attempt counters are owned by the instance and are not
// persisted.
type Guided struct {
	base        Requester
	prompter    Prompter
	platform    Platform
	maxAttempts int
	logger      *log.Logger

	mu       sync.Mutex
	attempts map[Kind]int
}

// GuidedOption configures optional behaviour for Guided.
type GuidedOption func(*Guided)

// WithMaxAttempts overrides the escalation cap.
func WithMaxAttempts(n int) GuidedOption {
	return func(g *Guided) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithGuidedLogger overrides the logger.
func WithGuidedLogger(logger *log.Logger) GuidedOption {
	return func(g *Guided) {
		g.logger = logger
	}
}

// NewGuided wraps base with the escalation policy.
func NewGuided(base Requester, prompter Prompter, platform Platform, opts ...GuidedOption) *Guided {
	g := &Guided{
		base:        base,
		prompter:    prompter,
		platform:    platform,
		maxAttempts: DefaultMaxAttempts,
		logger:      log.New(log.Writer(), "[permission] ", log.LstdFlags),
		attempts:    make(map[Kind]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CheckStatus passes through to the wrapped Requester.
func (g *Guided) CheckStatus(ctx context.Context, kind Kind) Result {
	return g.base.CheckStatus(ctx, kind)
}

// Request runs one escalation step for the given kind.
//
// On the first call the platform-specific rationale is shown; declining it
// short-circuits to a denied result without touching the platform API and
// without consuming an attempt. Once the attempt counter reaches the cap,
// the caller still receives a denied result but no further prompting of any
// sort occurs. A denial one attempt before the cap is followed by the
// secondary guidance prompt.
func (g *Guided) Request(ctx context.Context, kind Kind) Result {
	attempts := g.attemptCount(kind)

	if attempts >= g.maxAttempts {
		return Denied(false)
	}
	if attempts == 0 {
		if !g.present(ctx, copyFor(g.platform).rationale[kind]) {
			return Denied(true)
		}
	}

	res := g.base.RequestStatus(ctx, kind)
	if res.Status == StatusDenied && res.CanAskAgain {
		n := g.bumpAttempts(kind)
		if n == g.maxAttempts-1 {
			g.present(ctx, copyFor(g.platform).guidance[kind])
		}
	}
	return res
}

// WorkoutPermissions is the composite outcome of acquiring both location
// kinds for a recording session. Background is absent when the foreground
// request was not granted.
type WorkoutPermissions struct {
	Foreground Result  `json:"foreground"`
	Background *Result `json:"background,omitempty"`
}

// EnsureWorkoutPermissions acquires the permissions a recording session
// needs: foreground first, and background only once foreground is granted.
func (g *Guided) EnsureWorkoutPermissions(ctx context.Context) WorkoutPermissions {
	fg := g.Request(ctx, KindWhenInUse)
	out := WorkoutPermissions{Foreground: fg}
	if fg.Granted {
		bg := g.Request(ctx, KindAlways)
		out.Background = &bg
	}
	return out
}

// ResetAttemptCounters zeroes every kind's counter, restoring the full
// first-run explanation flow.
func (g *Guided) ResetAttemptCounters() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attempts = make(map[Kind]int)
}

func (g *Guided) attemptCount(kind Kind) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts[kind]
}

func (g *Guided) bumpAttempts(kind Kind) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attempts[kind]++
	return g.attempts[kind]
}

// present shows a rationale/guidance prompt and reports whether the
// affirmative action was chosen. Prompter failures count as declining.
func (g *Guided) present(ctx context.Context, c promptCopy) bool {
	choice, err := g.prompter.Present(ctx, Prompt{
		Title:   c.Title,
		Message: c.Message,
		Actions: []Action{{Label: "Not Now"}, {Label: "Continue"}},
	})
	if err != nil {
		g.logger.Printf("prompt %q failed: %v", c.Title, err)
		return false
	}
	return choice == 1
}
