package motion

import (
	"strings"

	"github.com/fogleman/ease"
)

const (
	// TimeUnit is the number of time units (milliseconds) per speed unit.
	TimeUnit = 1000.0
	// MinDuration is the shortest duration an animation can have.
	MinDuration = 100.0
	// Tolerance is the positional distance at which an animation counts as arrived.
	Tolerance = 0.1
	// DefaultSpeed is distance units per TimeUnit.
	DefaultSpeed = 1000.0
)

// EasingFunc maps progress in [0,1] to eased progress. Results outside [0,1]
// are allowed for curves that overshoot.
type EasingFunc func(float64) float64

// Config describes how a single animation moves.
type Config struct {
	Speed  float64
	Easing EasingFunc
	Axis   Axis
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Speed:  DefaultSpeed,
		Easing: ease.Linear,
		Axis:   AxisBoth,
	}
}

func (c Config) easing() EasingFunc {
	if c.Easing == nil {
		return ease.Linear
	}
	return c.Easing
}

// Completion selects when an animation is retired.
type Completion int

const (
	// CompleteOnProgressOrTolerance retires on whichever criterion is met first.
	CompleteOnProgressOrTolerance Completion = iota
	// CompleteOnProgress retires once elapsed time reaches the duration.
	CompleteOnProgress
	// CompleteOnTolerance retires once every driven coordinate is within
	// tolerance of the target.
	CompleteOnTolerance
)

func (c Completion) String() string {
	switch c {
	case CompleteOnProgress:
		return "progress"
	case CompleteOnTolerance:
		return "tolerance"
	default:
		return "either"
	}
}

// ParseCompletion converts "either", "progress" or "tolerance" into a Completion.
func ParseCompletion(s string) (Completion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "either":
		return CompleteOnProgressOrTolerance, true
	case "progress":
		return CompleteOnProgress, true
	case "tolerance":
		return CompleteOnTolerance, true
	}
	return CompleteOnProgressOrTolerance, false
}

// Policy holds the engine wide settings shared by every element.
type Policy struct {
	MinDuration float64
	Tolerance   float64
	Completion  Completion
	Defaults    Config
}

// DefaultPolicy returns the standard engine settings.
func DefaultPolicy() Policy {
	return Policy{
		MinDuration: MinDuration,
		Tolerance:   Tolerance,
		Completion:  CompleteOnProgressOrTolerance,
		Defaults:    DefaultConfig(),
	}
}

func (p Policy) normalise() Policy {
	if p.MinDuration == 0 && p.Tolerance == 0 && p.Completion == 0 &&
		p.Defaults.Speed == 0 && p.Defaults.Easing == nil && p.Defaults.Axis == AxisBoth {
		return DefaultPolicy()
	}
	if !(p.MinDuration > 0) || isInf(p.MinDuration) {
		p.MinDuration = MinDuration
	}
	if !(p.Tolerance >= 0) || isInf(p.Tolerance) {
		p.Tolerance = Tolerance
	}
	if p.Defaults.Easing == nil && p.Defaults.Speed == 0 {
		p.Defaults = DefaultConfig()
	}
	if p.Defaults.Easing == nil {
		p.Defaults.Easing = ease.Linear
	}
	return p
}

// duration converts a travel distance into a duration, never going below
// the policy's minimum.
func (p Policy) duration(distance, speed float64) float64 {
	if !(speed > 0) {
		return p.MinDuration
	}
	d := distance * TimeUnit / speed
	if !(d > p.MinDuration) || isInf(d) {
		return p.MinDuration
	}
	return d
}

// arrived reports whether a should be retired given its clamped progress.
func (p Policy) arrived(a *Animation, progress float64) bool {
	byProgress := progress >= 1
	switch p.Completion {
	case CompleteOnProgress:
		return byProgress
	case CompleteOnTolerance:
		return a.Elapsed > 0 && a.within(p.Tolerance)
	default:
		return byProgress || (a.Elapsed > 0 && a.within(p.Tolerance))
	}
}
