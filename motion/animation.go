package motion

import "math"

// Animation is one in-flight interpolation. Values are never modified after
// they are stored in a State; Step replaces them.
type Animation struct {
	Start    Position
	Target   Position
	Current  Position
	Elapsed  float64
	Duration float64
	Config   Config
}

func newAnimation(p Policy, start, target Position, cfg Config) *Animation {
	if cfg.Easing == nil {
		cfg.Easing = p.Defaults.easing()
	}
	target = cfg.Axis.constrain(start, target)
	return &Animation{
		Start:    start,
		Target:   target,
		Current:  start,
		Duration: p.duration(cfg.Axis.distance(start, target), cfg.Speed),
		Config:   cfg,
	}
}

// Progress returns Elapsed/Duration clamped to [0,1].
func (a Animation) Progress() float64 {
	return math.Min(1, a.Elapsed/a.Duration)
}

// At returns the position for the given eased progress.
func (a Animation) At(eased float64) Position {
	p := a.Start
	if a.Config.Axis.drivesX() {
		p.X = lerp(a.Start.X, a.Target.X, eased)
	}
	if a.Config.Axis.drivesY() {
		p.Y = lerp(a.Start.Y, a.Target.Y, eased)
	}
	return p
}

// advanced returns a copy of a moved on by delta.
func (a Animation) advanced(delta float64) (*Animation, float64) {
	a.Elapsed += delta
	progress := a.Progress()
	a.Current = a.At(a.Config.easing()(progress))
	return &a, progress
}

// within reports whether every driven coordinate is within tol of the target.
func (a Animation) within(tol float64) bool {
	if a.Config.Axis.drivesX() && math.Abs(a.Target.X-a.Current.X) > tol {
		return false
	}
	if a.Config.Axis.drivesY() && math.Abs(a.Target.Y-a.Current.Y) > tol {
		return false
	}
	return true
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func isInf(f float64) bool {
	return math.IsInf(f, 0)
}
