// Package motion interpolates the positions of named elements towards
// target coordinates over time.
//
// A State is an immutable snapshot. Every operation that changes it returns a
// new State and leaves the receiver untouched, so callers keep the latest
// snapshot and thread it through:
//
//	s := motion.Init()
//	s = s.AnimateTo("box", 100, 0)
//	for s.Animating() {
//		s = s.Step(16)
//	}
//
// The package never reads a clock. Time only moves when Step is called with
// an elapsed increment, in the same unit as Policy.MinDuration (milliseconds).
package motion

import "sort"

// Entry is an element's resting position plus its active animation, if any.
type Entry struct {
	Resting Position
	Active  *Animation
}

// Position returns the live position of the entry.
func (e Entry) Position() Position {
	if e.Active != nil {
		return e.Active.Current
	}
	return e.Resting
}

// State maps element ids to their entries. The zero State behaves like Init().
type State struct {
	policy  Policy
	entries map[string]Entry
}

// New creates an empty State using p.
func New(p Policy) State {
	return State{policy: p.normalise()}
}

// Init creates an empty State with the default policy.
func Init() State {
	return New(DefaultPolicy())
}

// Policy returns the settings the State was created with.
func (s State) Policy() Policy {
	return s.policy.normalise()
}

func (s State) clone() State {
	entries := make(map[string]Entry, len(s.entries)+1)
	for id, e := range s.entries {
		entries[id] = e
	}
	return State{policy: s.policy.normalise(), entries: entries}
}

func (s State) with(id string, e Entry) State {
	next := s.clone()
	next.entries[id] = e
	return next
}

// AnimateTo starts moving id towards (x, y) using the policy's default config.
func (s State) AnimateTo(id string, x, y float64) State {
	return s.AnimateToWith(id, x, y, s.Policy().Defaults)
}

// AnimateToWith starts moving id towards (x, y) using cfg. Any animation
// already running for id is replaced, starting from its live position.
func (s State) AnimateToWith(id string, x, y float64, cfg Config) State {
	e, ok := s.entries[id]
	if !ok {
		e.Resting = Origin
	}
	start := e.Position()
	return s.with(id, Entry{
		Resting: start,
		Active:  newAnimation(s.Policy(), start, Position{X: x, Y: y}, cfg),
	})
}

// Step advances every active animation by delta, which must not be negative.
// Animations that arrive come to rest exactly on their target.
func (s State) Step(delta float64) State {
	if !s.Animating() {
		return s
	}
	next := s.clone()
	for id, e := range s.entries {
		if e.Active == nil {
			continue
		}
		next.entries[id] = advance(next.policy, e, delta)
	}
	return next
}

func advance(p Policy, e Entry, delta float64) Entry {
	a, progress := e.Active.advanced(delta)
	if p.arrived(a, progress) {
		return Entry{Resting: a.Target}
	}
	return Entry{Resting: e.Resting, Active: a}
}

// Stop freezes id where it currently is. It does nothing if id is not animating.
func (s State) Stop(id string) State {
	e, ok := s.entries[id]
	if !ok || e.Active == nil {
		return s
	}
	return s.with(id, Entry{Resting: e.Active.Current})
}

// StopAll freezes every animating element.
func (s State) StopAll() State {
	if !s.Animating() {
		return s
	}
	next := s.clone()
	for id, e := range s.entries {
		next.entries[id] = Entry{Resting: e.Position()}
	}
	return next
}

// Place puts id at rest on (x, y), cancelling any animation.
func (s State) Place(id string, x, y float64) State {
	return s.with(id, Entry{Resting: Position{X: x, Y: y}})
}

// Remove forgets id.
func (s State) Remove(id string) State {
	if _, ok := s.entries[id]; !ok {
		return s
	}
	next := s.clone()
	delete(next.entries, id)
	return next
}

// Position returns the live position of id, or false if id has never been
// referenced.
func (s State) Position(id string) (Position, bool) {
	e, ok := s.entries[id]
	if !ok {
		return Position{}, false
	}
	return e.Position(), true
}

// Positions returns the live position of every referenced element.
func (s State) Positions() map[string]Position {
	out := make(map[string]Position, len(s.entries))
	for id, e := range s.entries {
		out[id] = e.Position()
	}
	return out
}

// Animation returns the active animation for id.
func (s State) Animation(id string) (Animation, bool) {
	e, ok := s.entries[id]
	if !ok || e.Active == nil {
		return Animation{}, false
	}
	return *e.Active, true
}

// Entry returns a copy of the entry for id.
func (s State) Entry(id string) (Entry, bool) {
	e, ok := s.entries[id]
	if e.Active != nil {
		a := *e.Active
		e.Active = &a
	}
	return e, ok
}

// Animating reports whether any element has an active animation.
func (s State) Animating() bool {
	for _, e := range s.entries {
		if e.Active != nil {
			return true
		}
	}
	return false
}

// ElementAnimating reports whether id has an active animation.
func (s State) ElementAnimating(id string) bool {
	e, ok := s.entries[id]
	return ok && e.Active != nil
}

// IDs returns every referenced element id in sorted order.
func (s State) IDs() []string {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of referenced elements.
func (s State) Len() int {
	return len(s.entries)
}
