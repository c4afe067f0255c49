package motion

import (
	"math"
	"strings"
)

// Position is a point in 2D element space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is where elements that have never been seen start from.
var Origin = Position{}

// Distance returns the Euclidean distance to q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Axis constrains which coordinates an animation drives.
type Axis int

const (
	// AxisBoth drives X and Y.
	AxisBoth Axis = iota
	// AxisX drives X and holds Y at its start value.
	AxisX
	// AxisY drives Y and holds X at its start value.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

// ParseAxis converts "both", "x" or "y" into an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "xy":
		return AxisBoth, true
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	}
	return AxisBoth, false
}

func (a Axis) drivesX() bool {
	return a != AxisY
}

func (a Axis) drivesY() bool {
	return a != AxisX
}

// distance measures how far an animation along this axis has to travel.
func (a Axis) distance(from, to Position) float64 {
	switch a {
	case AxisX:
		return math.Abs(to.X - from.X)
	case AxisY:
		return math.Abs(to.Y - from.Y)
	default:
		return from.Distance(to)
	}
}

// constrain returns the target actually reached when animating from start
// towards target along this axis.
func (a Axis) constrain(start, target Position) Position {
	if !a.drivesX() {
		target.X = start.X
	}
	if !a.drivesY() {
		target.Y = start.Y
	}
	return target
}
