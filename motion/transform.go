package motion

import "fmt"

// Translate is a 2D translation descriptor for a renderer.
type Translate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TranslateOf returns the translation that places an element at p.
func TranslateOf(p Position) Translate {
	return Translate{X: p.X, Y: p.Y}
}

func (t Translate) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx)", t.X, t.Y)
}
