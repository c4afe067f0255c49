package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestMarshalBinary(t *testing.T) {
	background, _ := colorful.Hex("#102030")
	f := NewFrame(3, 2, background)
	f.Blend(1, 1, colorful.Color{R: 1, G: 0, B: 0}, 1)

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2+6*3 {
		t.Fatalf("len = %d, want %d", len(data), 2+6*3)
	}
	if n := binary.LittleEndian.Uint16(data); n != 6 {
		t.Errorf("pixel count = %d, want 6", n)
	}
	if data[2] != 0x10 || data[3] != 0x20 || data[4] != 0x30 {
		t.Errorf("first pixel = %v", data[2:5])
	}
	// Pixel (1, 1) is index 4.
	off := 2 + 4*3
	if data[off] != 255 || data[off+1] != 0 || data[off+2] != 0 {
		t.Errorf("lit pixel = %v", data[off:off+3])
	}
}

func TestBlendIgnoresOutside(t *testing.T) {
	f := NewFrame(2, 2, colorful.Color{})
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		f.Blend(p[0], p[1], colorful.Color{R: 1}, 1)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if f.At(x, y) != (colorful.Color{}) {
				t.Errorf("pixel (%d, %d) changed", x, y)
			}
		}
	}
}

func TestInterpolateFrame(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	a := NewFrame(2, 1, colorful.Color{})
	b := NewFrame(2, 1, white)

	if got := a.InterpolateFrame(b, 0).At(0, 0); got.DistanceRgb(colorful.Color{}) > 1e-6 {
		t.Errorf("t=0 gave %v", got)
	}
	if got := a.InterpolateFrame(b, 1).At(1, 0); got.DistanceRgb(white) > 1e-6 {
		t.Errorf("t=1 gave %v", got)
	}
}
