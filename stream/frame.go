package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device. Pixels
// are stored row by row.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance filled with background.
func NewFrame(width, height int, background colorful.Color) *Frame {
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	for i := range f.pixels {
		f.pixels[i] = background
	}
	return f
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) colorful.Color {
	return f.pixels[y*f.width+x]
}

// Blend mixes c into the pixel at column x, row y by amount. Pixels outside
// the frame are ignored.
func (f *Frame) Blend(x, y int, c colorful.Color, amount float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height || amount <= 0 {
		return
	}
	i := y*f.width + x
	if amount >= 1 {
		f.pixels[i] = c
		return
	}
	f.pixels[i] = f.pixels[i].BlendHcl(c, amount)
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := new(Frame)
	out.width = f.width
	out.height = f.height
	out.pixels = make([]colorful.Color, len(f.pixels))
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
