package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

const numPixels = 500

func init() {
	tween.RegisterLerper[colorful.Color](BlendColour)
}

// BlendColour blends two colours in HCL space. Amounts outside [0,1] from
// overshooting easing curves are allowed; the result is clamped to RGB.
func BlendColour(from, to colorful.Color, amount float64) colorful.Color {
	return from.BlendHcl(to, amount).Clamped()
}

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [numPixels]colorful.Color
}

// NewFrame creates a new Frame instance.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// InterpolateFrame blends f toward f2 by transitionPoint.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame()
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = BlendColour(f.pixels[i], f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into a little-endian pixel count followed
// by an RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, numPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
