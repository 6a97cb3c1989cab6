package stream

import (
	"math"

	"github.com/matt-g-everett/ledtween/tween"
)

const gradientPrefix = "gradient_"

// A GradientTrail is an Animation that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	periodSecs  float64
	saturation  float64
	luminance   float64

	offset float64
	scroll tween.Unit
}

// NewGradientTrail creates an instance of a GradientTrail object. The
// gradient repeats every trailLength pixels and scrolls one trail length
// every periodSecs.
func NewGradientTrail(gradient GradientTable, trailLength int, periodSecs float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.periodSecs = periodSecs
	g.saturation = 1.0
	g.luminance = 0.05

	return g
}

// Start registers the tween that scrolls the gradient.
func (g *GradientTrail) Start(r *tween.Registry) error {
	t, err := tween.New(g.getOffset, g.setOffset, float64(g.trailLength), g.periodSecs)
	if err != nil {
		return err
	}
	g.scroll = t.From(0).SetLoop(-1, false).WithID(gradientPrefix + "offset")
	r.Add(g.scroll)
	return nil
}

// Stop disposes the scroll tween.
func (g *GradientTrail) Stop(r *tween.Registry) {
	r.Remove(g.scroll)
	g.scroll = nil
}

func (g *GradientTrail) getOffset() float64  { return g.offset }
func (g *GradientTrail) setOffset(v float64) { g.offset = v }

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame() *Frame {
	f := NewFrame()
	numPixels := len(f.pixels)
	length := float64(g.trailLength)
	for i := 0; i < numPixels; i++ {
		pos := math.Mod(float64(i)-g.offset, length)
		if pos < 0 {
			pos += length
		}
		f.pixels[i] = g.gradient.GetColor(pos/length, g.saturation, g.luminance)
	}

	return f
}
