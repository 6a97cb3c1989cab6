package stream

import (
	"fmt"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

const twinklePrefix = "twinkle_"

type twinkleParticle struct {
	pixel  int
	colour colorful.Color
}

func (p *twinkleParticle) get() colorful.Color  { return p.colour }
func (p *twinkleParticle) set(c colorful.Color) { p.colour = c }

// A Twinkle is an Animation that twinkles random particles over a
// background of randomly chosen colours.
type Twinkle struct {
	numParticles int
	foreColour   colorful.Color
	backColours  []colorful.Color
	rng          *rand.Rand

	background []colorful.Color
	particles  []*twinkleParticle
	sequences  []tween.Unit
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(numParticles int, foreColour colorful.Color, backColours []colorful.Color, rng *rand.Rand) *Twinkle {
	t := new(Twinkle)
	t.numParticles = numParticles
	if t.numParticles > numPixels {
		t.numParticles = numPixels
	}
	t.foreColour = foreColour
	t.backColours = backColours
	t.rng = rng

	return t
}

func (t *Twinkle) getRandomBackColour() colorful.Color {
	if len(t.backColours) == 0 {
		return colorful.Color{}
	}
	return t.backColours[t.rng.Intn(len(t.backColours))]
}

// Start lays out the background and registers a looping hold-then-flash
// sequence for every particle.
func (t *Twinkle) Start(r *tween.Registry) error {
	t.background = make([]colorful.Color, numPixels)
	for i := range t.background {
		t.background[i] = t.getRandomBackColour()
	}

	h, _, l := t.foreColour.Hcl()
	t.particles = make([]*twinkleParticle, 0, t.numParticles)
	t.sequences = make([]tween.Unit, 0, t.numParticles)
	for _, pixel := range t.rng.Perm(numPixels)[:t.numParticles] {
		back := t.background[pixel]
		p := &twinkleParticle{pixel: pixel, colour: back}
		fore := colorful.Hcl(h, util.RandomiseSaturation(t.rng, 0.4, 0.8), l)
		curve := easing.Sampled(util.GenerateLut((t.rng.Intn(18)+6)*2, ease.InOutQuad))

		hold, err := tween.New(p.get, p.set, back, 0.5+t.rng.Float64()*3)
		if err != nil {
			return err
		}
		flash, err := tween.New(p.get, p.set, fore, 0.5+t.rng.Float64())
		if err != nil {
			return err
		}

		seq := tween.NewSequence(fmt.Sprintf("%s%d", twinklePrefix, pixel), false).
			Append(hold.From(back)).
			Append(flash.From(back).SetEasing(curve)).
			SetLoop(-1, false)
		r.Add(seq)
		t.particles = append(t.particles, p)
		t.sequences = append(t.sequences, seq)
	}

	return nil
}

// Stop disposes every particle sequence.
func (t *Twinkle) Stop(r *tween.Registry) {
	for _, seq := range t.sequences {
		r.Remove(seq)
	}
	t.sequences = nil
	t.particles = nil
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame() *Frame {
	f := NewFrame()
	copy(f.pixels[:], t.background)
	for _, p := range t.particles {
		f.pixels[p.pixel] = p.colour
	}

	return f
}
