package stripe

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Stripe is a run of pixels of one colour.
type Stripe struct {
	Colour colorful.Color
	Length int32
}

// A Generator produces an endless series of stripes.
type Generator interface {
	CreateStripe() Stripe
}

type RandomStripeGenerator struct {
	palette   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
	rng       *rand.Rand
}

// NewRandomStripeGenerator creates a generator that picks stripe colours from
// palette, or random hues if palette is nil.
func NewRandomStripeGenerator(palette []colorful.Color, rng *rand.Rand) *RandomStripeGenerator {
	g := new(RandomStripeGenerator)
	g.palette = palette
	g.stripeMax = 400
	g.stripeMin = 150
	g.rng = rng
	return g
}

func (g *RandomStripeGenerator) CreateStripe() Stripe {
	var colour colorful.Color
	switch len(g.palette) {
	case 0:
		colour = colorful.Hsl(g.rng.Float64()*360.0, 1.0, 0.2)
	case 1:
		colour = g.palette[0]
	default:
		// Choose a new colour that's different from the previous colour
		for {
			newCurrent := g.rng.Intn(len(g.palette))
			if newCurrent != g.current {
				g.current = newCurrent
				break
			}
		}

		colour = g.palette[g.current]
	}

	stripeLength := g.rng.Int31n(g.stripeMax-g.stripeMin) + g.stripeMin
	return Stripe{colour, stripeLength}
}
