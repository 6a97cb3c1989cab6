package stream

import (
	"github.com/matt-g-everett/ledtween/stream/stripe"
	"github.com/matt-g-everett/ledtween/tween"
)

const stripePrefix = "stripe_"

// An InfinityStripe is an Animation that scrolls an endless series of
// stripes along the strip, stretching them toward the far end.
type InfinityStripe struct {
	generator    stripe.Generator
	pixelsPerSec float64
	periodSecs   float64
	adjusted     bool

	stripes  []stripe.Stripe
	current  float64
	position float64
	scroll   tween.Unit
}

// NewInfinityStripe creates an instance of an InfinityStripe object.
func NewInfinityStripe(generator stripe.Generator, pixelsPerSec float64) *InfinityStripe {
	s := new(InfinityStripe)
	s.generator = generator
	s.pixelsPerSec = pixelsPerSec
	s.periodSecs = 10
	s.adjusted = true
	s.stripes = make([]stripe.Stripe, 0, 20)

	return s
}

// Start registers the tween that scrolls the stripes.
func (s *InfinityStripe) Start(r *tween.Registry) error {
	s.position = 0
	span := s.span()
	t, err := tween.New(s.getPosition, s.setPosition, span, s.periodSecs)
	if err != nil {
		return err
	}
	s.scroll = t.From(0).SetLoop(-1, false).WithID(stripePrefix + "scroll")
	r.Add(s.scroll)
	return nil
}

// Stop disposes the scroll tween.
func (s *InfinityStripe) Stop(r *tween.Registry) {
	r.Remove(s.scroll)
	s.scroll = nil
}

// span is the distance scrolled by one pass of the scroll tween.
func (s *InfinityStripe) span() float64 {
	return s.pixelsPerSec * s.periodSecs
}

func (s *InfinityStripe) getPosition() float64 { return s.position }

// setPosition advances current by the distance moved since the last write.
// The scroll tween restarts from 0 each pass, which is the same place as
// span.
func (s *InfinityStripe) setPosition(v float64) {
	delta := v - s.position
	if delta < 0 {
		delta += s.span()
	}
	s.position = v
	s.current += delta
}

func (s *InfinityStripe) addStripe() stripe.Stripe {
	st := s.generator.CreateStripe()
	s.stripes = append(s.stripes, st)
	return st
}

func (s *InfinityStripe) getStripe(offset float64) (stripe.Stripe, float64) {
	if len(s.stripes) == 0 {
		s.addStripe()
	}

	var length int32
	for _, st := range s.stripes {
		length += st.Length
		if offset < float64(length) {
			return st, float64(length)
		}
	}

	for offset >= float64(length) {
		st := s.addStripe()
		length += st.Length
	}

	return s.stripes[len(s.stripes)-1], float64(length)
}

// CalculateFrame creates a new Frame instance.
func (s *InfinityStripe) CalculateFrame() *Frame {
	f := NewFrame()
	numPixels := len(f.pixels)

	// Cull stripes that have passed
	toRemove := 0
	for _, st := range s.stripes {
		if s.current < float64(st.Length) {
			break
		}
		toRemove++
		s.current -= float64(st.Length)
	}
	s.stripes = s.stripes[toRemove:]

	adjustmentFactor := 1.0
	currentStripe, stripeEnd := s.getStripe(s.current)
	for i := 0; i < numPixels; i++ {
		if s.adjusted {
			adjustmentFactor = 1.0 + 1.4*(float64(i)/float64(numPixels))
		}

		adjustedOffset := (adjustmentFactor * float64(i)) + s.current
		if adjustedOffset >= stripeEnd {
			currentStripe, stripeEnd = s.getStripe(adjustedOffset)
		}

		f.pixels[i] = currentStripe.Colour
	}

	return f
}
