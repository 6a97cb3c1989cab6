// Package easing provides easing curves for tweens. A curve maps normalised
// progress in [0,1] to eased progress, which may leave [0,1] for curves that
// overshoot.
package easing

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/fogleman/ease"
)

// Func is an easing curve.
type Func func(t float64) float64

var catalog = map[string]Func{
	"linear": ease.Linear,

	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,

	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,

	"in-quart":     ease.InQuart,
	"out-quart":    ease.OutQuart,
	"in-out-quart": ease.InOutQuart,

	"in-quint":     ease.InQuint,
	"out-quint":    ease.OutQuint,
	"in-out-quint": ease.InOutQuint,

	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-out-sine": ease.InOutSine,

	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
	"in-out-expo": ease.InOutExpo,

	"in-circ":     ease.InCirc,
	"out-circ":    ease.OutCirc,
	"in-out-circ": ease.InOutCirc,

	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,

	"in-back":     ease.InBack,
	"out-back":    ease.OutBack,
	"in-out-back": ease.InOutBack,

	"in-bounce":     ease.InBounce,
	"out-bounce":    ease.OutBounce,
	"in-out-bounce": ease.InOutBounce,

	"in-out-quad-loop": QuadInOutLoop,
	"parabolic-up":     Parabola{Peak: 1.5}.Ease,
}

// ByName returns the catalogued curve with the given name.
func ByName(name string) (Func, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("easing: unknown curve %q", name)
	}
	return fn, nil
}

// Names returns the names of the catalogued curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// QuadInOutLoop rises quadratically to 1 at the half way point and falls back
// to 0 by the end, so a single tween goes out and returns.
func QuadInOutLoop(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t
	}
	t2 := (t - 0.5) * 2
	return 1 - t2*(2-t2)
}

// Parabola is an arc that starts and ends at 0 and reaches Peak at t = 0.5.
type Parabola struct {
	Peak float64
}

// Ease evaluates the arc at t.
func (p Parabola) Ease(t float64) float64 {
	return -4*p.Peak*(t-0.5)*(t-0.5) + p.Peak
}

// Func returns p.Ease as a Func.
func (p Parabola) Func() Func {
	return p.Ease
}

// Shake is a random displacement that swells and dies away over the tween.
// The result is centred on 0, so it is intended for offsets rather than
// positions. Rand must not be nil; a tween that owns its own source is
// reproducible for a given seed.
type Shake struct {
	Amplitude float64
	Rand      *rand.Rand
}

// Ease evaluates the shake at t. It returns 0 once t reaches 1.
func (s Shake) Ease(t float64) float64 {
	if t >= 1 {
		return 0
	}
	envelope := (1 - t) * (4 * t * (1 - t))
	noise := s.Rand.Float64()*2 - 1
	return noise * s.Amplitude * envelope
}

// Func returns s.Ease as a Func.
func (s Shake) Func() Func {
	return s.Ease
}

// Sampled returns a curve that linearly interpolates the samples in lut,
// which are taken to be evenly spaced over [0,1]. Progress outside [0,1] is
// clamped. An empty lut yields Linear.
func Sampled(lut []float64) Func {
	if len(lut) == 0 {
		return Linear
	}
	if len(lut) == 1 {
		v := lut[0]
		return func(float64) float64 { return v }
	}
	last := len(lut) - 1
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return lut[0]
		case t >= 1:
			return lut[last]
		}
		pos := t * float64(last)
		i := int(pos)
		frac := pos - float64(i)
		return lut[i] + (lut[i+1]-lut[i])*frac
	}
}
