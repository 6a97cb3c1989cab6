package stream

import (
	"container/list"
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

const streakPrefix = "streak_"

type streakParticle struct {
	colour   colorful.Color
	position float64
	length   float64
	gain     float64

	move, fade tween.Unit
}

func (p *streakParticle) getPosition() float64  { return p.position }
func (p *streakParticle) setPosition(v float64) { p.position = v }
func (p *streakParticle) getGain() float64      { return p.gain }
func (p *streakParticle) setGain(v float64)     { p.gain = v }

func (p *streakParticle) addStreak(frame *Frame, back colorful.Color) {
	start := int(math.Max(math.Ceil(p.position), 0))
	end := int(math.Min(math.Floor(p.position+p.length), float64(len(frame.pixels)-1)))
	for i := start; i <= end; i++ {
		frame.pixels[i] = BlendColour(back, p.colour, p.gain)
	}
}

// A Streak is an Animation that creates streaks across the tree that fade in
// then out.
type Streak struct {
	backColour   colorful.Color
	streakChance int32
	rng          *rand.Rand

	registry  *tween.Registry
	particles *list.List
	next      int
}

// NewStreak creates an instance of a Streak object. A new streak is started
// on each frame with probability 1/streakChance.
func NewStreak(streakChance int32, backColour colorful.Color, rng *rand.Rand) *Streak {
	s := new(Streak)
	s.streakChance = streakChance
	s.backColour = backColour
	s.rng = rng
	s.particles = list.New()

	return s
}

// Start binds the Streak to the registry that will drive its streaks.
func (s *Streak) Start(r *tween.Registry) error {
	s.registry = r
	s.particles.Init()
	return nil
}

// Stop disposes every running streak.
func (s *Streak) Stop(r *tween.Registry) {
	for e := s.particles.Front(); e != nil; e = e.Next() {
		p := e.Value.(*streakParticle)
		r.Remove(p.move)
		r.Remove(p.fade)
	}
	s.particles.Init()
	s.registry = nil
}

// spawn starts a streak that travels up to 100 pixels either way while its
// gain rises and falls.
func (s *Streak) spawn() {
	p := new(streakParticle)
	p.colour = colorful.Hsl(s.rng.Float64()*360.0, 1.0, 0.2)
	p.length = float64(s.rng.Intn(10) + 5)
	start := s.rng.Float64() * numPixels
	travel := (s.rng.Float64()*2 - 1) * 100
	duration := 2 + s.rng.Float64()*3

	id := fmt.Sprintf("%s%d", streakPrefix, s.next)
	s.next++
	e := s.particles.PushBack(p)

	p.move = tween.NewWithLerper(tween.LerpFloat64, p.getPosition, p.setPosition, start+travel, duration).
		From(start).
		SetEasing(ease.InOutSine).
		WithID(id + "_move")
	p.fade = tween.NewWithLerper(tween.LerpFloat64, p.getGain, p.setGain, 1, duration).
		From(0).
		SetEasing(easing.Parabola{Peak: 1}.Func()).
		WithID(id + "_gain").
		OnComplete(func() { s.particles.Remove(e) })
	s.registry.Add(p.move)
	s.registry.Add(p.fade)
}

// Len returns the number of live streaks.
func (s *Streak) Len() int {
	return s.particles.Len()
}

// CalculateFrame creates a new Frame instance.
func (s *Streak) CalculateFrame() *Frame {
	f := NewFrame()
	f.Fill(s.backColour)

	for e := s.particles.Front(); e != nil; e = e.Next() {
		e.Value.(*streakParticle).addStreak(f, s.backColour)
	}

	if s.registry != nil && s.rng.Int31n(s.streakChance) == 0 {
		s.spawn()
	}

	return f
}
