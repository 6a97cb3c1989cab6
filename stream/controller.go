package stream

import (
	"log"
	"reflect"

	"github.com/matt-g-everett/ledtween/tween"
)

const transitionID = "transition"

// Controller that manages animations.
type Controller struct {
	registry   *tween.Registry
	animations []Animation
	current    int

	animation     Animation
	nextAnimation Animation

	transition     float64
	transitionSecs float64
	fade           tween.Unit
}

// NewController creates an instance of a Controller that cycles through
// animations, cross-fading for transitionSecs between each.
func NewController(registry *tween.Registry, transitionSecs float64, animations ...Animation) *Controller {
	c := new(Controller)
	c.registry = registry
	c.animations = animations
	c.transitionSecs = transitionSecs

	return c
}

// Start starts the first animation.
func (c *Controller) Start() error {
	if len(c.animations) == 0 {
		return nil
	}
	c.current = 0
	c.animation = c.animations[0]
	return c.animation.Start(c.registry)
}

// Animation returns the animation being shown, and the animation being
// faded to if a transition is in progress.
func (c *Controller) Animation() (current, next Animation) {
	return c.animation, c.nextAnimation
}

// Transition returns the progress of the cross-fade.
func (c *Controller) Transition() float64 {
	return c.transition
}

// CalculateFrame creates a new Frame, blending the current and next
// animations during a transition.
func (c *Controller) CalculateFrame() *Frame {
	if c.animation == nil {
		return NewFrame()
	}
	f := c.animation.CalculateFrame()
	if c.nextAnimation != nil {
		f = f.InterpolateFrame(c.nextAnimation.CalculateFrame(), c.transition)
	}

	return f
}

// Cycle starts a cross-fade to the next animation. A transition already in
// progress is finished immediately and its fade replaced.
func (c *Controller) Cycle() error {
	if len(c.animations) < 2 {
		return nil
	}
	// Removing a fade that is still running finishes its transition.
	c.registry.Remove(c.fade)
	c.finishTransition()

	c.current = (c.current + 1) % len(c.animations)
	next := c.animations[c.current]
	log.Printf("cycling to %v", reflect.TypeOf(next).Elem())
	if err := next.Start(c.registry); err != nil {
		return err
	}
	c.nextAnimation = next
	c.transition = 0

	t, err := tween.New(c.getTransition, c.setTransition, 1, c.transitionSecs)
	if err != nil {
		return err
	}
	fade := t.From(0).WithID(transitionID).WithUnscaledTime(true)
	// A fade disposed early, by Clear for instance, still hands over to the
	// incoming animation.
	fade.OnKill(func() {
		if c.fade == tween.Unit(fade) {
			c.fade = nil
			c.finishTransition()
		}
	})
	c.fade = fade
	c.registry.Add(fade)
	return nil
}

func (c *Controller) getTransition() float64  { return c.transition }
func (c *Controller) setTransition(v float64) { c.transition = v }

// finishTransition stops the outgoing animation and makes the incoming one
// current.
func (c *Controller) finishTransition() {
	if c.nextAnimation == nil {
		return
	}
	c.animation.Stop(c.registry)
	c.animation = c.nextAnimation
	c.nextAnimation = nil
	c.transition = 0
}
