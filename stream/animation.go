package stream

import "github.com/matt-g-everett/ledtween/tween"

// An Animation renders frames from state driven by its tweens.
type Animation interface {
	// Start registers the tweens that drive the animation.
	Start(r *tween.Registry) error

	// Stop disposes the tweens registered by Start.
	Stop(r *tween.Registry)

	CalculateFrame() *Frame
}
