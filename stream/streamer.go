package stream

import (
	"context"
	"log"
	"time"

	"github.com/matt-g-everett/ledtween/tween"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	publisher  Publisher
	registry   *tween.Registry
	controller *Controller

	frameInterval time.Duration
	cycleInterval time.Duration
	timeScale     float64

	commands chan func(*tween.Registry)
}

// NewStreamer creates an instance of a Streamer. The registry is owned by the
// Streamer from here on and must only be touched through Do.
func NewStreamer(config Config, publisher Publisher, registry *tween.Registry, controller *Controller) *Streamer {
	s := new(Streamer)
	s.publisher = publisher
	s.registry = registry
	s.controller = controller
	s.frameInterval = time.Duration(float64(time.Second) / config.Stream.FrameRate)
	s.cycleInterval = time.Duration(config.Stream.CycleSecs * float64(time.Second))
	s.timeScale = config.Stream.TimeScale
	s.commands = make(chan func(*tween.Registry))

	return s
}

// Step advances every tween by one frame of unscaledDt seconds, then sends
// the resulting frame.
func (s *Streamer) Step(unscaledDt float64) error {
	s.registry.Update(unscaledDt*s.timeScale, unscaledDt)
	f := s.controller.CalculateFrame()
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.publisher.Publish(b)
}

// Do runs fn on the frame loop with the Streamer's registry and waits for it
// to finish.
func (s *Streamer) Do(ctx context.Context, fn func(*tween.Registry)) error {
	done := make(chan struct{})
	cmd := func(r *tween.Registry) {
		defer close(done)
		fn(r)
	}
	select {
	case s.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetTimeScale changes the multiplier applied to the frame delta seen by
// scaled tweens.
func (s *Streamer) SetTimeScale(ctx context.Context, scale float64) error {
	return s.Do(ctx, func(*tween.Registry) { s.timeScale = scale })
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	if err := s.controller.Start(); err != nil {
		return err
	}

	publishTimer := time.NewTicker(s.frameInterval)
	defer publishTimer.Stop()
	var cycle <-chan time.Time
	if s.cycleInterval > 0 {
		cycleTimer := time.NewTicker(s.cycleInterval)
		defer cycleTimer.Stop()
		cycle = cycleTimer.C
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.registry.Clear()
			return ctx.Err()
		case now := <-publishTimer.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := s.Step(dt); err != nil {
				log.Printf("publish frame: %v", err)
			}
		case <-cycle:
			if err := s.controller.Cycle(); err != nil {
				log.Printf("cycle animation: %v", err)
			}
		case cmd := <-s.commands:
			cmd(s.registry)
		}
	}
}
