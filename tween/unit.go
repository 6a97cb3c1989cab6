// Package tween animates values over time. Units are advanced by a Registry
// once per host frame; the Registry owns them until they complete or are
// disposed.
//
// The package is not safe for concurrent use. All calls on a Registry and the
// units it owns must come from the goroutine that drives Registry.Update.
package tween

import "reflect"

// A Unit is an animation that can be owned and advanced by a Registry.
//
// Unit is implemented by *Tween[T] and *Sequence.
type Unit interface {
	// Update advances the unit by dt seconds.
	Update(dt float64)

	Pause()
	Resume()

	// Reverse changes the direction of the running animation.
	Reverse()

	// Dispose makes the unit inert. It is safe to call more than once.
	Dispose()

	IsCompleted() bool
	IsDisposed() bool
	IsPaused() bool

	// ID returns the identifier used by a Registry for lookup and
	// replacement. Units with an empty ID are not indexed.
	ID() string

	// UsesUnscaledTime reports whether the unit is advanced with the
	// unscaled frame delta.
	UsesUnscaledTime() bool

	// rewind prepares a completed unit to be played again by a Sequence.
	rewind()

	// flip turns the unit around for the next pass of a yoyo Sequence,
	// whether or not it is running.
	flip()
}

// nilUnit reports whether u is nil or holds a nil pointer, as it does when
// the error from New is ignored.
func nilUnit(u Unit) bool {
	if u == nil {
		return true
	}
	v := reflect.ValueOf(u)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// state is the lifecycle shared by every Unit.
type state struct {
	id        string
	unscaled  bool
	completed bool
	disposed  bool
	paused    bool
}

func (s *state) ID() string             { return s.id }
func (s *state) UsesUnscaledTime() bool { return s.unscaled }
func (s *state) IsCompleted() bool      { return s.completed }
func (s *state) IsDisposed() bool       { return s.disposed }
func (s *state) IsPaused() bool         { return s.paused }

func (s *state) Pause()  { s.paused = true }
func (s *state) Resume() { s.paused = false }

// inactive reports whether an Update must be a no-op.
func (s *state) inactive() bool {
	return s.disposed || s.completed || s.paused
}

// dispose marks the state disposed and reports whether this call did it.
func (s *state) dispose() bool {
	if s.disposed {
		return false
	}
	s.disposed = true
	s.completed = true
	return true
}

// loopsRemain reports whether another pass should be played after the pass
// numbered current (zero based). A count of -1 loops forever.
func loopsRemain(count, current int) bool {
	return count == -1 || current < count-1
}
