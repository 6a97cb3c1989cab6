package tween

import "slices"

// A Sequence plays its units one after another. Only the current unit is
// advanced; the next one receives its first update on the frame after its
// predecessor completes.
//
// A Sequence owns the units appended to it. They must not also be added to a
// Registry.
type Sequence struct {
	state

	units   []Unit
	current int
	loops   int
	loop    int
	yoyo    bool

	onComplete func()
}

// NewSequence returns an empty Sequence with the given identifier, driven by
// the unscaled frame delta if unscaled is true.
func NewSequence(id string, unscaled bool) *Sequence {
	s := new(Sequence)
	s.id = id
	s.unscaled = unscaled
	return s
}

// Append adds u to the end of the Sequence.
func (s *Sequence) Append(u Unit) *Sequence {
	if nilUnit(u) || s.disposed {
		return s
	}
	s.units = append(s.units, u)
	return s
}

// SetLoop sets the number of passes over the units; -1 loops forever. When
// yoyo is true each pass after the first plays the units backwards in
// reverse order.
func (s *Sequence) SetLoop(count int, yoyo bool) *Sequence {
	s.loops = count
	s.yoyo = yoyo
	return s
}

// OnComplete sets fn to be called when the final pass finishes.
func (s *Sequence) OnComplete(fn func()) *Sequence {
	s.onComplete = fn
	return s
}

// Len returns the number of units in the Sequence.
func (s *Sequence) Len() int { return len(s.units) }

// Current returns the index of the unit being played. It equals Len once a
// pass has finished.
func (s *Sequence) Current() int { return s.current }

// Update advances the current unit by dt seconds.
func (s *Sequence) Update(dt float64) {
	if s.inactive() {
		return
	}

	if s.current >= len(s.units) {
		if !loopsRemain(s.loops, s.loop) {
			s.finish()
			return
		}
		s.loop++
		s.current = 0
		if s.yoyo {
			slices.Reverse(s.units)
		}
		for _, u := range s.units {
			if s.yoyo {
				u.flip()
			}
			u.rewind()
		}
		return
	}

	u := s.units[s.current]
	u.Update(dt)
	// The unit's callbacks may have disposed the Sequence.
	if s.disposed || !u.IsCompleted() {
		return
	}
	s.current++
	if s.current >= len(s.units) && !loopsRemain(s.loops, s.loop) {
		s.finish()
	}
}

func (s *Sequence) finish() {
	s.completed = true
	if s.onComplete != nil {
		s.onComplete()
	}
}

// Pause pauses the Sequence and its current unit.
func (s *Sequence) Pause() {
	s.paused = true
	if u := s.active(); u != nil {
		u.Pause()
	}
}

// Resume resumes the Sequence and its current unit.
func (s *Sequence) Resume() {
	s.paused = false
	if u := s.active(); u != nil {
		u.Resume()
	}
}

// Reverse reverses the current unit only.
func (s *Sequence) Reverse() {
	if u := s.active(); u != nil {
		u.Reverse()
	}
}

func (s *Sequence) active() Unit {
	if s.disposed || s.current >= len(s.units) {
		return nil
	}
	return s.units[s.current]
}

// flip reverses the order of the units and turns each one around, so the
// next pass plays the Sequence backwards.
func (s *Sequence) flip() {
	if s.disposed {
		return
	}
	slices.Reverse(s.units)
	for _, u := range s.units {
		u.flip()
	}
}

func (s *Sequence) rewind() {
	if s.disposed {
		return
	}
	s.completed = false
	s.paused = false
	s.current = 0
	s.loop = 0
	for _, u := range s.units {
		u.rewind()
	}
}

// Dispose disposes the Sequence and every unit it owns.
func (s *Sequence) Dispose() {
	if !s.dispose() {
		return
	}
	units := s.units
	s.units = nil
	s.onComplete = nil
	for _, u := range units {
		u.Dispose()
	}
}
