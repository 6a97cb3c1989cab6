package tween

import (
	"math"

	"github.com/matt-g-everett/ledtween/easing"
)

// A Tween drives a single value of type T from a start value to an end value
// over a duration in seconds. The value is read and written through a
// getter/setter pair; the Tween never owns it.
//
// Configuration methods return the receiver so calls can be chained. They
// must be made before the Tween is added to a Registry.
type Tween[T any] struct {
	state

	get  func() T
	set  func(T)
	lerp Lerper[T]

	from, to     T
	explicitFrom bool

	duration float64
	delay    float64
	ease     easing.Func
	steps    int

	loops int
	loop  int
	yoyo  bool

	// reversed runs elapsed backwards toward 0. from and to always hold
	// the values at elapsed 0 and elapsed duration respectively.
	reversed bool
	elapsed  float64
	started  bool

	onStart    func()
	onUpdate   func()
	onComplete func()
	onKill     func()
}

// New returns a Tween that moves the value behind get and set to the value
// to over duration seconds, using the Lerper registered for T. Unless From
// is called, the start value is read from get when the Tween first becomes
// active, after any delay.
//
// New returns an *UnsupportedTypeError if no Lerper is registered for T.
func New[T any](get func() T, set func(T), to T, duration float64) (*Tween[T], error) {
	lerp, err := lookupLerper[T]()
	if err != nil {
		return nil, err
	}
	return NewWithLerper(lerp, get, set, to, duration), nil
}

// NewWithLerper is like New but uses lerp instead of the registered Lerper.
func NewWithLerper[T any](lerp Lerper[T], get func() T, set func(T), to T, duration float64) *Tween[T] {
	t := new(Tween[T])
	t.lerp = lerp
	t.get = get
	t.set = set
	t.to = to
	t.duration = duration
	t.ease = easing.Linear
	return t
}

// From sets an explicit start value instead of reading it from the getter.
func (t *Tween[T]) From(v T) *Tween[T] {
	t.from = v
	t.explicitFrom = true
	return t
}

// WithID sets the identifier used by a Registry to look up and replace the
// Tween.
func (t *Tween[T]) WithID(id string) *Tween[T] {
	t.id = id
	return t
}

// WithUnscaledTime sets whether the Tween is driven by the unscaled frame
// delta.
func (t *Tween[T]) WithUnscaledTime(unscaled bool) *Tween[T] {
	t.unscaled = unscaled
	return t
}

// SetDelay sets the number of seconds to wait before the Tween starts.
func (t *Tween[T]) SetDelay(seconds float64) *Tween[T] {
	t.delay = math.Max(seconds, 0)
	return t
}

// SetEasing sets the easing curve. A nil fn restores linear easing.
func (t *Tween[T]) SetEasing(fn easing.Func) *Tween[T] {
	if fn == nil {
		fn = easing.Linear
	}
	t.ease = fn
	return t
}

// SetLoop sets the number of passes to play; -1 plays forever. When yoyo is
// true each pass after the first runs in the opposite direction to the one
// before it.
func (t *Tween[T]) SetLoop(count int, yoyo bool) *Tween[T] {
	t.loops = count
	t.yoyo = yoyo
	return t
}

// SetSteps quantizes progress into n plateaus. Zero restores continuous
// progress. A negative n returns an *InvalidArgumentError and leaves the
// Tween unchanged.
func (t *Tween[T]) SetSteps(n int) (*Tween[T], error) {
	if n < 0 {
		return t, &InvalidArgumentError{Name: "step count", Value: n}
	}
	t.steps = n
	return t, nil
}

// OnStart sets fn to be called when the Tween starts and at the start of
// every subsequent loop.
func (t *Tween[T]) OnStart(fn func()) *Tween[T] {
	t.onStart = fn
	return t
}

// OnUpdate sets fn to be called after every value write.
func (t *Tween[T]) OnUpdate(fn func()) *Tween[T] {
	t.onUpdate = fn
	return t
}

// OnComplete sets fn to be called when the final loop finishes.
func (t *Tween[T]) OnComplete(fn func()) *Tween[T] {
	t.onComplete = fn
	return t
}

// OnKill sets fn to be called once when the Tween is disposed.
func (t *Tween[T]) OnKill(fn func()) *Tween[T] {
	t.onKill = fn
	return t
}

// Start returns the value the current pass starts from.
func (t *Tween[T]) Start() T {
	if t.reversed {
		return t.to
	}
	return t.from
}

// End returns the value the current pass ends at.
func (t *Tween[T]) End() T {
	if t.reversed {
		return t.from
	}
	return t.to
}

// IsReversed reports whether the Tween is running toward its original start.
func (t *Tween[T]) IsReversed() bool { return t.reversed }

// Loop returns the zero-based index of the current pass.
func (t *Tween[T]) Loop() int { return t.loop }

// Elapsed returns the position of the Tween within a pass in seconds,
// measured from the original start.
func (t *Tween[T]) Elapsed() float64 { return t.elapsed }

// Duration returns the length of a pass in seconds.
func (t *Tween[T]) Duration() float64 { return t.duration }

// Update advances the Tween by dt seconds.
func (t *Tween[T]) Update(dt float64) {
	if t.inactive() {
		return
	}

	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		// The time left over once the delay runs out advances the first
		// active tick.
		dt = -t.delay
		t.delay = 0
	}

	if !t.started {
		t.started = true
		if !t.explicitFrom {
			t.from = t.get()
		}
		t.set(t.Start())
		if t.fire(t.onStart) {
			return
		}
	}

	if t.reversed {
		t.elapsed -= dt
	} else {
		t.elapsed += dt
	}
	t.elapsed = math.Min(math.Max(t.elapsed, 0), math.Max(t.duration, 0))

	raw := t.progress()
	progress := raw
	if t.steps > 0 {
		progress = math.Floor(progress*float64(t.steps)) / float64(t.steps)
	}
	t.set(t.lerp(t.from, t.to, t.ease(progress)))
	if t.fire(t.onUpdate) {
		return
	}

	if (!t.reversed && raw < 1) || (t.reversed && raw > 0) {
		return
	}
	if loopsRemain(t.loops, t.loop) {
		t.loop++
		if t.yoyo {
			t.reversed = !t.reversed
		} else {
			t.elapsed = t.startBoundary()
		}
		t.fire(t.onStart)
		return
	}
	t.completed = true
	t.fire(t.onComplete)
}

// progress returns elapsed time as a fraction of duration in [0,1].
func (t *Tween[T]) progress() float64 {
	if t.duration <= 0 {
		if t.reversed {
			return 0
		}
		return 1
	}
	return math.Min(t.elapsed/t.duration, 1)
}

// startBoundary returns the elapsed time a pass in the current direction
// starts from.
func (t *Tween[T]) startBoundary() float64 {
	if t.reversed {
		return math.Max(t.duration, 0)
	}
	return 0
}

// fire calls fn if it is set and reports whether the Tween was disposed
// during the call.
func (t *Tween[T]) fire(fn func()) (disposed bool) {
	if fn != nil {
		fn()
	}
	return t.disposed
}

// Reverse turns the Tween around without restarting it. The value heads back
// toward where the current pass started and takes as long to get there as
// the pass has run so far.
func (t *Tween[T]) Reverse() {
	if t.disposed {
		return
	}
	t.reversed = !t.reversed
}

func (t *Tween[T]) flip() { t.Reverse() }

func (t *Tween[T]) rewind() {
	if t.disposed {
		return
	}
	t.completed = false
	t.paused = false
	t.loop = 0
	t.elapsed = t.startBoundary()
}

// Dispose stops the Tween permanently and calls the OnKill callback. Later
// calls have no effect.
func (t *Tween[T]) Dispose() {
	if !t.dispose() {
		return
	}
	onKill := t.onKill
	t.onStart = nil
	t.onUpdate = nil
	t.onComplete = nil
	t.onKill = nil
	if onKill != nil {
		onKill()
	}
}
