package tween

import (
	"reflect"
	"sync"
)

// A Lerper blends from toward to by amount. An amount of 0 yields from and
// an amount of 1 yields to; easing functions may push amount outside [0,1].
type Lerper[T any] func(from, to T, amount float64) T

var lerpers = struct {
	sync.RWMutex
	m map[reflect.Type]any
}{
	m: map[reflect.Type]any{
		typeOf[float64](): Lerper[float64](LerpFloat64),
		typeOf[float32](): Lerper[float32](func(from, to float32, amount float64) float32 {
			return from + (to-from)*float32(amount)
		}),
	},
}

// LerpFloat64 is the linear blend from + (to-from)*amount.
func LerpFloat64(from, to, amount float64) float64 {
	return from + (to-from)*amount
}

// RegisterLerper registers fn as the interpolation used by New for values of
// type T, replacing any earlier registration.
func RegisterLerper[T any](fn Lerper[T]) {
	lerpers.Lock()
	lerpers.m[typeOf[T]()] = fn
	lerpers.Unlock()
}

// lookupLerper returns the Lerper registered for T.
func lookupLerper[T any]() (Lerper[T], error) {
	t := typeOf[T]()
	lerpers.RLock()
	fn, ok := lerpers.m[t]
	lerpers.RUnlock()
	if !ok {
		return nil, &UnsupportedTypeError{Type: t}
	}
	return fn.(Lerper[T]), nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
