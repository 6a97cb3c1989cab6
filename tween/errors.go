package tween

import (
	"fmt"
	"reflect"
)

// UnsupportedTypeError is returned by New when no Lerper has been registered
// for the tweened type.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tween: no lerper registered for type %v", e.Type)
}

// InvalidArgumentError is returned when a configuration value is out of range.
type InvalidArgumentError struct {
	Name  string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("tween: invalid %s: %d", e.Name, e.Value)
}
