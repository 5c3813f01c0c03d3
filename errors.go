package depot

import (
	"fmt"
	"reflect"
)

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}

// InvalidEntityError is returned when a structural change targets an entity that is not alive.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %v is not alive", e.Entity)
}

// ComponentNotFoundError is returned when an entity's archetype lacks the requested component,
// or when the entity itself is no longer alive.
type ComponentNotFoundError struct {
	Entity    Entity
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %v: %v", e.Entity, e.Component.Type())
}

type ComponentLimitError struct {
	Type  reflect.Type
	Limit int
}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("cannot declare component %v: limit of %d component types reached (see mask build tags)", e.Type, e.Limit)
}

type CacheCapacityError struct {
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Capacity)
}
