package depot

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// Visitor is invoked once per entity by untyped iteration.
type Visitor func(Entity)

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}

type Cache[K comparable, V any] interface {
	Get(K) (V, bool)
	Register(K, V) error
	Evict(func(K, V) bool) int
	Len() int
	Clear()
}

// Warning: internal Dependencies abound!
type Cursor struct {
	// The filter selecting archetypes
	filter Filter

	// The world to iterate over
	world *World

	// Current iteration state
	currentArchetype *Archetype
	storageIndex     int
	entityIndex      int
	remaining        int

	// Initialization state
	initialized     bool
	matchedStorages []*Archetype
}

type AccessibleComponent[T any] struct {
	table.ElementType
}

type SimpleCache[K comparable, V any] struct {
	items       map[K]V
	maxCapacity int
}
