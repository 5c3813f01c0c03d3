package depot

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

// NewWorld creates a world recording its components in schema. A nil schema uses
// table.Factory.NewSchema().
func (f factory) NewWorld(schema table.Schema) *World {
	return newWorld(schema)
}

func (f factory) NewFilter() Filter {
	return newFilter()
}

func (f factory) NewCursor(filter Filter, world *World) *Cursor {
	return newCursor(filter, world)
}

func (f factory) NewSignature(components ...Component) Signature {
	return NewSignature(components...)
}

// FactoryNewCache returns a cache holding at most cap entries, or any number when cap is zero.
func FactoryNewCache[K comparable, V any](cap int) Cache[K, V] {
	return &SimpleCache[K, V]{
		items:       make(map[K]V),
		maxCapacity: cap,
	}
}
