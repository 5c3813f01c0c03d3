package depot

import (
	"fmt"
	"log/slog"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/table"
)

// World owns the slot table and the archetype index. It translates entity handles into
// (archetype, row) locations and drives every structural change.
//
// A World is not safe for concurrent use.
type World struct {
	schema    table.Schema
	slots     slotTable
	index     *ArchetypeIndex
	empty     *Archetype
	lockDepth int
	opQueue   opQueue
	logger    *slog.Logger
}

func newWorld(schema table.Schema) *World {
	if schema == nil {
		schema = table.Factory.NewSchema()
	}
	index := newArchetypeIndex(Config.ChunkCapacity(), Config.MaxCachedQueries())
	w := &World{
		schema:  schema,
		slots:   newSlotTable(),
		index:   index,
		opQueue: newOpQueue(),
		logger:  bark.For(logWorld),
	}
	w.empty = index.GetOrCreate(Signature{})
	return w
}

// Index exposes the archetype index for manual query composition.
func (w *World) Index() *ArchetypeIndex {
	return w.index
}

// Register records components in the world's schema. Structural operations register the
// components they touch, so calling Register up front is optional.
func (w *World) Register(components ...Component) {
	for _, c := range components {
		if !w.schema.Contains(c) {
			w.schema.Register(c)
		}
	}
}

func (w *World) Registered(c Component) bool {
	return w.schema.Contains(c)
}

// CreateEntity allocates a handle and places it in the empty archetype.
func (w *World) CreateEntity() Entity {
	e := w.slots.allocate()
	w.place(e, w.empty, w.empty.pushZero(e))
	return e
}

// NewEntities creates n entities holding the given components at their zero values.
func (w *World) NewEntities(n int, components ...Component) ([]Entity, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot create %d entities", n)
	}
	w.Register(components...)
	arch := w.index.GetOrCreate(NewSignature(components...))
	entities := make([]Entity, n)
	for i := range entities {
		e := w.slots.allocate()
		w.place(e, arch, arch.pushZero(e))
		entities[i] = e
	}
	return entities, nil
}

func (w *World) place(e Entity, arch *Archetype, row int) {
	s := &w.slots.slots[e.ID]
	s.archetype = arch
	s.row = row
}

// DestroyEntity removes e and frees its id. Destroying a stale or unknown handle does nothing.
// While the world is locked the destruction is deferred until the lock is released.
func (w *World) DestroyEntity(e Entity) {
	if w.Locked() {
		w.opQueue.enqueueDestroy(e)
		return
	}
	s, ok := w.slots.lookup(e)
	if !ok {
		return
	}
	w.removeRow(s.archetype, s.row)
	w.slots.release(e)
}

// DestroyEntities destroys every given entity, skipping stale handles.
func (w *World) DestroyEntities(entities ...Entity) {
	for _, e := range entities {
		w.DestroyEntity(e)
	}
}

// IsAlive reports whether e refers to the current occupant of a live slot.
func (w *World) IsAlive(e Entity) bool {
	_, ok := w.slots.lookup(e)
	return ok
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	return w.slots.alive
}

// Archetype returns the archetype currently holding e.
func (w *World) Archetype(e Entity) (*Archetype, bool) {
	s, ok := w.slots.lookup(e)
	if !ok {
		return nil, false
	}
	return s.archetype, true
}

// RemoveComponent moves e to the archetype without c.
func (w *World) RemoveComponent(e Entity, c Component) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	s, ok := w.slots.lookup(e)
	if !ok {
		return InvalidEntityError{Entity: e}
	}
	if !s.archetype.Contains(c) {
		return ComponentNotFoundError{Entity: e, Component: c}
	}
	w.migrate(e, s, w.index.transition(s.archetype, c, false))
	return nil
}

// HasComponent reports whether e is alive and holds c.
func (w *World) HasComponent(e Entity, c Component) bool {
	s, ok := w.slots.lookup(e)
	return ok && s.archetype.Contains(c)
}

// migrate moves e from its current archetype to dst: copy the row into dst, swap-remove it from
// the source, then point the slot at the new location.
func (w *World) migrate(e Entity, s *slot, dst *Archetype) int {
	src, row := s.archetype, s.row
	if src == dst {
		fatal("migrating %v onto its own archetype %d", e, src.id)
	}
	newRow := dst.pushFrom(src, row, e)
	w.removeRow(src, row)
	s.archetype = dst
	s.row = newRow
	return newRow
}

func (w *World) removeRow(arch *Archetype, row int) {
	if moved, ok := arch.swapRemove(row); ok {
		w.slots.relocate(moved.ID, row)
	}
}

// locate resolves e for component access.
func (w *World) locate(e Entity) (*Archetype, int, bool) {
	s, ok := w.slots.lookup(e)
	if !ok {
		return nil, 0, false
	}
	return s.archetype, s.row, true
}

// AddComponent attaches v to e. If e already holds T the value is overwritten in place;
// otherwise e migrates to the archetype that includes T.
func AddComponent[T any](w *World, e Entity, v T) error {
	return FactoryNewComponent[T]().Add(w, e, v)
}

// GetComponent returns a pointer to e's T. The pointer is valid until the next structural change
// to e's archetype.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	return FactoryNewComponent[T]().Get(w, e)
}

// RemoveComponent detaches T from e.
func RemoveComponent[T any](w *World, e Entity) error {
	return w.RemoveComponent(e, FactoryNewComponent[T]())
}

// HasComponent reports whether e is alive and holds T.
func HasComponent[T any](w *World, e Entity) bool {
	return w.HasComponent(e, FactoryNewComponent[T]())
}
