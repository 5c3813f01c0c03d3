package depot

import "github.com/TheBitDrifter/bark"

var _ Component = AccessibleComponent[struct{}]{}

func (c AccessibleComponent[T]) newColumn(chunkCapacity int) column {
	return newChunkedColumn[T](chunkCapacity)
}

// Add attaches v to e, overwriting the current value when e already holds the component.
// Overwrites are allowed while the world is locked; migrations are not.
func (c AccessibleComponent[T]) Add(w *World, e Entity, v T) error {
	s, ok := w.slots.lookup(e)
	if !ok {
		return InvalidEntityError{Entity: e}
	}
	bit := bitFor(c)
	if s.archetype.Contains(c) {
		*columnOf[T](s.archetype, bit).at(s.row) = v
		return nil
	}
	if w.Locked() {
		return LockedWorldError{}
	}
	w.Register(c)
	row := w.migrate(e, s, w.index.transition(s.archetype, c, true))
	*columnOf[T](s.archetype, bit).at(row) = v
	return nil
}

// Get retrieves a pointer to e's component value. Mutations through the pointer are visible
// immediately; the pointer is valid until the next structural change to e's archetype.
func (c AccessibleComponent[T]) Get(w *World, e Entity) (*T, error) {
	arch, row, ok := w.locate(e)
	if !ok || !arch.Contains(c) {
		return nil, ComponentNotFoundError{Entity: e, Component: c}
	}
	return columnOf[T](arch, bitFor(c)).at(row), nil
}

// Remove detaches the component from e.
func (c AccessibleComponent[T]) Remove(w *World, e Entity) error {
	return w.RemoveComponent(e, c)
}

// Check determines if e is alive and holds the component
func (c AccessibleComponent[T]) Check(w *World, e Entity) bool {
	return w.HasComponent(e, c)
}

// EnqueueAdd adds v to e now, or once the world is unlocked if a query is running.
func (c AccessibleComponent[T]) EnqueueAdd(w *World, e Entity, v T) error {
	if !w.Locked() {
		return c.Add(w, e, v)
	}
	w.opQueue.enqueueComponentOp(opAddComponent, e, func(w *World) error {
		return c.Add(w, e, v)
	})
	return nil
}

// GetFromCursor retrieves the component value for the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	if cursor.currentArchetype == nil || cursor.entityIndex == 0 {
		bark.For(logWorld).Warn("cursor read outside iteration", "component_type", c.Type().String())
		return nil
	}
	return columnOf[T](cursor.currentArchetype, bitFor(c)).at(cursor.entityIndex - 1)
}

// GetFromCursorSafe safely retrieves a component value, checking if the component exists
// Returns a boolean indicating success and the component pointer if found
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if !c.CheckCursor(cursor) {
		return false, nil
	}
	return true, c.GetFromCursor(cursor)
}

// CheckCursor determines if the component exists in the archetype at the cursor position
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return cursor.currentArchetype != nil && cursor.entityIndex > 0 && cursor.currentArchetype.Contains(c)
}
