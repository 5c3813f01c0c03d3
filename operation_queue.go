package depot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/TheBitDrifter/bark"
)

type operation struct {
	typ    operationType
	entity Entity
	apply  func(*World) error
}

type operationType int

const (
	opAddComponent operationType = iota
	opRemoveComponent
	opDestroy
)

func (t operationType) String() string {
	switch t {
	case opAddComponent:
		return "add_component"
	case opRemoveComponent:
		return "remove_component"
	case opDestroy:
		return "destroy"
	}
	return "unknown"
}

// opQueue holds structural changes requested while the world is locked.
type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	logger         *slog.Logger
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		logger:         bark.For(logQueue),
	}
}

func (q *opQueue) Len() int {
	return len(q.componentOps) + len(q.destroyOps)
}

func (q *opQueue) enqueueComponentOp(typ operationType, e Entity, apply func(*World) error) {
	// Component changes on an entity that is about to be destroyed are moot.
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}
	q.componentOps = append(q.componentOps, operation{typ: typ, entity: e, apply: apply})
}

func (q *opQueue) enqueueDestroy(e Entity) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}
	q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: e})
}

// Locked reports whether a query or an explicit Lock is holding the world.
func (w *World) Locked() bool {
	return w.lockDepth > 0
}

// Lock blocks structural changes until the matching Unlock. Locks nest; queued operations run
// when the outermost lock is released.
func (w *World) Lock() {
	w.lockDepth++
}

func (w *World) Unlock() {
	if w.lockDepth == 0 {
		fatal("unlock of an unlocked world")
	}
	w.lockDepth--
	if w.lockDepth > 0 {
		return
	}
	if err := w.processOperationQueue(); err != nil {
		w.opQueue.logger.Warn("queued operations failed",
			bark.KeyOperation, "unlock",
			bark.KeyError, err,
		)
	}
}

// EnqueueRemoveComponent removes c from e now, or once the world is unlocked.
func (w *World) EnqueueRemoveComponent(e Entity, c Component) error {
	if !w.Locked() {
		return w.RemoveComponent(e, c)
	}
	w.opQueue.enqueueComponentOp(opRemoveComponent, e, func(w *World) error {
		return w.RemoveComponent(e, c)
	})
	return nil
}

// EnqueueDestroyEntity destroys e now, or once the world is unlocked.
func (w *World) EnqueueDestroyEntity(e Entity) {
	w.DestroyEntity(e)
}

// EnqueueAddComponent adds v to e now, or once the world is unlocked.
func EnqueueAddComponent[T any](w *World, e Entity, v T) error {
	return FactoryNewComponent[T]().EnqueueAdd(w, e, v)
}

// EnqueueRemoveComponent removes T from e now, or once the world is unlocked.
func EnqueueRemoveComponent[T any](w *World, e Entity) error {
	return w.EnqueueRemoveComponent(e, FactoryNewComponent[T]())
}

// processOperationQueue applies queued component changes, then queued destroys. A failing
// operation does not stop the rest; all failures are returned together.
func (w *World) processOperationQueue() error {
	q := &w.opQueue
	if q.Len() == 0 {
		return nil
	}
	applied, dropped := 0, 0
	var errs []error

	// Process component modifications first
	for _, op := range q.componentOps {
		// The entity may have been destroyed by an earlier operation or outside the queue.
		if !w.IsAlive(op.entity) {
			dropped++
			continue
		}
		if err := op.apply(w); err != nil {
			errs = append(errs, fmt.Errorf("failed to apply queued %v on %v: %w", op.typ, op.entity, err))
			dropped++
			continue
		}
		applied++
	}

	// Process destroys last
	for _, op := range q.destroyOps {
		w.DestroyEntity(op.entity)
		applied++
	}

	q.logger.Debug("queue flushed",
		bark.KeyOperation, "process_operation_queue",
		"applied", applied,
		"dropped", dropped,
	)
	q.reset()
	return errors.Join(errs...)
}

func (q *opQueue) reset() {
	clear(q.componentOps)
	clear(q.destroyOps)
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
}
