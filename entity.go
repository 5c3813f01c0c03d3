package depot

import "fmt"

// Entity is a generational handle. ID indexes a slot in the world's slot table and Generation
// tells a reused ID apart from its previous occupants. Entities own no data.
type Entity struct {
	ID         uint32
	Generation uint32
}

// Invalid is the reserved sentinel handle. It is never alive.
var Invalid = Entity{}

// Valid reports whether e is not the Invalid sentinel. It says nothing about liveness.
func (e Entity) Valid() bool {
	return e.ID != 0
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Generation)
}

type slot struct {
	alive      bool
	generation uint32
	archetype  *Archetype
	row        int
}

// slotTable owns one slot per issued id. Slots are never removed; released ids go on a free list.
type slotTable struct {
	slots []slot
	free  []uint32
	alive int
}

func newSlotTable() slotTable {
	// Slot 0 backs Invalid and is never handed out.
	return slotTable{slots: make([]slot, 1, 64)}
}

func (t *slotTable) allocate() Entity {
	var id uint32
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		id = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[id]
	if s.alive {
		fatal("allocated id %d is still alive", id)
	}
	s.generation++
	s.alive = true
	t.alive++
	return Entity{ID: id, Generation: s.generation}
}

func (t *slotTable) release(e Entity) {
	s := &t.slots[e.ID]
	s.alive = false
	s.archetype = nil
	s.row = 0
	t.free = append(t.free, e.ID)
	t.alive--
}

// lookup returns the slot for e when e is alive and current.
func (t *slotTable) lookup(e Entity) (*slot, bool) {
	if e.ID == 0 || int(e.ID) >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[e.ID]
	if !s.alive || s.generation != e.Generation {
		return nil, false
	}
	return s, true
}

// relocate records that the entity with the given id now lives at row.
func (t *slotTable) relocate(id uint32, row int) {
	s := &t.slots[id]
	if !s.alive {
		fatal("relocating dead entity id %d", id)
	}
	s.row = row
}
