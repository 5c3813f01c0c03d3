package depot

import (
	"github.com/TheBitDrifter/mask"
)

type archetypeID uint32

// Archetype stores every entity whose component set is exactly its signature. Row i of every
// column, together with entity i, describes one entity. Rows are kept dense with swap-remove, so
// row order is unspecified.
type Archetype struct {
	id        archetypeID
	signature Signature
	entities  *chunkedColumn[Entity]
	columns   []column
	// columnIndex maps a signature bit to its position in columns, plus one.
	columnIndex [mask.MaxBits]uint16
	edges       edges
}

// edges memoises the archetypes reached by adding or removing one component.
type edges struct {
	add    map[uint32]*Archetype
	remove map[uint32]*Archetype
}

func newArchetype(id archetypeID, signature Signature, chunkCapacity int) *Archetype {
	arch := &Archetype{
		id:        id,
		signature: signature,
		entities:  newChunkedColumn[Entity](chunkCapacity),
		columns:   make([]column, 0, signature.Len()),
		edges: edges{
			add:    make(map[uint32]*Archetype),
			remove: make(map[uint32]*Archetype),
		},
	}
	for bit := range signature.Bits() {
		arch.columns = append(arch.columns, componentForBit(bit).newColumn(chunkCapacity))
		arch.columnIndex[bit] = uint16(len(arch.columns))
	}
	return arch
}

func (a *Archetype) ID() uint32 {
	return uint32(a.id)
}

func (a *Archetype) Signature() Signature {
	return a.signature
}

// Len returns the number of entities currently stored.
func (a *Archetype) Len() int {
	return a.entities.Len()
}

// Entity returns the entity stored at row.
func (a *Archetype) Entity(row int) Entity {
	return *a.entities.at(row)
}

func (a *Archetype) Contains(c Component) bool {
	return a.signature.Contains(c)
}

// Matches reports whether a holds every component of with and none of without.
func (a *Archetype) Matches(with, without Signature) bool {
	return a.signature.ContainsAll(with) && !a.signature.ContainsAny(without)
}

func (a *Archetype) column(bit uint32) (column, bool) {
	pos := a.columnIndex[bit]
	if pos == 0 {
		return nil, false
	}
	return a.columns[pos-1], true
}

func columnOf[T any](a *Archetype, bit uint32) *chunkedColumn[T] {
	col, ok := a.column(bit)
	if !ok {
		fatal("archetype %d has no column for bit %d", a.id, bit)
	}
	typed, ok := col.(*chunkedColumn[T])
	if !ok {
		fatal("archetype %d column for bit %d holds %T", a.id, bit, col)
	}
	return typed
}

// pushZero appends e with zero values in every column and returns its row.
func (a *Archetype) pushZero(e Entity) int {
	row := a.entities.push(e)
	for _, col := range a.columns {
		col.pushZero()
	}
	a.checkRows()
	return row
}

// pushFrom appends e to a, copying every component it shares with src's row. Components that src
// lacks start at their zero value.
func (a *Archetype) pushFrom(src *Archetype, srcRow int, e Entity) int {
	row := a.entities.push(e)
	for bit := range a.signature.Bits() {
		dst, _ := a.column(bit)
		if from, ok := src.column(bit); ok {
			dst.pushFrom(from, srcRow)
			continue
		}
		dst.pushZero()
	}
	a.checkRows()
	return row
}

// swapRemove deletes row by moving the last row into it. When a different entity was moved, it
// is returned with true so the caller can update that entity's location.
func (a *Archetype) swapRemove(row int) (Entity, bool) {
	lastRow := a.entities.Len() - 1
	for _, col := range a.columns {
		col.swapRemove(row)
	}
	a.entities.swapRemove(row)
	a.checkRows()
	if row == lastRow {
		return Invalid, false
	}
	return *a.entities.at(row), true
}

func (a *Archetype) checkRows() {
	n := a.entities.Len()
	for i, col := range a.columns {
		if col.Len() != n {
			fatal("archetype %d column %d has %d rows, entities has %d", a.id, i, col.Len(), n)
		}
	}
}
