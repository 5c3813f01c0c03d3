package depot

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// Component represents a data attribute/state that can be attached to entities
// Components can be used to build signatures and filters
type Component interface {
	table.ElementType
	newColumn(chunkCapacity int) column
}

// declared maps every component type to a single element type for the whole process, so that
// handles built independently for the same Go type compare equal and share a signature bit.
var declared = struct {
	sync.RWMutex
	byType map[reflect.Type]Component
	byBit  [mask.MaxBits]Component
}{
	byType: make(map[reflect.Type]Component),
}

// FactoryNewComponent returns the handle for component type T, declaring it on first use.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	typ := reflect.TypeFor[T]()

	declared.RLock()
	existing, ok := declared.byType[typ]
	declared.RUnlock()
	if ok {
		return existing.(AccessibleComponent[T])
	}

	declared.Lock()
	defer declared.Unlock()
	if existing, ok := declared.byType[typ]; ok {
		return existing.(AccessibleComponent[T])
	}
	iden := table.FactoryNewElementType[T]()
	if int(iden.ID()) > mask.MaxBits {
		panic(ComponentLimitError{Type: typ, Limit: mask.MaxBits})
	}
	comp := AccessibleComponent[T]{ElementType: iden}
	declared.byType[typ] = comp
	declared.byBit[bitFor(comp)] = comp
	return comp
}

func bitFor(c table.ElementType) uint32 {
	return uint32(c.ID() - 1)
}

func componentForBit(bit uint32) Component {
	declared.RLock()
	defer declared.RUnlock()
	c := declared.byBit[bit]
	if c == nil {
		fatal("no component declared for signature bit %d", bit)
	}
	return c
}
