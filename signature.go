package depot

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ mask.Maskable = Signature{}

// Signature is the set of component types identifying an archetype.
//
// Signatures are plain values: two signatures built independently from the same components are
// equal under == and can be used interchangeably as map keys. Add and Remove return new values
// and never modify the receiver.
type Signature struct {
	bits mask.Mask
}

// NewSignature returns the signature containing exactly the given components.
func NewSignature(components ...Component) Signature {
	var s Signature
	for _, c := range components {
		s.bits.Mark(bitFor(c))
	}
	return s
}

func (s Signature) Add(c Component) Signature {
	s.bits.Mark(bitFor(c))
	return s
}

func (s Signature) Remove(c Component) Signature {
	s.bits.Unmark(bitFor(c))
	return s
}

func (s Signature) Contains(c Component) bool {
	return s.bits.Contains(bitFor(c))
}

// ContainsAll reports whether every component of other is in s.
func (s Signature) ContainsAll(other Signature) bool {
	return s.bits.ContainsAll(other.bits)
}

// ContainsAny reports whether s shares at least one component with other.
// It is false when other is empty.
func (s Signature) ContainsAny(other Signature) bool {
	return s.bits.ContainsAny(other.bits)
}

func (s Signature) IsEmpty() bool {
	return s.bits.IsEmpty()
}

// Len returns the number of component types in s.
func (s Signature) Len() int {
	n := 0
	for _, word := range s.bits {
		n += bits.OnesCount64(word)
	}
	return n
}

func (s Signature) Mask() mask.Mask {
	return s.bits
}

// Bits yields the signature bits in ascending order.
func (s Signature) Bits() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i, word := range s.bits {
			for word != 0 {
				offset := bits.TrailingZeros64(word)
				if !yield(uint32(i*64 + offset)) {
					return
				}
				word &^= 1 << offset
			}
		}
	}
}

// Components returns the members of s ordered by signature bit.
func (s Signature) Components() []Component {
	return iter_util.Collect(s.components())
}

func (s Signature) components() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for bit := range s.Bits() {
			if !yield(componentForBit(bit)) {
				return
			}
		}
	}
}

func (s Signature) String() string {
	names := make([]string, 0, s.Len())
	for c := range s.components() {
		names = append(names, c.Type().String())
	}
	return "Signature[" + strings.Join(names, ", ") + "]"
}
