package depot

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(filter Filter, world *World) *Cursor {
	return &Cursor{
		filter: filter,
		world:  world,
	}
}

// Next advances to the next matching entity. The world stays locked from the first call until
// Next returns false; callers that stop early must call Reset.
func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.storageIndex < len(c.matchedStorages) {
		c.currentArchetype = c.matchedStorages[c.storageIndex]
		c.remaining = c.currentArchetype.Len()

		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.storageIndex++
		c.entityIndex = 0
	}
	c.Reset()
	return false
}

// Entities yields every matching entity. Breaking out of the loop releases the world.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.CurrentEntity()) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.world.Lock()
	c.matchedStorages = c.world.index.matching(c.filter)
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	if len(c.matchedStorages) > 0 {
		c.currentArchetype = c.matchedStorages[0]
		c.remaining = c.currentArchetype.Len()
	}
	c.initialized = true
}

// Reset ends the current pass and unlocks the world. It is safe to call more than once.
func (c *Cursor) Reset() {
	wasInitialized := c.initialized
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.currentArchetype = nil
	c.matchedStorages = nil
	c.initialized = false
	if wasInitialized {
		c.world.Unlock()
	}
}

// CurrentEntity returns the entity under the cursor.
func (c *Cursor) CurrentEntity() Entity {
	if c.currentArchetype == nil || c.entityIndex == 0 {
		return Invalid
	}
	return c.currentArchetype.Entity(c.entityIndex - 1)
}

// Archetype returns the archetype under the cursor.
func (c *Cursor) Archetype() *Archetype {
	return c.currentArchetype
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

// TotalMatched counts the entities the filter currently matches without moving the cursor.
func (c *Cursor) TotalMatched() int {
	total := 0
	for _, arch := range c.world.index.matching(c.filter) {
		total += arch.Len()
	}
	return total
}
