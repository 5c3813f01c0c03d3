/*
Package depot provides the archetype storage core of an Entity-Component-System (ECS).

Depot associates generational entity handles with sets of plain data components. Entities that
share the exact same component set live together in one archetype, whose columns are stored in
fixed-size chunks so that growth never moves rows that are already filled.

Core Concepts:

  - Entity: A generational handle (id + generation). It owns no data.
  - Component: A plain data type attached to entities.
  - Signature: The value-comparable set of component types of an archetype.
  - Archetype: Column storage for every entity sharing one signature.
  - ArchetypeIndex: Every archetype ever created, plus a cache of query matches.

Basic Usage:

	world := depot.Factory.NewWorld(nil)

	e := world.CreateEntity()
	depot.AddComponent(world, e, Position{X: 1})
	depot.AddComponent(world, e, Velocity{X: 2})

	depot.Query2(world, func(e depot.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

Handles work too, and allow filtered iteration with a cursor:

	position := depot.FactoryNewComponent[Position]()
	frozen := depot.FactoryNewComponent[Frozen]()

	filter := depot.Factory.NewFilter().And(position).Not(frozen)
	cursor := depot.Factory.NewCursor(filter, world)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		pos.Y -= 1
	}

A World is not safe for concurrent use. Structural changes (adding or removing components,
destroying entities) are rejected or deferred while a query is iterating; see World.Lock.
*/
package depot
