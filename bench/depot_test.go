package bench

import (
	"testing"

	"github.com/TheBitDrifter/depot"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func BenchmarkIterDepotQuery(b *testing.B) {
	b.StopTimer()
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	world := depot.Factory.NewWorld(nil)

	world.NewEntities(nPosVel, position, velocity)
	world.NewEntities(nPos, position)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		depot.Query2(world, func(_ depot.Entity, pos *Position, vel *Velocity) {
			pos.X += vel.X
			pos.Y += vel.Y
		})
	}
}

func BenchmarkIterDepotCursor(b *testing.B) {
	b.StopTimer()
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	world := depot.Factory.NewWorld(nil)

	world.NewEntities(nPosVel, position, velocity)
	world.NewEntities(nPos, position)

	cursor := depot.Factory.NewCursor(depot.Factory.NewFilter().And(position, velocity), world)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for cursor.Next() {
			pos := position.GetFromCursor(cursor)
			vel := velocity.GetFromCursor(cursor)
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkAddRemoveDepot(b *testing.B) {
	b.StopTimer()
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	world := depot.Factory.NewWorld(nil)

	entities, _ := world.NewEntities(nPosVel, position)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, e := range entities {
			velocity.Add(world, e, Velocity{})
		}
		for _, e := range entities {
			velocity.Remove(world, e)
		}
	}
}
