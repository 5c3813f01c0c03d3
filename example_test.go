package depot_test

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Sleeping marks entities that should not move
type Sleeping struct{}

// Example shows basic depot usage with entity creation and queries
func Example_basic() {
	world := depot.Factory.NewWorld(nil)

	// Create a few moving entities and one named player
	for i := 0; i < 3; i++ {
		e := world.CreateEntity()
		depot.AddComponent(world, e, Position{})
		depot.AddComponent(world, e, Velocity{X: 1})
	}
	player := world.CreateEntity()
	depot.AddComponent(world, player, Position{X: 10, Y: 20})
	depot.AddComponent(world, player, Velocity{X: 1, Y: 2})
	depot.AddComponent(world, player, Name{Value: "Player"})

	// Query for all entities with position and velocity
	matchCount := 0
	depot.Query2(world, func(e depot.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
		matchCount++
	})
	fmt.Printf("Moved %d entities\n", matchCount)

	pos, _ := depot.GetComponent[Position](world, player)
	name, _ := depot.GetComponent[Name](world, player)
	fmt.Printf("%s is at (%.1f, %.1f)\n", name.Value, pos.X, pos.Y)

	// Output:
	// Moved 4 entities
	// Player is at (11.0, 22.0)
}

// Example_filters shows cursors over with/without filters
func Example_filters() {
	world := depot.Factory.NewWorld(nil)

	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	sleeping := depot.FactoryNewComponent[Sleeping]()

	world.NewEntities(3, position)
	world.NewEntities(3, position, velocity)
	world.NewEntities(2, position, velocity, sleeping)

	awake := depot.Factory.NewFilter().And(position, velocity).Not(sleeping)
	cursor := depot.Factory.NewCursor(awake, world)
	fmt.Printf("Awake movers: %d\n", cursor.TotalMatched())

	for cursor.Next() {
		vel := velocity.GetFromCursor(cursor)
		vel.X = 5
	}

	stationary := depot.Factory.NewFilter().And(position).Not(velocity)
	fmt.Printf("Stationary: %d\n", depot.Factory.NewCursor(stationary, world).TotalMatched())

	// Output:
	// Awake movers: 3
	// Stationary: 3
}

// Example_lifecycle shows generational handles and deferred destruction
func Example_lifecycle() {
	world := depot.Factory.NewWorld(nil)

	first := world.CreateEntity()
	world.DestroyEntity(first)
	second := world.CreateEntity()

	fmt.Println("same id:", first.ID == second.ID)
	fmt.Println("old handle alive:", world.IsAlive(first))
	fmt.Println("new handle alive:", world.IsAlive(second))

	depot.AddComponent(world, second, Position{})
	depot.Query1(world, func(e depot.Entity, _ *Position) {
		// Destruction requested mid-query waits for the pass to finish
		world.DestroyEntity(e)
		fmt.Println("alive during query:", world.IsAlive(e))
	})
	fmt.Println("alive after query:", world.IsAlive(second))

	// Output:
	// same id: true
	// old handle alive: false
	// new handle alive: true
	// alive during query: true
	// alive after query: false
}

// Example_signatures shows manual query composition through the archetype index
func Example_signatures() {
	world := depot.Factory.NewWorld(nil)
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	world.NewEntities(4, position)
	world.NewEntities(2, position, velocity)

	with := depot.NewSignature(position)
	without := depot.Signature{}.Add(velocity)
	for _, arch := range world.Index().GetMatchingArchetypes(with, without) {
		fmt.Printf("archetype %d holds %d entities\n", arch.ID(), arch.Len())
	}

	// Output:
	// archetype 2 holds 4 entities
}
