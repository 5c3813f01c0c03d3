package depot

import (
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

type Name struct {
	Value string
}

type Frozen struct{}

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		creates int
		destroy []int // indexes into the created entities
	}{
		{"Single entity", 1, []int{0}},
		{"Destroy none", 10, nil},
		{"Destroy every other", 10, []int{0, 2, 4, 6, 8}},
		{"Destroy all", 5, []int{4, 3, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := Factory.NewWorld(nil)
			entities := make([]Entity, tt.creates)
			for i := range entities {
				entities[i] = world.CreateEntity()
				if !world.IsAlive(entities[i]) {
					t.Fatalf("Entity %v not alive right after creation", entities[i])
				}
			}

			destroyed := make(map[int]bool)
			for _, i := range tt.destroy {
				world.DestroyEntity(entities[i])
				destroyed[i] = true
				if world.IsAlive(entities[i]) {
					t.Errorf("Entity %v alive right after destroy", entities[i])
				}
			}

			for i, e := range entities {
				if world.IsAlive(e) == destroyed[i] {
					t.Errorf("Entity %v alive = %v, want %v", e, world.IsAlive(e), !destroyed[i])
				}
			}
			if want := tt.creates - len(tt.destroy); world.Len() != want {
				t.Errorf("World has %d alive entities, want %d", world.Len(), want)
			}
			if world.IsAlive(Invalid) {
				t.Error("Invalid entity reported alive")
			}
		})
	}
}

func TestEntityIDReuse(t *testing.T) {
	world := Factory.NewWorld(nil)

	first := world.CreateEntity()
	if first.ID == Invalid.ID {
		t.Fatalf("Created entity uses the reserved id %d", first.ID)
	}
	world.DestroyEntity(first)

	second := world.CreateEntity()
	if second.ID != first.ID {
		t.Errorf("Reused id %d, want %d", second.ID, first.ID)
	}
	if second.Generation <= first.Generation {
		t.Errorf("Generation %d not greater than previous %d", second.Generation, first.Generation)
	}
	if world.IsAlive(first) {
		t.Error("Stale handle reported alive after id reuse")
	}
	if !world.IsAlive(second) {
		t.Error("New occupant of reused id not alive")
	}
	if first == second {
		t.Error("Handles for different generations compare equal")
	}
}

func TestDestroyStaleHandles(t *testing.T) {
	world := Factory.NewWorld(nil)

	keep := world.CreateEntity()
	if err := AddComponent(world, keep, Position{X: 7, Y: 8}); err != nil {
		t.Fatalf("Failed to add component: %v", err)
	}
	gone := world.CreateEntity()
	world.DestroyEntity(gone)

	stale := []Entity{
		Invalid,
		gone,                             // already destroyed
		{ID: 999, Generation: 1},         // never issued
		{ID: keep.ID, Generation: 12345}, // wrong generation
	}
	for _, e := range stale {
		world.DestroyEntity(e)
	}

	if !world.IsAlive(keep) {
		t.Fatal("Destroying stale handles destroyed a live entity")
	}
	if world.Len() != 1 {
		t.Errorf("World has %d alive entities, want 1", world.Len())
	}
	pos, err := GetComponent[Position](world, keep)
	if err != nil {
		t.Fatalf("Failed to read component: %v", err)
	}
	if *pos != (Position{X: 7, Y: 8}) {
		t.Errorf("Position = %v, want {7 8}", *pos)
	}
}

func TestGenerationNotBumpedOnDestroy(t *testing.T) {
	world := Factory.NewWorld(nil)

	e := world.CreateEntity()
	world.DestroyEntity(e)

	s := world.slots.slots[e.ID]
	if s.alive {
		t.Error("Slot still alive after destroy")
	}
	if s.generation != e.Generation {
		t.Errorf("Slot generation %d after destroy, want %d", s.generation, e.Generation)
	}
}
