package trashpanda

import (
	"math/rand"

	"github.com/vovakirdan/trashpanda/internal/core"
)

// Kind tells collectibles from hazards.
type Kind int

const (
	Collectible Kind = iota
	Hazard
)

// String returns the kind's name.
func (k Kind) String() string {
	if k == Hazard {
		return "hazard"
	}
	return "collectible"
}

// Entity is a falling object. X and Y are the centre.
type Entity struct {
	ID   uint64
	X, Y float64
	Kind Kind
	Size float64
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Size, e.Size)
}

// OutcomeKind is the effect of an entity reaching the player.
type OutcomeKind int

const (
	Caught OutcomeKind = iota
	FatalContact
)

// Outcome records one entity resolved against the player this tick.
type Outcome struct {
	Kind     OutcomeKind
	EntityID uint64
}

// EntityField owns every live falling entity.
type EntityField struct {
	entities []Entity
	size     float64
	nextID   uint64
}

// NewEntityField creates an empty field whose entities have the given size.
func NewEntityField(size float64) *EntityField {
	return &EntityField{
		entities: make([]Entity, 0, 16),
		size:     size,
	}
}

// Spawn adds one entity at the top of the viewport. The kind is a Bernoulli
// draw against hazardProbability and X is uniform over [0, viewportW).
func (f *EntityField) Spawn(viewportW, hazardProbability float64, rng *rand.Rand) Entity {
	kind := Collectible
	if rng.Float64() < hazardProbability {
		kind = Hazard
	}
	x := rng.Float64() * viewportW
	return f.Insert(kind, x, 0)
}

// Insert adds an entity at an explicit position.
func (f *EntityField) Insert(kind Kind, x, y float64) Entity {
	f.nextID++
	e := Entity{ID: f.nextID, X: x, Y: y, Kind: kind, Size: f.size}
	f.entities = append(f.entities, e)
	return e
}

// Advance moves every entity down by its kind's speed.
func (f *EntityField) Advance(collectibleSpeed, hazardSpeed float64) {
	for i := range f.entities {
		if f.entities[i].Kind == Hazard {
			f.entities[i].Y += hazardSpeed
		} else {
			f.entities[i].Y += collectibleSpeed
		}
	}
}

// ResolveCollisions removes every entity that reached the player from above
// and returns one outcome per removed entity, in field order.
//
// Overlap alone is not enough: the entity's top edge must still be above the
// player's top edge. Entities grazing the side low down or passing through
// the bottom are left alone.
func (f *EntityField) ResolveCollisions(hitbox core.Box) []Outcome {
	var outcomes []Outcome
	kept := f.entities[:0]
	for _, e := range f.entities {
		b := e.Box()
		if b.Overlaps(hitbox) && b.Top() < hitbox.Top() {
			kind := Caught
			if e.Kind == Hazard {
				kind = FatalContact
			}
			outcomes = append(outcomes, Outcome{Kind: kind, EntityID: e.ID})
			continue
		}
		kept = append(kept, e)
	}
	f.entities = kept
	return outcomes
}

// Reap removes entities whose top edge has passed the viewport bottom and
// returns how many were removed.
func (f *EntityField) Reap(viewportH float64) int {
	kept := f.entities[:0]
	for _, e := range f.entities {
		if e.Box().Top() <= viewportH {
			kept = append(kept, e)
		}
	}
	reaped := len(f.entities) - len(kept)
	f.entities = kept
	return reaped
}

// Clear removes every entity.
func (f *EntityField) Clear() {
	f.entities = f.entities[:0]
}

// Len returns the number of live entities.
func (f *EntityField) Len() int {
	return len(f.entities)
}

// Entities returns a snapshot of the live entities.
func (f *EntityField) Entities() []Entity {
	out := make([]Entity, len(f.entities))
	copy(out, f.entities)
	return out
}
