package entity

import (
	"math/rand"

	"github.com/samdwyer/snek/internal/world"
)

// Food is the pellet the snake eats.
// Placement ignores the snake, so food may land on a tail segment.
type Food struct {
	Position world.Cell
	rng      *rand.Rand
}

// NewFood places food using rng, which is kept for later respawns.
func NewFood(rng *rand.Rand) *Food {
	f := &Food{rng: rng}
	f.Respawn()
	return f
}

// Respawn moves the food to a new random cell in [0,FoodSpan) x [0,FoodSpan).
// The new cell may equal the old one.
func (f *Food) Respawn() {
	x := f.rng.Intn(world.FoodSpan)
	y := f.rng.Intn(world.FoodSpan)
	f.Position = world.NewCell(x, y)
}
