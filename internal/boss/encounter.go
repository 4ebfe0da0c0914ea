package boss

import "github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"

// Encounter ties one boss controller to a world for the duration of a
// fight. The host loop calls Tick once per fixed step; the controller runs
// after the general simulation so it sees finalized positions, and is
// dropped wholesale when the encounter ends.
type Encounter struct {
	World      *world.World
	Controller Controller
}

func NewEncounter(w *world.World, kind Kind) *Encounter {
	return &Encounter{
		World:      w,
		Controller: Spawn(w, kind),
	}
}

func (e *Encounter) Tick(dt float32) {
	e.World.Tick(dt)
	if e.World.GameOver || e.World.Paused {
		return
	}
	e.Controller.Update(e.World, dt)
}

// Over reports whether the encounter has resolved either way.
func (e *Encounter) Over() bool {
	return e.World.GameOver || e.World.Victory
}
