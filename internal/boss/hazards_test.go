package boss

import (
	"testing"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

// rawDamageWorld disables the player's invulnerability window so every
// hazard application is visible in DamageTaken.
func rawDamageWorld() *world.World {
	bal := balance.NewProvider()
	bal.Set("player.hurt_cooldown", 0)
	return newTestWorld(bal)
}

func TestDamageZoneTimeline(t *testing.T) {
	w := rawDamageWorld()
	const dt = float32(0.25)

	zones := []DamageZone{{
		Pos:          w.Player.Pos,
		R:            60,
		MaxLifetime:  4,
		Warning:      1,
		TickDamage:   5,
		PopDamage:    25,
		PopThreshold: 0.5,
	}}

	// telegraph window: standing inside costs nothing
	for range 3 {
		zones = updateDamageZones(zones, w, dt)
	}
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("damage during the warning window: %.1f", w.Stats.DamageTaken)
	}

	// first active tick at lifetime 1.0
	zones = updateDamageZones(zones, w, dt)
	if !approxEqual(w.Stats.DamageTaken, 5) {
		t.Fatalf("first active tick: got %.1f want %.1f", w.Stats.DamageTaken, 5.0)
	}

	// walk to lifetime 3.5: ticks continue, then the pop fires once
	for range 10 {
		zones = updateDamageZones(zones, w, dt)
	}
	if !approxEqual(w.Stats.DamageTaken, 80) {
		t.Fatalf("after pop: got %.1f want %.1f", w.Stats.DamageTaken, 80.0)
	}
	if len(w.Bursts) != 1 {
		t.Fatalf("pop should fire exactly once: %d bursts", len(w.Bursts))
	}

	// one more tick, no second pop
	zones = updateDamageZones(zones, w, dt)
	if !approxEqual(w.Stats.DamageTaken, 85) {
		t.Fatalf("tick after pop: got %.1f want %.1f", w.Stats.DamageTaken, 85.0)
	}
	if len(w.Bursts) != 1 {
		t.Fatalf("second pop fired: %d bursts", len(w.Bursts))
	}

	// lifetime 4.0: the zone expires without a final tick
	zones = updateDamageZones(zones, w, dt)
	if len(zones) != 0 {
		t.Fatalf("zone should expire: %d left", len(zones))
	}
	if !approxEqual(w.Stats.DamageTaken, 85) {
		t.Fatalf("expiry dealt damage: got %.1f", w.Stats.DamageTaken)
	}
}

func TestDamageZonePopsWithoutContact(t *testing.T) {
	w := rawDamageWorld()

	zones := []DamageZone{{
		Pos:          world.Vec2{X: 100, Y: 100}, // far from the player
		R:            60,
		MaxLifetime:  4,
		Warning:      1,
		TickDamage:   5,
		PopDamage:    25,
		PopThreshold: 0.5,
	}}

	for range 15 {
		zones = updateDamageZones(zones, w, 0.25)
	}
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("zone out of reach dealt damage: %.1f", w.Stats.DamageTaken)
	}
	if len(w.Bursts) != 1 {
		t.Fatalf("pop should fire even when nobody is inside: %d bursts", len(w.Bursts))
	}
}

func TestDamageZonePopSurvivesLargeStep(t *testing.T) {
	w := rawDamageWorld()

	zones := []DamageZone{{
		Pos:          w.Player.Pos,
		R:            60,
		MaxLifetime:  4,
		Warning:      1,
		TickDamage:   5,
		PopDamage:    25,
		PopThreshold: 0.5,
	}}

	// walk to lifetime 3.4, just short of the pop window
	for range 17 {
		zones = updateDamageZones(zones, w, 0.2)
	}
	if len(w.Bursts) != 0 {
		t.Fatalf("pop fired before its window: %d bursts", len(w.Bursts))
	}
	ticked := w.Stats.DamageTaken

	// one oversized step jumps past the pop window and expiry together
	zones = updateDamageZones(zones, w, 0.7)
	if len(zones) != 0 {
		t.Fatalf("zone should expire: %d left", len(zones))
	}
	if len(w.Bursts) != 1 {
		t.Fatalf("pop should fire exactly once: %d bursts", len(w.Bursts))
	}
	if !approxEqual(w.Stats.DamageTaken, ticked+25) {
		t.Fatalf("expiring step: got %.1f want %.1f", w.Stats.DamageTaken, ticked+25)
	}
}

func TestBeamWarmup(t *testing.T) {
	w := rawDamageWorld()
	origin := world.Vec2{X: w.Player.Pos.X - 100, Y: w.Player.Pos.Y}

	beams := []Beam{{
		Angle:     0,
		Length:    300,
		HalfWidth: 10,
		Damage:    7,
		Warmup:    1,
	}}

	updateBeams(beams, origin, w, 0.5)
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("beam dealt damage during warmup: %.1f", w.Stats.DamageTaken)
	}

	updateBeams(beams, origin, w, 0.6)
	if !approxEqual(w.Stats.DamageTaken, 7) {
		t.Fatalf("active beam: got %.1f want %.1f", w.Stats.DamageTaken, 7.0)
	}
}

func TestVoidZoneWindow(t *testing.T) {
	w := rawDamageWorld()

	voids := []VoidZone{{
		Pos:         w.Player.Pos,
		R:           70,
		WarningTime: 1,
		ActiveTime:  1,
		Damage:      15,
	}}

	voids = updateVoidZones(voids, w, 0.6)
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("void dealt damage while telegraphing: %.1f", w.Stats.DamageTaken)
	}

	voids = updateVoidZones(voids, w, 0.6)
	if !approxEqual(w.Stats.DamageTaken, 15) {
		t.Fatalf("active void: got %.1f want %.1f", w.Stats.DamageTaken, 15.0)
	}

	voids = updateVoidZones(voids, w, 1.0)
	if len(voids) != 0 {
		t.Fatalf("void should expire: %d left", len(voids))
	}
}

func TestRiftSpansBothSidesOfCenter(t *testing.T) {
	w := rawDamageWorld()
	center := w.ArenaCenter

	rifts := []Rift{{Angle: 0, Length: 300, HalfWidth: 10, Damage: 18}}

	// positive arm
	w.Player.Pos = world.Vec2{X: center.X + 200, Y: center.Y + 5}
	updateRifts(rifts, center, w, 0)
	if !approxEqual(w.Stats.DamageTaken, 18) {
		t.Fatalf("positive arm: got %.1f want %.1f", w.Stats.DamageTaken, 18.0)
	}

	// negative arm
	w.Player.Pos = world.Vec2{X: center.X - 200, Y: center.Y - 5}
	updateRifts(rifts, center, w, 0)
	if !approxEqual(w.Stats.DamageTaken, 36) {
		t.Fatalf("negative arm: got %.1f want %.1f", w.Stats.DamageTaken, 36.0)
	}

	// clear of the line
	w.Player.Pos = world.Vec2{X: center.X + 200, Y: center.Y + 120}
	updateRifts(rifts, center, w, 0)
	if !approxEqual(w.Stats.DamageTaken, 36) {
		t.Fatalf("off the line: got %.1f want %.1f", w.Stats.DamageTaken, 36.0)
	}
}

func TestRiftWarmupDelaysDamage(t *testing.T) {
	w := rawDamageWorld()
	center := w.ArenaCenter
	w.Player.Pos = world.Vec2{X: center.X + 200, Y: center.Y}

	rifts := []Rift{{Angle: 0, Length: 300, HalfWidth: 10, Damage: 18, Warmup: 1}}

	// on the line, but still telegraphing
	updateRifts(rifts, center, w, 0.5)
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("rift dealt damage during warmup: %.1f", w.Stats.DamageTaken)
	}

	updateRifts(rifts, center, w, 0.6)
	if !approxEqual(w.Stats.DamageTaken, 18) {
		t.Fatalf("active rift: got %.1f want %.1f", w.Stats.DamageTaken, 18.0)
	}
}

func TestGravityWellPullsWithoutDamage(t *testing.T) {
	w := rawDamageWorld()
	wellPos := w.Player.Pos.Add(world.Vec2{X: 100})

	wells := []GravityWell{{Pos: wellPos, R: 200, Pull: 100, Life: 10}}

	before := geom.Dist(w.Player.Pos, wellPos)
	wells = updateGravityWells(wells, w, 0.5)
	after := geom.Dist(w.Player.Pos, wellPos)

	if after >= before {
		t.Fatalf("well should pull the player in: before %.1f after %.1f", before, after)
	}
	if w.Stats.DamageTaken != 0 {
		t.Fatalf("well dealt damage: %.1f", w.Stats.DamageTaken)
	}
	if len(wells) != 1 {
		t.Fatalf("well expired early: %d left", len(wells))
	}

	// expiry
	wells = updateGravityWells(wells, w, 20)
	if len(wells) != 0 {
		t.Fatalf("well should expire: %d left", len(wells))
	}
}

func TestForceFieldPushAndPull(t *testing.T) {
	w := rawDamageWorld()
	fieldPos := w.Player.Pos.Add(world.Vec2{X: 50})

	push := []ForceField{{Pos: fieldPos, R: 200, Strength: 100, Duration: 5}}
	before := geom.Dist(w.Player.Pos, fieldPos)
	updateForceFields(push, w, 0.5)
	if after := geom.Dist(w.Player.Pos, fieldPos); after <= before {
		t.Fatalf("positive field should push: before %.1f after %.1f", before, after)
	}

	pull := []ForceField{{Pos: fieldPos, R: 400, Strength: -100, Duration: 5}}
	before = geom.Dist(w.Player.Pos, fieldPos)
	updateForceFields(pull, w, 0.5)
	if after := geom.Dist(w.Player.Pos, fieldPos); after >= before {
		t.Fatalf("negative field should pull: before %.1f after %.1f", before, after)
	}
}

func TestContactClockCooldown(t *testing.T) {
	w := rawDamageWorld()

	var c contactClock
	if !c.touch(w, w.Player.Pos, 10, 5) {
		t.Fatal("first touch should land")
	}
	if c.touch(w, w.Player.Pos, 10, 5) {
		t.Fatal("touch during the contact cooldown should not land")
	}

	c.tick(1)
	if !c.touch(w, w.Player.Pos, 10, 5) {
		t.Fatal("touch after the cooldown should land")
	}
	if !approxEqual(w.Stats.DamageTaken, 10) {
		t.Fatalf("landed touches: got %.1f want %.1f", w.Stats.DamageTaken, 10.0)
	}
}
