package boss

import (
	"testing"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

func pylonIDs(w *world.World) []int {
	var ids []int
	for i := range w.Enemies {
		if w.Enemies[i].Kind == world.EnemyPylon {
			ids = append(ids, w.Enemies[i].ID)
		}
	}
	return ids
}

func TestMainframePylonGate(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindMainframe).(*Mainframe)
	const dt = float32(0.05)

	// burst to 10%: phase 2 entry raises the shield and the pylon ring
	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.1
	s.Update(w, dt)

	b = w.FindEnemy(s.BossID())
	if got := s.RenderData().Phase; got != 2 {
		t.Fatalf("gated phase: got %d want 2", got)
	}
	if !b.Invulnerable {
		t.Fatal("phase 2 entry should raise the shield")
	}

	ids := pylonIDs(w)
	want := w.Bal.I("boss.mainframe.pylon_count", 4)
	if len(ids) != want {
		t.Fatalf("pylon ring: got %d want %d", len(ids), want)
	}

	// shielded boss shrugs off direct damage
	if w.DamageEnemy(s.BossID(), 100) {
		t.Fatal("shielded boss took damage")
	}

	// three down is not enough
	for _, id := range ids[:len(ids)-1] {
		w.FindEnemy(id).HP = 0
	}
	s.Update(w, dt)
	if down, total := s.DestroyedPylons(); down != total-1 {
		t.Fatalf("pylon progress: got %d/%d", down, total)
	}
	if got := s.RenderData().Phase; got != 2 {
		t.Fatalf("gate released early: phase %d", got)
	}
	if !w.FindEnemy(s.BossID()).Invulnerable {
		t.Fatal("shield dropped before the last pylon")
	}

	// the last pylon drops the shield and releases the gate on one update
	w.FindEnemy(ids[len(ids)-1]).HP = 0
	s.Update(w, dt)
	if w.FindEnemy(s.BossID()).Invulnerable {
		t.Fatal("shield should drop with the last pylon")
	}
	if got := s.RenderData().Phase; got != 3 {
		t.Fatalf("phase after gate release: got %d want 3", got)
	}
	if len(s.RenderData().Rifts) == 0 {
		t.Fatal("phase 3 entry should anchor rifts")
	}
}

func TestMainframeExposedModeHoldsPhaseTwo(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindMainframe).(*Mainframe)
	const dt = float32(0.05)

	// 60% health: phase 2 is also the health target, so the boss stays
	// there after the pylons fall
	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.6
	s.Update(w, dt)

	if got := s.RenderData().Mode; got != "shielded" {
		t.Fatalf("mode with pylons up: got %q want %q", got, "shielded")
	}

	for _, id := range pylonIDs(w) {
		w.FindEnemy(id).HP = 0
	}
	s.Update(w, dt)

	rd := s.RenderData()
	if rd.Phase != 2 {
		t.Fatalf("phase should hold at its health target: got %d", rd.Phase)
	}
	if rd.Mode != "exposed" {
		t.Fatalf("mode with pylons down: got %q want %q", rd.Mode, "exposed")
	}
	if w.FindEnemy(s.BossID()).Invulnerable {
		t.Fatal("boss should be damageable once exposed")
	}
}

func TestMainframeZeroPylonsSkipsTheGate(t *testing.T) {
	bal := balance.NewProvider()
	bal.Set("boss.mainframe.pylon_count", 0)
	w := newTestWorld(bal)
	s := Spawn(w, KindMainframe).(*Mainframe)
	const dt = float32(0.05)

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.6
	s.Update(w, dt)

	if got := s.RenderData().Phase; got != 2 {
		t.Fatalf("phase: got %d want 2", got)
	}
	if len(pylonIDs(w)) != 0 {
		t.Fatalf("pylons spawned with a zero count: %d", len(pylonIDs(w)))
	}
	if w.FindEnemy(s.BossID()).Invulnerable {
		t.Fatal("shield raised with no pylons to bring it down")
	}
	if !w.DamageEnemy(s.BossID(), 50) {
		t.Fatal("boss should stay damageable without a pylon gate")
	}

	// the health gate releases normally
	b = w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.1
	s.Update(w, dt)
	if got := s.RenderData().Phase; got != 3 {
		t.Fatalf("phase after release: got %d want 3", got)
	}
}

func TestMainframeSafeZoneShrinks(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindMainframe).(*Mainframe)
	const dt = float32(0.05)

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.1

	s.Update(w, dt) // phase 2
	for _, id := range pylonIDs(w) {
		w.FindEnemy(id).HP = 0
	}
	s.Update(w, dt) // phase 3

	// stand far outside the coming safe zone, with a fresh hurt window
	w.Player.Pos = world.Vec2{X: 50, Y: 50}
	w.Player.HurtTimer = 0
	before := w.Stats.DamageTaken

	s.Update(w, dt) // phase 4: safe zone appears and bites
	rd := s.RenderData()
	if rd.Phase != 4 {
		t.Fatalf("phase: got %d want 4", rd.Phase)
	}
	if rd.SafeRadius <= 0 {
		t.Fatal("phase 4 should expose a safe radius")
	}
	if w.Stats.DamageTaken <= before {
		t.Fatal("standing outside the safe zone should hurt")
	}

	// the radius keeps shrinking down to its floor
	first := rd.SafeRadius
	s.Update(w, dt)
	if got := s.RenderData().SafeRadius; got >= first {
		t.Fatalf("safe radius should shrink: %.2f -> %.2f", first, got)
	}
}
