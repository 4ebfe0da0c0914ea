package jobs

import (
	"testing"
	"time"
)

func TestComputeIntents(t *testing.T) {
	req := IntentRequest{
		Tick:    42,
		PlayerX: 10,
		PlayerY: 0,
		Minions: []MinionSnapshot{
			{MinionID: 1, Role: RoleDrone, X: 0, Y: 0, Radius: 9},
			{MinionID: 2, Role: RoleStinger, X: 10, Y: 40, Radius: 7},
		},
	}

	got := ComputeIntents(req)

	if got.Tick != 42 {
		t.Fatalf("tick mismatch: got %d want %d", got.Tick, 42)
	}
	if len(got.Intents) != 2 {
		t.Fatalf("intent length mismatch: got %d want %d", len(got.Intents), 2)
	}

	i0 := got.Intents[0]
	if i0.MinionID != 1 || !almostEq(i0.MoveX, 1) || !almostEq(i0.MoveY, 0) {
		t.Fatalf("unexpected drone intent: %+v", i0)
	}
	if i0.Mode != IntentModePressure {
		t.Fatalf("unexpected drone mode: got %d want %d", i0.Mode, IntentModePressure)
	}
	if !almostEq(i0.SpeedScale, 1) {
		t.Fatalf("unexpected drone speed scale: got %.2f", i0.SpeedScale)
	}

	// 40 units from the player is well inside the stinger band, so it flees
	i1 := got.Intents[1]
	if i1.MinionID != 2 {
		t.Fatalf("unexpected stinger intent: %+v", i1)
	}
	if i1.Mode != IntentModeKite {
		t.Fatalf("unexpected stinger mode: got %d want %d", i1.Mode, IntentModeKite)
	}
	if !almostEq(i1.SpeedScale, 1.2) {
		t.Fatalf("unexpected stinger speed scale: got %.2f", i1.SpeedScale)
	}
	if i1.MoveY <= 0 {
		t.Fatalf("stinger should flee away from the player, got (%.3f, %.3f)", i1.MoveX, i1.MoveY)
	}
}

func TestComputeIntentsStingerBand(t *testing.T) {
	req := IntentRequest{
		PlayerX: 0,
		PlayerY: 0,
		Minions: []MinionSnapshot{
			// exactly at preferred range: strafe, not approach or flee
			{MinionID: 1, Role: RoleStinger, X: stingerRange, Y: 0},
			// far outside the band: approach
			{MinionID: 2, Role: RoleStinger, X: stingerRange * 2, Y: 0},
		},
	}

	got := ComputeIntents(req)

	strafe := got.Intents[0]
	if !almostEq(strafe.MoveX, 0) || almostEq(strafe.MoveY, 0) {
		t.Fatalf("in-band stinger should strafe, got (%.3f, %.3f)", strafe.MoveX, strafe.MoveY)
	}
	if !almostEq(strafe.SpeedScale, 0.7) {
		t.Fatalf("strafe speed scale: got %.2f want %.2f", strafe.SpeedScale, 0.7)
	}

	approach := got.Intents[1]
	if !almostEq(approach.MoveX, -1) || !almostEq(approach.MoveY, 0) {
		t.Fatalf("distant stinger should approach, got (%.3f, %.3f)", approach.MoveX, approach.MoveY)
	}
}

func TestIntentPoolDeliversResults(t *testing.T) {
	pool := NewIntentPool(2, 8)
	defer pool.Close()

	req := IntentRequest{
		Tick:    7,
		PlayerX: 8,
		PlayerY: -2,
		Minions: []MinionSnapshot{
			{MinionID: 5, Role: RoleDrone, X: 1, Y: -2, Radius: 14},
		},
	}

	pool.Req <- req

	select {
	case res := <-pool.Res:
		if res.Tick != 7 {
			t.Fatalf("tick mismatch: got %d want %d", res.Tick, 7)
		}
		if len(res.Intents) != 1 {
			t.Fatalf("intent length mismatch: got %d want %d", len(res.Intents), 1)
		}
		if res.Intents[0].MinionID != 5 {
			t.Fatalf("minion id mismatch: got %d want %d", res.Intents[0].MinionID, 5)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for intent result")
	}
}

func TestIntentPoolCloseIdempotent(t *testing.T) {
	pool := NewIntentPool(1, 1)
	pool.Close()
	pool.Close()
}

func almostEq(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
