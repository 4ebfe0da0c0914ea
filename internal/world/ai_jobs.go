package world

import (
	"runtime"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/jobs"
)

type minionMoveIntent struct {
	Dir        Vec2
	SpeedScale float32
	Mode       jobs.IntentMode
}

func newAIPool() *jobs.IntentPool {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	if workers > 4 {
		workers = 4
	}

	return jobs.NewIntentPool(workers, 16)
}

// EnableAIPool turns on off-thread intent computation. Without it every
// tick uses the synchronous fallback, which keeps headless tests and
// replays single-threaded.
func (w *World) EnableAIPool() {
	if w.aiPool == nil {
		w.aiPool = newAIPool()
	}
	if w.aiPendingRequests == nil {
		w.aiPendingRequests = make(map[uint64]jobs.IntentRequest, 8)
	}
	if w.aiReadyResults == nil {
		w.aiReadyResults = make(map[uint64]jobs.IntentResult, 8)
	}
}

func (w *World) drainAIResults() {
	if w.aiPool == nil {
		return
	}

	for {
		select {
		case res := <-w.aiPool.Res:
			// Drop stale results older than the previous tick window.
			if res.Tick+1 < w.aiTick {
				continue
			}
			w.aiReadyResults[res.Tick] = res
		default:
			return
		}
	}
}

func (w *World) consumeAIIntentsForTick(tick uint64) map[int]minionMoveIntent {
	if res, ok := w.aiReadyResults[tick]; ok {
		delete(w.aiReadyResults, tick)
		delete(w.aiPendingRequests, tick)
		return intentsFromResult(res)
	}

	// Deterministic fallback: compute synchronously from the exact
	// snapshot submitted for this tick if workers were late.
	if req, ok := w.aiPendingRequests[tick]; ok {
		delete(w.aiPendingRequests, tick)
		return intentsFromResult(jobs.ComputeIntents(req))
	}

	return nil
}

func (w *World) submitAIJob(tick uint64) {
	minions := 0
	for i := range w.Enemies {
		if w.Enemies[i].Kind.IsMinion() {
			minions++
		}
	}
	if minions == 0 {
		return
	}

	req := jobs.IntentRequest{
		Tick:    tick,
		PlayerX: w.Player.Pos.X,
		PlayerY: w.Player.Pos.Y,
		Minions: make([]jobs.MinionSnapshot, 0, minions),
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Kind.IsMinion() {
			continue
		}
		req.Minions = append(req.Minions, jobs.MinionSnapshot{
			MinionID: e.ID,
			Role:     roleFromEnemyKind(e.Kind),
			X:        e.Pos.X,
			Y:        e.Pos.Y,
			Radius:   e.R,
		})
	}

	if w.aiPendingRequests == nil {
		w.aiPendingRequests = make(map[uint64]jobs.IntentRequest, 8)
	}
	w.aiPendingRequests[tick] = req

	if w.aiPool != nil {
		select {
		case w.aiPool.Req <- req:
		default:
			// Queue full: synchronous fallback at consume time handles it.
		}
	}

	w.pruneAIState(tick)
}

func (w *World) pruneAIState(currentTick uint64) {
	if currentTick <= 8 {
		return
	}

	cutoff := currentTick - 8
	for tick := range w.aiPendingRequests {
		if tick < cutoff {
			delete(w.aiPendingRequests, tick)
		}
	}
	for tick := range w.aiReadyResults {
		if tick < cutoff {
			delete(w.aiReadyResults, tick)
		}
	}
}

func intentsFromResult(res jobs.IntentResult) map[int]minionMoveIntent {
	if len(res.Intents) == 0 {
		return nil
	}

	out := make(map[int]minionMoveIntent, len(res.Intents))
	for _, in := range res.Intents {
		out[in.MinionID] = minionMoveIntent{
			Dir:        Vec2{X: in.MoveX, Y: in.MoveY},
			SpeedScale: in.SpeedScale,
			Mode:       in.Mode,
		}
	}
	return out
}

func roleFromEnemyKind(kind EnemyKind) jobs.MinionRole {
	if kind == EnemyStinger {
		return jobs.RoleStinger
	}
	return jobs.RoleDrone
}
