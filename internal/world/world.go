package world

import (
	"math/rand"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/jobs"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/shared/input"
)

func NewWorld(w, h float32, bal *balance.Provider) *World {
	if bal == nil {
		bal = balance.NewProvider()
	}
	pl := Player{
		Pos:   Vec2{X: w / 2, Y: h * 0.8},
		Speed: bal.F("player.speed", 260),
		R:     bal.F("player.radius", 10),

		MaxHP:        bal.F("player.max_hp", 100),
		HP:           bal.F("player.max_hp", 100),
		HurtCooldown: bal.F("player.hurt_cooldown", 0.8),
	}
	wd := &World{
		W: w, H: h,
		ArenaCenter: Vec2{X: w / 2, Y: h / 2},
		Bal:         bal,

		Player:      pl,
		Enemies:     make([]Enemy, 0, 64),
		Projectiles: make([]Projectile, 0, 128),

		rng:     rand.New(rand.NewSource(1)),
		rngSeed: 1,
	}
	wd.placeObstacles()
	return wd
}

func (w *World) Reset() {
	bal := w.Bal
	pool := w.aiPool
	*w = *NewWorld(w.W, w.H, bal)
	w.aiPool = pool
	if pool != nil {
		w.aiPendingRequests = make(map[uint64]jobs.IntentRequest, 8)
		w.aiReadyResults = make(map[uint64]jobs.IntentResult, 8)
	}
}

func (w *World) Close() {
	if w.aiPool != nil {
		w.aiPool.Close()
		w.aiPool = nil
	}
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

// Tick advances the general simulation by dt. Boss controllers are not
// ticked here: the encounter session runs them right after Tick so each
// controller sees finalized world positions and stays the only writer to
// its own hazard state.
func (w *World) Tick(dt float32) {
	for _, m := range w.inbox {
		switch msg := m.(type) {
		case MsgInput:
			if !w.GameOver && !w.Paused {
				w.applyInput(dt, msg.Input)
			}
		case MsgRestart:
			if w.GameOver || w.Paused {
				w.Reset()
			}
		case MsgTogglePause:
			if !w.GameOver {
				w.Paused = !w.Paused
			}
		}
	}
	w.inbox = w.inbox[:0]

	if w.GameOver || w.Paused {
		return
	}

	w.Time += dt
	w.TimeSurvived += dt
	w.Bursts = w.Bursts[:0]

	if w.Player.HurtTimer > 0 {
		w.Player.HurtTimer -= dt
		if w.Player.HurtTimer < 0 {
			w.Player.HurtTimer = 0
		}
	}

	w.updateMinions(dt)
	w.updateProjectiles(dt)
	w.updateContactDamage()
	w.sweepDead()
}

func (w *World) applyInput(dt float32, in input.State) {
	var dir Vec2
	if in.Up {
		dir.Y -= 1
	}
	if in.Down {
		dir.Y += 1
	}
	if in.Left {
		dir.X -= 1
	}
	if in.Right {
		dir.X += 1
	}

	w.Player.Moving = dir.X != 0 || dir.Y != 0
	if !w.Player.Moving {
		return
	}

	prev := w.Player.Pos
	dir = dir.Norm()
	w.Player.Pos = w.Player.Pos.Add(dir.Mul(w.Player.Speed * dt))
	w.Player.Pos = w.ClampToArena(w.Player.Pos, w.Player.R)
	w.Player.Pos = w.ResolveObstacles(w.Player.Pos, prev, w.Player.R)
}

// HurtPlayer is the single damage entry point for everything that can hit
// the player. It respects the post-hit invulnerability window, so hazard
// types never need their own invulnerability logic.
func (w *World) HurtPlayer(dmg float32) bool {
	if dmg <= 0 || w.GameOver {
		return false
	}
	if w.Player.HurtTimer > 0 {
		return false
	}
	w.Player.HP -= dmg
	w.Stats.DamageTaken += dmg
	w.Player.HurtTimer = w.Player.HurtCooldown
	if w.Player.HP <= 0 {
		w.Player.HP = 0
		w.GameOver = true
	}
	return true
}

// DamageEnemy routes damage through the shared enemy pipeline. Pylons and
// bosses live in the same slice as every other enemy, so kill credit and
// death effects need no special cases.
func (w *World) DamageEnemy(id int, dmg float32) bool {
	e := w.FindEnemy(id)
	if e == nil || dmg <= 0 {
		return false
	}
	if e.Invulnerable {
		e.HitT = 0.1
		return false
	}
	e.HP -= dmg
	e.HitT = 0.1
	w.Stats.DamageDealt += dmg
	return true
}

func (w *World) FindEnemy(id int) *Enemy {
	for i := range w.Enemies {
		if w.Enemies[i].ID == id {
			return &w.Enemies[i]
		}
	}
	return nil
}

// AddEnemy assigns an ID and appends to the shared enemy population.
func (w *World) AddEnemy(e Enemy) int {
	e.ID = w.nextEnemyID
	w.nextEnemyID++
	w.Enemies = append(w.Enemies, e)
	w.Stats.EnemiesSpawned++
	return e.ID
}

func (w *World) AddProjectile(p Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

func (w *World) LiveMinionCount() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Kind.IsMinion() {
			n++
		}
	}
	return n
}

func (w *World) ClampToArena(pos Vec2, r float32) Vec2 {
	pos.X = geom.Clamp(pos.X, r, w.W-r)
	pos.Y = geom.Clamp(pos.Y, r, w.H-r)
	return pos
}

// ResolveObstacles rejects a move into an obstacle by restoring the
// previous position. Cheap but stable for the step sizes in play.
func (w *World) ResolveObstacles(pos, prev Vec2, r float32) Vec2 {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if geom.CircleRectOverlap(pos, r, o.Pos, o.W, o.H) {
			return prev
		}
	}
	return pos
}

// DamageObstacle chips a destructible obstacle, removing it at zero health
// with a particle burst hook for the renderer.
func (w *World) DamageObstacle(idx int, dmg float32) {
	if idx < 0 || idx >= len(w.Obstacles) {
		return
	}
	o := &w.Obstacles[idx]
	if !o.Destructible {
		return
	}
	o.HP -= dmg
	if o.HP > 0 {
		return
	}
	w.Bursts = append(w.Bursts, Burst{
		Pos:   Vec2{X: o.Pos.X + o.W/2, Y: o.Pos.Y + o.H/2},
		Count: 12,
	})
	last := len(w.Obstacles) - 1
	if idx != last {
		w.Obstacles[idx] = w.Obstacles[last]
	}
	w.Obstacles = w.Obstacles[:last]
}
