package world

import (
	"math/rand"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/jobs"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/shared/input"
)

type World struct {
	W, H float32

	// ArenaCenter is fixed at creation; later-phase hazards (rifts, the
	// shrinking safe zone, the floor grid) anchor to it.
	ArenaCenter Vec2

	// Time is simulation time in seconds, advanced only by Tick.
	Time float32

	inbox []Msg

	Bal *balance.Provider

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Obstacles   []Obstacle

	// Bursts holds presentation hooks (particle positions) produced this
	// tick. The renderer drains it; the core only appends.
	Bursts []Burst

	rng      *rand.Rand
	rngSeed  int64
	rngCalls uint64

	TimeSurvived float32
	GameOver     bool
	Victory      bool
	Paused       bool

	Stats Stats

	// minion movement intents worker-pool pipeline
	aiPool            *jobs.IntentPool
	aiTick            uint64
	aiPendingRequests map[uint64]jobs.IntentRequest
	aiReadyResults    map[uint64]jobs.IntentResult

	nextEnemyID int
}

type Player struct {
	Pos   Vec2
	Speed float32
	R     float32

	HP    float32
	MaxHP float32

	// HurtTimer is the invulnerability window after taking damage. All
	// damage funnels through HurtPlayer, which refuses hits while it runs.
	HurtCooldown float32
	HurtTimer    float32

	Moving bool
}

type Enemy struct {
	ID int

	Pos Vec2
	Vel Vec2

	Speed float32
	R     float32

	HP    float32
	MaxHP float32
	HitT  float32 // hit flash timer (seconds)

	TouchDamage float32

	Kind EnemyKind

	// ShotTimer drives the ranged minions' periodic shots.
	ShotTimer float32

	// Invulnerable gates DamageEnemy; the mainframe boss raises it while
	// its pylons stand.
	Invulnerable bool
}

type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	R      float32
	Damage float32
	Life   float32

	// FromEnemy projectiles hit the player; the rest hit enemies. Both
	// move and expire identically.
	FromEnemy bool

	// Homing projectiles steer toward the player at TurnRate rad/s.
	Homing   bool
	TurnRate float32
}

type Obstacle struct {
	Pos  Vec2 // top-left corner
	W, H float32

	Destructible bool
	HP           float32
}

type Burst struct {
	Pos   Vec2
	Count int
}

type MsgInput struct{ Input input.State }

type Stats struct {
	EnemiesSpawned int
	EnemiesKilled  int
	DamageTaken    float32
	DamageDealt    float32
}
