package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/assets"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/boss"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/telemetry"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

type Game struct {
	enc *boss.Encounter

	kind boss.Kind

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	loader *assets.Loader
	assets *AssetManager

	telemetry *telemetry.Sink

	// cumulative stat baselines (for delta events)
	lastTaken float32
	lastDealt float32
	lastPhase int
}

func New(kind boss.Kind, bal *balance.Provider) *Game {
	w := world.NewWorld(1280, 960, bal)
	w.EnableAIPool()

	g := &Game{
		enc:       boss.NewEncounter(w, kind),
		kind:      kind,
		last:      time.Now(),
		fixedStep: time.Second / 60,
		lastPhase: 1,
	}
	g.loader = assets.NewLoader()
	g.assets = NewAssetManager(g.loader)
	g.telemetry = telemetry.NewSink()

	g.assets.Request("player", "assets/player.webp")
	g.assets.Request("boss_"+kind.String(), "assets/boss_"+kind.String()+".webp")
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.assets.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > 250*time.Millisecond {
		frameDt = 250 * time.Millisecond
	}
	g.sendTelemetry(telemetry.Event{
		Kind: "frame",
		F:    float32(frameDt.Seconds()),
		At:   now,
	})

	g.accum += frameDt

	in := ReadInput()
	w := g.enc.World

	if ReadRestart() {
		g.restartEncounter()
	}
	if ReadPaused() {
		w.Enqueue(world.MsgTogglePause{})
	}

	for g.accum >= g.fixedStep {
		w.Enqueue(world.MsgInput{Input: in})
		g.enc.Tick(float32(g.fixedStep.Seconds()))
		g.accum -= g.fixedStep
	}
	g.emitWorldDeltas(now)

	return nil
}

// restartEncounter resets the world and rebuilds the controller together:
// controller state never survives the encounter it belongs to, and the new
// boss record has to land in the already-reset enemy population.
func (g *Game) restartEncounter() {
	w := g.enc.World
	if !w.GameOver && !w.Paused && !w.Victory {
		return
	}
	w.Reset()
	g.enc = boss.NewEncounter(w, g.kind)
	g.lastTaken = 0
	g.lastDealt = 0
	g.lastPhase = 1
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return outsideW, outsideH
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
	if g.enc != nil {
		g.enc.World.Close()
		g.enc = nil
	}
}

func (g *Game) emitWorldDeltas(at time.Time) {
	stats := g.enc.World.Stats

	if stats.DamageTaken < g.lastTaken {
		g.lastTaken = stats.DamageTaken
	} else if delta := stats.DamageTaken - g.lastTaken; delta > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "player_damage", F: delta, At: at})
		g.lastTaken = stats.DamageTaken
	}

	if stats.DamageDealt < g.lastDealt {
		g.lastDealt = stats.DamageDealt
	} else if delta := stats.DamageDealt - g.lastDealt; delta > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "boss_damage", F: delta, At: at})
		g.lastDealt = stats.DamageDealt
	}

	if phase := g.enc.Controller.RenderData().Phase; phase > g.lastPhase {
		g.sendTelemetry(telemetry.Event{Kind: "phase", I: phase - g.lastPhase, At: at})
		g.lastPhase = phase
	} else if phase < g.lastPhase {
		g.lastPhase = phase
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}

	select {
	case g.telemetry.In <- ev:
	default:
		// Drop on backpressure to avoid stalling the fixed-step loop.
	}
}
