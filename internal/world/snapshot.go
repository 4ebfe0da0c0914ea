package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const SnapshotVersion = 2

type Snapshot struct {
	Version int `json:"version"`

	W float32 `json:"w"`
	H float32 `json:"h"`

	ArenaCenter Vec2    `json:"arena_center"`
	Time        float32 `json:"time"`

	Player      Player       `json:"player"`
	Enemies     []Enemy      `json:"enemies"`
	Projectiles []Projectile `json:"projectiles"`
	Obstacles   []Obstacle   `json:"obstacles"`

	TimeSurvived float32 `json:"time_survived"`
	GameOver     bool    `json:"game_over"`
	Victory      bool    `json:"victory"`
	Paused       bool    `json:"paused"`
	Stats        Stats   `json:"stats"`

	NextEnemyID int    `json:"next_enemy_id"`
	AITick      uint64 `json:"ai_tick"`

	RNGSeed  int64  `json:"rng_seed"`
	RNGCalls uint64 `json:"rng_calls"`
}

func (w *World) BuildSnapshot() Snapshot {
	enemies := make([]Enemy, len(w.Enemies))
	copy(enemies, w.Enemies)

	projectiles := make([]Projectile, len(w.Projectiles))
	copy(projectiles, w.Projectiles)

	obstacles := make([]Obstacle, len(w.Obstacles))
	copy(obstacles, w.Obstacles)

	return Snapshot{
		Version: SnapshotVersion,
		W:       w.W,
		H:       w.H,

		ArenaCenter: w.ArenaCenter,
		Time:        w.Time,

		Player:      w.Player,
		Enemies:     enemies,
		Projectiles: projectiles,
		Obstacles:   obstacles,

		TimeSurvived: w.TimeSurvived,
		GameOver:     w.GameOver,
		Victory:      w.Victory,
		Paused:       w.Paused,
		Stats:        w.Stats,

		NextEnemyID: w.nextEnemyID,
		AITick:      w.aiTick,

		RNGSeed:  w.rngSeed,
		RNGCalls: w.rngCalls,
	}
}

func (w *World) ApplySnapshot(s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version: got %d want %d", s.Version, SnapshotVersion)
	}
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("invalid world size in snapshot: w=%.3f h=%.3f", s.W, s.H)
	}

	w.W = s.W
	w.H = s.H
	w.ArenaCenter = s.ArenaCenter
	w.Time = s.Time

	w.Player = s.Player
	w.Enemies = make([]Enemy, len(s.Enemies))
	copy(w.Enemies, s.Enemies)
	w.Projectiles = make([]Projectile, len(s.Projectiles))
	copy(w.Projectiles, s.Projectiles)
	w.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(w.Obstacles, s.Obstacles)

	w.TimeSurvived = s.TimeSurvived
	w.GameOver = s.GameOver
	w.Victory = s.Victory
	w.Paused = s.Paused
	w.Stats = s.Stats

	w.nextEnemyID = s.NextEnemyID
	w.aiTick = s.AITick

	// Rebuild the RNG stream to the recorded position so the next draw
	// matches the run that produced the snapshot.
	w.rngSeed = s.RNGSeed
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = nil
	w.rngCalls = 0
	w.ensureRNG()
	for range s.RNGCalls {
		_ = w.RandFloat32()
	}

	if w.aiPendingRequests != nil {
		clear(w.aiPendingRequests)
	}
	if w.aiReadyResults != nil {
		clear(w.aiReadyResults)
	}
	// Resubmit the intent snapshot for the upcoming tick so the first
	// post-restore tick resolves intents from the same state the original
	// run submitted.
	w.submitAIJob(w.aiTick)

	return nil
}

func (w *World) SaveSnapshot(path string) error {
	if path == "" {
		return fmt.Errorf("snapshot path is empty")
	}

	s := w.BuildSnapshot()
	blob, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure snapshot dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write snapshot temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename snapshot temp file: %w", err)
	}

	return nil
}

func (w *World) LoadSnapshot(path string) error {
	if path == "" {
		return fmt.Errorf("snapshot path is empty")
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot file: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(blob, &s); err != nil {
		return fmt.Errorf("decode snapshot file: %w", err)
	}

	if err := w.ApplySnapshot(s); err != nil {
		return fmt.Errorf("apply snapshot: %w", err)
	}
	return nil
}
