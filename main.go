package main

import (
	"flag"
	"log"
	"time"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/session"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

// keyMap is the fixed mapping from raylib key codes to session input events.
// Arrows and WASD steer, space is the contextual toggle.
var keyMap = map[int32]session.Key{
	rl.KeyUp:    session.KeyUp,
	rl.KeyW:     session.KeyUp,
	rl.KeyRight: session.KeyRight,
	rl.KeyD:     session.KeyRight,
	rl.KeyDown:  session.KeyDown,
	rl.KeyS:     session.KeyDown,
	rl.KeyLeft:  session.KeyLeft,
	rl.KeyA:     session.KeyLeft,
	rl.KeySpace: session.KeyToggle,
	rl.KeyP:     session.KeyPause,
	rl.KeyEnter: session.KeyStart,
	rl.KeyR:     session.KeyRestart,
}

func main() {
	gridSize := flag.Int("grid", game.DefaultConfig().GridSize, "Grid size in cells per side")
	length := flag.Int("length", game.DefaultConfig().InitialLength, "Initial snake length")
	speed := flag.Int("speed", int(game.DefaultConfig().InitialSpeed.Milliseconds()), "Initial tick interval in milliseconds")
	flag.Parse()

	cfg := game.Config{
		GridSize:      *gridSize,
		InitialLength: *length,
		InitialSpeed:  time.Duration(*speed) * time.Millisecond,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	stats := manager.NewStateManager()

	sess, err := session.NewSession(cfg, rng, stats)
	if err != nil {
		log.Fatalf("could not create game: %v", err)
	}

	rl.InitWindow(800, 860, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		now := time.Now()

		for code, key := range keyMap {
			if rl.IsKeyPressed(code) {
				sess.HandleKey(key, now)
			}
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		sess.Advance(now)
		renderer.Draw(sess.Snapshot())
	}

	if err := stats.SaveStats(manager.StatsFile); err != nil {
		log.Printf("warning: could not save stats: %v", err)
	}
}
