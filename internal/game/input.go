package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/shared/input"
)

func ReadInput() input.State {
	return input.State{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

func ReadRestart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func ReadPaused() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
