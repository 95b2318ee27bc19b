// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-core-defense/internal/config"
)

// GameOverState — экран поражения: ядро разрушено
type GameOverState struct {
	sm *StateMachine
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{sm: sm}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "CORE DESTROYED", config.ScreenWidth/2-56, config.ScreenHeight/2-20)
	ebitenutil.DebugPrintAt(screen, "space to retry, esc for menu", config.ScreenWidth/2-96, config.ScreenHeight/2+10)
}

func (s *GameOverState) Exit() {}
