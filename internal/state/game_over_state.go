// internal/state/game_over_state.go
package state

import (
	"nightmare-descent/internal/config"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/ui"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

const gameOverText = "YOU DIED"

// GameOverState рисует последнюю сцену под затемнением и через
// RestartDelay секунд начинает новую игру.
type GameOverState struct {
	stateMachine  *StateMachine
	previousState State
	deps          Deps
	elapsed       float64
}

func NewGameOverState(sm *StateMachine, prevState State, deps Deps) *GameOverState {
	return &GameOverState{
		stateMachine:  sm,
		previousState: prevState,
		deps:          deps,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed >= config.RestartDelay {
		s.stateMachine.SetState(NewGameState(s.stateMachine, s.deps))
	}
}

// Remaining: сколько секунд осталось до перезапуска.
func (s *GameOverState) Remaining() float64 {
	return max(0, config.RestartDelay-s.elapsed)
}

func (s *GameOverState) Draw(target graphics.Target) {
	if s.previousState != nil {
		s.previousState.Draw(target)
	}

	overlay := ui.WithAlpha(config.BackgroundColor, config.OverlayAlpha)
	target.DrawRect(0, 0, config.ScreenWidth, config.ScreenHeight, overlay)
	textX := (config.ScreenWidth - target.MeasureText(gameOverText)) / 2
	target.DrawText(gameOverText, textX, config.ScreenHeight/2, config.HealthColor)
}

// Exit освобождает сцену предыдущего состояния: пока мы были активны, она
// нужна была только для отрисовки.
func (s *GameOverState) Exit() {
	if c, ok := s.previousState.(Cleaner); ok {
		c.Cleanup()
	}
	s.previousState = nil
}
