// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/ui"
)

// PauseState — пауза поверх игры: симуляция не обновляется,
// последний кадр остаётся на экране.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
	hud  *ui.HUD
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev, hud: ui.NewHUD()}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Exit() {}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(p.prev)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.prev.Draw(screen)
	p.hud.DrawBanner(screen, "Paused — Press F9 to resume",
		config.TextColor,
		p.prev.game.Settings.ScreenWidth, p.prev.game.Settings.ScreenHeight)
}
