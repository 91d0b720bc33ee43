// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/ui"
)

// MenuState — стартовый экран: ждём клика или Enter.
type MenuState struct {
	sm       *StateMachine
	settings *config.Settings
	hud      *ui.HUD
}

func NewMenuState(sm *StateMachine, settings *config.Settings) *MenuState {
	return &MenuState{sm: sm, settings: settings, hud: ui.NewHUD()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.settings))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.hud.DrawBanner(screen, "Tower Defense — Press Enter to start",
		config.TextColor, m.settings.ScreenWidth, m.settings.ScreenHeight)
}
