// internal/state/game_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	evector "github.com/hajimehoshi/ebiten/v2/vector"

	game "github.com/ilka74/TowerDefence/internal/app"
	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/ui"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// GameState — состояние игры: транслирует ввод в команды симуляции
// и рисует её снимки. Сама симуляция живёт в internal/app и про
// ebiten ничего не знает.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	hud      *ui.HUD
	showGrid bool
}

func NewGameState(sm *StateMachine, settings *config.Settings) *GameState {
	gameLogic, err := game.NewGame(settings, defs.LevelLibrary)
	if err != nil {
		// Некорректная конфигурация уровней — дефект сборки, дальше
		// игре делать нечего.
		log.Fatalf("не удалось создать игру: %v", err)
	}
	return &GameState{
		sm:   sm,
		game: gameLogic,
		hud:  ui.NewHUD(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	// Выбор типа башни: 1 — базовая, 2 — снайперская, 3 — денежная.
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.SelectTowerType(defs.TowerBasic)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.SelectTowerType(defs.TowerSniper)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.game.SelectTowerType(defs.TowerMoney)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.showGrid = !g.showGrid
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && (g.game.GameOver() || g.game.AllLevelsComplete()) {
		g.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.game.LevelComplete() {
		g.game.StartNextLevel()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		res := g.game.AttemptPlaceTower(vector.Vec2{X: float64(x), Y: float64(y)}, g.game.SelectedTowerType())
		if res != game.PlaceOK {
			log.Printf("башня не построена: %s", res)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		res := g.game.AttemptUpgradeTower(vector.Vec2{X: float64(x), Y: float64(y)})
		if res != game.PlaceOK {
			log.Printf("башня не улучшена: %s", res)
		}
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w := g.game.Settings.ScreenWidth
	h := g.game.Settings.ScreenHeight

	if g.game.GameOver() {
		g.hud.DrawBanner(screen, "Game Over! Press R to restart", config.LoseTextColor, w, h)
		return
	}

	if g.showGrid {
		g.drawGrid(screen, w, h)
	}
	g.drawPaths(screen)
	g.drawTowers(screen)
	g.drawEnemies(screen)
	g.drawProjectiles(screen)

	g.hud.Draw(screen, ui.HUDInfo{
		Money:       g.game.Money(),
		Selected:    string(g.game.SelectedTowerType()),
		LevelName:   g.game.LevelName(),
		WavesLeft:   g.game.WavesLeft(),
		EnemiesLeft: g.game.EnemiesLeft(),
	})

	if g.game.AllLevelsComplete() {
		g.hud.DrawBanner(screen, "You Win! Press R to restart", config.WinTextColor, w, h)
	} else if g.game.LevelComplete() {
		g.hud.DrawBanner(screen, "Level Complete! Press Enter", config.WinTextColor, w, h)
	}
}

func (g *GameState) drawGrid(screen *ebiten.Image, w, h int) {
	cell := config.GridCellSize
	for x := 0; x <= w; x += cell {
		evector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, config.GridColor, false)
	}
	for y := 0; y <= h; y += cell {
		evector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, config.GridColor, false)
	}
}

func (g *GameState) drawPaths(screen *ebiten.Image) {
	for _, path := range g.game.LevelPaths() {
		for i := 0; i+1 < len(path); i++ {
			evector.StrokeLine(screen,
				float32(path[i].X), float32(path[i].Y),
				float32(path[i+1].X), float32(path[i+1].Y),
				3, config.PathColor, false)
		}
	}
}

func (g *GameState) drawTowers(screen *ebiten.Image) {
	for _, t := range g.game.Towers() {
		evector.DrawFilledCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), t.Radius, t.Color, false)
		// Ствол: короткий отрезок в сторону цели.
		tip := t.Pos.Add(vector.Vec2{X: 1, Y: 0}.Mul(float64(t.Radius) * 1.4).Rotate(t.Angle))
		evector.StrokeLine(screen,
			float32(t.Pos.X), float32(t.Pos.Y),
			float32(tip.X), float32(tip.Y),
			3, config.TextColor, false)
	}
}

func (g *GameState) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.game.Enemies() {
		evector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), e.Radius, e.Color, false)
		// Полоска здоровья над врагом.
		if e.MaxHealth > 0 {
			frac := float32(e.Health) / float32(e.MaxHealth)
			if frac < 0 {
				frac = 0
			}
			barW := e.Radius * 2
			evector.DrawFilledRect(screen,
				float32(e.Pos.X)-e.Radius, float32(e.Pos.Y)-e.Radius-6,
				barW*frac, 3, config.HealthBarColor, false)
		}
	}
}

func (g *GameState) drawProjectiles(screen *ebiten.Image) {
	for _, p := range g.game.Projectiles() {
		evector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), p.Radius, p.Color, false)
	}
}
