// internal/app/game.go
package app

import (
	"fmt"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/system"
	"github.com/ilka74/TowerDefence/internal/utils"
)

// Game — агрегат симуляции: ECS, системы и публичный API для слоёв
// ввода и отрисовки. Вся симуляция продвигается одним вызовом Update
// из внешнего игрового цикла; внутри тика ничего не блокируется.
type Game struct {
	Settings        *config.Settings
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EconomySystem    *system.EconomySystem

	grid   *Grid
	rng    *utils.PRNGService
	levels []defs.LevelDefinition

	levelIndex      int
	selectedVariant defs.TowerVariant
}

// NewGame собирает игру по настройкам и списку уровней.
// Каждый уровень проверяется на корректность конфигурации:
// уровень без маршрутов или с пустым маршрутом отклоняется здесь,
// а не превращается в ошибку во время игры.
func NewGame(settings *config.Settings, levels []defs.LevelDefinition) (*Game, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("не задано ни одного уровня")
	}
	for i := range levels {
		if err := defs.ValidateLevel(&levels[i]); err != nil {
			return nil, fmt.Errorf("уровень %d (%s): %w", i+1, levels[i].Name, err)
		}
	}

	g := &Game{
		Settings:        settings,
		levels:          levels,
		selectedVariant: defs.TowerBasic,
	}
	g.reset()
	return g, nil
}

// reset поднимает свежую сессию: новая ECS, новые системы, казна
// со стартовым балансом, первый уровень с первой волной.
func (g *Game) reset() {
	ecs := entity.NewECS()
	ecs.GameState.Money = g.Settings.StartingMoney
	dispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.rng = utils.NewPRNGService(g.Settings.Seed)
	g.grid = NewGrid(g.Settings.ScreenWidth, g.Settings.ScreenHeight, config.GridCellSize)

	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher,
		float64(g.Settings.ScreenWidth), float64(g.Settings.ScreenHeight))
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, g.rng, g.Settings.SpawnDelayMs)
	g.EconomySystem = system.NewEconomySystem(ecs, dispatcher)

	dispatcher.Subscribe(event.WaveEnded, g)

	g.levelIndex = 0
	g.startLevel(0)
}

// Reset начинает новую игру. Казна и башни сессии сбрасываются.
func (g *Game) Reset() {
	g.reset()
}

func (g *Game) startLevel(index int) {
	g.levelIndex = index
	g.WaveSystem.SetLevel(g.levels[index])
	g.ECS.Wave = g.WaveSystem.StartWave(1)
}

// Update продвигает симуляцию на один шаг. Порядок внутри тика
// фиксирован: спавн → движение → башни → снаряды → проверка зачистки.
// После конца игры и после победы состояние заморожено.
func (g *Game) Update(deltaTime float64) {
	gs := g.ECS.GameState
	if gs.GameOver || gs.LevelComplete || gs.AllLevelsComplete {
		return
	}

	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	if gs.GameOver {
		// Утечка останавливает симуляцию немедленно: башни и снаряды
		// в этом тике уже не обновляются.
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.WaveSystem.CheckCompletion()
}

// OnEvent обрабатывает зачистку волны: либо следующая волна,
// либо уровень пройден.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.WaveEnded {
		return
	}
	data, ok := e.Data.(event.WaveEndedData)
	if !ok {
		return
	}
	if data.Number < len(g.levels[g.levelIndex].Waves) {
		g.ECS.Wave = g.WaveSystem.StartWave(data.Number + 1)
		return
	}
	g.ECS.GameState.LevelComplete = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: g.levelIndex})
}

// StartNextLevel переводит игру на следующий уровень кампании.
// Башни и казна переносятся. На последнем уровне фиксируется победа.
func (g *Game) StartNextLevel() {
	gs := g.ECS.GameState
	if !gs.LevelComplete || gs.GameOver {
		return
	}
	gs.LevelComplete = false
	if g.levelIndex+1 >= len(g.levels) {
		gs.AllLevelsComplete = true
		return
	}
	g.startLevel(g.levelIndex + 1)
}

// SelectTowerType выбирает тип башни для следующей установки.
// Неизвестный тип игнорируется с сохранением прежнего выбора.
func (g *Game) SelectTowerType(variant defs.TowerVariant) {
	if variant.Valid() {
		g.selectedVariant = variant
	}
}

// SelectedTowerType возвращает текущий выбранный тип башни.
func (g *Game) SelectedTowerType() defs.TowerVariant {
	return g.selectedVariant
}
