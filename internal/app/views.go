// internal/app/views.go
package app

import (
	"image/color"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/types"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// Снимки состояния для слоя отрисовки. Слой отрисовки не лазает в ECS:
// он получает готовые срезы в детерминированном порядке (по возрастанию ID).

// EnemyView — враг глазами отрисовки.
type EnemyView struct {
	ID        types.EntityID
	Pos       vector.Vec2
	Health    int
	MaxHealth int
	Color     color.RGBA
	Radius    float32
}

// TowerView — башня глазами отрисовки.
type TowerView struct {
	ID          types.EntityID
	Pos         vector.Vec2
	Variant     defs.TowerVariant
	Level       int
	Damage      int
	Range       float64
	Angle       float64
	UpgradeCost int
	Color       color.RGBA
	Radius      float32
}

// ProjectileView — снаряд глазами отрисовки.
type ProjectileView struct {
	ID     types.EntityID
	Pos    vector.Vec2
	Color  color.RGBA
	Radius float32
}

// Enemies возвращает снимок врагов.
func (g *Game) Enemies() []EnemyView {
	ids := g.ECS.SortedEnemyIDs()
	views := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		enemy := g.ECS.Enemies[id]
		if pos == nil || health == nil || enemy == nil {
			continue
		}
		v := EnemyView{
			ID:        id,
			Pos:       pos.Point,
			Health:    health.Value,
			MaxHealth: enemy.MaxHealth,
			Color:     config.DefaultEnemyColor,
			Radius:    config.EnemyRadius,
		}
		if r := g.ECS.Renderables[id]; r != nil {
			v.Color = r.Color
			v.Radius = r.Radius
		}
		views = append(views, v)
	}
	return views
}

// Towers возвращает снимок башен.
func (g *Game) Towers() []TowerView {
	ids := g.ECS.SortedTowerIDs()
	views := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		pos := g.ECS.Positions[id]
		tower := g.ECS.Towers[id]
		if pos == nil || tower == nil {
			continue
		}
		v := TowerView{
			ID:          id,
			Pos:         pos.Point,
			Variant:     tower.Variant,
			Level:       tower.Level,
			Damage:      tower.Damage,
			Range:       tower.Range,
			Angle:       tower.Angle,
			UpgradeCost: tower.UpgradeCost(config.UpgradeCostPerLevel),
			Radius:      config.TowerRadius,
		}
		if r := g.ECS.Renderables[id]; r != nil {
			v.Color = r.Color
			v.Radius = r.Radius
		}
		views = append(views, v)
	}
	return views
}

// Projectiles возвращает снимок снарядов.
func (g *Game) Projectiles() []ProjectileView {
	ids := g.ECS.SortedProjectileIDs()
	views := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		v := ProjectileView{
			ID:     id,
			Pos:    pos.Point,
			Color:  config.ProjectileColor,
			Radius: config.ProjectileRadius,
		}
		if r := g.ECS.Renderables[id]; r != nil {
			v.Color = r.Color
			v.Radius = r.Radius
		}
		views = append(views, v)
	}
	return views
}

// Money возвращает текущий баланс казны.
func (g *Game) Money() int {
	return g.ECS.GameState.Money
}

// GameOver сообщает, что враг дошёл до базы.
func (g *Game) GameOver() bool {
	return g.ECS.GameState.GameOver
}

// LevelComplete сообщает, что все волны текущего уровня зачищены.
func (g *Game) LevelComplete() bool {
	return g.ECS.GameState.LevelComplete
}

// AllLevelsComplete сообщает, что кампания пройдена.
func (g *Game) AllLevelsComplete() bool {
	return g.ECS.GameState.AllLevelsComplete
}

// LevelName возвращает имя текущего уровня.
func (g *Game) LevelName() string {
	return g.levels[g.levelIndex].Name
}

// LevelPaths возвращает маршруты текущего уровня для отрисовки.
func (g *Game) LevelPaths() [][]vector.Vec2 {
	return g.levels[g.levelIndex].Paths
}

// WavesLeft возвращает число незачищенных волн текущего уровня,
// включая текущую.
func (g *Game) WavesLeft() int {
	total := len(g.levels[g.levelIndex].Waves)
	if g.ECS.Wave == nil {
		if g.ECS.GameState.LevelComplete {
			return 0
		}
		return total
	}
	return total - g.ECS.Wave.Number + 1
}

// EnemiesLeft возвращает число врагов на поле.
func (g *Game) EnemiesLeft() int {
	return len(g.ECS.Enemies)
}
