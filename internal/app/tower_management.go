// internal/app/tower_management.go
package app

import (
	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// AttemptPlaceTower пытается построить башню выбранного типа в клетке,
// накрывающей точку pos. Любой отказ возвращается кодом причины и не
// меняет ни казну, ни поле.
func (g *Game) AttemptPlaceTower(pos vector.Vec2, variant defs.TowerVariant) PlaceResult {
	def, known := defs.TowerLibrary[variant]
	if !known {
		return PlaceUnknownVariant
	}

	cost := g.Settings.TowerCosts[string(variant)]
	if g.ECS.GameState.Money < cost {
		return PlaceInsufficientFunds
	}

	cell := g.grid.CellAt(pos)
	if !g.grid.SpotAvailable(cell) {
		return PlaceInvalidCell
	}

	// Все проверки пройдены: списываем и строим.
	g.ECS.GameState.TryDebit(cost)
	g.grid.Occupy(cell)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Point: g.grid.CellCenter(cell)}
	g.ECS.Towers[id] = &component.Tower{
		Variant:      variant,
		Cell:         cell,
		Level:        1,
		Damage:       def.Damage,
		Range:        def.Range,
		RateOfFireMs: def.RateOfFireMs,
		LastShotTime: g.ECS.GameTime,
		MoneyPerTick: def.MoneyPerTick,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.TowerColors[string(variant)],
		Radius: config.TowerRadius,
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return PlaceOK
}

// AttemptUpgradeTower пытается улучшить башню в клетке, накрывающей pos.
// Стоимость растёт линейно с уровнем и не ограничена сверху. Улучшение:
// уровень +1, урон ×1.2 и интервал стрельбы ×0.8, оба с усечением до целого.
// Для денежной башни ускоряется генерация денег.
func (g *Game) AttemptUpgradeTower(pos vector.Vec2) PlaceResult {
	cell := g.grid.CellAt(pos)

	for _, id := range g.ECS.SortedTowerIDs() {
		tower := g.ECS.Towers[id]
		if tower == nil || tower.Cell != cell {
			continue
		}

		cost := tower.UpgradeCost(config.UpgradeCostPerLevel)
		if !g.ECS.GameState.TryDebit(cost) {
			return PlaceInsufficientFunds
		}

		tower.Level++
		tower.Damage = int(float64(tower.Damage) * config.UpgradeDamageFactor)
		tower.RateOfFireMs = int(float64(tower.RateOfFireMs) * config.UpgradeIntervalFactor)

		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
		return PlaceOK
	}

	return PlaceNoTowerAtCell
}
