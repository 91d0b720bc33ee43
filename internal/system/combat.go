// internal/system/combat.go
package system

import (
	"math"

	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/types"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// CombatSystem управляет выбором целей и стрельбой башен.
//
// Цель переоценивается каждый тик, «захвата» цели между тиками нет:
// если лучшая цель сменилась, башня просто стреляет по новой.
// Выстрел не чаще одного раза за RateOfFireMs, интервал отсчитывается
// от времени предыдущего выстрела.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime

	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]
		if tower == nil || pos == nil {
			continue
		}

		// У денежной башни нет боевой машины состояний, только таймер.
		if tower.Variant == defs.TowerMoney {
			s.generateMoney(id, tower, now)
			continue
		}

		targetID := s.findTarget(tower, pos.Point)
		if targetID == 0 {
			continue
		}
		targetPos := s.ecs.Positions[targetID].Point

		// Поворот к цели — косметика, потребляется отрисовкой.
		tower.Angle = pos.Point.Angle(targetPos)

		if (now-tower.LastShotTime)*1000.0 >= float64(tower.RateOfFireMs) {
			s.spawnProjectile(pos.Point, targetPos, tower.Damage)
			tower.LastShotTime = now
		}
	}
}

// generateMoney начисляет казне фиксированную сумму раз в интервал.
func (s *CombatSystem) generateMoney(id types.EntityID, tower *component.Tower, now float64) {
	if (now-tower.LastShotTime)*1000.0 < float64(tower.RateOfFireMs) {
		return
	}
	tower.LastShotTime = now
	s.ecs.GameState.Credit(tower.MoneyPerTick)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MoneyGenerated,
		Data: event.MoneyGeneratedData{TowerID: id, Amount: tower.MoneyPerTick},
	})
}

// findTarget возвращает лучшую цель в радиусе действия или 0.
// Обход врагов идёт по возрастанию ID (порядок появления), поэтому при
// равных кандидатах побеждает более ранний: сравнения строгие.
func (s *CombatSystem) findTarget(tower *component.Tower, towerPos vector.Vec2) types.EntityID {
	switch tower.Variant {
	case defs.TowerSniper:
		return s.findHealthiestInRange(towerPos, tower.Range)
	default:
		return s.findNearestInRange(towerPos, tower.Range)
	}
}

func (s *CombatSystem) findNearestInRange(towerPos vector.Vec2, rangeRadius float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		distance := towerPos.Distance(enemyPos.Point)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest
}

func (s *CombatSystem) findHealthiestInRange(towerPos vector.Vec2, rangeRadius float64) types.EntityID {
	var healthiest types.EntityID
	maxHealth := 0
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		enemyPos := s.ecs.Positions[enemyID]
		health := s.ecs.Healths[enemyID]
		if enemyPos == nil || health == nil {
			continue
		}
		if towerPos.Distance(enemyPos.Point) <= rangeRadius && health.Value > maxHealth {
			maxHealth = health.Value
			healthiest = enemyID
		}
	}
	return healthiest
}

// spawnProjectile создаёт снаряд, летящий к точке, где цель находилась
// в момент выстрела.
func (s *CombatSystem) spawnProjectile(from, to vector.Vec2, damage int) {
	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{Point: from}
	s.ecs.Projectiles[projID] = &component.Projectile{
		Damage:    damage,
		Speed:     config.ProjectileSpeed,
		Direction: from.Angle(to),
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}
