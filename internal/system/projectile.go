// internal/system/projectile.go
package system

import (
	"math"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/types"
)

// ProjectileSystem двигает снаряды и разрешает коллизии с врагами.
//
// Снаряд летит по прямой. Каждый тик он проверяется на перекрытие с врагами
// в порядке возрастания ID; первое перекрытие поглощает снаряд и наносит его
// урон ровно один раз, остальных врагов этот снаряд не задевает.
// Снаряд, вылетевший за границы поля, просто удаляется.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	boundsW         float64
	boundsH         float64
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, boundsW, boundsH float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		boundsW:         boundsW,
		boundsH:         boundsH,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	var spent []types.EntityID
	killed := make(map[types.EntityID]bool)
	var killOrder []types.EntityID

	for _, projID := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[projID]
		pos := s.ecs.Positions[projID]
		if proj == nil || pos == nil {
			spent = append(spent, projID)
			continue
		}

		pos.Point.X += math.Cos(proj.Direction) * proj.Speed * deltaTime
		pos.Point.Y += math.Sin(proj.Direction) * proj.Speed * deltaTime

		if pos.Point.X < 0 || pos.Point.X > s.boundsW || pos.Point.Y < 0 || pos.Point.Y > s.boundsH {
			spent = append(spent, projID)
			continue
		}

		for _, enemyID := range s.ecs.SortedEnemyIDs() {
			if killed[enemyID] {
				continue
			}
			enemyPos := s.ecs.Positions[enemyID]
			health := s.ecs.Healths[enemyID]
			if enemyPos == nil || health == nil {
				continue
			}
			if pos.Point.Distance(enemyPos.Point) > config.EnemyHitRadius {
				continue
			}

			health.Value -= proj.Damage
			spent = append(spent, projID)
			if health.Value <= 0 {
				killed[enemyID] = true
				killOrder = append(killOrder, enemyID)
			}
			break
		}
	}

	// Сначала снимаем снаряды, потом врагов: подписчики EnemyKilled
	// видят поле уже без отработавших снарядов.
	for _, id := range spent {
		s.ecs.RemoveEntity(id)
	}
	for _, enemyID := range killOrder {
		reward := 0
		if enemy := s.ecs.Enemies[enemyID]; enemy != nil {
			reward = enemy.Reward
		}
		s.ecs.RemoveEntity(enemyID)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{ID: enemyID, Reward: reward},
		})
	}
}
