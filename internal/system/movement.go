// internal/system/movement.go
package system

import (
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/types"
)

// MovementSystem двигает врагов по их маршрутам.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update продвигает каждого врага к следующей путевой точке со скоростью
// vel.Speed. Если до точки остаётся меньше, чем шаг за тик, враг
// «защёлкивается» на точке и переходит к следующему сегменту; остаток шага
// тратится на следующий сегмент. Достижение последней точки — утечка:
// враг снимается с поля без награды, ставится флаг конца игры.
func (s *MovementSystem) Update(deltaTime float64) {
	var leaked []types.EntityID

	for _, id := range s.ecs.SortedEnemyIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		path := s.ecs.Paths[id]
		if pos == nil || vel == nil || path == nil {
			continue
		}

		// Маршрут из одной точки: идти некуда, индекс остаётся нулевым.
		if path.Index >= len(path.Points)-1 {
			continue
		}

		remaining := vel.Speed * deltaTime
		for remaining > 0 && path.Index < len(path.Points)-1 {
			target := path.Points[path.Index+1]
			delta := target.Sub(pos.Point)
			dist := delta.Len()

			if dist <= remaining {
				// Сюда же попадает вырожденный сегмент нулевой длины:
				// считаем, что точка уже достигнута.
				pos.Point = target
				path.Index++
				remaining -= dist
				continue
			}

			dir, ok := delta.Normalize()
			if !ok {
				path.Index++
				continue
			}
			pos.Point = pos.Point.Add(dir.Mul(remaining))
			remaining = 0
		}

		if path.Index >= len(path.Points)-1 {
			leaked = append(leaked, id)
		}
	}

	// Удаление откладывается до конца обхода, чтобы не ломать итерацию.
	for _, id := range leaked {
		s.ecs.GameState.GameOver = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyLeaked,
			Data: event.EnemyLeakedData{ID: id},
		})
		s.ecs.RemoveEntity(id)
	}
}
