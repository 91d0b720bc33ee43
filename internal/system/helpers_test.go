package system

import (
	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/types"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// recorder собирает события для проверок в тестах.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*entity.ECS, *event.Dispatcher) {
	return entity.NewECS(), event.NewDispatcher()
}

func addEnemy(ecs *entity.ECS, path []vector.Vec2, speed float64, health, reward int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Point: path[0]}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Points: path, Index: 0}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_BASIC", MaxHealth: health, Reward: reward}
	return id
}

func addTower(ecs *entity.ECS, pos vector.Vec2, variant defs.TowerVariant, damage int, rangeRadius float64, rateMs int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Point: pos}
	ecs.Towers[id] = &component.Tower{
		Variant:      variant,
		Level:        1,
		Damage:       damage,
		Range:        rangeRadius,
		RateOfFireMs: rateMs,
		MoneyPerTick: 10,
	}
	return id
}

func addProjectile(ecs *entity.ECS, pos vector.Vec2, direction float64, speed float64, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Point: pos}
	ecs.Projectiles[id] = &component.Projectile{Damage: damage, Speed: speed, Direction: direction}
	return id
}
