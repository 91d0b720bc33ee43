// internal/system/economy.go
package system

import (
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
)

// EconomySystem начисляет награды за уничтоженных врагов.
// Утечка врага наградой не является: EnemyLeaked здесь не слушается.
type EconomySystem struct {
	ecs *entity.ECS
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyKilled, es)
	return es
}

func (s *EconomySystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		s.ecs.GameState.Credit(data.Reward)
	}
}
