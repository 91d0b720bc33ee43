// internal/entity/ecs.go
package entity

import (
	"sort"

	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/internal/types"
)

// ECS хранит все компоненты игры в картах по идентификатору сущности.
type ECS struct {
	GameTime    float64 // игровое время в секундах, монотонно растёт
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Renderables map[types.EntityID]*component.Renderable
	Wave        *component.Wave
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Wave:        nil,
		GameState:   &component.GameState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
// Вызывается только после завершения обхода, не во время него.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
}

// SortedEnemyIDs возвращает ID врагов по возрастанию.
// Порядок совпадает с порядком появления, на него опираются правила
// разрешения ничьих при выборе цели и детерминизм коллизий.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// SortedTowerIDs возвращает ID башен по возрастанию (порядок установки).
func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// SortedProjectileIDs возвращает ID снарядов по возрастанию (порядок выстрела).
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

func sortedKeys[V any](m map[types.EntityID]*V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
