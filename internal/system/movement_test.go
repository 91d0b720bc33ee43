package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

func TestMovement_SinglePointPathNeverMoves(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, dispatcher)

	id := addEnemy(ecs, []vector.Vec2{{X: 100, Y: 100}}, 60, 30, 10)

	for i := 0; i < 600; i++ {
		ms.Update(1.0 / 60.0)
	}

	require.Contains(t, ecs.Enemies, id, "enemy with a 1-point path must stay on the field")
	assert.Equal(t, vector.Vec2{X: 100, Y: 100}, ecs.Positions[id].Point)
	assert.Equal(t, 0, ecs.Paths[id].Index)
	assert.False(t, ecs.GameState.GameOver)
}

func TestMovement_AdvancesTowardWaypoint(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, dispatcher)

	id := addEnemy(ecs, []vector.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}, 60, 30, 10)

	ms.Update(0.5)

	assert.InDelta(t, 30, ecs.Positions[id].Point.X, 1e-9)
	assert.InDelta(t, 0, ecs.Positions[id].Point.Y, 1e-9)
	assert.Equal(t, 0, ecs.Paths[id].Index)
}

func TestMovement_SnapAndSegmentCarryover(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, dispatcher)

	// За один тик враг доходит до первой точки и остаток шага тратит
	// на следующий сегмент.
	id := addEnemy(ecs, []vector.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 100}, {X: 200, Y: 100}}, 60, 30, 10)

	ms.Update(0.5) // шаг 30: 10 до поворота + 20 вниз

	assert.InDelta(t, 10, ecs.Positions[id].Point.X, 1e-9)
	assert.InDelta(t, 20, ecs.Positions[id].Point.Y, 1e-9)
	assert.Equal(t, 1, ecs.Paths[id].Index)
}

func TestMovement_DegenerateSegmentTreatedAsArrived(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, dispatcher)

	// Сегмент нулевой длины: совпадающие соседние точки.
	id := addEnemy(ecs, []vector.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 60, Y: 0}, {X: 60, Y: 60}}, 60, 30, 10)

	ms.Update(0.5)

	// Вырожденный сегмент пройден мгновенно, движение продолжилось.
	assert.InDelta(t, 30, ecs.Positions[id].Point.X, 1e-9)
	assert.Equal(t, 1, ecs.Paths[id].Index)
}

func TestMovement_LeakSetsGameOverWithoutReward(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, dispatcher)
	NewEconomySystem(ecs, dispatcher)
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyLeaked, rec)
	dispatcher.Subscribe(event.EnemyKilled, rec)

	startMoney := 100
	ecs.GameState.Money = startMoney

	id := addEnemy(ecs, []vector.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, 60, 30, 25)

	ms.Update(1.0)

	require.True(t, ecs.GameState.GameOver, "reaching the final waypoint must end the game")
	assert.NotContains(t, ecs.Enemies, id, "leaked enemy must be removed")
	assert.Equal(t, startMoney, ecs.GameState.Money, "leak must not credit the reward")
	assert.Equal(t, 1, rec.count(event.EnemyLeaked))
	assert.Equal(t, 0, rec.count(event.EnemyKilled), "leak and death are mutually exclusive")
}
