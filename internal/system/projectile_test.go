package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

func TestProjectile_HitAppliesDamageOnceAndConsumesProjectile(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)

	enemyID := addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 100}), 0, 30, 10)
	projID := addProjectile(ecs, vector.Vec2{X: 95, Y: 100}, 0, 420, 20)

	ps.Update(1.0 / 60.0)

	assert.NotContains(t, ecs.Projectiles, projID, "projectile is consumed on first overlap")
	require.Contains(t, ecs.Healths, enemyID)
	assert.Equal(t, 10, ecs.Healths[enemyID].Value)
}

func TestProjectile_HealthEqualsInitialMinusSumOfDamages(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)

	enemyID := addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 100}), 0, 30, 10)

	// Три последовательных попадания по 5.
	for i := 0; i < 3; i++ {
		addProjectile(ecs, vector.Vec2{X: 95, Y: 100}, 0, 420, 5)
		ps.Update(1.0 / 60.0)
	}

	require.Contains(t, ecs.Healths, enemyID)
	assert.Equal(t, 30-3*5, ecs.Healths[enemyID].Value)
}

func TestProjectile_KillCreditsExactRewardAndNoGameOver(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)
	NewEconomySystem(ecs, dispatcher)
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyKilled, rec)

	enemyID := addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 100}), 0, 10, 25)
	addProjectile(ecs, vector.Vec2{X: 95, Y: 100}, 0, 420, 20)

	ps.Update(1.0 / 60.0)

	assert.NotContains(t, ecs.Enemies, enemyID, "dead enemy must be removed")
	assert.Equal(t, 25, ecs.GameState.Money, "death credits exactly the reward")
	assert.False(t, ecs.GameState.GameOver, "death must not set game over")
	assert.Equal(t, 1, rec.count(event.EnemyKilled))
}

func TestProjectile_AtMostOneEnemyPerProjectile(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)

	// Оба врага в радиусе попадания, страдает только более ранний.
	first := addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 100}), 0, 30, 10)
	second := addEnemy(ecs, stationaryPath(vector.Vec2{X: 104, Y: 100}), 0, 30, 10)
	addProjectile(ecs, vector.Vec2{X: 95, Y: 100}, 0, 420, 20)

	ps.Update(1.0 / 60.0)

	assert.Equal(t, 10, ecs.Healths[first].Value)
	assert.Equal(t, 30, ecs.Healths[second].Value, "a projectile damages at most one enemy")
}

func TestProjectile_EnemyDiesOnlyOnce(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)
	NewEconomySystem(ecs, dispatcher)

	enemyID := addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 100}), 0, 10, 25)
	addProjectile(ecs, vector.Vec2{X: 95, Y: 100}, 0, 420, 20)
	addProjectile(ecs, vector.Vec2{X: 94, Y: 100}, 0, 420, 20)

	ps.Update(1.0 / 60.0)

	assert.NotContains(t, ecs.Enemies, enemyID)
	assert.Equal(t, 25, ecs.GameState.Money, "reward is credited exactly once")
}

func TestProjectile_RemovedWhenOutOfBounds(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)

	projID := addProjectile(ecs, vector.Vec2{X: 799, Y: 300}, 0, 420, 20)

	ps.Update(1.0 / 60.0) // вылетает за правую границу

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.NotContains(t, ecs.Positions, projID)
}

func TestProjectile_MissFliesOn(t *testing.T) {
	ecs, dispatcher := newTestWorld()
	ps := NewProjectileSystem(ecs, dispatcher, 800, 600)

	addEnemy(ecs, stationaryPath(vector.Vec2{X: 100, Y: 400}), 0, 30, 10)
	projID := addProjectile(ecs, vector.Vec2{X: 100, Y: 100}, 0, 420, 20)

	ps.Update(1.0 / 60.0)

	require.Contains(t, ecs.Projectiles, projID, "projectile without overlap keeps flying")
	assert.InDelta(t, 107, ecs.Positions[projID].Point.X, 0.5)
}
