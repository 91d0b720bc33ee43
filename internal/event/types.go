// internal/event/types.go
package event

import "github.com/ilka74/TowerDefence/internal/types"

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг появился на карте
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен снарядом
	EnemyLeaked    EventType = "EnemyLeaked"    // Враг дошёл до базы
	WaveEnded      EventType = "WaveEnded"      // Волна зачищена
	LevelCompleted EventType = "LevelCompleted" // Все волны уровня зачищены
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"  // Башня улучшена
	MoneyGenerated EventType = "MoneyGenerated" // Денежная башня начислила деньги
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	ID     types.EntityID
	Reward int
}

// EnemyLeakedData — данные события EnemyLeaked.
type EnemyLeakedData struct {
	ID types.EntityID
}

// WaveEndedData — данные события WaveEnded.
type WaveEndedData struct {
	Number int
}

// MoneyGeneratedData — данные события MoneyGenerated.
type MoneyGeneratedData struct {
	TowerID types.EntityID
	Amount  int
}
