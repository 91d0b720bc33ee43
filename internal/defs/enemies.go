// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for a specific type of enemy.
// Speed is given in pixels per second.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Reward int     `json:"reward"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_BASIC":  {ID: "ENEMY_BASIC", Name: "Basic", Health: 30, Speed: 120, Reward: 10},
	"ENEMY_FAST":   {ID: "ENEMY_FAST", Name: "Fast", Health: 10, Speed: 180, Reward: 15},
	"ENEMY_STRONG": {ID: "ENEMY_STRONG", Name: "Strong", Health: 100, Speed: 60, Reward: 30},
	"ENEMY_BOSS":   {ID: "ENEMY_BOSS", Name: "Boss", Health: 300, Speed: 30, Reward: 100},
}
