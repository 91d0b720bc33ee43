// internal/defs/levels.go
package defs

import "github.com/ilka74/TowerDefence/pkg/vector"

// WaveDefinition описывает одну волну: кто, сколько и с какими
// характеристиками появляется. Значения заданы явно, чтобы волна могла
// отличаться от базового определения врага (усиленные и ослабленные версии).
type WaveDefinition struct {
	EnemyID string  `json:"enemy_id"`
	Count   int     `json:"count"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"` // пикселей в секунду
	Reward  int     `json:"reward"`
}

// LevelDefinition описывает уровень: набор маршрутов и последовательность волн.
// Маршрут для каждого врага выбирается случайно при спавне.
type LevelDefinition struct {
	Name  string           `json:"name"`
	Paths [][]vector.Vec2  `json:"paths"`
	Waves []WaveDefinition `json:"waves"`
}

// LevelLibrary — встроенная кампания из трёх уровней.
var LevelLibrary = []LevelDefinition{
	{
		Name: "Level 1",
		Paths: [][]vector.Vec2{
			{{X: 50, Y: 400}, {X: 50, Y: 200}, {X: 400, Y: 200}, {X: 500, Y: 50}},
		},
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_BASIC", Count: 5, Health: 100, Speed: 60, Reward: 10},
			{EnemyID: "ENEMY_FAST", Count: 10, Health: 50, Speed: 120, Reward: 15},
			{EnemyID: "ENEMY_STRONG", Count: 4, Health: 200, Speed: 60, Reward: 30},
			{EnemyID: "ENEMY_STRONG", Count: 3, Health: 300, Speed: 60, Reward: 40},
			{EnemyID: "ENEMY_BOSS", Count: 1, Health: 500, Speed: 30, Reward: 100},
		},
	},
	{
		Name: "Level 2",
		Paths: [][]vector.Vec2{
			{{X: 50, Y: 400}, {X: 300, Y: 300}, {X: 300, Y: 50}},
			{{X: 50, Y: 400}, {X: 600, Y: 400}, {X: 600, Y: 50}},
		},
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_FAST", Count: 8, Health: 50, Speed: 180, Reward: 15},
			{EnemyID: "ENEMY_STRONG", Count: 6, Health: 200, Speed: 60, Reward: 30},
			{EnemyID: "ENEMY_STRONG", Count: 5, Health: 150, Speed: 90, Reward: 25},
			{EnemyID: "ENEMY_BOSS", Count: 2, Health: 400, Speed: 48, Reward: 100},
		},
	},
	{
		Name: "Level 3",
		Paths: [][]vector.Vec2{
			{{X: 50, Y: 400}, {X: 50, Y: 200}, {X: 400, Y: 200}, {X: 500, Y: 50}},
			{{X: 50, Y: 400}, {X: 600, Y: 400}, {X: 600, Y: 50}},
		},
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_BASIC", Count: 5, Health: 100, Speed: 78, Reward: 10},
			{EnemyID: "ENEMY_FAST", Count: 6, Health: 50, Speed: 180, Reward: 15},
			{EnemyID: "ENEMY_STRONG", Count: 4, Health: 200, Speed: 90, Reward: 30},
			{EnemyID: "ENEMY_BOSS", Count: 1, Health: 500, Speed: 30, Reward: 100},
			{EnemyID: "ENEMY_FAST", Count: 5, Health: 150, Speed: 120, Reward: 20},
		},
	},
}
