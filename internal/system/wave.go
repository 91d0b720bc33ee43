// internal/system/wave.go
package system

import (
	"log"

	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/entity"
	"github.com/ilka74/TowerDefence/internal/event"
	"github.com/ilka74/TowerDefence/internal/utils"
)

// WaveSystem — планировщик волн: спавнит врагов с фиксированным интервалом
// и определяет момент зачистки волны.
//
// Волна считается зачищенной только когда выполнены оба условия:
// все её дескрипторы заспавнены и активных врагов не осталось.
// Волна с пустой очередью спавна, но живыми врагами остаётся в ожидании.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	level           defs.LevelDefinition
	spawnInterval   float64 // секунды между спавнами
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, spawnDelayMs int) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		spawnInterval:   float64(spawnDelayMs) / 1000.0,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyLeaked, ws)
	return ws
}

// SetLevel задаёт уровень, волны которого будет раздавать планировщик.
// Уровень обязан пройти defs.ValidateLevel до этого вызова.
func (s *WaveSystem) SetLevel(level defs.LevelDefinition) {
	s.level = level
	s.activeEnemies = 0
}

// StartWave создаёт состояние волны с указанным номером (с единицы).
func (s *WaveSystem) StartWave(number int) *component.Wave {
	if number < 1 || number > len(s.level.Waves) {
		log.Printf("WaveSystem: запрошена несуществующая волна %d", number)
		return nil
	}
	def := s.level.Waves[number-1]
	return &component.Wave{
		Number:         number,
		Def:            def,
		EnemiesToSpawn: def.Count,
		SpawnTimer:     0,
		SpawnInterval:  s.spawnInterval,
	}
}

// Update продвигает таймер спавна. Интервал фиксированный и отсчитывается
// от предыдущего спавна; первый враг волны тоже ждёт полный интервал.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.EnemiesToSpawn <= 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= wave.SpawnInterval {
		s.spawnEnemy(wave)
		wave.EnemiesToSpawn--
		wave.SpawnTimer = 0
	}
}

// CheckCompletion вызывается в конце тика, после разрешения коллизий:
// погибшие и утёкшие в этом тике враги уже не считаются активными.
func (s *WaveSystem) CheckCompletion() {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn == 0 && s.activeEnemies == 0 {
		number := wave.Number
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveEndedData{Number: number},
		})
	}
}

// ActiveEnemies возвращает число врагов текущего уровня на поле.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def := wave.Def

	// Маршрут выбирается случайно из набора уровня; сид генератора
	// задаётся настройками, так что спавн воспроизводим в тестах.
	path := s.level.Paths[s.rng.Intn(len(s.level.Paths))]

	enemyColor, ok := config.EnemyColors[def.EnemyID]
	if !ok {
		enemyColor = config.DefaultEnemyColor
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Point: path[0]}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Points: path, Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.EnemyID,
		MaxHealth:  def.Health,
		Reward:     def.Reward,
		WaveNumber: wave.Number,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  enemyColor,
		Radius: config.EnemyRadius,
	}
	s.activeEnemies++

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// OnEvent учитывает выбытие врагов: и смерть, и утечка уменьшают
// счётчик активных. Для конкретного врага исходы взаимоисключающие.
func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyLeaked:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}
