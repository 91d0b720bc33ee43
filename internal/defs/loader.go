// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLevelDefinitions reads a level configuration file and replaces the
// built-in LevelLibrary. A missing or broken file is a configuration error:
// it is reported to the caller, never silently ignored.
func LoadLevelDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levels []LevelDefinition
	if err := json.Unmarshal(file, &levels); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	for i := range levels {
		if err := ValidateLevel(&levels[i]); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, levels[i].Name, err)
		}
	}

	LevelLibrary = levels
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive", def.ID)
		}
		if def.Reward < 0 {
			return fmt.Errorf("enemy %s: reward must not be negative", def.ID)
		}
		lib[def.ID] = def
	}
	EnemyLibrary = lib
	return nil
}

// ValidateLevel проверяет конфигурацию уровня перед запуском.
// Пустой маршрут — ошибка конфигурации, а не ошибка времени выполнения:
// планировщик не должен получить уровень, по которому некуда идти.
func ValidateLevel(lvl *LevelDefinition) error {
	if len(lvl.Paths) == 0 {
		return fmt.Errorf("no enemy paths defined")
	}
	for i, p := range lvl.Paths {
		if len(p) == 0 {
			return fmt.Errorf("path %d is empty", i)
		}
	}
	if len(lvl.Waves) == 0 {
		return fmt.Errorf("no waves defined")
	}
	for i, w := range lvl.Waves {
		if w.Count <= 0 {
			return fmt.Errorf("wave %d: enemy count must be positive", i+1)
		}
		if w.Health <= 0 {
			return fmt.Errorf("wave %d: enemy health must be positive", i+1)
		}
		if w.Speed <= 0 {
			return fmt.Errorf("wave %d: enemy speed must be positive", i+1)
		}
		if w.Reward < 0 {
			return fmt.Errorf("wave %d: reward must not be negative", i+1)
		}
		if _, ok := EnemyLibrary[w.EnemyID]; !ok {
			return fmt.Errorf("wave %d: unknown enemy id %q", i+1, w.EnemyID)
		}
	}
	return nil
}
