// internal/config/config.go
package config

import (
	"fmt"
	"image/color"

	"github.com/spf13/viper"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Максимальный шаг симуляции: защита от скачка после паузы окна.
	MaxDeltaTime = 0.06

	GridCellSize = 40

	EnemyHitRadius   = 15.0 // радиус засчитывания попадания снаряда
	EnemyRadius      = 12.0
	TowerRadius      = 16.0
	ProjectileRadius = 4.0

	ProjectileSpeed = 420.0 // пикселей в секунду

	// Стоимость улучшения башни: UpgradeCostPerLevel * текущий уровень.
	UpgradeCostPerLevel = 50

	// Коэффициенты улучшения, результат усекается до целого.
	UpgradeDamageFactor   = 1.2
	UpgradeIntervalFactor = 0.8

	SpawnDelayMs = 1000 // фиксированная задержка между спавнами в волне
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{0, 128, 0, 255}
	GridColor       = color.RGBA{60, 60, 70, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	WinTextColor    = color.RGBA{255, 215, 0, 255}
	LoseTextColor   = color.RGBA{255, 0, 0, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	ProjectileColor = color.RGBA{255, 255, 0, 255}

	// Цвета врагов по ID определения.
	EnemyColors = map[string]color.RGBA{
		"ENEMY_BASIC":  {200, 60, 60, 255},
		"ENEMY_FAST":   {230, 160, 40, 255},
		"ENEMY_STRONG": {150, 70, 180, 255},
		"ENEMY_BOSS":   {90, 20, 20, 255},
	}
	DefaultEnemyColor = color.RGBA{200, 60, 60, 255}

	// Цвета башен по типу.
	TowerColors = map[string]color.RGBA{
		"basic":  {50, 255, 50, 255},
		"sniper": {50, 100, 255, 255},
		"money":  {255, 215, 0, 255},
	}
)

// Settings — настройки игровой сессии, загружаемые из файла.
// Статический баланс (характеристики врагов и башен) живёт в internal/defs,
// здесь только то, что игрок или тесты могут захотеть переопределить.
type Settings struct {
	ScreenWidth   int            `mapstructure:"screen_width"`
	ScreenHeight  int            `mapstructure:"screen_height"`
	StartingMoney int            `mapstructure:"starting_money"`
	TowerCosts    map[string]int `mapstructure:"tower_costs"`
	SpawnDelayMs  int            `mapstructure:"spawn_delay_ms"`
	Seed          int64          `mapstructure:"seed"` // 0 — сид от текущего времени
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		ScreenWidth:   ScreenWidth,
		ScreenHeight:  ScreenHeight,
		StartingMoney: 200,
		TowerCosts: map[string]int{
			"basic":  50,
			"sniper": 100,
			"money":  75,
		},
		SpawnDelayMs: SpawnDelayMs,
		Seed:         0,
	}
}

// LoadSettings читает настройки из файла через viper.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("screen_width", s.ScreenWidth)
	v.SetDefault("screen_height", s.ScreenHeight)
	v.SetDefault("starting_money", s.StartingMoney)
	v.SetDefault("tower_costs", s.TowerCosts)
	v.SetDefault("spawn_delay_ms", s.SpawnDelayMs)
	v.SetDefault("seed", s.Seed)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return nil, fmt.Errorf("не удалось разобрать файл настроек %s: %w", path, err)
		}
		// Файла нет — играем с настройками по умолчанию.
		return s, nil
	}

	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("не удалось применить настройки из %s: %w", path, err)
	}

	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return nil, fmt.Errorf("некорректный размер экрана в %s: %dx%d", path, s.ScreenWidth, s.ScreenHeight)
	}
	if s.StartingMoney < 0 {
		return nil, fmt.Errorf("стартовый баланс не может быть отрицательным: %d", s.StartingMoney)
	}
	return s, nil
}
