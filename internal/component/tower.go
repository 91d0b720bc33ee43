// internal/component/tower.go
package component

import "github.com/ilka74/TowerDefence/internal/defs"

// GridCell — клетка сетки размещения.
type GridCell struct {
	Col, Row int
}

// Tower представляет установленную башню. Позиция хранится в компоненте
// Position и после установки не меняется.
type Tower struct {
	Variant      defs.TowerVariant
	Cell         GridCell
	Level        int
	Damage       int
	Range        float64
	RateOfFireMs int     // минимальный интервал между выстрелами, мс
	LastShotTime float64 // игровое время последнего выстрела, сек
	Angle        float64 // угол поворота к цели, для отрисовки

	// Только для денежной башни: сколько начислять за интервал.
	// Интервал генерации — RateOfFireMs, таймер — LastShotTime.
	MoneyPerTick int
}

// UpgradeCost возвращает стоимость следующего улучшения.
func (t *Tower) UpgradeCost(costPerLevel int) int {
	return costPerLevel * t.Level
}
