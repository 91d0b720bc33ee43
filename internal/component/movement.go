// internal/component/movement.go
package component

import "github.com/ilka74/TowerDefence/pkg/vector"

// Position — компонент позиции.
type Position struct {
	Point vector.Vec2
}

// Velocity — компонент скорости (пикселей в секунду).
type Velocity struct {
	Speed float64
}

// Path — маршрут и индекс текущего сегмента.
// Инвариант: Points непуст, Index всегда валидный индекс в Points.
type Path struct {
	Points []vector.Vec2
	Index  int
}
