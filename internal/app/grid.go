// internal/app/grid.go
package app

import (
	"math"

	"github.com/ilka74/TowerDefence/internal/component"
	"github.com/ilka74/TowerDefence/pkg/vector"
)

// Grid — сетка размещения башен: одна башня на клетку.
type Grid struct {
	cols, rows int
	cellSize   int
	occupied   map[component.GridCell]bool
}

func NewGrid(screenW, screenH, cellSize int) *Grid {
	return &Grid{
		cols:     screenW / cellSize,
		rows:     screenH / cellSize,
		cellSize: cellSize,
		occupied: make(map[component.GridCell]bool),
	}
}

// CellAt возвращает клетку, в которую попадает экранная точка.
// Деление с округлением вниз: отрицательные координаты попадают
// в отрицательные клетки, а не в нулевую.
func (g *Grid) CellAt(p vector.Vec2) component.GridCell {
	return component.GridCell{
		Col: int(math.Floor(p.X / float64(g.cellSize))),
		Row: int(math.Floor(p.Y / float64(g.cellSize))),
	}
}

// CellCenter возвращает центр клетки в экранных координатах.
func (g *Grid) CellCenter(c component.GridCell) vector.Vec2 {
	return vector.Vec2{
		X: float64(c.Col*g.cellSize + g.cellSize/2),
		Y: float64(c.Row*g.cellSize + g.cellSize/2),
	}
}

// Contains сообщает, лежит ли клетка в пределах поля.
func (g *Grid) Contains(c component.GridCell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// SpotAvailable сообщает, можно ли строить в клетке.
func (g *Grid) SpotAvailable(c component.GridCell) bool {
	return g.Contains(c) && !g.occupied[c]
}

// Occupy помечает клетку занятой.
func (g *Grid) Occupy(c component.GridCell) {
	g.occupied[c] = true
}

// CellSize возвращает размер клетки в пикселях.
func (g *Grid) CellSize() int {
	return g.cellSize
}
