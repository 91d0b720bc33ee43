// internal/component/render.go
package component

import "image/color"

// Renderable — визуальное представление сущности для слоя отрисовки.
// Симуляция заполняет компонент, но никогда его не читает.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
