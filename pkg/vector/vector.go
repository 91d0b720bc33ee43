// pkg/vector/vector.go
package vector

import "math"

// Vec2 — двумерный вектор (позиция или направление).
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму векторов.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub возвращает разность векторов.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul возвращает вектор, умноженный на скаляр.
func (v Vec2) Mul(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора направление не определено: возвращается
// нулевой вектор и ok=false, вызывающий код обязан это проверять.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Distance возвращает расстояние между двумя точками.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Angle возвращает угол направления на точку o в радианах.
func (v Vec2) Angle(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// Rotate возвращает вектор, повёрнутый на угол a радиан.
func (v Vec2) Rotate(a float64) Vec2 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
