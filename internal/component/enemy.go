// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID определения из internal/defs
	MaxHealth  int    // стартовое здоровье, нужно снайперским башням и отрисовке
	Reward     int    // награда за уничтожение
	WaveNumber int    // номер волны, в которой враг появился
}

// Health — компонент здоровья.
type Health struct {
	Value int
}
