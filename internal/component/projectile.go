// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд. Снаряд не самонаводящийся:
// направление фиксируется в момент выстрела по текущей позиции цели.
type Projectile struct {
	Damage    int
	Speed     float64
	Direction float64 // радианы
}
