// internal/defs/types.go
package defs

// TowerVariant — тип башни. Диспетчеризация поведения (выбор цели,
// генерация денег) идёт по этому тегу, а не по иерархии типов.
type TowerVariant string

const (
	TowerBasic  TowerVariant = "basic"
	TowerSniper TowerVariant = "sniper"
	TowerMoney  TowerVariant = "money"
)

// Valid сообщает, известен ли такой тип башни.
func (v TowerVariant) Valid() bool {
	switch v {
	case TowerBasic, TowerSniper, TowerMoney:
		return true
	}
	return false
}
