// internal/component/wave.go
package component

import "github.com/ilka74/TowerDefence/internal/defs"

// Wave — состояние текущей волны. Волна состоит из Count одинаковых
// дескрипторов спавна; между спавнами выдерживается фиксированный интервал,
// отсчитываемый от момента предыдущего спавна.
type Wave struct {
	Number         int // номер волны в уровне, с единицы
	Def            defs.WaveDefinition
	EnemiesToSpawn int
	SpawnTimer     float64 // накопленное время с предыдущего спавна, сек
	SpawnInterval  float64 // интервал между спавнами, сек
}
