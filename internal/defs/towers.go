// internal/defs/towers.go
package defs

// TowerDefinition holds the static data for a specific tower variant.
// RateOfFireMs is the minimum interval between shots in milliseconds;
// for the money tower it is the money generation interval instead.
type TowerDefinition struct {
	Variant      TowerVariant `json:"variant"`
	Name         string       `json:"name"`
	Damage       int          `json:"damage"`
	Range        float64      `json:"range"`
	RateOfFireMs int          `json:"rate_of_fire_ms"`
	// Только для денежной башни.
	MoneyPerTick int `json:"money_per_tick"`
}

// TowerLibrary is the library of all tower definitions, mapped by variant.
var TowerLibrary = map[TowerVariant]TowerDefinition{
	TowerBasic: {
		Variant:      TowerBasic,
		Name:         "Basic Tower",
		Damage:       20,
		Range:        150,
		RateOfFireMs: 1000,
	},
	TowerSniper: {
		Variant:      TowerSniper,
		Name:         "Sniper Tower",
		Damage:       40,
		Range:        300,
		RateOfFireMs: 2000,
	},
	TowerMoney: {
		Variant:      TowerMoney,
		Name:         "Money Tower",
		RateOfFireMs: 1000,
		MoneyPerTick: 10,
	},
}
