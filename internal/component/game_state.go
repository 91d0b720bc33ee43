// internal/component/game_state.go
package component

// GameState — единственное на игру состояние сессии: казна и терминальные
// флаги. Мутируется только изнутри тика, блокировки не нужны.
type GameState struct {
	Money             int
	GameOver          bool // враг дошёл до базы
	LevelComplete     bool // все волны текущего уровня зачищены
	AllLevelsComplete bool // пройдена вся кампания
}

// Credit зачисляет сумму в казну. Отрицательные значения игнорируются,
// баланс не может стать отрицательным через начисление.
func (gs *GameState) Credit(amount int) {
	if amount <= 0 {
		return
	}
	gs.Money += amount
}

// TryDebit списывает сумму, если средств достаточно.
// При нехватке средств состояние не меняется.
func (gs *GameState) TryDebit(amount int) bool {
	if amount < 0 {
		return false
	}
	if gs.Money < amount {
		return false
	}
	gs.Money -= amount
	return true
}
