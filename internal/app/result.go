// internal/app/result.go
package app

// PlaceResult — код результата попытки построить или улучшить башню.
// Отказ не меняет состояние игры и не является фатальной ошибкой.
type PlaceResult int

const (
	PlaceOK PlaceResult = iota
	PlaceUnknownVariant
	PlaceInsufficientFunds
	PlaceInvalidCell
	PlaceNoTowerAtCell // только для улучшения: в клетке нет башни
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceUnknownVariant:
		return "unknown tower variant"
	case PlaceInsufficientFunds:
		return "insufficient funds"
	case PlaceInvalidCell:
		return "invalid cell"
	case PlaceNoTowerAtCell:
		return "no tower at cell"
	}
	return "unknown result"
}
