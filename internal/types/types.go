// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS.
// Идентификаторы выдаются монотонно, поэтому порядок возрастания ID
// совпадает с порядком создания сущностей.
type EntityID uint64
