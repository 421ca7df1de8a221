// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS. 0 — невалидный ID.
type EntityID uint64
