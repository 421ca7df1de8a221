// internal/component/projectile.go
package component

import "go-artillery-duel/internal/types"

// Projectile представляет летящий снаряд. Позиция и скорость лежат в
// отдельных компонентах Position/Velocity, здесь — только данные выстрела.
type Projectile struct {
	WeaponID      string
	OwnerID       types.EntityID // турель, произведшая выстрел
	FiredAt       float64        // игровое время выстрела, сек
	MaxFlightTime float64        // лимит полёта из описания оружия, сек
}
