// internal/defs/types.go
package defs

// WeaponDefinition holds all the static data for a specific shell type.
type WeaponDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Damage          int     `json:"damage"`
	ExplosionRadius float64 `json:"explosion_radius"`
	BaseSpeed       float64 `json:"base_speed"` // стартовая скорость при power = 0
	MaxSpeed        float64 `json:"max_speed"`  // стартовая скорость при power = 1
	FlightTime      float64 `json:"flight_time"`
}

// DefaultWeaponID — оружие, выдаваемое турелям при старте раунда.
const DefaultWeaponID = "SHELL_STANDARD"
