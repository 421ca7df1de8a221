// internal/component/turret.go
package component

// Turret — артиллерийская турель одной из сторон. Чистые данные:
// прицеливанием управляет AimSystem, стрельбой — Game.
type Turret struct {
	Team      int     // config.TeamLeft или config.TeamRight
	Angle     float64 // угол ствола, радианы (экранная конвенция, вверх — отрицательный)
	Power     float64 // мощность выстрела в [0, 1]
	BaseIndex int     // индекс площадки в Landscape.FlatBases
	WeaponID  string
}
