// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed weapons.json
var defaultWeapons []byte

// WeaponLibrary is a map to hold all weapon definitions, keyed by their ID.
var WeaponLibrary map[string]WeaponDefinition

// LoadWeaponDefinitions populates the WeaponLibrary from the embedded
// defaults. Called once at startup.
func LoadWeaponDefinitions() error {
	return loadWeapons(defaultWeapons)
}

// LoadWeaponDefinitionsFromFile reads an external weapon configuration file,
// overriding the embedded defaults.
func LoadWeaponDefinitionsFromFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}
	return loadWeapons(file)
}

func loadWeapons(data []byte) error {
	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(data, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}
