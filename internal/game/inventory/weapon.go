// Package inventory provides definitions, loaders and owned instances for the
// weapons, armor and items an actor can equip or drop.
package inventory

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID             uint32          `yaml:"id"`
	Name           string          `yaml:"name"`
	Description    string          `yaml:"description"`
	PhysicalAttack uint32          `yaml:"physical_attack"`
	MagicalAttack  uint32          `yaml:"magical_attack"`
	Price          uint32          `yaml:"price"`
	StatusEffects  []status.Effect `yaml:"status_effects"`
	Skills         []uint32        `yaml:"skills"`
}

// Validate checks that the WeaponDef satisfies its invariants.
//
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if ObjectTypeForID(w.ID) != ObjectWeapon {
		errs = append(errs, fmt.Errorf("ID %d is outside the weapon range %d-%d", w.ID, MaxItemID+1, MaxWeaponID))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	for i, e := range w.StatusEffects {
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("status_effects[%d]: unknown status %d", i, int(e.Type)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// LoadWeapons reads all YAML files from dir, parses each as a WeaponDef,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	var weapons []*WeaponDef
	err := loadYAMLDir(dir, func(path string, data []byte) error {
		var w WeaponDef
		if err := yaml.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("cannot parse file %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, &w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: %w", err)
	}
	return weapons, nil
}

// Weapon is an owned weapon instance.
type Weapon struct {
	def *WeaponDef
}

// NewWeapon returns a Weapon bound to def.
//
// Precondition: def is non-nil.
func NewWeapon(def *WeaponDef) *Weapon {
	return &Weapon{def: def}
}

// ID returns the weapon's object id.
func (w *Weapon) ID() uint32 { return w.def.ID }

// Name returns the display name.
func (w *Weapon) Name() string { return w.def.Name }

// PhysicalAttack returns the weapon's physical attack bonus.
func (w *Weapon) PhysicalAttack() uint32 { return w.def.PhysicalAttack }

// MagicalAttack returns the weapon's magical attack bonus.
func (w *Weapon) MagicalAttack() uint32 { return w.def.MagicalAttack }

// StatusEffects returns the passive effects the weapon grants while equipped.
func (w *Weapon) StatusEffects() []status.Effect { return w.def.StatusEffects }

// Skills returns the skill ids the weapon grants while equipped.
func (w *Weapon) Skills() []uint32 { return w.def.Skills }

// Def returns the underlying definition.
func (w *Weapon) Def() *WeaponDef { return w.def }

// Clone returns an independent copy of w.
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	return &Weapon{def: w.def}
}
