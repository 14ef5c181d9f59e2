package inventory

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/actorcore/internal/game/status"
)

var slotObjectTypes = map[ArmorSlot]ObjectType{
	SlotHead:  ObjectHeadArmor,
	SlotTorso: ObjectTorsoArmor,
	SlotArms:  ObjectArmArmor,
	SlotLegs:  ObjectLegArmor,
}

// ArmorDef defines the static properties of an armor piece loaded from YAML.
type ArmorDef struct {
	ID              uint32          `yaml:"id"`
	Name            string          `yaml:"name"`
	Description     string          `yaml:"description"`
	Slot            ArmorSlot       `yaml:"slot"`
	PhysicalDefense uint32          `yaml:"physical_defense"`
	MagicalDefense  uint32          `yaml:"magical_defense"`
	Price           uint32          `yaml:"price"`
	StatusEffects   []status.Effect `yaml:"status_effects"`
	Skills          []uint32        `yaml:"skills"`
}

// Validate reports an error if the ArmorDef is missing required fields or
// its id range disagrees with its slot.
//
// Precondition: a is non-nil.
// Postcondition: returns nil iff the def is well-formed.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	want, ok := slotObjectTypes[a.Slot]
	if !ok {
		errs = append(errs, fmt.Errorf("slot %q is not a valid armor slot", a.Slot))
	} else if got := ObjectTypeForID(a.ID); got != want {
		errs = append(errs, fmt.Errorf("id %d is a %s id but slot is %q", a.ID, got, a.Slot))
	}
	for i, e := range a.StatusEffects {
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("status_effects[%d]: unknown status %d", i, int(e.Type)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// LoadArmors reads all YAML files in dir and returns parsed ArmorDef slice.
//
// Precondition: dir must be a readable directory.
// Postcondition: returns non-nil slice and nil error on success; all returned defs pass Validate.
func LoadArmors(dir string) ([]*ArmorDef, error) {
	armors := []*ArmorDef{}
	err := loadYAMLDir(dir, func(path string, data []byte) error {
		var a ArmorDef
		if err := yaml.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("cannot parse file %q: %w", path, err)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("invalid armor in %q: %w", path, err)
		}
		armors = append(armors, &a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadArmors: %w", err)
	}
	return armors, nil
}

// Armor is an owned armor instance.
type Armor struct {
	def *ArmorDef
}

// NewArmor returns an Armor bound to def.
//
// Precondition: def is non-nil.
func NewArmor(def *ArmorDef) *Armor {
	return &Armor{def: def}
}

// ID returns the armor's object id.
func (a *Armor) ID() uint32 { return a.def.ID }

// Name returns the display name.
func (a *Armor) Name() string { return a.def.Name }

// ObjectType returns the armor category derived from the id.
func (a *Armor) ObjectType() ObjectType { return ObjectTypeForID(a.def.ID) }

// Slot returns the body region the armor covers.
func (a *Armor) Slot() ArmorSlot { return a.def.Slot }

// PhysicalDefense returns the armor's physical defense bonus.
func (a *Armor) PhysicalDefense() uint32 { return a.def.PhysicalDefense }

// MagicalDefense returns the armor's magical defense bonus.
func (a *Armor) MagicalDefense() uint32 { return a.def.MagicalDefense }

// StatusEffects returns the passive effects the armor grants while equipped.
func (a *Armor) StatusEffects() []status.Effect { return a.def.StatusEffects }

// Skills returns the skill ids the armor grants while equipped.
func (a *Armor) Skills() []uint32 { return a.def.Skills }

// Def returns the underlying definition.
func (a *Armor) Def() *ArmorDef { return a.def }

// Clone returns an independent copy of a.
func (a *Armor) Clone() *Armor {
	if a == nil {
		return nil
	}
	return &Armor{def: a.def}
}
