package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ObjectType classifies a global object by its id range.
type ObjectType int

const (
	ObjectInvalid    ObjectType = -1
	ObjectItem       ObjectType = 0
	ObjectWeapon     ObjectType = 1
	ObjectHeadArmor  ObjectType = 2
	ObjectTorsoArmor ObjectType = 3
	ObjectArmArmor   ObjectType = 4
	ObjectLegArmor   ObjectType = 5
)

// Upper bounds (inclusive) of each object id range.
const (
	MaxItemID       uint32 = 10000
	MaxWeaponID     uint32 = 20000
	MaxHeadArmorID  uint32 = 30000
	MaxTorsoArmorID uint32 = 40000
	MaxArmArmorID   uint32 = 50000
	MaxLegArmorID   uint32 = 60000
)

// String returns the lower-case type name.
func (t ObjectType) String() string {
	switch t {
	case ObjectItem:
		return "item"
	case ObjectWeapon:
		return "weapon"
	case ObjectHeadArmor:
		return "head_armor"
	case ObjectTorsoArmor:
		return "torso_armor"
	case ObjectArmArmor:
		return "arm_armor"
	case ObjectLegArmor:
		return "leg_armor"
	default:
		return "invalid"
	}
}

// IsArmor reports whether t is one of the four armor types.
func (t ObjectType) IsArmor() bool {
	return t >= ObjectHeadArmor && t <= ObjectLegArmor
}

// ObjectTypeForID maps an object id onto its type by id range.
//
// Postcondition: returns ObjectInvalid for id 0 and ids above MaxLegArmorID.
func ObjectTypeForID(id uint32) ObjectType {
	switch {
	case id == 0:
		return ObjectInvalid
	case id <= MaxItemID:
		return ObjectItem
	case id <= MaxWeaponID:
		return ObjectWeapon
	case id <= MaxHeadArmorID:
		return ObjectHeadArmor
	case id <= MaxTorsoArmorID:
		return ObjectTorsoArmor
	case id <= MaxArmArmorID:
		return ObjectArmArmor
	case id <= MaxLegArmorID:
		return ObjectLegArmor
	default:
		return ObjectInvalid
	}
}

// ItemDef defines a plain (non-equippable) item loaded from YAML.
type ItemDef struct {
	ID          uint32 `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       uint32 `yaml:"price"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if ObjectTypeForID(d.ID) != ObjectItem {
		errs = append(errs, fmt.Errorf("ID %d is outside the item range 1-%d", d.ID, MaxItemID))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	var items []*ItemDef
	err := loadYAMLDir(dir, func(path string, data []byte) error {
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid item in %q: %w", path, err)
		}
		items = append(items, &d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadItems: %w", err)
	}
	return items, nil
}

// Object is a concrete instance of any global object, e.g. an enemy drop.
type Object struct {
	InstanceID string
	ID         uint32
	Type       ObjectType
	Name       string
	Count      uint32
}

// newObject stamps a fresh instance id onto an object of the given definition.
func newObject(id uint32, name string, count uint32) Object {
	return Object{
		InstanceID: uuid.New().String(),
		ID:         id,
		Type:       ObjectTypeForID(id),
		Name:       name,
		Count:      count,
	}
}

// loadYAMLDir calls fn with the contents of each *.yaml / *.yml file in dir.
func loadYAMLDir(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read file %q: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}
	return nil
}
