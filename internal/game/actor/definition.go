package actor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
)

// BaseStats are the starting values of an actor.
type BaseStats struct {
	HitPoints        uint32  `yaml:"hit_points"`
	SkillPoints      uint32  `yaml:"skill_points"`
	ExperiencePoints uint32  `yaml:"experience_points"`
	Strength         uint32  `yaml:"strength"`
	Vigor            uint32  `yaml:"vigor"`
	Fortitude        uint32  `yaml:"fortitude"`
	Protection       uint32  `yaml:"protection"`
	Agility          uint32  `yaml:"agility"`
	Evade            float32 `yaml:"evade"`
}

// EquipmentIDs names the initial equipment of a character. Zero means empty.
type EquipmentIDs struct {
	Weapon uint32 `yaml:"weapon"`
	Head   uint32 `yaml:"head_armor"`
	Torso  uint32 `yaml:"torso_armor"`
	Arms   uint32 `yaml:"arm_armor"`
	Legs   uint32 `yaml:"leg_armor"`
}

// armorIDs returns the armor ids indexed by equipment position.
func (e EquipmentIDs) armorIDs() [inventory.PositionCount]uint32 {
	return [inventory.PositionCount]uint32{
		inventory.PositionHead:  e.Head,
		inventory.PositionTorso: e.Torso,
		inventory.PositionArms:  e.Arms,
		inventory.PositionLegs:  e.Legs,
	}
}

// InitialStats are the template values a new character starts from.
type InitialStats struct {
	BaseStats       `yaml:",inline"`
	ExperienceLevel uint32       `yaml:"experience_level"`
	Equipment       EquipmentIDs `yaml:",inline"`
}

// LevelSkill grants a skill once the character reaches Level.
type LevelSkill struct {
	Level uint32 `yaml:"level"`
	Skill uint32 `yaml:"skill"`
}

// LevelGrowth is the stat gain for reaching Level.
type LevelGrowth struct {
	Level       uint32  `yaml:"level"`
	HitPoints   uint32  `yaml:"hit_points"`
	SkillPoints uint32  `yaml:"skill_points"`
	Strength    uint32  `yaml:"strength"`
	Vigor       uint32  `yaml:"vigor"`
	Fortitude   uint32  `yaml:"fortitude"`
	Protection  uint32  `yaml:"protection"`
	Agility     uint32  `yaml:"agility"`
	Evade       float32 `yaml:"evade"`
}

// GrowthDef is the per-level progression table of a character.
type GrowthDef struct {
	// ExperienceForNextLevel[i] is the experience needed to leave level i+1.
	ExperienceForNextLevel []int32       `yaml:"experience_for_next_level"`
	Levels                 []LevelGrowth `yaml:"levels"`
}

// CharacterDef is the static definition of a playable character.
type CharacterDef struct {
	ID                 uint32             `yaml:"id"`
	Name               string             `yaml:"name"`
	Initial            InitialStats       `yaml:"initial_stats"`
	AttackPoints       []AttackPointDef   `yaml:"attack_points"`
	Skills             []LevelSkill       `yaml:"skills"`
	BareHandsSkills    []uint32           `yaml:"bare_hands_skills"`
	Growth             GrowthDef          `yaml:"growth"`
	ElementalModifiers map[string]float32 `yaml:"elemental_modifiers"`
}

// Validate checks that the CharacterDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *CharacterDef) Validate() error {
	var errs []error
	if d.ID == 0 {
		errs = append(errs, errors.New("id must not be zero"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Initial.ExperienceLevel == 0 {
		errs = append(errs, errors.New("initial_stats.experience_level must be >= 1"))
	}
	if len(d.AttackPoints) != inventory.PositionCount {
		errs = append(errs, fmt.Errorf("attack_points must have exactly %d entries (head, torso, arms, legs), got %d",
			inventory.PositionCount, len(d.AttackPoints)))
	}
	if err := validateElemental(d.ElementalModifiers); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("character validation failed: %v", errs)
	}
	return nil
}

// Drop is one entry of an enemy's drop table.
type Drop struct {
	Object uint32  `yaml:"object"`
	Chance float32 `yaml:"chance"`
}

// EnemyDef is the static definition of an enemy.
type EnemyDef struct {
	ID                  uint32             `yaml:"id"`
	Name                string             `yaml:"name"`
	BaseStats           BaseStats          `yaml:"base_stats"`
	Drunes              uint32             `yaml:"drunes"`
	AttackPoints        []AttackPointDef   `yaml:"attack_points"`
	Skills              []uint32           `yaml:"skills"`
	Drops               []Drop             `yaml:"drop_objects"`
	NoStatRandomization bool               `yaml:"no_stat_randomization"`
	ElementalModifiers  map[string]float32 `yaml:"elemental_modifiers"`
}

// Validate checks that the EnemyDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *EnemyDef) Validate() error {
	var errs []error
	if d.ID == 0 {
		errs = append(errs, errors.New("id must not be zero"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for i, drop := range d.Drops {
		if drop.Object == 0 {
			errs = append(errs, fmt.Errorf("drop_objects[%d]: object must not be zero", i))
		}
		if drop.Chance < 0 || drop.Chance > 1 {
			errs = append(errs, fmt.Errorf("drop_objects[%d]: chance %v outside [0, 1]", i, drop.Chance))
		}
	}
	if err := validateElemental(d.ElementalModifiers); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("enemy validation failed: %v", errs)
	}
	return nil
}

func validateElemental(mods map[string]float32) error {
	for name := range mods {
		if _, ok := attribute.ParseElement(name); !ok {
			return fmt.Errorf("elemental_modifiers: unknown element %q", name)
		}
	}
	return nil
}

// elementalProfile builds a profile from the named overrides.
func elementalProfile(mods map[string]float32) attribute.ElementalProfile {
	p := attribute.NewElementalProfile()
	for name, v := range mods {
		if e, ok := attribute.ParseElement(name); ok {
			p[e] = v
		}
	}
	return p
}

// LoadCharacterDefs reads all *.yaml files from dir, one CharacterDef per file.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid CharacterDefs or the first encountered error.
func LoadCharacterDefs(dir string) ([]*CharacterDef, error) {
	var out []*CharacterDef
	err := loadDir(dir, func(path string, data []byte) error {
		var d CharacterDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid character in %q: %w", path, err)
		}
		out = append(out, &d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadCharacterDefs: %w", err)
	}
	return out, nil
}

// LoadEnemyDefs reads all *.yaml files from dir, one EnemyDef per file.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid EnemyDefs or the first encountered error.
func LoadEnemyDefs(dir string) ([]*EnemyDef, error) {
	var out []*EnemyDef
	err := loadDir(dir, func(path string, data []byte) error {
		var d EnemyDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid enemy in %q: %w", path, err)
		}
		out = append(out, &d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadEnemyDefs: %w", err)
	}
	return out, nil
}

func loadDir(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
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
