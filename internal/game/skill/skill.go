// Package skill provides skill definitions, their YAML loader and the registry
// actors resolve skill ids against.
package skill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Type is the bucket a skill is filed under on a character.
type Type int

const (
	TypeInvalid   Type = -1
	TypeWeapon    Type = 0
	TypeMagic     Type = 1
	TypeSpecial   Type = 2
	TypeBareHands Type = 3
)

// Upper bounds (inclusive) of each skill id range.
const (
	MaxWeaponID    uint32 = 10000
	MaxMagicID     uint32 = 20000
	MaxSpecialID   uint32 = 30000
	MaxBareHandsID uint32 = 40000
)

// String returns the lower-case type name.
func (t Type) String() string {
	switch t {
	case TypeWeapon:
		return "weapon"
	case TypeMagic:
		return "magic"
	case TypeSpecial:
		return "special"
	case TypeBareHands:
		return "bare_hands"
	default:
		return "invalid"
	}
}

// TypeForID maps a skill id onto its type by id range.
//
// Postcondition: returns TypeInvalid for id 0 and for ids above MaxBareHandsID.
func TypeForID(id uint32) Type {
	switch {
	case id == 0:
		return TypeInvalid
	case id <= MaxWeaponID:
		return TypeWeapon
	case id <= MaxMagicID:
		return TypeMagic
	case id <= MaxSpecialID:
		return TypeSpecial
	case id <= MaxBareHandsID:
		return TypeBareHands
	default:
		return TypeInvalid
	}
}

// Def is the static definition of a skill loaded from YAML.
type Def struct {
	ID          uint32 `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SPRequired  uint32 `yaml:"sp_required"`
	WarmupTime  uint32 `yaml:"warmup_time"`
	Cooldown    uint32 `yaml:"cooldown_time"`
}

// Type returns the bucket derived from the definition's id.
func (d *Def) Type() Type {
	return TypeForID(d.ID)
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == 0 {
		errs = append(errs, errors.New("ID must not be zero"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill validation failed: %v", errs)
	}
	return nil
}

// Skill is an actor-owned instance of a skill definition.
type Skill struct {
	def *Def
}

// New returns a Skill bound to def.
//
// Precondition: def is non-nil.
func New(def *Def) *Skill {
	return &Skill{def: def}
}

// ID returns the skill id.
func (s *Skill) ID() uint32 { return s.def.ID }

// Name returns the display name.
func (s *Skill) Name() string { return s.def.Name }

// Type returns the skill bucket.
func (s *Skill) Type() Type { return s.def.Type() }

// SPRequired returns the skill point cost.
func (s *Skill) SPRequired() uint32 { return s.def.SPRequired }

// Def returns the underlying definition.
func (s *Skill) Def() *Def { return s.def }

// Clone returns an independent copy of s.
func (s *Skill) Clone() *Skill {
	return &Skill{def: s.def}
}

// Source resolves skill ids to definitions.
type Source interface {
	Skill(id uint32) (*Def, bool)
}

// Registry holds all loaded skill definitions indexed by id.
type Registry struct {
	skills map[uint32]*Def
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{skills: make(map[uint32]*Def)}
}

// Register adds d to the registry.
//
// Precondition: d must not be nil.
// Postcondition: Skill(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) Register(d *Def) error {
	if _, exists := r.skills[d.ID]; exists {
		return fmt.Errorf("skill: Registry.Register: skill ID %d already registered", d.ID)
	}
	r.skills[d.ID] = d
	return nil
}

// Skill returns the definition for id and whether it was found.
func (r *Registry) Skill(id uint32) (*Def, bool) {
	d, ok := r.skills[id]
	return d, ok
}

// Len returns the number of registered skills.
func (r *Registry) Len() int { return len(r.skills) }

// LoadSkills reads all *.yaml files from dir. Each file holds a list of skill definitions.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadSkills(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadSkills: cannot read directory %q: %w", dir, err)
	}
	var out []*Def
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot read file %q: %w", path, err)
		}
		var defs []*Def
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot parse file %q: %w", path, err)
		}
		for _, d := range defs {
			if err := d.Validate(); err != nil {
				return nil, fmt.Errorf("LoadSkills: invalid skill in %q: %w", path, err)
			}
			out = append(out, d)
		}
	}
	return out, nil
}
