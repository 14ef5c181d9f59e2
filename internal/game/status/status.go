// Package status models status-effect types, signed intensities and the
// passive-effect handler table that equipment-granted effects are dispatched to.
package status

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type identifies a status effect.
type Type int

const (
	Strength Type = iota
	Vigor
	Fortitude
	Protection
	Agility
	Evade
	HP
	SP
	Paralysis
	Fire
	Water
	Volt
	Earth
	Life
	Death
	Neutral
	// Total is the number of status types.
	Total
)

var typeNames = [Total]string{
	Strength:   "strength",
	Vigor:      "vigor",
	Fortitude:  "fortitude",
	Protection: "protection",
	Agility:    "agility",
	Evade:      "evade",
	HP:         "hp",
	SP:         "sp",
	Paralysis:  "paralysis",
	Fire:       "fire",
	Water:      "water",
	Volt:       "volt",
	Earth:      "earth",
	Life:       "life",
	Death:      "death",
	Neutral:    "neutral",
}

// String returns the lower-case name used in content and script files.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("status(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is a real status type.
func (t Type) Valid() bool {
	return t >= 0 && t < Total
}

// ParseType maps a status name back to its Type.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return -1, false
}

// UnmarshalYAML accepts either a status name ("strength") or its integer id.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err == nil {
		if parsed, ok := ParseType(name); ok {
			*t = parsed
			return nil
		}
	}
	var id int
	if err := node.Decode(&id); err != nil {
		return fmt.Errorf("status type %q is neither a name nor an id", node.Value)
	}
	if !Type(id).Valid() {
		return fmt.Errorf("status type id %d out of range", id)
	}
	*t = Type(id)
	return nil
}

// Intensity is a signed effect strength in [NegExtreme, PosExtreme]; Neutral is no effect.
type Intensity int

const (
	NegExtreme  Intensity = -4
	NegGreater  Intensity = -3
	NegModerate Intensity = -2
	NegLesser   Intensity = -1
	// IntensityNeutral means the effect is absent.
	IntensityNeutral Intensity = 0
	PosLesser        Intensity = 1
	PosModerate      Intensity = 2
	PosGreater       Intensity = 3
	PosExtreme       Intensity = 4
)

// Clamp bounds i to [NegExtreme, PosExtreme].
func (i Intensity) Clamp() Intensity {
	switch {
	case i > PosExtreme:
		return PosExtreme
	case i < NegExtreme:
		return NegExtreme
	default:
		return i
	}
}

// Add returns i + delta saturated to [NegExtreme, PosExtreme].
//
// Postcondition: NegExtreme <= result <= PosExtreme.
func (i Intensity) Add(delta Intensity) Intensity {
	return (i + delta).Clamp()
}

// IsNeutral reports whether the intensity carries no effect.
func (i Intensity) IsNeutral() bool {
	return i == IntensityNeutral
}

// Effect is a (status type, intensity) contribution declared by an item.
type Effect struct {
	Type      Type      `yaml:"status"`
	Intensity Intensity `yaml:"intensity"`
}

// Chance is a (status type, probability) pair declared by an attack point:
// the probability that a hit on that point inflicts the status.
type Chance struct {
	Type        Type    `yaml:"status"`
	Probability float32 `yaml:"probability"`
}
