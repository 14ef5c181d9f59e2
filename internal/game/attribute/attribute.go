// Package attribute defines the leaf value types shared by every actor:
// stat attributes, the stat identifiers and the per-element multiplier profile.
package attribute

import "fmt"

// Stat identifies one of the six modifiable base statistics of an actor.
type Stat int

const (
	Strength Stat = iota
	Vigor
	Fortitude
	Protection
	Agility
	Evade
	// StatTotal is the number of valid Stat values.
	StatTotal
)

var statNames = [StatTotal]string{
	Strength:   "strength",
	Vigor:      "vigor",
	Fortitude:  "fortitude",
	Protection: "protection",
	Agility:    "agility",
	Evade:      "evade",
}

// String returns the lower-case stat name used in content files and scripts.
func (s Stat) String() string {
	if s < 0 || s >= StatTotal {
		return fmt.Sprintf("stat(%d)", int(s))
	}
	return statNames[s]
}

// Valid reports whether s names a real stat.
func (s Stat) Valid() bool {
	return s >= 0 && s < StatTotal
}

// ParseStat maps a stat name back to its Stat.
//
// Postcondition: ok is true iff name is one of the names returned by Stat.String.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return -1, false
}

// StatAttribute is a base value plus an additive modifier.
//
// Base is mutated by growth and permanent buffs; Modifier is reserved for
// temporary effects layered on top (equipment passives, battle effects).
type StatAttribute struct {
	Base     float32
	Modifier float32
}

// Value returns the effective value, Base + Modifier.
func (s StatAttribute) Value() float32 {
	return s.Base + s.Modifier
}

// AddBase raises the base by amount.
func (s *StatAttribute) AddBase(amount float32) {
	s.Base += amount
}

// SubtractBase lowers the base by amount, flooring at zero.
//
// Postcondition: s.Base >= 0.
func (s *StatAttribute) SubtractBase(amount float32) {
	s.Base -= amount
	if s.Base < 0 {
		s.Base = 0
	}
}
