package actor

import (
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// EquipmentSet is a character's weapon slot and four armor slots. Each slot
// exclusively owns its item or is empty (nil).
type EquipmentSet struct {
	weapon *inventory.Weapon
	armor  [inventory.PositionCount]*inventory.Armor
}

// Weapon returns the equipped weapon, or nil.
func (e *EquipmentSet) Weapon() *inventory.Weapon { return e.weapon }

// Armor returns the armor at position, or nil when empty or out of range.
func (e *EquipmentSet) Armor(position int) *inventory.Armor {
	if position < 0 || position >= inventory.PositionCount {
		return nil
	}
	return e.armor[position]
}

// HasEquipment reports whether any slot is occupied.
func (e *EquipmentSet) HasEquipment() bool {
	if e.weapon != nil {
		return true
	}
	for _, a := range e.armor {
		if a != nil {
			return true
		}
	}
	return false
}

// statusSources returns the declared effects of the weapon followed by each armor slot in order.
func (e *EquipmentSet) statusSources() [][]status.Effect {
	sources := make([][]status.Effect, 0, 1+inventory.PositionCount)
	if e.weapon != nil {
		sources = append(sources, e.weapon.StatusEffects())
	}
	for _, a := range e.armor {
		if a != nil {
			sources = append(sources, a.StatusEffects())
		}
	}
	return sources
}

// skillIDs returns the skills granted by the weapon followed by each armor slot in order.
func (e *EquipmentSet) skillIDs() []uint32 {
	var ids []uint32
	if e.weapon != nil {
		ids = append(ids, e.weapon.Skills()...)
	}
	for _, a := range e.armor {
		if a != nil {
			ids = append(ids, a.Skills()...)
		}
	}
	return ids
}

func (e *EquipmentSet) clone() EquipmentSet {
	c := EquipmentSet{weapon: e.weapon.Clone()}
	for i, a := range e.armor {
		c.armor[i] = a.Clone()
	}
	return c
}
