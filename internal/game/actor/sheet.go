package actor

import (
	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// Sheet kinds.
const (
	KindCharacter = "character"
	KindEnemy     = "enemy"
)

// StatSheet is one statistic as shown on a sheet.
type StatSheet struct {
	Base     float32 `json:"base"`
	Modifier float32 `json:"modifier"`
	Value    float32 `json:"value"`
}

// AttackPointSheet is the derived defense of one attack point.
type AttackPointSheet struct {
	Name            string            `json:"name"`
	PhysicalDefense uint32            `json:"physical_defense"`
	MagicalDefense  map[string]uint32 `json:"magical_defense"`
	Evade           float32           `json:"evade"`
}

// Sheet is a read-only snapshot of an actor's derived totals, suitable for
// caching and display.
type Sheet struct {
	Kind             string               `json:"kind"`
	ID               uint32               `json:"id"`
	Name             string               `json:"name"`
	ExperienceLevel  uint32               `json:"experience_level,omitempty"`
	ExperiencePoints uint32               `json:"experience_points"`
	HitPoints        uint32               `json:"hit_points"`
	MaxHitPoints     uint32               `json:"max_hit_points"`
	SkillPoints      uint32               `json:"skill_points"`
	MaxSkillPoints   uint32               `json:"max_skill_points"`
	Stats            map[string]StatSheet `json:"stats"`
	PhysicalAttack   uint32               `json:"physical_attack"`
	MagicalAttack    map[string]uint32    `json:"magical_attack"`
	AttackPoints     []AttackPointSheet   `json:"attack_points"`
	Skills           []uint32             `json:"skills"`
	Weapon           uint32               `json:"weapon,omitempty"`
	Armor            map[string]uint32    `json:"armor,omitempty"`
	StatusEffects    map[string]int       `json:"status_effects,omitempty"`
}

func (a *Actor) sheet(kind string) Sheet {
	s := Sheet{
		Kind:             kind,
		ID:               a.id,
		Name:             a.name,
		ExperiencePoints: a.experiencePoints,
		HitPoints:        a.hitPoints,
		MaxHitPoints:     a.maxHitPoints,
		SkillPoints:      a.skillPoints,
		MaxSkillPoints:   a.maxSkillPoints,
		Stats:            make(map[string]StatSheet, attribute.StatTotal),
		PhysicalAttack:   a.totalPhysicalAttack,
		MagicalAttack:    make(map[string]uint32, attribute.ElementTotal),
		AttackPoints:     make([]AttackPointSheet, 0, len(a.attackPoints)),
		Skills:           append([]uint32{}, a.skillIDs...),
	}
	for st := attribute.Stat(0); st < attribute.StatTotal; st++ {
		v := a.stats[st]
		s.Stats[st.String()] = StatSheet{Base: v.Base, Modifier: v.Modifier, Value: v.Value()}
	}
	for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
		s.MagicalAttack[e.String()] = a.totalMagicalAttack[e]
	}
	for _, p := range a.attackPoints {
		ap := AttackPointSheet{
			Name:            p.Name(),
			PhysicalDefense: p.TotalPhysicalDefense(),
			MagicalDefense:  make(map[string]uint32, attribute.ElementTotal),
			Evade:           p.TotalEvadeRating(),
		}
		for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
			ap.MagicalDefense[e.String()] = p.TotalMagicalDefense(e)
		}
		s.AttackPoints = append(s.AttackPoints, ap)
	}
	return s
}

// Sheet returns a snapshot of the character's derived totals, equipment and
// non-neutral equipment status effects.
func (c *Character) Sheet() Sheet {
	s := c.sheet(KindCharacter)
	s.ExperienceLevel = c.experienceLevel
	if w := c.equipment.weapon; w != nil {
		s.Weapon = w.ID()
	}
	for pos, a := range c.equipment.armor {
		if a == nil {
			continue
		}
		slot, _ := inventory.SlotForPosition(pos)
		if s.Armor == nil {
			s.Armor = make(map[string]uint32, inventory.PositionCount)
		}
		s.Armor[string(slot)] = a.ID()
	}
	for t := status.Type(0); t < status.Total; t++ {
		if i := c.equipmentStatusEffects[t]; !i.IsNeutral() {
			if s.StatusEffects == nil {
				s.StatusEffects = make(map[string]int)
			}
			s.StatusEffects[t.String()] = int(i)
		}
	}
	return s
}

// Sheet returns a snapshot of the enemy's derived totals.
func (e *Enemy) Sheet() Sheet { return e.sheet(KindEnemy) }
