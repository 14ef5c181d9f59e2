package actor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

const (
	skillSlash  uint32 = 1
	skillParry  uint32 = 2
	skillCrush  uint32 = 5
	skillFire   uint32 = 10001
	skillRally  uint32 = 20001
	skillPunch  uint32 = 30001
	skillGuard  uint32 = 20002
	weaponSword uint32 = 10001
	weaponMace  uint32 = 10002
	armorCap    uint32 = 20001
	armorMail   uint32 = 30001
	armorGloves uint32 = 40001
	armorBoots  uint32 = 50001
	itemPotion  uint32 = 1
)

// fixedSource returns canned draws so randomized results are exact.
type fixedSource struct {
	uniform float64
	normal  float64
}

func (f fixedSource) Intn(n int) int       { return 0 }
func (f fixedSource) Float64() float64     { return f.uniform }
func (f fixedSource) NormFloat64() float64 { return f.normal }

func testSkills(t *testing.T) *skill.Registry {
	t.Helper()
	r := skill.NewRegistry()
	for _, d := range []*skill.Def{
		{ID: skillSlash, Name: "Slash", SPRequired: 0},
		{ID: skillParry, Name: "Parry", SPRequired: 2},
		{ID: skillCrush, Name: "Crush", SPRequired: 4},
		{ID: skillFire, Name: "Fire", SPRequired: 6},
		{ID: skillRally, Name: "Rally", SPRequired: 3},
		{ID: skillGuard, Name: "Guard", SPRequired: 1},
		{ID: skillPunch, Name: "Punch"},
	} {
		require.NoError(t, r.Register(d))
	}
	return r
}

func testItems(t *testing.T) *inventory.Registry {
	t.Helper()
	r := inventory.NewRegistry()
	require.NoError(t, r.RegisterWeapon(&inventory.WeaponDef{
		ID: weaponSword, Name: "Short Sword", PhysicalAttack: 10, MagicalAttack: 2,
	}))
	require.NoError(t, r.RegisterWeapon(&inventory.WeaponDef{
		ID: weaponMace, Name: "Mace", PhysicalAttack: 15,
		StatusEffects: []status.Effect{{Type: status.Strength, Intensity: status.PosModerate}},
		Skills:        []uint32{skillCrush},
	}))
	require.NoError(t, r.RegisterArmor(&inventory.ArmorDef{
		ID: armorCap, Name: "Leather Cap", Slot: inventory.SlotHead, PhysicalDefense: 5, MagicalDefense: 3,
	}))
	require.NoError(t, r.RegisterArmor(&inventory.ArmorDef{
		ID: armorMail, Name: "Chain Mail", Slot: inventory.SlotTorso, PhysicalDefense: 20, MagicalDefense: 4,
		StatusEffects: []status.Effect{{Type: status.Strength, Intensity: status.PosGreater}},
		Skills:        []uint32{skillGuard},
	}))
	require.NoError(t, r.RegisterArmor(&inventory.ArmorDef{
		ID: armorGloves, Name: "Gloves", Slot: inventory.SlotArms, PhysicalDefense: 2,
	}))
	require.NoError(t, r.RegisterArmor(&inventory.ArmorDef{
		ID: armorBoots, Name: "Boots", Slot: inventory.SlotLegs, PhysicalDefense: 3,
	}))
	require.NoError(t, r.RegisterItem(&inventory.ItemDef{ID: itemPotion, Name: "Healing Potion"}))
	return r
}

func testAttackPoints() []actor.AttackPointDef {
	return []actor.AttackPointDef{
		{Name: "Head"},
		{Name: "Torso"},
		{Name: "Arms"},
		{Name: "Legs"},
	}
}

func testCharacterDef() *actor.CharacterDef {
	return &actor.CharacterDef{
		ID:   1,
		Name: "Claudius",
		Initial: actor.InitialStats{
			BaseStats: actor.BaseStats{
				HitPoints: 100, SkillPoints: 20,
				Strength: 10, Vigor: 8, Fortitude: 6, Protection: 4, Agility: 5, Evade: 0.1,
			},
			ExperienceLevel: 1,
		},
		AttackPoints:    testAttackPoints(),
		Skills:          []actor.LevelSkill{{Level: 2, Skill: skillParry}, {Level: 1, Skill: skillSlash}},
		BareHandsSkills: []uint32{skillPunch},
		Growth: actor.GrowthDef{
			ExperienceForNextLevel: []int32{100, 200, 300},
			Levels: []actor.LevelGrowth{
				{Level: 2, HitPoints: 10, SkillPoints: 5, Strength: 2, Evade: 0.05},
				{Level: 3, Vigor: 3},
			},
		},
	}
}

func testDeps(t *testing.T, logger *zap.Logger) actor.Deps {
	t.Helper()
	if logger == nil {
		logger = zap.NewNop()
	}
	return actor.Deps{
		Logger: logger,
		Skills: testSkills(t),
		Items:  testItems(t),
	}
}

func newTestCharacter(t *testing.T, deps actor.Deps) *actor.Character {
	t.Helper()
	c, err := actor.NewCharacter(testCharacterDef(), deps)
	require.NoError(t, err)
	return c
}

func weapon(t *testing.T, deps actor.Deps, id uint32) *inventory.Weapon {
	t.Helper()
	def, ok := deps.Items.Weapon(id)
	require.True(t, ok, "weapon %d", id)
	return inventory.NewWeapon(def)
}

func armor(t *testing.T, deps actor.Deps, id uint32) *inventory.Armor {
	t.Helper()
	def, ok := deps.Items.Armor(id)
	require.True(t, ok, "armor %d", id)
	return inventory.NewArmor(def)
}
