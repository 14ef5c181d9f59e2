package actor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
	"github.com/cory-johannsen/actorcore/internal/game/status"
	"github.com/cory-johannsen/actorcore/internal/game/status/statusmocks"
)

func TestNewCharacter_InitialTotals(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))

	assert.Equal(t, uint32(1), c.ExperienceLevel())
	assert.Equal(t, int32(100), c.ExperienceForNextLevel())
	assert.Equal(t, uint32(100), c.HitPoints())
	assert.Equal(t, uint32(100), c.MaxHitPoints())
	assert.Equal(t, uint32(20), c.SkillPoints())
	assert.True(t, c.Enabled())
	assert.False(t, c.HasEquipment())

	assert.Equal(t, uint32(10), c.TotalPhysicalAttack())
	for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
		assert.Equal(t, uint32(8), c.TotalMagicalAttack(e), e.String())
	}
	require.Equal(t, 4, c.AttackPointCount())
	for i := 0; i < c.AttackPointCount(); i++ {
		assert.Equal(t, uint32(6), c.TotalPhysicalDefense(i))
		assert.Equal(t, uint32(4), c.TotalMagicalDefense(i, attribute.Neutral))
		assert.InDelta(t, 0.1, c.TotalEvadeRating(i), 1e-6)
	}
}

func TestNewCharacter_SkillsByLevel(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))

	assert.Equal(t, []uint32{skillPunch, skillSlash}, c.SkillIDs())
	assert.ElementsMatch(t, []uint32{skillPunch, skillSlash}, c.PermanentSkills())
	assert.False(t, c.HasSkill(skillParry))
	assert.Len(t, c.WeaponSkills(), 1)
	assert.Len(t, c.BareHandsSkills(), 1)
	assert.Empty(t, c.MagicSkills())
	assert.Empty(t, c.SpecialSkills())
}

func TestNewCharacter_InitialEquipment(t *testing.T) {
	def := testCharacterDef()
	def.Initial.Equipment = actor.EquipmentIDs{Weapon: weaponSword, Torso: armorMail}
	c, err := actor.NewCharacter(def, testDeps(t, nil))
	require.NoError(t, err)

	require.NotNil(t, c.Weapon())
	assert.Equal(t, weaponSword, c.Weapon().ID())
	assert.Equal(t, uint32(20), c.TotalPhysicalAttack())
	assert.Equal(t, uint32(26), c.TotalPhysicalDefense(inventory.PositionTorso))
	assert.Equal(t, uint32(6), c.TotalPhysicalDefense(inventory.PositionHead))
	assert.True(t, c.HasSkill(skillGuard))
	assert.Equal(t, status.PosGreater, c.EquipmentStatusEffect(status.Strength))
}

func TestNewCharacter_UnknownEquipment(t *testing.T) {
	def := testCharacterDef()
	def.Initial.Equipment.Weapon = 19999
	_, err := actor.NewCharacter(def, testDeps(t, nil))
	assert.Error(t, err)
}

func TestNewCharacter_InvalidDefinition(t *testing.T) {
	def := testCharacterDef()
	def.AttackPoints = def.AttackPoints[:2]
	_, err := actor.NewCharacter(def, testDeps(t, nil))
	assert.Error(t, err)
}

func TestNewCharacter_MissingThresholdUsesDefault(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	def := testCharacterDef()
	def.Initial.ExperienceLevel = 7
	c, err := actor.NewCharacter(def, testDeps(t, zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, actor.DefaultExperienceForNextLevel, c.ExperienceForNextLevel())
	assert.Equal(t, 1, logs.FilterMessage("no experience threshold for level; using default").Len())
	assert.True(t, c.HasSkill(skillParry))
}

func TestStrength_AddThenSubtract_RestoresAttack(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.AddStrength(5)
	assert.Equal(t, uint32(15), c.TotalPhysicalAttack())
	c.SubtractStrength(5)
	assert.Equal(t, uint32(10), c.TotalPhysicalAttack())
}

func TestSubtractStrength_FloorsAtZero(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SubtractStrength(1000)
	assert.Equal(t, float32(0), c.StatBase(attribute.Strength))
	assert.Equal(t, uint32(0), c.TotalPhysicalAttack())
}

func TestFortitudeModifierMinusOne_ZeroPhysicalDefenseDespiteArmor(t *testing.T) {
	deps := testDeps(t, nil)
	def := testCharacterDef()
	def.AttackPoints[inventory.PositionTorso].FortitudeModifier = -1
	c, err := actor.NewCharacter(def, deps)
	require.NoError(t, err)

	c.EquipTorsoArmor(armor(t, deps, armorMail))
	assert.Equal(t, uint32(0), c.TotalPhysicalDefense(inventory.PositionTorso))
	assert.Equal(t, uint32(8), c.TotalMagicalDefense(inventory.PositionTorso, attribute.Neutral))

	c.AddFortitude(50)
	assert.Equal(t, uint32(0), c.TotalPhysicalDefense(inventory.PositionTorso))
}

func TestProtectionModifierMinusOne_ArmorMagicalDefenseOnly(t *testing.T) {
	deps := testDeps(t, nil)
	def := testCharacterDef()
	def.AttackPoints[inventory.PositionHead].ProtectionModifier = -1
	def.ElementalModifiers = map[string]float32{"fire": 2}
	c, err := actor.NewCharacter(def, deps)
	require.NoError(t, err)

	assert.Equal(t, uint32(0), c.TotalMagicalDefense(inventory.PositionHead, attribute.Neutral))
	c.EquipHeadArmor(armor(t, deps, armorCap))
	assert.Equal(t, uint32(3), c.TotalMagicalDefense(inventory.PositionHead, attribute.Neutral))
	assert.Equal(t, uint32(6), c.TotalMagicalDefense(inventory.PositionHead, attribute.Fire))
}

func TestAttackPointModifiers_ScaleStats(t *testing.T) {
	def := testCharacterDef()
	def.AttackPoints[0].FortitudeModifier = 0.5
	def.AttackPoints[0].ProtectionModifier = 0.5
	def.AttackPoints[0].EvadeModifier = 1
	def.AttackPoints[1].EvadeModifier = -1
	c, err := actor.NewCharacter(def, testDeps(t, nil))
	require.NoError(t, err)

	assert.Equal(t, uint32(9), c.TotalPhysicalDefense(0))
	assert.Equal(t, uint32(6), c.TotalMagicalDefense(0, attribute.Neutral))
	assert.InDelta(t, 0.2, c.TotalEvadeRating(0), 1e-6)
	assert.Equal(t, float32(0), c.TotalEvadeRating(1))
}

func TestElementalModifier_ScalesMagicalAttack(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SetElementalModifier(attribute.Water, 0.5)
	assert.Equal(t, uint32(4), c.TotalMagicalAttack(attribute.Water))
	assert.Equal(t, uint32(8), c.TotalMagicalAttack(attribute.Fire))
	assert.Equal(t, uint32(2), c.TotalMagicalDefense(0, attribute.Water))
}

func TestSetStatModifier_RecomputesDependents(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SetStatModifier(attribute.Vigor, 2)
	assert.Equal(t, uint32(10), c.TotalMagicalAttack(attribute.Neutral))
	c.SetStatModifier(attribute.Fortitude, -10)
	assert.Equal(t, uint32(0), c.TotalPhysicalDefense(0))
	c.SetStatModifier(attribute.Evade, 0.4)
	assert.InDelta(t, 0.5, c.TotalEvadeRating(0), 1e-6)
}

func TestAddEvade_CapsAtOne(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.AddEvade(5)
	assert.Equal(t, float32(1), c.StatBase(attribute.Evade))
	c.SubtractEvade(5)
	assert.Equal(t, float32(0), c.StatBase(attribute.Evade))
}

func TestHitPoints_ClampAndSaturate(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SubtractHitPoints(30)
	assert.Equal(t, uint32(70), c.HitPoints())
	c.AddHitPoints(1 << 31)
	assert.Equal(t, uint32(100), c.HitPoints())
	c.SubtractHitPoints(1000)
	assert.Equal(t, uint32(0), c.HitPoints())
	assert.False(t, c.IsAlive())

	c.AddMaxHitPoints(^uint32(0))
	assert.Equal(t, ^uint32(0), c.MaxHitPoints())
}

func TestSubtractMaxHitPoints_BeyondMaxZeroesBoth(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := newTestCharacter(t, testDeps(t, zap.New(core)))
	c.SubtractMaxHitPoints(40)
	assert.Equal(t, uint32(60), c.MaxHitPoints())
	assert.Equal(t, uint32(60), c.HitPoints())

	c.SubtractMaxHitPoints(61)
	assert.Equal(t, uint32(0), c.MaxHitPoints())
	assert.Equal(t, uint32(0), c.HitPoints())
	assert.Equal(t, 1, logs.FilterMessage("max hit points reduced to zero").Len())
}

func TestSkillPoints_ClampToMax(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SubtractSkillPoints(15)
	c.AddSkillPoints(100)
	assert.Equal(t, uint32(20), c.SkillPoints())
	c.SubtractMaxSkillPoints(25)
	assert.Equal(t, uint32(0), c.SkillPoints())
	assert.Equal(t, uint32(0), c.MaxSkillPoints())
}

func TestAttackPointIndex_OutOfRange(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := newTestCharacter(t, testDeps(t, zap.New(core)))
	assert.Equal(t, uint32(0), c.TotalPhysicalDefense(4))
	assert.Equal(t, uint32(0), c.TotalMagicalDefense(-1, attribute.Fire))
	assert.Equal(t, float32(0), c.TotalEvadeRating(9))
	assert.Nil(t, c.AttackPoint(4))
	assert.Equal(t, 4, logs.FilterMessage("attack point index out of range").Len())
}

func TestAverages(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.EquipTorsoArmor(armor(t, deps, armorMail))
	c.EquipLegArmor(armor(t, deps, armorBoots))
	// (6 + 26 + 6 + 9) / 4
	assert.Equal(t, uint32(11), c.AverageDefense())
	// (4 + 8 + 4 + 4) / 4
	assert.Equal(t, uint32(5), c.AverageMagicalDefense(attribute.Neutral))
	assert.InDelta(t, 0.1, c.AverageEvadeRating(), 1e-6)
}

func TestEquipWeapon_SwapReturnsPrevious(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	sword := weapon(t, deps, weaponSword)

	assert.Nil(t, c.EquipWeapon(sword))
	assert.Equal(t, uint32(20), c.TotalPhysicalAttack())
	assert.Equal(t, uint32(10), c.TotalMagicalAttack(attribute.Neutral))

	old := c.EquipWeapon(weapon(t, deps, weaponMace))
	assert.Same(t, sword, old)
	assert.True(t, c.HasSkill(skillCrush))

	c.UnequipWeapon()
	assert.Nil(t, c.Weapon())
	assert.Equal(t, uint32(10), c.TotalPhysicalAttack())
	assert.False(t, c.HasSkill(skillCrush))
	assert.True(t, c.HasSkill(skillSlash))
}

func TestEquipArmor_OnlyCoveredPointChanges(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	assert.Nil(t, c.EquipArmArmor(armor(t, deps, armorGloves)))
	assert.Equal(t, uint32(8), c.TotalPhysicalDefense(inventory.PositionArms))
	assert.Equal(t, uint32(6), c.TotalPhysicalDefense(inventory.PositionHead))
	assert.Equal(t, uint32(6), c.TotalPhysicalDefense(inventory.PositionTorso))
	assert.Equal(t, uint32(6), c.TotalPhysicalDefense(inventory.PositionLegs))
	assert.True(t, c.HasEquipment())

	removed := c.UnequipArmor(inventory.PositionArms)
	require.NotNil(t, removed)
	assert.Equal(t, armorGloves, removed.ID())
	assert.Equal(t, uint32(6), c.TotalPhysicalDefense(inventory.PositionArms))
	assert.False(t, c.HasEquipment())
}

func TestEquipArmor_OutOfRangeHandsArmorBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	deps := testDeps(t, zap.New(core))
	c := newTestCharacter(t, deps)
	helm := armor(t, deps, armorCap)

	assert.Same(t, helm, c.EquipArmor(helm, 4))
	assert.False(t, c.HasEquipment())
	assert.Nil(t, c.Armor(-1))
	assert.Equal(t, 2, logs.FilterMessage("armor position out of range").Len())
}

func TestEquipArmor_CategoryMismatchWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	deps := testDeps(t, zap.New(core))
	c := newTestCharacter(t, deps)
	c.EquipArmor(armor(t, deps, armorCap), inventory.PositionLegs)
	c.EquipArmor(armor(t, deps, armorBoots), inventory.PositionLegs)
	assert.Equal(t, 1, logs.FilterMessage("armor replaced with a different armor category").Len())
	assert.Equal(t, armorBoots, c.Armor(inventory.PositionLegs).ID())
}

func TestEquipmentStatusEffects_SummedAndClamped(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponMace))
	assert.Equal(t, status.PosModerate, c.EquipmentStatusEffect(status.Strength))
	c.EquipTorsoArmor(armor(t, deps, armorMail))
	assert.Equal(t, status.PosExtreme, c.EquipmentStatusEffect(status.Strength))
	assert.Equal(t, status.IntensityNeutral, c.EquipmentStatusEffect(status.Vigor))
	assert.Equal(t, status.IntensityNeutral, c.EquipmentStatusEffect(status.Type(99)))

	c.UnequipWeapon()
	assert.Equal(t, status.PosGreater, c.EquipmentStatusEffects()[status.Strength])
}

func TestEquipmentStatusEffects_DispatchedOncePerChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := statusmocks.NewMockPassiveHandler(ctrl)
	gomock.InOrder(
		h.EXPECT().RemovePassive(gomock.Any()).Return(nil).Times(1),
		h.EXPECT().ApplyPassive(gomock.Any(), status.PosModerate).Return(nil).Times(1),
		h.EXPECT().ApplyPassive(gomock.Any(), status.PosExtreme).Return(nil).Times(1),
	)

	deps := testDeps(t, nil)
	deps.Status = status.Table{status.Strength: h}
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponMace))
	c.EquipTorsoArmor(armor(t, deps, armorMail))
}

func TestEquipWeapon_StatusEffectsBeforeAttackAndSkills(t *testing.T) {
	deps := testDeps(t, nil)
	mace := weapon(t, deps, weaponMace)
	var checked bool
	deps.Status = status.Table{
		status.Strength: status.Funcs{
			Apply: func(target status.Target, intensity status.Intensity) error {
				c, ok := target.(*actor.Character)
				require.True(t, ok)
				assert.Same(t, mace, c.Weapon())
				assert.Equal(t, uint32(10), c.TotalPhysicalAttack())
				assert.False(t, c.HasSkill(skillCrush))
				checked = true
				return nil
			},
			Remove: func(status.Target) error { return nil },
		},
	}
	c := newTestCharacter(t, deps)
	c.EquipWeapon(mace)
	require.True(t, checked)
	assert.Equal(t, uint32(25), c.TotalPhysicalAttack())
	assert.True(t, c.HasSkill(skillCrush))
}

func TestStatusHandler_ModifierFeedsTotals(t *testing.T) {
	deps := testDeps(t, nil)
	deps.Status = status.Table{
		status.Strength: status.Funcs{
			Apply: func(target status.Target, intensity status.Intensity) error {
				target.SetStatModifier(attribute.Strength, target.StatBase(attribute.Strength)*0.25*float32(intensity))
				return nil
			},
			Remove: func(target status.Target) error {
				target.SetStatModifier(attribute.Strength, 0)
				return nil
			},
		},
	}
	c := newTestCharacter(t, deps)
	c.EquipTorsoArmor(armor(t, deps, armorMail))
	// strength 10 + 10*0.75
	assert.Equal(t, uint32(17), c.TotalPhysicalAttack())
	c.UnequipArmor(inventory.PositionTorso)
	assert.Equal(t, uint32(10), c.TotalPhysicalAttack())
}

func TestStatusHandler_FailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	deps := testDeps(t, zap.New(core))
	deps.Status = status.Table{
		status.Strength: status.Funcs{
			Apply: func(status.Target, status.Intensity) error { return errors.New("boom") },
		},
	}
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponMace))
	assert.Equal(t, 1, logs.FilterMessage("status effect handler failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("status effect handler missing function").Len())
	assert.Equal(t, uint32(25), c.TotalPhysicalAttack())
}

func TestAddSkill(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := newTestCharacter(t, testDeps(t, zap.New(core)))

	assert.True(t, c.AddSkill(skillFire, false))
	assert.True(t, c.AddSkill(skillFire, false))
	assert.Len(t, c.MagicSkills(), 1)
	assert.NotContains(t, c.PermanentSkills(), skillFire)

	assert.True(t, c.AddSkill(skillFire, true))
	assert.Contains(t, c.PermanentSkills(), skillFire)

	assert.True(t, c.AddSkill(skillRally, true))
	assert.Len(t, c.SpecialSkills(), 1)

	assert.False(t, c.AddSkill(0, true))
	assert.False(t, c.AddSkill(777, true))
	assert.Equal(t, 1, logs.FilterMessage("invalid skill id").Len())
	assert.Equal(t, 1, logs.FilterMessage("skill to add failed to load").Len())
}

func TestAddSkill_UnknownTypeRejected(t *testing.T) {
	const stray uint32 = 45000
	core, logs := observer.New(zap.WarnLevel)
	skills := testSkills(t)
	require.NoError(t, skills.Register(&skill.Def{ID: stray, Name: "Stray"}))
	deps := testDeps(t, zap.New(core))
	deps.Skills = skills
	c := newTestCharacter(t, deps)

	ids := c.SkillIDs()
	buckets := [4]int{len(c.WeaponSkills()), len(c.MagicSkills()), len(c.SpecialSkills()), len(c.BareHandsSkills())}

	assert.False(t, c.AddSkill(stray, true))
	assert.False(t, c.HasSkill(stray))
	assert.NotContains(t, c.PermanentSkills(), stray)
	assert.Equal(t, ids, c.SkillIDs())
	assert.Equal(t, buckets, [4]int{len(c.WeaponSkills()), len(c.MagicSkills()), len(c.SpecialSkills()), len(c.BareHandsSkills())})
	entries := logs.FilterMessage("skill has an unknown skill type").All()
	require.Len(t, entries, 1)
	assert.Equal(t, stray, entries[0].ContextMap()["skill_id"])
}

func TestTemporarySkill_DroppedOnEquipmentChange(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.AddSkill(skillFire, false)
	c.AddSkill(skillRally, true)
	c.EquipWeapon(weapon(t, deps, weaponSword))
	assert.False(t, c.HasSkill(skillFire))
	assert.True(t, c.HasSkill(skillRally))
}

func TestAddNewSkillLearned(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	assert.True(t, c.AddNewSkillLearned(skillFire))
	assert.False(t, c.AddNewSkillLearned(skillFire))
	assert.False(t, c.AddNewSkillLearned(0))
	assert.False(t, c.AddNewSkillLearned(555))
	require.Len(t, c.NewSkillsLearned(), 1)
	assert.Equal(t, skillFire, c.NewSkillsLearned()[0].ID())
	assert.Contains(t, c.PermanentSkills(), skillFire)
}

func TestClone_IsIndependent(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponSword))
	c.EquipTorsoArmor(armor(t, deps, armorMail))

	dup := c.Clone()
	assert.Equal(t, c.Sheet(), dup.Sheet())
	assert.NotSame(t, c.Weapon(), dup.Weapon())
	assert.NotSame(t, c.AttackPoint(0), dup.AttackPoint(0))

	dup.AddStrength(10)
	dup.UnequipArmor(inventory.PositionTorso)
	assert.Equal(t, uint32(20), c.TotalPhysicalAttack())
	assert.Equal(t, uint32(30), dup.TotalPhysicalAttack())
	assert.Equal(t, uint32(26), c.TotalPhysicalDefense(inventory.PositionTorso))
	assert.Equal(t, uint32(6), dup.TotalPhysicalDefense(inventory.PositionTorso))
	assert.True(t, c.HasSkill(skillGuard))
	assert.False(t, dup.HasSkill(skillGuard))
}

func TestSheet_Character(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponMace))
	c.EquipHeadArmor(armor(t, deps, armorCap))

	s := c.Sheet()
	assert.Equal(t, actor.KindCharacter, s.Kind)
	assert.Equal(t, uint32(1), s.ExperienceLevel)
	assert.Equal(t, weaponMace, s.Weapon)
	assert.Equal(t, map[string]uint32{"head": armorCap}, s.Armor)
	assert.Equal(t, map[string]int{"strength": 2}, s.StatusEffects)
	assert.Equal(t, uint32(25), s.PhysicalAttack)
	require.Len(t, s.AttackPoints, 4)
	assert.Equal(t, uint32(11), s.AttackPoints[0].PhysicalDefense)
	assert.Equal(t, float32(10), s.Stats["strength"].Value)
}

func TestState_RestoreRoundTrip(t *testing.T) {
	deps := testDeps(t, nil)
	c := newTestCharacter(t, deps)
	c.EquipWeapon(weapon(t, deps, weaponSword))
	c.EquipLegArmor(armor(t, deps, armorBoots))
	c.AddSkill(skillRally, true)
	c.SubtractHitPoints(25)
	c.AddFortitude(3)
	c.SetEnabled(false)

	restored, err := actor.RestoreCharacter(testCharacterDef(), c.State(), deps)
	require.NoError(t, err)
	assert.Equal(t, c.Sheet(), restored.Sheet())
	assert.False(t, restored.Enabled())
	assert.Equal(t, c.ExperienceForNextLevel(), restored.ExperienceForNextLevel())
}

func TestRestoreCharacter_Rejects(t *testing.T) {
	deps := testDeps(t, nil)
	st := newTestCharacter(t, deps).State()

	wrong := st
	wrong.ID = 2
	_, err := actor.RestoreCharacter(testCharacterDef(), wrong, deps)
	assert.Error(t, err)

	zero := st
	zero.ExperienceLevel = 0
	_, err = actor.RestoreCharacter(testCharacterDef(), zero, deps)
	assert.Error(t, err)

	bad := st
	bad.Equipment.Head = 29999
	_, err = actor.RestoreCharacter(testCharacterDef(), bad, deps)
	assert.Error(t, err)
}

func TestRestoreCharacter_ClampsCurrentPoints(t *testing.T) {
	deps := testDeps(t, nil)
	st := newTestCharacter(t, deps).State()
	st.CurrentHitPoints = 5000
	c, err := actor.RestoreCharacter(testCharacterDef(), st, deps)
	require.NoError(t, err)
	assert.Equal(t, c.MaxHitPoints(), c.HitPoints())
}
