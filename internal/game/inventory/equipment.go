package inventory

// ArmorSlot identifies the body region an armor piece covers.
type ArmorSlot string

const (
	// SlotHead is the head armor slot.
	SlotHead ArmorSlot = "head"
	// SlotTorso is the torso armor slot.
	SlotTorso ArmorSlot = "torso"
	// SlotArms is the arm armor slot (covers both arms).
	SlotArms ArmorSlot = "arms"
	// SlotLegs is the leg armor slot (covers both legs).
	SlotLegs ArmorSlot = "legs"
)

// Equipment positions, in the order armor slots are stored on a character.
const (
	PositionHead = iota
	PositionTorso
	PositionArms
	PositionLegs
	// PositionCount is the number of armor positions.
	PositionCount
	// PositionInvalid is returned for anything that is not armor.
	PositionInvalid = PositionCount
)

var slotPositions = map[ArmorSlot]int{
	SlotHead:  PositionHead,
	SlotTorso: PositionTorso,
	SlotArms:  PositionArms,
	SlotLegs:  PositionLegs,
}

var positionSlots = [PositionCount]ArmorSlot{
	PositionHead:  SlotHead,
	PositionTorso: SlotTorso,
	PositionArms:  SlotArms,
	PositionLegs:  SlotLegs,
}

var slotDisplayNames = map[ArmorSlot]string{
	SlotHead:  "Head",
	SlotTorso: "Torso",
	SlotArms:  "Arms",
	SlotLegs:  "Legs",
}

// Valid reports whether s is one of the four armor slots.
func (s ArmorSlot) Valid() bool {
	_, ok := slotPositions[s]
	return ok
}

// Position returns the equipment index for s, or PositionInvalid.
func (s ArmorSlot) Position() int {
	if p, ok := slotPositions[s]; ok {
		return p
	}
	return PositionInvalid
}

// DisplayName returns the human-readable label for s.
func (s ArmorSlot) DisplayName() string {
	if n, ok := slotDisplayNames[s]; ok {
		return n
	}
	return string(s)
}

// SlotForPosition returns the armor slot stored at position p.
//
// Postcondition: ok is false when p is outside [0, PositionCount).
func SlotForPosition(p int) (ArmorSlot, bool) {
	if p < 0 || p >= PositionCount {
		return "", false
	}
	return positionSlots[p], true
}

// PositionForObjectType maps an armor object type onto its equipment position.
//
// Postcondition: returns PositionInvalid for non-armor types.
func PositionForObjectType(t ObjectType) int {
	switch t {
	case ObjectHeadArmor:
		return PositionHead
	case ObjectTorsoArmor:
		return PositionTorso
	case ObjectArmArmor:
		return PositionArms
	case ObjectLegArmor:
		return PositionLegs
	default:
		return PositionInvalid
	}
}
