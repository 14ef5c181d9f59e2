package attribute

import "fmt"

// Element identifies one slot of an ElementalProfile.
type Element int

// The four physical/magical element pairs followed by Neutral.
const (
	Fire Element = iota
	Water
	Volt
	Earth
	Life
	Death
	Neutral
	// ElementTotal is the number of elemental slots.
	ElementTotal
)

var elementNames = [ElementTotal]string{
	Fire:    "fire",
	Water:   "water",
	Volt:    "volt",
	Earth:   "earth",
	Life:    "life",
	Death:   "death",
	Neutral: "neutral",
}

// String returns the lower-case element name.
func (e Element) String() string {
	if e < 0 || e >= ElementTotal {
		return fmt.Sprintf("element(%d)", int(e))
	}
	return elementNames[e]
}

// Valid reports whether e is a real element slot.
func (e Element) Valid() bool {
	return e >= 0 && e < ElementTotal
}

// OrNeutral returns e, or Neutral when e is out of range.
func (e Element) OrNeutral() Element {
	if !e.Valid() {
		return Neutral
	}
	return e
}

// ParseElement maps an element name back to its Element.
func ParseElement(name string) (Element, bool) {
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return -1, false
}

// ElementalProfile holds one multiplier per element, applied to magical
// attack and defense totals.
type ElementalProfile [ElementTotal]float32

// NewElementalProfile returns a profile with every multiplier at 1.0
// (no resistance, no weakness).
func NewElementalProfile() ElementalProfile {
	var p ElementalProfile
	for i := range p {
		p[i] = 1.0
	}
	return p
}

// Modifier returns the multiplier for e. Out-of-range elements read Neutral.
func (p ElementalProfile) Modifier(e Element) float32 {
	return p[e.OrNeutral()]
}
