package entities

// Element identifies a damage element carried by weapons, spells, and
// monster abilities.
type Element string

// Damage elements
const (
	ElementNone      Element = ""
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
	ElementPoison    Element = "poison"
	ElementHoly      Element = "holy"
	ElementShadow    Element = "shadow"
)

// Elements lists every concrete element (ElementNone excluded).
var Elements = []Element{
	ElementFire,
	ElementIce,
	ElementLightning,
	ElementPoison,
	ElementHoly,
	ElementShadow,
}

// ElementalProfile classifies a monster's reaction to damage elements.
// The sets are expected to be disjoint; resolution order when they are not
// is immune > weak > resistant.
type ElementalProfile struct {
	Immunities  []Element `json:"immunities,omitempty"`
	Weaknesses  []Element `json:"weaknesses,omitempty"`
	Resistances []Element `json:"resistances,omitempty"`
}

func containsElement(set []Element, e Element) bool {
	for _, candidate := range set {
		if candidate == e {
			return true
		}
	}
	return false
}

// IsImmuneTo reports whether the profile is immune to the element.
func (p ElementalProfile) IsImmuneTo(e Element) bool {
	return containsElement(p.Immunities, e)
}

// IsWeakTo reports whether the profile is weak to the element.
func (p ElementalProfile) IsWeakTo(e Element) bool {
	return containsElement(p.Weaknesses, e)
}

// IsResistantTo reports whether the profile resists the element.
func (p ElementalProfile) IsResistantTo(e Element) bool {
	return containsElement(p.Resistances, e)
}

// Clone returns a deep copy of the profile.
func (p ElementalProfile) Clone() ElementalProfile {
	out := ElementalProfile{}
	if len(p.Immunities) > 0 {
		out.Immunities = append([]Element(nil), p.Immunities...)
	}
	if len(p.Weaknesses) > 0 {
		out.Weaknesses = append([]Element(nil), p.Weaknesses...)
	}
	if len(p.Resistances) > 0 {
		out.Resistances = append([]Element(nil), p.Resistances...)
	}
	return out
}
