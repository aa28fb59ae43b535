package rules

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Elemental result labels
const (
	ElementalImmune    = "immune"
	ElementalWeak      = "weak"
	ElementalResistant = "resistant"
)

// ApplyElementalModifier transforms a base damage amount through the
// target's elemental profile. Exactly one rule fires, in priority order
// immune > weak > resistant; otherwise the damage passes through with an
// empty label. An absent element or profile leaves the damage unchanged.
func ApplyElementalModifier(baseDamage int, element entities.Element, profile *entities.ElementalProfile) (int, string) {
	if element == entities.ElementNone || profile == nil {
		return baseDamage, ""
	}
	switch {
	case profile.IsImmuneTo(element):
		return 0, ElementalImmune
	case profile.IsWeakTo(element):
		return baseDamage * 2, ElementalWeak
	case profile.IsResistantTo(element):
		return baseDamage / 2, ElementalResistant
	default:
		return baseDamage, ""
	}
}
