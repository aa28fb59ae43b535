package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// abilityTable is the authoritative class ability list, ordered by the
// level the ability becomes available at.
var abilityTable = []entities.AbilityDef{
	{
		ID:            "power_strike",
		Name:          "Power Strike",
		MPCost:        2,
		LevelRequired: 1,
		DiceCount:     2,
		Die:           6,
		Type:          entities.EffectDamage,
		DrivingStat:   entities.StatStrength,
	},
	{
		ID:            "backstab",
		Name:          "Backstab",
		MPCost:        2,
		LevelRequired: 1,
		DiceCount:     2,
		Die:           4,
		Type:          entities.EffectDamage,
		DrivingStat:   entities.StatDexterity,
	},
	{
		ID:            "smite",
		Name:          "Smite",
		MPCost:        3,
		LevelRequired: 2,
		DiceCount:     2,
		Die:           8,
		Type:          entities.EffectDamage,
		Element:       entities.ElementHoly,
		DrivingStat:   entities.StatWisdom,
	},
	{
		ID:            "second_wind",
		Name:          "Second Wind",
		MPCost:        3,
		LevelRequired: 2,
		DiceCount:     1,
		Die:           10,
		Type:          entities.EffectHeal,
	},
	{
		ID:            "intimidate",
		Name:          "Intimidate",
		MPCost:        1,
		LevelRequired: 3,
		Type:          entities.EffectUtility,
		DrivingStat:   entities.StatCharisma,
	},
	{
		ID:            "cleave",
		Name:          "Cleave",
		MPCost:        4,
		LevelRequired: 5,
		DiceCount:     3,
		Die:           6,
		Type:          entities.EffectDamage,
		DrivingStat:   entities.StatStrength,
	},
	{
		ID:            "shadow_strike",
		Name:          "Shadow Strike",
		MPCost:        4,
		LevelRequired: 6,
		DiceCount:     3,
		Die:           4,
		Type:          entities.EffectDamage,
		Element:       entities.ElementShadow,
		DrivingStat:   entities.StatDexterity,
	},
}
