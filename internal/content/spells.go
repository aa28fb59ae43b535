package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// spellTable is the authoritative spell list, ordered by the level the
// spell becomes available at. Unlock scans iterate it in order.
var spellTable = []entities.SpellDef{
	{
		ID:            "magic_missile",
		Name:          "Magic Missile",
		MPCost:        2,
		LevelRequired: 1,
		DiceCount:     2,
		Die:           4,
		Type:          entities.EffectDamage,
		AutoHit:       true,
	},
	{
		ID:            "heal_light",
		Name:          "Healing Light",
		MPCost:        2,
		LevelRequired: 1,
		DiceCount:     1,
		Die:           8,
		Type:          entities.EffectHeal,
	},
	{
		ID:            "arcane_light",
		Name:          "Arcane Light",
		MPCost:        1,
		LevelRequired: 1,
		Type:          entities.EffectUtility,
	},
	{
		ID:            "ice_shard",
		Name:          "Ice Shard",
		MPCost:        3,
		LevelRequired: 2,
		DiceCount:     2,
		Die:           6,
		Type:          entities.EffectDamage,
		Element:       entities.ElementIce,
	},
	{
		ID:            "fireball",
		Name:          "Fireball",
		MPCost:        5,
		LevelRequired: 3,
		DiceCount:     3,
		Die:           6,
		Type:          entities.EffectDamage,
		Element:       entities.ElementFire,
	},
	{
		ID:            "sanctuary",
		Name:          "Sanctuary",
		MPCost:        2,
		LevelRequired: 3,
		Type:          entities.EffectUtility,
	},
	{
		ID:            "heal_major",
		Name:          "Major Healing",
		MPCost:        6,
		LevelRequired: 4,
		DiceCount:     3,
		Die:           8,
		Type:          entities.EffectHeal,
	},
	{
		ID:            "lightning_bolt",
		Name:          "Lightning Bolt",
		MPCost:        7,
		LevelRequired: 5,
		DiceCount:     4,
		Die:           6,
		Type:          entities.EffectDamage,
		Element:       entities.ElementLightning,
	},
}
