package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// monsterTable is the authoritative monster template list.
var monsterTable = []entities.MonsterDef{
	{
		ID:              "giant_rat",
		Name:            "Giant Rat",
		HP:              5,
		ArmorClass:      11,
		AttackBonus:     1,
		DamageDiceCount: 1,
		DamageDie:       4,
	},
	{
		ID:              "goblin",
		Name:            "Goblin",
		HP:              7,
		ArmorClass:      13,
		AttackBonus:     2,
		DamageDiceCount: 1,
		DamageDie:       6,
	},
	{
		ID:              "skeleton",
		Name:            "Skeleton",
		HP:              13,
		ArmorClass:      12,
		AttackBonus:     2,
		DamageDiceCount: 1,
		DamageDie:       6,
		Elements: entities.ElementalProfile{
			Immunities: []entities.Element{entities.ElementPoison},
			Weaknesses: []entities.Element{entities.ElementHoly},
		},
	},
	{
		ID:              "fire_imp",
		Name:            "Fire Imp",
		HP:              10,
		ArmorClass:      12,
		AttackBonus:     3,
		DamageDiceCount: 1,
		DamageDie:       6,
		Elements: entities.ElementalProfile{
			Immunities: []entities.Element{entities.ElementFire},
			Weaknesses: []entities.Element{entities.ElementIce},
		},
		SpecialAbilities: []entities.MonsterAbilityDef{
			{
				ID:        "ember_spit",
				Name:      "Ember Spit",
				Type:      entities.EffectDamage,
				DiceCount: 2,
				Die:       4,
				Element:   entities.ElementFire,
			},
		},
	},
	{
		ID:              "frost_troll",
		Name:            "Frost Troll",
		HP:              30,
		ArmorClass:      14,
		AttackBonus:     4,
		DamageDiceCount: 2,
		DamageDie:       6,
		Elements: entities.ElementalProfile{
			Weaknesses:  []entities.Element{entities.ElementFire},
			Resistances: []entities.Element{entities.ElementIce},
		},
		SpecialAbilities: []entities.MonsterAbilityDef{
			{
				ID:        "frost_breath",
				Name:      "Frost Breath",
				Type:      entities.EffectDamage,
				DiceCount: 2,
				Die:       6,
				Element:   entities.ElementIce,
			},
			{
				ID:        "regrow",
				Name:      "Regrow",
				Type:      entities.EffectHeal,
				DiceCount: 2,
				Die:       8,
			},
		},
	},
	{
		ID:              "wraith",
		Name:            "Wraith",
		HP:              22,
		ArmorClass:      13,
		AttackBonus:     3,
		DamageDiceCount: 1,
		DamageDie:       8,
		Elements: entities.ElementalProfile{
			Immunities:  []entities.Element{entities.ElementPoison},
			Weaknesses:  []entities.Element{entities.ElementHoly},
			Resistances: []entities.Element{entities.ElementShadow},
		},
		SpecialAbilities: []entities.MonsterAbilityDef{
			{
				ID:        "life_drain",
				Name:      "Life Drain",
				Type:      entities.EffectDamage,
				DiceCount: 2,
				Die:       6,
				Element:   entities.ElementShadow,
				SelfHeal:  true,
			},
		},
	},
	{
		ID:              "ember_dragon",
		Name:            "Ember Dragon",
		HP:              60,
		ArmorClass:      17,
		AttackBonus:     6,
		DamageDiceCount: 2,
		DamageDie:       8,
		Boss:            true,
		Elements: entities.ElementalProfile{
			Immunities:  []entities.Element{entities.ElementFire},
			Weaknesses:  []entities.Element{entities.ElementIce},
			Resistances: []entities.Element{entities.ElementShadow},
		},
		SpecialAbilities: []entities.MonsterAbilityDef{
			{
				ID:        "fire_breath",
				Name:      "Fire Breath",
				Type:      entities.EffectDamage,
				DiceCount: 4,
				Die:       6,
				Element:   entities.ElementFire,
			},
			{
				ID:        "molten_mend",
				Name:      "Molten Mend",
				Type:      entities.EffectHeal,
				DiceCount: 3,
				Die:       8,
			},
		},
	},
}
