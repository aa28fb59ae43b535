package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// TalentTwoWeaponFighting gates the ability-modifier bonus on off-hand
// attack damage.
const TalentTwoWeaponFighting = "two_weapon_fighting"

// talentTable is the authoritative talent list, ordered by the level the
// talent becomes available at.
var talentTable = []entities.TalentDef{
	{
		ID:            "toughness",
		Name:          "Toughness",
		LevelRequired: 1,
		MaxHPBonus:    4,
	},
	{
		ID:            TalentTwoWeaponFighting,
		Name:          "Two-Weapon Fighting",
		LevelRequired: 2,
		Classes:       []string{ClassWarrior, ClassRogue},
	},
	{
		ID:            "arcane_mind",
		Name:          "Arcane Mind",
		LevelRequired: 2,
		Classes:       []string{ClassMage, ClassCleric},
		MaxMPBonus:    4,
	},
	{
		ID:            "iron_skin",
		Name:          "Iron Skin",
		LevelRequired: 3,
		ACBonus:       1,
	},
	{
		ID:            "weapon_master",
		Name:          "Weapon Master",
		LevelRequired: 4,
		Classes:       []string{ClassWarrior},
		AttackBonus:   1,
		DamageBonus:   1,
	},
	{
		ID:            "assassin",
		Name:          "Assassin",
		LevelRequired: 6,
		Classes:       []string{ClassRogue},
		DamageBonus:   2,
	},
}
