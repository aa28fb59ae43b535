package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Class IDs
const (
	ClassWarrior = "warrior"
	ClassMage    = "mage"
	ClassCleric  = "cleric"
	ClassRogue   = "rogue"
)

// classTable is the authoritative class list. Order is externally
// observable (character creation menus iterate it), so append only.
var classTable = []entities.ClassDef{
	{
		ID:               ClassWarrior,
		Name:             "Warrior",
		PrimaryStat:      entities.StatStrength,
		HitDie:           10,
		StartingWeaponID: "rusty_sword",
		GoldDiceCount:    3,
		GoldDie:          6,
		AbilityIDs:       []string{"power_strike", "second_wind", "intimidate", "cleave"},
		StatBoosts:       map[string]int{entities.StatStrength: 2, entities.StatConstitution: 1},
	},
	{
		ID:               ClassMage,
		Name:             "Mage",
		PrimaryStat:      entities.StatIntelligence,
		HitDie:           6,
		StartingWeaponID: "oak_staff",
		GoldDiceCount:    2,
		GoldDie:          6,
		SpellIDs:         []string{"magic_missile", "arcane_light", "ice_shard", "fireball", "lightning_bolt"},
		StatBoosts:       map[string]int{entities.StatIntelligence: 2, entities.StatWisdom: 1},
	},
	{
		ID:               ClassCleric,
		Name:             "Cleric",
		PrimaryStat:      entities.StatWisdom,
		HitDie:           8,
		StartingWeaponID: "mace",
		GoldDiceCount:    2,
		GoldDie:          8,
		SpellIDs:         []string{"heal_light", "sanctuary", "heal_major"},
		AbilityIDs:       []string{"smite"},
		StatBoosts:       map[string]int{entities.StatWisdom: 2, entities.StatConstitution: 1},
	},
	{
		ID:               ClassRogue,
		Name:             "Rogue",
		PrimaryStat:      entities.StatDexterity,
		HitDie:           8,
		StartingWeaponID: "dagger",
		GoldDiceCount:    4,
		GoldDie:          4,
		AbilityIDs:       []string{"backstab", "intimidate", "shadow_strike"},
		StatBoosts:       map[string]int{entities.StatDexterity: 2, entities.StatCharisma: 1},
	},
}
