package content

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// itemTable is the authoritative item list.
var itemTable = []entities.ItemDef{
	{ID: "rusty_sword", Name: "Rusty Sword", Type: entities.ItemTypeWeapon, Effect: 1},
	{ID: "steel_sword", Name: "Steel Sword", Type: entities.ItemTypeWeapon, Effect: 2},
	{ID: "flame_blade", Name: "Flame Blade", Type: entities.ItemTypeWeapon, Effect: 3, Element: entities.ElementFire},
	{ID: "dagger", Name: "Dagger", Type: entities.ItemTypeWeapon, Effect: 1, Light: true, Finesse: true},
	{ID: "shortsword", Name: "Shortsword", Type: entities.ItemTypeWeapon, Effect: 2, Light: true, Finesse: true},
	{ID: "frost_dagger", Name: "Frost Dagger", Type: entities.ItemTypeWeapon, Effect: 2, Light: true, Finesse: true, Element: entities.ElementIce},
	{ID: "great_axe", Name: "Great Axe", Type: entities.ItemTypeWeapon, Effect: 4, TwoHanded: true},
	{ID: "oak_staff", Name: "Oak Staff", Type: entities.ItemTypeWeapon, Effect: 1, TwoHanded: true},
	{ID: "mace", Name: "Mace", Type: entities.ItemTypeWeapon, Effect: 1},
	{ID: "leather_armor", Name: "Leather Armor", Type: entities.ItemTypeArmor, Effect: 1},
	{ID: "chain_mail", Name: "Chain Mail", Type: entities.ItemTypeArmor, Effect: 3},
	{ID: "iron_shield", Name: "Iron Shield", Type: entities.ItemTypeShield, Effect: 1},
	{ID: "tower_shield", Name: "Tower Shield", Type: entities.ItemTypeShield, Effect: 2},
	{ID: "healing_potion", Name: "Healing Potion", Type: entities.ItemTypeConsumable, Effect: 10},
	{ID: "mana_potion", Name: "Mana Potion", Type: entities.ItemTypeConsumable, Effect: 8},
	{ID: "dungeon_key", Name: "Dungeon Key", Type: entities.ItemTypeKey},
	{ID: "pony", Name: "Pony", Type: entities.ItemTypeMount},
}
