package combat

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// talentBonuses sums the persistent bonuses of every talent the player
// knows. Unknown talent IDs on the record are skipped; stale saves should
// not break combat.
func (o *orchestrator) talentBonuses(player *entities.PlayerState) (attack, damage, ac int) {
	for _, id := range player.KnownTalents {
		talent, ok := o.content.Talent(id)
		if !ok {
			continue
		}
		attack += talent.AttackBonus
		damage += talent.DamageBonus
		ac += talent.ACBonus
	}
	return attack, damage, ac
}

// equippedItem resolves an equipped slot ID, treating the empty string as
// an empty slot. The second return reports whether the slot was occupied;
// a nil def with occupied=true means the ID didn't resolve.
func (o *orchestrator) equippedItem(itemID string) (*entities.ItemDef, bool) {
	if itemID == "" {
		return nil, false
	}
	item, ok := o.content.Item(itemID)
	if !ok {
		return nil, true
	}
	return item, true
}

// meleeModifier returns the ability modifier driving a main-hand swing:
// strength, or the better of strength and dexterity for finesse weapons.
func meleeModifier(player *entities.PlayerState, weapon *entities.ItemDef) int {
	strMod := dice.AbilityModifier(player.Abilities.Strength)
	if weapon != nil && weapon.Finesse {
		dexMod := dice.AbilityModifier(player.Abilities.Dexterity)
		if dexMod > strMod {
			return dexMod
		}
	}
	return strMod
}

// playerArmorClass derives the player's armor class: 10 + DEX modifier +
// armor effect + shield effect + persistent talent AC bonuses.
func (o *orchestrator) playerArmorClass(player *entities.PlayerState) int {
	ac := 10 + dice.AbilityModifier(player.Abilities.Dexterity)
	if armor, occupied := o.equippedItem(player.ArmorID); occupied && armor != nil && armor.Type == entities.ItemTypeArmor {
		ac += armor.Effect
	}
	if shield, occupied := o.equippedItem(player.ShieldID); occupied && shield != nil && shield.Type == entities.ItemTypeShield {
		ac += shield.Effect
	}
	_, _, talentAC := o.talentBonuses(player)
	return ac + talentAC
}

// classPrimaryModifier returns the ability modifier of the player's class
// primary stat, or false when the class ID doesn't resolve.
func (o *orchestrator) classPrimaryModifier(player *entities.PlayerState) (int, bool) {
	class, ok := o.content.Class(player.ClassID)
	if !ok {
		return 0, false
	}
	score, ok := player.Abilities.Get(class.PrimaryStat)
	if !ok {
		return 0, false
	}
	return dice.AbilityModifier(score), true
}
