package combat

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// PlayerAttack resolves a main-hand melee attack against the monster
func (o *orchestrator) PlayerAttack(ctx context.Context, input *PlayerAttackInput) (*PlayerAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("PlayerAttack: input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("PlayerAttack: player is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("PlayerAttack: monster is required")
	}

	output := &PlayerAttackOutput{}

	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}

	weapon, occupied := o.equippedItem(input.Player.WeaponID)
	if occupied && weapon == nil {
		output.Message = fmt.Sprintf("equipped weapon %q is not in the item registry", input.Player.WeaponID)
		return output, nil
	}
	if weapon != nil && weapon.Type != entities.ItemTypeWeapon {
		output.Message = fmt.Sprintf("%s is not a weapon", weapon.Name)
		return output, nil
	}

	talentAttack, talentDamage, _ := o.talentBonuses(input.Player)
	abilityMod := meleeModifier(input.Player, weapon)

	roll := o.dice.RollD20(abilityMod + talentAttack)
	targetAC := input.Monster.ArmorClass + input.MonsterDefendBonus + input.WeatherPenalty
	outcome := rules.ResolveAttackRoll(roll, targetAC, false)

	output.Success = true
	output.Hit = outcome.Hit
	output.Critical = outcome.Critical
	output.Fumble = outcome.Fumble
	output.AttackRoll = roll
	output.TargetAC = targetAC

	if !outcome.Hit {
		if outcome.Fumble {
			output.Message = "you fumble your attack"
		} else {
			output.Message = fmt.Sprintf("you miss the %s", input.Monster.Name)
		}
		return output, nil
	}

	weaponBonus := 0
	element := entities.ElementNone
	if weapon != nil {
		weaponBonus = weapon.Effect
		element = weapon.Element
	}

	base := rules.RollAttackDamage(o.dice, meleeDamageDiceCount, meleeDamageDie,
		outcome.Critical, weaponBonus+talentDamage+abilityMod, meleeMinDamage)
	damage, label := rules.ApplyElementalModifier(base, element, &input.Monster.Elements)

	input.Monster.ApplyDamage(damage)
	output.Damage = damage
	output.ElementalLabel = label
	output.Message = attackMessage(input.Monster.Name, damage, label, outcome.Critical)

	if !input.Monster.IsAlive() {
		output.MonsterDefeated = true
		o.recordDefeat(ctx, input.Monster)
	}

	return output, nil
}

// PlayerOffHandAttack resolves an off-hand attack. The ability modifier
// contributes to damage only when the player knows Two-Weapon Fighting,
// or when the modifier is negative, in which case it always applies.
func (o *orchestrator) PlayerOffHandAttack(ctx context.Context, input *PlayerOffHandAttackInput) (*PlayerOffHandAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("PlayerOffHandAttack: input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("PlayerOffHandAttack: player is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("PlayerOffHandAttack: monster is required")
	}

	output := &PlayerOffHandAttackOutput{}

	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}

	offHand, occupied := o.equippedItem(input.Player.OffHandID)
	if !occupied {
		output.Message = "no off-hand weapon equipped"
		return output, nil
	}
	if offHand == nil {
		output.Message = fmt.Sprintf("equipped off-hand weapon %q is not in the item registry", input.Player.OffHandID)
		return output, nil
	}
	if offHand.Type != entities.ItemTypeWeapon {
		output.Message = fmt.Sprintf("%s is not a weapon", offHand.Name)
		return output, nil
	}
	if offHand.TwoHanded {
		output.Message = fmt.Sprintf("%s needs both hands", offHand.Name)
		return output, nil
	}
	if !offHand.Light {
		output.Message = fmt.Sprintf("%s is too heavy for the off hand", offHand.Name)
		return output, nil
	}

	primaryMod, ok := o.classPrimaryModifier(input.Player)
	if !ok {
		output.Message = fmt.Sprintf("class %q is not in the class registry", input.Player.ClassID)
		return output, nil
	}

	talentAttack, talentDamage, _ := o.talentBonuses(input.Player)

	// The class primary-stat modifier is added to off-hand damage only
	// with the Two-Weapon Fighting talent; a negative modifier always
	// applies.
	modContribution := 0
	if input.Player.KnowsTalent(content.TalentTwoWeaponFighting) || primaryMod < 0 {
		modContribution = primaryMod
	}

	roll := o.dice.RollD20(primaryMod + talentAttack)
	targetAC := input.Monster.ArmorClass + input.MonsterDefendBonus + input.WeatherPenalty
	outcome := rules.ResolveAttackRoll(roll, targetAC, false)

	output.Success = true
	output.Hit = outcome.Hit
	output.Critical = outcome.Critical
	output.Fumble = outcome.Fumble
	output.AttackRoll = roll
	output.TargetAC = targetAC

	if !outcome.Hit {
		if outcome.Fumble {
			output.Message = "you fumble your off-hand attack"
		} else {
			output.Message = fmt.Sprintf("your off-hand attack misses the %s", input.Monster.Name)
		}
		return output, nil
	}

	base := rules.RollAttackDamage(o.dice, meleeDamageDiceCount, meleeDamageDie,
		outcome.Critical, offHand.Effect+talentDamage+modContribution, meleeMinDamage)
	damage, label := rules.ApplyElementalModifier(base, offHand.Element, &input.Monster.Elements)

	input.Monster.ApplyDamage(damage)
	output.Damage = damage
	output.ElementalLabel = label
	output.Message = attackMessage(input.Monster.Name, damage, label, outcome.Critical)

	if !input.Monster.IsAlive() {
		output.MonsterDefeated = true
		o.recordDefeat(ctx, input.Monster)
	}

	return output, nil
}

// MonsterAttack resolves a monster melee attack against the player
func (o *orchestrator) MonsterAttack(ctx context.Context, input *MonsterAttackInput) (*MonsterAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("MonsterAttack: input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("MonsterAttack: monster is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("MonsterAttack: player is required")
	}

	output := &MonsterAttackOutput{}

	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}
	if !input.Player.IsAlive() {
		output.Message = "the player is already down"
		return output, nil
	}

	roll := o.dice.RollD20(input.Monster.AttackBonus + input.MonsterAtkBoost)
	targetAC := o.playerArmorClass(input.Player) + input.PlayerDefendBonus + input.WeatherPenalty
	outcome := rules.ResolveAttackRoll(roll, targetAC, false)

	output.Success = true
	output.Hit = outcome.Hit
	output.Critical = outcome.Critical
	output.Fumble = outcome.Fumble
	output.AttackRoll = roll
	output.TargetAC = targetAC

	if !outcome.Hit {
		if outcome.Fumble {
			output.Message = fmt.Sprintf("the %s fumbles its attack", input.Monster.Name)
		} else {
			output.Message = fmt.Sprintf("the %s misses you", input.Monster.Name)
		}
		return output, nil
	}

	damage := rules.RollAttackDamage(o.dice, input.Monster.DamageDiceCount, input.Monster.DamageDie,
		outcome.Critical, 0, meleeMinDamage)

	input.Player.ApplyDamage(damage)
	output.Damage = damage
	if outcome.Critical {
		output.Message = fmt.Sprintf("the %s crits you for %d damage", input.Monster.Name, damage)
	} else {
		output.Message = fmt.Sprintf("the %s hits you for %d damage", input.Monster.Name, damage)
	}

	if !input.Player.IsAlive() {
		output.PlayerDefeated = true
	}

	return output, nil
}

// attackMessage renders the landed-hit log line, folding in the elemental
// label when one fired.
func attackMessage(monsterName string, damage int, label string, critical bool) string {
	switch {
	case label == rules.ElementalImmune:
		return fmt.Sprintf("the %s is immune: no damage", monsterName)
	case critical && label != "":
		return fmt.Sprintf("critical! the %s takes %d damage (%s)", monsterName, damage, label)
	case critical:
		return fmt.Sprintf("critical! the %s takes %d damage", monsterName, damage)
	case label != "":
		return fmt.Sprintf("the %s takes %d damage (%s)", monsterName, damage, label)
	default:
		return fmt.Sprintf("the %s takes %d damage", monsterName, damage)
	}
}
