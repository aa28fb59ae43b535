package combat

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// PlayerCastSpell resolves casting a known spell. MP is deducted the
// moment the cast is legal: a damage spell that misses still costs its
// full MP.
func (o *orchestrator) PlayerCastSpell(ctx context.Context, input *PlayerCastSpellInput) (*PlayerCastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("PlayerCastSpell: input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("PlayerCastSpell: player is required")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("PlayerCastSpell: spell ID is required")
	}

	output := &PlayerCastSpellOutput{}

	spell, ok := o.content.Spell(input.SpellID)
	if !ok {
		output.Message = fmt.Sprintf("unknown spell %q", input.SpellID)
		return output, nil
	}
	if !input.Player.KnowsSpell(spell.ID) {
		output.Message = fmt.Sprintf("you have not learned %s", spell.Name)
		return output, nil
	}
	if spell.Type == entities.EffectUtility {
		output.Message = fmt.Sprintf("%s cannot be used in combat", spell.Name)
		return output, nil
	}
	if input.Player.MP < spell.MPCost {
		output.Message = fmt.Sprintf("not enough MP to cast %s", spell.Name)
		return output, nil
	}

	if spell.Type == entities.EffectHeal {
		if input.Player.MissingHP() == 0 {
			output.Message = "already at full HP"
			return output, nil
		}

		input.Player.SpendMP(spell.MPCost)
		healed := input.Player.Heal(o.dice.RollDice(spell.DiceCount, spell.Die))

		output.Success = true
		output.Healed = healed
		output.MPSpent = spell.MPCost
		output.Message = fmt.Sprintf("%s restores %d HP", spell.Name, healed)
		return output, nil
	}

	if input.Monster == nil {
		return nil, errors.InvalidArgument("PlayerCastSpell: monster is required for damage spells")
	}
	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}

	primaryMod, ok := o.classPrimaryModifier(input.Player)
	if !ok {
		output.Message = fmt.Sprintf("class %q is not in the class registry", input.Player.ClassID)
		return output, nil
	}

	talentAttack, talentDamage, _ := o.talentBonuses(input.Player)

	input.Player.SpendMP(spell.MPCost)
	output.MPSpent = spell.MPCost

	roll := o.dice.RollD20(primaryMod + talentAttack)
	targetAC := input.Monster.ArmorClass + input.WeatherPenalty
	outcome := rules.ResolveAttackRoll(roll, targetAC, spell.AutoHit)

	output.Success = true
	output.Hit = outcome.Hit
	output.Critical = outcome.Critical
	output.Fumble = outcome.Fumble
	output.AttackRoll = roll
	output.TargetAC = targetAC

	if !outcome.Hit {
		if outcome.Fumble {
			output.Message = fmt.Sprintf("%s fizzles", spell.Name)
		} else {
			output.Message = fmt.Sprintf("%s misses the %s", spell.Name, input.Monster.Name)
		}
		return output, nil
	}

	base := rules.RollAttackDamage(o.dice, spell.DiceCount, spell.Die,
		outcome.Critical, talentDamage, meleeMinDamage)
	damage, label := rules.ApplyElementalModifier(base, spell.Element, &input.Monster.Elements)

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

// PlayerUseAbility resolves using a known class ability. The attack
// modifier comes from the ability's declared driving stat rather than
// the class primary stat.
func (o *orchestrator) PlayerUseAbility(ctx context.Context, input *PlayerUseAbilityInput) (*PlayerUseAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("PlayerUseAbility: input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("PlayerUseAbility: player is required")
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument("PlayerUseAbility: ability ID is required")
	}

	output := &PlayerUseAbilityOutput{}

	ability, ok := o.content.Ability(input.AbilityID)
	if !ok {
		output.Message = fmt.Sprintf("unknown ability %q", input.AbilityID)
		return output, nil
	}
	if !input.Player.KnowsAbility(ability.ID) {
		output.Message = fmt.Sprintf("you have not learned %s", ability.Name)
		return output, nil
	}
	if ability.Type == entities.EffectUtility {
		output.Message = fmt.Sprintf("%s cannot be used in combat", ability.Name)
		return output, nil
	}
	if input.Player.MP < ability.MPCost {
		output.Message = fmt.Sprintf("not enough MP to use %s", ability.Name)
		return output, nil
	}

	if ability.Type == entities.EffectHeal {
		if input.Player.MissingHP() == 0 {
			output.Message = "already at full HP"
			return output, nil
		}

		input.Player.SpendMP(ability.MPCost)
		healed := input.Player.Heal(o.dice.RollDice(ability.DiceCount, ability.Die))

		output.Success = true
		output.Healed = healed
		output.MPSpent = ability.MPCost
		output.Message = fmt.Sprintf("%s restores %d HP", ability.Name, healed)
		return output, nil
	}

	if input.Monster == nil {
		return nil, errors.InvalidArgument("PlayerUseAbility: monster is required for damage abilities")
	}
	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}

	drivingMod, err := o.abilityDrivingModifier(input.Player, ability)
	if err != nil {
		return nil, err
	}

	talentAttack, talentDamage, _ := o.talentBonuses(input.Player)

	input.Player.SpendMP(ability.MPCost)
	output.MPSpent = ability.MPCost

	roll := o.dice.RollD20(drivingMod + talentAttack)
	targetAC := input.Monster.ArmorClass + input.WeatherPenalty
	outcome := rules.ResolveAttackRoll(roll, targetAC, false)

	output.Success = true
	output.Hit = outcome.Hit
	output.Critical = outcome.Critical
	output.Fumble = outcome.Fumble
	output.AttackRoll = roll
	output.TargetAC = targetAC

	if !outcome.Hit {
		if outcome.Fumble {
			output.Message = fmt.Sprintf("%s goes wide", ability.Name)
		} else {
			output.Message = fmt.Sprintf("%s misses the %s", ability.Name, input.Monster.Name)
		}
		return output, nil
	}

	base := rules.RollAttackDamage(o.dice, ability.DiceCount, ability.Die,
		outcome.Critical, talentDamage, meleeMinDamage)
	damage, label := rules.ApplyElementalModifier(base, ability.Element, &input.Monster.Elements)

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

// MonsterUseAbility resolves a monster special ability (bypasses AC)
func (o *orchestrator) MonsterUseAbility(ctx context.Context, input *MonsterUseAbilityInput) (*MonsterUseAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("MonsterUseAbility: input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("MonsterUseAbility: monster is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("MonsterUseAbility: player is required")
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument("MonsterUseAbility: ability ID is required")
	}

	output := &MonsterUseAbilityOutput{}

	if !input.Monster.IsAlive() {
		output.Message = fmt.Sprintf("the %s is already defeated", input.Monster.Name)
		return output, nil
	}

	ability, ok := input.Monster.SpecialAbility(input.AbilityID)
	if !ok {
		output.Message = fmt.Sprintf("the %s has no ability %q", input.Monster.Name, input.AbilityID)
		return output, nil
	}

	if ability.Type == entities.EffectHeal {
		if input.Monster.HP >= input.Monster.MaxHP {
			output.Message = fmt.Sprintf("the %s is already at full HP", input.Monster.Name)
			return output, nil
		}

		healed := input.Monster.Heal(o.dice.RollDice(ability.DiceCount, ability.Die))

		output.Success = true
		output.SelfHealed = healed
		output.Message = fmt.Sprintf("the %s uses %s and recovers %d HP", input.Monster.Name, ability.Name, healed)
		return output, nil
	}

	// Special damage abilities hit automatically; no attack roll.
	rolled := o.dice.RollDice(ability.DiceCount, ability.Die)
	if rolled < meleeMinDamage {
		rolled = meleeMinDamage
	}
	applied := input.Player.ApplyDamage(rolled)

	output.Success = true
	output.Hit = true
	output.Damage = applied

	if ability.SelfHeal {
		output.SelfHealed = input.Monster.Heal(applied)
		output.Message = fmt.Sprintf("the %s uses %s for %d damage and drains %d HP",
			input.Monster.Name, ability.Name, applied, output.SelfHealed)
	} else {
		output.Message = fmt.Sprintf("the %s uses %s for %d damage", input.Monster.Name, ability.Name, applied)
	}

	if !input.Player.IsAlive() {
		output.PlayerDefeated = true
	}

	return output, nil
}

// abilityDrivingModifier resolves the ability modifier for the declared
// driving stat, falling back to the class primary stat when none is set.
func (o *orchestrator) abilityDrivingModifier(player *entities.PlayerState, ability *entities.AbilityDef) (int, error) {
	if ability.DrivingStat == "" {
		mod, ok := o.classPrimaryModifier(player)
		if !ok {
			return 0, errors.InvalidArgumentf("PlayerUseAbility: class %q has no resolvable primary stat", player.ClassID)
		}
		return mod, nil
	}
	score, ok := player.Abilities.Get(ability.DrivingStat)
	if !ok {
		return 0, errors.InvalidArgumentf("PlayerUseAbility: ability %q has unknown driving stat %q", ability.ID, ability.DrivingStat)
	}
	return dice.AbilityModifier(score), nil
}
