package progression

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/repositories/character"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// LevelUpSummary collects everything a batch of applied level-ups did.
type LevelUpSummary struct {
	LevelsApplied     int
	HPGained          int
	MPGained          int
	StatPointsGranted int
	LearnedSpells     []string
	LearnedAbilities  []string
	LearnedTalents    []string
}

// ProcessPendingLevelUps applies all pending level-ups: HP/MP growth,
// ASI grants, and spell/ability/talent unlock scans
func (o *orchestrator) ProcessPendingLevelUps(ctx context.Context, input *ProcessPendingLevelUpsInput) (*ProcessPendingLevelUpsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("ProcessPendingLevelUps: input is required")
	}

	player, err := o.loadCharacter(ctx, "ProcessPendingLevelUps", input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &ProcessPendingLevelUpsOutput{Player: player}

	if player.PendingLevelUps == 0 {
		output.Success = true
		return output, nil
	}

	class, ok := o.content.Class(player.ClassID)
	if !ok {
		output.Message = fmt.Sprintf("class %q is not in the class registry", player.ClassID)
		return output, nil
	}

	summary := o.applyPendingLevelUps(player, class)

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Player: player})
	if err != nil {
		return nil, errors.Wrap(err, "ProcessPendingLevelUps: persist character")
	}

	output.Success = true
	output.Player = updateOutput.Player
	output.LevelsApplied = summary.LevelsApplied
	output.HPGained = summary.HPGained
	output.MPGained = summary.MPGained
	output.StatPointsGranted = summary.StatPointsGranted
	output.LearnedSpells = summary.LearnedSpells
	output.LearnedAbilities = summary.LearnedAbilities
	output.LearnedTalents = summary.LearnedTalents
	return output, nil
}

// applyPendingLevelUps drains the pending level-up counter one level at a
// time: each level grants a rolled hit die of HP and base MP (both
// modifier-adjusted, min 1 each), an ASI stat point grant on the
// designated levels, and an unlock scan over the class whitelists and the
// talent table. Gains raise current HP/MP along with the maxima.
func (o *orchestrator) applyPendingLevelUps(player *entities.PlayerState, class *entities.ClassDef) *LevelUpSummary {
	summary := &LevelUpSummary{}

	for player.PendingLevelUps > 0 && player.Level < entities.MaxLevel {
		player.PendingLevelUps--
		player.Level++

		conModifier := dice.AbilityModifier(player.Abilities.Constitution)
		intModifier := dice.AbilityModifier(player.Abilities.Intelligence)

		hpGain := o.dice.RollDice(1, class.HitDie) + conModifier
		if hpGain < minGainPerLevel {
			hpGain = minGainPerLevel
		}
		mpGain := baseMPPerLevel + intModifier
		if mpGain < minGainPerLevel {
			mpGain = minGainPerLevel
		}

		player.MaxHP += hpGain
		player.HP += hpGain
		player.MaxMP += mpGain
		player.MP += mpGain
		summary.HPGained += hpGain
		summary.MPGained += mpGain

		if rules.ASILevels[player.Level] {
			player.PendingStatPoints += rules.ASIPointsPerGrant
			summary.StatPointsGranted += rules.ASIPointsPerGrant
		}

		o.applyUnlocks(player, class, summary)
		summary.LevelsApplied++
	}

	// Levels pending past the cap are discarded; XP keeps accruing but
	// grants nothing further.
	if player.Level >= entities.MaxLevel {
		player.PendingLevelUps = 0
	}

	return summary
}

// applyUnlocks scans the class whitelists and the talent table for
// content the player now qualifies for and learns it. Talent maxHP/maxMP
// bonuses apply once, when the talent is learned.
func (o *orchestrator) applyUnlocks(player *entities.PlayerState, class *entities.ClassDef, summary *LevelUpSummary) {
	for _, spellID := range class.SpellIDs {
		spell, ok := o.content.Spell(spellID)
		if !ok || spell.LevelRequired > player.Level || player.KnowsSpell(spellID) {
			continue
		}
		player.LearnSpell(spellID)
		summary.LearnedSpells = append(summary.LearnedSpells, spellID)
	}

	for _, abilityID := range class.AbilityIDs {
		ability, ok := o.content.Ability(abilityID)
		if !ok || ability.LevelRequired > player.Level || player.KnowsAbility(abilityID) {
			continue
		}
		player.LearnAbility(abilityID)
		summary.LearnedAbilities = append(summary.LearnedAbilities, abilityID)
	}

	for _, talent := range o.content.Talents() {
		if talent.LevelRequired > player.Level || player.KnowsTalent(talent.ID) {
			continue
		}
		if len(talent.Classes) > 0 && !containsClass(talent.Classes, class.ID) {
			continue
		}
		player.LearnTalent(talent.ID)
		player.MaxHP += talent.MaxHPBonus
		player.HP += talent.MaxHPBonus
		player.MaxMP += talent.MaxMPBonus
		player.MP += talent.MaxMPBonus
		summary.HPGained += talent.MaxHPBonus
		summary.MPGained += talent.MaxMPBonus
		summary.LearnedTalents = append(summary.LearnedTalents, talent.ID)
	}
}

func containsClass(classIDs []string, classID string) bool {
	for _, id := range classIDs {
		if id == classID {
			return true
		}
	}
	return false
}
