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

// CreateCharacter validates point buy, applies class boosts, rolls
// starting gold, and persists a fresh level-1 character
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("CreateCharacter: input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("PlayerID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.ClassID == "" {
		vb.RequiredField("ClassID")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "CreateCharacter: invalid input")
	}

	output := &CreateCharacterOutput{}

	class, ok := o.content.Class(input.ClassID)
	if !ok {
		output.Message = fmt.Sprintf("class %q is not in the class registry", input.ClassID)
		return output, nil
	}
	if !rules.IsValidPointBuy(input.BaseScores) {
		spent, _ := rules.CalculatePointsSpent(input.BaseScores)
		output.Message = fmt.Sprintf("ability scores are not a legal point-buy allocation (spent %d of %d)",
			spent, rules.PointBuyBudget)
		return output, nil
	}

	scores := input.BaseScores
	for stat, boost := range class.StatBoosts {
		if score, ok := scores.Get(stat); ok {
			scores.Set(stat, score+boost)
		}
	}

	conModifier := dice.AbilityModifier(scores.Constitution)
	intModifier := dice.AbilityModifier(scores.Intelligence)

	maxHP := class.HitDie + conModifier
	if maxHP < minGainPerLevel {
		maxHP = minGainPerLevel
	}
	maxMP := baseMPPerLevel + intModifier
	if maxMP < minGainPerLevel {
		maxMP = minGainPerLevel
	}

	player := &entities.PlayerState{
		ID:                  o.idGenerator.Generate(),
		PlayerID:            input.PlayerID,
		Name:                input.Name,
		ClassID:             class.ID,
		Level:               1,
		HP:                  maxHP,
		MaxHP:               maxHP,
		MP:                  maxMP,
		MaxMP:               maxMP,
		Abilities:           scores,
		WeaponID:            class.StartingWeaponID,
		Gold:                o.dice.RollDice(class.GoldDiceCount, class.GoldDie),
		ShortRestsRemaining: startingShortRests,
	}

	// Level-1 unlock scan; talent HP/MP bonuses land on top of the base
	// maxima.
	o.applyUnlocks(player, class, &LevelUpSummary{})

	createOutput, err := o.characterRepo.Create(ctx, character.CreateInput{Player: player})
	if err != nil {
		return nil, errors.Wrap(err, "CreateCharacter: persist character")
	}

	output.Success = true
	output.Player = createOutput.Player
	return output, nil
}

// Rest consumes a short rest to recover HP and MP, then applies any
// pending level-ups
func (o *orchestrator) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("Rest: input is required")
	}

	player, err := o.loadCharacter(ctx, "Rest", input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &RestOutput{Player: player}

	if player.ShortRestsRemaining <= 0 {
		output.Message = "no short rests remaining"
		return output, nil
	}

	class, ok := o.content.Class(player.ClassID)
	if !ok {
		output.Message = fmt.Sprintf("class %q is not in the class registry", player.ClassID)
		return output, nil
	}

	player.ShortRestsRemaining--

	hpRoll := o.dice.RollDice(1, class.HitDie) + dice.AbilityModifier(player.Abilities.Constitution)
	if hpRoll < minGainPerLevel {
		hpRoll = minGainPerLevel
	}
	output.HPRecovered = player.Heal(hpRoll)
	output.MPRecovered = player.RestoreMP(o.dice.RollDice(1, 4) + 1)

	if player.PendingLevelUps > 0 {
		output.LevelUps = o.applyPendingLevelUps(player, class)
	}

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Player: player})
	if err != nil {
		return nil, errors.Wrap(err, "Rest: persist character")
	}

	output.Success = true
	output.Player = updateOutput.Player
	return output, nil
}
