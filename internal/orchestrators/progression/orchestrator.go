// Package progression implements the character progression orchestrator:
// creation, experience, deferred level-ups, stat point allocation, and
// rests. Level-ups earned from experience are never applied inline;
// they accumulate as pending levels and are applied later at a safe
// point (explicitly, or as part of a rest).
//
// Operations load the character from the repository, mutate, and persist
// the result. A game-rule refusal (no stat points left, no rests left,
// illegal point buy) returns Success=false with a message and persists
// nothing.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/combat-api/internal/orchestrators/progression Service

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/repositories/character"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

const (
	// Base MP gained per level before the intelligence modifier.
	baseMPPerLevel = 2

	// HP and MP gains never drop below 1 per level.
	minGainPerLevel = 1

	// New characters start with this many short rests.
	startingShortRests = 2

	// Ability scores cannot be raised past this with stat points.
	statPointScoreCap = 20
)

// Service defines the interface for progression operations
type Service interface {
	// CreateCharacter validates point buy, applies class boosts, rolls
	// starting gold, and persists a fresh level-1 character
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// AwardXP adds experience and accumulates pending level-ups without
	// applying them
	AwardXP(ctx context.Context, input *AwardXPInput) (*AwardXPOutput, error)

	// ProcessPendingLevelUps applies all pending level-ups: HP/MP growth,
	// ASI grants, and spell/ability/talent unlock scans
	ProcessPendingLevelUps(ctx context.Context, input *ProcessPendingLevelUpsInput) (*ProcessPendingLevelUpsOutput, error)

	// AllocateStatPoint spends one pending stat point on an ability score
	AllocateStatPoint(ctx context.Context, input *AllocateStatPointInput) (*AllocateStatPointOutput, error)

	// Rest consumes a short rest to recover HP and MP, then applies any
	// pending level-ups
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// ValidatePointBuy checks an ability score allocation against the
	// point-buy cost table and budget
	ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	Dice          *dice.Engine
	Content       *content.Registry
	CharacterRepo character.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	dice          *dice.Engine
	content       *content.Registry
	characterRepo character.Repository
	idGenerator   idgen.Generator
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dice:          cfg.Dice,
		content:       cfg.Content,
		characterRepo: cfg.CharacterRepo,
		idGenerator:   cfg.IDGenerator,
	}, nil
}

// loadCharacter fetches a character by ID, mapping the repository
// contract onto the orchestrator's validation errors.
func (o *orchestrator) loadCharacter(ctx context.Context, operation, characterID string) (*entities.PlayerState, error) {
	if characterID == "" {
		return nil, errors.InvalidArgumentf("%s: character ID is required", operation)
	}
	getOutput, err := o.characterRepo.Get(ctx, character.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "%s: load character %s", operation, characterID)
	}
	return getOutput.Player, nil
}

// AwardXP adds experience and accumulates pending level-ups without
// applying them
func (o *orchestrator) AwardXP(ctx context.Context, input *AwardXPInput) (*AwardXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("AwardXP: input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("AwardXP: amount must be non-negative, got %d", input.Amount)
	}

	player, err := o.loadCharacter(ctx, "AwardXP", input.CharacterID)
	if err != nil {
		return nil, err
	}

	player.XP += input.Amount
	virtualLevel := player.Level + player.PendingLevelUps
	earned := rules.PendingLevels(player.XP, virtualLevel)
	player.PendingLevelUps += earned

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Player: player})
	if err != nil {
		return nil, errors.Wrap(err, "AwardXP: persist character")
	}

	return &AwardXPOutput{
		Player:          updateOutput.Player,
		LevelsEarned:    earned,
		PendingLevelUps: updateOutput.Player.PendingLevelUps,
	}, nil
}

// AllocateStatPoint spends one pending stat point on an ability score
func (o *orchestrator) AllocateStatPoint(ctx context.Context, input *AllocateStatPointInput) (*AllocateStatPointOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("AllocateStatPoint: input is required")
	}

	player, err := o.loadCharacter(ctx, "AllocateStatPoint", input.CharacterID)
	if err != nil {
		return nil, err
	}

	score, ok := player.Abilities.Get(input.Stat)
	if !ok {
		return nil, errors.InvalidArgumentf("AllocateStatPoint: unknown stat %q", input.Stat)
	}

	output := &AllocateStatPointOutput{Player: player}

	if player.PendingStatPoints == 0 {
		output.Message = "no stat points available"
		return output, nil
	}
	if score >= statPointScoreCap {
		output.Message = fmt.Sprintf("%s is already at its maximum of %d", input.Stat, statPointScoreCap)
		return output, nil
	}

	player.Abilities.Set(input.Stat, score+1)
	player.PendingStatPoints--

	// Constitution and intelligence raises apply retroactively across all
	// earned levels, on every point spent.
	switch input.Stat {
	case entities.StatConstitution:
		output.MaxHPGained = player.Level
		player.MaxHP += output.MaxHPGained
		player.HP += output.MaxHPGained
	case entities.StatIntelligence:
		output.MaxMPGained = player.Level
		if output.MaxMPGained < minGainPerLevel {
			output.MaxMPGained = minGainPerLevel
		}
		player.MaxMP += output.MaxMPGained
		player.MP += output.MaxMPGained
	}

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Player: player})
	if err != nil {
		return nil, errors.Wrap(err, "AllocateStatPoint: persist character")
	}

	output.Success = true
	output.Player = updateOutput.Player
	output.NewScore = score + 1
	output.PointsRemaining = updateOutput.Player.PendingStatPoints
	return output, nil
}

// ValidatePointBuy checks an ability score allocation against the
// point-buy cost table and budget
func (o *orchestrator) ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("ValidatePointBuy: input is required")
	}

	spent, inRange := rules.CalculatePointsSpent(input.Scores)
	output := &ValidatePointBuyOutput{PointsSpent: spent}

	switch {
	case !inRange:
		output.Message = fmt.Sprintf("every score must be between %d and %d",
			rules.PointBuyMinScore, rules.PointBuyMaxScore)
	case spent != rules.PointBuyBudget:
		output.Message = fmt.Sprintf("spent %d of %d points; the full budget must be spent",
			spent, rules.PointBuyBudget)
	default:
		output.Valid = true
	}

	return output, nil
}
