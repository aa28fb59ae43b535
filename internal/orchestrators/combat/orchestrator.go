// Package combat implements the combat orchestrator: the one-action-at-a-
// time resolution engine an external battle loop drives. Every operation
// fully resolves (including all RNG draws) before returning, and mutates
// the PlayerState/Monster references it is handed in place.
//
// The orchestrator holds no battle state and performs no locking: the
// enclosing battle loop guarantees strictly alternating turns, so each
// PlayerState/Monster pair has a single writer.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/combat-api/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/repositories/codex"
)

const (
	// Base melee damage before bonuses: one d6, two on a crit.
	meleeDamageDiceCount = 1
	meleeDamageDie       = 6

	// Melee damage never drops below 1 after bonuses.
	meleeMinDamage = 1

	// fleeDC is the total a d20+DEX flee check must reach.
	fleeDC = 10
)

// Service defines the interface for combat operations
type Service interface {
	// RollInitiative rolls d20+modifier for each side; ties favor the player
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// PlayerAttack resolves a main-hand melee attack against the monster
	PlayerAttack(ctx context.Context, input *PlayerAttackInput) (*PlayerAttackOutput, error)

	// PlayerOffHandAttack resolves an off-hand attack; requires a light,
	// one-handed weapon in the off-hand slot
	PlayerOffHandAttack(ctx context.Context, input *PlayerOffHandAttackInput) (*PlayerOffHandAttackOutput, error)

	// PlayerCastSpell resolves casting a known spell
	PlayerCastSpell(ctx context.Context, input *PlayerCastSpellInput) (*PlayerCastSpellOutput, error)

	// PlayerUseAbility resolves using a known class ability
	PlayerUseAbility(ctx context.Context, input *PlayerUseAbilityInput) (*PlayerUseAbilityOutput, error)

	// MonsterAttack resolves a monster melee attack against the player
	MonsterAttack(ctx context.Context, input *MonsterAttackInput) (*MonsterAttackOutput, error)

	// MonsterUseAbility resolves a monster special ability (bypasses AC)
	MonsterUseAbility(ctx context.Context, input *MonsterUseAbilityInput) (*MonsterUseAbilityOutput, error)

	// AttemptFlee resolves a flee attempt against a fixed DC
	AttemptFlee(ctx context.Context, input *AttemptFleeInput) (*AttemptFleeOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Dice    *dice.Engine
	Content *content.Registry
	// Codex is optional; when present, monster defeats are recorded
	// best-effort and never fail the action.
	Codex codex.Repository
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

	return vb.Build()
}

type orchestrator struct {
	dice    *dice.Engine
	content *content.Registry
	codex   codex.Repository
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dice:    cfg.Dice,
		content: cfg.Content,
		codex:   cfg.Codex,
	}, nil
}

// RollInitiative rolls d20+modifier for each side; ties favor the player
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("RollInitiative: input is required")
	}

	playerRoll := o.dice.RollD20(input.PlayerDexModifier)
	monsterRoll := o.dice.RollD20(input.MonsterBonus)

	return &RollInitiativeOutput{
		PlayerRoll:  playerRoll,
		MonsterRoll: monsterRoll,
		PlayerFirst: playerRoll.Total >= monsterRoll.Total,
	}, nil
}

// AttemptFlee resolves a flee attempt against a fixed DC
func (o *orchestrator) AttemptFlee(ctx context.Context, input *AttemptFleeInput) (*AttemptFleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("AttemptFlee: input is required")
	}

	roll := o.dice.RollD20(input.DexModifier)

	return &AttemptFleeOutput{
		Roll:    roll,
		Escaped: roll.Total >= fleeDC,
	}, nil
}

// recordDefeat notes a kill in the codex. Best-effort: storage problems
// are logged and never fail the action.
func (o *orchestrator) recordDefeat(ctx context.Context, monster *entities.Monster) {
	if o.codex == nil {
		return
	}
	if err := o.codex.RecordDefeat(ctx, monster.ID); err != nil {
		slog.Warn("failed to record codex defeat",
			"monster_id", monster.ID,
			"error", err,
		)
	}
}
