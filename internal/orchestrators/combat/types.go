package combat

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// AttackResult is the shared shape of every resolved combat action.
//
// Success distinguishes the two failure tiers: a legal action that cannot
// proceed under current game rules (not enough MP, missing equipment,
// unknown content ID) returns Success=false with a Message and zero state
// mutation. A miss is still Success=true with Hit=false: the action
// resolved, it just didn't land.
type AttackResult struct {
	Success bool
	Message string

	Hit      bool
	Critical bool
	Fumble   bool

	AttackRoll dice.D20Roll
	TargetAC   int

	Damage         int
	ElementalLabel string
	Healed         int
	SelfHealed     int
	MPSpent        int

	MonsterDefeated bool
	PlayerDefeated  bool
}

// RollInitiativeInput defines the request for an initiative roll
type RollInitiativeInput struct {
	PlayerDexModifier int
	MonsterBonus      int
}

// RollInitiativeOutput defines the result of an initiative roll.
// Ties favor the player.
type RollInitiativeOutput struct {
	PlayerRoll  dice.D20Roll
	MonsterRoll dice.D20Roll
	PlayerFirst bool
}

// PlayerAttackInput defines the request for a main-hand melee attack
type PlayerAttackInput struct {
	Player             *entities.PlayerState
	Monster            *entities.Monster
	MonsterDefendBonus int
	WeatherPenalty     int
}

// PlayerAttackOutput defines the result of a main-hand melee attack
type PlayerAttackOutput struct {
	AttackResult
}

// PlayerOffHandAttackInput defines the request for an off-hand attack
type PlayerOffHandAttackInput struct {
	Player             *entities.PlayerState
	Monster            *entities.Monster
	MonsterDefendBonus int
	WeatherPenalty     int
}

// PlayerOffHandAttackOutput defines the result of an off-hand attack
type PlayerOffHandAttackOutput struct {
	AttackResult
}

// PlayerCastSpellInput defines the request for casting a spell
type PlayerCastSpellInput struct {
	Player         *entities.PlayerState
	SpellID        string
	Monster        *entities.Monster
	WeatherPenalty int
}

// PlayerCastSpellOutput defines the result of casting a spell
type PlayerCastSpellOutput struct {
	AttackResult
}

// PlayerUseAbilityInput defines the request for using a class ability
type PlayerUseAbilityInput struct {
	Player         *entities.PlayerState
	AbilityID      string
	Monster        *entities.Monster
	WeatherPenalty int
}

// PlayerUseAbilityOutput defines the result of using a class ability
type PlayerUseAbilityOutput struct {
	AttackResult
}

// MonsterAttackInput defines the request for a monster melee attack
type MonsterAttackInput struct {
	Monster           *entities.Monster
	Player            *entities.PlayerState
	PlayerDefendBonus int
	WeatherPenalty    int
	MonsterAtkBoost   int
}

// MonsterAttackOutput defines the result of a monster melee attack
type MonsterAttackOutput struct {
	AttackResult
}

// MonsterUseAbilityInput defines the request for a monster special
// ability. Special abilities bypass armor class entirely.
type MonsterUseAbilityInput struct {
	Monster   *entities.Monster
	AbilityID string
	Player    *entities.PlayerState
}

// MonsterUseAbilityOutput defines the result of a monster special ability
type MonsterUseAbilityOutput struct {
	AttackResult
}

// AttemptFleeInput defines the request for a flee attempt
type AttemptFleeInput struct {
	DexModifier int
}

// AttemptFleeOutput defines the result of a flee attempt. A flee attempt
// is atomic: it either ends the encounter or yields the turn.
type AttemptFleeOutput struct {
	Roll    dice.D20Roll
	Escaped bool
}
