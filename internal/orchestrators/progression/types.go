package progression

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// CreateCharacterInput defines the request for character creation.
// BaseScores must be a legal point-buy allocation; class stat boosts are
// applied on top of it.
type CreateCharacterInput struct {
	PlayerID   string
	Name       string
	ClassID    string
	BaseScores entities.AbilityScores
}

// CreateCharacterOutput defines the result of character creation
type CreateCharacterOutput struct {
	Success bool
	Message string
	Player  *entities.PlayerState
}

// AwardXPInput defines the request for awarding experience
type AwardXPInput struct {
	CharacterID string
	Amount      int
}

// AwardXPOutput defines the result of awarding experience. LevelsEarned
// is how many new pending level-ups this award produced; nothing is
// applied until the pending level-ups are processed.
type AwardXPOutput struct {
	Player          *entities.PlayerState
	LevelsEarned    int
	PendingLevelUps int
}

// ProcessPendingLevelUpsInput defines the request for applying pending
// level-ups
type ProcessPendingLevelUpsInput struct {
	CharacterID string
}

// ProcessPendingLevelUpsOutput defines the result of applying pending
// level-ups. With zero pending levels the operation is a no-op and every
// summary field is empty.
type ProcessPendingLevelUpsOutput struct {
	Success bool
	Message string
	Player  *entities.PlayerState

	LevelsApplied     int
	HPGained          int
	MPGained          int
	StatPointsGranted int
	LearnedSpells     []string
	LearnedAbilities  []string
	LearnedTalents    []string
}

// AllocateStatPointInput defines the request for spending one pending
// stat point on a named ability score
type AllocateStatPointInput struct {
	CharacterID string
	Stat        string
}

// AllocateStatPointOutput defines the result of spending a stat point
type AllocateStatPointOutput struct {
	Success bool
	Message string
	Player  *entities.PlayerState

	NewScore        int
	PointsRemaining int
	MaxHPGained     int
	MaxMPGained     int
}

// RestInput defines the request for taking a short rest
type RestInput struct {
	CharacterID string
}

// RestOutput defines the result of a short rest. Pending level-ups are
// applied as part of the rest; LevelUps summarizes them when any were
// pending.
type RestOutput struct {
	Success bool
	Message string
	Player  *entities.PlayerState

	HPRecovered int
	MPRecovered int
	LevelUps    *LevelUpSummary
}

// ValidatePointBuyInput defines the request for point-buy validation
type ValidatePointBuyInput struct {
	Scores entities.AbilityScores
}

// ValidatePointBuyOutput defines the result of point-buy validation.
// PointsSpent covers only purchasable scores when Valid is false because
// a score fell out of range.
type ValidatePointBuyOutput struct {
	Valid       bool
	PointsSpent int
	Message     string
}
