package testutils

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Brakka Ironjaw"

// ScriptedRoller is a dice.Roller that returns a fixed sequence of
// values regardless of the die being rolled. When the script runs out it
// keeps returning the last value, so a one-element script pins every
// roll.
type ScriptedRoller struct {
	values []int
	next   int
}

// NewScriptedRoller creates a roller that replays the given values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(die int) int {
	if len(r.values) == 0 {
		return 1
	}
	if r.next >= len(r.values) {
		return r.values[len(r.values)-1]
	}
	v := r.values[r.next]
	r.next++
	return v
}

// CreateTestWarrior creates a level-1 warrior with sensible defaults
func CreateTestWarrior(playerID string) *entities.PlayerState {
	return &entities.PlayerState{
		ID:       "char-test-001",
		PlayerID: playerID,
		Name:     TestCharacterName,
		ClassID:  "warrior",
		Level:    1,
		HP:       12,
		MaxHP:    12,
		MP:       3,
		MaxMP:    3,
		Abilities: entities.AbilityScores{
			Strength:     16,
			Dexterity:    12,
			Constitution: 14,
			Intelligence: 8,
			Wisdom:       10,
			Charisma:     10,
		},
		WeaponID:            "rusty_sword",
		Gold:                10,
		ShortRestsRemaining: 2,
	}
}

// CreateTestRogue creates a level-1 rogue holding a light off-hand weapon
func CreateTestRogue(playerID string) *entities.PlayerState {
	return &entities.PlayerState{
		ID:       "char-test-002",
		PlayerID: playerID,
		Name:     "Vex Nightwhisper",
		ClassID:  "rogue",
		Level:    1,
		HP:       9,
		MaxHP:    9,
		MP:       3,
		MaxMP:    3,
		Abilities: entities.AbilityScores{
			Strength:     10,
			Dexterity:    16,
			Constitution: 12,
			Intelligence: 10,
			Wisdom:       10,
			Charisma:     13,
		},
		WeaponID:            "dagger",
		OffHandID:           "dagger",
		Gold:                14,
		ShortRestsRemaining: 2,
	}
}

// CreateTestMage creates a level-1 mage with a couple of known spells
func CreateTestMage(playerID string) *entities.PlayerState {
	return &entities.PlayerState{
		ID:       "char-test-003",
		PlayerID: playerID,
		Name:     "Sellis Emberquill",
		ClassID:  "mage",
		Level:    1,
		HP:       7,
		MaxHP:    7,
		MP:       5,
		MaxMP:    5,
		Abilities: entities.AbilityScores{
			Strength:     8,
			Dexterity:    12,
			Constitution: 12,
			Intelligence: 16,
			Wisdom:       12,
			Charisma:     10,
		},
		WeaponID:            "oak_staff",
		KnownSpells:         []string{"magic_missile", "arcane_light"},
		Gold:                7,
		ShortRestsRemaining: 2,
	}
}

// CreateTestGoblin creates a battle-scoped goblin instance
func CreateTestGoblin() *entities.Monster {
	return &entities.Monster{
		ID:              "goblin",
		Name:            "Goblin",
		HP:              7,
		MaxHP:           7,
		ArmorClass:      13,
		AttackBonus:     2,
		DamageDiceCount: 1,
		DamageDie:       6,
	}
}

// CreateTestSkeleton creates a skeleton instance with an elemental profile
func CreateTestSkeleton() *entities.Monster {
	return &entities.Monster{
		ID:              "skeleton",
		Name:            "Skeleton",
		HP:              13,
		MaxHP:           13,
		ArmorClass:      12,
		AttackBonus:     3,
		DamageDiceCount: 1,
		DamageDie:       8,
		Elements: entities.ElementalProfile{
			Immunities: []entities.Element{entities.ElementPoison},
			Weaknesses: []entities.Element{entities.ElementHoly},
		},
	}
}
