package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

func TestPointCost(t *testing.T) {
	expected := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
	for score, want := range expected {
		cost, ok := rules.PointCost(score)
		assert.True(t, ok, "score %d", score)
		assert.Equal(t, want, cost, "score %d", score)
	}

	for _, score := range []int{7, 16, 0, -1} {
		_, ok := rules.PointCost(score)
		assert.False(t, ok, "score %d should not be purchasable", score)
	}
}

func TestIsValidPointBuy_StandardArray(t *testing.T) {
	// 15+14+13+12+10+8 costs 9+7+5+4+2+0 = 27
	scores := entities.AbilityScores{
		Strength:     15,
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 12,
		Wisdom:       10,
		Charisma:     8,
	}

	spent, ok := rules.CalculatePointsSpent(scores)
	assert.True(t, ok)
	assert.Equal(t, rules.PointBuyBudget, spent)
	assert.True(t, rules.IsValidPointBuy(scores))
}

func TestIsValidPointBuy_UnderBudget(t *testing.T) {
	scores := entities.AbilityScores{
		Strength: 8, Dexterity: 8, Constitution: 8,
		Intelligence: 8, Wisdom: 8, Charisma: 8,
	}

	spent, ok := rules.CalculatePointsSpent(scores)
	assert.True(t, ok)
	assert.Equal(t, 0, spent)
	assert.False(t, rules.IsValidPointBuy(scores))
}

func TestIsValidPointBuy_AllMaxOverBudget(t *testing.T) {
	scores := entities.AbilityScores{
		Strength: 15, Dexterity: 15, Constitution: 15,
		Intelligence: 15, Wisdom: 15, Charisma: 15,
	}

	assert.False(t, rules.IsValidPointBuy(scores))
}

func TestIsValidPointBuy_OutOfRangeScore(t *testing.T) {
	scores := entities.AbilityScores{
		Strength:     16, // above the purchasable range
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 12,
		Wisdom:       10,
		Charisma:     8,
	}

	_, ok := rules.CalculatePointsSpent(scores)
	assert.False(t, ok)
	assert.False(t, rules.IsValidPointBuy(scores))
}
