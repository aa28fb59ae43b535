package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/testutils"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{5, -3},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{13, 1},
		{14, 2},
		{15, 2},
		{16, 3},
		{18, 4},
		{20, 5},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, dice.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func TestRollD20(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(14))

	roll := eng.RollD20(3)
	assert.Equal(t, 14, roll.Roll)
	assert.Equal(t, 3, roll.Modifier)
	assert.Equal(t, 17, roll.Total)
	assert.False(t, roll.IsNatural20())
	assert.False(t, roll.IsNatural1())
}

func TestRollD20_Naturals(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(20, 1))

	crit := eng.RollD20(-5)
	assert.True(t, crit.IsNatural20())
	assert.Equal(t, 15, crit.Total)

	fumble := eng.RollD20(10)
	assert.True(t, fumble.IsNatural1())
	assert.Equal(t, 11, fumble.Total)
}

func TestRollDice(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(3, 5, 2))

	assert.Equal(t, 10, eng.RollDice(3, 6))
}

func TestRollDice_NonPositiveCount(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(6))

	assert.Equal(t, 0, eng.RollDice(0, 6))
	assert.Equal(t, 0, eng.RollDice(-2, 6))
}

func TestSeededRoller_Reproducible(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		got := a.Roll(20)
		require.Equal(t, got, b.Roll(20))
		require.GreaterOrEqual(t, got, 1)
		require.LessOrEqual(t, got, 20)
	}
}

func TestIsStandardDie(t *testing.T) {
	for _, die := range dice.StandardDice {
		assert.True(t, dice.IsStandardDie(die))
	}
	assert.False(t, dice.IsStandardDie(3))
	assert.False(t, dice.IsStandardDie(7))
	assert.False(t, dice.IsStandardDie(0))
}

func TestNewEngine_NilRollerFallsBack(t *testing.T) {
	eng := dice.NewEngine(nil)

	roll := eng.RollD20(0)
	require.GreaterOrEqual(t, roll.Roll, 1)
	require.LessOrEqual(t, roll.Roll, 20)
}
