package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/rules"
	"github.com/KirkDiggler/combat-api/internal/testutils"
)

func TestRollAttackDamage(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(4, 3))

	// 2d6 + 2, no crit
	assert.Equal(t, 9, rules.RollAttackDamage(eng, 2, 6, false, 2, 1))
}

func TestRollAttackDamage_CritDoublesDiceNotBonus(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(2, 3, 4, 5))

	// 2d6 + 3 on a crit rolls four dice; bonus applied once
	assert.Equal(t, 17, rules.RollAttackDamage(eng, 2, 6, true, 3, 1))
}

func TestRollAttackDamage_FloorsAtMinimum(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(1))

	// 1d6 - 4 would go negative; floored
	assert.Equal(t, 1, rules.RollAttackDamage(eng, 1, 6, false, -4, 1))
}

func TestRollAttackDamage_MinimumZeroAllowed(t *testing.T) {
	eng := dice.NewEngine(testutils.NewScriptedRoller(1))

	assert.Equal(t, 0, rules.RollAttackDamage(eng, 1, 6, false, -4, 0))
}
