package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

func d20(roll, modifier int) dice.D20Roll {
	return dice.D20Roll{Roll: roll, Modifier: modifier, Total: roll + modifier}
}

func TestResolveAttackRoll(t *testing.T) {
	tests := []struct {
		name     string
		roll     dice.D20Roll
		targetAC int
		autoHit  bool
		expected rules.AttackOutcome
	}{
		{
			name:     "natural 20 crits regardless of AC",
			roll:     d20(20, 0),
			targetAC: 30,
			expected: rules.AttackOutcome{Hit: true, Critical: true},
		},
		{
			name:     "natural 1 fumbles even when total beats AC",
			roll:     d20(1, 15),
			targetAC: 10,
			expected: rules.AttackOutcome{Fumble: true},
		},
		{
			name:     "natural 1 fumbles even with auto-hit",
			roll:     d20(1, 0),
			targetAC: 5,
			autoHit:  true,
			expected: rules.AttackOutcome{Fumble: true},
		},
		{
			name:     "total meeting AC hits",
			roll:     d20(10, 3),
			targetAC: 13,
			expected: rules.AttackOutcome{Hit: true},
		},
		{
			name:     "total below AC misses",
			roll:     d20(10, 2),
			targetAC: 13,
			expected: rules.AttackOutcome{},
		},
		{
			name:     "auto-hit lands below AC",
			roll:     d20(2, 0),
			targetAC: 18,
			autoHit:  true,
			expected: rules.AttackOutcome{Hit: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rules.ResolveAttackRoll(tc.roll, tc.targetAC, tc.autoHit)
			assert.Equal(t, tc.expected, got)
		})
	}
}
