package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, rules.XPForLevel(1))
	assert.Equal(t, 400, rules.XPForLevel(2))
	assert.Equal(t, 900, rules.XPForLevel(3))
	assert.Equal(t, 1600, rules.XPForLevel(4))
	assert.Equal(t, 40000, rules.XPForLevel(entities.MaxLevel))
}

func TestPendingLevels(t *testing.T) {
	tests := []struct {
		name         string
		xp           int
		virtualLevel int
		expected     int
	}{
		{"below next threshold earns nothing", 399, 1, 0},
		{"exactly next threshold earns one", 400, 1, 1},
		{"large award earns several at once", 1600, 1, 3},
		{"already-pending levels are not re-earned", 1600, 4, 0},
		{"capped at max level", 10_000_000, 18, 2},
		{"at cap earns nothing", 10_000_000, entities.MaxLevel, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.PendingLevels(tc.xp, tc.virtualLevel))
		})
	}
}

func TestASILevels(t *testing.T) {
	for _, level := range []int{4, 8, 12, 16, 19} {
		assert.True(t, rules.ASILevels[level], "level %d", level)
	}
	for _, level := range []int{1, 2, 3, 5, 10, 20} {
		assert.False(t, rules.ASILevels[level], "level %d", level)
	}
}
