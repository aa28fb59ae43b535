package rules

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
)

// RollAttackDamage rolls count d die damage, doubling the dice count on a
// critical hit. The flat bonus is applied once and never doubles. The
// result is floored at minDamage.
func RollAttackDamage(eng *dice.Engine, count, die int, critical bool, bonus, minDamage int) int {
	if critical {
		count *= 2
	}
	total := eng.RollDice(count, die) + bonus
	if total < minDamage {
		total = minDamage
	}
	return total
}
