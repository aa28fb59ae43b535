// Package rules implements the pure resolution rules the combat and
// progression orchestrators compose: attack roll outcomes, damage rolls,
// elemental transforms, the point-buy table, and the experience curve.
package rules

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
)

// AttackOutcome classifies a resolved attack roll.
type AttackOutcome struct {
	Hit      bool
	Critical bool
	Fumble   bool
}

// ResolveAttackRoll converts a d20 roll against a target armor class into
// an outcome. Precedence is critical > fumble > threshold-or-autohit and
// must not be reordered: a natural 20 hits regardless of AC, and a natural
// 1 misses even when autoHit is set or the AC is unreachable.
func ResolveAttackRoll(roll dice.D20Roll, targetAC int, autoHit bool) AttackOutcome {
	if roll.IsNatural20() {
		return AttackOutcome{Hit: true, Critical: true}
	}
	if roll.IsNatural1() {
		return AttackOutcome{Fumble: true}
	}
	return AttackOutcome{Hit: roll.Total >= targetAC || autoHit}
}
