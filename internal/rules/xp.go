package rules

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// XPForLevel returns the total experience required to reach a level
// (not the increment from the previous one): 100·n².
func XPForLevel(level int) int {
	return 100 * level * level
}

// ASILevels are the character levels that grant ability score improvement
// points when applied.
var ASILevels = map[int]bool{
	4:  true,
	8:  true,
	12: true,
	16: true,
	19: true,
}

// ASIPointsPerGrant is how many unspent stat points each ASI level grants.
const ASIPointsPerGrant = 2

// PendingLevels computes how many additional level-ups a total XP amount
// supports beyond the given virtual level (current level plus already
// pending levels), capped at the level cap.
func PendingLevels(xp, virtualLevel int) int {
	earned := 0
	for virtualLevel < entities.MaxLevel && xp >= XPForLevel(virtualLevel+1) {
		virtualLevel++
		earned++
	}
	return earned
}
