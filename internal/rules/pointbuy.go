package rules

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Point-buy bounds and budget
const (
	PointBuyMinScore = 8
	PointBuyMaxScore = 15
	PointBuyBudget   = 27
)

// pointBuyCosts is the nonlinear per-score cost table. Scores outside
// [PointBuyMinScore, PointBuyMaxScore] are not purchasable.
var pointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// PointCost returns the cost of a single score and whether the score is
// purchasable at all.
func PointCost(score int) (int, bool) {
	cost, ok := pointBuyCosts[score]
	return cost, ok
}

// CalculatePointsSpent sums the cost of all six scores. The second return
// is false when any score falls outside the purchasable range; the total
// then only covers the in-range scores.
func CalculatePointsSpent(scores entities.AbilityScores) (int, bool) {
	total := 0
	allValid := true
	for _, score := range scores.List() {
		cost, ok := PointCost(score)
		if !ok {
			allValid = false
			continue
		}
		total += cost
	}
	return total, allValid
}

// IsValidPointBuy reports whether the scores are a legal character
// creation allocation: every score in range and exactly the full budget
// spent.
func IsValidPointBuy(scores entities.AbilityScores) bool {
	spent, ok := CalculatePointsSpent(scores)
	return ok && spent == PointBuyBudget
}
