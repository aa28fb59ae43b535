// Package dice implements the primitive roll operations the combat and
// progression engines are built on: d20 checks, NdX sums, and the derived
// ability modifier.
package dice

import (
	"math/rand/v2"
)

// StandardDice lists the die sizes the content schema is allowed to use.
var StandardDice = []int{4, 6, 8, 10, 12, 20, 100}

// IsStandardDie reports whether die is one of the supported die sizes.
func IsStandardDie(die int) bool {
	for _, d := range StandardDice {
		if d == die {
			return true
		}
	}
	return false
}

// Roller is the randomness source for all rolls. Roll returns a uniform
// value in [1, die].
type Roller interface {
	Roll(die int) int
}

type randRoller struct {
	rng *rand.Rand
}

func (r *randRoller) Roll(die int) int {
	return r.rng.IntN(die) + 1
}

// NewRoller returns a Roller backed by a randomly seeded PRNG.
func NewRoller() Roller {
	return &randRoller{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRoller returns a Roller producing a reproducible sequence.
func NewSeededRoller(seed uint64) Roller {
	return &randRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

// D20Roll is the audit record for a single d20 check. Roll is the natural
// die value; Total is Roll plus Modifier.
type D20Roll struct {
	Roll     int
	Modifier int
	Total    int
}

// IsNatural20 reports whether the natural die value is 20
func (r D20Roll) IsNatural20() bool {
	return r.Roll == 20
}

// IsNatural1 reports whether the natural die value is 1
func (r D20Roll) IsNatural1() bool {
	return r.Roll == 1
}

// Engine rolls dice through an injectable Roller so callers can pin the
// sequence in tests.
type Engine struct {
	roller Roller
}

// NewEngine creates an Engine. A nil roller falls back to a randomly
// seeded one.
func NewEngine(roller Roller) *Engine {
	if roller == nil {
		roller = NewRoller()
	}
	return &Engine{roller: roller}
}

// RollD20 rolls a single d20 and applies the modifier.
func (e *Engine) RollD20(modifier int) D20Roll {
	roll := e.roller.Roll(20)
	return D20Roll{
		Roll:     roll,
		Modifier: modifier,
		Total:    roll + modifier,
	}
}

// RollDice returns the sum of count uniform rolls of the given die.
// A non-positive count contributes nothing.
func (e *Engine) RollDice(count, die int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += e.roller.Roll(die)
	}
	return total
}

// AbilityModifier returns floor((score-10)/2), the derived bonus for a raw
// ability score.
func AbilityModifier(score int) int {
	if score >= 10 {
		return (score - 10) / 2
	}
	// integer division truncates toward zero, so floor negatives by hand
	return -((11 - score) / 2)
}
