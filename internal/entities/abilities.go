// Package entities holds the data records shared by the combat and
// progression engines. These are data-only structs: all resolution math
// lives in internal/rules and the orchestrators.
package entities

// Ability stat keys
const (
	StatStrength     = "strength"
	StatDexterity    = "dexterity"
	StatConstitution = "constitution"
	StatIntelligence = "intelligence"
	StatWisdom       = "wisdom"
	StatCharisma     = "charisma"
)

// Stats lists the six ability stat keys in canonical order.
var Stats = []string{
	StatStrength,
	StatDexterity,
	StatConstitution,
	StatIntelligence,
	StatWisdom,
	StatCharisma,
}

// AbilityScores holds the six raw ability scores.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for a stat key and whether the key is known.
func (a AbilityScores) Get(stat string) (int, bool) {
	switch stat {
	case StatStrength:
		return a.Strength, true
	case StatDexterity:
		return a.Dexterity, true
	case StatConstitution:
		return a.Constitution, true
	case StatIntelligence:
		return a.Intelligence, true
	case StatWisdom:
		return a.Wisdom, true
	case StatCharisma:
		return a.Charisma, true
	default:
		return 0, false
	}
}

// Set assigns the score for a stat key and reports whether the key is known.
func (a *AbilityScores) Set(stat string, score int) bool {
	switch stat {
	case StatStrength:
		a.Strength = score
	case StatDexterity:
		a.Dexterity = score
	case StatConstitution:
		a.Constitution = score
	case StatIntelligence:
		a.Intelligence = score
	case StatWisdom:
		a.Wisdom = score
	case StatCharisma:
		a.Charisma = score
	default:
		return false
	}
	return true
}

// List returns the scores in canonical stat order.
func (a AbilityScores) List() []int {
	return []int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}
