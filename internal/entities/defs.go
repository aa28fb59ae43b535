package entities

// EffectType categorizes what a spell, ability, or monster ability does.
type EffectType string

// Effect types
const (
	EffectDamage  EffectType = "damage"
	EffectHeal    EffectType = "heal"
	EffectUtility EffectType = "utility"
)

// ItemType categorizes items in the content registry.
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeShield     ItemType = "shield"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeKey        ItemType = "key"
	ItemTypeMount      ItemType = "mount"
)

// SpellDef defines a castable spell. Damage and heal spells roll
// DiceCount d Die; utility spells carry no dice and are rejected in combat.
type SpellDef struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	MPCost        int        `json:"mpCost"`
	LevelRequired int        `json:"levelRequired"`
	DiceCount     int        `json:"diceCount"`
	Die           int        `json:"die"`
	Type          EffectType `json:"type"`
	Element       Element    `json:"element,omitempty"`
	// AutoHit spells land without beating the target's armor class.
	// A natural 1 still fumbles.
	AutoHit bool `json:"autoHit,omitempty"`
}

// AbilityDef defines a class ability. Unlike spells, the attack modifier
// is derived from the ability's declared driving stat.
type AbilityDef struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	MPCost        int        `json:"mpCost"`
	LevelRequired int        `json:"levelRequired"`
	DiceCount     int        `json:"diceCount"`
	Die           int        `json:"die"`
	Type          EffectType `json:"type"`
	Element       Element    `json:"element,omitempty"`
	DrivingStat   string     `json:"drivingStat,omitempty"`
}

// ItemDef defines an item. Effect is the flat numeric contribution:
// damage bonus for weapons, armor class bonus for armor and shields,
// restored points for consumables.
type ItemDef struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      ItemType `json:"type"`
	Effect    int      `json:"effect"`
	TwoHanded bool     `json:"twoHanded,omitempty"`
	Light     bool     `json:"light,omitempty"`
	Finesse   bool     `json:"finesse,omitempty"`
	Element   Element  `json:"element,omitempty"`
}

// TalentDef defines a talent unlocked by level. MaxHPBonus and MaxMPBonus
// apply once when the talent is learned; AttackBonus, DamageBonus, and
// ACBonus apply persistently while the talent is known.
type TalentDef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LevelRequired int      `json:"levelRequired"`
	// Classes restricts the talent to the listed class IDs. Empty means
	// any class may learn it.
	Classes     []string `json:"classes,omitempty"`
	MaxHPBonus  int      `json:"maxHpBonus,omitempty"`
	MaxMPBonus  int      `json:"maxMpBonus,omitempty"`
	AttackBonus int      `json:"attackBonus,omitempty"`
	DamageBonus int      `json:"damageBonus,omitempty"`
	ACBonus     int      `json:"acBonus,omitempty"`
}

// ClassDef defines a playable class: the stat that drives its attacks,
// its hit die, starting equipment rolls, content whitelists, and the
// stat boosts applied at character creation.
type ClassDef struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	PrimaryStat      string         `json:"primaryStat"`
	HitDie           int            `json:"hitDie"`
	StartingWeaponID string         `json:"startingWeaponId,omitempty"`
	GoldDiceCount    int            `json:"goldDiceCount"`
	GoldDie          int            `json:"goldDie"`
	SpellIDs         []string       `json:"spellIds,omitempty"`
	AbilityIDs       []string       `json:"abilityIds,omitempty"`
	StatBoosts       map[string]int `json:"statBoosts,omitempty"`
}

// KnowsSpell reports whether the class whitelist includes the spell.
func (c *ClassDef) KnowsSpell(spellID string) bool {
	return containsString(c.SpellIDs, spellID)
}

// KnowsAbility reports whether the class whitelist includes the ability.
func (c *ClassDef) KnowsAbility(abilityID string) bool {
	return containsString(c.AbilityIDs, abilityID)
}

func containsString(set []string, s string) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}
