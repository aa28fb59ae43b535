package entities

// MonsterAbilityDef defines a monster special ability. Special abilities
// bypass armor class entirely; SelfHeal marks a drain effect that restores
// the monster for the damage dealt.
type MonsterAbilityDef struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      EffectType `json:"type"`
	DiceCount int        `json:"diceCount"`
	Die       int        `json:"die"`
	Element   Element    `json:"element,omitempty"`
	SelfHeal  bool       `json:"selfHeal,omitempty"`
}

// MonsterDef is the immutable template a battle-scoped Monster is cloned
// from.
type MonsterDef struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	HP               int                 `json:"hp"`
	ArmorClass       int                 `json:"armorClass"`
	AttackBonus      int                 `json:"attackBonus"`
	DamageDiceCount  int                 `json:"damageDiceCount"`
	DamageDie        int                 `json:"damageDie"`
	Elements         ElementalProfile    `json:"elements"`
	SpecialAbilities []MonsterAbilityDef `json:"specialAbilities,omitempty"`
	Boss             bool                `json:"boss,omitempty"`
}

// Monster is a battle-scoped instance. Instances are cloned from a
// MonsterDef at battle start and discarded at battle end; nothing about
// them persists across battles.
type Monster struct {
	ID               string
	Name             string
	HP               int
	MaxHP            int
	ArmorClass       int
	AttackBonus      int
	DamageDiceCount  int
	DamageDie        int
	Elements         ElementalProfile
	SpecialAbilities []MonsterAbilityDef
	Boss             bool
}

// Spawn clones the template into a fresh battle instance.
func (d *MonsterDef) Spawn() *Monster {
	m := &Monster{
		ID:              d.ID,
		Name:            d.Name,
		HP:              d.HP,
		MaxHP:           d.HP,
		ArmorClass:      d.ArmorClass,
		AttackBonus:     d.AttackBonus,
		DamageDiceCount: d.DamageDiceCount,
		DamageDie:       d.DamageDie,
		Elements:        d.Elements.Clone(),
		Boss:            d.Boss,
	}
	if len(d.SpecialAbilities) > 0 {
		m.SpecialAbilities = append([]MonsterAbilityDef(nil), d.SpecialAbilities...)
	}
	return m
}

// SpecialAbility returns the named special ability, if the monster has it.
func (m *Monster) SpecialAbility(id string) (*MonsterAbilityDef, bool) {
	for i := range m.SpecialAbilities {
		if m.SpecialAbilities[i].ID == id {
			return &m.SpecialAbilities[i], true
		}
	}
	return nil, false
}

// ApplyDamage reduces HP by amount, clamped at zero, and returns the
// damage actually applied.
func (m *Monster) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > m.HP {
		amount = m.HP
	}
	m.HP -= amount
	return amount
}

// Heal raises HP by amount, capped at MaxHP, and returns the amount
// actually restored.
func (m *Monster) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := m.MaxHP - m.HP
	if amount > missing {
		amount = missing
	}
	m.HP += amount
	return amount
}

// IsAlive reports whether the monster has hit points remaining.
func (m *Monster) IsAlive() bool {
	return m.HP > 0
}
