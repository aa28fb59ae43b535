package entities

// MaxLevel is the level cap; experience keeps accruing past it but no
// further level-ups are earned.
const MaxLevel = 20

// PlayerState is the single mutable record a character carries across
// battles and rests. It is created once at character creation and mutated
// in place by combat and progression operations; the persistence layer
// serializes it verbatim.
type PlayerState struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	ClassID  string `json:"classId"`

	Level int `json:"level"`
	XP    int `json:"xp"`
	// PendingLevelUps counts levels earned but not yet applied. It only
	// decreases when pending level-ups are processed.
	PendingLevelUps   int `json:"pendingLevelUps"`
	PendingStatPoints int `json:"pendingStatPoints"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`

	Abilities AbilityScores `json:"abilities"`

	// Equipped item IDs; empty string means the slot is empty.
	WeaponID  string `json:"weaponId,omitempty"`
	OffHandID string `json:"offHandId,omitempty"`
	ArmorID   string `json:"armorId,omitempty"`
	ShieldID  string `json:"shieldId,omitempty"`

	KnownSpells    []string `json:"knownSpells,omitempty"`
	KnownAbilities []string `json:"knownAbilities,omitempty"`
	KnownTalents   []string `json:"knownTalents,omitempty"`

	Gold                int `json:"gold"`
	ShortRestsRemaining int `json:"shortRestsRemaining"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// KnowsSpell reports whether the spell has been learned.
func (p *PlayerState) KnowsSpell(spellID string) bool {
	return containsString(p.KnownSpells, spellID)
}

// KnowsAbility reports whether the ability has been learned.
func (p *PlayerState) KnowsAbility(abilityID string) bool {
	return containsString(p.KnownAbilities, abilityID)
}

// KnowsTalent reports whether the talent has been learned.
func (p *PlayerState) KnowsTalent(talentID string) bool {
	return containsString(p.KnownTalents, talentID)
}

// LearnSpell adds the spell to the known set; no-op if already known.
func (p *PlayerState) LearnSpell(spellID string) {
	if !p.KnowsSpell(spellID) {
		p.KnownSpells = append(p.KnownSpells, spellID)
	}
}

// LearnAbility adds the ability to the known set; no-op if already known.
func (p *PlayerState) LearnAbility(abilityID string) {
	if !p.KnowsAbility(abilityID) {
		p.KnownAbilities = append(p.KnownAbilities, abilityID)
	}
}

// LearnTalent adds the talent to the known set; no-op if already known.
func (p *PlayerState) LearnTalent(talentID string) {
	if !p.KnowsTalent(talentID) {
		p.KnownTalents = append(p.KnownTalents, talentID)
	}
}

// ApplyDamage reduces HP by amount, clamped at zero, and returns the
// damage actually applied.
func (p *PlayerState) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}

// Heal raises HP by amount, capped at MaxHP, and returns the amount
// actually restored.
func (p *PlayerState) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := p.MaxHP - p.HP
	if amount > missing {
		amount = missing
	}
	p.HP += amount
	return amount
}

// RestoreMP raises MP by amount, capped at MaxMP, and returns the amount
// actually restored.
func (p *PlayerState) RestoreMP(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := p.MaxMP - p.MP
	if amount > missing {
		amount = missing
	}
	p.MP += amount
	return amount
}

// SpendMP deducts cost from MP, reporting false without mutation when MP
// is insufficient.
func (p *PlayerState) SpendMP(cost int) bool {
	if cost > p.MP {
		return false
	}
	p.MP -= cost
	return true
}

// MissingHP returns how far below MaxHP the player currently is.
func (p *PlayerState) MissingHP() int {
	return p.MaxHP - p.HP
}

// IsAlive reports whether the player has hit points remaining.
func (p *PlayerState) IsAlive() bool {
	return p.HP > 0
}
