// Package content provides the static content registries the engines
// consume: classes, spells, abilities, items, monsters, and talents.
//
// Tables are ordered slices (unlock scans and menus iterate them in
// declaration order); the registry builds an ID index over each table
// once at construction so lookups are O(1).
package content

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// Registry exposes read-only, ID-indexed access to the content tables.
type Registry struct {
	classes   []entities.ClassDef
	spells    []entities.SpellDef
	abilities []entities.AbilityDef
	items     []entities.ItemDef
	monsters  []entities.MonsterDef
	talents   []entities.TalentDef

	classByID   map[string]*entities.ClassDef
	spellByID   map[string]*entities.SpellDef
	abilityByID map[string]*entities.AbilityDef
	itemByID    map[string]*entities.ItemDef
	monsterByID map[string]*entities.MonsterDef
	talentByID  map[string]*entities.TalentDef
}

// New builds a registry over the built-in content tables.
func New() *Registry {
	r := &Registry{
		classes:   classTable,
		spells:    spellTable,
		abilities: abilityTable,
		items:     itemTable,
		monsters:  monsterTable,
		talents:   talentTable,
	}
	r.buildIndexes()
	return r
}

func (r *Registry) buildIndexes() {
	r.classByID = make(map[string]*entities.ClassDef, len(r.classes))
	for i := range r.classes {
		r.classByID[r.classes[i].ID] = &r.classes[i]
	}
	r.spellByID = make(map[string]*entities.SpellDef, len(r.spells))
	for i := range r.spells {
		r.spellByID[r.spells[i].ID] = &r.spells[i]
	}
	r.abilityByID = make(map[string]*entities.AbilityDef, len(r.abilities))
	for i := range r.abilities {
		r.abilityByID[r.abilities[i].ID] = &r.abilities[i]
	}
	r.itemByID = make(map[string]*entities.ItemDef, len(r.items))
	for i := range r.items {
		r.itemByID[r.items[i].ID] = &r.items[i]
	}
	r.monsterByID = make(map[string]*entities.MonsterDef, len(r.monsters))
	for i := range r.monsters {
		r.monsterByID[r.monsters[i].ID] = &r.monsters[i]
	}
	r.talentByID = make(map[string]*entities.TalentDef, len(r.talents))
	for i := range r.talents {
		r.talentByID[r.talents[i].ID] = &r.talents[i]
	}
}

// Class returns the class definition for an ID.
func (r *Registry) Class(id string) (*entities.ClassDef, bool) {
	c, ok := r.classByID[id]
	return c, ok
}

// Spell returns the spell definition for an ID.
func (r *Registry) Spell(id string) (*entities.SpellDef, bool) {
	s, ok := r.spellByID[id]
	return s, ok
}

// Ability returns the ability definition for an ID.
func (r *Registry) Ability(id string) (*entities.AbilityDef, bool) {
	a, ok := r.abilityByID[id]
	return a, ok
}

// Item returns the item definition for an ID.
func (r *Registry) Item(id string) (*entities.ItemDef, bool) {
	i, ok := r.itemByID[id]
	return i, ok
}

// MonsterDef returns the monster template for an ID.
func (r *Registry) MonsterDef(id string) (*entities.MonsterDef, bool) {
	m, ok := r.monsterByID[id]
	return m, ok
}

// Talent returns the talent definition for an ID.
func (r *Registry) Talent(id string) (*entities.TalentDef, bool) {
	t, ok := r.talentByID[id]
	return t, ok
}

// Classes returns the class table in declaration order.
func (r *Registry) Classes() []entities.ClassDef {
	return r.classes
}

// Spells returns the spell table in declaration order.
func (r *Registry) Spells() []entities.SpellDef {
	return r.spells
}

// Abilities returns the ability table in declaration order.
func (r *Registry) Abilities() []entities.AbilityDef {
	return r.abilities
}

// Items returns the item table in declaration order.
func (r *Registry) Items() []entities.ItemDef {
	return r.items
}

// Monsters returns the monster table in declaration order.
func (r *Registry) Monsters() []entities.MonsterDef {
	return r.monsters
}

// Talents returns the talent table in declaration order.
func (r *Registry) Talents() []entities.TalentDef {
	return r.talents
}

// SpawnMonster clones a monster template into a battle-scoped instance.
func (r *Registry) SpawnMonster(id string) (*entities.Monster, bool) {
	def, ok := r.monsterByID[id]
	if !ok {
		return nil, false
	}
	return def.Spawn(), true
}

// Validate checks cross-table integrity: legal dice, resolvable class
// whitelists and starting equipment, and known stat keys. It returns an
// InvalidArgument error aggregating every problem found.
func (r *Registry) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, s := range r.spells {
		if s.Type != entities.EffectUtility && !dice.IsStandardDie(s.Die) {
			vb.Fieldf("spells."+s.ID, "non-standard die %d", s.Die)
		}
	}
	for _, a := range r.abilities {
		if a.Type != entities.EffectUtility && !dice.IsStandardDie(a.Die) {
			vb.Fieldf("abilities."+a.ID, "non-standard die %d", a.Die)
		}
		if a.DrivingStat != "" {
			if _, ok := (entities.AbilityScores{}).Get(a.DrivingStat); !ok {
				vb.Fieldf("abilities."+a.ID, "unknown driving stat %q", a.DrivingStat)
			}
		}
	}
	for _, m := range r.monsters {
		if !dice.IsStandardDie(m.DamageDie) {
			vb.Fieldf("monsters."+m.ID, "non-standard damage die %d", m.DamageDie)
		}
		for _, sa := range m.SpecialAbilities {
			if sa.Type != entities.EffectUtility && !dice.IsStandardDie(sa.Die) {
				vb.Fieldf("monsters."+m.ID, "special ability %s has non-standard die %d", sa.ID, sa.Die)
			}
		}
	}
	for _, c := range r.classes {
		if !dice.IsStandardDie(c.HitDie) {
			vb.Fieldf("classes."+c.ID, "non-standard hit die %d", c.HitDie)
		}
		if c.GoldDiceCount > 0 && !dice.IsStandardDie(c.GoldDie) {
			vb.Fieldf("classes."+c.ID, "non-standard gold die %d", c.GoldDie)
		}
		if _, ok := (entities.AbilityScores{}).Get(c.PrimaryStat); !ok {
			vb.Fieldf("classes."+c.ID, "unknown primary stat %q", c.PrimaryStat)
		}
		if c.StartingWeaponID != "" {
			item, ok := r.itemByID[c.StartingWeaponID]
			if !ok {
				vb.Fieldf("classes."+c.ID, "starting weapon %q not in item table", c.StartingWeaponID)
			} else if item.Type != entities.ItemTypeWeapon {
				vb.Fieldf("classes."+c.ID, "starting weapon %q is not a weapon", c.StartingWeaponID)
			}
		}
		for _, spellID := range c.SpellIDs {
			if _, ok := r.spellByID[spellID]; !ok {
				vb.Fieldf("classes."+c.ID, "whitelisted spell %q not in spell table", spellID)
			}
		}
		for _, abilityID := range c.AbilityIDs {
			if _, ok := r.abilityByID[abilityID]; !ok {
				vb.Fieldf("classes."+c.ID, "whitelisted ability %q not in ability table", abilityID)
			}
		}
		for stat := range c.StatBoosts {
			if _, ok := (entities.AbilityScores{}).Get(stat); !ok {
				vb.Fieldf("classes."+c.ID, "stat boost for unknown stat %q", stat)
			}
		}
	}
	for _, t := range r.talents {
		for _, classID := range t.Classes {
			if _, ok := r.classByID[classID]; !ok {
				vb.Fieldf("talents."+t.ID, "restricted to unknown class %q", classID)
			}
		}
	}

	return vb.Build()
}
