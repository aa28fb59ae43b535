package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

func TestRegistry_ValidateBuiltinTables(t *testing.T) {
	registry := content.New()
	require.NoError(t, registry.Validate())
}

func TestRegistry_Lookups(t *testing.T) {
	registry := content.New()

	class, ok := registry.Class(content.ClassWarrior)
	require.True(t, ok)
	assert.Equal(t, entities.StatStrength, class.PrimaryStat)
	assert.Equal(t, 10, class.HitDie)

	spell, ok := registry.Spell("magic_missile")
	require.True(t, ok)
	assert.True(t, spell.AutoHit)
	assert.Equal(t, entities.EffectDamage, spell.Type)

	ability, ok := registry.Ability("smite")
	require.True(t, ok)
	assert.Equal(t, entities.ElementHoly, ability.Element)
	assert.Equal(t, entities.StatWisdom, ability.DrivingStat)

	item, ok := registry.Item("dagger")
	require.True(t, ok)
	assert.True(t, item.Light)
	assert.True(t, item.Finesse)

	talent, ok := registry.Talent(content.TalentTwoWeaponFighting)
	require.True(t, ok)
	assert.Equal(t, 2, talent.LevelRequired)

	_, ok = registry.Class("bard")
	assert.False(t, ok)
	_, ok = registry.Spell("wish")
	assert.False(t, ok)
}

func TestRegistry_OrderedTables(t *testing.T) {
	registry := content.New()

	assert.NotEmpty(t, registry.Classes())
	assert.NotEmpty(t, registry.Spells())
	assert.NotEmpty(t, registry.Abilities())
	assert.NotEmpty(t, registry.Items())
	assert.NotEmpty(t, registry.Monsters())
	assert.NotEmpty(t, registry.Talents())

	// Declaration order is part of the contract: unlock scans iterate it
	assert.Equal(t, content.ClassWarrior, registry.Classes()[0].ID)
}

func TestRegistry_SpawnMonsterClonesTemplate(t *testing.T) {
	registry := content.New()

	first, ok := registry.SpawnMonster("skeleton")
	require.True(t, ok)

	first.ApplyDamage(5)
	first.Elements.Immunities = append(first.Elements.Immunities, entities.ElementFire)

	second, ok := registry.SpawnMonster("skeleton")
	require.True(t, ok)
	assert.Equal(t, second.MaxHP, second.HP)
	assert.False(t, second.Elements.IsImmuneTo(entities.ElementFire))

	_, ok = registry.SpawnMonster("tarrasque")
	assert.False(t, ok)
}

func TestRegistry_ClassWhitelistsUnlockAtLevelOne(t *testing.T) {
	registry := content.New()

	// Every class must have something to learn at level 1
	for _, class := range registry.Classes() {
		hasLevelOne := false
		for _, spellID := range class.SpellIDs {
			spell, ok := registry.Spell(spellID)
			require.True(t, ok)
			if spell.LevelRequired <= 1 {
				hasLevelOne = true
			}
		}
		for _, abilityID := range class.AbilityIDs {
			ability, ok := registry.Ability(abilityID)
			require.True(t, ok)
			if ability.LevelRequired <= 1 {
				hasLevelOne = true
			}
		}
		assert.True(t, hasLevelOne, "class %s", class.ID)
	}
}
