package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemTable(t *testing.T) {
	table, err := ParseItemTable([]byte(`
items:
  charm:
    name: 护身符
    stats: {dodge: 0.1, armor: 2}
    hooks: [on_kill, on_wave_start]
    params: {chance: 0.25}
`))
	require.NoError(t, err)

	charm, ok := table.Get("charm")
	require.True(t, ok)
	assert.Equal(t, "charm", charm.ID)
	assert.Equal(t, 0.25, charm.Param("chance", 0))
	assert.Equal(t, 7.0, charm.Param("missing", 7), "missing param falls back to default")
	assert.Equal(t, []string{"on_kill", "on_wave_start"}, charm.Hooks)
}

func TestParseItemTableRejectsUnknownHook(t *testing.T) {
	_, err := ParseItemTable([]byte(`items: {x: {hooks: [on_sneeze]}}`))
	assert.ErrorContains(t, err, "on_sneeze")
}

func TestStatModifiersAdd(t *testing.T) {
	var total StatModifiers
	total.Add(StatModifiers{MaxHP: 10, ProjectileCount: 1, Dodge: 0.05}, 3)
	total.Add(StatModifiers{MaxHP: 5}, 1)

	assert.Equal(t, 35.0, total.MaxHP)
	assert.Equal(t, 3, total.ProjectileCount)
	assert.InDelta(t, 0.15, total.Dodge, 1e-9)
}

func TestParseCharacterTable(t *testing.T) {
	table, err := ParseCharacterTable([]byte(`
characters:
  hero:
    base: {maxHp: 50, attackSpeed: 1}
`))
	require.NoError(t, err)
	hero, ok := table.Get("hero")
	require.True(t, ok)
	assert.Equal(t, "hero", hero.ID)

	_, err = ParseCharacterTable([]byte(`characters: {bad: {base: {maxHp: 0, attackSpeed: 1}}}`))
	assert.Error(t, err)
}

func TestParseDifficulty(t *testing.T) {
	cfg, err := ParseDifficulty([]byte(`
difficulties:
  normal: {hpMultiplier: 1, damageMultiplier: 1, goldMultiplier: 1}
scaling: {endlessHpGrowth: 1.1, endlessDamageGrowth: 1.0}
`))
	require.NoError(t, err)
	_, ok := cfg.Get("normal")
	assert.True(t, ok)
	_, ok = cfg.Get("nightmare")
	assert.False(t, ok)

	_, err = ParseDifficulty([]byte(`difficulties: {x: {hpMultiplier: 0, damageMultiplier: 1, goldMultiplier: 1}}`))
	assert.Error(t, err)
}
