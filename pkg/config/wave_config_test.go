package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWaveTable(t *testing.T) {
	enemies := DefaultEnemyTable()
	table, err := ParseWaveTable([]byte(`
waves:
  - roster: [{enemy: doge, count: 3}, {enemy: cat_rush, count: 2}]
    spawnInterval: 10
    batchSize: 1
  - boss: boss_404
endless:
  pool: [doge]
  baseCount: 5
`), enemies)
	require.NoError(t, err)

	w1, ok := table.Wave(1)
	require.True(t, ok)
	assert.Equal(t, 5, w1.TotalCount())

	w2, ok := table.Wave(2)
	require.True(t, ok)
	assert.Equal(t, "boss_404", w2.Boss)
	assert.Zero(t, w2.TotalCount())

	_, ok = table.Wave(3)
	assert.False(t, ok)
	_, ok = table.Wave(0)
	assert.False(t, ok)
}

func TestParseWaveTableUnknownEnemy(t *testing.T) {
	_, err := ParseWaveTable([]byte(`
waves:
  - roster: [{enemy: ghost, count: 1}]
`), DefaultEnemyTable())
	assert.ErrorContains(t, err, "ghost")
}

func TestParseWaveTableValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"没有波次", "waves: []"},
		{"空名单无 Boss", "waves: [{roster: []}]"},
		{"数量为零", "waves: [{roster: [{enemy: doge, count: 0}]}]"},
		{"无尽池引用不存在", "waves: [{roster: [{enemy: doge, count: 1}]}]\nendless: {pool: [ghost]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWaveTable([]byte(tt.yaml), DefaultEnemyTable())
			assert.Error(t, err)
		})
	}
}

func TestDefaultWaveTableIsValid(t *testing.T) {
	assert.NoError(t, validateWaveTable(DefaultWaveTable(), DefaultEnemyTable()))
}
