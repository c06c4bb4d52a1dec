package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningKeepsDefaults(t *testing.T) {
	tuning, err := ParseTuning([]byte(`
drop:
  mergeRadius: 64
  maxDrops: 50
`))
	require.NoError(t, err)

	def := DefaultTuning()
	assert.Equal(t, 64.0, tuning.Drop.MergeRadius)
	assert.Equal(t, 50, tuning.Drop.MaxDrops)
	// 未覆盖的字段保留默认值
	assert.Equal(t, def.Drop.VacuumTimeout, tuning.Drop.VacuumTimeout)
	assert.Equal(t, def.Map, tuning.Map)
	assert.Equal(t, def.Revive, tuning.Revive)
}

func TestParseTuningValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"地图尺寸为零", "map: {width: 0}"},
		{"掉落上限为零", "drop: {maxDrops: 0}"},
		{"吸附超时为零", "drop: {vacuumTimeout: 0}"},
		{"摩擦系数越界", "drop: {friction: 1.5}"},
		{"Boss 过场为零", "boss: {transitionFrames: 0}"},
		{"复活回血越界", "revive: {healRatio: 0}"},
		{"复活阶段为零", "revive: {shatterFrames: 0}"},
		{"刷怪间隔为零", "wave: {defaultSpawnInterval: 0}"},
		{"YAML 语法错误", "map: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuningFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave: {endlessIdleFrames: 42}\n"), 0644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 42, tuning.Wave.EndlessIdleFrames)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
