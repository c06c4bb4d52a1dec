package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: app})
	require.NoError(t, err)
	return m
}

// TestStatsStoreRoundTrip 测试保存后重新加载
func TestStatsStoreRoundTrip(t *testing.T) {
	m := openTestGdata(t, "test_stats_roundtrip")

	w := NewWorld(Options{})
	w.Stats = Stats{TotalKills: 120, GoldEarned: 900, HighestWave: 7, BossesDefeated: 1}

	st := NewStatsStore(m)
	st.Capture(w)
	require.NoError(t, st.Save())

	reloaded := NewStatsStore(m)
	assert.Equal(t, w.Stats, reloaded.Stats())

	fresh := NewWorld(Options{})
	reloaded.Restore(fresh)
	assert.Equal(t, 7, fresh.Stats.HighestWave)
}

// TestStatsStoreKeepsHighestWave 测试最高波次不会被较小值覆盖
func TestStatsStoreKeepsHighestWave(t *testing.T) {
	st := NewStatsStore(nil)
	w := NewWorld(Options{})

	w.Stats.HighestWave = 9
	st.Capture(w)
	w.Stats.HighestWave = 3
	st.Capture(w)

	assert.Equal(t, 9, st.Stats().HighestWave)
}

// TestStatsStoreNilGdata 测试降级模式
func TestStatsStoreNilGdata(t *testing.T) {
	st := NewStatsStore(nil)
	assert.Equal(t, Stats{}, st.Stats())
	assert.NoError(t, st.Save())
	assert.NoError(t, st.Load())
}

// TestStatsStoreCorruptData 测试损坏数据回退到零值
func TestStatsStoreCorruptData(t *testing.T) {
	m := openTestGdata(t, "test_stats_corrupt")
	require.NoError(t, m.SaveObjectProp(statsObject, statsProperty, []byte("totalKills: [not a number")))

	st := NewStatsStore(m)
	assert.Equal(t, Stats{}, st.Stats())
	assert.Error(t, st.Load())
}
