package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// withWaves 替换波次配置
func withWaves(waves ...config.WaveConfig) func(c *config.Content) {
	return func(c *config.Content) {
		c.Waves.Waves = waves
	}
}

// TestWaveEndsAfterRosterCleared 测试名单刷完并全部击杀后的下一帧结束本波
func TestWaveEndsAfterRosterCleared(t *testing.T) {
	sim := newTestSim(t, withWaves(config.WaveConfig{
		Roster:        []config.RosterEntry{{Enemy: "doge", Count: 5}},
		SpawnInterval: 1,
		BatchSize:     5,
	}))
	w := sim.World()
	rec := &recorder{}
	w.SetNotifier(rec)

	sim.StartWave(1)
	sim.Waves.Update()
	require.Len(t, w.Enemies, 5)
	assert.False(t, w.Wave.Ended)
	assert.True(t, w.Wave.RosterExhausted())

	for _, e := range w.Enemies {
		e.HP = 0
	}
	sim.Combat.ResolveDeaths()
	assert.False(t, w.Wave.Ended)

	sim.Waves.Update()

	assert.True(t, w.Wave.Ended)
	assert.True(t, w.WaveClearing)
	assert.Equal(t, 5, w.Wave.Stats.Kills)
	assert.Equal(t, 1, rec.count(game.EventWaveStart))
	assert.Equal(t, 1, rec.count(game.EventWaveEnd))

	// 结束后不再推进
	frame := w.Wave.Frame
	sim.Waves.Update()
	assert.Equal(t, frame, w.Wave.Frame)
}

// TestUnknownRosterEntrySkipped 测试名单中的未知敌人被跳过
func TestUnknownRosterEntrySkipped(t *testing.T) {
	sim := newTestSim(t, withWaves(config.WaveConfig{
		Roster:        []config.RosterEntry{{Enemy: "ghost", Count: 2}, {Enemy: "doge", Count: 1}},
		SpawnInterval: 1,
		BatchSize:     3,
	}))
	w := sim.World()

	sim.StartWave(1)
	sim.Waves.Update()

	assert.Equal(t, 3, w.Wave.Spawned)
	require.Len(t, w.Enemies, 1)
	assert.Equal(t, "doge", w.Enemies[0].Def.ID)
}

// TestSpawnBatchesByInterval 测试按间隔分批刷怪
func TestSpawnBatchesByInterval(t *testing.T) {
	sim := newTestSim(t, withWaves(config.WaveConfig{
		Roster:        []config.RosterEntry{{Enemy: "doge", Count: 6}},
		SpawnInterval: 10,
		BatchSize:     2,
	}))
	w := sim.World()
	sim.StartWave(1)

	sim.Waves.Update()
	assert.Len(t, w.Enemies, 2)
	for i := 0; i < 9; i++ {
		sim.Waves.Update()
	}
	assert.Len(t, w.Enemies, 2)
	sim.Waves.Update()
	assert.Len(t, w.Enemies, 4)
}

// TestLiveEnemyCap 测试同屏上限推迟刷怪
func TestLiveEnemyCap(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Tuning.Wave.MaxLiveEnemies = 2
		c.Waves.Waves = []config.WaveConfig{{
			Roster:        []config.RosterEntry{{Enemy: "doge", Count: 5}},
			SpawnInterval: 1,
			BatchSize:     5,
		}}
	})
	w := sim.World()
	sim.StartWave(1)

	sim.Waves.Update()

	assert.Len(t, w.Enemies, 2)
	assert.Len(t, w.Wave.Queue, 3)
}

// TestSpawnPointKeepsDistance 测试刷怪点远离玩家且位于地图边缘
func TestSpawnPointKeepsDistance(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	m := w.Tuning.Map

	for i := 0; i < 200; i++ {
		x, y := sim.Waves.SpawnPoint()
		dx, dy := x-w.Player.X, y-w.Player.Y
		require.GreaterOrEqual(t, dx*dx+dy*dy, m.MinSpawnDistance*m.MinSpawnDistance)
		onEdge := x == m.SpawnMargin || x == m.Width-m.SpawnMargin || y == m.SpawnMargin || y == m.Height-m.SpawnMargin
		require.True(t, onEdge, "(%v, %v) not on the map edge", x, y)
	}
}

// TestSpawnPointFallback 测试没有合法点时取最远的候选
func TestSpawnPointFallback(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Tuning.Map.MinSpawnDistance = 1e6
	})
	w := sim.World()
	m := w.Tuning.Map

	x, y := sim.Waves.SpawnPoint()

	assert.True(t, w.InBounds(x, y, 0))
	assert.True(t, x == m.SpawnMargin || x == m.Width-m.SpawnMargin || y == m.SpawnMargin || y == m.Height-m.SpawnMargin)
}

// TestEliteInsertedAtHalf 测试名单过半时插入精英
func TestEliteInsertedAtHalf(t *testing.T) {
	sim := newTestSim(t, withWaves(config.WaveConfig{
		Roster:        []config.RosterEntry{{Enemy: "doge", Count: 4}},
		SpawnInterval: 1,
		BatchSize:     1,
		Elite:         "elite_hand",
	}))
	w := sim.World()
	sim.StartWave(1)

	sim.Waves.Update()
	assert.False(t, w.Wave.EliteSpawned)
	sim.Waves.Update()
	assert.True(t, w.Wave.EliteSpawned)

	elites := 0
	for _, e := range w.Enemies {
		if e.Def.Elite {
			elites++
		}
	}
	assert.Equal(t, 1, elites)
}

// TestBossWave 测试 Boss 波次开场刷出 Boss
func TestBossWave(t *testing.T) {
	sim := newTestSim(t, withWaves(config.WaveConfig{
		Roster:        []config.RosterEntry{{Enemy: "doge", Count: 1}},
		SpawnInterval: 100,
		BatchSize:     1,
		Boss:          "boss_stonks",
	}))
	w := sim.World()
	rec := &recorder{}
	w.SetNotifier(rec)
	sim.StartWave(1)

	sim.Waves.Update()

	assert.True(t, w.BossActive())
	assert.Equal(t, 1, rec.count(game.EventBossSpawn))
}

// TestProteinPowderOnWaveStart 测试开波挂钩按数量叠加
func TestProteinPowderOnWaveStart(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	require.True(t, w.GiveItem("protein_powder"))
	require.True(t, w.GiveItem("protein_powder"))
	base := w.Player.Stats.MaxHP

	sim.StartWave(1)

	assert.Equal(t, base+4, w.Player.Stats.MaxHP)
	assert.Equal(t, base+4, w.Player.HP)
}

// TestPiggyBankInterest 测试存钱罐利息计入奖励金币
func TestPiggyBankInterest(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	require.True(t, w.GiveItem("piggy_bank"))
	w.Player.Gold = 100

	sim.StartWave(2)

	assert.Equal(t, 105, w.Player.Gold)
	assert.Equal(t, 5, w.Wave.Stats.BonusGold)
}

// TestStartWaveResets 测试开波重置本波状态
func TestStartWaveResets(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	w.Player.ReviveUsed = true
	w.WaveClearing = true
	w.Wave.Stats.Kills = 9

	sim.StartWave(3)

	assert.False(t, w.Player.ReviveUsed)
	assert.False(t, w.WaveClearing)
	assert.Zero(t, w.Wave.Stats.Kills)
	assert.Equal(t, 3, w.Stats.HighestWave)
	assert.Equal(t, w.Content.Waves.Waves[2].TotalCount(), w.Wave.Scripted)
}

// TestEndlessIdleEnds 测试无尽模式长时间无击杀时结束
func TestEndlessIdleEnds(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Tuning.Wave.EndlessIdleFrames = 10
		c.Waves.Waves = c.Waves.Waves[:1]
		c.Waves.Endless = config.EndlessConfig{
			Pool:          []string{"doge"},
			BaseCount:     2,
			SpawnInterval: 1,
			BatchSize:     2,
		}
	})
	w := sim.World()

	sim.Waves.StartEndless()
	require.True(t, w.Wave.Endless)
	assert.Equal(t, 1, w.Wave.EndlessCount)

	for i := 0; i < 9; i++ {
		sim.Waves.Update()
	}
	require.Len(t, w.Enemies, 2)
	assert.False(t, w.Wave.Ended)

	sim.Waves.Update()

	assert.True(t, w.Wave.Ended)
	assert.Empty(t, w.Enemies, "leftover enemies are cleared")
}

// TestEndlessRosterGrowsAndBoss 测试无尽模式名单增长与 Boss 插入
func TestEndlessRosterGrowsAndBoss(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Waves.Endless.BossEvery = 2
		c.Waves.Endless.Bosses = []string{"boss_404"}
	})
	w := sim.World()
	cfg := w.Content.Waves.Endless
	n := len(w.Content.Waves.Waves)

	sim.StartWave(n + 1)
	assert.Len(t, w.Wave.Queue, cfg.BaseCount)
	assert.Empty(t, w.Wave.Boss)

	sim.StartWave(n + 2)
	assert.Len(t, w.Wave.Queue, cfg.BaseCount+cfg.CountPerWave)
	assert.Equal(t, "boss_404", w.Wave.Boss)
}

// TestOvertime 测试加时阶段
func TestOvertime(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Tuning.Wave.OvertimeFrames = 3
	})
	w := sim.World()
	sim.StartWave(1)

	sim.Waves.Update()
	sim.Waves.Update()
	assert.False(t, w.Wave.Overtime)
	sim.Waves.Update()
	assert.True(t, w.Wave.Overtime)
	assert.True(t, ScalingFor(w).Overtime)
}
