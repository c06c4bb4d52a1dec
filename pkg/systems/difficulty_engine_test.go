package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
)

// TestUnknownDifficultyIsNeutral 测试未知难度回退到 ×1
func TestUnknownDifficultyIsNeutral(t *testing.T) {
	engine := NewDifficultyEngine(config.DefaultDifficulty())
	ctx := ScalingContext{Difficulty: "nightmare_plus", Wave: 1, Income: 1}

	assert.Equal(t, 1.0, engine.HPMultiplier(ctx))
	assert.Equal(t, 1.0, engine.DamageMultiplier(ctx))
	assert.Equal(t, 10, engine.KillGold(10, ctx))
}

// TestNilConfigIsNeutral 测试没有难度表时不会崩溃
func TestNilConfigIsNeutral(t *testing.T) {
	engine := NewDifficultyEngine(nil)
	ctx := ScalingContext{Difficulty: "hard", Wave: 9, Endless: true, EndlessCount: 3, Income: 1}

	assert.Equal(t, 1.0, engine.HPMultiplier(ctx))
	assert.Equal(t, 1.0, engine.DamageMultiplier(ctx))
}

// TestWaveScaling 测试随波次线性增长
func TestWaveScaling(t *testing.T) {
	cfg := config.DefaultDifficulty()
	engine := NewDifficultyEngine(cfg)

	tests := []struct {
		name   string
		ctx    ScalingContext
		wantHP float64
		wantDM float64
	}{
		{"normal wave 1", ScalingContext{Difficulty: "normal", Wave: 1}, 1.0, 1.0},
		{"normal wave 5", ScalingContext{Difficulty: "normal", Wave: 5}, 1 + 4*cfg.Scaling.HPPerWave, 1 + 4*cfg.Scaling.DamagePerWave},
		{"hard wave 1", ScalingContext{Difficulty: "hard", Wave: 1}, 1.4, 1.3},
		{"wave 0 treated as 1", ScalingContext{Difficulty: "normal", Wave: 0}, 1.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantHP, engine.HPMultiplier(tt.ctx), 1e-9)
			assert.InDelta(t, tt.wantDM, engine.DamageMultiplier(tt.ctx), 1e-9)
		})
	}
}

// TestEndlessScaling 测试无尽模式指数增长
func TestEndlessScaling(t *testing.T) {
	cfg := config.DefaultDifficulty()
	engine := NewDifficultyEngine(cfg)
	base := ScalingContext{Difficulty: "normal", Wave: 12}
	endless := base
	endless.Endless = true
	endless.EndlessCount = 2

	want := engine.HPMultiplier(base) * math.Pow(cfg.Scaling.EndlessHPGrowth, 2)
	assert.InDelta(t, want, engine.HPMultiplier(endless), 1e-9)
	assert.Greater(t, engine.DamageMultiplier(endless), engine.DamageMultiplier(base))
}

// TestKillGold 测试击杀金币
func TestKillGold(t *testing.T) {
	cfg := config.DefaultDifficulty()
	engine := NewDifficultyEngine(cfg)

	normal := ScalingContext{Difficulty: "normal", Wave: 1, Income: 1}
	assert.Equal(t, 3, engine.KillGold(3, normal))

	// 金币倍率 0.1 时向上取整到至少 1
	low := normal
	low.Income = 0.1
	assert.Equal(t, 1, engine.KillGold(3, low))

	// 加时加成
	overtime := normal
	overtime.Overtime = true
	assert.Equal(t, int(math.Round(4*cfg.Scaling.OvertimeGoldBonus)), engine.KillGold(4, overtime))

	// 无金币的敌人与零倍率
	assert.Equal(t, 0, engine.KillGold(0, normal))
	zero := normal
	zero.Income = 0
	assert.Equal(t, 0, engine.KillGold(5, zero))
}

// TestScalingFor 测试从 World 提取公式输入
func TestScalingFor(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	w.Wave.Index = 4
	w.Wave.Overtime = true

	ctx := ScalingFor(w)
	assert.Equal(t, "normal", ctx.Difficulty)
	assert.Equal(t, 4, ctx.Wave)
	assert.True(t, ctx.Overtime)
	assert.Equal(t, w.Player.Stats.Income, ctx.Income)
}
