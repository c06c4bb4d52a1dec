package systems

import (
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// ScalingContext 难度公式的输入
type ScalingContext struct {
	Difficulty   string // 难度ID
	Wave         int    // 当前波次（从1开始）
	Endless      bool
	EndlessCount int     // 无尽模式已进行的波数
	Income       float64 // 玩家金币倍率
	Overtime     bool    // 加时阶段
}

// ScalingFor 从模拟上下文提取公式输入
func ScalingFor(w *game.World) ScalingContext {
	return ScalingContext{
		Difficulty:   w.DifficultyID,
		Wave:         w.Wave.EffectiveWave(),
		Endless:      w.Wave.Endless,
		EndlessCount: w.Wave.EndlessCount,
		Income:       w.Player.Stats.Income,
		Overtime:     w.Wave.Overtime,
	}
}

// neutralDifficulty 未知难度使用的中性倍率
var neutralDifficulty = config.Difficulty{
	Name:             "neutral",
	HPMultiplier:     1,
	DamageMultiplier: 1,
	GoldMultiplier:   1,
}

// DifficultyEngine 难度引擎
// 负责计算敌人血量/伤害倍率与击杀金币，纯函数，无副作用
type DifficultyEngine struct {
	cfg *config.DifficultyConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg *config.DifficultyConfig) *DifficultyEngine {
	return &DifficultyEngine{cfg: cfg}
}

// Tier 获取难度档位，未知ID返回 ×1 的中性档位
func (d *DifficultyEngine) Tier(id string) config.Difficulty {
	if d.cfg == nil {
		return neutralDifficulty
	}
	tier, ok := d.cfg.Get(id)
	if !ok {
		return neutralDifficulty
	}
	return tier
}

func (d *DifficultyEngine) scaling() config.Scaling {
	if d.cfg == nil {
		return config.Scaling{}
	}
	return d.cfg.Scaling
}

// HPMultiplier 计算敌人血量倍率
// 公式: tier × (1 + HPPerWave × (wave-1)) × EndlessHPGrowth^endlessCount
func (d *DifficultyEngine) HPMultiplier(ctx ScalingContext) float64 {
	s := d.scaling()
	m := d.Tier(ctx.Difficulty).HPMultiplier * waveLinear(s.HPPerWave, ctx.Wave)
	if ctx.Endless {
		m *= endlessGrowth(s.EndlessHPGrowth, ctx.EndlessCount)
	}
	return m
}

// DamageMultiplier 计算敌人伤害倍率
// 公式: tier × (1 + DamagePerWave × (wave-1)) × EndlessDamageGrowth^endlessCount
func (d *DifficultyEngine) DamageMultiplier(ctx ScalingContext) float64 {
	s := d.scaling()
	m := d.Tier(ctx.Difficulty).DamageMultiplier * waveLinear(s.DamagePerWave, ctx.Wave)
	if ctx.Endless {
		m *= endlessGrowth(s.EndlessDamageGrowth, ctx.EndlessCount)
	}
	return m
}

// KillGold 计算击杀金币
//
// 参数:
//
//	baseGold - 敌人基础金币
//	ctx - 难度、波次、玩家金币倍率与加时标记
//
// 返回:
//
//	四舍五入后的金币；基础金币与倍率都为正时至少为 1
func (d *DifficultyEngine) KillGold(baseGold int, ctx ScalingContext) int {
	if baseGold <= 0 || ctx.Income <= 0 {
		return 0
	}
	s := d.scaling()
	g := float64(baseGold) * d.Tier(ctx.Difficulty).GoldMultiplier * ctx.Income
	if ctx.Endless && ctx.EndlessCount > 0 {
		g *= 1 + s.EndlessGoldPerWave*float64(ctx.EndlessCount)
	}
	if ctx.Overtime && s.OvertimeGoldBonus > 0 {
		g *= s.OvertimeGoldBonus
	}
	return max(int(math.Round(g)), 1)
}

func waveLinear(perWave float64, wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 1 + perWave*float64(wave-1)
}

func endlessGrowth(base float64, count int) float64 {
	if base <= 0 || count <= 0 {
		return 1
	}
	return math.Pow(base, float64(count))
}
