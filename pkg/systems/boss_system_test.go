package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// liveZone 查找指定标签的存活区域
func liveZone(w *game.World, tag string) *components.Zone {
	for _, z := range w.Zones {
		if !z.Dead && z.Tag == tag {
			return z
		}
	}
	return nil
}

// TestSkillRotations 测试技能轮换查询
func TestSkillRotations(t *testing.T) {
	assert.Equal(t, []components.BossSkill{components.SkillLockOn, components.SkillBarrage}, Skills(config.Boss404, 1))
	assert.Equal(t, Skills(config.Boss404, 2), Skills(config.Boss404, 9), "phases beyond the table use the last rotation")
	assert.Equal(t, Skills(config.BossStonks, 1), Skills(config.BossStonks, 0))
	assert.Nil(t, Skills(config.BossNone, 1))
}

// TestThresholdPinsHPAndStartsTransition 测试跌破阈值时血量钉在 1 并进入过场
func TestThresholdPinsHPAndStartsTransition(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_stonks", 300, 300)

	sim.Combat.DamageEnemy(boss, 99999, true)

	assert.Equal(t, 1.0, boss.HP)
	assert.True(t, boss.Boss.Transitioning)
	assert.Equal(t, w.Tuning.Boss.TransitionFrames, boss.Boss.TransitionTimer)
	assert.True(t, w.InCinematicTransition)

	// 过场中无敌，死亡结算也不会带走它
	sim.Combat.DamageEnemy(boss, 50, true)
	sim.Combat.ResolveDeaths()
	assert.Equal(t, 1.0, boss.HP)
	require.Len(t, w.Enemies, 1)
	assert.False(t, boss.Dead)
}

// TestAboveThresholdNoTransition 测试阈值以上不触发过场
func TestAboveThresholdNoTransition(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_stonks", 300, 300)

	sim.Combat.DamageEnemy(boss, boss.MaxHP*0.4, true)

	assert.False(t, boss.Boss.Transitioning)
	assert.False(t, w.InCinematicTransition)
	assert.InDelta(t, boss.MaxHP*0.6, boss.HP, 1e-9)
}

// TestTransitionCompletes 测试过场固定帧数后进入下一阶段，期间其它实体冻结
func TestTransitionCompletes(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	rec := &recorder{}
	w.SetNotifier(rec)
	boss := spawnAt(t, w, "boss_stonks", 300, 300)
	minion := spawnAt(t, w, "doge", 900, 900)
	sim.Combat.DamageEnemy(boss, 99999, true)
	mx, my := minion.X, minion.Y
	frame := w.Frame

	for i := 1; i < w.Tuning.Boss.TransitionFrames; i++ {
		sim.Update()
	}
	require.True(t, boss.Boss.Transitioning)
	assert.Equal(t, 1, boss.Boss.Phase)
	assert.Equal(t, mx, minion.X)
	assert.Equal(t, my, minion.Y)
	assert.Equal(t, frame, w.Frame, "gameplay frame counter frozen")

	sim.Update()

	assert.False(t, boss.Boss.Transitioning)
	assert.False(t, w.InCinematicTransition)
	assert.Equal(t, 2, boss.Boss.Phase)
	assert.Equal(t, boss.MaxHP, boss.HP)
	assert.Equal(t, 1, rec.count(game.EventBossPhase))

	// 最后阶段不再有阈值：致命伤害直接死亡
	sim.Combat.DamageEnemy(boss, 99999, true)
	assert.False(t, boss.Boss.Transitioning)
	assert.LessOrEqual(t, boss.HP, 0.0)
}

// TestNextPhaseHPRatio 测试新阶段血量比例可配置
func TestNextPhaseHPRatio(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Tuning.Boss.NextPhaseHPRatio = 0.5
		c.Tuning.Boss.TransitionFrames = 2
	})
	w := sim.World()
	boss := spawnAt(t, w, "boss_404", 300, 300)
	sim.Combat.DamageEnemy(boss, 99999, true)

	sim.Update()
	sim.Update()

	assert.Equal(t, 2, boss.Boss.Phase)
	assert.Equal(t, boss.MaxHP*0.5, boss.HP)
}

// TestTelegraphIsHarmless 测试预警阶段只有视觉区域，不发射子弹
func TestTelegraphIsHarmless(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_404", 300, 300)
	telegraph := skillTimings[components.SkillLockOn].Telegraph

	sim.Boss.Update(boss)
	require.Equal(t, components.SkillLockOn, boss.Boss.Skill)
	require.Equal(t, components.BeatTelegraph, boss.Boss.Beat)
	z := liveZone(w, "lock_on")
	require.NotNil(t, z)
	assert.Equal(t, components.ZoneVisual, z.Type)
	assert.Equal(t, boss.ID, z.OwnerID)

	for i := 1; i < telegraph; i++ {
		sim.Boss.Update(boss)
	}
	assert.Equal(t, components.BeatTelegraph, boss.Boss.Beat)
	assert.Zero(t, countEnemyProjectiles(w))

	sim.Boss.Update(boss)
	assert.Equal(t, components.BeatResolve, boss.Boss.Beat)
	assert.Nil(t, liveZone(w, "lock_on"), "telegraph removed on resolve")

	for i := 0; i < skillTimings[components.SkillLockOn].Resolve; i++ {
		sim.Boss.Update(boss)
	}
	assert.Equal(t, lockOnShots, countEnemyProjectiles(w))
	assert.Equal(t, components.BeatCooldown, boss.Boss.Beat)
}

// TestLockOnTracksPlayer 测试锁定预警持续跟随玩家
func TestLockOnTracksPlayer(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_404", 300, 300)
	sim.Boss.Update(boss)

	w.Player.X += 40
	sim.Boss.Update(boss)

	assert.Equal(t, w.Player.X, boss.Boss.LockOn.TargetX)
	assert.Equal(t, w.Player.X, liveZone(w, "lock_on").X)
}

// TestBossKilledMidTelegraph 测试预警中死亡的 Boss 放弃技能
func TestBossKilledMidTelegraph(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_404", 300, 300)
	boss.Boss.Phase = boss.Def.MaxPhase
	for i := 0; i < 10; i++ {
		sim.Boss.Update(boss)
	}
	require.Equal(t, components.SkillGravityWell, boss.Boss.Skill)
	require.NotNil(t, liveZone(w, "gravity_well_warning"))

	boss.HP = 0
	sim.Combat.ResolveDeaths()
	sim.Zones.Update()

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Zones, "telegraph removed with its owner")
	assert.Zero(t, countEnemyProjectiles(w))
}

// TestGravityWellHazard 测试第二阶段引力井在结算时生成伤害区域
func TestGravityWellHazard(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	pl := w.Player
	boss := spawnAt(t, w, "boss_404", 300, 300)
	boss.Boss.Phase = 2
	px, py := pl.X, pl.Y

	for i := 0; i <= skillTimings[components.SkillGravityWell].Telegraph; i++ {
		sim.Boss.Update(boss)
	}

	require.Equal(t, components.BeatResolve, boss.Boss.Beat)
	hazard := liveZone(w, "gravity_well")
	require.NotNil(t, hazard)
	assert.Equal(t, components.ZoneHazard, hazard.Type)
	assert.Equal(t, px, hazard.X)
	assert.Equal(t, py, hazard.Y)
	assert.Equal(t, boss.Damage*0.5, hazard.Damage)
	assert.Greater(t, hazard.Pull, 0.0)
	assert.Nil(t, liveZone(w, "gravity_well_warning"))
}

// TestSummonSkill 测试召唤技能生成小怪
func TestSummonSkill(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_stonks", 300, 300)
	boss.Boss.Rotation = 1

	for i := 0; i <= skillTimings[components.SkillSummon].Telegraph; i++ {
		sim.Boss.Update(boss)
	}

	require.Equal(t, components.SkillSummon, boss.Boss.Skill)
	assert.Len(t, w.Enemies, 1+3)
	for _, e := range w.Enemies[1:] {
		assert.Equal(t, "mini_doge", e.Def.ID)
	}
}

// TestSecondPhaseCooldownShorter 测试第二阶段冷却缩短
func TestSecondPhaseCooldownShorter(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_stonks", 300, 300)
	boss.Boss.Phase = 2
	boss.Boss.Rotation = 0
	timing := skillTimings[components.SkillSummon]

	for i := 0; i <= timing.Telegraph+timing.Resolve; i++ {
		sim.Boss.Update(boss)
	}

	require.Equal(t, components.BeatCooldown, boss.Boss.Beat)
	assert.Equal(t, int(float64(timing.Cooldown)*phaseCooldownRate), boss.Boss.BeatTimer)
}

// TestTransitionAbandonsSkill 测试进入过场时放弃进行中的技能
func TestTransitionAbandonsSkill(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	boss := spawnAt(t, w, "boss_404", 300, 300)
	sim.Boss.Update(boss)
	require.NotNil(t, liveZone(w, "lock_on"))

	sim.Combat.DamageEnemy(boss, 99999, true)

	assert.Equal(t, components.SkillNone, boss.Boss.Skill)
	assert.Nil(t, liveZone(w, "lock_on"))
}
