package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
)

// TestHookKindNames 测试挂钩名与内容表一致
func TestHookKindNames(t *testing.T) {
	assert.Equal(t, "on_kill", HookOnKill.String())
	assert.Equal(t, "on_tick", HookOnTick.String())
	assert.Equal(t, "on_wave_start", HookOnWaveStart.String())
	assert.Equal(t, "on_player_hit", HookOnPlayerHit.String())
	assert.Equal(t, "unknown", HookKind(99).String())
}

// TestBuiltinHooksRegistered 测试内置道具都有处理函数
func TestBuiltinHooksRegistered(t *testing.T) {
	sim := newTestSim(t, nil)
	for id, def := range sim.World().Content.Items.Items {
		for _, name := range def.Hooks {
			found := false
			for _, kind := range []HookKind{HookOnKill, HookOnTick, HookOnWaveStart, HookOnPlayerHit} {
				if kind.String() == name && sim.Hooks.Has(id, kind) {
					found = true
				}
			}
			assert.True(t, found, "%s declares %s without a handler", id, name)
		}
	}
}

// TestDispatchOncePerItemWithCount 测试重复道具只调用一次并携带数量
func TestDispatchOncePerItemWithCount(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Items.Items["test_charm"] = &config.ItemDef{ID: "test_charm", Hooks: []string{"on_tick"}}
		c.Items.Items["silent"] = &config.ItemDef{ID: "silent"}
	})
	w := sim.World()
	var calls []int
	sim.Hooks.Register("test_charm", HookOnTick, func(ctx *HookContext) {
		calls = append(calls, ctx.Count)
	})
	sim.Hooks.Register("silent", HookOnTick, func(ctx *HookContext) {
		t.Fatal("items that do not declare the hook are not called")
	})
	w.GiveItem("test_charm")
	w.GiveItem("silent")
	w.GiveItem("test_charm")
	w.GiveItem("test_charm")

	sim.Hooks.Dispatch(w, HookOnTick, nil, 0)

	assert.Equal(t, []int{3}, calls)
}

// TestDispatchRecoversPanics 测试处理函数 panic 不影响其它道具
func TestDispatchRecoversPanics(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Items.Items["bad"] = &config.ItemDef{ID: "bad", Hooks: []string{"on_kill"}}
		c.Items.Items["good"] = &config.ItemDef{ID: "good", Hooks: []string{"on_kill"}}
		c.Items.Items["missing"] = &config.ItemDef{ID: "missing", Hooks: []string{"on_kill"}}
	})
	w := sim.World()
	sim.Hooks.Register("bad", HookOnKill, func(*HookContext) { panic("boom") })
	called := 0
	sim.Hooks.Register("good", HookOnKill, func(*HookContext) { called++ })
	w.GiveItem("bad")
	w.GiveItem("missing")
	w.GiveItem("good")

	assert.NotPanics(t, func() {
		sim.Hooks.Dispatch(w, HookOnKill, nil, 0)
		sim.Hooks.Dispatch(w, HookOnKill, nil, 0)
	})
	assert.Equal(t, 2, called)
}

// TestLuckyCatDropsHealth 测试招财猫概率掉落回血
func TestLuckyCatDropsHealth(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Items.Items["lucky_cat"].Params = map[string]float64{"chance": 1}
	})
	w := sim.World()
	w.GiveItem("lucky_cat")
	e := spawnAt(t, w, "doge", 100, 100)
	e.HP = 0

	sim.Combat.ResolveDeaths()

	assert.Equal(t, 1, sim.Drops.CountType(components.DropHealth))
}

// TestHeartLocketEveryNKills 测试爱心挂坠按击杀数掉落
func TestHeartLocketEveryNKills(t *testing.T) {
	sim := newTestSim(t, func(c *config.Content) {
		c.Items.Items["heart_locket"].Params = map[string]float64{"killsPerHeart": 3}
	})
	w := sim.World()
	w.GiveItem("heart_locket")

	for i := 0; i < 5; i++ {
		e := spawnAt(t, w, "doge", float64(100+i*100), 100)
		e.HP = 0
		sim.Combat.ResolveDeaths()
	}

	assert.Equal(t, 1, sim.Drops.CountType(components.DropLoveHeart))
	assert.Equal(t, 2, w.Player.ItemCounters["heart_locket"])
}

// TestCactusSuitBurst 测试仙人掌外套受击时伤害周围敌人
func TestCactusSuitBurst(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	require.True(t, w.GiveItem("cactus_suit"))
	pl := w.Player
	near := spawnAt(t, w, "amogus", pl.X+50, pl.Y)
	far := spawnAt(t, w, "amogus", pl.X+500, pl.Y)

	sim.Combat.DamagePlayer(10, nil)

	assert.Equal(t, near.MaxHP-8, near.HP)
	assert.Equal(t, far.MaxHP, far.HP)
}

// TestCactusSuitKillsAreResolved 测试挂钩造成的击杀由死亡结算统一处理
func TestCactusSuitKillsAreResolved(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World()
	require.True(t, w.GiveItem("cactus_suit"))
	pl := w.Player
	victim := spawnAt(t, w, "mini_doge", pl.X+50, pl.Y)
	require.LessOrEqual(t, victim.HP, 8.0)

	sim.Combat.DamagePlayer(10, nil)
	sim.Combat.ResolveDeaths()

	assert.Empty(t, w.Enemies)
	assert.Equal(t, 1, w.Wave.Stats.Kills)
}
