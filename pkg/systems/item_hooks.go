package systems

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// HookKind 道具挂钩种类
type HookKind int

const (
	HookOnKill HookKind = iota
	HookOnTick
	HookOnWaveStart
	HookOnPlayerHit
)

var hookNames = map[HookKind]string{
	HookOnKill:      "on_kill",
	HookOnTick:      "on_tick",
	HookOnWaveStart: "on_wave_start",
	HookOnPlayerHit: "on_player_hit",
}

// String 返回挂钩名（与 items.yaml 中 hooks 字段一致）
func (k HookKind) String() string {
	if name, ok := hookNames[k]; ok {
		return name
	}
	return "unknown"
}

// DropSpawner 挂钩生成掉落物时使用的接口（由 DropSystem 实现）
type DropSpawner interface {
	Spawn(typ components.DropType, x, y float64, value int) *components.Drop
}

// HookContext 挂钩调用参数
type HookContext struct {
	World *game.World
	Drops DropSpawner
	Item  *config.ItemDef
	Count int // 拥有数量（重复道具效果叠加）

	Enemy  *components.Enemy // on_kill: 被击杀的敌人；on_player_hit: 攻击者（可为 nil）
	Damage float64           // on_player_hit: 实际受到的伤害
}

// HookFunc 挂钩处理函数
type HookFunc func(ctx *HookContext)

type hookKey struct {
	item string
	kind HookKind
}

// ItemHookRegistry 道具挂钩注册表
//
// 道具数据只声明挂钩种类，行为按 (道具ID, 挂钩) 集中注册和分发。
type ItemHookRegistry struct {
	handlers map[hookKey]HookFunc
	warned   map[hookKey]bool
	drops    DropSpawner
}

// NewItemHookRegistry 创建注册表并注册内置道具
func NewItemHookRegistry(drops DropSpawner) *ItemHookRegistry {
	r := &ItemHookRegistry{
		handlers: make(map[hookKey]HookFunc),
		warned:   make(map[hookKey]bool),
		drops:    drops,
	}
	registerBuiltinHooks(r)
	return r
}

// Register 注册处理函数（同一 key 后注册的覆盖先注册的）
func (r *ItemHookRegistry) Register(item string, kind HookKind, fn HookFunc) {
	r.handlers[hookKey{item, kind}] = fn
}

// Has 是否已注册
func (r *ItemHookRegistry) Has(item string, kind HookKind) bool {
	_, ok := r.handlers[hookKey{item, kind}]
	return ok
}

// Dispatch 对玩家拥有的每种道具调用一次对应挂钩
//
// 按首次获得顺序遍历，Count 为该道具的拥有数量。
// 只有在道具定义中声明了该挂钩的道具才会被调用；
// 声明了但未注册处理函数的只记录一次日志。处理函数的 panic 被吸收。
func (r *ItemHookRegistry) Dispatch(w *game.World, kind HookKind, enemy *components.Enemy, damage float64) {
	inv := w.Player.Inventory
	if len(inv) == 0 {
		return
	}

	for i, id := range inv {
		if firstIndex(inv, id) != i {
			continue
		}
		def, ok := w.Content.Items.Get(id)
		if !ok || !declares(def, kind) {
			continue
		}
		key := hookKey{id, kind}
		fn, ok := r.handlers[key]
		if !ok {
			if !r.warned[key] {
				r.warned[key] = true
				log.Printf("[ItemHooks] ⚠️ Item %q declares %s but no handler is registered", id, kind)
			}
			continue
		}
		r.call(fn, kind, &HookContext{
			World:  w,
			Drops:  r.drops,
			Item:   def,
			Count:  w.Player.CountItem(id),
			Enemy:  enemy,
			Damage: damage,
		})
	}
}

func (r *ItemHookRegistry) call(fn HookFunc, kind HookKind, ctx *HookContext) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[ItemHooks] ⚠️ %s hook of %q panicked: %v", kind, ctx.Item.ID, rec)
		}
	}()
	fn(ctx)
}

func firstIndex(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func declares(def *config.ItemDef, kind HookKind) bool {
	name := kind.String()
	for _, h := range def.Hooks {
		if h == name {
			return true
		}
	}
	return false
}

// registerBuiltinHooks 内置道具的挂钩行为
func registerBuiltinHooks(r *ItemHookRegistry) {
	// 招财猫：击杀时按概率掉落回血
	r.Register("lucky_cat", HookOnKill, func(ctx *HookContext) {
		if ctx.Enemy == nil {
			return
		}
		chance := ctx.Item.Param("chance", 0.05) * float64(ctx.Count)
		if ctx.World.Chance(chance) {
			ctx.Drops.Spawn(components.DropHealth, ctx.Enemy.X, ctx.Enemy.Y, ctx.World.Tuning.Drop.HealthValue)
		}
	})

	// 蛋白粉：每波开始最大生命成长
	r.Register("protein_powder", HookOnWaveStart, func(ctx *HookContext) {
		gain := ctx.Item.Param("maxHpPerWave", 2) * float64(ctx.Count)
		p := ctx.World.Player
		p.Growth.MaxHP += gain
		ctx.World.RecalculateStats()
		p.Heal(gain)
	})

	// 存钱罐：每波开始按持有金币获得利息（有上限）
	r.Register("piggy_bank", HookOnWaveStart, func(ctx *HookContext) {
		w := ctx.World
		interest := float64(w.Player.Gold) * ctx.Item.Param("interest", 0.05) * float64(ctx.Count)
		limit := ctx.Item.Param("cap", 30) * float64(ctx.Count)
		if gold := int(utils.Clamp(interest, 0, limit)); gold > 0 {
			w.AddGold(gold, true)
		}
	})

	// 超频芯片：自定义计时器到期后进入超频
	// 间隔按持有数量缩短，最短 1 帧；超频期间计时器暂停
	r.Register("overclock_chip", HookOnTick, func(ctx *HookContext) {
		p := ctx.World.Player
		id := ctx.Item.ID
		interval := int(ctx.Item.Param("interval", 600))
		if interval <= 0 || p.OverclockTimer > 0 {
			return
		}
		p.ItemTimers[id]++
		if p.ItemTimers[id] >= max(interval/ctx.Count, 1) {
			p.ItemTimers[id] = 0
			p.OverclockTimer = ctx.World.Tuning.Player.OverclockFrames
		}
	})

	// 爱心挂坠：每 N 次击杀掉落一颗护盾爱心
	r.Register("heart_locket", HookOnKill, func(ctx *HookContext) {
		if ctx.Enemy == nil {
			return
		}
		p := ctx.World.Player
		id := ctx.Item.ID
		p.ItemCounters[id] += ctx.Count
		every := int(ctx.Item.Param("killsPerHeart", 25))
		if every > 0 && p.ItemCounters[id] >= every {
			p.ItemCounters[id] -= every
			ctx.Drops.Spawn(components.DropLoveHeart, ctx.Enemy.X, ctx.Enemy.Y, ctx.World.Tuning.Drop.HeartShieldValue)
		}
	})

	// 仙人掌套装：受击时对周围敌人造成尖刺伤害
	r.Register("cactus_suit", HookOnPlayerHit, func(ctx *HookContext) {
		w := ctx.World
		radius := ctx.Item.Param("burstRadius", 120)
		damage := ctx.Item.Param("burstDamage", 8) * float64(ctx.Count)
		for _, e := range w.Enemies {
			if e.Dead || (e.Boss != nil && e.Boss.Transitioning) {
				continue
			}
			if utils.DistSq(w.Player.X, w.Player.Y, e.X, e.Y) <= radius*radius {
				e.HP -= damage
				e.HitFlash = w.Tuning.Combat.HitFlashFrames
				w.Wave.Stats.DamageDealt += damage
			}
		}
	})
}
