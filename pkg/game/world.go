package game

import (
	"log"
	"math"
	"math/rand"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
)

// DefaultCharacter 找不到角色时回退使用的角色ID
const DefaultCharacter = "default"

// Options 创建 World 的参数
type Options struct {
	Seed       int64           // 随机种子（测试固定种子以获得确定结果）
	Difficulty string          // 难度ID，未知难度按 ×1 处理
	Character  string          // 角色ID，为空或未知时使用 DefaultCharacter
	Content    *config.Content // 为 nil 时使用内置默认配置
	Notifier   Notifier        // 为 nil 时使用 NopNotifier
}

// Camera 摄像机位置（世界坐标，指向视口中心）
type Camera struct {
	X, Y float64
}

// Stats 跨波次的累计统计（持久化协作方读写）
type Stats struct {
	TotalKills     int `yaml:"totalKills"`
	GoldEarned     int `yaml:"goldEarned"`
	HighestWave    int `yaml:"highestWave"`
	BossesDefeated int `yaml:"bossesDefeated"`
	Revives        int `yaml:"revives"`
}

// World 模拟上下文
//
// 所有系统都通过同一个 *World 读写状态，不存在全局单例；
// 多个 World 可以在同一进程（例如并行测试）中独立运行。
type World struct {
	Content      *config.Content
	Tuning       *config.Tuning
	DifficultyID string

	Rand     *rand.Rand
	Entities *ecs.EntityManager

	Player      *components.Player
	Enemies     []*components.Enemy
	Projectiles []*components.Projectile
	Drops       []*components.Drop
	Zones       []*components.Zone
	Particles   []*components.Particle
	Texts       []*components.FloatingText

	EnemyPool      *ecs.Pool[components.Enemy]
	ProjectilePool *ecs.Pool[components.Projectile]
	DropPool       *ecs.Pool[components.Drop]
	ParticlePool   *ecs.Pool[components.Particle]
	TextPool       *ecs.Pool[components.FloatingText]

	Wave   components.WaveState
	Revive components.ReviveState
	Camera Camera
	Stats  Stats

	// 暂停层级：IsPaused > InCinematicTransition > Revive
	IsPaused              bool
	InCinematicTransition bool
	// WaveClearing 波次结束后的清场吸附（掉落物无限磁吸）
	WaveClearing bool

	Frame int

	dropSeq  uint64
	notifier Notifier
}

// NewWorld 创建模拟上下文并放置玩家
func NewWorld(opts Options) *World {
	content := opts.Content
	if content == nil {
		content = config.DefaultContent()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	t := content.Tuning
	w := &World{
		Content:      content,
		Tuning:       t,
		DifficultyID: opts.Difficulty,
		Rand:         rand.New(rand.NewSource(opts.Seed)),
		Entities:     ecs.NewEntityManager(),
		Enemies:      make([]*components.Enemy, 0, t.Wave.MaxLiveEnemies),
		Projectiles:  make([]*components.Projectile, 0, 256),
		Drops:        make([]*components.Drop, 0, t.Drop.MaxDrops),
		Zones:        make([]*components.Zone, 0, 8),
		Particles:    make([]*components.Particle, 0, 128),
		Texts:        make([]*components.FloatingText, 0, 64),
		notifier:     notifier,
	}

	w.EnemyPool = ecs.NewPool[components.Enemy]("enemy", nil, components.ResetEnemy)
	w.ProjectilePool = ecs.NewPool[components.Projectile]("projectile", nil, components.ResetProjectile)
	w.DropPool = ecs.NewPool[components.Drop]("drop", nil, nil)
	w.ParticlePool = ecs.NewPool[components.Particle]("particle", nil, nil)
	w.TextPool = ecs.NewPool[components.FloatingText]("floating_text", nil, nil)
	w.ProjectilePool.Prewarm(128)
	w.ParticlePool.Prewarm(64)

	w.Player = components.NewPlayer(t.Map.Width/2, t.Map.Height/2, t.Player.Radius)
	w.setupCharacter(opts.Character)
	w.Camera = Camera{X: w.Player.X, Y: w.Player.Y}

	log.Printf("[World] Created: seed=%d difficulty=%q character=%q", opts.Seed, opts.Difficulty, w.Player.Character)
	return w
}

// setupCharacter 应用角色基础属性与自带道具
func (w *World) setupCharacter(id string) {
	if id == "" {
		id = DefaultCharacter
	}
	def, ok := w.Content.Characters.Get(id)
	if !ok {
		log.Printf("[World] ⚠️ Unknown character %q, falling back to %q", id, DefaultCharacter)
		id = DefaultCharacter
		def, ok = w.Content.Characters.Get(id)
	}
	w.Player.Character = id
	if ok {
		for _, item := range def.Items {
			w.Player.AddItem(item)
		}
	}
	w.RecalculateStats()
	w.Player.HP = w.Player.Stats.MaxHP
}

// Emit 发送通知
// 协作方的 panic 会被吸收并记录，不影响模拟
func (w *World) Emit(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[World] ⚠️ Notifier panicked on %s: %v", ev.Kind, r)
		}
	}()
	w.notifier.Notify(ev)
}

// SetNotifier 替换通知协作方
func (w *World) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	w.notifier = n
}

// NextDropSeq 分配掉落物生成序号
func (w *World) NextDropSeq() uint64 {
	w.dropSeq++
	return w.dropSeq
}

// Chance 以概率 p 返回 true（p ≤ 0 恒假，p ≥ 1 恒真）
func (w *World) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return w.Rand.Float64() < p
}

// RandRange 返回 [min, max) 的随机数
func (w *World) RandRange(min, max float64) float64 {
	return min + w.Rand.Float64()*(max-min)
}

// RandAngle 返回随机角度（弧度）
func (w *World) RandAngle() float64 {
	return w.Rand.Float64() * 2 * math.Pi
}

// AddGold 玩家获得金币，同步本波与累计统计
func (w *World) AddGold(amount int, bonus bool) {
	if amount <= 0 {
		return
	}
	w.Player.Gold += amount
	w.Wave.Stats.GoldEarned += amount
	if bonus {
		w.Wave.Stats.BonusGold += amount
	}
	w.Stats.GoldEarned += amount
}

// FindEnemy 按实体ID查找存活敌人
func (w *World) FindEnemy(id ecs.EntityID) *components.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id && !e.Dead {
			return e
		}
	}
	return nil
}

// BossActive 是否有存活的 Boss（UI 轮询）
func (w *World) BossActive() bool {
	for _, e := range w.Enemies {
		if e.Boss != nil && !e.Dead {
			return true
		}
	}
	return false
}

// PlayerDead 玩家是否已死亡（UI 轮询）
func (w *World) PlayerDead() bool {
	return w.Player.Dead
}

// WaveEnded 本波是否结束（UI 轮询）
func (w *World) WaveEnded() bool {
	return w.Wave.Ended
}

// LiveEnemyCount 存活敌人数量
func (w *World) LiveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

// InBounds 坐标是否在地图内（含 margin 的外扩）
func (w *World) InBounds(x, y, margin float64) bool {
	return x >= -margin && y >= -margin &&
		x <= w.Tuning.Map.Width+margin && y <= w.Tuning.Map.Height+margin
}

// ClearEnemies 强制移除所有敌人（Boss 死亡、波次结束）
// 被移除的精英不再抓取玩家
func (w *World) ClearEnemies() {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		w.Entities.DestroyEntity(e.ID)
		w.EnemyPool.Release(e)
	}
	clear(w.Enemies)
	w.Enemies = w.Enemies[:0]
	w.Player.CapturedBy = ecs.InvalidEntity
}

// ClearEnemyProjectiles 移除所有敌方子弹
func (w *World) ClearEnemyProjectiles() {
	w.Projectiles = ecs.RemoveIf(w.Projectiles,
		func(p *components.Projectile) bool { return p.IsEnemy },
		func(p *components.Projectile) {
			w.Entities.DestroyEntity(p.ID)
			w.ProjectilePool.Release(p)
		})
}

// RecordWave 更新最高波次
func (w *World) RecordWave(wave int) {
	if wave > w.Stats.HighestWave {
		w.Stats.HighestWave = wave
	}
}
