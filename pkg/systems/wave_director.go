package systems

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// WaveDirector 波次导演
//
// 负责波次生命周期：开波（重置计数、触发开波挂钩、生成刷怪名单）、
// 按间隔分批刷怪（地图边缘、避开玩家与已有敌人）、精英与 Boss 的插入，
// 以及结束判定。结束后只设置 Wave.Ended，下一步（商店、Boss 登场、胜利）
// 由 UI 协作方轮询后决定。
type WaveDirector struct {
	world      *game.World
	difficulty *DifficultyEngine
	hooks      *ItemHookRegistry
}

// NewWaveDirector 创建波次导演
func NewWaveDirector(w *game.World, difficulty *DifficultyEngine, hooks *ItemHookRegistry) *WaveDirector {
	return &WaveDirector{world: w, difficulty: difficulty, hooks: hooks}
}

// StartWave 开始第 n 波（从1开始）
// 超出配置波数的部分进入无尽模式
func (d *WaveDirector) StartWave(n int) {
	w := d.world
	if n < 1 {
		n = 1
	}
	waves := w.Content.Waves

	w.Wave = components.WaveState{
		Index:   n,
		Started: true,
		Queue:   w.Wave.Queue[:0],
	}
	w.WaveClearing = false
	w.Player.ReviveUsed = false
	w.RecordWave(n)

	if cfg, ok := waves.Wave(n); ok {
		d.planScripted(cfg)
	} else {
		w.Wave.Endless = true
		w.Wave.EndlessCount = n - len(waves.Waves)
		d.planEndless(waves.Endless, w.Wave.EndlessCount)
	}
	w.Wave.Scripted = len(w.Wave.Queue)

	d.hooks.Dispatch(w, HookOnWaveStart, nil, 0)

	log.Printf("[WaveDirector] Wave %d started: roster=%d elite=%q boss=%q endless=%v",
		n, w.Wave.Scripted, w.Wave.Elite, w.Wave.Boss, w.Wave.Endless)
	w.Emit(game.Event{Kind: game.EventWaveStart, Value: float64(n)})
}

// planScripted 按配置展开名单并打乱
func (d *WaveDirector) planScripted(cfg config.WaveConfig) {
	w := d.world
	for _, entry := range cfg.Roster {
		for i := 0; i < entry.Count; i++ {
			w.Wave.Queue = append(w.Wave.Queue, entry.Enemy)
		}
	}
	d.shuffleQueue()

	w.Wave.SpawnInterval = cfg.SpawnInterval
	if w.Wave.SpawnInterval <= 0 {
		w.Wave.SpawnInterval = w.Tuning.Wave.DefaultSpawnInterval
	}
	w.Wave.BatchSize = max(cfg.BatchSize, 1)
	w.Wave.Elite = cfg.Elite
	w.Wave.Boss = cfg.Boss
}

// planEndless 无尽模式：从敌人池随机抽取，数量随波数增长，定期插入 Boss
func (d *WaveDirector) planEndless(cfg config.EndlessConfig, count int) {
	w := d.world
	total := cfg.BaseCount + cfg.CountPerWave*max(count-1, 0)
	if len(cfg.Pool) > 0 {
		for i := 0; i < total; i++ {
			w.Wave.Queue = append(w.Wave.Queue, cfg.Pool[w.Rand.Intn(len(cfg.Pool))])
		}
	}

	w.Wave.SpawnInterval = cfg.SpawnInterval
	if w.Wave.SpawnInterval <= 0 {
		w.Wave.SpawnInterval = w.Tuning.Wave.DefaultSpawnInterval
	}
	w.Wave.BatchSize = max(cfg.BatchSize, 1)
	if cfg.BossEvery > 0 && len(cfg.Bosses) > 0 && count%cfg.BossEvery == 0 {
		w.Wave.Boss = cfg.Bosses[(count/cfg.BossEvery-1)%len(cfg.Bosses)]
	}
}

func (d *WaveDirector) shuffleQueue() {
	q := d.world.Wave.Queue
	d.world.Rand.Shuffle(len(q), func(i, j int) { q[i], q[j] = q[j], q[i] })
}

// Update 每帧推进刷怪与结束判定
func (d *WaveDirector) Update() {
	w := d.world
	ws := &w.Wave
	if !ws.Started || ws.Ended {
		return
	}

	ws.Frame++
	ws.FramesSinceLastKill++
	if ot := w.Tuning.Wave.OvertimeFrames; ot > 0 && ws.Frame >= ot && !ws.Overtime {
		ws.Overtime = true
		log.Printf("[WaveDirector] Wave %d entered overtime", ws.Index)
	}

	if ws.Boss != "" && !ws.BossSpawned {
		ws.BossSpawned = true
		d.spawn(ws.Boss)
	}

	ws.SpawnTimer--
	if ws.SpawnTimer <= 0 {
		ws.SpawnTimer = ws.SpawnInterval
		d.spawnBatch()
	}

	if d.shouldEnd() {
		d.EndWave()
	}
}

// spawnBatch 刷出一批名单中的敌人（同屏上限内）
func (d *WaveDirector) spawnBatch() {
	w := d.world
	ws := &w.Wave
	limit := w.Tuning.Wave.MaxLiveEnemies

	for i := 0; i < ws.BatchSize && len(ws.Queue) > 0; i++ {
		if limit > 0 && w.LiveEnemyCount() >= limit {
			return
		}
		id := ws.Queue[len(ws.Queue)-1]
		ws.Queue = ws.Queue[:len(ws.Queue)-1]
		d.spawn(id)
	}

	// 名单刷出过半时插入精英
	if ws.Elite != "" && !ws.EliteSpawned && ws.Spawned*2 >= ws.Scripted {
		ws.EliteSpawned = true
		d.spawn(ws.Elite)
	}
}

// spawn 按当前难度在边缘刷出一个敌人；未知ID记录日志并跳过
func (d *WaveDirector) spawn(id string) *components.Enemy {
	w := d.world
	w.Wave.Spawned++

	ctx := ScalingFor(w)
	x, y := d.SpawnPoint()
	e, err := entities.NewEnemy(w, id, x, y, d.difficulty.HPMultiplier(ctx), d.difficulty.DamageMultiplier(ctx))
	if err != nil {
		log.Printf("[WaveDirector] ⚠️ Spawn skipped: %v", err)
		return nil
	}
	if e.Boss != nil {
		log.Printf("[WaveDirector] Boss %s spawned (hp=%.0f)", id, e.MaxHP)
		w.Emit(game.Event{Kind: game.EventBossSpawn, X: x, Y: y, Name: id})
	}
	return e
}

// SpawnPoint 在地图边缘随机选点
//
// 最多尝试 SpawnAttempts 次，接受距玩家不少于 MinSpawnDistance、
// 距已有敌人不少于 AntiClutterDistance 的点；都不满足时取距玩家最远的候选。
func (d *WaveDirector) SpawnPoint() (float64, float64) {
	w := d.world
	t := w.Tuning.Map
	pl := w.Player

	bestX, bestY, bestDist := 0.0, 0.0, -1.0
	attempts := max(t.SpawnAttempts, 1)
	for i := 0; i < attempts; i++ {
		x, y := d.edgePoint()
		dist := utils.DistSq(x, y, pl.X, pl.Y)
		if dist >= t.MinSpawnDistance*t.MinSpawnDistance && !d.cluttered(x, y) {
			return x, y
		}
		if dist > bestDist {
			bestX, bestY, bestDist = x, y, dist
		}
	}
	return bestX, bestY
}

// edgePoint 随机选择一条边上的点（内缩 SpawnMargin）
func (d *WaveDirector) edgePoint() (float64, float64) {
	w := d.world
	t := w.Tuning.Map
	m := t.SpawnMargin
	switch w.Rand.Intn(4) {
	case 0:
		return w.RandRange(m, t.Width-m), m
	case 1:
		return w.RandRange(m, t.Width-m), t.Height - m
	case 2:
		return m, w.RandRange(m, t.Height-m)
	default:
		return t.Width - m, w.RandRange(m, t.Height-m)
	}
}

func (d *WaveDirector) cluttered(x, y float64) bool {
	w := d.world
	r := w.Tuning.Map.AntiClutterDistance
	if r <= 0 {
		return false
	}
	for _, e := range w.Enemies {
		if !e.Dead && utils.DistSq(x, y, e.X, e.Y) < r*r {
			return true
		}
	}
	return false
}

// shouldEnd 结束判定
// 普通波次：名单刷完且场上无敌人；无尽模式另外允许距上次击杀超过阈值时结束
func (d *WaveDirector) shouldEnd() bool {
	w := d.world
	ws := &w.Wave
	if !ws.RosterExhausted() {
		return false
	}
	if w.LiveEnemyCount() == 0 {
		return true
	}
	idle := w.Tuning.Wave.EndlessIdleFrames
	return ws.Endless && idle > 0 && ws.FramesSinceLastKill >= idle
}

// EndWave 结束本波
// 清除残留敌人与敌方子弹，掉落物进入清场吸附
func (d *WaveDirector) EndWave() {
	w := d.world
	ws := &w.Wave
	if ws.Ended {
		return
	}
	ws.Ended = true
	w.WaveClearing = true
	w.ClearEnemies()
	w.ClearEnemyProjectiles()
	w.InCinematicTransition = false

	log.Printf("[WaveDirector] Wave %d ended: kills=%d gold=%d bonus=%d dealt=%.0f mitigated=%.0f",
		ws.Index, ws.Stats.Kills, ws.Stats.GoldEarned, ws.Stats.BonusGold, ws.Stats.DamageDealt, ws.Stats.DamageMitigated)
	w.Emit(game.Event{Kind: game.EventWaveEnd, Value: float64(ws.Index)})
}

// StartEndless 从配置波数之后开始无尽模式
func (d *WaveDirector) StartEndless() {
	d.StartWave(len(d.world.Content.Waves.Waves) + 1)
}
