package systems

import (
	"log"
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// skillTiming 技能三拍的帧数
type skillTiming struct {
	Telegraph int
	Resolve   int
	Cooldown  int
}

var skillTimings = map[components.BossSkill]skillTiming{
	components.SkillLockOn:      {Telegraph: 45, Resolve: 30, Cooldown: 60},
	components.SkillBarrage:     {Telegraph: 40, Resolve: 60, Cooldown: 70},
	components.SkillGravityWell: {Telegraph: 60, Resolve: 240, Cooldown: 60},
	components.SkillDash:        {Telegraph: 50, Resolve: 24, Cooldown: 60},
	components.SkillSummon:      {Telegraph: 40, Resolve: 1, Cooldown: 90},
}

// bossRotations 每种 Boss 每个阶段的技能轮换（下标 0 为第一阶段）
var bossRotations = map[config.BossKind][][]components.BossSkill{
	config.Boss404: {
		{components.SkillLockOn, components.SkillBarrage},
		{components.SkillGravityWell, components.SkillDash, components.SkillLockOn},
	},
	config.BossStonks: {
		{components.SkillBarrage, components.SkillSummon},
		{components.SkillSummon, components.SkillDash, components.SkillBarrage},
	},
}

const (
	lockOnShots       = 3
	lockOnInterval    = 10
	lockOnSpeedFactor = 1.5
	barrageWaves      = 3
	barrageInterval   = 20
	barrageBullets    = 12
	gravityRadius     = 130.0
	gravityPull       = 1.5
	gravityTick       = 30
	dashSpeedFactor   = 7.0
	summonMinion      = "mini_doge"
	phaseCooldownRate = 0.7 // 第二阶段起冷却缩短
)

// BossSystem Boss 状态机
//
// 阶段：血量跌破阈值时血量钉在 1，进入固定时长的过场（World.InCinematicTransition），
// 过场结束阶段 +1，解锁新阶段的技能轮换。
// 技能：预警（只有视觉区域，无伤害）→ 结算 → 冷却。
// Boss 在预警中死亡时技能被放弃，不会结算。
type BossSystem struct {
	world      *game.World
	difficulty *DifficultyEngine
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(w *game.World, difficulty *DifficultyEngine) *BossSystem {
	return &BossSystem{world: w, difficulty: difficulty}
}

// Skills 返回 Boss 在当前阶段的技能轮换
func Skills(kind config.BossKind, phase int) []components.BossSkill {
	phases := bossRotations[kind]
	if len(phases) == 0 {
		return nil
	}
	idx := min(max(phase, 1), len(phases)) - 1
	return phases[idx]
}

// CheckThreshold 检查阶段阈值，跨过时开始过场
// 返回是否开始了过场
func (s *BossSystem) CheckThreshold(e *components.Enemy) bool {
	b := e.Boss
	if b == nil || b.Transitioning || e.Dead {
		return false
	}
	if b.Phase >= max(e.Def.MaxPhase, 1) {
		return false
	}
	if e.HP > e.MaxHP*e.Def.PhaseThreshold {
		return false
	}

	w := s.world
	e.HP = 1
	s.abandon(e)
	b.Transitioning = true
	b.TransitionTimer = w.Tuning.Boss.TransitionFrames
	e.StunTimer = 0
	e.KnockX, e.KnockY = 0, 0
	w.InCinematicTransition = true

	log.Printf("[BossSystem] %s entering transition %d → %d", b.Kind, b.Phase, b.Phase+1)
	return true
}

// UpdateTransitions 推进所有 Boss 的阶段过场
// 过场期间这是唯一推进的玩法逻辑；全部完成后解除 World.InCinematicTransition
func (s *BossSystem) UpdateTransitions() {
	w := s.world
	total := w.Tuning.Boss.TransitionFrames
	active := false

	for _, e := range w.Enemies {
		b := e.Boss
		if b == nil || e.Dead || !b.Transitioning {
			continue
		}
		b.TransitionTimer--
		b.Shake = 6 * utils.EaseOutCubic(utils.Progress(b.TransitionTimer, total))
		if b.TransitionTimer <= 0 {
			s.completeTransition(e)
			continue
		}
		active = true
	}

	w.InCinematicTransition = active
}

func (s *BossSystem) completeTransition(e *components.Enemy) {
	w := s.world
	b := e.Boss
	b.Phase++
	b.Transitioning = false
	b.TransitionTimer = 0
	b.Shake = 0
	b.Rotation = 0
	b.AbandonSkill()
	e.HP = utils.Clamp(e.MaxHP*w.Tuning.Boss.NextPhaseHPRatio, 1, e.MaxHP)

	log.Printf("[BossSystem] %s entered phase %d (hp=%.0f)", b.Kind, b.Phase, e.HP)
	w.Emit(game.Event{Kind: game.EventBossPhase, X: e.X, Y: e.Y, Name: string(b.Kind), Value: float64(b.Phase)})
}

// Update 推进单个 Boss（由敌人行为系统调用）
func (s *BossSystem) Update(e *components.Enemy) {
	b := e.Boss
	if b == nil || e.Dead || b.Transitioning {
		return
	}

	s.move(e)

	switch b.Beat {
	case components.BeatReady:
		s.beginSkill(e)
	case components.BeatTelegraph:
		s.telegraph(e)
		b.BeatTimer--
		if b.BeatTimer <= 0 {
			s.resolveStart(e)
		}
	case components.BeatResolve:
		s.resolveTick(e)
		b.BeatTimer--
		if b.BeatTimer <= 0 {
			s.finishSkill(e)
		}
	case components.BeatCooldown:
		b.BeatTimer--
		if b.BeatTimer <= 0 {
			b.Skill = components.SkillNone
			b.Beat = components.BeatReady
		}
	}
}

// move 普通状态缓慢逼近玩家；冲刺预警原地蓄力；冲刺结算沿锁定方向高速移动
func (s *BossSystem) move(e *components.Enemy) {
	w := s.world
	b := e.Boss
	pl := w.Player

	if b.Skill == components.SkillDash {
		switch b.Beat {
		case components.BeatTelegraph:
			return
		case components.BeatResolve:
			e.X += b.Dash.DirX * e.Speed * dashSpeedFactor
			e.Y += b.Dash.DirY * e.Speed * dashSpeedFactor
			e.X = utils.Clamp(e.X, e.Radius, w.Tuning.Map.Width-e.Radius)
			e.Y = utils.Clamp(e.Y, e.Radius, w.Tuning.Map.Height-e.Radius)
			return
		}
	}

	nx, ny, dist := utils.Direction(e.X, e.Y, pl.X, pl.Y)
	if dist > e.Radius*2.5 {
		e.X += nx * e.Speed
		e.Y += ny * e.Speed
	}
}

// beginSkill 选择轮换中的下一个技能并进入预警
func (s *BossSystem) beginSkill(e *components.Enemy) {
	w := s.world
	b := e.Boss
	pl := w.Player

	rotation := Skills(b.Kind, b.Phase)
	if len(rotation) == 0 {
		return
	}
	skill := rotation[b.Rotation%len(rotation)]
	b.Rotation++
	timing := skillTimings[skill]
	b.StartSkill(skill, timing.Telegraph)

	zone := components.Zone{
		OwnerID: e.ID,
		X:       e.X,
		Y:       e.Y,
		Radius:  e.Radius * 2,
		Type:    components.ZoneVisual,
		Life:    timing.Telegraph,
	}
	switch skill {
	case components.SkillLockOn:
		b.LockOn.TargetX, b.LockOn.TargetY = pl.X, pl.Y
		zone.X, zone.Y, zone.Radius, zone.Tag = pl.X, pl.Y, 30, "lock_on"
	case components.SkillBarrage:
		zone.Tag = "barrage_warning"
	case components.SkillGravityWell:
		b.Gravity.X, b.Gravity.Y = pl.X, pl.Y
		zone.X, zone.Y, zone.Radius, zone.Tag = pl.X, pl.Y, gravityRadius, "gravity_well_warning"
	case components.SkillDash:
		nx, ny, _ := utils.Direction(e.X, e.Y, pl.X, pl.Y)
		if nx == 0 && ny == 0 {
			nx = 1
		}
		b.Dash.DirX, b.Dash.DirY = nx, ny
		zone.Tag = "dash_warning"
	case components.SkillSummon:
		b.Summon.Count = 3 + 2*(b.Phase-1)
		zone.Tag = "summon_warning"
	}
	b.TelegraphZone = entities.NewZone(w, zone).ID
}

// telegraph 预警期间锁定瞄准持续跟随玩家
func (s *BossSystem) telegraph(e *components.Enemy) {
	b := e.Boss
	if b.Skill != components.SkillLockOn {
		return
	}
	pl := s.world.Player
	b.LockOn.TargetX, b.LockOn.TargetY = pl.X, pl.Y
	if z := s.zone(b.TelegraphZone); z != nil {
		z.X, z.Y = pl.X, pl.Y
	}
}

// resolveStart 预警结束，移除预警区域并进入结算
func (s *BossSystem) resolveStart(e *components.Enemy) {
	w := s.world
	b := e.Boss
	s.removeTelegraph(b)

	b.Beat = components.BeatResolve
	b.BeatTimer = skillTimings[b.Skill].Resolve

	switch b.Skill {
	case components.SkillLockOn:
		b.LockOn.ShotsLeft = lockOnShots
		b.LockOn.ShotTimer = 0
	case components.SkillBarrage:
		b.Barrage.WavesLeft = barrageWaves
		b.Barrage.WaveTimer = 0
	case components.SkillGravityWell:
		entities.NewZone(w, components.Zone{
			OwnerID:      e.ID,
			X:            b.Gravity.X,
			Y:            b.Gravity.Y,
			Radius:       gravityRadius,
			Type:         components.ZoneHazard,
			Tag:          "gravity_well",
			Life:         b.BeatTimer,
			Damage:       e.Damage * 0.5,
			TickInterval: gravityTick,
			Pull:         gravityPull,
		})
	case components.SkillSummon:
		s.summon(e)
	}
}

// resolveTick 结算窗口内的逐帧效果
func (s *BossSystem) resolveTick(e *components.Enemy) {
	b := e.Boss

	switch b.Skill {
	case components.SkillLockOn:
		lo := &b.LockOn
		lo.ShotTimer--
		if lo.ShotTimer <= 0 && lo.ShotsLeft > 0 {
			angle := math.Atan2(lo.TargetY-e.Y, lo.TargetX-e.X)
			s.fire(e, angle, e.Def.ProjectileSpeed*lockOnSpeedFactor)
			lo.ShotsLeft--
			lo.ShotTimer = lockOnInterval
		}
	case components.SkillBarrage:
		br := &b.Barrage
		br.WaveTimer--
		if br.WaveTimer <= 0 && br.WavesLeft > 0 {
			for i := 0; i < barrageBullets; i++ {
				s.fire(e, br.Angle+2*math.Pi*float64(i)/barrageBullets, e.Def.ProjectileSpeed)
			}
			br.Angle += math.Pi / barrageBullets
			br.WavesLeft--
			br.WaveTimer = barrageInterval
		}
	}
}

func (s *BossSystem) finishSkill(e *components.Enemy) {
	b := e.Boss
	cooldown := skillTimings[b.Skill].Cooldown
	if b.Phase >= 2 {
		cooldown = max(int(float64(cooldown)*phaseCooldownRate), 1)
	}
	b.Beat = components.BeatCooldown
	b.BeatTimer = cooldown
}

func (s *BossSystem) fire(e *components.Enemy, angle, speed float64) {
	t := s.world.Tuning.Combat
	entities.NewProjectile(s.world, entities.ProjectileSpec{
		Owner:   e.ID,
		X:       e.X,
		Y:       e.Y,
		Angle:   angle,
		Speed:   speed,
		Radius:  t.EnemyProjectileRadius * 1.5,
		Damage:  e.Damage * 0.6,
		Life:    t.EnemyProjectileLife,
		IsEnemy: true,
	})
}

// summon 在 Boss 周围召唤小怪
func (s *BossSystem) summon(e *components.Enemy) {
	w := s.world
	n := e.Boss.Summon.Count
	ctx := ScalingFor(w)
	hpMul := s.difficulty.HPMultiplier(ctx)
	dmgMul := s.difficulty.DamageMultiplier(ctx)

	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := e.X + math.Cos(angle)*e.Radius*1.5
		y := e.Y + math.Sin(angle)*e.Radius*1.5
		if _, err := entities.NewEnemy(w, summonMinion, x, y, hpMul, dmgMul); err != nil {
			log.Printf("[BossSystem] ⚠️ Summon skipped: %v", err)
			return
		}
	}
}

// abandon 放弃当前技能（不结算）
func (s *BossSystem) abandon(e *components.Enemy) {
	s.removeTelegraph(e.Boss)
	e.Boss.AbandonSkill()
}

func (s *BossSystem) removeTelegraph(b *components.BossState) {
	if z := s.zone(b.TelegraphZone); z != nil {
		z.Dead = true
	}
	b.TelegraphZone = ecs.InvalidEntity
}

func (s *BossSystem) zone(id ecs.EntityID) *components.Zone {
	if id == ecs.InvalidEntity {
		return nil
	}
	for _, z := range s.world.Zones {
		if z.ID == id && !z.Dead {
			return z
		}
	}
	return nil
}
