package systems

import (
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

const (
	circleOrbitRadius = 150.0
	circleOrbitSpeed  = 0.02
	rushDashFrames    = 30
	rushSpeedFactor   = 2.5
	rangedKeepNear    = 0.5 // 远程单位低于该射程比例时后退
	rangedKeepFar     = 0.8 // 远程单位高于该射程比例时前进
	captureRecover    = 120 // 挣脱后重新抓取的间隔帧数
)

// EnemyBehaviorSystem 敌人行为系统
//
// 负责敌人的移动（按行为标签）与远程攻击状态机（按攻击模式分发）。
// 接触伤害类（chase/rusher/circle/minion）从不进入攻击分发，
// 它们只通过身体碰撞造成伤害，由 CombatSystem 处理。
// Boss 委托给 BossSystem。
type EnemyBehaviorSystem struct {
	world *game.World
	boss  *BossSystem
}

// NewEnemyBehaviorSystem 创建敌人行为系统
func NewEnemyBehaviorSystem(w *game.World, boss *BossSystem) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{world: w, boss: boss}
}

// Update 每帧更新所有敌人
func (s *EnemyBehaviorSystem) Update() {
	w := s.world
	// 行为中可能召唤新敌人，只处理本帧开始时已存在的
	n := len(w.Enemies)
	for i := 0; i < n; i++ {
		e := w.Enemies[i]
		if e.Dead {
			continue
		}
		s.tickTimers(e)

		if e.Boss != nil {
			s.boss.Update(e)
			continue
		}

		if e.IsStunned() {
			e.StunTimer--
			s.releaseCapture(e)
			continue
		}

		if e.Attack != components.AttackCasting {
			s.move(e)
		}
		if e.Def.Capture {
			s.updateCapture(e)
		}
		s.updateAttack(e)
	}
}

// tickTimers 受击闪白与击退衰减
func (s *EnemyBehaviorSystem) tickTimers(e *components.Enemy) {
	if e.HitFlash > 0 {
		e.HitFlash--
	}
	if e.KnockX != 0 || e.KnockY != 0 {
		e.X += e.KnockX
		e.Y += e.KnockY
		f := s.world.Tuning.Combat.KnockbackFriction
		e.KnockX *= f
		e.KnockY *= f
		if math.Abs(e.KnockX) < 0.05 && math.Abs(e.KnockY) < 0.05 {
			e.KnockX, e.KnockY = 0, 0
		}
	}
}

// move 按行为标签移动
func (s *EnemyBehaviorSystem) move(e *components.Enemy) {
	w := s.world
	pl := w.Player
	def := e.Def
	nx, ny, dist := utils.Direction(e.X, e.Y, pl.X, pl.Y)

	switch def.Behavior {
	case config.BehaviorChase, config.BehaviorMinion:
		e.VX, e.VY = nx*e.Speed, ny*e.Speed

	case config.BehaviorRusher:
		if e.DashTimer > 0 {
			e.DashTimer--
		} else {
			e.VX, e.VY = nx*e.Speed, ny*e.Speed
			if e.AttackCooldown > 0 {
				e.AttackCooldown--
			} else if dist <= def.AttackRange {
				// 冲刺方向在起跳时锁定
				e.DashTimer = rushDashFrames
				e.VX, e.VY = nx*e.Speed*rushSpeedFactor, ny*e.Speed*rushSpeedFactor
				e.AttackCooldown = def.AttackCooldown
			}
		}

	case config.BehaviorCircle:
		e.Orbit += circleOrbitSpeed
		radius := min(circleOrbitRadius, dist)
		tx := pl.X + math.Cos(e.Orbit)*radius*0.9
		ty := pl.Y + math.Sin(e.Orbit)*radius*0.9
		cx, cy, _ := utils.Direction(e.X, e.Y, tx, ty)
		e.VX, e.VY = cx*e.Speed, cy*e.Speed

	case config.BehaviorRanged:
		switch {
		case dist > def.AttackRange*rangedKeepFar:
			e.VX, e.VY = nx*e.Speed, ny*e.Speed
		case dist < def.AttackRange*rangedKeepNear:
			e.VX, e.VY = -nx*e.Speed, -ny*e.Speed
		default:
			e.VX, e.VY = 0, 0
		}

	case config.BehaviorFlee:
		e.VX, e.VY = -nx*e.Speed, -ny*e.Speed

	default:
		e.VX, e.VY = nx*e.Speed, ny*e.Speed
	}

	e.X = utils.Clamp(e.X+e.VX, e.Radius, w.Tuning.Map.Width-e.Radius)
	e.Y = utils.Clamp(e.Y+e.VY, e.Radius, w.Tuning.Map.Height-e.Radius)
}

// updateAttack 远程攻击状态机
// idle/moving → cooldown → firing → (casting) → cooldown
func (s *EnemyBehaviorSystem) updateAttack(e *components.Enemy) {
	def := e.Def
	if def.Behavior.IsMelee() || def.AttackPattern == config.PatternNone {
		return
	}

	if e.Attack == components.AttackCasting {
		s.drainBurst(e)
		return
	}

	if e.AttackCooldown > 0 {
		e.AttackCooldown--
		e.Attack = components.AttackCooldown
		return
	}

	pl := s.world.Player
	if !pl.IsAlive() {
		e.Attack = components.AttackIdle
		return
	}
	attackRange := def.AttackRange
	if def.AttackPattern == config.PatternSpread {
		attackRange *= s.world.Tuning.Combat.SpreadRangeFactor
	}
	if utils.DistSq(e.X, e.Y, pl.X, pl.Y) > attackRange*attackRange {
		e.Attack = components.AttackIdle
		return
	}

	e.Attack = components.AttackFiring
	s.fire(e)
	if e.Attack == components.AttackFiring {
		e.AttackCooldown = def.AttackCooldown
	}
}

// fire 按攻击模式分发
func (s *EnemyBehaviorSystem) fire(e *components.Enemy) {
	w := s.world
	pl := w.Player
	aim := math.Atan2(pl.Y-e.Y, pl.X-e.X)

	switch e.Def.AttackPattern {
	case config.PatternSingle:
		entities.NewEnemyProjectile(w, e, aim)

	case config.PatternSpread:
		spread := w.Tuning.Combat.SpreadAngle
		for _, offset := range [3]float64{-spread, 0, spread} {
			entities.NewEnemyProjectile(w, e, aim+offset)
		}

	case config.PatternBurst:
		e.BurstQueue = append(e.BurstQueue[:0], []rune(e.Def.BurstText)...)
		e.BurstTimer = 0
		e.Attack = components.AttackCasting
		s.drainBurst(e)

	case config.PatternExplode:
		p := entities.NewEnemyProjectile(w, e, aim)
		p.Explosive = true
		p.BlastRadius = e.Def.BlastRadius
	}
}

// drainBurst 逐字发射 burst 队列，队列清空后进入冷却
func (s *EnemyBehaviorSystem) drainBurst(e *components.Enemy) {
	if e.BurstTimer > 0 {
		e.BurstTimer--
		return
	}
	if len(e.BurstQueue) > 0 {
		pl := s.world.Player
		aim := math.Atan2(pl.Y-e.Y, pl.X-e.X)
		p := entities.NewEnemyProjectile(s.world, e, aim)
		p.Glyph = string(e.BurstQueue[0])
		n := copy(e.BurstQueue, e.BurstQueue[1:])
		e.BurstQueue = e.BurstQueue[:n]
		e.BurstTimer = e.Def.BurstDelay
	}
	if len(e.BurstQueue) == 0 {
		e.Attack = components.AttackCooldown
		e.AttackCooldown = e.Def.AttackCooldown
	}
}

// updateCapture 精英抓取：进入范围后把玩家拖向自己，承受足够伤害后挣脱
func (s *EnemyBehaviorSystem) updateCapture(e *components.Enemy) {
	w := s.world
	pl := w.Player
	t := w.Tuning.Combat
	dist := utils.Dist(e.X, e.Y, pl.X, pl.Y)

	if !e.Capture.Active {
		if e.AttackCooldown > 0 {
			e.AttackCooldown--
			return
		}
		if pl.IsAlive() && pl.CapturedBy == ecs.InvalidEntity && dist <= t.CaptureRange {
			e.Capture.Active = true
			e.Capture.DamageTaken = 0
			pl.CapturedBy = e.ID
		}
		return
	}

	if !pl.IsAlive() || e.Capture.DamageTaken >= t.CaptureBreakDamage || dist > t.CaptureRange*1.5 {
		s.releaseCapture(e)
		return
	}
	nx, ny, d := utils.Direction(pl.X, pl.Y, e.X, e.Y)
	step := min(t.CapturePull, max(d-e.Radius-pl.Radius, 0))
	pl.X += nx * step
	pl.Y += ny * step
}

func (s *EnemyBehaviorSystem) releaseCapture(e *components.Enemy) {
	if !e.Capture.Active {
		return
	}
	e.Capture = components.CaptureState{}
	e.AttackCooldown = captureRecover
	if s.world.Player.CapturedBy == e.ID {
		s.world.Player.CapturedBy = ecs.InvalidEntity
	}
}
