package systems

import (
	"log"
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// FramesPerSecond 固定帧率（攻速按每秒次数配置）
const FramesPerSecond = 60

// PlayerSystem 玩家系统
// 负责输入移动、计时器倒数、死亡动画与自动射击
type PlayerSystem struct {
	world *game.World
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(w *game.World) *PlayerSystem {
	return &PlayerSystem{world: w}
}

// SetInput 设置移动输入（分量会被归一化）
func (s *PlayerSystem) SetInput(x, y float64) {
	p := s.world.Player
	if l := math.Hypot(x, y); l > 1 {
		x, y = x/l, y/l
	}
	p.VX, p.VY = x, y
}

// Teleport 瞬移玩家，摄像机在下一次更新时直接对齐
func (s *PlayerSystem) Teleport(x, y float64) {
	w := s.world
	p := w.Player
	p.X = utils.Clamp(x, p.Radius, w.Tuning.Map.Width-p.Radius)
	p.Y = utils.Clamp(y, p.Radius, w.Tuning.Map.Height-p.Radius)
	p.Teleported = true
}

// Update 每帧更新玩家
func (s *PlayerSystem) Update() {
	w := s.world
	p := w.Player

	if p.Dead {
		return
	}
	if p.Dying {
		p.DeathTimer--
		if p.DeathTimer <= 0 {
			p.Dying = false
			p.Dead = true
			log.Printf("[PlayerSystem] Player dead at wave %d", w.Wave.Index)
		}
		return
	}

	if p.InvulnTimer > 0 {
		p.InvulnTimer--
	}
	if p.OverclockTimer > 0 {
		p.OverclockTimer--
	}

	p.X = utils.Clamp(p.X+p.VX*p.Stats.Speed, p.Radius, w.Tuning.Map.Width-p.Radius)
	p.Y = utils.Clamp(p.Y+p.VY*p.Stats.Speed, p.Radius, w.Tuning.Map.Height-p.Radius)

	s.autoFire()
}

// AttackInterval 当前攻击间隔帧数（超频时攻速乘以倍率）
func (s *PlayerSystem) AttackInterval() int {
	w := s.world
	p := w.Player
	rate := p.Stats.AttackSpeed
	if p.OverclockTimer > 0 {
		rate *= w.Tuning.Player.OverclockMultiplier
	}
	if rate <= 0 {
		return math.MaxInt32
	}
	return max(int(math.Round(FramesPerSecond/rate)), 1)
}

// autoFire 冷却结束时向射程内最近的敌人扇形发射
func (s *PlayerSystem) autoFire() {
	w := s.world
	p := w.Player
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
		return
	}

	target := s.nearestEnemy(p.Stats.AttackRange)
	if target == nil {
		return
	}

	aim := math.Atan2(target.Y-p.Y, target.X-p.X)
	n := p.Stats.ProjectileCount
	spread := w.Tuning.Player.SpreadAngle
	start := aim - spread*float64(n-1)/2
	for i := 0; i < n; i++ {
		entities.NewPlayerProjectile(w, start+spread*float64(i))
	}
	p.AttackCooldown = s.AttackInterval()
}

// nearestEnemy 射程内最近的可攻击敌人
func (s *PlayerSystem) nearestEnemy(rangeLimit float64) *components.Enemy {
	w := s.world
	p := w.Player
	best := rangeLimit * rangeLimit
	var found *components.Enemy
	for _, e := range w.Enemies {
		if e.Dead || e.HP <= 0 || (e.Boss != nil && e.Boss.Transitioning) {
			continue
		}
		if d := utils.DistSq(p.X, p.Y, e.X, e.Y); d <= best {
			best = d
			found = e
		}
	}
	return found
}
