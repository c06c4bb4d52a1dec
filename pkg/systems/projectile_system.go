package systems

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// projectileBoundsMargin 子弹离开地图多远后回收
const projectileBoundsMargin = 50.0

// ProjectileSystem 子弹运动系统
// 积分位置、倒数寿命；寿命耗尽或飞出地图时销毁，爆炸弹寿命耗尽时就地引爆
type ProjectileSystem struct {
	world  *game.World
	combat *CombatSystem
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(w *game.World, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: w, combat: combat}
}

// Update 每帧更新所有子弹
func (s *ProjectileSystem) Update() {
	w := s.world
	for _, p := range w.Projectiles {
		// 引爆可能触发 Boss 过场，剩余子弹冻结
		if s.combat.halted() {
			break
		}
		if p.Dead {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.Life--

		switch {
		case !w.InBounds(p.X, p.Y, projectileBoundsMargin):
			p.Dead = true
		case p.Life <= 0:
			if p.Explosive {
				s.combat.Detonate(p)
			}
			p.Dead = true
		}
	}

	w.Projectiles = ecs.RemoveIf(w.Projectiles,
		func(p *components.Projectile) bool { return p.Dead },
		func(p *components.Projectile) {
			w.Entities.DestroyEntity(p.ID)
			w.ProjectilePool.Release(p)
		})
}
