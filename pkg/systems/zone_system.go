package systems

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// ZoneSystem 区域效果系统
//
// 区域按寿命老化；所属实体死亡时随之移除。伤害区域按间隔伤害区域内的玩家
// （玩家处于任意保护区域时免疫），带牵引的伤害区域把玩家拉向中心。
// 纯表现区域只参与寿命管理。
type ZoneSystem struct {
	world  *game.World
	combat *CombatSystem
}

// NewZoneSystem 创建区域系统
func NewZoneSystem(w *game.World, combat *CombatSystem) *ZoneSystem {
	return &ZoneSystem{world: w, combat: combat}
}

// Update 每帧更新所有区域
func (s *ZoneSystem) Update() {
	w := s.world
	pl := w.Player
	protected := s.InSafeZone(pl.X, pl.Y)

	for _, z := range w.Zones {
		if z.Dead {
			continue
		}
		if z.OwnerID != ecs.InvalidEntity && !w.Entities.IsAlive(z.OwnerID) {
			z.Dead = true
			continue
		}
		z.Life--
		if z.Life <= 0 {
			z.Dead = true
			continue
		}
		if z.Type != components.ZoneHazard || !pl.IsAlive() {
			continue
		}
		if !s.Contains(z, pl.X, pl.Y, pl.Radius) {
			continue
		}

		if z.Pull > 0 {
			nx, ny, dist := utils.Direction(pl.X, pl.Y, z.X, z.Y)
			step := min(z.Pull, dist)
			pl.X += nx * step
			pl.Y += ny * step
		}

		if z.TickTimer > 0 {
			z.TickTimer--
		}
		if z.TickTimer <= 0 {
			z.TickTimer = max(z.TickInterval, 1)
			if !protected {
				s.combat.DamagePlayer(z.Damage, w.FindEnemy(z.OwnerID))
			}
		}
	}

	w.Zones = ecs.RemoveIf(w.Zones,
		func(z *components.Zone) bool { return z.Dead },
		func(z *components.Zone) { w.Entities.DestroyEntity(z.ID) })
}

// Contains 圆形 (x, y, r) 是否与区域重叠
func (s *ZoneSystem) Contains(z *components.Zone, x, y, r float64) bool {
	return utils.CirclesOverlap(z.X, z.Y, z.Radius, x, y, r)
}

// InSafeZone 点是否处于任意保护区域
func (s *ZoneSystem) InSafeZone(x, y float64) bool {
	for _, z := range s.world.Zones {
		if !z.Dead && z.Type == components.ZoneSafe && s.Contains(z, x, y, 0) {
			return true
		}
	}
	return false
}
