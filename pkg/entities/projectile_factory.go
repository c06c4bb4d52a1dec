package entities

import (
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// ProjectileSpec 子弹参数
type ProjectileSpec struct {
	Owner       ecs.EntityID
	X, Y        float64
	Angle       float64 // 飞行方向（弧度）
	Speed       float64
	Radius      float64
	Damage      float64
	Life        int
	Pierce      int
	IsEnemy     bool
	Explosive   bool
	BlastRadius float64
	Glyph       string
}

// NewProjectile 从对象池创建子弹并加入 World
func NewProjectile(w *game.World, spec ProjectileSpec) *components.Projectile {
	p := w.ProjectilePool.Acquire()
	p.ID = w.Entities.CreateEntity()
	p.OwnerID = spec.Owner
	p.X, p.Y = spec.X, spec.Y
	p.VX = math.Cos(spec.Angle) * spec.Speed
	p.VY = math.Sin(spec.Angle) * spec.Speed
	p.Radius = spec.Radius
	p.Damage = spec.Damage
	p.Life = spec.Life
	p.Pierce = spec.Pierce
	p.IsEnemy = spec.IsEnemy
	p.Explosive = spec.Explosive
	p.BlastRadius = spec.BlastRadius
	p.Glyph = spec.Glyph

	w.Projectiles = append(w.Projectiles, p)
	return p
}

// NewPlayerProjectile 按玩家当前属性发射一颗子弹
func NewPlayerProjectile(w *game.World, angle float64) *components.Projectile {
	pl := w.Player
	t := w.Tuning.Player
	return NewProjectile(w, ProjectileSpec{
		X:      pl.X,
		Y:      pl.Y,
		Angle:  angle,
		Speed:  pl.Stats.ProjectileSpeed,
		Radius: t.ProjectileRadius,
		Damage: pl.Stats.Damage,
		Life:   t.ProjectileLife,
		Pierce: pl.Stats.Pierce,
	})
}

// NewEnemyProjectile 敌人朝 angle 方向发射一颗子弹
func NewEnemyProjectile(w *game.World, e *components.Enemy, angle float64) *components.Projectile {
	t := w.Tuning.Combat
	return NewProjectile(w, ProjectileSpec{
		Owner:   e.ID,
		X:       e.X,
		Y:       e.Y,
		Angle:   angle,
		Speed:   e.Def.ProjectileSpeed,
		Radius:  t.EnemyProjectileRadius,
		Damage:  e.Damage,
		Life:    t.EnemyProjectileLife,
		IsEnemy: true,
	})
}
