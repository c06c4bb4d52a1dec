package components

import "github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"

// Projectile 子弹实体（对象池复用）
type Projectile struct {
	ID      ecs.EntityID
	OwnerID ecs.EntityID

	X, Y   float64
	VX, VY float64
	Radius float64
	Damage float64
	Life   int // 剩余帧数

	// Pierce 可额外穿透的目标数；命中数超过 Pierce 时销毁
	Pierce int
	// HitIDs 已命中的实体（去重，同一实体最多一次）
	HitIDs []ecs.EntityID

	IsEnemy     bool // 敌方子弹
	Explosive   bool
	BlastRadius float64
	Glyph       string // burst 模式的字符

	Dead bool
}

// ResetProjectile 对象池归还时的重置函数
func ResetProjectile(p *Projectile) {
	hits := p.HitIDs[:0]
	*p = Projectile{}
	p.HitIDs = hits
}

// HasHit 是否已命中过该实体
func (p *Projectile) HasHit(id ecs.EntityID) bool {
	for _, hit := range p.HitIDs {
		if hit == id {
			return true
		}
	}
	return false
}

// RecordHit 记录命中，重复命中返回 false
func (p *Projectile) RecordHit(id ecs.EntityID) bool {
	if p.HasHit(id) {
		return false
	}
	p.HitIDs = append(p.HitIDs, id)
	return true
}

// PierceExhausted 是否已达到最大命中数
func (p *Projectile) PierceExhausted() bool {
	return len(p.HitIDs) > p.Pierce
}
