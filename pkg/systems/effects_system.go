package systems

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// particleDrag 粒子每帧速度衰减
const particleDrag = 0.92

// EffectsSystem 表现对象（粒子、飘字）的老化与回收
// 这些对象只供渲染读取，不参与玩法
type EffectsSystem struct {
	world *game.World
}

// NewEffectsSystem 创建表现系统
func NewEffectsSystem(w *game.World) *EffectsSystem {
	return &EffectsSystem{world: w}
}

// Update 每帧更新粒子与飘字
func (s *EffectsSystem) Update() {
	w := s.world

	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDrag
		p.VY *= particleDrag
		p.Life--
	}
	w.Particles = ecs.RemoveIf(w.Particles,
		func(p *components.Particle) bool { return p.Life <= 0 },
		w.ParticlePool.Release)

	for _, t := range w.Texts {
		t.Y += t.VY
		t.Life--
	}
	w.Texts = ecs.RemoveIf(w.Texts,
		func(t *components.FloatingText) bool { return t.Life <= 0 },
		w.TextPool.Release)
}
