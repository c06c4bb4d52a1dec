package entities

import (
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// NewParticleBurst 在 (x, y) 生成 n 个向外飞散的粒子
func NewParticleBurst(w *game.World, x, y float64, n int, kind string) {
	life := w.Tuning.Combat.ParticleLife
	for i := 0; i < n; i++ {
		p := w.ParticlePool.Acquire()
		angle := w.RandAngle()
		speed := w.RandRange(1, 3)
		p.X, p.Y = x, y
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.Life = life
		p.MaxLife = life
		p.Kind = kind
		w.Particles = append(w.Particles, p)
	}
}

// NewFloatingText 生成上浮的伤害飘字
func NewFloatingText(w *game.World, x, y float64, text string, crit bool) *components.FloatingText {
	ft := w.TextPool.Acquire()
	ft.X, ft.Y = x, y
	ft.VY = -1
	ft.Text = text
	ft.Life = w.Tuning.Combat.FloatingTextLife
	ft.Crit = crit
	w.Texts = append(w.Texts, ft)
	return ft
}
