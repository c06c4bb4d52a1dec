package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// TestNewParticleBurst 测试粒子数量与寿命
func TestNewParticleBurst(t *testing.T) {
	w := game.NewWorld(game.Options{})
	NewParticleBurst(w, 1, 2, 5, "death")

	assert.Len(t, w.Particles, 5)
	for _, p := range w.Particles {
		assert.Equal(t, w.Tuning.Combat.ParticleLife, p.Life)
		assert.Equal(t, "death", p.Kind)
	}
}

// TestNewFloatingText 测试飘字
func TestNewFloatingText(t *testing.T) {
	w := game.NewWorld(game.Options{})
	ft := NewFloatingText(w, 0, 0, "12", true)

	assert.Equal(t, "12", ft.Text)
	assert.True(t, ft.Crit)
	assert.Less(t, ft.VY, 0.0)
}

// TestNewZone 测试区域模板复制
func TestNewZone(t *testing.T) {
	w := game.NewWorld(game.Options{})
	tmpl := components.Zone{Type: components.ZoneHazard, Radius: 50, Life: 120, TickInterval: 30}

	z := NewZone(w, tmpl)

	assert.NotZero(t, z.ID)
	assert.Equal(t, 120, z.MaxLife)
	assert.Equal(t, 30, z.TickTimer)
	assert.Len(t, w.Zones, 1)
}
