package entities

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// NewZone 以模板创建区域并加入 World
// 模板中的 ID 与 MaxLife 会被覆盖
func NewZone(w *game.World, tmpl components.Zone) *components.Zone {
	z := new(components.Zone)
	*z = tmpl
	z.ID = w.Entities.CreateEntity()
	z.MaxLife = tmpl.Life
	z.TickTimer = tmpl.TickInterval
	z.Dead = false
	w.Zones = append(w.Zones, z)
	return z
}
