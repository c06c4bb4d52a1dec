package entities

import (
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// NewDrop 创建掉落物（随机散射速度 + 磁吸免疫窗口）并加入 World
// 合并与数量上限由 DropSystem 负责
func NewDrop(w *game.World, typ components.DropType, x, y float64, value int) *components.Drop {
	t := w.Tuning.Drop

	d := w.DropPool.Acquire()
	d.ID = w.Entities.CreateEntity()
	d.Seq = w.NextDropSeq()
	d.Type = typ
	d.Value = value
	d.X, d.Y = x, y
	d.Radius = t.Radius
	d.Friction = t.Friction
	d.PickupDelay = t.PickupDelay

	angle := w.RandAngle()
	speed := w.RandRange(0.5, 1) * t.ScatterSpeed
	d.VX = speed * math.Cos(angle)
	d.VY = speed * math.Sin(angle)

	if typ.IsCurrency() {
		d.Life = t.GoldLife
	} else {
		d.Life = t.PickupLife
	}

	w.Drops = append(w.Drops, d)
	return d
}
