package systems

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// CameraSystem 摄像机跟随
// 平滑插值跟随玩家；玩家瞬移后直接对齐。过场冻结期间仍然运行。
type CameraSystem struct {
	world *game.World
}

// NewCameraSystem 创建摄像机系统
func NewCameraSystem(w *game.World) *CameraSystem {
	return &CameraSystem{world: w}
}

// Update 更新摄像机位置
func (cs *CameraSystem) Update() {
	w := cs.world
	p := w.Player
	cam := &w.Camera

	if p.Teleported {
		cam.X, cam.Y = p.X, p.Y
		p.Teleported = false
		return
	}

	t := utils.Clamp(w.Tuning.Player.CameraLerp, 0, 1)
	cam.X = utils.Lerp(cam.X, p.X, t)
	cam.Y = utils.Lerp(cam.Y, p.Y, t)
}
