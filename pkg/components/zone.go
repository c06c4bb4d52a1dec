package components

import "github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"

// ZoneType 区域类型
type ZoneType string

const (
	ZoneHazard ZoneType = "hazard" // 伤害区域
	ZoneSafe   ZoneType = "safe"   // 保护区域（屏蔽伤害区域）
	ZoneVisual ZoneType = "visual" // 纯表现（预警圈等）
)

// Zone 区域效果
// 具体子类型（Tag）只影响表现，模拟只关心位置、半径和类型
type Zone struct {
	ID      ecs.EntityID
	OwnerID ecs.EntityID // 所属实体（所属实体死亡时区域随之移除），0 表示无

	X, Y   float64
	Radius float64
	Type   ZoneType
	Tag    string

	Life    int
	MaxLife int

	Damage       float64 // 每次结算伤害
	TickInterval int     // 结算间隔帧数
	TickTimer    int
	Pull         float64 // 对玩家的牵引速度（引力井）

	Dead bool
}
