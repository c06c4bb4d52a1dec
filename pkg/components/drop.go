package components

import "github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"

// DropType 掉落物类型
type DropType string

const (
	DropGold      DropType = "gold"
	DropHealth    DropType = "health"
	DropBigHealth DropType = "big_health"
	DropLoveHeart DropType = "love_heart"
)

// IsCurrency 是否为货币类（磁吸范围更大、会合并）
func (t DropType) IsCurrency() bool {
	return t == DropGold
}

// IsHealing 是否为回血类
func (t DropType) IsHealing() bool {
	return t == DropHealth || t == DropBigHealth
}

// Drop 世界中的拾取物（对象池复用）
type Drop struct {
	ID  ecs.EntityID
	Seq uint64 // 生成序号，越小越旧（swap-remove 会打乱切片顺序）

	X, Y   float64
	VX, VY float64
	Radius float64

	Type  DropType
	Value int
	Life  int // 剩余帧数，归零后进入吸附模式

	Friction    float64 // 每帧速度衰减系数（0 表示不衰减）
	PickupDelay int     // 生成后免疫磁吸的剩余帧数

	Vacuuming   bool // 吸附模式：无限磁吸、固定速度飞向玩家
	VacuumTimer int  // 吸附模式剩余帧数，归零直接回收

	Dead      bool
	Collected bool // 被玩家拾取（区别于超时回收）
}
