package components

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// AttackState 敌人攻击状态机
//
// idle/moving → cooldown → firing → (casting) → cooldown
type AttackState int

const (
	AttackIdle     AttackState = iota // 移动中 / 玩家不在射程
	AttackCooldown                    // 冷却中
	AttackFiring                      // 本帧开火
	AttackCasting                     // 模式专属的持续施法（burst 队列清空前锁定移动）
)

// String 返回状态名
func (s AttackState) String() string {
	switch s {
	case AttackIdle:
		return "idle"
	case AttackCooldown:
		return "cooldown"
	case AttackFiring:
		return "firing"
	case AttackCasting:
		return "casting"
	}
	return "unknown"
}

// CaptureState 精英抓取状态
type CaptureState struct {
	Active      bool    // 正在拖拽玩家
	DamageTaken float64 // 抓取期间承受的伤害（超过阈值挣脱）
}

// Enemy 敌人实体（对象池复用）
type Enemy struct {
	ID ecs.EntityID

	X, Y           float64
	VX, VY         float64
	KnockX, KnockY float64 // 击退速度，按摩擦衰减
	Radius         float64

	HP     float64
	MaxHP  float64
	Damage float64
	Speed  float64

	// Def 静态配置（只读）
	Def *config.EnemyDef

	Attack         AttackState
	AttackCooldown int
	StunTimer      int
	HitFlash       int

	// burst 模式待发射字符队列
	BurstQueue []rune
	BurstTimer int

	Orbit     float64 // circle 行为的环绕角
	DashTimer int     // rusher 冲刺剩余帧数

	Capture CaptureState

	// Boss 非 Boss 为 nil
	Boss *BossState

	Dead bool // 本帧已死亡，等待回收
}

// ResetEnemy 对象池归还时的重置函数
func ResetEnemy(e *Enemy) {
	queue := e.BurstQueue[:0]
	*e = Enemy{}
	e.BurstQueue = queue
}

// IsStunned 是否处于眩晕
func (e *Enemy) IsStunned() bool {
	return e.StunTimer > 0
}

// IsBoss 是否为 Boss
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// HPRatio 血量比例（MaxHP 为零时返回 0）
func (e *Enemy) HPRatio() float64 {
	return utils.SafeRatio(e.HP, e.MaxHP)
}
