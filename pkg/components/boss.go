package components

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
)

// BossSkill Boss 技能
type BossSkill int

const (
	SkillNone        BossSkill = iota
	SkillLockOn                // 锁定瞄准的连续狙击
	SkillBarrage               // 环形弹幕
	SkillGravityWell           // 引力井（区域封锁）
	SkillDash                  // 预警后直线冲刺
	SkillSummon                // 召唤小怪
)

// String 返回技能名
func (s BossSkill) String() string {
	switch s {
	case SkillNone:
		return "none"
	case SkillLockOn:
		return "lock_on"
	case SkillBarrage:
		return "barrage"
	case SkillGravityWell:
		return "gravity_well"
	case SkillDash:
		return "dash"
	case SkillSummon:
		return "summon"
	}
	return "unknown"
}

// SkillBeat 技能三拍：预警 → 结算 → 冷却
type SkillBeat int

const (
	BeatReady     SkillBeat = iota // 等待选择下一个技能
	BeatTelegraph                  // 预警（无伤害）
	BeatResolve                    // 结算（伤害/效果窗口）
	BeatCooldown                   // 冷却
)

// String 返回节拍名
func (b SkillBeat) String() string {
	switch b {
	case BeatReady:
		return "ready"
	case BeatTelegraph:
		return "telegraph"
	case BeatResolve:
		return "resolve"
	case BeatCooldown:
		return "cooldown"
	}
	return "unknown"
}

// LockOnState 锁定狙击子状态
type LockOnState struct {
	TargetX, TargetY float64 // 预警时锁定的位置
	ShotsLeft        int
	ShotTimer        int
}

// BarrageState 环形弹幕子状态
type BarrageState struct {
	Angle     float64 // 当前旋转角
	WavesLeft int
	WaveTimer int
}

// GravityWellState 引力井子状态
type GravityWellState struct {
	X, Y float64
}

// DashState 冲刺子状态
type DashState struct {
	DirX, DirY float64
}

// SummonState 召唤子状态
type SummonState struct {
	Count int
}

// BossState Boss 运行时状态
//
// 每种技能有独立的强类型子状态，由 Skill 决定哪个有效；
// 开始新技能时对应子状态整体重置。
type BossState struct {
	Kind  config.BossKind
	Phase int // 从 1 开始

	// 阶段转换过场
	Transitioning   bool
	TransitionTimer int
	Shake           float64 // 过场动画抖动幅度（供表现层读取）

	Skill     BossSkill
	Beat      SkillBeat
	BeatTimer int
	Rotation  int // 当前阶段技能轮换下标

	// TelegraphZone 预警区域实体（Boss 死亡时随之移除）
	TelegraphZone ecs.EntityID

	LockOn  LockOnState
	Barrage BarrageState
	Gravity GravityWellState
	Dash    DashState
	Summon  SummonState
}

// NewBossState 创建 Boss 状态
func NewBossState(kind config.BossKind) *BossState {
	return &BossState{Kind: kind, Phase: 1}
}

// StartSkill 切换到新技能的预警拍并重置其子状态
func (b *BossState) StartSkill(skill BossSkill, telegraphFrames int) {
	b.Skill = skill
	b.Beat = BeatTelegraph
	b.BeatTimer = telegraphFrames
	switch skill {
	case SkillLockOn:
		b.LockOn = LockOnState{}
	case SkillBarrage:
		b.Barrage = BarrageState{}
	case SkillGravityWell:
		b.Gravity = GravityWellState{}
	case SkillDash:
		b.Dash = DashState{}
	case SkillSummon:
		b.Summon = SummonState{}
	}
}

// AbandonSkill 放弃当前技能（不结算）
func (b *BossState) AbandonSkill() {
	b.Skill = SkillNone
	b.Beat = BeatReady
	b.BeatTimer = 0
	b.TelegraphZone = ecs.InvalidEntity
}
