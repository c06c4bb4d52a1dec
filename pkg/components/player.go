package components

import (
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// PlayerStats 玩家派生战斗属性
// 由角色基础属性与道具修正叠加得出（见 game.World.RecalculateStats）
type PlayerStats struct {
	MaxHP           float64
	MaxShield       float64
	Damage          float64
	AttackSpeed     float64 // 每秒攻击次数
	ProjectileCount int
	Pierce          int
	ProjectileSpeed float64
	AttackRange     float64
	Speed           float64
	Dodge           float64 // 闪避概率 0~1
	LifeSteal       float64 // 造成伤害的吸血比例
	Income          float64 // 金币倍率
	Reflect         float64 // 受到伤害的反伤比例
	Armor           float64 // 平减伤
	Magnet          float64 // 磁吸范围加成
}

// Player 玩家实体，由模拟核心独占
type Player struct {
	X, Y   float64
	VX, VY float64 // 输入速度方向（-1~1），由外部输入写入
	Radius float64

	HP     float64
	Shield float64
	Stats  PlayerStats
	// Growth 道具挂钩带来的永久成长，重算属性时叠加
	Growth config.StatModifiers

	Character string
	Gold      int

	// Inventory 按获得顺序排列的道具ID，允许重复（重复有意义）
	Inventory []string
	// ItemTimers 道具自定义计时器（按道具ID）
	ItemTimers map[string]int
	// ItemCounters 道具自定义计数器（按道具ID）
	ItemCounters map[string]int

	InvulnTimer    int  // 无敌剩余帧数
	Dying          bool // 死亡动画中
	DeathTimer     int  // 死亡动画剩余帧数
	Dead           bool // 已死亡（UI 轮询）
	OverclockTimer int  // 超频剩余帧数
	Teleported     bool // 本帧发生瞬移（摄像机直接对齐）
	AttackCooldown int  // 自动射击冷却帧数

	CapturedBy ecs.EntityID // 被精英抓取时的来源
	ReviveUsed bool         // 本波是否已使用复活
}

// NewPlayer 创建玩家
func NewPlayer(x, y, radius float64) *Player {
	return &Player{
		X:            x,
		Y:            y,
		Radius:       radius,
		Inventory:    make([]string, 0, 16),
		ItemTimers:   make(map[string]int),
		ItemCounters: make(map[string]int),
	}
}

// CountItem 返回拥有某道具的数量
func (p *Player) CountItem(id string) int {
	n := 0
	for _, item := range p.Inventory {
		if item == id {
			n++
		}
	}
	return n
}

// AddItem 获得道具（追加到末尾以保留获得顺序）
func (p *Player) AddItem(id string) {
	p.Inventory = append(p.Inventory, id)
}

// Heal 回复生命，返回实际回复量
func (p *Player) Heal(amount float64) float64 {
	if amount <= 0 || p.HP >= p.Stats.MaxHP {
		return 0
	}
	before := p.HP
	p.HP = utils.Clamp(p.HP+amount, 0, p.Stats.MaxHP)
	return p.HP - before
}

// AddShield 增加护盾，返回实际增加量
func (p *Player) AddShield(amount float64) float64 {
	if amount <= 0 || p.Shield >= p.Stats.MaxShield {
		return 0
	}
	before := p.Shield
	p.Shield = utils.Clamp(p.Shield+amount, 0, p.Stats.MaxShield)
	return p.Shield - before
}

// IsInvulnerable 是否处于无敌
func (p *Player) IsInvulnerable() bool {
	return p.InvulnTimer > 0
}

// IsAlive 是否仍可行动
func (p *Player) IsAlive() bool {
	return !p.Dying && !p.Dead
}

// HPRatio 血量比例（MaxHP 为零时返回 0）
func (p *Player) HPRatio() float64 {
	return utils.SafeRatio(p.HP, p.Stats.MaxHP)
}
