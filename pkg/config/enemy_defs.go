package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Behavior 敌人移动行为标签
type Behavior string

const (
	BehaviorChase  Behavior = "chase"  // 直线追击玩家（接触伤害）
	BehaviorRusher Behavior = "rusher" // 蓄力后冲刺（接触伤害）
	BehaviorCircle Behavior = "circle" // 绕玩家旋转逼近（接触伤害）
	BehaviorMinion Behavior = "minion" // 分裂产生的小怪（接触伤害）
	BehaviorRanged Behavior = "ranged" // 保持距离的远程单位
	BehaviorFlee   Behavior = "flee"   // 逃离玩家（奖励怪）
	BehaviorBoss   Behavior = "boss"   // 由 Boss 状态机驱动
)

// IsMelee 是否为纯接触伤害行为（不走攻击模式分发）
func (b Behavior) IsMelee() bool {
	switch b {
	case BehaviorChase, BehaviorRusher, BehaviorCircle, BehaviorMinion:
		return true
	}
	return false
}

// AttackPattern 远程攻击模式
type AttackPattern string

const (
	PatternNone    AttackPattern = ""        // 无远程攻击
	PatternSingle  AttackPattern = "single"  // 单发
	PatternSpread  AttackPattern = "spread"  // 三向散射
	PatternBurst   AttackPattern = "burst"   // 多字符连射
	PatternExplode AttackPattern = "explode" // 单发爆炸弹
)

// BossKind Boss 原型
type BossKind string

const (
	BossNone   BossKind = ""
	Boss404    BossKind = "boss_404"    // 404 Not Found：锁定狙击 → 引力井 + 冲刺
	BossStonks BossKind = "boss_stonks" // Stonks：弹幕雨 → 召唤 + 冲刺
)

// EnemyDef 敌人静态定义（只读内容表）
type EnemyDef struct {
	ID              string        `yaml:"-"`               // 由 map key 填充
	Emoji           string        `yaml:"emoji"`           // 显示图标
	Behavior        Behavior      `yaml:"behavior"`        // 移动行为
	AttackPattern   AttackPattern `yaml:"attackPattern"`   // 远程攻击模式
	HP              float64       `yaml:"hp"`              // 基础血量
	Damage          float64       `yaml:"damage"`          // 基础伤害（接触或子弹）
	Speed           float64       `yaml:"speed"`           // 移动速度（像素/帧）
	Radius          float64       `yaml:"radius"`          // 碰撞半径
	Score           int           `yaml:"score"`           // 分值
	Gold            int           `yaml:"gold"`            // 基础击杀金币
	Tier            int           `yaml:"tier"`            // 阶数（用于波次解锁）
	AttackRange     float64       `yaml:"attackRange"`     // 远程攻击距离
	AttackCooldown  int           `yaml:"attackCooldown"`  // 攻击冷却帧数
	ProjectileSpeed float64       `yaml:"projectileSpeed"` // 子弹速度
	BurstText       string        `yaml:"burstText"`       // burst 模式逐字发射的字符
	BurstDelay      int           `yaml:"burstDelay"`      // burst 模式字符间隔帧数
	BlastRadius     float64       `yaml:"blastRadius"`     // 爆炸弹 / 自爆半径
	DeathExplode    bool          `yaml:"deathExplode"`    // 死亡时爆炸（击退 + 眩晕）
	SplitInto       string        `yaml:"splitInto"`       // 死亡分裂的子敌人ID
	SplitCount      int           `yaml:"splitCount"`      // 分裂数量
	Elite           bool          `yaml:"elite"`           // 精英
	Capture         bool          `yaml:"capture"`         // 精英抓取机制
	Bonus           bool          `yaml:"bonus"`           // 奖励怪（额外金币）
	BonusGoldFactor float64       `yaml:"bonusGoldFactor"` // 奖励怪金币倍率
	Boss            BossKind      `yaml:"boss"`            // Boss 原型
	PhaseThreshold  float64       `yaml:"phaseThreshold"`  // Boss 进入下一阶段的血量比例
	MaxPhase        int           `yaml:"maxPhase"`        // Boss 阶段数
}

// IsBoss 是否为 Boss
func (d *EnemyDef) IsBoss() bool {
	return d.Boss != BossNone
}

// EnemyTable 敌人内容表
type EnemyTable struct {
	Enemies map[string]*EnemyDef `yaml:"enemies"`
}

// Get 按ID查询敌人定义
func (t *EnemyTable) Get(id string) (*EnemyDef, bool) {
	def, ok := t.Enemies[id]
	return def, ok
}

// IDs 返回排序后的敌人ID列表
func (t *EnemyTable) IDs() []string {
	ids := make([]string, 0, len(t.Enemies))
	for id := range t.Enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseEnemyTable 解析敌人内容表
func ParseEnemyTable(data []byte) (*EnemyTable, error) {
	var table EnemyTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse enemies YAML: %w", err)
	}
	table.fillIDs()
	if err := validateEnemyTable(&table); err != nil {
		return nil, fmt.Errorf("invalid enemy table: %w", err)
	}
	return &table, nil
}

// LoadEnemyTable 从文件加载敌人内容表
func LoadEnemyTable(path string) (*EnemyTable, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemies file %s: %w", path, err)
	}
	return ParseEnemyTable(data)
}

func (t *EnemyTable) fillIDs() {
	for id, def := range t.Enemies {
		if def != nil {
			def.ID = id
		}
	}
}

// validateEnemyTable 验证敌人内容表
func validateEnemyTable(t *EnemyTable) error {
	if len(t.Enemies) == 0 {
		return fmt.Errorf("at least one enemy is required")
	}
	for id, def := range t.Enemies {
		if def == nil {
			return fmt.Errorf("enemy %s: empty definition", id)
		}
		if def.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %v", id, def.HP)
		}
		if def.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %v", id, def.Radius)
		}
		if def.Behavior.IsMelee() && def.AttackPattern != PatternNone {
			return fmt.Errorf("enemy %s: melee behavior %s cannot have attack pattern %s", id, def.Behavior, def.AttackPattern)
		}
		if def.AttackPattern == PatternBurst && (def.BurstText == "" || def.BurstDelay < 1) {
			return fmt.Errorf("enemy %s: burst pattern requires burstText and burstDelay", id)
		}
		if def.SplitInto != "" {
			if _, ok := t.Enemies[def.SplitInto]; !ok {
				return fmt.Errorf("enemy %s: splitInto references unknown enemy %s", id, def.SplitInto)
			}
		}
		if def.IsBoss() {
			if def.MaxPhase < 1 {
				return fmt.Errorf("boss %s: maxPhase must be at least 1", id)
			}
			if def.PhaseThreshold < 0 || def.PhaseThreshold >= 1 {
				return fmt.Errorf("boss %s: phaseThreshold must be within [0,1)", id)
			}
		}
	}
	return nil
}

// DefaultEnemyTable 返回默认敌人表
func DefaultEnemyTable() *EnemyTable {
	t := &EnemyTable{Enemies: map[string]*EnemyDef{
		"doge": {
			Emoji: "🐕", Behavior: BehaviorChase, HP: 10, Damage: 5, Speed: 1.6, Radius: 14,
			Score: 10, Gold: 1, Tier: 1,
		},
		"cat_rush": {
			Emoji: "🐈", Behavior: BehaviorRusher, HP: 8, Damage: 7, Speed: 1.4, Radius: 13,
			Score: 15, Gold: 1, Tier: 1, AttackRange: 220, AttackCooldown: 90,
		},
		"orbit_frog": {
			Emoji: "🐸", Behavior: BehaviorCircle, HP: 14, Damage: 6, Speed: 1.8, Radius: 14,
			Score: 15, Gold: 2, Tier: 2,
		},
		"mini_doge": {
			Emoji: "🐶", Behavior: BehaviorMinion, HP: 4, Damage: 3, Speed: 2.2, Radius: 9,
			Score: 3, Gold: 0, Tier: 1,
		},
		"amogus": {
			Emoji: "📮", Behavior: BehaviorChase, HP: 24, Damage: 6, Speed: 1.2, Radius: 18,
			Score: 25, Gold: 2, Tier: 2, SplitInto: "mini_doge", SplitCount: 3,
		},
		"creeper": {
			Emoji: "💣", Behavior: BehaviorChase, HP: 12, Damage: 12, Speed: 1.5, Radius: 15,
			Score: 20, Gold: 2, Tier: 2, DeathExplode: true, BlastRadius: 90,
		},
		"pepe_sniper": {
			Emoji: "🐸", Behavior: BehaviorRanged, AttackPattern: PatternSingle, HP: 12, Damage: 6,
			Speed: 1.1, Radius: 14, Score: 20, Gold: 2, Tier: 2,
			AttackRange: 360, AttackCooldown: 100, ProjectileSpeed: 4,
		},
		"troll_spread": {
			Emoji: "👹", Behavior: BehaviorRanged, AttackPattern: PatternSpread, HP: 18, Damage: 5,
			Speed: 1.0, Radius: 15, Score: 25, Gold: 3, Tier: 3,
			AttackRange: 280, AttackCooldown: 120, ProjectileSpeed: 3.5,
		},
		"nyan_burst": {
			Emoji: "🌈", Behavior: BehaviorRanged, AttackPattern: PatternBurst, HP: 16, Damage: 4,
			Speed: 1.2, Radius: 14, Score: 30, Gold: 3, Tier: 3,
			AttackRange: 320, AttackCooldown: 150, ProjectileSpeed: 4.5, BurstText: "NYAN", BurstDelay: 6,
		},
		"bomb_duck": {
			Emoji: "🦆", Behavior: BehaviorRanged, AttackPattern: PatternExplode, HP: 20, Damage: 10,
			Speed: 0.9, Radius: 15, Score: 30, Gold: 3, Tier: 3,
			AttackRange: 300, AttackCooldown: 160, ProjectileSpeed: 3, BlastRadius: 70,
		},
		"gold_goblin": {
			Emoji: "💰", Behavior: BehaviorFlee, HP: 30, Damage: 0, Speed: 1.7, Radius: 14,
			Score: 50, Gold: 5, Tier: 2, Bonus: true, BonusGoldFactor: 5,
		},
		"elite_hand": {
			Emoji: "🫳", Behavior: BehaviorChase, HP: 120, Damage: 10, Speed: 1.0, Radius: 24,
			Score: 150, Gold: 15, Tier: 4, Elite: true, Capture: true,
		},
		"boss_stonks": {
			Emoji: "📈", Behavior: BehaviorBoss, HP: 1500, Damage: 12, Speed: 1.1, Radius: 48,
			Score: 2000, Gold: 60, Tier: 5, Boss: BossStonks, MaxPhase: 2, PhaseThreshold: 0.5,
			ProjectileSpeed: 3.5,
		},
		"boss_404": {
			Emoji: "❓", Behavior: BehaviorBoss, HP: 3000, Damage: 15, Speed: 1.3, Radius: 52,
			Score: 5000, Gold: 120, Tier: 5, Boss: Boss404, MaxPhase: 2, PhaseThreshold: 0.5,
			ProjectileSpeed: 6,
		},
	}}
	t.fillIDs()
	return t
}
