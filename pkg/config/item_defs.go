package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StatModifiers 声明式属性修正，角色基础属性与道具共用
// 同一道具重复拥有时按数量叠加
type StatModifiers struct {
	MaxHP           float64 `yaml:"maxHp"`
	MaxShield       float64 `yaml:"maxShield"`
	Damage          float64 `yaml:"damage"`
	AttackSpeed     float64 `yaml:"attackSpeed"` // 每秒攻击次数
	ProjectileCount int     `yaml:"projectileCount"`
	Pierce          int     `yaml:"pierce"`
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	AttackRange     float64 `yaml:"attackRange"`
	Speed           float64 `yaml:"speed"`
	Dodge           float64 `yaml:"dodge"`     // 闪避概率 0~1
	LifeSteal       float64 `yaml:"lifeSteal"` // 吸血比例
	Income          float64 `yaml:"income"`    // 金币倍率加成
	Reflect         float64 `yaml:"reflect"`   // 反伤比例
	Armor           float64 `yaml:"armor"`     // 平减伤
	Magnet          float64 `yaml:"magnet"`    // 磁吸范围加成
}

// Add 叠加另一组修正 n 次
func (m *StatModifiers) Add(o StatModifiers, n int) {
	f := float64(n)
	m.MaxHP += o.MaxHP * f
	m.MaxShield += o.MaxShield * f
	m.Damage += o.Damage * f
	m.AttackSpeed += o.AttackSpeed * f
	m.ProjectileCount += o.ProjectileCount * n
	m.Pierce += o.Pierce * n
	m.ProjectileSpeed += o.ProjectileSpeed * f
	m.AttackRange += o.AttackRange * f
	m.Speed += o.Speed * f
	m.Dodge += o.Dodge * f
	m.LifeSteal += o.LifeSteal * f
	m.Income += o.Income * f
	m.Reflect += o.Reflect * f
	m.Armor += o.Armor * f
	m.Magnet += o.Magnet * f
}

// ItemDef 道具静态定义
// Hooks 只声明挂钩种类，行为由 systems 包的注册表按 (道具ID, 挂钩) 分发
type ItemDef struct {
	ID     string             `yaml:"-"`
	Name   string             `yaml:"name"`
	Icon   string             `yaml:"icon"`
	Price  int                `yaml:"price"`
	Stats  StatModifiers      `yaml:"stats"`
	Hooks  []string           `yaml:"hooks"`  // on_kill / on_tick / on_wave_start / on_player_hit
	Params map[string]float64 `yaml:"params"` // 挂钩参数（概率、间隔等）
}

// Param 读取挂钩参数，不存在时返回默认值
func (d *ItemDef) Param(key string, def float64) float64 {
	if v, ok := d.Params[key]; ok {
		return v
	}
	return def
}

// ItemTable 道具内容表
type ItemTable struct {
	Items map[string]*ItemDef `yaml:"items"`
}

// Get 按ID查询道具定义
func (t *ItemTable) Get(id string) (*ItemDef, bool) {
	def, ok := t.Items[id]
	return def, ok
}

// validHookNames 合法的挂钩名称
var validHookNames = map[string]bool{
	"on_kill":       true,
	"on_tick":       true,
	"on_wave_start": true,
	"on_player_hit": true,
}

// ParseItemTable 解析道具内容表
func ParseItemTable(data []byte) (*ItemTable, error) {
	var table ItemTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}
	table.fillIDs()
	if err := validateItemTable(&table); err != nil {
		return nil, fmt.Errorf("invalid item table: %w", err)
	}
	return &table, nil
}

// LoadItemTable 从文件加载道具内容表
func LoadItemTable(path string) (*ItemTable, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file %s: %w", path, err)
	}
	return ParseItemTable(data)
}

func (t *ItemTable) fillIDs() {
	for id, def := range t.Items {
		if def != nil {
			def.ID = id
		}
	}
}

func validateItemTable(t *ItemTable) error {
	for id, def := range t.Items {
		if def == nil {
			return fmt.Errorf("item %s: empty definition", id)
		}
		for _, h := range def.Hooks {
			if !validHookNames[h] {
				return fmt.Errorf("item %s: unknown hook %q", id, h)
			}
		}
		if def.Stats.Dodge < 0 || def.Stats.Dodge > 1 {
			return fmt.Errorf("item %s: dodge must be within [0,1], got %v", id, def.Stats.Dodge)
		}
	}
	return nil
}

// DefaultItemTable 返回默认道具表
func DefaultItemTable() *ItemTable {
	t := &ItemTable{Items: map[string]*ItemDef{
		"lucky_cat": {
			Name: "招财猫", Icon: "🐱", Price: 25,
			Stats:  StatModifiers{Income: 0.1},
			Hooks:  []string{"on_kill"},
			Params: map[string]float64{"chance": 0.05},
		},
		"protein_powder": {
			Name: "蛋白粉", Icon: "💪", Price: 30,
			Hooks:  []string{"on_wave_start"},
			Params: map[string]float64{"maxHpPerWave": 2},
		},
		"piggy_bank": {
			Name: "存钱罐", Icon: "🐷", Price: 35,
			Hooks:  []string{"on_wave_start"},
			Params: map[string]float64{"interest": 0.05, "cap": 30},
		},
		"overclock_chip": {
			Name: "超频芯片", Icon: "🔥", Price: 40,
			Hooks:  []string{"on_tick"},
			Params: map[string]float64{"interval": 600},
		},
		"heart_locket": {
			Name: "爱心挂坠", Icon: "💖", Price: 30,
			Stats:  StatModifiers{MaxShield: 2},
			Hooks:  []string{"on_kill"},
			Params: map[string]float64{"killsPerHeart": 25},
		},
		"cactus_suit": {
			Name: "仙人掌外套", Icon: "🌵", Price: 30,
			Stats:  StatModifiers{Reflect: 0.2, Armor: 1},
			Hooks:  []string{"on_player_hit"},
			Params: map[string]float64{"burstRadius": 120, "burstDamage": 8},
		},
		"vampire_fang": {
			Name: "吸血獠牙", Icon: "🧛", Price: 45,
			Stats: StatModifiers{LifeSteal: 0.05},
		},
		"sneaker": {
			Name: "跑鞋", Icon: "👟", Price: 20,
			Stats: StatModifiers{Speed: 0.4, Dodge: 0.05},
		},
		"extra_mag": {
			Name: "扩容弹匣", Icon: "🔫", Price: 50,
			Stats: StatModifiers{ProjectileCount: 1, Damage: -1},
		},
		"drill_bit": {
			Name: "钻头", Icon: "🔩", Price: 35,
			Stats: StatModifiers{Pierce: 1},
		},
		"magnet": {
			Name: "磁铁", Icon: "🧲", Price: 15,
			Stats: StatModifiers{Magnet: 60},
		},
	}}
	t.fillIDs()
	return t
}
