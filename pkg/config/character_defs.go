package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CharacterDef 角色静态定义
type CharacterDef struct {
	ID    string        `yaml:"-"`
	Name  string        `yaml:"name"`
	Icon  string        `yaml:"icon"`
	Base  StatModifiers `yaml:"base"`  // 基础属性（以修正形式表达，从零叠加）
	Items []string      `yaml:"items"` // 开局自带道具
}

// CharacterTable 角色内容表
type CharacterTable struct {
	Characters map[string]*CharacterDef `yaml:"characters"`
}

// Get 按ID查询角色定义
func (t *CharacterTable) Get(id string) (*CharacterDef, bool) {
	def, ok := t.Characters[id]
	return def, ok
}

// ParseCharacterTable 解析角色内容表
func ParseCharacterTable(data []byte) (*CharacterTable, error) {
	var table CharacterTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse characters YAML: %w", err)
	}
	for id, def := range table.Characters {
		if def == nil {
			return nil, fmt.Errorf("character %s: empty definition", id)
		}
		def.ID = id
		if def.Base.MaxHP <= 0 {
			return nil, fmt.Errorf("character %s: base maxHp must be positive", id)
		}
		if def.Base.AttackSpeed <= 0 {
			return nil, fmt.Errorf("character %s: base attackSpeed must be positive", id)
		}
	}
	return &table, nil
}

// LoadCharacterTable 从文件加载角色内容表
func LoadCharacterTable(path string) (*CharacterTable, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read characters file %s: %w", path, err)
	}
	return ParseCharacterTable(data)
}

// DefaultCharacterTable 返回默认角色表
func DefaultCharacterTable() *CharacterTable {
	base := StatModifiers{
		MaxHP:           100,
		Damage:          5,
		AttackSpeed:     2,
		ProjectileCount: 1,
		ProjectileSpeed: 8,
		AttackRange:     420,
		Speed:           3,
		Income:          1,
	}
	tank := base
	tank.MaxHP = 160
	tank.Armor = 2
	tank.Speed = 2.5
	tank.AttackSpeed = 1.5

	t := &CharacterTable{Characters: map[string]*CharacterDef{
		"default": {Name: "打工人", Icon: "🧑", Base: base},
		"tank":    {Name: "铁憨憨", Icon: "🗿", Base: tank, Items: []string{"cactus_suit"}},
	}}
	for id, def := range t.Characters {
		def.ID = id
	}
	return t
}
