package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Difficulty 单个难度档位的倍率
type Difficulty struct {
	Name             string  `yaml:"name"`             // 显示名称
	HPMultiplier     float64 `yaml:"hpMultiplier"`     // 敌人血量倍率
	DamageMultiplier float64 `yaml:"damageMultiplier"` // 敌人伤害倍率
	GoldMultiplier   float64 `yaml:"goldMultiplier"`   // 击杀金币倍率
}

// Scaling 随波次增长的曲线参数
type Scaling struct {
	HPPerWave           float64 `yaml:"hpPerWave"`           // 每波血量线性增长
	DamagePerWave       float64 `yaml:"damagePerWave"`       // 每波伤害线性增长
	EndlessHPGrowth     float64 `yaml:"endlessHpGrowth"`     // 无尽模式每波血量指数增长底数
	EndlessDamageGrowth float64 `yaml:"endlessDamageGrowth"` // 无尽模式每波伤害指数增长底数
	EndlessGoldPerWave  float64 `yaml:"endlessGoldPerWave"`  // 无尽模式每波金币线性增长
	OvertimeGoldBonus   float64 `yaml:"overtimeGoldBonus"`   // 加时阶段金币加成倍率
}

// DifficultyConfig 难度配置文件结构
type DifficultyConfig struct {
	Difficulties map[string]Difficulty `yaml:"difficulties"` // 难度ID -> 倍率
	Scaling      Scaling               `yaml:"scaling"`
}

// DefaultDifficulty 返回默认难度表
func DefaultDifficulty() *DifficultyConfig {
	return &DifficultyConfig{
		Difficulties: map[string]Difficulty{
			"easy":   {Name: "简单", HPMultiplier: 0.8, DamageMultiplier: 0.7, GoldMultiplier: 1.2},
			"normal": {Name: "普通", HPMultiplier: 1.0, DamageMultiplier: 1.0, GoldMultiplier: 1.0},
			"hard":   {Name: "困难", HPMultiplier: 1.4, DamageMultiplier: 1.3, GoldMultiplier: 1.1},
			"hell":   {Name: "地狱", HPMultiplier: 2.0, DamageMultiplier: 1.8, GoldMultiplier: 1.25},
		},
		Scaling: Scaling{
			HPPerWave:           0.15,
			DamagePerWave:       0.08,
			EndlessHPGrowth:     1.12,
			EndlessDamageGrowth: 1.06,
			EndlessGoldPerWave:  0.05,
			OvertimeGoldBonus:   1.5,
		},
	}
}

// ParseDifficulty 解析难度配置
func ParseDifficulty(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}
	if err := validateDifficulty(&cfg); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}
	return &cfg, nil
}

// LoadDifficulty 从文件加载难度配置
func LoadDifficulty(path string) (*DifficultyConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file %s: %w", path, err)
	}
	return ParseDifficulty(data)
}

// validateDifficulty 验证难度配置
func validateDifficulty(cfg *DifficultyConfig) error {
	if len(cfg.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty is required")
	}
	for id, d := range cfg.Difficulties {
		if d.HPMultiplier <= 0 || d.DamageMultiplier <= 0 || d.GoldMultiplier <= 0 {
			return fmt.Errorf("difficulty %s: multipliers must be positive", id)
		}
	}
	if cfg.Scaling.EndlessHPGrowth < 1 || cfg.Scaling.EndlessDamageGrowth < 1 {
		return fmt.Errorf("endless growth factors must be >= 1")
	}
	return nil
}

// Get 获取指定难度，不存在时返回 false
func (c *DifficultyConfig) Get(id string) (Difficulty, bool) {
	d, ok := c.Difficulties[id]
	return d, ok
}
