package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RosterEntry 波次名单中的一组敌人
type RosterEntry struct {
	Enemy string `yaml:"enemy"` // 敌人ID
	Count int    `yaml:"count"` // 数量
}

// WaveConfig 单波配置
type WaveConfig struct {
	Roster        []RosterEntry `yaml:"roster"`        // 本波刷新名单
	SpawnInterval int           `yaml:"spawnInterval"` // 刷怪间隔帧数（0 表示使用默认值）
	BatchSize     int           `yaml:"batchSize"`     // 每次刷新数量
	Elite         string        `yaml:"elite"`         // 名单过半时插入的精英（可空）
	Boss          string        `yaml:"boss"`          // 开场刷新的 Boss（可空，Boss 死亡即结束本波）
}

// TotalCount 名单总数（不含精英与 Boss）
func (w *WaveConfig) TotalCount() int {
	total := 0
	for _, e := range w.Roster {
		total += e.Count
	}
	return total
}

// EndlessConfig 无尽模式的名单生成参数
type EndlessConfig struct {
	Pool          []string `yaml:"pool"`          // 随机抽取的敌人ID
	BaseCount     int      `yaml:"baseCount"`     // 第一波无尽的敌人数量
	CountPerWave  int      `yaml:"countPerWave"`  // 每波增加数量
	SpawnInterval int      `yaml:"spawnInterval"` // 刷怪间隔帧数
	BatchSize     int      `yaml:"batchSize"`     // 每次刷新数量
	BossEvery     int      `yaml:"bossEvery"`     // 每隔多少波插入 Boss（0 不插入）
	Bosses        []string `yaml:"bosses"`        // 轮换的 Boss 列表
}

// WaveTable 波次配置文件结构
type WaveTable struct {
	Waves   []WaveConfig  `yaml:"waves"`
	Endless EndlessConfig `yaml:"endless"`
}

// Wave 获取第 n 波配置（从1开始）
func (t *WaveTable) Wave(n int) (WaveConfig, bool) {
	if n < 1 || n > len(t.Waves) {
		return WaveConfig{}, false
	}
	return t.Waves[n-1], true
}

// ParseWaveTable 解析波次配置，并检查名单引用的敌人是否存在
func ParseWaveTable(data []byte, enemies *EnemyTable) (*WaveTable, error) {
	var table WaveTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse waves YAML: %w", err)
	}
	if err := validateWaveTable(&table, enemies); err != nil {
		return nil, fmt.Errorf("invalid wave table: %w", err)
	}
	return &table, nil
}

// LoadWaveTable 从文件加载波次配置
func LoadWaveTable(path string, enemies *EnemyTable) (*WaveTable, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waves file %s: %w", path, err)
	}
	return ParseWaveTable(data, enemies)
}

// validateWaveTable 验证波次配置
// enemies 为 nil 时跳过引用检查
func validateWaveTable(t *WaveTable, enemies *EnemyTable) error {
	if len(t.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	known := func(id string) bool {
		if enemies == nil || id == "" {
			return true
		}
		_, ok := enemies.Get(id)
		return ok
	}
	for i, w := range t.Waves {
		if len(w.Roster) == 0 && w.Boss == "" {
			return fmt.Errorf("wave %d: roster is empty and no boss", i+1)
		}
		for _, e := range w.Roster {
			if e.Count < 1 {
				return fmt.Errorf("wave %d: enemy %s count must be at least 1", i+1, e.Enemy)
			}
			if !known(e.Enemy) {
				return fmt.Errorf("wave %d: unknown enemy %s", i+1, e.Enemy)
			}
		}
		if !known(w.Elite) {
			return fmt.Errorf("wave %d: unknown elite %s", i+1, w.Elite)
		}
		if !known(w.Boss) {
			return fmt.Errorf("wave %d: unknown boss %s", i+1, w.Boss)
		}
		if w.SpawnInterval < 0 || w.BatchSize < 0 {
			return fmt.Errorf("wave %d: spawnInterval and batchSize cannot be negative", i+1)
		}
	}
	for _, id := range t.Endless.Pool {
		if !known(id) {
			return fmt.Errorf("endless: unknown enemy %s", id)
		}
	}
	for _, id := range t.Endless.Bosses {
		if !known(id) {
			return fmt.Errorf("endless: unknown boss %s", id)
		}
	}
	return nil
}

// DefaultWaveTable 返回默认波次配置
func DefaultWaveTable() *WaveTable {
	return &WaveTable{
		Waves: []WaveConfig{
			{Roster: []RosterEntry{{Enemy: "doge", Count: 12}}, SpawnInterval: 45, BatchSize: 2},
			{Roster: []RosterEntry{{Enemy: "doge", Count: 14}, {Enemy: "cat_rush", Count: 6}}, SpawnInterval: 40, BatchSize: 2},
			{Roster: []RosterEntry{{Enemy: "doge", Count: 12}, {Enemy: "pepe_sniper", Count: 6}, {Enemy: "gold_goblin", Count: 1}}, SpawnInterval: 40, BatchSize: 3},
			{Roster: []RosterEntry{{Enemy: "orbit_frog", Count: 12}, {Enemy: "amogus", Count: 6}, {Enemy: "creeper", Count: 6}}, SpawnInterval: 36, BatchSize: 3},
			{Boss: "boss_stonks", Roster: []RosterEntry{{Enemy: "doge", Count: 10}}, SpawnInterval: 60, BatchSize: 2},
			{Roster: []RosterEntry{{Enemy: "troll_spread", Count: 8}, {Enemy: "cat_rush", Count: 12}, {Enemy: "creeper", Count: 8}}, SpawnInterval: 34, BatchSize: 3, Elite: "elite_hand"},
			{Roster: []RosterEntry{{Enemy: "nyan_burst", Count: 8}, {Enemy: "orbit_frog", Count: 16}, {Enemy: "gold_goblin", Count: 2}}, SpawnInterval: 32, BatchSize: 4},
			{Roster: []RosterEntry{{Enemy: "bomb_duck", Count: 8}, {Enemy: "amogus", Count: 12}, {Enemy: "pepe_sniper", Count: 8}}, SpawnInterval: 30, BatchSize: 4, Elite: "elite_hand"},
			{Roster: []RosterEntry{{Enemy: "doge", Count: 30}, {Enemy: "troll_spread", Count: 10}, {Enemy: "nyan_burst", Count: 10}}, SpawnInterval: 26, BatchSize: 5},
			{Boss: "boss_404", Roster: []RosterEntry{{Enemy: "mini_doge", Count: 20}}, SpawnInterval: 50, BatchSize: 3},
		},
		Endless: EndlessConfig{
			Pool:          []string{"doge", "cat_rush", "orbit_frog", "amogus", "creeper", "pepe_sniper", "troll_spread", "nyan_burst", "bomb_duck"},
			BaseCount:     60,
			CountPerWave:  10,
			SpawnInterval: 24,
			BatchSize:     5,
			BossEvery:     5,
			Bosses:        []string{"boss_stonks", "boss_404"},
		},
	}
}
