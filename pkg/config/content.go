package config

import (
	"fmt"
	"log"
	"path"
)

// Content 模拟核心消费的全部只读配置
type Content struct {
	Tuning     *Tuning
	Difficulty *DifficultyConfig
	Enemies    *EnemyTable
	Items      *ItemTable
	Characters *CharacterTable
	Waves      *WaveTable
}

// DefaultContent 返回内置默认配置（不依赖嵌入资源，测试直接使用）
func DefaultContent() *Content {
	enemies := DefaultEnemyTable()
	return &Content{
		Tuning:     DefaultTuning(),
		Difficulty: DefaultDifficulty(),
		Enemies:    enemies,
		Items:      DefaultItemTable(),
		Characters: DefaultCharacterTable(),
		Waves:      DefaultWaveTable(),
	}
}

// 配置文件名
const (
	TuningFile     = "tuning.yaml"
	DifficultyFile = "difficulty.yaml"
	EnemiesFile    = "enemies.yaml"
	ItemsFile      = "items.yaml"
	CharactersFile = "characters.yaml"
	WavesFile      = "waves.yaml"
)

// LoadContent 从目录加载全部配置
//
// 参数：
//
//	dir - 配置目录（如 "data"）
//
// 返回：
//
//	*Content - 解析并验证后的配置
//	error - 任一文件读取、解析或验证失败
func LoadContent(dir string) (*Content, error) {
	tuning, err := LoadTuning(path.Join(dir, TuningFile))
	if err != nil {
		return nil, err
	}
	difficulty, err := LoadDifficulty(path.Join(dir, DifficultyFile))
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyTable(path.Join(dir, EnemiesFile))
	if err != nil {
		return nil, err
	}
	items, err := LoadItemTable(path.Join(dir, ItemsFile))
	if err != nil {
		return nil, err
	}
	characters, err := LoadCharacterTable(path.Join(dir, CharactersFile))
	if err != nil {
		return nil, err
	}
	waves, err := LoadWaveTable(path.Join(dir, WavesFile), enemies)
	if err != nil {
		return nil, err
	}

	c := &Content{
		Tuning:     tuning,
		Difficulty: difficulty,
		Enemies:    enemies,
		Items:      items,
		Characters: characters,
		Waves:      waves,
	}
	if err := c.validateReferences(); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", dir, err)
	}
	log.Printf("[Content] Loaded %d enemies, %d items, %d characters, %d waves from %s",
		len(enemies.Enemies), len(items.Items), len(characters.Characters), len(waves.Waves), dir)
	return c, nil
}

// validateReferences 检查跨表引用
func (c *Content) validateReferences() error {
	for id, ch := range c.Characters.Characters {
		for _, item := range ch.Items {
			if _, ok := c.Items.Get(item); !ok {
				return fmt.Errorf("character %s: unknown starting item %s", id, item)
			}
		}
	}
	return nil
}
