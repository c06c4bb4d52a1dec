package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// StatsStore 累计统计的持久化
// 负责 Stats 的加载与保存；保存时机由调用方决定
type StatsStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	stats        Stats
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "aggregate"
)

// NewStatsStore 创建统计存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *StatsStore: 统计存储实例（加载失败时使用零值统计，不影响创建）
func NewStatsStore(gdataManager *gdata.Manager) *StatsStore {
	st := &StatsStore{gdataManager: gdataManager}
	if err := st.Load(); err != nil {
		log.Printf("[StatsStore] Warning: Failed to load stats: %v (starting from zero)", err)
	}
	return st
}

// Load 从 gdata 加载统计
//
// 如果 gdataManager 为 nil 或数据不存在，统计归零
//
// 返回：
//   - error: 读取或反序列化失败
func (st *StatsStore) Load() error {
	st.stats = Stats{}
	if st.gdataManager == nil {
		return nil
	}
	if !st.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := st.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	st.stats = loaded
	log.Printf("[StatsStore] Stats loaded: kills=%d gold=%d highestWave=%d",
		loaded.TotalKills, loaded.GoldEarned, loaded.HighestWave)
	return nil
}

// Save 保存统计到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (st *StatsStore) Save() error {
	if st.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&st.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := st.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Stats 返回当前统计
func (st *StatsStore) Stats() Stats {
	return st.stats
}

// Capture 从模拟上下文采集统计（最高波次取较大值）
func (st *StatsStore) Capture(w *World) {
	highest := max(st.stats.HighestWave, w.Stats.HighestWave)
	st.stats = w.Stats
	st.stats.HighestWave = highest
}

// Restore 把已保存的统计写回模拟上下文
func (st *StatsStore) Restore(w *World) {
	w.Stats = st.stats
}
