package components

// WaveStats 单波统计
type WaveStats struct {
	Kills           int
	DamageDealt     float64
	GoldEarned      int
	BonusGold       int
	DamageMitigated float64
}

// WaveState 波次状态
type WaveState struct {
	Index        int  // 当前波次（从1开始，0 表示未开始）
	Endless      bool // 无尽模式
	EndlessCount int  // 无尽模式已进行的波数（从1开始）
	Started      bool
	Ended        bool
	Overtime     bool // 加时阶段（金币加成）

	Stats WaveStats

	// 刷怪计划
	Queue         []string // 待刷新名单
	Scripted      int      // 名单总数
	Spawned       int      // 已刷新数量（含精英与 Boss）
	SpawnTimer    int
	SpawnInterval int
	BatchSize     int

	Elite        string
	EliteSpawned bool
	Boss         string
	BossSpawned  bool
	BossDefeated bool

	Frame               int // 本波已进行帧数
	FramesSinceLastKill int
}

// RosterExhausted 名单（含精英与 Boss）是否已全部刷出
func (w *WaveState) RosterExhausted() bool {
	return len(w.Queue) == 0 &&
		(w.Elite == "" || w.EliteSpawned) &&
		(w.Boss == "" || w.BossSpawned)
}

// EffectiveWave 难度计算使用的波次序号
func (w *WaveState) EffectiveWave() int {
	if w.Index < 1 {
		return 1
	}
	return w.Index
}
