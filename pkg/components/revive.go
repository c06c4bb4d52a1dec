package components

// RevivePhase 复活流程阶段
type RevivePhase int

const (
	RevivePhaseStart     RevivePhase = iota // 冻结并播放错误提示
	RevivePhaseCoinEnter                    // 金币入场倒计时（纯表现）
	RevivePhaseShatter                      // 碎裂：首帧一次性提交所有状态变更
	RevivePhaseCleanup                      // 淡出
)

// String 返回阶段名
func (p RevivePhase) String() string {
	switch p {
	case RevivePhaseStart:
		return "start"
	case RevivePhaseCoinEnter:
		return "coin_enter"
	case RevivePhaseShatter:
		return "shatter"
	case RevivePhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// ReviveState 复活流程状态
type ReviveState struct {
	Active    bool
	Phase     RevivePhase
	Timer     int  // 当前阶段剩余帧数
	Committed bool // shatter 是否已提交（每次激活只提交一次）
	LostGold  int  // 复活消耗的金币快照

	Activations int // 累计激活次数
	Commits     int // 累计提交次数
}
