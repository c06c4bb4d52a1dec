package systems

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// ReviveSystem 复活流程
//
// 四个阶段 start → coin_enter → shatter → cleanup，激活期间 Update 返回 true，
// 模拟驱动据此跳过本帧其余系统。shatter 阶段的首帧一次性提交全部状态变更，
// 之后同一阶段的后续帧不会再次提交。
type ReviveSystem struct {
	world *game.World
}

// NewReviveSystem 创建复活系统
func NewReviveSystem(w *game.World) *ReviveSystem {
	return &ReviveSystem{world: w}
}

// CanRevive 是否满足复活条件：金币足够且本波未用过
func (s *ReviveSystem) CanRevive() bool {
	w := s.world
	p := w.Player
	return !w.Revive.Active && !p.ReviveUsed && p.Gold >= w.Tuning.Revive.Cost
}

// Start 尝试开始复活流程，条件不满足时返回 false
func (s *ReviveSystem) Start() bool {
	if !s.CanRevive() {
		return false
	}
	w := s.world
	r := &w.Revive
	p := w.Player

	p.ReviveUsed = true
	r.Active = true
	r.Committed = false
	r.LostGold = p.Gold
	r.Activations++
	s.enter(components.RevivePhaseStart)

	log.Printf("[ReviveSystem] Revive started (gold=%d)", p.Gold)
	w.Emit(game.Event{Kind: game.EventReviveStart, X: p.X, Y: p.Y, Value: float64(p.Gold)})
	return true
}

func (s *ReviveSystem) enter(phase components.RevivePhase) {
	t := s.world.Tuning.Revive
	r := &s.world.Revive
	r.Phase = phase
	switch phase {
	case components.RevivePhaseStart:
		r.Timer = t.StartFrames
	case components.RevivePhaseCoinEnter:
		r.Timer = t.CoinEnterFrames
	case components.RevivePhaseShatter:
		r.Timer = t.ShatterFrames
	case components.RevivePhaseCleanup:
		r.Timer = t.CleanupFrames
	}
}

// Update 推进复活流程
// 返回 true 表示流程占用了本帧（调用方应跳过其余模拟）
func (s *ReviveSystem) Update() bool {
	r := &s.world.Revive
	if !r.Active {
		return false
	}

	if r.Phase == components.RevivePhaseShatter && !r.Committed {
		s.commit()
	}

	r.Timer--
	if r.Timer > 0 {
		return true
	}

	switch r.Phase {
	case components.RevivePhaseStart:
		s.enter(components.RevivePhaseCoinEnter)
	case components.RevivePhaseCoinEnter:
		s.enter(components.RevivePhaseShatter)
	case components.RevivePhaseShatter:
		s.enter(components.RevivePhaseCleanup)
	case components.RevivePhaseCleanup:
		r.Active = false
		log.Printf("[ReviveSystem] Revive finished")
	}
	return true
}

// commit shatter 首帧：扣光金币、回血、清除敌方子弹、冲击波、无敌
func (s *ReviveSystem) commit() {
	w := s.world
	t := w.Tuning.Revive
	r := &w.Revive
	p := w.Player

	r.Committed = true
	r.Commits++
	w.Stats.Revives++

	p.Gold = 0
	p.HP = utils.Clamp(p.Stats.MaxHP*t.HealRatio, 1, p.Stats.MaxHP)
	p.Dying = false
	p.DeathTimer = 0
	p.InvulnTimer = t.InvulnFrames

	w.ClearEnemyProjectiles()
	KnockbackAndStun(w, p.X, p.Y, t.KnockbackRadius, t.Knockback, t.StunFrames)

	log.Printf("[ReviveSystem] Revive committed: lost %d gold, hp=%.0f", r.LostGold, p.HP)
	w.Emit(game.Event{Kind: game.EventReviveShatter, X: p.X, Y: p.Y, Value: float64(r.LostGold)})
}
