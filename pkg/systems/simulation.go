package systems

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// Simulation 模拟驱动（每帧调用一次 Update）
//
// 固定顺序：波次导演 → 玩家 → 道具 on_tick → 敌人行为/Boss → 子弹 → 战斗结算
// → 掉落物 → 区域 → 表现 → 摄像机。
//
// 暂停层级：
//  1. IsPaused：整帧跳过
//  2. InCinematicTransition：只推进 Boss 过场与摄像机
//  3. 复活流程：拦截玩法系统
//
// 如果某个系统在帧中途触发了过场或复活，本帧后续的玩法系统不再运行。
type Simulation struct {
	world *game.World

	Difficulty  *DifficultyEngine
	Hooks       *ItemHookRegistry
	Drops       *DropSystem
	Boss        *BossSystem
	Waves       *WaveDirector
	Revive      *ReviveSystem
	Combat      *CombatSystem
	Player      *PlayerSystem
	Enemies     *EnemyBehaviorSystem
	Projectiles *ProjectileSystem
	Zones       *ZoneSystem
	Effects     *EffectsSystem
	Camera      *CameraSystem

	steps []func()
}

// NewSimulation 组装所有系统
func NewSimulation(w *game.World) *Simulation {
	s := &Simulation{world: w}

	s.Difficulty = NewDifficultyEngine(w.Content.Difficulty)
	s.Drops = NewDropSystem(w)
	s.Hooks = NewItemHookRegistry(s.Drops)
	s.Boss = NewBossSystem(w, s.Difficulty)
	s.Waves = NewWaveDirector(w, s.Difficulty, s.Hooks)
	s.Revive = NewReviveSystem(w)
	s.Combat = NewCombatSystem(w, s.Difficulty, s.Drops, s.Hooks, s.Boss, s.Waves, s.Revive)
	s.Player = NewPlayerSystem(w)
	s.Enemies = NewEnemyBehaviorSystem(w, s.Boss)
	s.Projectiles = NewProjectileSystem(w, s.Combat)
	s.Zones = NewZoneSystem(w, s.Combat)
	s.Effects = NewEffectsSystem(w)
	s.Camera = NewCameraSystem(w)

	s.steps = []func(){
		s.Waves.Update,
		s.Player.Update,
		s.tickHooks,
		s.Enemies.Update,
		s.Projectiles.Update,
		s.Combat.Update,
		s.Drops.Update,
		s.Zones.Update,
		s.Effects.Update,
	}
	return s
}

// World 返回模拟上下文
func (s *Simulation) World() *game.World {
	return s.world
}

// StartWave 开始第 n 波
func (s *Simulation) StartWave(n int) {
	s.Waves.StartWave(n)
}

// SetInput 设置玩家移动输入
func (s *Simulation) SetInput(x, y float64) {
	s.Player.SetInput(x, y)
}

func (s *Simulation) tickHooks() {
	w := s.world
	if w.Player.IsAlive() && w.Wave.Started && !w.Wave.Ended {
		s.Hooks.Dispatch(w, HookOnTick, nil, 0)
	}
}

// Update 推进一帧
func (s *Simulation) Update() {
	w := s.world
	if w.IsPaused {
		return
	}

	if w.InCinematicTransition {
		s.Boss.UpdateTransitions()
		s.Camera.Update()
		return
	}

	if s.Revive.Update() {
		return
	}

	w.Frame++
	interrupted := false
	for _, step := range s.steps {
		step()
		if w.InCinematicTransition || w.Revive.Active {
			interrupted = true
			break
		}
	}
	if !w.Revive.Active {
		s.Camera.Update()
	}
	w.Entities.RemoveMarkedEntities()

	if n := w.Tuning.Combat.LogFrameInterval; n > 0 && w.Frame%n == 0 {
		log.Printf("[Simulation] frame=%d wave=%d enemies=%d projectiles=%d drops=%d zones=%d interrupted=%v",
			w.Frame, w.Wave.Index, len(w.Enemies), len(w.Projectiles), len(w.Drops), len(w.Zones), interrupted)
	}
}
