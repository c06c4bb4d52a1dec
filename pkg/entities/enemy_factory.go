package entities

import (
	"fmt"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// NewEnemy 从对象池创建敌人并加入 World
//
// 参数:
//   - w: 模拟上下文
//   - id: 敌人ID（内容表 key）
//   - x, y: 生成位置
//   - hpMul, dmgMul: 难度倍率（由 DifficultyEngine 计算）
//
// 返回:
//   - *components.Enemy: 已加入 w.Enemies 的敌人
//   - error: 敌人ID不存在时返回错误，World 不会被修改
func NewEnemy(w *game.World, id string, x, y, hpMul, dmgMul float64) (*components.Enemy, error) {
	def, ok := w.Content.Enemies.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown enemy %q", id)
	}

	e := w.EnemyPool.Acquire()
	e.ID = w.Entities.CreateEntity()
	e.Def = def
	e.X, e.Y = x, y
	e.Radius = def.Radius
	e.MaxHP = max(def.HP*hpMul, 1)
	e.HP = e.MaxHP
	e.Damage = def.Damage * dmgMul
	e.Speed = def.Speed
	e.Attack = components.AttackIdle
	e.AttackCooldown = def.AttackCooldown
	e.Orbit = w.RandAngle()

	if def.IsBoss() {
		e.Boss = components.NewBossState(def.Boss)
	}

	w.Enemies = append(w.Enemies, e)
	return e, nil
}
