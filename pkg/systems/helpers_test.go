package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
)

// newTestSim 创建使用默认配置（可修改）与固定种子的模拟
func newTestSim(t *testing.T, mutate func(c *config.Content)) *Simulation {
	t.Helper()
	content := config.DefaultContent()
	if mutate != nil {
		mutate(content)
	}
	w := game.NewWorld(game.Options{Seed: 1, Difficulty: "normal", Content: content})
	return NewSimulation(w)
}

// spawnAt 在指定位置放置一个敌人（冷却清零以便立即攻击）
func spawnAt(t *testing.T, w *game.World, id string, x, y float64) *components.Enemy {
	t.Helper()
	e, err := entities.NewEnemy(w, id, x, y, 1, 1)
	require.NoError(t, err)
	e.AttackCooldown = 0
	return e
}

// countEnemyProjectiles 统计敌方子弹数量
func countEnemyProjectiles(w *game.World) int {
	n := 0
	for _, p := range w.Projectiles {
		if p.IsEnemy && !p.Dead {
			n++
		}
	}
	return n
}

// recorder 记录通知事件
type recorder struct {
	events []game.Event
}

func (r *recorder) Notify(ev game.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(kind game.EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
