package systems

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// DropSystem 掉落物与经济系统
//
// 负责生成（金币合并、限量类型 FIFO 淘汰、总量上限回收）、
// 每帧运动（摩擦、磁吸、吸附模式）以及拾取结算。
// 掉落物不会凭空消失：寿命耗尽后进入吸附模式飞向玩家，
// 吸附超时仍未被拾取才直接回收。
type DropSystem struct {
	world *game.World

	// recent 最近生成的掉落物（环形缓冲，按生成序号而不是切片位置判断新旧）
	recent     []recentDrop
	recentNext int
}

// recentDrop 生成时记录的序号用于识别已被回收复用的对象
type recentDrop struct {
	drop *components.Drop
	seq  uint64
}

// NewDropSystem 创建掉落物系统
func NewDropSystem(w *game.World) *DropSystem {
	return &DropSystem{world: w}
}

// Spawn 生成掉落物
//
// 金币优先合并到附近最近生成的金币上（只搜索最近生成的 MergeSearchWindow 个），
// 合并时累加数值、刷新寿命并给一个向上弹起的速度，不创建新实体。
//
// 参数:
//   - typ: 掉落类型
//   - x, y: 生成位置
//   - value: 数值（金币数、回血量、护盾量）
//
// 返回:
//   - *components.Drop: 新建或被合并的掉落物；value 非正时返回 nil
func (s *DropSystem) Spawn(typ components.DropType, x, y float64, value int) *components.Drop {
	if value <= 0 {
		return nil
	}
	w := s.world
	t := w.Tuning.Drop

	if typ.IsCurrency() {
		if d := s.findMergeTarget(x, y); d != nil {
			s.merge(d, value)
			return d
		}
	}

	if limit := s.limitFor(typ); limit > 0 {
		for s.countClass(typ) >= limit {
			if !s.removeOldest(func(d *components.Drop) bool { return sameClass(d.Type, typ) }) {
				break
			}
		}
	}

	// 总量硬上限：金币并入最新的金币，否则回收最旧的掉落物
	if t.MaxDrops > 0 && len(w.Drops) >= t.MaxDrops {
		if typ.IsCurrency() {
			if d := s.newestGold(); d != nil {
				s.merge(d, value)
				return d
			}
		}
		s.recycleOldest()
	}

	d := entities.NewDrop(w, typ, x, y, value)
	s.remember(d)
	return d
}

// remember 记录新生成的掉落物，只保留最近 MergeSearchWindow 个
func (s *DropSystem) remember(d *components.Drop) {
	n := s.world.Tuning.Drop.MergeSearchWindow
	if n <= 0 {
		return
	}
	entry := recentDrop{drop: d, seq: d.Seq}
	if len(s.recent) < n {
		s.recent = append(s.recent, entry)
	} else {
		s.recent[s.recentNext%len(s.recent)] = entry
	}
	s.recentNext++
}

// findMergeTarget 在最近生成的金币中寻找合并半径内的目标
func (s *DropSystem) findMergeTarget(x, y float64) *components.Drop {
	t := s.world.Tuning.Drop
	r2 := t.MergeRadius * t.MergeRadius

	n := len(s.recent)
	for i := 0; i < n; i++ {
		entry := s.recent[(s.recentNext-1-i)%n]
		d := entry.drop
		if d.Seq != entry.seq || s.world.DropPool.IsIdle(d) {
			continue
		}
		if d.Dead || d.Vacuuming || !d.Type.IsCurrency() {
			continue
		}
		if utils.DistSq(x, y, d.X, d.Y) <= r2 {
			return d
		}
	}
	return nil
}

func (s *DropSystem) merge(d *components.Drop, value int) {
	t := s.world.Tuning.Drop
	d.Value += value
	d.Life = t.GoldLife
	d.VY = t.MergePopVelocity
}

func (s *DropSystem) newestGold() *components.Drop {
	var newest *components.Drop
	for _, d := range s.world.Drops {
		if d.Dead || !d.Type.IsCurrency() {
			continue
		}
		if newest == nil || d.Seq > newest.Seq {
			newest = d
		}
	}
	return newest
}

func (s *DropSystem) limitFor(typ components.DropType) int {
	t := s.world.Tuning.Drop
	switch {
	case typ.IsHealing():
		return t.MaxHealthDrops
	case typ == components.DropLoveHeart:
		return t.MaxHeartDrops
	}
	return 0
}

func sameClass(a, b components.DropType) bool {
	if a.IsHealing() && b.IsHealing() {
		return true
	}
	return a == b
}

func (s *DropSystem) countClass(typ components.DropType) int {
	n := 0
	for _, d := range s.world.Drops {
		if !d.Dead && sameClass(d.Type, typ) {
			n++
		}
	}
	return n
}

// oldestIndex 返回满足条件的最旧掉落物下标（按生成序号）
func (s *DropSystem) oldestIndex(pred func(*components.Drop) bool) int {
	idx := -1
	for i, d := range s.world.Drops {
		if d.Dead || !pred(d) {
			continue
		}
		if idx < 0 || d.Seq < s.world.Drops[idx].Seq {
			idx = i
		}
	}
	return idx
}

// removeOldest 立即移除最旧的满足条件的掉落物（FIFO 淘汰）
func (s *DropSystem) removeOldest(pred func(*components.Drop) bool) bool {
	idx := s.oldestIndex(pred)
	if idx < 0 {
		return false
	}
	s.removeAt(idx)
	return true
}

// recycleOldest 回收最旧的掉落物：金币直接结算给玩家，其它类型丢弃
func (s *DropSystem) recycleOldest() {
	idx := s.oldestIndex(func(*components.Drop) bool { return true })
	if idx < 0 {
		return
	}
	d := s.world.Drops[idx]
	if d.Type.IsCurrency() {
		s.world.AddGold(d.Value, false)
	}
	s.removeAt(idx)
}

func (s *DropSystem) removeAt(i int) {
	w := s.world
	d := w.Drops[i]
	w.Entities.DestroyEntity(d.ID)
	w.Drops = ecs.SwapRemove(w.Drops, i)
	w.DropPool.Release(d)
}

// startVacuum 进入吸附模式
func (s *DropSystem) startVacuum(d *components.Drop) {
	if d.Vacuuming {
		return
	}
	d.Vacuuming = true
	d.VacuumTimer = s.world.Tuning.Drop.VacuumTimeout
	d.PickupDelay = 0
}

// Update 每帧更新所有掉落物
func (s *DropSystem) Update() {
	w := s.world
	t := w.Tuning.Drop

	// 背压：达到总量上限时把最旧的非吸附掉落物提前送入吸附模式
	if t.MaxDrops > 0 && len(w.Drops) >= t.MaxDrops {
		if idx := s.oldestIndex(func(d *components.Drop) bool { return !d.Vacuuming }); idx >= 0 {
			s.startVacuum(w.Drops[idx])
		}
	}

	for i := len(w.Drops) - 1; i >= 0; i-- {
		d := w.Drops[i]
		if !d.Dead {
			s.updateDrop(d)
		}
		if d.Dead {
			s.removeAt(i)
		}
	}
}

func (s *DropSystem) updateDrop(d *components.Drop) {
	w := s.world
	t := w.Tuning.Drop
	p := w.Player

	if d.PickupDelay > 0 {
		d.PickupDelay--
	}
	if !d.Vacuuming {
		d.Life--
		if d.Life <= 0 {
			s.startVacuum(d)
		}
	}

	forced := d.Vacuuming || w.WaveClearing
	nx, ny, dist := utils.Direction(d.X, d.Y, p.X, p.Y)

	switch {
	case forced:
		// 直接逼近，不做加速度渐变，保证及时回收
		step := min(t.VacuumSpeed, dist)
		d.VX, d.VY = nx*step, ny*step
	case d.PickupDelay <= 0 && dist < s.magnetRadius(d):
		d.VX += nx * t.MagnetAccel
		d.VY += ny * t.MagnetAccel
		d.VX, d.VY = utils.LimitSpeed(d.VX, d.VY, t.MagnetMaxSpeed)
	case d.Friction > 0:
		d.VX *= d.Friction
		d.VY *= d.Friction
	}
	d.X += d.VX
	d.Y += d.VY

	if p.IsAlive() && (forced || d.PickupDelay <= 0) {
		reach := t.PickupRadius
		if forced {
			reach = t.VacuumPickupRadius
		}
		reach += p.Radius
		if utils.DistSq(d.X, d.Y, p.X, p.Y) < reach*reach && s.collect(d) {
			d.Collected = true
			d.Dead = true
			return
		}
	}

	if d.Vacuuming {
		d.VacuumTimer--
		if d.VacuumTimer <= 0 {
			d.Dead = true
		}
	}
}

func (s *DropSystem) magnetRadius(d *components.Drop) float64 {
	t := s.world.Tuning.Drop
	r := t.MagnetRadiusOther
	if d.Type.IsCurrency() {
		r = t.MagnetRadiusGold
	}
	return max(r+s.world.Player.Stats.Magnet, 0)
}

// collect 结算拾取效果；无效果（已满）时返回 false，掉落物保留
func (s *DropSystem) collect(d *components.Drop) bool {
	w := s.world
	p := w.Player

	switch d.Type {
	case components.DropGold:
		w.AddGold(d.Value, false)
	case components.DropHealth, components.DropBigHealth:
		if p.Heal(float64(d.Value)) <= 0 {
			return false
		}
	case components.DropLoveHeart:
		if p.AddShield(float64(d.Value)) <= 0 {
			return false
		}
	default:
		log.Printf("[DropSystem] ⚠️ Unknown drop type %q, discarded", d.Type)
		return true
	}

	w.Emit(game.Event{Kind: game.EventPickup, X: d.X, Y: d.Y, Name: string(d.Type), Value: float64(d.Value)})
	return true
}

// CountType 统计某类型的存活掉落物数量
func (s *DropSystem) CountType(typ components.DropType) int {
	n := 0
	for _, d := range s.world.Drops {
		if !d.Dead && d.Type == typ {
			n++
		}
	}
	return n
}
