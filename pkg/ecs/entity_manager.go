package ecs

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// InvalidEntity 无效实体ID
const InvalidEntity EntityID = 0

// EntityManager 管理实体ID的分配与存活状态
//
// 实体数据本身存放在 game.World 的切片里（由对象池复用），
// EntityManager 只负责：
//   - 分配单调递增、永不复用的ID（对象被池复用时会换一个新ID）
//   - 记录哪些ID仍然存活，供引用方（如 Zone.OwnerID）判断目标是否已消失
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	alive map[EntityID]struct{}
	// 本帧销毁的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             make(map[EntityID]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// DestroyEntity 立即把实体标记为死亡
// ID 会被记录到本帧销毁列表，直到 RemoveMarkedEntities 清空
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, ok := em.alive[id]; !ok {
		return
	}
	delete(em.alive, id)
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 检查实体是否存活
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.alive)
}

// DestroyedThisFrame 返回本帧已销毁的实体ID（只读视图）
func (em *EntityManager) DestroyedThisFrame() []EntityID {
	return em.entitiesToDestroy
}

// RemoveMarkedEntities 清空本帧销毁列表，返回清理数量
// 由模拟驱动在每帧末尾调用
func (em *EntityManager) RemoveMarkedEntities() int {
	n := len(em.entitiesToDestroy)
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return n
}
