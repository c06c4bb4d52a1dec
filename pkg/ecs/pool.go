package ecs

import (
	"errors"
	"log"
)

// ErrDoubleRelease 同一个对象被重复归还到对象池
var ErrDoubleRelease = errors.New("ecs: object released twice")

// DebugPools 为 true 时新建的对象池处于严格模式：误用直接 panic
// 发布版本保持 false：误用只记录日志，对象池状态不受影响
var DebugPools = false

// PoolStats 对象池统计信息
type PoolStats struct {
	Created int // 新构造的对象数量
	Reused  int // 从池中复用的次数
	Idle    int // 当前池中空闲对象数量
}

// Pool 泛型对象池
//
// Acquire 优先返回回收的对象，池为空时构造新对象；
// Release 重置对象的瞬时字段后放回池中。
// 归还后的对象不得再被任何存活状态引用。
type Pool[T any] struct {
	name  string
	free  []*T
	idle  map[*T]struct{}
	newFn func() *T
	reset func(*T)

	// Strict 严格模式：重复归还时 panic
	Strict bool

	created int
	reused  int
}

// NewPool 创建对象池
//
// 参数:
//   - name: 池名称（用于日志）
//   - newFn: 构造函数，为 nil 时使用 new(T)
//   - reset: 归还时的重置函数，为 nil 时整体清零
func NewPool[T any](name string, newFn func() *T, reset func(*T)) *Pool[T] {
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}
	if reset == nil {
		reset = func(obj *T) {
			var zero T
			*obj = zero
		}
	}
	return &Pool[T]{
		name:   name,
		free:   make([]*T, 0, 64),
		idle:   make(map[*T]struct{}),
		newFn:  newFn,
		reset:  reset,
		Strict: DebugPools,
	}
}

// Prewarm 预先构造 n 个对象放入池中
func (p *Pool[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		obj := p.newFn()
		p.created++
		p.idle[obj] = struct{}{}
		p.free = append(p.free, obj)
	}
}

// Acquire 获取一个对象
func (p *Pool[T]) Acquire() *T {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		delete(p.idle, obj)
		p.reused++
		return obj
	}
	p.created++
	return p.newFn()
}

// Release 归还对象
// 重复归还属于编程错误：严格模式下 panic，否则记录日志并忽略
func (p *Pool[T]) Release(obj *T) {
	if obj == nil {
		return
	}
	if _, dup := p.idle[obj]; dup {
		if p.Strict {
			panic(ErrDoubleRelease)
		}
		log.Printf("[Pool:%s] ⚠️ %v, ignored", p.name, ErrDoubleRelease)
		return
	}
	p.reset(obj)
	p.idle[obj] = struct{}{}
	p.free = append(p.free, obj)
}

// IsIdle 检查对象当前是否在池中（已归还）
func (p *Pool[T]) IsIdle(obj *T) bool {
	_, ok := p.idle[obj]
	return ok
}

// Stats 返回对象池统计信息
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Created: p.created,
		Reused:  p.reused,
		Idle:    len(p.free),
	}
}
