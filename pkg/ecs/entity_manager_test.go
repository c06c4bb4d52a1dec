package ecs

import (
	"testing"
)

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if !em.IsAlive(id) {
		t.Fatal("Entity should be alive after creation")
	}

	em.DestroyEntity(id)
	if em.IsAlive(id) {
		t.Error("Entity should be dead after DestroyEntity")
	}

	// 销毁列表在清理前可见
	if got := em.DestroyedThisFrame(); len(got) != 1 || got[0] != id {
		t.Errorf("DestroyedThisFrame: got %v, want [%d]", got, id)
	}

	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("RemoveMarkedEntities: got %d, want 1", n)
	}
	if len(em.DestroyedThisFrame()) != 0 {
		t.Error("Destroy list should be empty after cleanup")
	}
}

func TestDestroyEntityTwiceIsNoop(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("Double destroy should be recorded once, got %d", n)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	em := NewEntityManager()
	seen := make(map[EntityID]bool)

	for i := 0; i < 100; i++ {
		id := em.CreateEntity()
		if seen[id] {
			t.Fatalf("ID %d reused", id)
		}
		seen[id] = true
		if i%2 == 0 {
			em.DestroyEntity(id)
		}
	}

	if em.Count() != 50 {
		t.Errorf("Count: got %d, want 50", em.Count())
	}
	if em.IsAlive(InvalidEntity) {
		t.Error("InvalidEntity must never be alive")
	}
}
