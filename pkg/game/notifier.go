package game

import "log"

// EventKind 通知事件种类
type EventKind int

const (
	EventEnemyHit EventKind = iota
	EventEnemyKilled
	EventPlayerHit
	EventPlayerDodge
	EventPickup
	EventExplosion
	EventWaveStart
	EventWaveEnd
	EventBossSpawn
	EventBossPhase
	EventBossDefeated
	EventPlayerDeath
	EventReviveStart
	EventReviveShatter
)

var eventNames = map[EventKind]string{
	EventEnemyHit:      "enemy_hit",
	EventEnemyKilled:   "enemy_killed",
	EventPlayerHit:     "player_hit",
	EventPlayerDodge:   "player_dodge",
	EventPickup:        "pickup",
	EventExplosion:     "explosion",
	EventWaveStart:     "wave_start",
	EventWaveEnd:       "wave_end",
	EventBossSpawn:     "boss_spawn",
	EventBossPhase:     "boss_phase",
	EventBossDefeated:  "boss_defeated",
	EventPlayerDeath:   "player_death",
	EventReviveStart:   "revive_start",
	EventReviveShatter: "revive_shatter",
}

// String 返回事件名
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event 发往音频/特效/UI 协作方的通知
// 只携带最小的数据，协作方自行决定播放什么
type Event struct {
	Kind  EventKind
	X, Y  float64
	Name  string  // 敌人ID、掉落类型、Boss 原型等
	Value float64 // 伤害、金币、阶段号等
}

// Notifier 通知协作方（音效、粒子、UI）
// 实现必须是非阻塞的；模拟核心不依赖其结果
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc 函数适配器
type NotifierFunc func(ev Event)

// Notify 实现 Notifier
func (f NotifierFunc) Notify(ev Event) {
	f(ev)
}

// NopNotifier 空实现（无音频/特效后端时使用）
type NopNotifier struct{}

// Notify 实现 Notifier
func (NopNotifier) Notify(Event) {}

// LogNotifier 把重要事件写到日志（调试用，忽略高频事件）
type LogNotifier struct{}

// Notify 实现 Notifier
func (LogNotifier) Notify(ev Event) {
	switch ev.Kind {
	case EventEnemyHit, EventPlayerHit, EventPickup, EventPlayerDodge, EventEnemyKilled:
		return
	}
	log.Printf("[Notifier] %s name=%s value=%.0f at (%.0f, %.0f)", ev.Kind, ev.Name, ev.Value, ev.X, ev.Y)
}
