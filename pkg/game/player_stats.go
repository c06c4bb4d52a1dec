package game

import (
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// RecalculateStats 重新计算玩家派生属性
//
// 角色基础属性 + 背包中每个道具的修正（重复道具逐个叠加）+ 永久成长。
// 未知道具记录日志并跳过。当前血量与护盾被限制在新的上限内。
func (w *World) RecalculateStats() {
	p := w.Player

	var mods config.StatModifiers
	if def, ok := w.Content.Characters.Get(p.Character); ok {
		mods.Add(def.Base, 1)
	}
	for _, id := range p.Inventory {
		def, ok := w.Content.Items.Get(id)
		if !ok {
			log.Printf("[World] ⚠️ Unknown item %q in inventory, skipped", id)
			continue
		}
		mods.Add(def.Stats, 1)
	}
	mods.Add(p.Growth, 1)

	p.Stats = components.PlayerStats{
		MaxHP:           max(mods.MaxHP, 1),
		MaxShield:       max(mods.MaxShield, 0),
		Damage:          max(mods.Damage, 1),
		AttackSpeed:     max(mods.AttackSpeed, 0.1),
		ProjectileCount: max(mods.ProjectileCount, 1),
		Pierce:          max(mods.Pierce, 0),
		ProjectileSpeed: max(mods.ProjectileSpeed, 1),
		AttackRange:     max(mods.AttackRange, 0),
		Speed:           max(mods.Speed, 0),
		Dodge:           utils.Clamp(mods.Dodge, 0, 1),
		LifeSteal:       max(mods.LifeSteal, 0),
		Income:          max(mods.Income, 0),
		Reflect:         max(mods.Reflect, 0),
		Armor:           max(mods.Armor, 0),
		Magnet:          mods.Magnet,
	}

	p.HP = utils.Clamp(p.HP, 0, p.Stats.MaxHP)
	p.Shield = utils.Clamp(p.Shield, 0, p.Stats.MaxShield)
}

// GiveItem 玩家获得道具并重算属性
// 未知道具记录日志并忽略，返回是否成功
func (w *World) GiveItem(id string) bool {
	if _, ok := w.Content.Items.Get(id); !ok {
		log.Printf("[World] ⚠️ Unknown item %q, ignored", id)
		return false
	}
	w.Player.AddItem(id)
	w.RecalculateStats()
	return true
}
