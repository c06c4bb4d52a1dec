package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/ecs"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/entities"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/utils"
)

// MinAppliedDamage 平减伤后的最低伤害
const MinAppliedDamage = 1.0

// ApplyArmor 平减伤：正伤害减去护甲后至少为 MinAppliedDamage
func ApplyArmor(damage, armor float64) float64 {
	if damage <= 0 {
		return 0
	}
	return max(damage-max(armor, 0), MinAppliedDamage)
}

// CombatSystem 战斗结算系统
//
// 每帧检测子弹与敌对目标、敌人身体与玩家的圆形碰撞，结算伤害及其
// 附带效果（闪避、护盾、护甲、反伤、吸血、爆炸），并统一处理敌人死亡。
// 任何系统把敌人血量降到 0 以下后，都由这里的死亡结算收尾。
type CombatSystem struct {
	world      *game.World
	difficulty *DifficultyEngine
	drops      *DropSystem
	hooks      *ItemHookRegistry
	boss       *BossSystem
	waves      *WaveDirector
	revive     *ReviveSystem
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(w *game.World, difficulty *DifficultyEngine, drops *DropSystem, hooks *ItemHookRegistry,
	boss *BossSystem, waves *WaveDirector, revive *ReviveSystem) *CombatSystem {
	return &CombatSystem{
		world:      w,
		difficulty: difficulty,
		drops:      drops,
		hooks:      hooks,
		boss:       boss,
		waves:      waves,
		revive:     revive,
	}
}

// Update 每帧碰撞检测与死亡结算
func (s *CombatSystem) Update() {
	s.playerProjectiles()
	s.enemyProjectiles()
	s.contactDamage()
	s.ResolveDeaths()

	w := s.world
	w.Projectiles = ecs.RemoveIf(w.Projectiles,
		func(p *components.Projectile) bool { return p.Dead },
		func(p *components.Projectile) {
			w.Entities.DestroyEntity(p.ID)
			w.ProjectilePool.Release(p)
		})
}

// halted 本帧已进入 Boss 过场或复活流程，剩余结算留到冻结结束后
func (s *CombatSystem) halted() bool {
	return s.world.InCinematicTransition || s.world.Revive.Active
}

// playerProjectiles 玩家子弹 vs 敌人
func (s *CombatSystem) playerProjectiles() {
	w := s.world
	for _, p := range w.Projectiles {
		if s.halted() {
			return
		}
		if p.Dead || p.IsEnemy {
			continue
		}
		for _, e := range w.Enemies {
			if e.Dead || e.HP <= 0 || p.HasHit(e.ID) {
				continue
			}
			if !utils.CirclesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			p.RecordHit(e.ID)
			if p.Explosive {
				s.Detonate(p)
				break
			}
			s.DamageEnemy(e, p.Damage, true)
			if s.halted() {
				return
			}
			if p.PierceExhausted() {
				p.Dead = true
				break
			}
		}
	}
}

// enemyProjectiles 敌方子弹 vs 玩家
func (s *CombatSystem) enemyProjectiles() {
	w := s.world
	pl := w.Player
	if !pl.IsAlive() {
		return
	}
	for _, p := range w.Projectiles {
		if s.halted() {
			return
		}
		if p.Dead || !p.IsEnemy {
			continue
		}
		if !utils.CirclesOverlap(p.X, p.Y, p.Radius, pl.X, pl.Y, pl.Radius) {
			continue
		}
		if p.Explosive {
			s.Detonate(p)
			continue
		}
		p.Dead = true
		s.DamagePlayer(p.Damage, w.FindEnemy(p.OwnerID))
	}
}

// contactDamage 敌人身体碰撞玩家
func (s *CombatSystem) contactDamage() {
	w := s.world
	pl := w.Player
	for _, e := range w.Enemies {
		if !pl.IsAlive() || pl.IsInvulnerable() || s.halted() {
			return
		}
		if e.Dead || e.Damage <= 0 || (e.Boss != nil && e.Boss.Transitioning) {
			continue
		}
		if utils.CirclesOverlap(e.X, e.Y, e.Radius, pl.X, pl.Y, pl.Radius) {
			s.DamagePlayer(e.Damage, e)
		}
	}
}

// Detonate 引爆爆炸弹：对爆炸半径内的敌对目标造成伤害
func (s *CombatSystem) Detonate(p *components.Projectile) {
	if p.Dead {
		return
	}
	p.Dead = true
	w := s.world
	radius := p.BlastRadius
	if radius <= 0 {
		radius = w.Tuning.Combat.ExplosionRadius
	}

	entities.NewParticleBurst(w, p.X, p.Y, w.Tuning.Combat.ParticlesPerDeath, "explosion")
	w.Emit(game.Event{Kind: game.EventExplosion, X: p.X, Y: p.Y, Value: radius})

	if p.IsEnemy {
		pl := w.Player
		reach := radius + pl.Radius
		if utils.DistSq(p.X, p.Y, pl.X, pl.Y) <= reach*reach {
			s.DamagePlayer(p.Damage, w.FindEnemy(p.OwnerID))
		}
		return
	}
	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		reach := radius + e.Radius
		if utils.DistSq(p.X, p.Y, e.X, e.Y) <= reach*reach {
			s.DamageEnemy(e, p.Damage, true)
			if s.halted() {
				return
			}
		}
	}
}

// DamageEnemy 对敌人造成伤害
//
// 过场中的 Boss 不受伤害。fromPlayer 为真时计入本波伤害统计并触发吸血。
// Boss 的阶段阈值在这里检查，跨过阈值的致命伤害会被转为阶段过场。
func (s *CombatSystem) DamageEnemy(e *components.Enemy, amount float64, fromPlayer bool) {
	if e.Dead || amount <= 0 {
		return
	}
	if e.Boss != nil && e.Boss.Transitioning {
		return
	}
	w := s.world

	e.HP -= amount
	e.HitFlash = w.Tuning.Combat.HitFlashFrames
	if e.Capture.Active {
		e.Capture.DamageTaken += amount
	}

	if fromPlayer {
		w.Wave.Stats.DamageDealt += amount
		if ls := w.Player.Stats.LifeSteal; ls > 0 {
			w.Player.Heal(amount * ls)
		}
	}

	entities.NewFloatingText(w, e.X, e.Y-e.Radius, fmt.Sprintf("%.0f", amount), false)
	w.Emit(game.Event{Kind: game.EventEnemyHit, X: e.X, Y: e.Y, Name: e.Def.ID, Value: amount})

	if e.Boss != nil {
		s.boss.CheckThreshold(e)
	}
}

// DamagePlayer 玩家受到伤害
//
// 顺序：无敌/复活中忽略 → 闪避（完全免疫，不触发反伤）→ 护甲平减（至少 1）
// → 护盾吸收 → 扣血 → 反伤与受击挂钩 → 死亡判定。
//
// 返回:
//   - float64: 护甲结算后的伤害（护盾吸收部分也计入）；被忽略或闪避时为 0
func (s *CombatSystem) DamagePlayer(amount float64, attacker *components.Enemy) float64 {
	w := s.world
	pl := w.Player
	if amount <= 0 || !pl.IsAlive() || pl.IsInvulnerable() || w.Revive.Active {
		return 0
	}

	if w.Chance(pl.Stats.Dodge) {
		entities.NewFloatingText(w, pl.X, pl.Y-pl.Radius, "MISS", false)
		w.Emit(game.Event{Kind: game.EventPlayerDodge, X: pl.X, Y: pl.Y})
		return 0
	}

	applied := ApplyArmor(amount, pl.Stats.Armor)
	w.Wave.Stats.DamageMitigated += max(amount-applied, 0)

	absorbed := min(pl.Shield, applied)
	pl.Shield -= absorbed
	pl.HP -= applied - absorbed
	w.Wave.Stats.DamageMitigated += absorbed
	pl.InvulnTimer = w.Tuning.Player.InvulnFrames

	w.Emit(game.Event{Kind: game.EventPlayerHit, X: pl.X, Y: pl.Y, Value: applied})

	if attacker != nil && !attacker.Dead && pl.Stats.Reflect > 0 {
		s.DamageEnemy(attacker, applied*pl.Stats.Reflect, true)
	}
	s.hooks.Dispatch(w, HookOnPlayerHit, attacker, applied)

	if pl.HP <= 0 {
		pl.HP = 0
		s.playerDown()
	}
	return applied
}

// playerDown 玩家血量归零：满足条件时进入复活流程，否则开始死亡
func (s *CombatSystem) playerDown() {
	w := s.world
	pl := w.Player
	if s.revive.Start() {
		return
	}
	pl.Dying = true
	pl.DeathTimer = w.Tuning.Player.DeathFrames
	pl.CapturedBy = ecs.InvalidEntity
	log.Printf("[CombatSystem] Player down at wave %d (gold=%d)", w.Wave.Index, pl.Gold)
	w.Emit(game.Event{Kind: game.EventPlayerDeath, X: pl.X, Y: pl.Y})
}

// ResolveDeaths 结算所有血量归零的敌人并回收
// 过场或复活期间不结算，血量归零的敌人等冻结结束后再处理
func (s *CombatSystem) ResolveDeaths() {
	w := s.world
	bossKilled := false
	if s.halted() {
		return
	}

	// 先检查所有 Boss 的阶段阈值（其它系统也可能直接扣血）
	for _, e := range w.Enemies {
		if e.Boss != nil && !e.Dead {
			s.boss.CheckThreshold(e)
		}
	}
	if s.halted() {
		return
	}

	// 死亡结算可能追加分裂出的敌人，用下标遍历到当前长度
	for i := 0; i < len(w.Enemies); i++ {
		e := w.Enemies[i]
		if e.Dead || e.HP > 0 {
			continue
		}
		if e.Boss != nil && e.Boss.Transitioning {
			continue
		}
		if s.killEnemy(e) {
			bossKilled = true
		}
	}

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if e := w.Enemies[i]; e.Dead {
			w.Entities.DestroyEntity(e.ID)
			w.Enemies = ecs.SwapRemove(w.Enemies, i)
			w.EnemyPool.Release(e)
		}
	}

	// Boss 是波次终结者：清场并强制结束本波
	if bossKilled {
		w.ClearEnemies()
		w.ClearEnemyProjectiles()
		s.waves.EndWave()
	}
}

// killEnemy 敌人死亡结算，返回是否为 Boss
func (s *CombatSystem) killEnemy(e *components.Enemy) bool {
	w := s.world
	def := e.Def
	e.Dead = true
	e.HP = 0

	if w.Player.CapturedBy == e.ID {
		w.Player.CapturedBy = ecs.InvalidEntity
	}

	w.Wave.Stats.Kills++
	w.Wave.FramesSinceLastKill = 0
	w.Stats.TotalKills++

	gold := s.difficulty.KillGold(def.Gold, ScalingFor(w))
	if def.Bonus && def.BonusGoldFactor > 1 {
		bonus := int(math.Round(float64(gold) * (def.BonusGoldFactor - 1)))
		gold += bonus
		w.Wave.Stats.BonusGold += bonus
	}
	s.drops.Spawn(components.DropGold, e.X, e.Y, gold)

	entities.NewParticleBurst(w, e.X, e.Y, w.Tuning.Combat.ParticlesPerDeath, "death")
	w.Emit(game.Event{Kind: game.EventEnemyKilled, X: e.X, Y: e.Y, Name: def.ID, Value: float64(def.Score)})

	s.hooks.Dispatch(w, HookOnKill, e, 0)

	if def.SplitInto != "" && def.SplitCount > 0 {
		s.split(e)
	}
	if def.DeathExplode {
		s.deathExplosion(e)
	}

	if e.Boss != nil {
		e.Boss.AbandonSkill()
		w.Wave.BossDefeated = true
		w.Stats.BossesDefeated++
		log.Printf("[CombatSystem] Boss %s defeated at wave %d", def.ID, w.Wave.Index)
		w.Emit(game.Event{Kind: game.EventBossDefeated, X: e.X, Y: e.Y, Name: string(e.Boss.Kind)})
		return true
	}
	return false
}

// split 分裂：在死亡位置周围生成子敌人
func (s *CombatSystem) split(parent *components.Enemy) {
	w := s.world
	def := parent.Def
	ctx := ScalingFor(w)
	hpMul := s.difficulty.HPMultiplier(ctx)
	dmgMul := s.difficulty.DamageMultiplier(ctx)

	for i := 0; i < def.SplitCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(def.SplitCount)
		x := parent.X + math.Cos(angle)*parent.Radius
		y := parent.Y + math.Sin(angle)*parent.Radius
		child, err := entities.NewEnemy(w, def.SplitInto, x, y, hpMul, dmgMul)
		if err != nil {
			log.Printf("[CombatSystem] ⚠️ Split of %s skipped: %v", def.ID, err)
			return
		}
		child.KnockX = math.Cos(angle) * 3
		child.KnockY = math.Sin(angle) * 3
	}
}

// deathExplosion 自爆：半径内敌人被击退并眩晕，玩家在范围内受到伤害
func (s *CombatSystem) deathExplosion(e *components.Enemy) {
	w := s.world
	t := w.Tuning.Combat
	radius := e.Def.BlastRadius
	if radius <= 0 {
		radius = t.ExplosionRadius
	}

	entities.NewParticleBurst(w, e.X, e.Y, t.ParticlesPerDeath*2, "explosion")
	w.Emit(game.Event{Kind: game.EventExplosion, X: e.X, Y: e.Y, Name: e.Def.ID, Value: radius})

	KnockbackAndStun(w, e.X, e.Y, radius, t.ExplosionKnockback, t.ExplosionStunFrames)

	pl := w.Player
	reach := radius + pl.Radius
	if utils.DistSq(e.X, e.Y, pl.X, pl.Y) <= reach*reach {
		s.DamagePlayer(e.Damage, nil)
	}
}

// KnockbackAndStun 击退并眩晕半径内所有存活敌人（过场中的 Boss 除外）
func KnockbackAndStun(w *game.World, x, y, radius, force float64, stunFrames int) int {
	affected := 0
	for _, o := range w.Enemies {
		if o.Dead || (o.Boss != nil && o.Boss.Transitioning) {
			continue
		}
		nx, ny, dist := utils.Direction(x, y, o.X, o.Y)
		if dist > radius+o.Radius {
			continue
		}
		if nx == 0 && ny == 0 {
			nx = 1
		}
		o.KnockX = nx * force
		o.KnockY = ny * force
		o.StunTimer = max(o.StunTimer, stunFrames)
		if o.Attack == components.AttackCasting {
			o.BurstQueue = o.BurstQueue[:0]
			o.Attack = components.AttackCooldown
			o.AttackCooldown = max(o.AttackCooldown, o.Def.AttackCooldown)
		}
		affected++
	}
	return affected
}
