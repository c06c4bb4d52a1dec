package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MapTuning 地图与刷怪位置参数
type MapTuning struct {
	Width               float64 `yaml:"width"`               // 地图宽度（像素）
	Height              float64 `yaml:"height"`              // 地图高度（像素）
	SpawnMargin         float64 `yaml:"spawnMargin"`         // 刷怪点距地图边缘的内缩距离
	MinSpawnDistance    float64 `yaml:"minSpawnDistance"`    // 刷怪点距玩家的最小距离
	AntiClutterDistance float64 `yaml:"antiClutterDistance"` // 刷怪点距已有敌人的最小距离
	SpawnAttempts       int     `yaml:"spawnAttempts"`       // 寻找合法刷怪点的最大尝试次数
}

// DropTuning 掉落物参数
type DropTuning struct {
	Radius             float64 `yaml:"radius"`             // 掉落物碰撞半径
	MergeRadius        float64 `yaml:"mergeRadius"`        // 金币合并半径
	MergeSearchWindow  int     `yaml:"mergeSearchWindow"`  // 合并时向前搜索的最近掉落物数量
	MergePopVelocity   float64 `yaml:"mergePopVelocity"`   // 合并时向上弹起的速度
	GoldLife           int     `yaml:"goldLife"`           // 金币存活帧数（到期进入吸附模式）
	PickupLife         int     `yaml:"pickupLife"`         // 回血/护盾掉落存活帧数
	Friction           float64 `yaml:"friction"`           // 每帧速度衰减系数
	ScatterSpeed       float64 `yaml:"scatterSpeed"`       // 生成时的随机散射速度
	PickupDelay        int     `yaml:"pickupDelay"`        // 生成后免疫磁吸的帧数
	MaxDrops           int     `yaml:"maxDrops"`           // 掉落物总数硬上限
	MaxHealthDrops     int     `yaml:"maxHealthDrops"`     // 回血掉落同时存在上限
	MaxHeartDrops      int     `yaml:"maxHeartDrops"`      // 护盾爱心同时存在上限
	VacuumTimeout      int     `yaml:"vacuumTimeout"`      // 吸附模式超时帧数（超时直接回收）
	VacuumSpeed        float64 `yaml:"vacuumSpeed"`        // 吸附模式固定飞行速度
	MagnetRadiusGold   float64 `yaml:"magnetRadiusGold"`   // 金币磁吸半径
	MagnetRadiusOther  float64 `yaml:"magnetRadiusOther"`  // 其它掉落磁吸半径
	MagnetAccel        float64 `yaml:"magnetAccel"`        // 普通磁吸加速度
	MagnetMaxSpeed     float64 `yaml:"magnetMaxSpeed"`     // 普通磁吸最大速度
	PickupRadius       float64 `yaml:"pickupRadius"`       // 普通拾取半径
	VacuumPickupRadius float64 `yaml:"vacuumPickupRadius"` // 吸附/清场时的拾取半径
	HealthValue        int     `yaml:"healthValue"`        // 小回血量
	BigHealthValue     int     `yaml:"bigHealthValue"`     // 大回血量
	HeartShieldValue   int     `yaml:"heartShieldValue"`   // 爱心护盾量
}

// PlayerTuning 玩家参数
type PlayerTuning struct {
	Radius              float64 `yaml:"radius"`              // 玩家碰撞半径
	InvulnFrames        int     `yaml:"invulnFrames"`        // 受伤后无敌帧数
	DeathFrames         int     `yaml:"deathFrames"`         // 死亡动画帧数
	ProjectileRadius    float64 `yaml:"projectileRadius"`    // 玩家子弹半径
	ProjectileLife      int     `yaml:"projectileLife"`      // 玩家子弹存活帧数
	SpreadAngle         float64 `yaml:"spreadAngle"`         // 多发子弹的扇形夹角（弧度）
	OverclockMultiplier float64 `yaml:"overclockMultiplier"` // 超频时的攻速倍率
	OverclockFrames     int     `yaml:"overclockFrames"`     // 单次超频持续帧数
	CameraLerp          float64 `yaml:"cameraLerp"`          // 摄像机跟随插值系数
}

// CombatTuning 战斗参数
type CombatTuning struct {
	HitFlashFrames        int     `yaml:"hitFlashFrames"`        // 受击闪白帧数
	ExplosionRadius       float64 `yaml:"explosionRadius"`       // 自爆敌人默认爆炸半径
	ExplosionKnockback    float64 `yaml:"explosionKnockback"`    // 爆炸击退速度
	ExplosionStunFrames   int     `yaml:"explosionStunFrames"`   // 爆炸眩晕帧数
	KnockbackFriction     float64 `yaml:"knockbackFriction"`     // 击退速度衰减
	EnemyProjectileLife   int     `yaml:"enemyProjectileLife"`   // 敌人子弹存活帧数
	EnemyProjectileRadius float64 `yaml:"enemyProjectileRadius"` // 敌人子弹半径
	SpreadAngle           float64 `yaml:"spreadAngle"`           // 三向散射的夹角（弧度）
	SpreadRangeFactor     float64 `yaml:"spreadRangeFactor"`     // 散射模式射程倍率
	CaptureRange          float64 `yaml:"captureRange"`          // 精英抓取生效距离
	CapturePull           float64 `yaml:"capturePull"`           // 抓取拖拽速度
	CaptureBreakDamage    float64 `yaml:"captureBreakDamage"`    // 挣脱抓取所需伤害
	FloatingTextLife      int     `yaml:"floatingTextLife"`      // 伤害飘字存活帧数
	ParticlesPerDeath     int     `yaml:"particlesPerDeath"`     // 死亡粒子数量
	ParticleLife          int     `yaml:"particleLife"`          // 粒子存活帧数
	LogFrameInterval      int     `yaml:"logFrameInterval"`      // 热路径日志输出间隔
}

// BossTuning Boss 参数
type BossTuning struct {
	TransitionFrames int     `yaml:"transitionFrames"` // 阶段转换过场冻结帧数
	NextPhaseHPRatio float64 `yaml:"nextPhaseHpRatio"` // 新阶段开始时的血量比例
}

// ReviveTuning 复活流程参数
type ReviveTuning struct {
	Cost            int     `yaml:"cost"`            // 触发复活所需最少金币
	StartFrames     int     `yaml:"startFrames"`     // start 阶段帧数
	CoinEnterFrames int     `yaml:"coinEnterFrames"` // coin_enter 阶段帧数
	ShatterFrames   int     `yaml:"shatterFrames"`   // shatter 阶段帧数
	CleanupFrames   int     `yaml:"cleanupFrames"`   // cleanup 阶段帧数
	HealRatio       float64 `yaml:"healRatio"`       // 复活回血比例
	KnockbackRadius float64 `yaml:"knockbackRadius"` // 复活冲击波半径
	Knockback       float64 `yaml:"knockback"`       // 冲击波击退速度
	StunFrames      int     `yaml:"stunFrames"`      // 冲击波眩晕帧数
	InvulnFrames    int     `yaml:"invulnFrames"`    // 复活后无敌帧数
}

// WaveTuning 波次参数
type WaveTuning struct {
	DefaultSpawnInterval int `yaml:"defaultSpawnInterval"` // 默认刷怪间隔帧数
	EndlessIdleFrames    int `yaml:"endlessIdleFrames"`    // 无尽模式：距上次击杀多久视为波次结束
	OvertimeFrames       int `yaml:"overtimeFrames"`       // 波次超过该帧数进入加时（金币加成）
	MaxLiveEnemies       int `yaml:"maxLiveEnemies"`       // 同屏敌人上限（超出则推迟刷怪）
}

// Tuning 所有可调参数
// 这些是手感数值而非不变量，全部可以通过 tuning.yaml 覆盖
type Tuning struct {
	Map    MapTuning    `yaml:"map"`
	Drop   DropTuning   `yaml:"drop"`
	Player PlayerTuning `yaml:"player"`
	Combat CombatTuning `yaml:"combat"`
	Boss   BossTuning   `yaml:"boss"`
	Revive ReviveTuning `yaml:"revive"`
	Wave   WaveTuning   `yaml:"wave"`
}

// DefaultTuning 返回默认参数
func DefaultTuning() *Tuning {
	return &Tuning{
		Map: MapTuning{
			Width:               1600,
			Height:              1200,
			SpawnMargin:         20,
			MinSpawnDistance:    280,
			AntiClutterDistance: 36,
			SpawnAttempts:       8,
		},
		Drop: DropTuning{
			Radius:             8,
			MergeRadius:        40,
			MergeSearchWindow:  20,
			MergePopVelocity:   -1.5,
			GoldLife:           900,
			PickupLife:         1200,
			Friction:           0.9,
			ScatterSpeed:       2.5,
			PickupDelay:        20,
			MaxDrops:           300,
			MaxHealthDrops:     3,
			MaxHeartDrops:      3,
			VacuumTimeout:      120,
			VacuumSpeed:        14,
			MagnetRadiusGold:   120,
			MagnetRadiusOther:  70,
			MagnetAccel:        0.6,
			MagnetMaxSpeed:     9,
			PickupRadius:       18,
			VacuumPickupRadius: 40,
			HealthValue:        5,
			BigHealthValue:     20,
			HeartShieldValue:   1,
		},
		Player: PlayerTuning{
			Radius:              16,
			InvulnFrames:        45,
			DeathFrames:         90,
			ProjectileRadius:    6,
			ProjectileLife:      90,
			SpreadAngle:         0.18,
			OverclockMultiplier: 2,
			OverclockFrames:     180,
			CameraLerp:          0.1,
		},
		Combat: CombatTuning{
			HitFlashFrames:        6,
			ExplosionRadius:       90,
			ExplosionKnockback:    8,
			ExplosionStunFrames:   40,
			KnockbackFriction:     0.85,
			EnemyProjectileLife:   180,
			EnemyProjectileRadius: 7,
			SpreadAngle:           0.3,
			SpreadRangeFactor:     1.3,
			CaptureRange:          180,
			CapturePull:           1.2,
			CaptureBreakDamage:    30,
			FloatingTextLife:      40,
			ParticlesPerDeath:     6,
			ParticleLife:          30,
			LogFrameInterval:      300,
		},
		Boss: BossTuning{
			TransitionFrames: 120,
			NextPhaseHPRatio: 1.0,
		},
		Revive: ReviveTuning{
			Cost:            100,
			StartFrames:     30,
			CoinEnterFrames: 60,
			ShatterFrames:   30,
			CleanupFrames:   40,
			HealRatio:       0.5,
			KnockbackRadius: 320,
			Knockback:       12,
			StunFrames:      90,
			InvulnFrames:    120,
		},
		Wave: WaveTuning{
			DefaultSpawnInterval: 40,
			EndlessIdleFrames:    600,
			OvertimeFrames:       3600,
			MaxLiveEnemies:       250,
		},
	}
}

// ParseTuning 在默认参数之上解析 YAML，缺省字段保留默认值
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := validateTuning(t); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning 从文件加载参数
func LoadTuning(path string) (*Tuning, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	return ParseTuning(data)
}

// validateTuning 验证参数合法性
func validateTuning(t *Tuning) error {
	if t.Map.Width <= 0 || t.Map.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %.0fx%.0f", t.Map.Width, t.Map.Height)
	}
	if t.Map.SpawnAttempts < 1 {
		return fmt.Errorf("map.spawnAttempts must be at least 1, got %d", t.Map.SpawnAttempts)
	}
	if t.Drop.MaxDrops < 1 {
		return fmt.Errorf("drop.maxDrops must be at least 1, got %d", t.Drop.MaxDrops)
	}
	if t.Drop.MergeSearchWindow < 0 {
		return fmt.Errorf("drop.mergeSearchWindow cannot be negative, got %d", t.Drop.MergeSearchWindow)
	}
	if t.Drop.VacuumTimeout < 1 {
		return fmt.Errorf("drop.vacuumTimeout must be at least 1, got %d", t.Drop.VacuumTimeout)
	}
	if t.Drop.Friction < 0 || t.Drop.Friction > 1 {
		return fmt.Errorf("drop.friction must be within [0,1], got %v", t.Drop.Friction)
	}
	if t.Boss.TransitionFrames < 1 {
		return fmt.Errorf("boss.transitionFrames must be at least 1, got %d", t.Boss.TransitionFrames)
	}
	if t.Boss.NextPhaseHPRatio <= 0 || t.Boss.NextPhaseHPRatio > 1 {
		return fmt.Errorf("boss.nextPhaseHpRatio must be within (0,1], got %v", t.Boss.NextPhaseHPRatio)
	}
	if t.Revive.HealRatio <= 0 || t.Revive.HealRatio > 1 {
		return fmt.Errorf("revive.healRatio must be within (0,1], got %v", t.Revive.HealRatio)
	}
	if t.Revive.StartFrames < 1 || t.Revive.CoinEnterFrames < 1 || t.Revive.ShatterFrames < 1 || t.Revive.CleanupFrames < 1 {
		return fmt.Errorf("revive phase durations must be at least 1 frame")
	}
	if t.Wave.DefaultSpawnInterval < 1 {
		return fmt.Errorf("wave.defaultSpawnInterval must be at least 1, got %d", t.Wave.DefaultSpawnInterval)
	}
	return nil
}
