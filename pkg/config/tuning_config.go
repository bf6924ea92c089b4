package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 模拟调参配置
//
// 所有计时单位都是逻辑 tick，而不是墙钟时间，
// 保证相同种子与输入下模拟结果可复现。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Player PlayerTuning `yaml:"player"`
	Bullet BulletTuning `yaml:"bullet"`
	Enemy  EnemyTuning  `yaml:"enemy"`
	Boss   BossTuning   `yaml:"boss"`
	Score  ScoreTuning  `yaml:"score"`
	Spawn  SpawnTuning  `yaml:"spawn"`
}

// PlayerTuning 玩家参数
type PlayerTuning struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`      // 每 tick 移动距离
	StartLives int     `yaml:"startLives"` // 初始生命数
	// StartBottomOffset 初始位置距竞技场底边的距离（左上角Y = ArenaHeight - offset，之后再钳制）
	StartBottomOffset float64 `yaml:"startBottomOffset"`
}

// BulletTuning 子弹参数
type BulletTuning struct {
	Speed          float64 `yaml:"speed"`          // 每 tick 移动距离
	FriendlyWidth  float64 `yaml:"friendlyWidth"`  // 玩家子弹宽度
	FriendlyHeight float64 `yaml:"friendlyHeight"` // 玩家子弹高度
	HostileWidth   float64 `yaml:"hostileWidth"`   // Boss 子弹宽度
	HostileHeight  float64 `yaml:"hostileHeight"`  // Boss 子弹高度
	MaxFriendly    int     `yaml:"maxFriendly"`    // 同时在场的玩家子弹上限
}

// EnemyTuning 普通敌人参数
type EnemyTuning struct {
	Width                 float64 `yaml:"width"`
	Height                float64 `yaml:"height"`
	DriftSpeed            float64 `yaml:"driftSpeed"`            // 每 tick 下落距离
	SerpentineChance      float64 `yaml:"serpentineChance"`      // 生成时蛇行的概率
	ChangeDirectionChance float64 `yaml:"changeDirectionChance"` // 每 tick 随机转向概率
	SerpentineSpeed       float64 `yaml:"serpentineSpeed"`       // 横向速度大小
}

// BossTuning Boss 参数
type BossTuning struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	ShootCooldown int     `yaml:"shootCooldown"` // 开火后重置的冷却 tick 数
	// ContactGraceTicks Boss 接触伤害后的无敌 tick 数，0 表示每个重叠 tick 都造成伤害
	ContactGraceTicks int `yaml:"contactGraceTicks"`
}

// ScoreTuning 分数参数
type ScoreTuning struct {
	EnemyKill   int `yaml:"enemyKill"`   // 击杀普通敌人
	EnemyEscape int `yaml:"enemyEscape"` // 敌人从底部逃离（通常为负数）
	BossKill    int `yaml:"bossKill"`    // 击败 Boss
}

// SpawnTuning 生成参数
type SpawnTuning struct {
	IntervalTicks int `yaml:"intervalTicks"` // 生成决策间隔
	BossKillCount int `yaml:"bossKillCount"` // 出现 Boss 所需击杀数
}

// DefaultTuningConfig 返回默认调参配置
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Player: PlayerTuning{
			Width:             50,
			Height:            70,
			Speed:             5,
			StartLives:        3,
			StartBottomOffset: 60,
		},
		Bullet: BulletTuning{
			Speed:          5,
			FriendlyWidth:  35,
			FriendlyHeight: 50,
			HostileWidth:   25,
			HostileHeight:  50,
			MaxFriendly:    3,
		},
		Enemy: EnemyTuning{
			Width:                 40,
			Height:                40,
			DriftSpeed:            2,
			SerpentineChance:      0.3,
			ChangeDirectionChance: 0.03,
			SerpentineSpeed:       4,
		},
		Boss: BossTuning{
			Width:             80,
			Height:            80,
			Health:            5,
			ShootCooldown:     100,
			ContactGraceTicks: 0,
		},
		Score: ScoreTuning{
			EnemyKill:   10,
			EnemyEscape: -5,
			BossKill:    50,
		},
		Spawn: SpawnTuning{
			IntervalTicks: 60,
			BossKillCount: 10,
		},
	}
}

// LoadTuningConfig 加载调参配置
//
// 从指定路径加载 YAML 格式的配置文件，文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 从内存中的 YAML 数据解析调参配置
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	config := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查尺寸与速度为正、概率位于 [0, 1]、计数类参数不为负。
// 实体必须能放进竞技场，否则钳制逻辑没有意义。
func (c *TuningConfig) Validate() error {
	sizes := []struct {
		name string
		w, h float64
	}{
		{"player", c.Player.Width, c.Player.Height},
		{"friendly bullet", c.Bullet.FriendlyWidth, c.Bullet.FriendlyHeight},
		{"hostile bullet", c.Bullet.HostileWidth, c.Bullet.HostileHeight},
		{"enemy", c.Enemy.Width, c.Enemy.Height},
		{"boss", c.Boss.Width, c.Boss.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return fmt.Errorf("%s size must be positive, got %.1fx%.1f", s.name, s.w, s.h)
		}
		if s.w > ArenaWidth || s.h > ArenaHeight {
			return fmt.Errorf("%s size %.1fx%.1f exceeds arena %.0fx%.0f", s.name, s.w, s.h, ArenaWidth, ArenaHeight)
		}
	}

	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %.2f", c.Player.Speed)
	}
	if c.Player.StartLives < 1 {
		return fmt.Errorf("player startLives must be at least 1, got %d", c.Player.StartLives)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %.2f", c.Bullet.Speed)
	}
	if c.Bullet.MaxFriendly < 0 {
		return fmt.Errorf("bullet maxFriendly cannot be negative, got %d", c.Bullet.MaxFriendly)
	}
	if c.Enemy.DriftSpeed <= 0 {
		return fmt.Errorf("enemy driftSpeed must be positive, got %.2f", c.Enemy.DriftSpeed)
	}
	if c.Enemy.SerpentineSpeed < 0 {
		return fmt.Errorf("enemy serpentineSpeed cannot be negative, got %.2f", c.Enemy.SerpentineSpeed)
	}

	probabilities := map[string]float64{
		"enemy serpentineChance":      c.Enemy.SerpentineChance,
		"enemy changeDirectionChance": c.Enemy.ChangeDirectionChance,
	}
	for name, p := range probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %.3f", name, p)
		}
	}

	if c.Boss.Health < 1 {
		return fmt.Errorf("boss health must be at least 1, got %d", c.Boss.Health)
	}
	if c.Boss.ShootCooldown < 0 {
		return fmt.Errorf("boss shootCooldown cannot be negative, got %d", c.Boss.ShootCooldown)
	}
	if c.Boss.ContactGraceTicks < 0 {
		return fmt.Errorf("boss contactGraceTicks cannot be negative, got %d", c.Boss.ContactGraceTicks)
	}
	if c.Spawn.IntervalTicks < 1 {
		return fmt.Errorf("spawn intervalTicks must be at least 1, got %d", c.Spawn.IntervalTicks)
	}
	if c.Spawn.BossKillCount < 0 {
		return fmt.Errorf("spawn bossKillCount cannot be negative, got %d", c.Spawn.BossKillCount)
	}

	return nil
}
