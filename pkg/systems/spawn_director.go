package systems

import (
	"log"

	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
	"github.com/gonewx/skyraid/pkg/utils"
)

// SpawnKind 一次生成决策的结果
type SpawnKind int

const (
	// SpawnNone 本次不生成（非决策 tick，或 Boss 战进行中）
	SpawnNone SpawnKind = iota
	// SpawnEnemy 生成一个普通敌人
	SpawnEnemy
	// SpawnBoss 生成 Boss
	SpawnBoss
)

// String 返回决策名称
func (k SpawnKind) String() string {
	switch k {
	case SpawnEnemy:
		return "enemy"
	case SpawnBoss:
		return "boss"
	default:
		return "none"
	}
}

// SpawnDirector 生成导演
//
// 职责：
//   - 每隔 Spawn.IntervalTicks 个 tick 做一次生成决策（逻辑计时，不依赖帧率或墙钟）
//   - 击杀数未达阈值：生成普通敌人
//   - 达到阈值且没有 Boss：生成 Boss
//   - 否则（Boss 战进行中）：不生成
type SpawnDirector struct {
	store     *game.EntityStore
	gameState *game.GameState
	rng       utils.RandomSource
}

// NewSpawnDirector 创建生成导演
func NewSpawnDirector(store *game.EntityStore, gs *game.GameState, rng utils.RandomSource) *SpawnDirector {
	return &SpawnDirector{
		store:     store,
		gameState: gs,
		rng:       rng,
	}
}

// IsDecisionTick 判断指定 tick 是否为决策 tick
// 间隔不为正数时永远不做决策
func (d *SpawnDirector) IsDecisionTick(tick uint64) bool {
	interval := d.store.Config().Spawn.IntervalTicks
	if interval <= 0 {
		return false
	}
	return tick > 0 && tick%uint64(interval) == 0
}

// Update 在决策 tick 上执行一次生成决策
//
// 参数:
//   - tick: 当前 tick 序号（从 1 开始）
//
// 返回:
//   - SpawnKind: 本次生成的实体种类
//   - ecs.EntityID: 生成的实体ID，没有生成时为 0
func (d *SpawnDirector) Update(tick uint64) (SpawnKind, ecs.EntityID) {
	if !d.IsDecisionTick(tick) {
		return SpawnNone, 0
	}
	return d.Decide()
}

// Decide 立即执行一次生成决策（不检查间隔）
func (d *SpawnDirector) Decide() (SpawnKind, ecs.EntityID) {
	cfg := d.store.Config()

	if d.gameState.KillCount < cfg.Spawn.BossKillCount {
		return SpawnEnemy, d.spawnEnemy(cfg)
	}

	if !d.store.HasBoss() {
		return SpawnBoss, d.spawnBoss(cfg)
	}

	// Boss 战进行中，重复生成请求是空操作
	return SpawnNone, 0
}

func (d *SpawnDirector) spawnEnemy(cfg *config.TuningConfig) ecs.EntityID {
	x := utils.RandomRange(d.rng, 0, config.ArenaWidth-cfg.Enemy.Width)
	y := -cfg.Enemy.Height
	serpentine := utils.Chance(d.rng, cfg.Enemy.SerpentineChance)
	return d.store.AddEnemy(x, y, serpentine)
}

func (d *SpawnDirector) spawnBoss(cfg *config.TuningConfig) ecs.EntityID {
	x := utils.RandomRange(d.rng, 0, config.ArenaWidth-cfg.Boss.Width)
	y := -cfg.Boss.Height
	id, ok := d.store.SetBoss(x, y)
	if !ok {
		return 0
	}
	log.Printf("[SpawnDirector] Boss spawned at tick %d: entityID=%d, x=%.1f, killCount=%d",
		d.gameState.Tick, id, x, d.gameState.KillCount)
	return id
}
