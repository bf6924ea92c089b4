// Package simulation 将各个系统组合成按 tick 推进的模拟循环
//
// Simulation 本身不包含业务逻辑，只负责按固定顺序调用系统：
//
//	输入 → 玩家移动 → 开火 → 其余实体移动 → 碰撞 → 阶段转换 → 生成 → 快照
//
// 所有计时都以 tick 计数，外部驱动（ebiten 的 Update 或无窗口循环）
// 每次调用 Step 推进一个 tick。进入 GameOver 后 Step 不再修改任何状态。
package simulation

import (
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/game"
	"github.com/gonewx/skyraid/pkg/systems"
	"github.com/gonewx/skyraid/pkg/utils"
)

// Input 单个 tick 的玩家意图
type Input = systems.PlayerInput

// Simulation 一局游戏的模拟循环
// 每局构造一个实例，重新开始时丢弃旧实例并创建新实例
type Simulation struct {
	cfg   *config.TuningConfig
	store *game.EntityStore
	state *game.GameState

	inputSystem     *systems.InputSystem
	movementSystem  *systems.MovementSystem
	collisionSystem *systems.CollisionSystem
	spawnDirector   *systems.SpawnDirector

	lastReport systems.CollisionReport
	lastSpawn  systems.SpawnKind
	snapshot   Snapshot
}

// NewSimulation 创建新一局模拟
//
// 参数:
//   - cfg: 调参配置（模拟只读取它，不读取任何其他外部配置）
//   - rng: 随机数来源，相同种子与输入产生相同结果
func NewSimulation(cfg *config.TuningConfig, rng utils.RandomSource) *Simulation {
	store := game.NewEntityStore(cfg)
	state := game.NewGameState(cfg.Player.StartLives)

	s := &Simulation{
		cfg:             cfg,
		store:           store,
		state:           state,
		inputSystem:     systems.NewInputSystem(store),
		movementSystem:  systems.NewMovementSystem(store, rng),
		collisionSystem: systems.NewCollisionSystem(store, state),
		spawnDirector:   systems.NewSpawnDirector(store, state, rng),
	}
	s.snapshot = takeSnapshot(store, state)
	return s
}

// Step 推进一个 tick 并返回该 tick 结束时的快照
// 游戏结束后调用是空操作，返回最后一个快照
func (s *Simulation) Step(in Input) Snapshot {
	if s.state.IsGameOver() {
		return s.snapshot
	}

	s.state.Tick++

	s.inputSystem.Update(in)
	s.movementSystem.MovePlayer()
	if in.Fire {
		s.inputSystem.Fire()
	}
	s.movementSystem.MoveWorld()
	s.lastReport = s.collisionSystem.Update()
	s.state.UpdatePhase()

	s.lastSpawn = systems.SpawnNone
	if !s.state.IsGameOver() {
		s.lastSpawn, _ = s.spawnDirector.Update(s.state.Tick)
	}

	s.snapshot = takeSnapshot(s.store, s.state)
	return s.snapshot
}

// Snapshot 返回最近一个 tick 结束时的快照
func (s *Simulation) Snapshot() Snapshot {
	return s.snapshot
}

// State 返回游戏状态
func (s *Simulation) State() *game.GameState {
	return s.state
}

// Store 返回实体存储
func (s *Simulation) Store() *game.EntityStore {
	return s.store
}

// Config 返回调参配置
func (s *Simulation) Config() *config.TuningConfig {
	return s.cfg
}

// IsGameOver 游戏是否已结束
func (s *Simulation) IsGameOver() bool {
	return s.state.IsGameOver()
}

// LastReport 返回最近一个 tick 的碰撞结算结果
func (s *Simulation) LastReport() systems.CollisionReport {
	return s.lastReport
}

// LastSpawn 返回最近一个 tick 的生成决策
func (s *Simulation) LastSpawn() systems.SpawnKind {
	return s.lastSpawn
}

// InputFunc 为指定 tick 提供输入
type InputFunc func(tick uint64) Input

// Run 连续推进最多 ticks 个 tick，游戏结束时提前停止
// inputs 为 nil 时使用空输入
func Run(sim *Simulation, ticks int, inputs InputFunc) Snapshot {
	snap := sim.Snapshot()
	for i := 0; i < ticks && !sim.IsGameOver(); i++ {
		var in Input
		if inputs != nil {
			in = inputs(snap.Tick + 1)
		}
		snap = sim.Step(in)
	}
	return snap
}
