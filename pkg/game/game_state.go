package game

import "log"

// Phase 游戏阶段
type Phase int

const (
	// PhasePlaying 游戏进行中（初始状态）
	PhasePlaying Phase = iota
	// PhaseGameOver 游戏结束（终止状态，不可离开）
	PhaseGameOver
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState 存储一局游戏的全局状态
//
// 每局游戏构造一个实例并显式传给各个系统；重新开始时创建新实例，
// 进入 PhaseGameOver 后任何修改方法都是空操作。
type GameState struct {
	Score     int    // 分数，可以为负
	Lives     int    // 剩余生命，下限为 0
	KillCount int    // 自上次击败 Boss 以来击杀的普通敌人数
	Phase     Phase  // 当前阶段
	Tick      uint64 // 已完成的 tick 数
}

// NewGameState 创建新一局的游戏状态
func NewGameState(startLives int) *GameState {
	if startLives < 0 {
		startLives = 0
	}
	return &GameState{
		Lives: startLives,
		Phase: PhasePlaying,
	}
}

// IsGameOver 是否已进入终止状态
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// AddScore 增加（或减少）分数
func (gs *GameState) AddScore(amount int) {
	if gs.IsGameOver() {
		return
	}
	gs.Score += amount
}

// LoseLife 扣除一条生命，生命数不会低于 0
func (gs *GameState) LoseLife() {
	if gs.IsGameOver() {
		return
	}
	gs.Lives--
	if gs.Lives < 0 {
		gs.Lives = 0
	}
}

// RecordKill 记录一次普通敌人击杀
func (gs *GameState) RecordKill() {
	if gs.IsGameOver() {
		return
	}
	gs.KillCount++
}

// ResetKillCount Boss 被击败时重置击杀计数
func (gs *GameState) ResetKillCount() {
	if gs.IsGameOver() {
		return
	}
	gs.KillCount = 0
}

// UpdatePhase 在一个 tick 的碰撞结算后检查阶段转换
// 返回 true 表示本次调用触发了 Playing → GameOver
func (gs *GameState) UpdatePhase() bool {
	if gs.IsGameOver() {
		return false
	}
	if gs.Lives <= 0 {
		gs.Lives = 0
		gs.Phase = PhaseGameOver
		log.Printf("[GameState] Game over at tick %d, final score %d", gs.Tick, gs.Score)
		return true
	}
	return false
}
