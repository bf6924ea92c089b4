package components

// PlayerComponent 标识玩家实体（单例）
// 生命数由 GameState 持有，这里只保存玩家自身的运行时状态
type PlayerComponent struct {
	// ContactGraceTicks Boss 接触伤害后剩余的无敌 tick 数
	ContactGraceTicks int
}
