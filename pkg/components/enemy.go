package components

// EnemyComponent 标识普通敌人实体
type EnemyComponent struct {
	// Serpentine 生成时决定是否蛇行，之后不再改变
	Serpentine bool
	// ChangeDirectionChance 每 tick 随机转向的概率
	ChangeDirectionChance float64
}
