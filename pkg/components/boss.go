package components

// BossComponent 标识 Boss 实体（同一时间最多一个）
// 生命值存放在 HealthComponent，水平速度存放在 VelocityComponent
type BossComponent struct {
	// ShootCooldown 距下次开火的 tick 数，为 0 时本 tick 开火并重置
	ShootCooldown int
	// ChangeDirectionChance 每 tick 随机转向的概率
	ChangeDirectionChance float64
}
