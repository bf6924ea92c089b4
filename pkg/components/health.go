package components

// HealthComponent 存储实体的生命值信息
// 用于 Boss 这类需要多次命中才会被摧毁的实体
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
