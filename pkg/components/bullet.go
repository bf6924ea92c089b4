package components

// BulletKind 子弹阵营
// 阵营决定移动方向和参与的碰撞对，用显式标签代替运行时类型判断
type BulletKind int

const (
	// BulletFriendly 玩家子弹：向上飞行（Y 递减），与敌人和 Boss 碰撞
	BulletFriendly BulletKind = iota
	// BulletHostile Boss 子弹：向下飞行（Y 递增），与玩家碰撞
	BulletHostile
)

// String 返回阵营名称（用于日志）
func (k BulletKind) String() string {
	switch k {
	case BulletFriendly:
		return "friendly"
	case BulletHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// BulletComponent 标识子弹实体
type BulletComponent struct {
	Kind BulletKind
}
