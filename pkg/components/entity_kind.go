package components

// EntityKind 实体种类，用于快照与渲染层区分实体
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindFriendlyBullet
	KindHostileBullet
	KindEnemy
	KindBoss
)

// String 返回种类名称
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindFriendlyBullet:
		return "friendly_bullet"
	case KindHostileBullet:
		return "hostile_bullet"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}
