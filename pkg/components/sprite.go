package components

// SpriteComponent 存储实体的视觉引用
// Key 是不透明的资源标识（如 "player.png"），模拟逻辑从不读取它，只原样交给渲染层
type SpriteComponent struct {
	Key string
}

// 默认资源标识
const (
	SpritePlayer      = "player.png"
	SpriteBullet      = "bullet.png"
	SpriteEnemyBullet = "enemy_bullet.png"
	SpriteEnemy       = "enemy.png"
	SpriteBoss        = "boss.png"
	SpriteHeart       = "heart.png"
)
