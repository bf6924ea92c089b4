package entities

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
)

// NewBullet 创建子弹实体
// 子弹以 centerX 为水平中心生成，阵营决定尺寸、贴图和飞行方向
//
// 参数:
//   - em: 实体管理器
//   - cfg: 调参配置
//   - kind: 子弹阵营
//   - centerX: 子弹水平中心
//   - y: 子弹上边缘Y坐标
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
func NewBullet(em *ecs.EntityManager, cfg *config.TuningConfig, kind components.BulletKind, centerX, y float64) ecs.EntityID {
	var width, height float64
	var sprite string
	switch kind {
	case components.BulletFriendly:
		width, height = cfg.Bullet.FriendlyWidth, cfg.Bullet.FriendlyHeight
		sprite = components.SpriteBullet
	case components.BulletHostile:
		width, height = cfg.Bullet.HostileWidth, cfg.Bullet.HostileHeight
		sprite = components.SpriteEnemyBullet
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: centerX - width/2, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: width, Height: height})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Key: sprite})
	ecs.AddComponent(em, entityID, &components.BulletComponent{Kind: kind})
	return entityID
}
