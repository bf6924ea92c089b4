package entities

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
)

// NewEnemy 创建普通敌人实体
// 初始横向速度为 0，纵向速度为固定下落速度
//
// 参数:
//   - em: 实体管理器
//   - cfg: 调参配置
//   - x, y: 左上角位置
//   - serpentine: 是否蛇行（生成时决定）
//
// 返回:
//   - ecs.EntityID: 敌人实体ID
func NewEnemy(em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64, serpentine bool) ecs.EntityID {
	e := cfg.Enemy

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: e.Width, Height: e.Height})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: 0, VY: e.DriftSpeed})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Key: components.SpriteEnemy})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Serpentine:            serpentine,
		ChangeDirectionChance: e.ChangeDirectionChance,
	})
	return entityID
}

// NewBoss 创建 Boss 实体
// 冷却从 0 开始，因此 Boss 的第一次移动 tick 就会开火
//
// 参数:
//   - em: 实体管理器
//   - cfg: 调参配置
//   - x, y: 左上角位置
//
// 返回:
//   - ecs.EntityID: Boss 实体ID
func NewBoss(em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64) ecs.EntityID {
	b := cfg.Boss

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: b.Width, Height: b.Height})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Key: components.SpriteBoss})
	ecs.AddComponent(em, entityID, &components.HealthComponent{CurrentHealth: b.Health, MaxHealth: b.Health})
	ecs.AddComponent(em, entityID, &components.BossComponent{
		ShootCooldown:         0,
		ChangeDirectionChance: cfg.Enemy.ChangeDirectionChance,
	})
	return entityID
}
