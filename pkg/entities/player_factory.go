package entities

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/utils"
)

// NewPlayer 创建玩家实体
// 玩家水平居中，距底边 StartBottomOffset，随后钳制到竞技场内
//
// 参数:
//   - em: 实体管理器
//   - cfg: 调参配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg *config.TuningConfig) ecs.EntityID {
	p := cfg.Player
	x := config.ArenaWidth/2 - p.Width/2
	y := config.ArenaHeight - p.StartBottomOffset

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: utils.Clamp(x, 0, config.ArenaWidth-p.Width),
		Y: utils.Clamp(y, 0, config.ArenaHeight-p.Height),
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: p.Width, Height: p.Height})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Key: components.SpritePlayer})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{})
	return entityID
}
