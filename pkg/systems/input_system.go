package systems

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
)

// PlayerInput 单个 tick 的玩家意图
// 由外部输入层（键盘）生成，模拟核心只读取它
type PlayerInput struct {
	DX, DY float64 // 本 tick 的玩家速度
	Fire   bool    // 开火意图（边沿触发，一次按键只出现在一个 tick 中）
}

// InputSystem 将玩家意图写入实体
//
// 职责：
//   - Update 把速度写入玩家的 VelocityComponent，由 MovementSystem.MovePlayer 应用
//   - Fire 在玩家移动之后调用：在场玩家子弹未达上限时，在玩家当前位置生成一颗子弹，否则丢弃本次意图
type InputSystem struct {
	store *game.EntityStore
}

// NewInputSystem 创建输入系统
func NewInputSystem(store *game.EntityStore) *InputSystem {
	return &InputSystem{store: store}
}

// Update 应用本 tick 的移动意图
func (s *InputSystem) Update(in PlayerInput) {
	em := s.store.EntityManager()
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, s.store.Player()); ok {
		vel.VX = in.DX
		vel.VY = in.DY
	}
}

// Fire 处理开火意图，子弹以玩家顶边中点为起点
// 返回是否成功生成了子弹
func (s *InputSystem) Fire() bool {
	if s.store.LiveFriendlyBulletCount() >= s.store.Config().Bullet.MaxFriendly {
		// 达到上限：意图直接丢弃，不排队
		return false
	}

	rect, ok := s.store.Rect(s.store.Player())
	if !ok {
		return false
	}
	s.store.AddBullet(components.BulletFriendly, rect.CenterX(), rect.Top())
	return true
}
