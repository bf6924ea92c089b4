package systems

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
	"github.com/gonewx/skyraid/pkg/utils"
)

// MovementSystem 推进所有实体的位置
//
// 每个 tick 在碰撞结算之前执行一次，每个存活实体恰好移动一次，分两段：
//
// MovePlayer：玩家按输入速度移动并钳制在竞技场内。
// 玩家开火在这之后处理，子弹从移动后的位置射出。
//
// MoveWorld：
//  1. 子弹：玩家子弹向上、Boss 子弹向下（包括本 tick 刚射出的玩家子弹）
//  2. 普通敌人：下落，蛇行敌人额外横向移动
//  3. Boss：水平巡逻、冷却计时、开火
//
// Boss 本 tick 发射的子弹在子弹移动之后生成，因此下个 tick 才开始移动。
type MovementSystem struct {
	store *game.EntityStore
	rng   utils.RandomSource
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(store *game.EntityStore, rng utils.RandomSource) *MovementSystem {
	return &MovementSystem{store: store, rng: rng}
}

// MoveWorld 移动玩家以外的全部实体
// 返回 Boss 本 tick 是否开火
func (s *MovementSystem) MoveWorld() bool {
	s.moveBullets()
	s.moveEnemies()
	return s.moveBoss()
}

// MovePlayer 按速度移动玩家并钳制在竞技场内
func (s *MovementSystem) MovePlayer() {
	em := s.store.EntityManager()
	id := s.store.Player()

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

	if vel != nil {
		pos.X += vel.VX
		pos.Y += vel.VY
	}
	if col != nil {
		pos.X = utils.Clamp(pos.X, 0, config.ArenaWidth-col.Width)
		pos.Y = utils.Clamp(pos.Y, 0, config.ArenaHeight-col.Height)
	}
}

func (s *MovementSystem) moveBullets() {
	em := s.store.EntityManager()
	speed := s.store.Config().Bullet.Speed

	for _, id := range s.store.AllBullets() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)

		switch bullet.Kind {
		case components.BulletFriendly:
			pos.Y -= speed
		case components.BulletHostile:
			pos.Y += speed
		}
	}
}

func (s *MovementSystem) moveEnemies() {
	em := s.store.EntityManager()
	serpentineSpeed := s.store.Config().Enemy.SerpentineSpeed

	for _, id := range s.store.Enemies() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)

		pos.Y += vel.VY

		if !enemy.Serpentine {
			continue
		}
		pos.X += vel.VX

		// 先掷骰再检查边缘，保证每个蛇行敌人每 tick 恰好消耗一次随机数
		if utils.Chance(s.rng, enemy.ChangeDirectionChance) || touchesSideEdge(pos.X, col.Width) {
			vel.VX = flipDirection(vel.VX, serpentineSpeed, s.rng)
		}
	}
}

func (s *MovementSystem) moveBoss() bool {
	id, ok := s.store.Boss()
	if !ok {
		return false
	}
	em := s.store.EntityManager()

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return false
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)

	pos.X += vel.VX
	// Boss 不会离开顶部
	if pos.Y < 0 {
		pos.Y = 0
	}

	if utils.Chance(s.rng, boss.ChangeDirectionChance) || touchesSideEdge(pos.X, col.Width) {
		vel.VX = flipDirection(vel.VX, s.store.Config().Enemy.SerpentineSpeed, s.rng)
	}
	pos.X = utils.Clamp(pos.X, 0, config.ArenaWidth-col.Width)

	if boss.ShootCooldown > 0 {
		boss.ShootCooldown--
		return false
	}

	// 冷却归零：在 Boss 正下方发射一颗子弹并重置冷却
	s.store.AddBullet(components.BulletHostile, pos.X+col.Width/2, pos.Y+col.Height)
	boss.ShootCooldown = s.store.Config().Boss.ShootCooldown
	return true
}

// touchesSideEdge 包围盒是否越过左右边缘
func touchesSideEdge(x, width float64) bool {
	return x < 0 || x+width > config.ArenaWidth
}

// flipDirection 反转横向速度
// 当前速度为 0 时随机选择方向，大小为 speed
func flipDirection(dx, speed float64, rng utils.RandomSource) float64 {
	if dx != 0 {
		return -dx
	}
	if rng.Float64() > 0.5 {
		return speed
	}
	return -speed
}
