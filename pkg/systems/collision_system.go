package systems

import (
	"log"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
)

// CollisionReport 一个 tick 的碰撞结算结果
type CollisionReport struct {
	EnemyKills     int // 被玩家子弹击毁的普通敌人
	EnemiesEscaped int // 从底部逃离的普通敌人
	BossHits       int // Boss 被命中次数
	BossKills      int // 本 tick 击败的 Boss（0 或 1）
	LivesLost      int // 本 tick 扣除的生命（钳制前）
	ScoreDelta     int // 本 tick 分数变化
	Removed        int // 压缩移除的实体数
}

// CollisionSystem 碰撞结算系统
//
// 每个 tick 在移动之后执行一次，按固定顺序结算：
//
//	0. 完全飞出顶部的玩家子弹标记删除
//	1. 玩家子弹 × 普通敌人：每颗子弹最多击毁一个敌人（按存储顺序取第一个）
//	2. 未被标记的玩家子弹 × Boss：扣 Boss 血量，归零时清除 Boss
//	3. 普通敌人：越过底边扣分，否则与玩家接触扣命（敌人被摧毁）
//	4. Boss 子弹：命中玩家扣命，飞出底部则删除
//	5. Boss 与玩家接触扣命（Boss 不会被移除）
//	6. 所有检查完成后统一压缩
//
// 结算过程中只做标记，集合在第 6 步之前保持不变，
// 所以任何删除都不会导致同一 tick 内跳过其他实体的检查。
type CollisionSystem struct {
	store     *game.EntityStore
	gameState *game.GameState
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(store *game.EntityStore, gs *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		store:     store,
		gameState: gs,
	}
}

// Update 执行一个 tick 的碰撞结算
func (s *CollisionSystem) Update() CollisionReport {
	var report CollisionReport
	scoreBefore := s.gameState.Score

	s.markExitedFriendlyBullets()
	s.resolveBulletsVsEnemies(&report)
	s.resolveBulletsVsBoss(&report)
	s.resolveEnemies(&report)
	s.resolveHostileBullets(&report)
	s.resolveBossContact(&report)

	report.Removed = s.store.Compact()
	report.ScoreDelta = s.gameState.Score - scoreBefore
	return report
}

// markExitedFriendlyBullets 第 0 步：完全飞出顶部的玩家子弹不再参与碰撞
func (s *CollisionSystem) markExitedFriendlyBullets() {
	for _, bulletID := range s.store.Bullets(components.BulletFriendly) {
		rect, ok := s.store.Rect(bulletID)
		if !ok {
			continue
		}
		if rect.Bottom() < 0 {
			s.store.MarkForRemoval(bulletID)
		}
	}
}

// resolveBulletsVsEnemies 第 1 步
func (s *CollisionSystem) resolveBulletsVsEnemies(report *CollisionReport) {
	cfg := s.store.Config()
	enemies := s.store.Enemies()

	for _, bulletID := range s.store.Bullets(components.BulletFriendly) {
		if s.store.IsMarked(bulletID) {
			continue
		}
		for _, enemyID := range enemies {
			if s.store.IsMarked(enemyID) {
				continue
			}
			if !s.store.Overlap(bulletID, enemyID) {
				continue
			}

			s.store.MarkForRemoval(bulletID)
			s.store.MarkForRemoval(enemyID)
			s.gameState.AddScore(cfg.Score.EnemyKill)
			s.gameState.RecordKill()
			report.EnemyKills++

			// 一颗子弹只能击中一个敌人
			break
		}
	}
}

// resolveBulletsVsBoss 第 2 步
func (s *CollisionSystem) resolveBulletsVsBoss(report *CollisionReport) {
	cfg := s.store.Config()
	em := s.store.EntityManager()

	for _, bulletID := range s.store.Bullets(components.BulletFriendly) {
		bossID, ok := s.store.Boss()
		if !ok {
			return
		}
		if s.store.IsMarked(bulletID) || !s.store.Overlap(bulletID, bossID) {
			continue
		}

		s.store.MarkForRemoval(bulletID)
		report.BossHits++

		health, ok := ecs.GetComponent[*components.HealthComponent](em, bossID)
		if !ok {
			continue
		}
		health.CurrentHealth--
		if health.CurrentHealth > 0 {
			continue
		}

		s.store.ClearBoss()
		s.gameState.AddScore(cfg.Score.BossKill)
		s.gameState.ResetKillCount()
		report.BossKills++
		log.Printf("[CollisionSystem] Boss %d defeated at tick %d", bossID, s.gameState.Tick)
	}
}

// resolveEnemies 第 3 步
func (s *CollisionSystem) resolveEnemies(report *CollisionReport) {
	cfg := s.store.Config()
	playerID := s.store.Player()

	for _, enemyID := range s.store.Enemies() {
		if s.store.IsMarked(enemyID) {
			continue
		}
		rect, ok := s.store.Rect(enemyID)
		if !ok {
			continue
		}

		if rect.Bottom() > config.ArenaHeight {
			s.store.MarkForRemoval(enemyID)
			s.gameState.AddScore(cfg.Score.EnemyEscape)
			report.EnemiesEscaped++
			continue
		}

		if s.store.Overlap(enemyID, playerID) {
			// 敌人接触即被摧毁，玩家只受伤
			s.store.MarkForRemoval(enemyID)
			s.damagePlayer(report)
		}
	}
}

// resolveHostileBullets 第 4 步
func (s *CollisionSystem) resolveHostileBullets(report *CollisionReport) {
	playerID := s.store.Player()

	for _, bulletID := range s.store.Bullets(components.BulletHostile) {
		if s.store.IsMarked(bulletID) {
			continue
		}
		if s.store.Overlap(bulletID, playerID) {
			s.store.MarkForRemoval(bulletID)
			s.damagePlayer(report)
			continue
		}

		rect, ok := s.store.Rect(bulletID)
		if ok && rect.Top() > config.ArenaHeight {
			s.store.MarkForRemoval(bulletID)
		}
	}
}

// resolveBossContact 第 5 步
// ContactGraceTicks 为 0 时，重叠的每个 tick 都扣命；否则伤害后的 N 个 tick 内不再扣命
func (s *CollisionSystem) resolveBossContact(report *CollisionReport) {
	em := s.store.EntityManager()
	playerID := s.store.Player()
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok {
		return
	}
	inGrace := player.ContactGraceTicks > 0
	if inGrace {
		player.ContactGraceTicks--
	}

	bossID, ok := s.store.Boss()
	if !ok || inGrace || !s.store.Overlap(bossID, playerID) {
		return
	}

	s.damagePlayer(report)
	player.ContactGraceTicks = s.store.Config().Boss.ContactGraceTicks
}

func (s *CollisionSystem) damagePlayer(report *CollisionReport) {
	s.gameState.LoseLife()
	report.LivesLost++
}

