package game

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/entities"
	"github.com/gonewx/skyraid/pkg/utils"
)

// EntityStore 持有一局游戏的全部实体
//
// 子弹与敌人按插入顺序保存（由 EntityManager 保证），Boss 最多一个，玩家是单例。
// 移除分两步：各个结算阶段只调用 MarkForRemoval，
// 所有检查完成后由 Compact 统一压缩，保证同一 tick 内每个存活实体都恰好被检查一次。
type EntityStore struct {
	em       *ecs.EntityManager
	cfg      *config.TuningConfig
	playerID ecs.EntityID
	bossID   ecs.EntityID // 0 表示没有 Boss
}

// NewEntityStore 创建实体存储并生成玩家
func NewEntityStore(cfg *config.TuningConfig) *EntityStore {
	em := ecs.NewEntityManager()
	return &EntityStore{
		em:       em,
		cfg:      cfg,
		playerID: entities.NewPlayer(em, cfg),
	}
}

// EntityManager 返回底层实体管理器（供系统读取组件）
func (s *EntityStore) EntityManager() *ecs.EntityManager {
	return s.em
}

// Config 返回调参配置
func (s *EntityStore) Config() *config.TuningConfig {
	return s.cfg
}

// Player 返回玩家实体ID
func (s *EntityStore) Player() ecs.EntityID {
	return s.playerID
}

// AddBullet 添加子弹，以 centerX 为水平中心
func (s *EntityStore) AddBullet(kind components.BulletKind, centerX, y float64) ecs.EntityID {
	return entities.NewBullet(s.em, s.cfg, kind, centerX, y)
}

// AddEnemy 添加普通敌人
func (s *EntityStore) AddEnemy(x, y float64, serpentine bool) ecs.EntityID {
	return entities.NewEnemy(s.em, s.cfg, x, y, serpentine)
}

// SetBoss 生成 Boss；已有 Boss 时为空操作并返回 false
func (s *EntityStore) SetBoss(x, y float64) (ecs.EntityID, bool) {
	if s.HasBoss() {
		return s.bossID, false
	}
	s.bossID = entities.NewBoss(s.em, s.cfg, x, y)
	return s.bossID, true
}

// ClearBoss 立即解除 Boss 引用并标记实体待删除
// 之后同一 tick 的检查都会看到"没有 Boss"
func (s *EntityStore) ClearBoss() {
	if s.bossID == 0 {
		return
	}
	s.em.DestroyEntity(s.bossID)
	s.bossID = 0
}

// Boss 返回当前 Boss
func (s *EntityStore) Boss() (ecs.EntityID, bool) {
	return s.bossID, s.bossID != 0
}

// HasBoss 当前是否存在 Boss
func (s *EntityStore) HasBoss() bool {
	return s.bossID != 0
}

// Bullets 返回指定阵营的子弹（插入顺序，包含已标记但尚未压缩的子弹）
func (s *EntityStore) Bullets(kind components.BulletKind) []ecs.EntityID {
	all := ecs.GetEntitiesWith1[*components.BulletComponent](s.em)
	result := make([]ecs.EntityID, 0, len(all))
	for _, id := range all {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		if bullet.Kind == kind {
			result = append(result, id)
		}
	}
	return result
}

// AllBullets 返回全部子弹（插入顺序）
func (s *EntityStore) AllBullets() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.BulletComponent](s.em)
}

// Enemies 返回普通敌人（插入顺序）
func (s *EntityStore) Enemies() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.EnemyComponent](s.em)
}

// LiveFriendlyBulletCount 返回未被标记删除的玩家子弹数量
func (s *EntityStore) LiveFriendlyBulletCount() int {
	count := 0
	for _, id := range s.Bullets(components.BulletFriendly) {
		if !s.em.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// MarkForRemoval 标记实体待删除；玩家永远不会被删除
func (s *EntityStore) MarkForRemoval(id ecs.EntityID) {
	if id == s.playerID {
		return
	}
	if id == s.bossID {
		s.ClearBoss()
		return
	}
	s.em.DestroyEntity(id)
}

// IsMarked 实体是否已被标记删除
func (s *EntityStore) IsMarked(id ecs.EntityID) bool {
	return s.em.IsMarkedForDestroy(id)
}

// Compact 一次性移除所有已标记实体，返回移除数量
func (s *EntityStore) Compact() int {
	return s.em.RemoveMarkedEntities()
}

// Rect 返回实体当前的包围盒
func (s *EntityStore) Rect(id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.NewRect(pos.X, pos.Y, col.Width, col.Height), true
}

// Overlap 检查两个实体的包围盒是否相交
func (s *EntityStore) Overlap(a, b ecs.EntityID) bool {
	ra, ok := s.Rect(a)
	if !ok {
		return false
	}
	rb, ok := s.Rect(b)
	if !ok {
		return false
	}
	return utils.Overlaps(ra, rb)
}
