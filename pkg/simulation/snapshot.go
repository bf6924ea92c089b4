package simulation

import (
	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
)

// EntitySnapshot 单个实体的只读视图
type EntitySnapshot struct {
	ID     ecs.EntityID
	Kind   components.EntityKind
	X, Y   float64
	W, H   float64
	Sprite string
}

// Snapshot 一个 tick 结束时的只读状态
// 渲染层只读取快照，从不接触实体存储与游戏状态
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	KillCount int
	Phase     game.Phase

	// Boss 血量，没有 Boss 时都为 0
	BossHealth    int
	BossMaxHealth int

	// 按创建顺序排列的全部实体
	Entities []EntitySnapshot
}

// IsGameOver 快照是否处于终止状态
func (s Snapshot) IsGameOver() bool {
	return s.Phase == game.PhaseGameOver
}

// BossAlive 快照中是否有 Boss
func (s Snapshot) BossAlive() bool {
	return s.BossMaxHealth > 0
}

// Count 统计指定种类的实体数量
func (s Snapshot) Count(kind components.EntityKind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Player 返回玩家实体
func (s Snapshot) Player() (EntitySnapshot, bool) {
	for _, e := range s.Entities {
		if e.Kind == components.KindPlayer {
			return e, true
		}
	}
	return EntitySnapshot{}, false
}

func takeSnapshot(store *game.EntityStore, gs *game.GameState) Snapshot {
	em := store.EntityManager()
	snap := Snapshot{
		Tick:      gs.Tick,
		Score:     gs.Score,
		Lives:     gs.Lives,
		KillCount: gs.KillCount,
		Phase:     gs.Phase,
	}

	if bossID, ok := store.Boss(); ok {
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, bossID); ok {
			snap.BossHealth = health.CurrentHealth
			snap.BossMaxHealth = health.MaxHealth
		}
	}

	ids := em.Entities()
	snap.Entities = make([]EntitySnapshot, 0, len(ids))
	for _, id := range ids {
		kind, ok := kindOf(em, id)
		if !ok {
			continue
		}
		rect, ok := store.Rect(id)
		if !ok {
			continue
		}
		e := EntitySnapshot{
			ID:   id,
			Kind: kind,
			X:    rect.X,
			Y:    rect.Y,
			W:    rect.W,
			H:    rect.H,
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			e.Sprite = sprite.Key
		}
		snap.Entities = append(snap.Entities, e)
	}
	return snap
}

// kindOf 根据标签组件确定实体种类
func kindOf(em *ecs.EntityManager, id ecs.EntityID) (components.EntityKind, bool) {
	switch {
	case ecs.HasComponent[*components.PlayerComponent](em, id):
		return components.KindPlayer, true
	case ecs.HasComponent[*components.BossComponent](em, id):
		return components.KindBoss, true
	case ecs.HasComponent[*components.EnemyComponent](em, id):
		return components.KindEnemy, true
	}
	if bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id); ok {
		switch bullet.Kind {
		case components.BulletFriendly:
			return components.KindFriendlyBullet, true
		case components.BulletHostile:
			return components.KindHostileBullet, true
		}
	}
	return 0, false
}
