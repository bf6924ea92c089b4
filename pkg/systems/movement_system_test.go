package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
)

func TestMovementPlayerClamped(t *testing.T) {
	tests := []struct {
		name         string
		startX       float64
		startY       float64
		dx, dy       float64
		wantX, wantY float64
	}{
		{"自由移动", 100, 100, 5, -5, 105, 95},
		{"左边界", 2, 100, -5, 0, 0, 100},
		{"右边界", 428, 100, 5, 0, 430, 100},
		{"上边界", 100, 3, 0, -5, 100, 0},
		{"下边界", 100, 528, 0, 5, 100, 530},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := w.store.Player()
			w.moveTo(t, player, tt.startX, tt.startY)
			vel := w.velocity(t, player)
			vel.VX, vel.VY = tt.dx, tt.dy

			NewMovementSystem(w.store, newScriptedRandom()).MovePlayer()

			pos := w.position(t, player)
			assert.Equal(t, tt.wantX, pos.X)
			assert.Equal(t, tt.wantY, pos.Y)

			rect, _ := w.store.Rect(player)
			assert.True(t, rect.Within(config.ArenaWidth, config.ArenaHeight))
		})
	}
}

func TestMovementBullets(t *testing.T) {
	w := newTestWorld(t)
	friendly := w.store.AddBullet(components.BulletFriendly, 100, 300)
	hostile := w.store.AddBullet(components.BulletHostile, 100, 300)

	NewMovementSystem(w.store, newScriptedRandom()).MoveWorld()

	assert.Equal(t, 295.0, w.position(t, friendly).Y)
	assert.Equal(t, 305.0, w.position(t, hostile).Y)
}

func TestMovementStraightEnemyDoesNotDrawRandom(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.store.AddEnemy(100, -40, false)
	rng := newScriptedRandom()

	NewMovementSystem(w.store, rng).MoveWorld()

	pos := w.position(t, enemy)
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, -38.0, pos.Y)
	assert.Equal(t, 0, rng.calls)
}

func TestMovementSerpentineRandomTurn(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.store.AddEnemy(100, 0, true)

	// 第 1 个 tick：0.01 < 0.03 触发转向，0.9 > 0.5 选择向右
	rng := newScriptedRandom(0.01, 0.9)
	ms := NewMovementSystem(w.store, rng)

	ms.MoveWorld()
	assert.Equal(t, 4.0, w.velocity(t, enemy).VX)
	assert.Equal(t, 100.0, w.position(t, enemy).X, "dx was still 0 when applied")

	// 第 2 个 tick：没有转向，按 dx 移动
	ms.MoveWorld()
	assert.Equal(t, 104.0, w.position(t, enemy).X)
	assert.Equal(t, 4.0, w.velocity(t, enemy).VX)

	// 随机转向：非零速度直接取反
	rng.values = append(rng.values, 0.0)
	ms.MoveWorld()
	assert.Equal(t, -4.0, w.velocity(t, enemy).VX)
}

func TestMovementSerpentineEdgeReflection(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.store.AddEnemy(2, 0, true)
	w.velocity(t, enemy).VX = -4

	NewMovementSystem(w.store, newScriptedRandom()).MoveWorld()

	// 越过左边缘后反向
	assert.Equal(t, -2.0, w.position(t, enemy).X)
	assert.Equal(t, 4.0, w.velocity(t, enemy).VX)
}

func TestMovementSerpentineZeroVelocityEdgePicksRandomSign(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.store.AddEnemy(config.ArenaWidth-30, 0, true)

	// 0.99: 不触发随机转向；但贴着右边缘，0.2 <= 0.5 选择向左
	NewMovementSystem(w.store, newScriptedRandom(0.99, 0.2)).MoveWorld()

	assert.Equal(t, -4.0, w.velocity(t, enemy).VX)
}

func TestMovementBossPatrolAndFire(t *testing.T) {
	w := newTestWorld(t)
	bossID, ok := w.store.SetBoss(100, -80)
	require.True(t, ok)
	ms := NewMovementSystem(w.store, newScriptedRandom())

	// 冷却从 0 开始：第一个 tick 就开火
	fired := ms.MoveWorld()
	assert.True(t, fired)
	assert.Equal(t, 0.0, w.position(t, bossID).Y, "boss must not stay above the top edge")

	hostile := w.store.Bullets(components.BulletHostile)
	require.Len(t, hostile, 1)
	rect, _ := w.store.Rect(hostile[0])
	bossRect, _ := w.store.Rect(bossID)
	assert.InDelta(t, bossRect.CenterX(), rect.CenterX(), 1e-9, "bullet centred under the boss")
	assert.Equal(t, bossRect.Bottom(), rect.Top())

	boss, _ := ecs.GetComponent[*components.BossComponent](w.store.EntityManager(), bossID)
	assert.Equal(t, w.cfg.Boss.ShootCooldown, boss.ShootCooldown)

	// 接下来 100 个 tick 只递减冷却
	for i := 0; i < w.cfg.Boss.ShootCooldown; i++ {
		assert.False(t, ms.MoveWorld(), "tick %d", i)
	}
	assert.Equal(t, 0, boss.ShootCooldown)
	assert.True(t, ms.MoveWorld())
}

func TestMovementBossHostileBulletNotMovedOnSpawnTick(t *testing.T) {
	w := newTestWorld(t)
	bossID, _ := w.store.SetBoss(100, 0)

	NewMovementSystem(w.store, newScriptedRandom()).MoveWorld()

	bullet := w.store.Bullets(components.BulletHostile)[0]
	bossRect, _ := w.store.Rect(bossID)
	assert.Equal(t, bossRect.Bottom(), w.position(t, bullet).Y)
}

func TestMovementBossClampedToArena(t *testing.T) {
	w := newTestWorld(t)
	bossID, _ := w.store.SetBoss(config.ArenaWidth-82, 0)
	w.velocity(t, bossID).VX = 4

	NewMovementSystem(w.store, newScriptedRandom()).MoveWorld()

	pos := w.position(t, bossID)
	assert.Equal(t, config.ArenaWidth-w.cfg.Boss.Width, pos.X)
	assert.Equal(t, -4.0, w.velocity(t, bossID).VX, "edge contact reverses the patrol")
}
