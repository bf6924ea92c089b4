package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
)

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()

	id := NewPlayer(em, cfg)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	// 水平居中
	assert.Equal(t, config.ArenaWidth/2-cfg.Player.Width/2, pos.X)
	// 初始位置（600-60=540）会被钳制到 600-70=530
	assert.Equal(t, config.ArenaHeight-cfg.Player.Height, pos.Y)

	assert.True(t, ecs.HasComponent[*components.PlayerComponent](em, id))
	assert.True(t, ecs.HasComponent[*components.VelocityComponent](em, id))
}

func TestNewBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()

	tests := []struct {
		name       string
		kind       components.BulletKind
		wantWidth  float64
		wantSprite string
	}{
		{"玩家子弹", components.BulletFriendly, cfg.Bullet.FriendlyWidth, components.SpriteBullet},
		{"Boss子弹", components.BulletHostile, cfg.Bullet.HostileWidth, components.SpriteEnemyBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewBullet(em, cfg, tt.kind, 100, 200)

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			require.True(t, ok)
			col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
			require.True(t, ok)
			bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id)
			require.True(t, ok)
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
			require.True(t, ok)

			assert.Equal(t, tt.kind, bullet.Kind)
			assert.Equal(t, tt.wantWidth, col.Width)
			assert.Equal(t, tt.wantSprite, sprite.Key)
			// 以 centerX 为中心
			assert.InDelta(t, 100.0, pos.X+col.Width/2, 1e-9)
			assert.Equal(t, 200.0, pos.Y)
		})
	}
}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()

	id := NewEnemy(em, cfg, 10, -40, true)

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 0.0, vel.VX)
	assert.Equal(t, cfg.Enemy.DriftSpeed, vel.VY)

	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	require.True(t, ok)
	assert.True(t, enemy.Serpentine)
	assert.Equal(t, cfg.Enemy.ChangeDirectionChance, enemy.ChangeDirectionChance)
}

func TestNewBoss(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()

	id := NewBoss(em, cfg, 50, -80)

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 5, health.CurrentHealth)
	assert.Equal(t, 5, health.MaxHealth)

	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 0, boss.ShootCooldown)

	// Boss 不是普通敌人
	assert.False(t, ecs.HasComponent[*components.EnemyComponent](em, id))
}
