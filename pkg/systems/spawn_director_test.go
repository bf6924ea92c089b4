package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/ecs"
)

func TestSpawnDirectorDecisionTicks(t *testing.T) {
	w := newTestWorld(t)
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom())

	tests := []struct {
		tick uint64
		want bool
	}{
		{0, false},
		{1, false},
		{59, false},
		{60, true},
		{61, false},
		{120, true},
		{600, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.IsDecisionTick(tt.tick), "tick %d", tt.tick)
	}
}

func TestSpawnDirectorNonPositiveIntervalNeverSpawns(t *testing.T) {
	for _, interval := range []int{0, -60} {
		w := newTestWorld(t)
		w.cfg.Spawn.IntervalTicks = interval
		d := NewSpawnDirector(w.store, w.gs, newScriptedRandom())

		for tick := uint64(0); tick <= 240; tick++ {
			kind, id := d.Update(tick)
			require.Equal(t, SpawnNone, kind, "interval %d tick %d", interval, tick)
			require.Zero(t, id)
		}
		assert.Empty(t, w.store.Enemies())
	}
}

func TestSpawnDirectorOffTickDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	rng := newScriptedRandom()
	d := NewSpawnDirector(w.store, w.gs, rng)

	kind, id := d.Update(59)

	assert.Equal(t, SpawnNone, kind)
	assert.Zero(t, id)
	assert.Empty(t, w.store.Enemies())
	assert.Zero(t, rng.calls)
}

func TestSpawnDirectorSpawnsEnemy(t *testing.T) {
	w := newTestWorld(t)
	// 0.5 -> x = 220；0.1 < 0.3 -> 蛇行
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom(0.5, 0.1))

	kind, id := d.Update(60)

	require.Equal(t, SpawnEnemy, kind)
	require.NotZero(t, id)
	pos := w.position(t, id)
	assert.Equal(t, 220.0, pos.X)
	assert.Equal(t, -40.0, pos.Y)

	enemy, ok := ecs.GetComponent[*components.EnemyComponent](w.store.EntityManager(), id)
	require.True(t, ok)
	assert.True(t, enemy.Serpentine)
	assert.Equal(t, 2.0, w.velocity(t, id).VY)
}

func TestSpawnDirectorStraightEnemy(t *testing.T) {
	w := newTestWorld(t)
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom(0.0, 0.3))

	_, id := d.Decide()

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.store.EntityManager(), id)
	assert.False(t, enemy.Serpentine, "chance is strict: 0.3 is not below 0.3")
	assert.Equal(t, 0.0, w.position(t, id).X)
}

func TestSpawnDirectorBossAfterTenKills(t *testing.T) {
	w := newTestWorld(t)
	w.parkPlayer(t)
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom())
	cs := NewCollisionSystem(w.store, w.gs)

	// 通过 10 次真实击杀把计数推到阈值
	for i := 0; i < 10; i++ {
		w.store.AddEnemy(200, 200, false)
		w.store.AddBullet(components.BulletFriendly, 220, 210)
		require.Equal(t, 1, cs.Update().EnemyKills)
	}
	require.Equal(t, 10, w.gs.KillCount)

	kind, id := d.Update(60)

	require.Equal(t, SpawnBoss, kind)
	assert.Empty(t, w.store.Enemies(), "boss replaces the regular spawn")
	assert.Equal(t, 5, w.bossHealth(t))
	bossID, _ := w.store.Boss()
	assert.Equal(t, bossID, id)
	assert.Equal(t, -80.0, w.position(t, id).Y)
}

func TestSpawnDirectorNoSpawnDuringBossFight(t *testing.T) {
	w := newTestWorld(t)
	w.gs.KillCount = 10
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom())

	first, bossID := d.Update(60)
	require.Equal(t, SpawnBoss, first)

	kind, id := d.Update(120)

	assert.Equal(t, SpawnNone, kind)
	assert.Zero(t, id)
	current, ok := w.store.Boss()
	assert.True(t, ok)
	assert.Equal(t, bossID, current)
	assert.Empty(t, w.store.Enemies())
}

func TestSpawnDirectorEnemiesResumeAfterBoss(t *testing.T) {
	w := newTestWorld(t)
	w.gs.KillCount = 10
	d := NewSpawnDirector(w.store, w.gs, newScriptedRandom())
	d.Update(60)

	w.store.ClearBoss()
	w.gs.ResetKillCount()
	w.store.Compact()

	kind, _ := d.Update(120)
	assert.Equal(t, SpawnEnemy, kind)
}
