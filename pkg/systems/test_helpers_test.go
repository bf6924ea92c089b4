package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/ecs"
	"github.com/gonewx/skyraid/pkg/game"
)

// scriptedRandom 按顺序返回预设随机数，用完后返回 fallback
// fallback 默认 0.99：不触发任何小概率事件
type scriptedRandom struct {
	values   []float64
	next     int
	fallback float64
	calls    int
}

func newScriptedRandom(values ...float64) *scriptedRandom {
	return &scriptedRandom{values: values, fallback: 0.99}
}

func (r *scriptedRandom) Float64() float64 {
	r.calls++
	if r.next < len(r.values) {
		v := r.values[r.next]
		r.next++
		return v
	}
	return r.fallback
}

// testWorld 测试用的一局游戏
type testWorld struct {
	cfg   *config.TuningConfig
	store *game.EntityStore
	gs    *game.GameState
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultTuningConfig()
	return &testWorld{
		cfg:   cfg,
		store: game.NewEntityStore(cfg),
		gs:    game.NewGameState(cfg.Player.StartLives),
	}
}

func (w *testWorld) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.store.EntityManager(), id)
	require.True(t, ok, "entity %d has no position", id)
	return pos
}

func (w *testWorld) velocity(t *testing.T, id ecs.EntityID) *components.VelocityComponent {
	t.Helper()
	vel, ok := ecs.GetComponent[*components.VelocityComponent](w.store.EntityManager(), id)
	require.True(t, ok, "entity %d has no velocity", id)
	return vel
}

func (w *testWorld) moveTo(t *testing.T, id ecs.EntityID, x, y float64) {
	t.Helper()
	pos := w.position(t, id)
	pos.X, pos.Y = x, y
}

func (w *testWorld) exists(id ecs.EntityID) bool {
	return w.store.EntityManager().Exists(id)
}

func (w *testWorld) bossHealth(t *testing.T) int {
	t.Helper()
	id, ok := w.store.Boss()
	require.True(t, ok, "no boss present")
	health, ok := ecs.GetComponent[*components.HealthComponent](w.store.EntityManager(), id)
	require.True(t, ok)
	return health.CurrentHealth
}

// parkPlayer 把玩家移到左下角，避免干扰与玩家无关的测试
func (w *testWorld) parkPlayer(t *testing.T) {
	t.Helper()
	w.moveTo(t, w.store.Player(), 0, config.ArenaHeight-w.cfg.Player.Height)
}
