package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %f, got %f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw are safe without a scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}

// TestSceneManagerRestart verifies that Restart swaps in a fresh scene from the factory.
func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	sm.SwitchTo(first)

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})

	sm.Restart()

	if created != 1 {
		t.Fatalf("Expected factory to be called once, got %d", created)
	}
	if sm.GetCurrentScene() == first {
		t.Error("Restart should replace the current scene")
	}
	if sm.Restarts() != 1 {
		t.Errorf("Expected 1 restart, got %d", sm.Restarts())
	}

	// 旧场景不再被更新
	sm.Update(1.0 / 60.0)
	if first.updateCalled {
		t.Error("Old scene must not be updated after restart")
	}
}

// TestSceneManagerRestartWithoutFactory verifies Restart keeps the scene when no factory is set.
func TestSceneManagerRestartWithoutFactory(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Restart()

	if sm.GetCurrentScene() != scene {
		t.Error("Restart without factory should keep the current scene")
	}
}
