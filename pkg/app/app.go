// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，
// main.go 负责解析命令行与加载配置，然后调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/game"
	"github.com/gonewx/skyraid/pkg/scenes"
	"github.com/gonewx/skyraid/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Tuning 调参配置，为 nil 时使用默认值
	Tuning *config.TuningConfig
	// Seed 随机种子，每次重新开始时递增，保证同一次启动内的对局可复现
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	runs                     uint64
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 配置日志输出
// 非 verbose 模式下丢弃所有日志；窗口模式与无窗口模式都必须先调用
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	tuning := cfg.Tuning
	if tuning == nil {
		tuning = config.DefaultTuningConfig()
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("调参配置无效: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
	}

	// 每次重新开始都通过工厂创建全新的场景与模拟
	newRun := func() game.Scene {
		seed := cfg.Seed + a.runs
		a.runs++
		log.Printf("[App] Starting run #%d with seed %d", a.runs, seed)
		return scenes.NewGameScene(a.sceneManager, tuning, utils.NewSeededRandom(seed))
	}
	a.sceneManager.SetSceneFactory(newRun)
	a.sceneManager.SwitchTo(newRun())

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.TicksPerSecond 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
