package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/skyraid/pkg/app"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/embedded"
	"github.com/gonewx/skyraid/pkg/simulation"
	"github.com/gonewx/skyraid/pkg/utils"
)

const defaultTuningPath = "data/tuning.yaml"

var (
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
	configPath    = flag.String("config", "", "调参配置文件路径（默认使用内置的 data/tuning.yaml）")
	seed          = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	headlessTicks = flag.Int("headless-ticks", 0, "不打开窗口，直接模拟指定数量的 tick 后输出结果")
)

func main() {
	flag.Parse()

	// 无窗口模式不经过 app.NewApp，这里统一配置日志
	app.ConfigureLogging(*verbose)
	embedded.Init(dataFS)

	tuning, err := loadTuning(*configPath)
	if err != nil {
		exitf("Failed to load tuning config: %v", err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = uint64(time.Now().UnixNano())
	}

	if *headlessTicks > 0 {
		runHeadless(tuning, runSeed, *headlessTicks)
		return
	}

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Tuning:  tuning,
		Seed:    runSeed,
	})
	if err != nil {
		exitf("Failed to create app: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		exitf("Game exited with error: %v", err)
	}
}

// loadTuning 加载调参配置
// 指定了路径时从磁盘读取，否则使用嵌入的默认配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	data, err := embedded.ReadFile(defaultTuningPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning config: %w", err)
	}
	return config.ParseTuningConfig(data)
}

// runHeadless 无窗口运行：空输入推进模拟，输出最终快照
func runHeadless(tuning *config.TuningConfig, runSeed uint64, ticks int) {
	sim := simulation.NewSimulation(tuning, utils.NewSeededRandom(runSeed))
	snap := simulation.Run(sim, ticks, nil)

	fmt.Printf("seed=%d ticks=%d phase=%s score=%d lives=%d kills=%d entities=%d boss=%d/%d\n",
		runSeed, snap.Tick, snap.Phase, snap.Score, snap.Lives, snap.KillCount,
		len(snap.Entities), snap.BossHealth, snap.BossMaxHealth)
}

// exitf 输出错误并退出
// 非 verbose 模式下 log 输出被丢弃，致命错误直接写到 stderr
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
