package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/game"
	"github.com/gonewx/skyraid/pkg/simulation"
	"github.com/gonewx/skyraid/pkg/utils"
)

// InputReader 读取当前帧的键盘输入
// 默认使用 utils.GetInputState，测试中替换为脚本化输入
type InputReader func() utils.InputState

// GameScene 竞技场场景
//
// 每个 ebiten tick 读取一次键盘输入并推进模拟一个 tick，
// 绘制时只读取最近一次的快照。游戏结束后按下重新开始键，
// 由 SceneManager 通过工厂创建全新的场景（和全新的模拟）。
type GameScene struct {
	sceneManager *game.SceneManager
	cfg          *config.TuningConfig
	sim          *simulation.Simulation
	snapshot     simulation.Snapshot
	readInput    InputReader

	hudFace text.Face
}

// NewGameScene 创建竞技场场景
//
// 参数:
//   - sceneManager: 场景管理器（用于重新开始）
//   - cfg: 调参配置
//   - rng: 模拟使用的随机数来源
func NewGameScene(sceneManager *game.SceneManager, cfg *config.TuningConfig, rng utils.RandomSource) *GameScene {
	sim := simulation.NewSimulation(cfg, rng)
	log.Printf("[GameScene] New run: lives=%d, spawnInterval=%d ticks", cfg.Player.StartLives, cfg.Spawn.IntervalTicks)

	return &GameScene{
		sceneManager: sceneManager,
		cfg:          cfg,
		sim:          sim,
		snapshot:     sim.Snapshot(),
		readInput:    utils.GetInputState,
		hudFace:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetInputReader 替换输入来源
func (s *GameScene) SetInputReader(reader InputReader) {
	s.readInput = reader
}

// Snapshot 返回最近一次的快照
func (s *GameScene) Snapshot() simulation.Snapshot {
	return s.snapshot
}

// Update 推进一个 tick
// 模拟以 tick 计时，deltaTime 不参与任何逻辑
func (s *GameScene) Update(deltaTime float64) {
	in := s.readInput()

	if s.snapshot.IsGameOver() {
		if in.RestartJustPressed {
			s.sceneManager.Restart()
		}
		return
	}

	s.snapshot = s.sim.Step(PlayerIntent(in, s.cfg.Player.Speed))
}

// PlayerIntent 把键盘状态换算成模拟输入
// 方向乘以玩家速度；开火是边沿触发，一次按键只产生一个 tick 的开火意图
func PlayerIntent(in utils.InputState, speed float64) simulation.Input {
	return simulation.Input{
		DX:   in.MoveX * speed,
		DY:   in.MoveY * speed,
		Fire: in.FireJustPressed,
	}
}

// Draw 绘制快照中的全部实体与 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for _, e := range s.snapshot.Entities {
		fillRect(screen, utils.NewRect(e.X, e.Y, e.W, e.H), SpriteColor(e.Sprite))
	}

	s.drawHUD(screen)
}

// spritePalette 资源标识到颜色的映射
// 没有图片资源时用纯色矩形代替精灵
var spritePalette = map[string]color.RGBA{
	components.SpritePlayer:      colornames.Deepskyblue,
	components.SpriteBullet:      colornames.Gold,
	components.SpriteEnemyBullet: colornames.Orangered,
	components.SpriteEnemy:       colornames.Limegreen,
	components.SpriteBoss:        colornames.Crimson,
	components.SpriteHeart:       colornames.Hotpink,
}

// SpriteColor 返回资源标识对应的颜色，未知标识使用洋红色
func SpriteColor(key string) color.RGBA {
	if c, ok := spritePalette[key]; ok {
		return c
	}
	return colornames.Magenta
}
