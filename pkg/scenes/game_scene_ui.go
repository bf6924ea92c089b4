package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/skyraid/pkg/components"
	"github.com/gonewx/skyraid/pkg/config"
	"github.com/gonewx/skyraid/pkg/utils"
)

const (
	gameOverText    = "GAME OVER"
	restartHintText = "Press R or Enter to restart"
)

// drawHUD 绘制分数、生命图标、Boss 血量和结束横幅
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	s.drawText(screen, fmt.Sprintf("Score: %d", s.snapshot.Score), config.ScoreTextX, config.ScoreTextY, colornames.White)

	heart := SpriteColor(components.SpriteHeart)
	for _, r := range LifeIconRects(s.snapshot.Lives) {
		fillRect(screen, r, heart)
	}

	if s.snapshot.BossAlive() {
		for i, r := range BossPipRects(s.snapshot.BossMaxHealth) {
			clr := colornames.Dimgray
			if i < s.snapshot.BossHealth {
				clr = colornames.Crimson
			}
			fillRect(screen, r, clr)
		}
	}

	if s.snapshot.IsGameOver() {
		s.drawCentredText(screen, gameOverText, config.ArenaHeight/2-10, colornames.Red)
		s.drawCentredText(screen, restartHintText, config.ArenaHeight/2+14, colornames.White)
	}
}

func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFace, op)
}

func (s *GameScene) drawCentredText(screen *ebiten.Image, str string, y float64, clr color.Color) {
	w, _ := text.Measure(str, s.hudFace, 0)
	s.drawText(screen, str, (config.ArenaWidth-w)/2, y, clr)
}

// LifeIconRects 返回每条剩余生命的图标位置（从左到右）
func LifeIconRects(lives int) []utils.Rect {
	if lives <= 0 {
		return nil
	}
	rects := make([]utils.Rect, lives)
	for i := range rects {
		x := config.LifeIconStartX + float64(i)*config.LifeIconSpacing
		rects[i] = utils.NewRect(x, config.LifeIconY, config.LifeIconSize, config.LifeIconSize)
	}
	return rects
}

// BossPipRects 返回 Boss 血量格的位置，整体水平居中
func BossPipRects(maxHealth int) []utils.Rect {
	if maxHealth <= 0 {
		return nil
	}
	total := float64(maxHealth)*config.BossHealthPipWidth + float64(maxHealth-1)*config.BossHealthPipGap
	startX := (config.ArenaWidth - total) / 2

	rects := make([]utils.Rect, maxHealth)
	for i := range rects {
		x := startX + float64(i)*(config.BossHealthPipWidth+config.BossHealthPipGap)
		rects[i] = utils.NewRect(x, config.BossHealthPipY, config.BossHealthPipWidth, config.BossHealthPipHeight)
	}
	return rects
}

func fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
