package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的键盘输入状态
type InputState struct {
	// 移动方向，每个轴取值 -1 / 0 / 1
	MoveX, MoveY float64
	// 开火键是否在本帧刚刚按下（边沿触发，一次按键只消费一次）
	FireJustPressed bool
	// 重新开始键是否在本帧刚刚按下
	RestartJustPressed bool
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	upKeys      = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	fireKeys    = []ebiten.Key{ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
)

// GetInputState 获取当前帧的键盘输入状态
// 方向键持续按住生效，开火与重新开始只在按下的那一帧生效
func GetInputState() InputState {
	return InputState{
		MoveX:              ResolveAxis(anyPressed(leftKeys), anyPressed(rightKeys)),
		MoveY:              ResolveAxis(anyPressed(upKeys), anyPressed(downKeys)),
		FireJustPressed:    anyJustPressed(fireKeys),
		RestartJustPressed: anyJustPressed(restartKeys),
	}
}

// ResolveAxis 将一对相反方向的按键合成为单轴方向
// 两个方向同时按下时互相抵消
func ResolveAxis(negative, positive bool) float64 {
	axis := 0.0
	if negative {
		axis--
	}
	if positive {
		axis++
	}
	return axis
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
