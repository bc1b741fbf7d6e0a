// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardMouseInput 基于 ebiten 的键鼠输入源
// A/D 或方向键控制行走，鼠标左键开火
type KeyboardMouseInput struct{}

// MoveLeft 检查是否按住向左移动键
func (KeyboardMouseInput) MoveLeft() bool {
	return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
}

// MoveRight 检查是否按住向右移动键
func (KeyboardMouseInput) MoveRight() bool {
	return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
}

// FireJustPressed 检查本帧是否刚刚按下开火键
// 触摸设备上的新触摸也视为开火
func (KeyboardMouseInput) FireJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
