package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// FrameListener is implemented by scenes that need a hook once per rendered
// frame, before any simulation steps of that frame run.
// 固定步长模式下一帧可能执行 0 个或多个 Update，输入采样应放在这里
type FrameListener interface {
	BeginFrame()
}
