package systems

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/utils"
)

// AnimationSystem 管理所有实体的循环帧动画
// 只修改 AnimationComponent，不读写其他组件
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有动画实体的计时器，每完成一个周期前进一帧
// 帧到达 FrameEnd 后回到 FrameStart
func (s *AnimationSystem) Update(deltaTime float64) {
	dt := utils.SecondsToDuration(deltaTime)

	entities := ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager)
	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 单帧区间同样推进计时器，只是换帧后仍停留在同一帧
		if completed := anim.Timer.Advance(dt); completed > 0 {
			anim.Step(completed)
		}
	}
}
