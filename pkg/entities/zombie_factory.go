package entities

import (
	"fmt"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/utils"
)

// NewZombieEntity 创建僵尸实体
// 僵尸在配置的位置生成，以恒定速度向玩家移动，循环播放行走动画
//
// 参数:
//   - em: 实体管理器
//   - cfg: 单位配置
//
// 返回:
//   - ecs.EntityID: 创建的僵尸实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewZombieEntity(em *ecs.EntityManager, cfg *config.UnitConfig) (ecs.EntityID, error) {
	if cfg == nil {
		return 0, fmt.Errorf("unit config cannot be nil")
	}
	z := cfg.Zombie

	id, err := NewActor(em, ActorSpec{
		X:    z.SpawnX,
		Y:    z.SpawnY,
		VX:   z.Speed,
		Role: components.RoleEnemy,
		Animation: &AnimationSpec{
			FrameStart:   z.Frames.Start,
			FrameEnd:     z.Frames.End,
			InitialFrame: z.Frames.Start,
			Period:       utils.SecondsToDuration(z.FramePeriod),
		},
		Combat: &CombatSpec{Health: z.Health, Damage: z.Damage},
		Sprite: &components.SpriteComponent{
			Kind:  components.SpriteZombie,
			FlipX: z.Speed < 0, // 向左走时面朝左
			Scale: z.Scale,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create zombie: %w", err)
	}
	return id, nil
}
