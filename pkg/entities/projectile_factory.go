package entities

import (
	"fmt"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
)

// NewBulletEntity 创建子弹实体
// 子弹以恒定速度沿朝向飞行，命中第一个敌人后立即消失
//
// 参数:
//   - em: 实体管理器
//   - cfg: 单位配置
//   - startX, startY: 子弹起始世界坐标
//   - direction: 飞行方向，-1 向左，1 向右
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBulletEntity(em *ecs.EntityManager, cfg *config.UnitConfig, startX, startY, direction float64) (ecs.EntityID, error) {
	if cfg == nil {
		return 0, fmt.Errorf("unit config cannot be nil")
	}
	if direction != -1 && direction != 1 {
		return 0, fmt.Errorf("bullet direction must be -1 or 1, got %v", direction)
	}
	b := cfg.Bullet

	id, err := NewActor(em, ActorSpec{
		X:    startX,
		Y:    startY,
		VX:   b.Speed * direction,
		Role: components.RoleAttacker,
		// 子弹本身的生命值不参与结算，只需非负
		Combat: &CombatSpec{Health: 1, Damage: b.Damage},
		Sprite: &components.SpriteComponent{
			Kind:  components.SpriteBullet,
			FlipX: direction < 0,
			Scale: b.Scale,
		},
		Lifetime: b.Lifetime,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create bullet: %w", err)
	}
	return id, nil
}
