package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

// 构造错误：非法参数在创建实体时立即拒绝，不会留到运行时的系统中
var (
	ErrNilEntityManager   = errors.New("entity manager cannot be nil")
	ErrInvalidFrameRange  = errors.New("invalid animation frame range")
	ErrNonPositivePeriod  = errors.New("animation period must be positive")
	ErrNegativeHealth     = errors.New("initial health cannot be negative")
	ErrMissingCombatStats = errors.New("attacker and enemy actors require combat stats")
)

// AnimationSpec 描述实体的循环动画
type AnimationSpec struct {
	FrameStart   int
	FrameEnd     int
	InitialFrame int // 初始帧，需落在 [FrameStart, FrameEnd] 内
	Period       time.Duration
	Mode         components.TimerMode
}

// CombatSpec 描述实体的战斗属性
type CombatSpec struct {
	Health int64
	Damage int64
}

// ActorSpec 描述一个待生成的实体
// Animation / Combat / Sprite 为 nil 时表示实体不具备对应能力
type ActorSpec struct {
	X, Y      float64
	VX        float64
	Role      components.Role
	Animation *AnimationSpec
	Combat    *CombatSpec
	Sprite    *components.SpriteComponent
	Lifetime  float64 // 最长存在时间（秒），0 表示不限
}

// ValidateActorSpec 检查实体描述是否合法
//
// 返回:
//   - error: 包装了 ErrInvalidFrameRange / ErrNonPositivePeriod /
//     ErrNegativeHealth / ErrMissingCombatStats 之一，可用 errors.Is 判断
func ValidateActorSpec(spec ActorSpec) error {
	if anim := spec.Animation; anim != nil {
		if anim.FrameStart < 0 || anim.FrameStart > anim.FrameEnd {
			return fmt.Errorf("frames [%d, %d]: %w", anim.FrameStart, anim.FrameEnd, ErrInvalidFrameRange)
		}
		if anim.InitialFrame < anim.FrameStart || anim.InitialFrame > anim.FrameEnd {
			return fmt.Errorf("initial frame %d outside [%d, %d]: %w",
				anim.InitialFrame, anim.FrameStart, anim.FrameEnd, ErrInvalidFrameRange)
		}
		if anim.Period <= 0 {
			return fmt.Errorf("period %v: %w", anim.Period, ErrNonPositivePeriod)
		}
	}

	if spec.Combat != nil && spec.Combat.Health < 0 {
		return fmt.Errorf("health %d: %w", spec.Combat.Health, ErrNegativeHealth)
	}

	if spec.Combat == nil && (spec.Role == components.RoleAttacker || spec.Role == components.RoleEnemy) {
		return fmt.Errorf("role %s: %w", spec.Role, ErrMissingCombatStats)
	}

	return nil
}

// NewActor 校验并创建实体，返回新实体ID
//
// 参数:
//   - em: 实体管理器
//   - spec: 实体描述
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，如果失败返回 0
//   - error: 参数非法时返回错误，此时不会创建任何实体
func NewActor(em *ecs.EntityManager, spec ActorSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, ErrNilEntityManager
	}
	if err := ValidateActorSpec(spec); err != nil {
		return 0, err
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: spec.VX})
	ecs.AddComponent(em, entityID, &components.RoleComponent{Role: spec.Role})

	if anim := spec.Animation; anim != nil {
		ecs.AddComponent(em, entityID, &components.AnimationComponent{
			FrameStart:   anim.FrameStart,
			FrameEnd:     anim.FrameEnd,
			CurrentFrame: anim.InitialFrame,
			Timer:        components.NewRepeatingTimer(anim.Period, anim.Mode),
		})
	}

	if c := spec.Combat; c != nil {
		ecs.AddComponent(em, entityID, &components.CombatComponent{
			Health:    c.Health,
			MaxHealth: c.Health,
			Damage:    c.Damage,
		})
	}

	if spec.Sprite != nil {
		sprite := *spec.Sprite
		ecs.AddComponent(em, entityID, &sprite)
	}

	if spec.Lifetime > 0 {
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: spec.Lifetime})
	}

	return entityID, nil
}
