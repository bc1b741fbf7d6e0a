package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
)

// InputSource 提供玩家操控所需的输入状态
// 游戏运行时由 utils.KeyboardMouseInput 实现，测试中使用脚本化的假输入
type InputSource interface {
	MoveLeft() bool
	MoveRight() bool
	FireJustPressed() bool
}

// PlayerSystem 将输入转换为玩家的速度、朝向、动画区间，并处理开火
// 玩家位置仍由 MovementSystem 根据速度积分
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	units         *config.UnitConfig
}

// NewPlayerSystem 创建玩家操控系统
func NewPlayerSystem(em *ecs.EntityManager, input InputSource, units *config.UnitConfig) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		input:         input,
		units:         units,
	}
}

// SetUnitConfig 替换单位配置
// 已存在的玩家立即使用新的行走速度、枪口偏移和动画区间，之后发射的子弹使用新配置
func (s *PlayerSystem) SetUnitConfig(units *config.UnitConfig) {
	s.units = units
	if units == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		entities.ApplyPlayerConfig(player, units)
	}
}

// Update 读取输入并更新所有玩家实体
func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	em := s.entityManager

	left, right := s.input.MoveLeft(), s.input.MoveRight()
	fire := s.input.FireJustPressed()

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
		if !ok {
			continue
		}

		// 同时按下左右键时互相抵消
		walking := left != right
		switch {
		case walking && left:
			player.FacingLeft = true
			vel.VX = -player.WalkSpeed
		case walking && right:
			player.FacingLeft = false
			vel.VX = player.WalkSpeed
		default:
			vel.VX = 0
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			sprite.FlipX = player.FacingLeft
		}

		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			if walking {
				anim.SetRange(player.Walk.Start, player.Walk.End)
			} else {
				anim.SetRange(player.Idle.Start, player.Idle.End)
			}
		}

		if fire {
			s.fire(id, player)
		}
	}
}

// fire 在玩家前方生成一颗子弹
func (s *PlayerSystem) fire(id ecs.EntityID, player *components.PlayerComponent) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok || s.units == nil {
		return
	}

	dir := player.Direction()
	bulletID, err := entities.NewBulletEntity(s.entityManager, s.units, pos.X+player.MuzzleOffset*dir, pos.Y, dir)
	if err != nil {
		log.Printf("[PlayerSystem] 发射子弹失败: %v", err)
		return
	}
	log.Printf("[PlayerSystem] 玩家 %d 发射子弹 %d (方向 %.0f)", id, bulletID, dir)
}
