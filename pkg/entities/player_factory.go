package entities

import (
	"fmt"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/utils"
)

// NewPlayerEntity 创建玩家实体
// 玩家不参与碰撞（中立角色），初始静止并播放站立动画
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.UnitConfig) (ecs.EntityID, error) {
	if cfg == nil {
		return 0, fmt.Errorf("unit config cannot be nil")
	}
	p := cfg.Player

	id, err := NewActor(em, ActorSpec{
		X:    p.SpawnX,
		Y:    p.SpawnY,
		Role: components.RoleNeutral,
		Animation: &AnimationSpec{
			FrameStart:   p.Idle.Start,
			FrameEnd:     p.Idle.End,
			InitialFrame: p.Idle.Start,
			Period:       utils.SecondsToDuration(p.FramePeriod),
		},
		Sprite: &components.SpriteComponent{
			Kind:  components.SpritePlayer,
			Scale: p.Scale,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}

	player := &components.PlayerComponent{}
	ApplyPlayerConfig(player, cfg)
	ecs.AddComponent(em, id, player)

	return id, nil
}

// ApplyPlayerConfig 将单位配置中的操控参数写入玩家组件
// 朝向属于运行时状态，保持不变
func ApplyPlayerConfig(player *components.PlayerComponent, cfg *config.UnitConfig) {
	player.WalkSpeed = cfg.Player.WalkSpeed
	player.MuzzleOffset = cfg.Bullet.MuzzleOffset
	player.Idle = components.FrameRange{Start: cfg.Player.Idle.Start, End: cfg.Player.Idle.End}
	player.Walk = components.FrameRange{Start: cfg.Player.Walk.Start, End: cfg.Player.Walk.End}
}
