package systems

import (
	"math"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
)

// DespawnSystem 标记需要自然消失的实体
//   - 拥有 LifetimeComponent 且已过期的实体
//   - 离开世界边界的非玩家实体
//
// 实体只被标记（DestroyEntity），真正的释放由 Simulation 在 tick 末尾统一执行
type DespawnSystem struct {
	entityManager *ecs.EntityManager
	world         config.WorldConfig
	reasons       map[ecs.EntityID]RemovalReason
}

// NewDespawnSystem 创建消失系统
func NewDespawnSystem(em *ecs.EntityManager, world config.WorldConfig) *DespawnSystem {
	return &DespawnSystem{
		entityManager: em,
		world:         world,
		reasons:       make(map[ecs.EntityID]RemovalReason),
	}
}

// SetWorld 更新世界边界（配置热重载时调用）
func (s *DespawnSystem) SetWorld(world config.WorldConfig) {
	s.world = world
}

// Update 推进生命周期并检查边界
func (s *DespawnSystem) Update(deltaTime float64) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](em) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok {
			continue
		}
		lifetime.CurrentLifetime += deltaTime
		if lifetime.Expired() {
			s.mark(id, RemovalExpired)
		}
	}

	if s.world.HalfWidth <= 0 || s.world.HalfHeight <= 0 {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](em) {
		if ecs.HasComponent[*components.PlayerComponent](em, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if math.Abs(pos.X) > s.world.HalfWidth || math.Abs(pos.Y) > s.world.HalfHeight {
			s.mark(id, RemovalEscaped)
		}
	}
}

func (s *DespawnSystem) mark(id ecs.EntityID, reason RemovalReason) {
	if _, marked := s.reasons[id]; marked {
		return
	}
	s.reasons[id] = reason
	s.entityManager.DestroyEntity(id)
}

// resolve 将 tick 末尾真正释放的实体转换为移除记录，并清空待处理原因
func (s *DespawnSystem) resolve(removed []ecs.EntityID, roles map[ecs.EntityID]components.Role) []Removal {
	out := make([]Removal, 0, len(removed))
	for _, id := range removed {
		reason, ok := s.reasons[id]
		if !ok {
			reason = RemovalOther
		}
		out = append(out, Removal{ID: id, Role: roles[id], Reason: reason})
	}
	clear(s.reasons)
	return out
}
