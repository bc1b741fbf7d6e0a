package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"golang.org/x/sync/errgroup"
)

// System 是按 tick 更新的系统
type System interface {
	Update(deltaTime float64)
}

// TickReport 描述一次模拟步的结果
type TickReport struct {
	Tick    uint64    // 从 1 开始的模拟步序号
	Removed []Removal // 本步移除的实体（战斗结算在前，自然消失在后）
}

// Simulation 按固定顺序驱动一次模拟步
//
// 顺序:
//  1. 控制系统（输入、生成），按注册顺序
//  2. AnimationSystem 与 MovementSystem（两者互不读写对方的组件，可并行）
//  3. CombatSystem（读取本步移动后的位置）
//  4. DespawnSystem，然后统一释放被标记的实体
type Simulation struct {
	entityManager   *ecs.EntityManager
	controlSystems  []System
	animationSystem *AnimationSystem
	movementSystem  *MovementSystem
	combatSystem    *CombatSystem
	despawnSystem   *DespawnSystem
	parallel        bool
	tick            uint64
}

// NewSimulation 创建模拟驱动器
//
// 参数:
//   - em: 实体管理器（唯一的共享可变状态）
//   - world: 世界边界，用于自然消失判定
//   - control: 在动画/移动之前运行的控制系统
func NewSimulation(em *ecs.EntityManager, world config.WorldConfig, control ...System) *Simulation {
	return &Simulation{
		entityManager:   em,
		controlSystems:  append([]System(nil), control...),
		animationSystem: NewAnimationSystem(em),
		movementSystem:  NewMovementSystem(em),
		combatSystem:    NewCombatSystem(em),
		despawnSystem:   NewDespawnSystem(em, world),
	}
}

// SetParallel 设置动画与移动阶段是否并行执行
func (s *Simulation) SetParallel(parallel bool) {
	s.parallel = parallel
}

// SetWorld 更新世界边界
func (s *Simulation) SetWorld(world config.WorldConfig) {
	s.despawnSystem.SetWorld(world)
}

// Tick 返回已执行的模拟步数
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Step 执行一次模拟步
//
// 参数:
//   - deltaTime: 本步时长（秒），必须为正；非正值不推进模拟
//
// 返回:
//   - TickReport: 本步序号和移除记录
func (s *Simulation) Step(deltaTime float64) TickReport {
	if deltaTime <= 0 {
		log.Printf("[Simulation] 忽略非正的时间步长: %v", deltaTime)
		return TickReport{Tick: s.tick}
	}
	s.tick++

	for _, system := range s.controlSystems {
		system.Update(deltaTime)
	}

	s.updateMotionStage(deltaTime)

	s.combatSystem.Update(deltaTime)
	removed := append([]Removal(nil), s.combatSystem.Removals()...)

	s.despawnSystem.Update(deltaTime)
	removed = append(removed, s.flushMarked()...)

	return TickReport{Tick: s.tick, Removed: removed}
}

// updateMotionStage 运行动画与移动
// 两个系统分别独占 AnimationComponent 与 PositionComponent，并行时无需加锁
func (s *Simulation) updateMotionStage(deltaTime float64) {
	if !s.parallel {
		s.animationSystem.Update(deltaTime)
		s.movementSystem.Update(deltaTime)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		s.animationSystem.Update(deltaTime)
		return nil
	})
	g.Go(func() error {
		s.movementSystem.Update(deltaTime)
		return nil
	})
	_ = g.Wait()
}

// flushMarked 释放本步被标记的实体并生成移除记录
func (s *Simulation) flushMarked() []Removal {
	marked := s.entityManager.MarkedEntities()
	if len(marked) == 0 {
		return nil
	}

	roles := make(map[ecs.EntityID]components.Role, len(marked))
	for _, id := range marked {
		if role, ok := ecs.GetComponent[*components.RoleComponent](s.entityManager, id); ok {
			roles[id] = role.Role
		}
	}

	return s.despawnSystem.resolve(s.entityManager.RemoveMarkedEntities(), roles)
}
