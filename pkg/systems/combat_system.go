package systems

import (
	"log"
	"math"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

// CombatSystem 处理攻击者与敌人之间的碰撞结算
//
// 规则:
//   - 攻击者与敌人按实体ID顺序两两检测 AABB 重叠
//   - 每个攻击者每个 tick 最多命中一个敌人（首个命中者生效），命中后立即移除
//   - 敌人扣除攻击者的伤害值，生命值 <= 0 时立即移除
//   - 已移除的实体不会再参与后续检测
type CombatSystem struct {
	entityManager *ecs.EntityManager
	removals      []Removal // 本 tick 的移除记录
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
	}
}

// combatant 是参与本 tick 结算的实体快照
type combatant struct {
	id     ecs.EntityID
	pos    *components.PositionComponent
	combat *components.CombatComponent
	half   float64
}

// checkAABBCollision 检查两个中心对齐的正方形碰撞盒是否重叠
// 边界刚好接触也算作重叠
//
// 参数:
//   - x1, y1, half1: 第一个碰撞盒的中心和半边长
//   - x2, y2, half2: 第二个碰撞盒的中心和半边长
func checkAABBCollision(x1, y1, half1, x2, y2, half2 float64) bool {
	reach := half1 + half2
	return math.Abs(x1-x2) <= reach && math.Abs(y1-y2) <= reach
}

// Update 执行一次碰撞结算
// 必须在 MovementSystem 之后调用，以读取本 tick 更新后的位置
func (s *CombatSystem) Update(deltaTime float64) {
	s.removals = s.removals[:0]

	attackers, enemies := s.collectCombatants()
	if len(enemies) == 0 {
		return
	}

	for _, attacker := range attackers {
		for _, enemy := range enemies {
			if !s.entityManager.IsAlive(enemy.id) {
				continue
			}
			if !checkAABBCollision(attacker.pos.X, attacker.pos.Y, attacker.half,
				enemy.pos.X, enemy.pos.Y, enemy.half) {
				continue
			}

			enemy.combat.Health -= attacker.combat.Damage
			s.remove(attacker.id, components.RoleAttacker, RemovalHit)

			if enemy.combat.IsDead() {
				log.Printf("[CombatSystem] 敌人 %d 被攻击者 %d 击杀", enemy.id, attacker.id)
				s.remove(enemy.id, components.RoleEnemy, RemovalKilled)
			}

			// 一个攻击者只能命中一个敌人
			break
		}
	}

	// 清理本 tick 之前就已经没有生命值的敌人（如以 0 生命值生成）
	for _, enemy := range enemies {
		if s.entityManager.IsAlive(enemy.id) && enemy.combat.IsDead() {
			s.remove(enemy.id, components.RoleEnemy, RemovalKilled)
		}
	}
}

// collectCombatants 按角色拆分参与结算的实体，顺序与实体ID一致
func (s *CombatSystem) collectCombatants() (attackers, enemies []combatant) {
	em := s.entityManager
	ids := ecs.GetEntitiesWith3[*components.RoleComponent, *components.PositionComponent, *components.CombatComponent](em)

	for _, id := range ids {
		role, _ := ecs.GetComponent[*components.RoleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		combat, _ := ecs.GetComponent[*components.CombatComponent](em, id)
		if role == nil || pos == nil || combat == nil {
			continue
		}

		c := combatant{id: id, pos: pos, combat: combat, half: components.HalfExtent(role.Role)}
		switch role.Role {
		case components.RoleAttacker:
			attackers = append(attackers, c)
		case components.RoleEnemy:
			enemies = append(enemies, c)
		}
	}
	return attackers, enemies
}

func (s *CombatSystem) remove(id ecs.EntityID, role components.Role, reason RemovalReason) {
	if s.entityManager.RemoveEntity(id) {
		s.removals = append(s.removals, Removal{ID: id, Role: role, Reason: reason})
	}
}

// Removals 返回最近一次 Update 移除的实体
// 返回的切片在下一次 Update 时会被复用，调用方需要时应自行拷贝
func (s *CombatSystem) Removals() []Removal {
	return s.removals
}
