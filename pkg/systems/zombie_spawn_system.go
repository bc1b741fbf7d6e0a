package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
	"github.com/decker502/zombierush/pkg/utils"
)

// ZombieSpawnSystem 管理僵尸的生成
// 第一次更新时立即生成一只僵尸；配置了 spawnInterval 时按间隔继续生成，
// 同时存活数量受 maxAlive 限制
type ZombieSpawnSystem struct {
	entityManager *ecs.EntityManager
	units         *config.UnitConfig
	timer         components.TimerComponent
	spawnedFirst  bool
	enabled       bool
}

// NewZombieSpawnSystem 创建僵尸生成系统
func NewZombieSpawnSystem(em *ecs.EntityManager, units *config.UnitConfig) *ZombieSpawnSystem {
	s := &ZombieSpawnSystem{
		entityManager: em,
		enabled:       true,
	}
	s.SetUnitConfig(units)
	return s
}

// SetUnitConfig 替换单位配置，生成间隔立即生效，已累计的时间保留
func (s *ZombieSpawnSystem) SetUnitConfig(units *config.UnitConfig) {
	s.units = units
	if units == nil {
		return
	}
	elapsed := s.timer.Elapsed
	s.timer = components.NewRepeatingTimer(utils.SecondsToDuration(units.Zombie.SpawnInterval), components.TimerReset)
	s.timer.Elapsed = elapsed
	log.Printf("[ZombieSpawnSystem] 生成间隔 %.1fs, 最大存活 %d", units.Zombie.SpawnInterval, units.Zombie.MaxAlive)
}

// SetEnabled 启用或禁用生成
func (s *ZombieSpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update 推进生成计时器
func (s *ZombieSpawnSystem) Update(deltaTime float64) {
	if !s.enabled || s.units == nil {
		return
	}

	if !s.spawnedFirst {
		s.spawnedFirst = true
		s.spawn()
		return
	}

	// 计时器周期为 0 时 Advance 永远返回 0，即只生成一次
	if s.timer.Advance(utils.SecondsToDuration(deltaTime)) == 0 {
		return
	}

	if limit := s.units.Zombie.MaxAlive; limit > 0 && s.aliveCount() >= limit {
		return
	}
	s.spawn()
}

func (s *ZombieSpawnSystem) spawn() {
	id, err := entities.NewZombieEntity(s.entityManager, s.units)
	if err != nil {
		log.Printf("[ZombieSpawnSystem] 生成僵尸失败: %v", err)
		return
	}
	log.Printf("[ZombieSpawnSystem] 生成僵尸 %d", id)
}

// aliveCount 统计当前存活的敌人数量
func (s *ZombieSpawnSystem) aliveCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](s.entityManager) {
		role, _ := ecs.GetComponent[*components.RoleComponent](s.entityManager, id)
		if role.Role == components.RoleEnemy {
			count++
		}
	}
	return count
}
