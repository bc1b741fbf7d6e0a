package systems

import (
	"testing"
	"time"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
)

// newTestUnits 返回与 data/units.yaml 默认值一致的配置
func newTestUnits() *config.UnitConfig {
	return &config.UnitConfig{
		Player: config.PlayerConfig{
			SpawnX: -100, WalkSpeed: 200, Scale: 3, FramePeriod: 0.1,
			Idle: config.FrameRangeConfig{Start: 0, End: 0},
			Walk: config.FrameRangeConfig{Start: 1, End: 5},
		},
		Bullet: config.BulletConfig{Speed: 500, MuzzleOffset: 50, Damage: 10, Lifetime: 3, Scale: 1},
		Zombie: config.ZombieConfig{
			SpawnX: 150, Speed: -10, Health: 100, Damage: 1, Scale: 0.3, FramePeriod: 0.1,
			Frames: config.FrameRangeConfig{Start: 0, End: 5},
		},
		World: config.WorldConfig{HalfWidth: 640, HalfHeight: 360},
	}
}

// spawnEnemy 在 (x, y) 生成一个静止的敌人
func spawnEnemy(t *testing.T, em *ecs.EntityManager, x, y float64, health int64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewActor(em, entities.ActorSpec{
		X: x, Y: y,
		Role:   components.RoleEnemy,
		Combat: &entities.CombatSpec{Health: health, Damage: 1},
	})
	if err != nil {
		t.Fatalf("spawn enemy: %v", err)
	}
	return id
}

// spawnAttacker 在 (x, y) 生成一个静止的攻击者
func spawnAttacker(t *testing.T, em *ecs.EntityManager, x, y float64, damage int64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewActor(em, entities.ActorSpec{
		X: x, Y: y,
		Role:   components.RoleAttacker,
		Combat: &entities.CombatSpec{Health: 1, Damage: damage},
	})
	if err != nil {
		t.Fatalf("spawn attacker: %v", err)
	}
	return id
}

// spawnAnimated 生成一个只有动画的实体
func spawnAnimated(t *testing.T, em *ecs.EntityManager, start, end int, mode components.TimerMode) ecs.EntityID {
	t.Helper()
	id, err := entities.NewActor(em, entities.ActorSpec{
		Animation: &entities.AnimationSpec{
			FrameStart: start, FrameEnd: end, InitialFrame: start,
			Period: 100 * time.Millisecond, Mode: mode,
		},
	})
	if err != nil {
		t.Fatalf("spawn animated: %v", err)
	}
	return id
}

func mustAnimation(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.AnimationComponent {
	t.Helper()
	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no animation", id)
	}
	return anim
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}
