package systems

import (
	"testing"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
)

func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name   string
		x1, y1 float64
		x2, y2 float64
		want   bool
	}{
		{name: "同一位置", x1: 150, y1: 0, x2: 150, y2: 0, want: true},
		{name: "远离", x1: 150, y1: 0, x2: 300, y2: 0, want: false},
		{name: "X轴刚好接触", x1: 0, y1: 0, x2: 18.5, y2: 0, want: true},
		{name: "X轴刚好分离", x1: 0, y1: 0, x2: 18.6, y2: 0, want: false},
		{name: "Y轴分离", x1: 0, y1: 0, x2: 0, y2: -19, want: false},
		{name: "对角重叠", x1: 0, y1: 0, x2: 10, y2: 10, want: true},
	}

	half1 := components.HalfExtent(components.RoleAttacker)
	half2 := components.HalfExtent(components.RoleEnemy)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkAABBCollision(tt.x1, tt.y1, half1, tt.x2, tt.y2, half2)
			if got != tt.want {
				t.Errorf("checkAABBCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombatSystemHit(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemy(t, em, 150, 0, 100)
	attacker := spawnAttacker(t, em, 150, 0, 10)

	system := NewCombatSystem(em)
	system.Update(1.0 / 60)

	if em.IsAlive(attacker) {
		t.Error("attacker should be consumed on hit")
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](em, enemy)
	if !ok {
		t.Fatal("enemy should survive a non-lethal hit")
	}
	if combat.Health != 90 {
		t.Errorf("enemy health = %d, want 90", combat.Health)
	}

	removals := system.Removals()
	if len(removals) != 1 || removals[0] != (Removal{ID: attacker, Role: components.RoleAttacker, Reason: RemovalHit}) {
		t.Errorf("removals = %+v", removals)
	}
}

func TestCombatSystemMiss(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemy(t, em, 150, 0, 100)
	attacker := spawnAttacker(t, em, 300, 0, 10)

	system := NewCombatSystem(em)
	system.Update(1.0 / 60)

	if !em.IsAlive(attacker) || !em.IsAlive(enemy) {
		t.Fatal("nothing should be removed on a miss")
	}
	combat, _ := ecs.GetComponent[*components.CombatComponent](em, enemy)
	if combat.Health != 100 {
		t.Errorf("enemy health = %d, want 100", combat.Health)
	}
	if len(system.Removals()) != 0 {
		t.Errorf("removals = %+v, want none", system.Removals())
	}
}

func TestCombatSystemLethalHitLeavesSecondAttacker(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemy(t, em, 150, 0, 10)
	first := spawnAttacker(t, em, 150, 0, 10)
	second := spawnAttacker(t, em, 150, 0, 10)

	system := NewCombatSystem(em)
	system.Update(1.0 / 60)

	if em.IsAlive(enemy) {
		t.Error("enemy with health <= 0 should be removed")
	}
	if em.IsAlive(first) {
		t.Error("first attacker should be consumed")
	}
	// 敌人已被移除，第二个攻击者找不到目标
	if !em.IsAlive(second) {
		t.Error("second attacker should survive because its target is gone")
	}

	want := []Removal{
		{ID: first, Role: components.RoleAttacker, Reason: RemovalHit},
		{ID: enemy, Role: components.RoleEnemy, Reason: RemovalKilled},
	}
	got := system.Removals()
	if len(got) != len(want) {
		t.Fatalf("removals = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("removals[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCombatSystemAttackerHitsOnlyFirstEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	first := spawnEnemy(t, em, 150, 0, 100)
	second := spawnEnemy(t, em, 152, 0, 100)
	spawnAttacker(t, em, 151, 0, 10)

	NewCombatSystem(em).Update(1.0 / 60)

	c1, _ := ecs.GetComponent[*components.CombatComponent](em, first)
	c2, _ := ecs.GetComponent[*components.CombatComponent](em, second)
	if c1.Health != 90 {
		t.Errorf("first enemy health = %d, want 90", c1.Health)
	}
	if c2.Health != 100 {
		t.Errorf("second enemy health = %d, want 100", c2.Health)
	}
}

func TestCombatSystemMultipleAttackersAccumulateDamage(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemy(t, em, 0, 0, 100)
	for i := 0; i < 3; i++ {
		spawnAttacker(t, em, 0, 0, 10)
	}

	NewCombatSystem(em).Update(1.0 / 60)

	combat, _ := ecs.GetComponent[*components.CombatComponent](em, enemy)
	if combat.Health != 70 {
		t.Errorf("enemy health = %d, want 70", combat.Health)
	}
	if em.Count() != 1 {
		t.Errorf("only the enemy should remain, count = %d", em.Count())
	}
}

func TestCombatSystemSweepsZeroHealthEnemies(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemy(t, em, 0, 0, 0)

	system := NewCombatSystem(em)
	system.Update(1.0 / 60)

	if em.IsAlive(enemy) {
		t.Error("enemy spawned with zero health should be removed by the sweep")
	}
	if got := system.Removals(); len(got) != 1 || got[0].Reason != RemovalKilled {
		t.Errorf("removals = %+v", got)
	}
}

func TestCombatSystemIgnoresNeutralActors(t *testing.T) {
	em := ecs.NewEntityManager()
	player, err := entities.NewActor(em, entities.ActorSpec{
		Role:   components.RoleNeutral,
		Combat: &entities.CombatSpec{Health: 5, Damage: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	enemy := spawnEnemy(t, em, 0, 0, 100)

	NewCombatSystem(em).Update(1.0 / 60)

	if !em.IsAlive(player) || !em.IsAlive(enemy) {
		t.Error("neutral actors must not take part in combat")
	}
}

func TestCombatSystemRemovalsResetEachUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnEnemy(t, em, 0, 0, 100)
	spawnAttacker(t, em, 0, 0, 10)

	system := NewCombatSystem(em)
	system.Update(1.0 / 60)
	if len(system.Removals()) != 1 {
		t.Fatalf("first update removals = %+v", system.Removals())
	}
	system.Update(1.0 / 60)
	if len(system.Removals()) != 0 {
		t.Errorf("second update should report nothing, got %+v", system.Removals())
	}
}
