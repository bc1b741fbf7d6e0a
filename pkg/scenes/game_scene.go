package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
	"github.com/decker502/zombierush/pkg/game"
	"github.com/decker502/zombierush/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 34, G: 36, B: 44, A: 255}
	groundColor     = color.RGBA{R: 60, G: 52, B: 40, A: 255}
)

// GameScene 一局游戏
// 持有实体管理器和模拟驱动器，把每个 tick 的移除记录转换为计分
type GameScene struct {
	entityManager *ecs.EntityManager
	settings      *game.SettingsManager
	units         *config.UnitConfig

	input        *systems.InputLatch
	simulation   *systems.Simulation
	playerSystem *systems.PlayerSystem
	spawnSystem  *systems.ZombieSpawnSystem
	renderSystem *systems.RenderSystem
	inspector    *InspectorUI

	playerID ecs.EntityID
	kills    int // 被击杀的敌人数
	escaped  int // 离开世界边界的敌人数
}

// NewGameScene 创建游戏场景并生成玩家
//
// 参数:
//   - units: 单位配置
//   - input: 玩家输入源
//   - settings: 设置管理器，为 nil 时使用默认设置
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 玩家创建失败时返回错误
func NewGameScene(units *config.UnitConfig, input systems.InputSource, settings *game.SettingsManager) (*GameScene, error) {
	if units == nil {
		return nil, fmt.Errorf("unit config cannot be nil")
	}
	if settings == nil {
		settings, _ = game.NewSettingsManager(nil)
	}

	em := ecs.NewEntityManager()
	playerID, err := entities.NewPlayerEntity(em, units)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}

	latch := systems.NewInputLatch(input)
	playerSystem := systems.NewPlayerSystem(em, latch, units)
	spawnSystem := systems.NewZombieSpawnSystem(em, units)

	scene := &GameScene{
		entityManager: em,
		settings:      settings,
		units:         units,
		input:         latch,
		simulation:    systems.NewSimulation(em, units.World, playerSystem, spawnSystem),
		playerSystem:  playerSystem,
		spawnSystem:   spawnSystem,
		renderSystem:  systems.NewRenderSystem(em),
		inspector:     NewInspectorUI(em),
		playerID:      playerID,
	}
	log.Printf("[GameScene] 场景创建完成, 玩家 %d", playerID)
	return scene, nil
}

// BeginFrame 每帧调用一次：采样输入并刷新检查面板
func (s *GameScene) BeginFrame() {
	s.input.Poll()
	if s.settings.GetSettings().ShowInspector {
		s.inspector.Refresh()
	}
}

// Update 推进一个模拟步
func (s *GameScene) Update(deltaTime float64) {
	s.simulation.SetParallel(s.settings.GetSettings().Parallel)

	report := s.simulation.Step(deltaTime)
	for _, removal := range report.Removed {
		if removal.Role != components.RoleEnemy {
			continue
		}
		switch removal.Reason {
		case systems.RemovalKilled:
			s.kills++
		case systems.RemovalEscaped:
			s.escaped++
		}
		log.Printf("[GameScene] tick %d: 敌人 %d 移除 (%s)", report.Tick, removal.ID, removal.Reason)
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// 地面线位于世界坐标 y = -EnemyHalfExtent 处，即敌人碰撞盒底边
	groundY := float32(config.GameWindowHeight/2 + config.EnemyHalfExtent)
	vector.DrawFilledRect(screen, 0, groundY, config.GameWindowWidth, config.GameWindowHeight-groundY, groundColor, false)

	showHitboxes := s.settings.GetSettings().ShowHitboxes
	s.renderSystem.Draw(screen, showHitboxes)

	hud := fmt.Sprintf("Kills: %d  Escaped: %d", s.kills, s.escaped)
	if showHitboxes {
		hud += fmt.Sprintf("\nTick: %d  Actors: %d  TPS: %.0f", s.simulation.Tick(), s.entityManager.Count(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if s.settings.GetSettings().ShowInspector {
		s.inspector.Draw(screen)
	}
}

// SetUnitConfig 应用热重载后的单位配置
// 已存在的实体保持原有属性，新生成的实体使用新配置
func (s *GameScene) SetUnitConfig(units *config.UnitConfig) {
	if units == nil {
		return
	}
	s.units = units
	s.playerSystem.SetUnitConfig(units)
	s.spawnSystem.SetUnitConfig(units)
	s.simulation.SetWorld(units.World)
	log.Printf("[GameScene] 单位配置已更新")
}

// Kills 返回击杀数
func (s *GameScene) Kills() int {
	return s.kills
}

// Escaped 返回逃离的敌人数
func (s *GameScene) Escaped() int {
	return s.escaped
}

// PlayerID 返回玩家实体ID
func (s *GameScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
