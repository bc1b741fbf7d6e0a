// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，负责加载配置、
// 选择步进方式并把 ebiten 的游戏循环转发给当前场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/game"
	"github.com/decker502/zombierush/pkg/scenes"
	"github.com/decker502/zombierush/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "zombierush"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// UnitsPath 磁盘上的单位配置文件，为空时使用嵌入的 data/units.yaml
	UnitsPath string
	// Watch 监听 UnitsPath 的变更并热重载（需要同时指定 UnitsPath）
	Watch bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.GameScene
	settings     *game.SettingsManager
	units        *config.UnitConfig
	unitsPath    string
	watcher      *config.Watcher

	clock      *utils.FixedStepClock
	clockRate  int
	lastUpdate time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// gdata 不可用时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	units, err := loadUnits(cfg.UnitsPath)
	if err != nil {
		return nil, fmt.Errorf("单位配置加载失败: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		units:        units,
		unitsPath:    cfg.UnitsPath,
	}
	if err := a.restart(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		if cfg.UnitsPath == "" {
			log.Printf("[App] Warning: -watch requires -units, hot reload disabled")
		} else if a.watcher, err = config.NewWatcher(filepath.Dir(cfg.UnitsPath)); err != nil {
			log.Printf("[App] Warning: failed to watch %s: %v", cfg.UnitsPath, err)
			a.watcher = nil
		} else {
			log.Printf("[App] Watching %s for changes", cfg.UnitsPath)
		}
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// loadUnits 从磁盘或嵌入资源加载单位配置
func loadUnits(path string) (*config.UnitConfig, error) {
	if path == "" {
		return config.LoadUnitConfig(config.DefaultUnitsPath)
	}
	return config.LoadUnitConfigFile(path)
}

// restart 以当前配置开始新的一局
func (a *App) restart() error {
	scene, err := scenes.NewGameScene(a.units, utils.KeyboardMouseInput{}, a.settings)
	if err != nil {
		return fmt.Errorf("场景创建失败: %w", err)
	}
	a.scene = scene
	a.sceneManager.SwitchTo(scene)
	a.clock = nil
	a.lastUpdate = time.Time{}
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Close()
		return ebiten.Termination
	}

	a.handleHotkeys()
	a.pollWatcher()

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// 输入每帧只采样一次，与本帧执行多少个模拟步无关
	if scene, ok := a.sceneManager.GetCurrentScene().(game.FrameListener); ok {
		scene.BeginFrame()
	}

	if a.settings.GetSettings().FixedStep {
		a.updateFixedStep()
	} else {
		a.updateVariableStep()
	}
	return nil
}

// handleHotkeys 处理调试与显示相关的快捷键
//   - F2: 实体检查面板
//   - F3: 碰撞盒
//   - F4: 并行动画/移动阶段
//   - F5: 固定步长 / 可变步长
//   - F6 / F7: 固定步长模式的模拟频率减半 / 加倍
//   - F11: 全屏
//   - R: 重新开始
func (a *App) handleHotkeys() {
	s := a.settings.GetSettings()
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.settings.SetShowInspector(!s.ShowInspector)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.settings.SetShowHitboxes(!s.ShowHitboxes)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		a.settings.SetParallel(!s.Parallel)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.settings.SetFixedStep(!s.FixedStep)
		a.clock = nil
		a.lastUpdate = time.Time{}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		a.changeTickRate(false)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF7) {
		a.changeTickRate(true)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.restart(); err != nil {
			log.Printf("[App] 重新开始失败: %v", err)
		}
	}

	if changed {
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}
}

// changeTickRate 将模拟频率加倍或减半，结果由设置管理器限制在合法范围内
// 下一帧 updateFixedStep 发现频率变化后会重建时钟
func (a *App) changeTickRate(faster bool) {
	rate := a.settings.GetSettings().TickRate
	if faster {
		rate *= 2
	} else {
		rate /= 2
	}
	a.settings.SetTickRate(rate)
	log.Printf("[App] 模拟频率: %d Hz", a.settings.GetSettings().TickRate)
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 退出全屏后等待几帧再设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// pollWatcher 非阻塞地处理配置变更通知
func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			if filepath.Base(path) == filepath.Base(a.unitsPath) {
				a.reloadUnits()
			}
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("[App] Watcher error: %v", err)
		default:
			return
		}
	}
}

// reloadUnits 重新读取单位配置，解析失败时保留旧配置
func (a *App) reloadUnits() {
	units, err := config.LoadUnitConfigFile(a.unitsPath)
	if err != nil {
		log.Printf("[App] 热重载失败，继续使用旧配置: %v", err)
		return
	}
	a.units = units
	a.scene.SetUnitConfig(units)
	log.Printf("[App] 已热重载 %s", a.unitsPath)
}

// updateFixedStep 按固定步长推进，每帧执行整数个模拟步
func (a *App) updateFixedStep() {
	rate := a.settings.GetSettings().TickRate
	if a.clock == nil || a.clockRate != rate {
		a.clock = utils.NewFixedStepClock(rate, config.MaxStepsPerFrame)
		a.clockRate = rate
	}

	frame := utils.SecondsToDuration(1 / float64(ebiten.TPS()))
	steps := a.clock.Advance(frame)
	for i := 0; i < steps; i++ {
		a.sceneManager.Update(a.clock.Step())
	}
}

// updateVariableStep 按实际经过的时间推进，单帧时间不超过 MaxDeltaTime
func (a *App) updateVariableStep() {
	now := time.Now()
	deltaTime := 1 / float64(ebiten.TPS())
	if !a.lastUpdate.IsZero() {
		deltaTime = utils.ClampDelta(now.Sub(a.lastUpdate).Seconds(), config.MaxDeltaTime)
	}
	a.lastUpdate = now
	a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放配置监听器，可重复调用
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: failed to close watcher: %v", err)
		}
		a.watcher = nil
	}
}
