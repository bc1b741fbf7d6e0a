package game

import (
	"fmt"
	"log"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局偏好设置
// 只保存偏好，不保存任何对局状态
type GameSettings struct {
	// 调试
	ShowHitboxes  bool `yaml:"showHitboxes"`  // 是否绘制碰撞盒与帧序号
	ShowInspector bool `yaml:"showInspector"` // 是否显示实体检查面板

	// 模拟
	FixedStep bool `yaml:"fixedStep"` // 固定步长模式；关闭时使用实际帧间隔
	TickRate  int  `yaml:"tickRate"`  // 固定步长模式下每秒模拟步数
	Parallel  bool `yaml:"parallel"`  // 动画与移动阶段是否并行

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		ShowHitboxes:  false,
		ShowInspector: false,
		FixedStep:     true,
		TickRate:      config.DefaultTickRate,
		Parallel:      false,
		Fullscreen:    false,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，旧版本文件中缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.TickRate = clampTickRate(loaded.TickRate)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetShowHitboxes 设置是否显示碰撞盒
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowHitboxes(enabled bool) {
	sm.settings.ShowHitboxes = enabled
}

// SetShowInspector 设置是否显示实体检查面板
func (sm *SettingsManager) SetShowInspector(enabled bool) {
	sm.settings.ShowInspector = enabled
}

// SetFixedStep 设置是否使用固定步长
func (sm *SettingsManager) SetFixedStep(enabled bool) {
	sm.settings.FixedStep = enabled
}

// SetTickRate 设置固定步长模式的模拟频率
// 频率会被限制在 [minTickRate, maxTickRate] 范围内
func (sm *SettingsManager) SetTickRate(rate int) {
	sm.settings.TickRate = clampTickRate(rate)
}

// SetParallel 设置动画与移动阶段是否并行
func (sm *SettingsManager) SetParallel(enabled bool) {
	sm.settings.Parallel = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

const (
	minTickRate = 10
	maxTickRate = 240
)

// clampTickRate 将模拟频率限制在合法范围内，0 表示使用默认值
func clampTickRate(rate int) int {
	if rate == 0 {
		return config.DefaultTickRate
	}
	if rate < minTickRate {
		return minTickRate
	}
	if rate > maxTickRate {
		return maxTickRate
	}
	return rate
}
