package config

import (
	"fmt"
	"os"

	"github.com/decker502/zombierush/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// FrameRangeConfig 动画帧区间配置（闭区间）
type FrameRangeConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	SpawnX      float64          `yaml:"spawnX"`      // 出生点X（世界坐标）
	SpawnY      float64          `yaml:"spawnY"`      // 出生点Y（世界坐标）
	WalkSpeed   float64          `yaml:"walkSpeed"`   // 行走速度（像素/秒）
	Scale       float64          `yaml:"scale"`       // 精灵缩放
	FramePeriod float64          `yaml:"framePeriod"` // 每帧时长（秒）
	Idle        FrameRangeConfig `yaml:"idle"`        // 站立动画帧
	Walk        FrameRangeConfig `yaml:"walk"`        // 行走动画帧
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Speed        float64 `yaml:"speed"`        // 飞行速度（像素/秒）
	MuzzleOffset float64 `yaml:"muzzleOffset"` // 生成点距玩家中心的水平距离
	Damage       int64   `yaml:"damage"`       // 命中伤害
	Lifetime     float64 `yaml:"lifetime"`     // 最长存在时间（秒），0 表示不限
	Scale        float64 `yaml:"scale"`        // 精灵缩放
}

// ZombieConfig 僵尸配置
type ZombieConfig struct {
	SpawnX        float64          `yaml:"spawnX"`        // 生成点X（世界坐标）
	SpawnY        float64          `yaml:"spawnY"`        // 生成点Y（世界坐标）
	Speed         float64          `yaml:"speed"`         // 移动速度（像素/秒，负值向左）
	Health        int64            `yaml:"health"`        // 初始生命值
	Damage        int64            `yaml:"damage"`        // 伤害
	Scale         float64          `yaml:"scale"`         // 精灵缩放
	FramePeriod   float64          `yaml:"framePeriod"`   // 每帧时长（秒）
	Frames        FrameRangeConfig `yaml:"frames"`        // 行走动画帧
	SpawnInterval float64          `yaml:"spawnInterval"` // 重复生成间隔（秒），0 表示只生成一次
	MaxAlive      int              `yaml:"maxAlive"`      // 同时存在的最大数量，0 表示不限
}

// WorldConfig 世界边界配置
// 离开边界的非玩家实体会被移除
type WorldConfig struct {
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`
}

// UnitConfig 单位配置文件结构
type UnitConfig struct {
	Player PlayerConfig `yaml:"player"`
	Bullet BulletConfig `yaml:"bullet"`
	Zombie ZombieConfig `yaml:"zombie"`
	World  WorldConfig  `yaml:"world"`
}

// LoadUnitConfig 从嵌入资源加载单位配置
// 参数：
//
//	filepath - 嵌入资源路径（如 data/units.yaml）
//
// 返回：
//
//	*UnitConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadUnitConfig(filepath string) (*UnitConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit config file %s: %w", filepath, err)
	}
	return parseUnitConfig(filepath, data)
}

// LoadUnitConfigFile 从磁盘加载单位配置（开发模式热重载使用）
func LoadUnitConfigFile(filepath string) (*UnitConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit config file %s: %w", filepath, err)
	}
	return parseUnitConfig(filepath, data)
}

func parseUnitConfig(source string, data []byte) (*UnitConfig, error) {
	var config UnitConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse unit config YAML from %s: %w", source, err)
	}

	if err := validateUnitConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid unit config in %s: %w", source, err)
	}

	return &config, nil
}

// validateUnitConfig 验证单位配置的完整性和合法性
// 帧区间、周期和生命值的非法值会在这里被拒绝，而不是留到运行时
func validateUnitConfig(config *UnitConfig) error {
	if err := validateFrameRange("player.idle", config.Player.Idle); err != nil {
		return err
	}
	if err := validateFrameRange("player.walk", config.Player.Walk); err != nil {
		return err
	}
	if config.Player.FramePeriod <= 0 {
		return fmt.Errorf("player: framePeriod must be positive, got %v", config.Player.FramePeriod)
	}
	if config.Player.WalkSpeed < 0 {
		return fmt.Errorf("player: walkSpeed cannot be negative, got %v", config.Player.WalkSpeed)
	}

	if config.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet: speed must be positive, got %v", config.Bullet.Speed)
	}
	if config.Bullet.Damage < 0 {
		return fmt.Errorf("bullet: damage cannot be negative, got %d", config.Bullet.Damage)
	}
	if config.Bullet.Lifetime < 0 {
		return fmt.Errorf("bullet: lifetime cannot be negative, got %v", config.Bullet.Lifetime)
	}

	if err := validateFrameRange("zombie.frames", config.Zombie.Frames); err != nil {
		return err
	}
	if config.Zombie.FramePeriod <= 0 {
		return fmt.Errorf("zombie: framePeriod must be positive, got %v", config.Zombie.FramePeriod)
	}
	if config.Zombie.Health < 0 {
		return fmt.Errorf("zombie: health cannot be negative, got %d", config.Zombie.Health)
	}
	if config.Zombie.SpawnInterval < 0 {
		return fmt.Errorf("zombie: spawnInterval cannot be negative, got %v", config.Zombie.SpawnInterval)
	}
	if config.Zombie.MaxAlive < 0 {
		return fmt.Errorf("zombie: maxAlive cannot be negative, got %d", config.Zombie.MaxAlive)
	}

	if config.World.HalfWidth <= 0 || config.World.HalfHeight <= 0 {
		return fmt.Errorf("world: halfWidth and halfHeight must be positive, got %v x %v",
			config.World.HalfWidth, config.World.HalfHeight)
	}

	return nil
}

func validateFrameRange(name string, r FrameRangeConfig) error {
	if r.Start < 0 || r.Start > r.End {
		return fmt.Errorf("%s: invalid frame range [%d, %d]", name, r.Start, r.End)
	}
	return nil
}
