package config

const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 720

	// AttackerHalfExtent 攻击者（子弹）碰撞盒半边长，即 5x5 碰撞盒
	AttackerHalfExtent = 2.5
	// EnemyHalfExtent 敌人（僵尸）碰撞盒半边长，即 32x32 碰撞盒
	EnemyHalfExtent = 16.0

	// DefaultTickRate 默认每秒模拟步数
	DefaultTickRate = 60
	// MaxDeltaTime 可变步长模式下单帧最大时间（秒），防止卡顿后瞬移
	MaxDeltaTime = 0.06
	// MaxStepsPerFrame 固定步长模式下单帧最多追赶的步数
	MaxStepsPerFrame = 5

	// DefaultUnitsPath 默认单位配置文件（嵌入资源路径）
	DefaultUnitsPath = "data/units.yaml"
)
