package components

// SpriteKind 标识实体使用的精灵外观
// RenderSystem 根据它选择颜色与尺寸
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteZombie
	SpriteBullet
)

// SpriteComponent 存储实体的视觉表现参数
// 纹理图集的构建不在本项目范围内，渲染系统只需要知道画什么、朝向哪边
type SpriteComponent struct {
	Kind  SpriteKind
	FlipX bool    // 水平翻转（面朝左）
	Scale float64 // 缩放倍数，1.0 为原始大小
}
