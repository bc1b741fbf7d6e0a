package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// spriteStyle 描述一种精灵的占位外观
// 纹理图集不在本项目范围内，实体以色块绘制，动画帧以色带位置体现
type spriteStyle struct {
	baseSize float64
	body     color.RGBA
	band     color.RGBA
}

var spriteStyles = map[components.SpriteKind]spriteStyle{
	components.SpritePlayer: {baseSize: 32, body: color.RGBA{R: 70, G: 130, B: 220, A: 255}, band: color.RGBA{R: 220, G: 230, B: 255, A: 255}},
	components.SpriteZombie: {baseSize: 106, body: color.RGBA{R: 90, G: 140, B: 80, A: 255}, band: color.RGBA{R: 40, G: 60, B: 35, A: 255}},
	components.SpriteBullet: {baseSize: 20, body: colornames.Purple, band: colornames.Purple},
}

var (
	hitboxColor    = colornames.Red
	healthBarBack  = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	healthBarFront = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// RenderSystem 绘制所有拥有位置和精灵组件的实体
// 只读取组件，不修改任何模拟状态
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// worldToScreen 将世界坐标（原点居中，Y轴向上）转换为屏幕坐标
func worldToScreen(x, y float64) (float32, float32) {
	return float32(config.GameWindowWidth/2 + x), float32(config.GameWindowHeight/2 - y)
}

// Draw 绘制实体
//
// 参数:
//   - screen: 绘制目标
//   - showHitboxes: 是否叠加碰撞盒与帧序号（调试用）
func (s *RenderSystem) Draw(screen *ebiten.Image, showHitboxes bool) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		style, ok := spriteStyles[sprite.Kind]
		if !ok {
			continue
		}

		scale := sprite.Scale
		if scale <= 0 {
			scale = 1
		}
		size := float32(style.baseSize * scale)
		cx, cy := worldToScreen(pos.X, pos.Y)
		left, top := cx-size/2, cy-size/2

		vector.DrawFilledRect(screen, left, top, size, size, style.body, false)

		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			s.drawFrameBand(screen, anim, sprite.FlipX, left, top, size, style.band)
			if showHitboxes {
				ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", anim.CurrentFrame), int(left), int(top)-16)
			}
		}

		if combat, ok := ecs.GetComponent[*components.CombatComponent](em, id); ok && sprite.Kind == components.SpriteZombie {
			s.drawHealthBar(screen, combat, left, top-6, size)
		}

		if showHitboxes {
			if role, ok := ecs.GetComponent[*components.RoleComponent](em, id); ok {
				half := float32(components.HalfExtent(role.Role))
				if half > 0 {
					vector.StrokeRect(screen, cx-half, cy-half, 2*half, 2*half, 1, hitboxColor, false)
				}
			}
		}
	}
}

// drawFrameBand 以竖直色带的位置表示当前动画帧，翻转时从右往左移动
func (s *RenderSystem) drawFrameBand(screen *ebiten.Image, anim *components.AnimationComponent, flipX bool, left, top, size float32, clr color.Color) {
	count := anim.FrameCount()
	if count <= 1 {
		return
	}
	bandWidth := size / float32(count)
	index := anim.CurrentFrame - anim.FrameStart
	if flipX {
		index = count - 1 - index
	}
	vector.DrawFilledRect(screen, left+bandWidth*float32(index), top, bandWidth, size, clr, false)
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, combat *components.CombatComponent, left, top, width float32) {
	if combat.MaxHealth <= 0 {
		return
	}
	ratio := float32(combat.Health) / float32(combat.MaxHealth)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, left, top, width, 3, healthBarBack, false)
	vector.DrawFilledRect(screen, left, top, width*ratio, 3, healthBarFront, false)
}
