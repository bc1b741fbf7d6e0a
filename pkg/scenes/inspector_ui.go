package scenes

import (
	"image/color"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/systems"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// inspectorMaxRows 面板最多显示的实体行数，超出部分折叠为一行
const inspectorMaxRows = 24

var (
	inspectorPanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180}
	inspectorTitleColor = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	inspectorTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// InspectorUI 实体检查面板
// 列出所有存活实体的ID、角色、位置、动画帧和战斗属性，只读不改
type InspectorUI struct {
	entityManager *ecs.EntityManager

	ui   *ebitenui.UI
	body *widget.Text
}

// NewInspectorUI 创建检查面板，控件在第一次刷新时才构建
func NewInspectorUI(em *ecs.EntityManager) *InspectorUI {
	return &InspectorUI{entityManager: em}
}

// build 构建右上角的半透明面板
// 使用内置 basicfont，无需加载字体资源
func (p *InspectorUI) build() {
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))

	title := widget.NewText(
		widget.TextOpts.Text("Inspector", &face, inspectorTitleColor),
	)
	p.body = widget.NewText(
		widget.TextOpts.Text("", &face, inspectorTextColor),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(inspectorPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.GameWindowWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(p.body)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
}

// Refresh 重新采集实体数据并更新面板
// 每帧最多调用一次
func (p *InspectorUI) Refresh() {
	if p.ui == nil {
		p.build()
	}
	p.body.Label = systems.FormatInspectorRows(systems.CollectInspectorRows(p.entityManager), inspectorMaxRows)
	p.ui.Update()
}

// Draw 绘制面板，尚未刷新过时不绘制
func (p *InspectorUI) Draw(screen *ebiten.Image) {
	if p.ui == nil {
		return
	}
	p.ui.Draw(screen)
}
