package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// The menus use colored nine-slices and the built-in basic font, so no
// theme assets need to be loaded.

func menuFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

func menuButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func menuPanel(g *Game, title string, buttons ...*widget.Button) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	face := menuFace()

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.cfg.Window.Width/3, g.cfg.Window.Height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)
	for _, b := range buttons {
		panel.AddChild(b)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func newPauseMenu(g *Game) *ebitenui.UI {
	face := menuFace()
	return menuPanel(g, "Paused",
		menuButton("Resume", &face, func() {
			g.paused = false
		}),
		menuButton("Restart", &face, func() {
			if err := g.reset(); err != nil {
				g.log.Error("restart failed", zap.Error(err))
				g.quit = true
				return
			}
			g.paused = false
		}),
		menuButton("Quit", &face, func() {
			g.quit = true
		}),
	)
}

func newGameOverMenu(g *Game) *ebitenui.UI {
	face := menuFace()
	return menuPanel(g, "You Died",
		menuButton("Run It Back", &face, func() {
			if err := g.reset(); err != nil {
				g.log.Error("restart failed", zap.Error(err))
				g.quit = true
			}
		}),
		menuButton("Quit", &face, func() {
			g.quit = true
		}),
	)
}
