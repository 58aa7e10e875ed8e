package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dreamhop/game"
)

type menuButton struct {
	label string
	cmd   game.Command
}

// NewPauseUI builds the centered pause panel. Resume only unpauses; the
// other buttons queue a command for the next step.
func NewPauseUI(g *Game, face ebtext.Face) *ebitenui.UI {
	resume := func(*widget.ButtonClickedEventArgs) { g.paused = false }
	return menuUI(g, face, "Paused", int(g.cfg.Screen.Width)/2, int(g.cfg.Screen.Height)/2,
		widget.AnchorLayoutPositionCenter, resume,
		menuButton{"Restart Level", game.CommandRestart},
		menuButton{"Quit", game.CommandQuit},
	)
}

// NewEndUI builds the button row shown under the game over and
// congratulations text.
func NewEndUI(g *Game, face ebtext.Face) *ebitenui.UI {
	return menuUI(g, face, "", int(g.cfg.Screen.Width)/3, 0,
		widget.AnchorLayoutPositionEnd, nil,
		menuButton{"Restart Level", game.CommandRestart},
		menuButton{"New Game", game.CommandNewGame},
		menuButton{"Quit", game.CommandQuit},
	)
}

func menuUI(g *Game, face ebtext.Face, title string, minW, minH int, vpos widget.AnchorLayoutPosition,
	resume func(*widget.ButtonClickedEventArgs), buttons ...menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vpos,
			}),
		),
	)

	if title != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(title, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	if resume != nil {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text("Resume", &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(resume),
		))
	}
	for _, b := range buttons {
		cmd := b.cmd
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				g.request(cmd)
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
