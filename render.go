package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/dreamhop/common"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	playerBlue = color.NRGBA{R: 0, G: 100, B: 255, A: 255}
	hudGreen   = colornames.Lime
	hudRed     = colornames.Red
)

// renderer draws a game.Frame with placeholder shapes. It never reads the
// simulation directly.
type renderer struct {
	cfg   config.Config
	pixel *ebiten.Image

	titleFace *text.GoTextFace
	hudFace   *text.GoTextFace
	smallFace *text.GoTextFace
	uiFace    text.Face
}

func newRenderer(cfg config.Config) (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &renderer{
		cfg:       cfg,
		pixel:     pixel,
		titleFace: &text.GoTextFace{Source: src, Size: 48},
		hudFace:   &text.GoTextFace{Source: src, Size: 24},
		smallFace: &text.GoTextFace{Source: src, Size: 16},
		uiFace:    &text.GoTextFace{Source: src, Size: 18},
	}, nil
}

func (r *renderer) draw(screen *ebiten.Image, f game.Frame, debug bool) {
	if f.HUD.Background.A == 0 {
		screen.Fill(colornames.White)
	} else {
		screen.Fill(f.HUD.Background)
	}

	for _, d := range f.Descriptors {
		switch d.Kind {
		case game.KindPlatform:
			r.drawPlatform(screen, d)
		case game.KindExitTrigger:
			r.drawExit(screen, d)
		case game.KindPickup:
			r.drawPickup(screen, d)
		case game.KindEnemy:
			r.drawEnemy(screen, d)
		case game.KindProjectile:
			r.drawProjectile(screen, d)
		case game.KindPlayer:
			r.drawPlayer(screen, d, f.HUD)
		}
		if debug {
			vector.StrokeRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), 1, colornames.Magenta, false)
		}
	}

	r.drawHUD(screen, f.HUD)
	switch {
	case f.HUD.GameOver:
		r.drawGameOver(screen)
	case f.HUD.GameComplete:
		r.drawGameComplete(screen)
	}
}

// drawBox draws d's box with its effect applied around the box center.
func (r *renderer) drawBox(screen *ebiten.Image, d game.Descriptor, clr color.Color) {
	fx := d.Effect
	w, h := d.Width*fx.ScaleX, d.Height*fx.ScaleY
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-fx.Rotation * math.Pi / 180)
	op.GeoM.Translate(d.X+d.Width/2+fx.OffsetX, d.Y+d.Height/2+fx.OffsetY)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(r.pixel, op)
}

func (r *renderer) drawPlatform(screen *ebiten.Image, d game.Descriptor) {
	x, y, w, h := float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height)
	vector.FillRect(screen, x, y, w, h, colornames.Gray, false)
	for lx := x + 40; lx < x+w; lx += 40 {
		vector.StrokeLine(screen, lx, y+2, lx, y+h-2, 1, colornames.Lightgray, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 2, colornames.White, false)
}

func (r *renderer) drawExit(screen *ebiten.Image, d game.Descriptor) {
	x, y, w, h := float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height)
	if d.Active {
		vector.FillRect(screen, x, y, w, h, colornames.Yellow, false)
		vector.StrokeRect(screen, x, y, w, h, 2, colornames.White, false)
		return
	}
	vector.FillRect(screen, x, y, w, h, colornames.Red, false)
	pulse := uint8(common.Clamp(d.Effect.Glow*200, 0, 200))
	vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 3, color.NRGBA{R: 255, G: pulse, B: pulse, A: 255}, false)
}

func (r *renderer) drawPickup(screen *ebiten.Image, d game.Descriptor) {
	fx := d.Effect
	cx := float32(d.X + d.Width/2 + fx.OffsetX)
	cy := float32(d.Y + d.Height/2 + fx.OffsetY)
	radius := float32(d.Width / 2 * fx.ScaleX)

	base := colorful.Color{R: 0, G: 1, B: 1}
	c := base.BlendRgb(colorful.Hsv(fx.Hue, 0.7, 1), 0.5).Clamped()
	glow := uint8(common.Clamp(fx.Glow*50, 0, 255))

	vector.FillCircle(screen, cx, cy, radius+3, color.NRGBA{R: 255, G: 255, B: 255, A: glow}, true)
	vector.FillCircle(screen, cx, cy, radius, c, true)
	vector.FillCircle(screen, cx, cy, radius/3, colornames.White, true)
}

func (r *renderer) drawEnemy(screen *ebiten.Image, d game.Descriptor) {
	r.drawBox(screen, d, colornames.Yellow)
	if d.Effect.Tint {
		r.drawBox(screen, d, color.NRGBA{R: 255, G: 100, B: 100, A: 100})
	}
	eyeX := d.X + d.Width*0.75
	if d.FacingLeft {
		eyeX = d.X + d.Width*0.25
	}
	vector.FillCircle(screen, float32(eyeX+d.Effect.OffsetX), float32(d.Y+d.Height/3+d.Effect.OffsetY), 2, colornames.Black, true)
}

func (r *renderer) drawProjectile(screen *ebiten.Image, d game.Descriptor) {
	n := len(d.Trail)
	for i, p := range d.Trail {
		frac := float64(i) / float64(n)
		alpha := uint8(common.Lerp(0, 255*0.5, frac))
		size := math.Max(1, common.Lerp(0, 3, frac))
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(size), color.NRGBA{R: 255, G: 255, A: alpha}, true)
	}
	r.drawBox(screen, d, colornames.Black)
}

func (r *renderer) drawPlayer(screen *ebiten.Image, d game.Descriptor, hud game.HUD) {
	r.drawBox(screen, d, playerBlue)
	if d.Effect.Flash {
		r.drawBox(screen, d, color.NRGBA{R: 255, G: 255, B: 255, A: 180})
	}
	eyeX := d.X + d.Width*0.7
	if d.FacingLeft {
		eyeX = d.X + d.Width*0.3
	}
	vector.FillCircle(screen, float32(eyeX+d.Effect.OffsetX), float32(d.Y+d.Height/4+d.Effect.OffsetY), 3, colornames.White, true)

	if hud.MaxHealth <= 0 {
		return
	}
	const barW, barH = 50, 6
	bx, by := float32(d.X-5), float32(d.Y-15)
	fill := float32(common.Clamp(float64(hud.Health)/float64(hud.MaxHealth), 0, 1))
	vector.FillRect(screen, bx, by, barW, barH, colornames.Red, false)
	vector.FillRect(screen, bx, by, barW*fill, barH, colornames.Lime, false)
}

var instructions = []string{
	"ARROW KEYS/WASD: Move and Jump",
	"Collect Dream Essences! Avoid bee stingers!",
	"Stand on RED BLOCK to complete level!",
	"R: Restart Level | P: Pause | ESC: Quit",
}

func (r *renderer) drawHUD(screen *ebiten.Image, hud game.HUD) {
	w := r.cfg.Screen.Width

	r.text(screen, hud.LevelName, r.hudFace, w-250, 10, colornames.Black, text.AlignStart, false)
	r.text(screen, fmt.Sprintf("Level %d/%d", hud.Level, hud.MaxLevels), r.hudFace, w-250, 45, colornames.Black, text.AlignStart, false)

	for i, line := range instructions {
		r.text(screen, line, r.smallFace, 10, 10+float64(i)*22, colornames.White, text.AlignStart, true)
	}
	r.text(screen, fmt.Sprintf("Dream Essences: %d", hud.Collected), r.smallFace, 10, 100, colornames.Cyan, text.AlignStart, true)

	switch {
	case hud.PuzzleActivated && hud.Level < hud.MaxLevels:
		r.text(screen, fmt.Sprintf("Level %d Complete! Next level in %d...", hud.Level, hud.SecondsUntilNextLevel),
			r.smallFace, 10, 125, hudGreen, text.AlignStart, true)
	case hud.PuzzleActivated:
		r.text(screen, "PUZZLE SOLVED! Great job!", r.smallFace, 10, 125, hudGreen, text.AlignStart, true)
	default:
		r.text(screen, "PUZZLE: Find and stand on the RED BLOCK!", r.smallFace, 10, 125, hudRed, text.AlignStart, true)
	}

	healthColor := hudRed
	if hud.Health > 50 {
		healthColor = hudGreen
	}
	r.text(screen, fmt.Sprintf("Health: %d/%d", hud.Health, hud.MaxHealth), r.smallFace, 10, 150, healthColor, text.AlignStart, true)
}

func (r *renderer) dim(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(r.cfg.Screen.Width), float32(r.cfg.Screen.Height), color.NRGBA{A: 128}, false)
}

func (r *renderer) drawGameOver(screen *ebiten.Image) {
	r.dim(screen)
	cx, cy := r.cfg.Screen.Width/2, r.cfg.Screen.Height/2
	r.text(screen, "GAME OVER!", r.titleFace, cx, cy-120, colornames.Red, text.AlignCenter, true)
	r.text(screen, "Press R to Restart Level | Press N for New Game", r.hudFace, cx, cy-50, colornames.White, text.AlignCenter, true)
}

func (r *renderer) drawGameComplete(screen *ebiten.Image) {
	r.dim(screen)
	cx, cy := r.cfg.Screen.Width/2, r.cfg.Screen.Height/2
	r.text(screen, "CONGRATULATIONS!", r.titleFace, cx, cy-140, colornames.Lime, text.AlignCenter, true)
	r.text(screen, "You completed all levels!", r.hudFace, cx, cy-80, colornames.White, text.AlignCenter, true)
	r.text(screen, "Press N for New Game", r.hudFace, cx, cy-45, playerBlue, text.AlignCenter, true)
}

// text draws s with its top edge at y. Outlined text gets a 2px black
// border so it stays readable on any background.
func (r *renderer) text(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align, outline bool) {
	if outline {
		for _, off := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}, {-2, -2}, {2, 2}, {-2, 2}, {2, -2}} {
			op := &text.DrawOptions{}
			op.PrimaryAlign = align
			op.GeoM.Translate(x+off[0], y+off[1])
			op.ColorScale.ScaleWithColor(colornames.Black)
			text.Draw(screen, s, face, op)
		}
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
