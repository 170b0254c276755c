//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"
	"os"

	"lcdkit/gfx/blit"
	"lcdkit/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	// Zoom scales the panel; 0 means 2.
	Zoom int
}

// Height of the hint strip drawn under the panel.
const hintH = 16

var (
	inkRGBA = color.RGBA{0x20, 0x20, 0x20, 0xff}
	bgRGBA  = color.RGBA{0xc8, 0xd0, 0xb8, 0xff}
)

// RunWindow starts a desktop window that displays the panel and forwards
// keyboard and mouse input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 2
	}
	h := newHost(os.Stdout)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("lcdkit (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(blit.PxPerLine*cfg.Zoom, (blit.Lines+hintH)*cfg.Zoom)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	frame blit.FrameBuffer
	seen  uint64
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.advance()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, blit.PxPerLine, blit.Lines))
		g.fbImg = ebiten.NewImage(blit.PxPerLine, blit.Lines)
		g.seen = ^uint64(0)
	}

	// Only re-upload the texture after a Present.
	if seq := g.h.fb.presented(); seq != g.seen {
		g.seen = seq
		g.h.fb.Snapshot(&g.frame)
		dst := g.img.Pix
		for y := 0; y < blit.Lines; y++ {
			for x := 0; x < blit.PxPerLine; x++ {
				c := bgRGBA
				if g.frame.Ink(x, y) {
					c = inkRGBA
				}
				j := y*g.img.Stride + x*4
				dst[j+0] = c.R
				dst[j+1] = c.G
				dst[j+2] = c.B
				dst[j+3] = c.A
			}
		}
		g.fbImg.WritePixels(g.img.Pix)
	}

	screen.Fill(color.Black)
	screen.DrawImage(g.fbImg, nil)
	text.Draw(screen, "F5 copy  F6 paste", basicfont.Face7x13, 4, blit.Lines+12, color.White)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return blit.PxPerLine, blit.Lines + hintH
}
