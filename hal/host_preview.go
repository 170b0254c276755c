//go:build !tinygo

package hal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"lcdkit/gfx/blit"

	"golang.org/x/term"
)

// RenderText draws fb as half-block characters fitting in cols x rows
// terminal cells. Each cell shows two square pixel blocks, one above the
// other; a block is inked if any panel pixel under it is ink.
func RenderText(w io.Writer, fb *blit.FrameBuffer, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	s := max((blit.PxPerLine+cols-1)/cols, (blit.Lines+2*rows-1)/(2*rows), 1)
	inked := func(bx, by int) bool {
		for y := by * s; y < (by+1)*s && y < blit.Lines; y++ {
			for x := bx * s; x < (bx+1)*s && x < blit.PxPerLine; x++ {
				if fb.Ink(x, y) {
					return true
				}
			}
		}
		return false
	}

	bw := bufio.NewWriter(w)
	outCols := (blit.PxPerLine + s - 1) / s
	outRows := (blit.Lines + 2*s - 1) / (2 * s)
	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			top, bottom := inked(c, 2*r), inked(c, 2*r+1)
			switch {
			case top && bottom:
				bw.WriteRune('█')
			case top:
				bw.WriteRune('▀')
			case bottom:
				bw.WriteRune('▄')
			default:
				bw.WriteByte(' ')
			}
		}
		bw.WriteString("\r\n")
	}
	return bw.Flush()
}

// termPreview repaints the panel on a terminal after each Present.
type termPreview struct {
	mu  sync.Mutex
	out *os.File
}

func (p *termPreview) present(fb *blit.FrameBuffer) error {
	cols, rows := 80, 24
	if term.IsTerminal(int(p.out.Fd())) {
		if c, r, err := term.GetSize(int(p.out.Fd())); err == nil {
			cols, rows = c, r-1
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprint(p.out, "\x1b[H\x1b[2J"); err != nil {
		return err
	}
	return RenderText(p.out, fb, cols, rows)
}

// termInput reads raw keystrokes from a terminal and queues them as
// KeyRune events. Ctrl-C calls stop.
type termInput struct {
	fd    int
	state *term.State
}

func startTermInput(in *os.File, kb *hostKeyboard, stop context.CancelFunc) (*termInput, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal raw mode: %w", err)
	}
	go func() {
		r := bufio.NewReader(in)
		for {
			c, _, err := r.ReadRune()
			if err != nil {
				return
			}
			switch c {
			case 0x03:
				stop()
				return
			case '\r':
				c = '\n'
			case 0x7f:
				c = '\b'
			case utf8.RuneError:
				continue
			}
			kb.emit(KeyEvent{Code: KeyRune, Press: true, Rune: c})
		}
	}()
	return &termInput{fd: fd, state: state}, nil
}

func (t *termInput) Close() error {
	if t == nil || t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	return err
}
