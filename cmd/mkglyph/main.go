package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lcdkit/gfx/blit"
	"lcdkit/gfx/fonts"
	"lcdkit/hal"
)

func main() {
	var (
		fontName = flag.String("font", "regular", "bold|regular|small.")
		mode     = flag.String("mode", "dump", "dump|render|list.")
		text     = flag.String("text", "", "Runes to dump, or text to render.")
		outPath  = flag.String("out", "", "Output .bmp file (render mode only).")
		x0       = flag.Int("x", 4, "Left edge of rendered text.")
		y0       = flag.Int("y", 4, "Top edge of rendered text.")
	)
	flag.Parse()

	f, err := fontByName(*fontName)
	if err != nil {
		fatalf("%v", err)
	}

	switch strings.ToLower(*mode) {
	case "dump":
		if *text == "" {
			fatalf("usage: mkglyph -mode dump -font bold -text @g")
		}
		if err := dump(os.Stdout, f, *text); err != nil {
			fatalf("dump: %v", err)
		}
	case "render":
		if *text == "" || *outPath == "" {
			fatalf("usage: mkglyph -mode render -font regular -text Hello -out hello.bmp [-x 4] [-y 4]")
		}
		if err := render(*outPath, f, *text, *x0, *y0); err != nil {
			fatalf("render: %v", err)
		}
	case "list":
		if err := list(os.Stdout, f); err != nil {
			fatalf("list: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func fontByName(name string) (*fonts.Font, error) {
	for _, f := range fonts.All() {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown font: %s", name)
}

// dump prints the header and pixels of each rune's glyph.
func dump(w io.Writer, f *fonts.Font, runes string) error {
	bw := bufio.NewWriter(w)
	for _, r := range runes {
		off := f.GlyphOffset(r)
		p := fonts.PatternAt(f, off)
		fmt.Fprintf(bw, "U+%04X %q offset=%d header=0x%08x w=%d h=%d y=%d\n",
			r, r, off, p.Header().Pack(), p.W, p.H(), p.YOffset)
		for row := 0; row < p.H(); row++ {
			for col := 0; col < p.W; col++ {
				if p.Set(col, row) {
					bw.WriteByte('#')
				} else {
					bw.WriteByte('.')
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// render draws text on a blank panel and saves it as a bitmap.
func render(path string, f *fonts.Font, text string, x, y int) error {
	var fb blit.FrameBuffer
	blit.ClearRegion(&fb, blit.Full())
	cr := blit.ClipRegion{X0: x, X1: blit.PxPerLine, Y0: y, Y1: blit.Lines}
	if !cr.Valid() {
		return fmt.Errorf("origin %d,%d is off the panel", x, y)
	}
	blit.StringLeft(&fb, cr, text, f)
	return hal.SaveBMP(path, &fb)
}

// list prints the covered code point ranges.
func list(w io.Writer, f *fonts.Font) error {
	bw := bufio.NewWriter(w)
	n := 0
	for _, b := range f.Blocks {
		fmt.Fprintf(bw, "U+%04X..U+%04X %d\n", b.Lo, b.Hi, b.Hi-b.Lo+1)
		n += int(b.Hi - b.Lo + 1)
	}
	fmt.Fprintf(bw, "%s: %d glyphs, max height %d\n", f.Name, n, f.MaxHeight)
	return bw.Flush()
}
