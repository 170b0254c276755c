package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"lcdkit/gfx/blit"
	"lcdkit/gfx/fonts"
	"lcdkit/hal"

	"tinygo.org/x/tinyfont"
)

// showPanic logs a recovered panic with its stack and draws it on the panel.
func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{
		"lcdkit panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	out := disp.Framebuffer()
	if out == nil {
		return
	}

	var fb blit.FrameBuffer
	drawPanic(&fb, lines)
	out.Update(&fb)
	_ = out.Present()
}

// drawPanic fills fb with lines of small text, wrapped to the panel width.
func drawPanic(fb *blit.FrameBuffer, lines []string) {
	blit.ClearRegion(fb, blit.Full())
	d := blit.NewDisplayer(fb, nil)
	font := fonts.Small
	fontHeight := int16(font.MaxHeight)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}
	cols := int16(blit.PxPerLine-4) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	ink := color.RGBA{A: 255}
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > blit.Lines {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 2, y, chunk, ink)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
