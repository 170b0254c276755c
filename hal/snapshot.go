package hal

import (
	"fmt"
	"io"
	"os"

	"lcdkit/gfx/blit"

	"golang.org/x/image/bmp"
)

// WriteBMP encodes the visible panel as a two color bitmap.
func WriteBMP(w io.Writer, fb *blit.FrameBuffer) error {
	if err := bmp.Encode(w, fb.Image()); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}

// SaveBMP writes the panel to a bitmap file at path.
func SaveBMP(path string, fb *blit.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBMP(f, fb); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
