package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lcdkit/gfx/fonts"
)

func TestDump(t *testing.T) {
	var out bytes.Buffer
	if err := dump(&out, fonts.Regular, "@"); err != nil {
		t.Fatalf("dump() err = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if !strings.Contains(lines[0], "header=0x00101008") {
		t.Fatalf("dump() header line = %q", lines[0])
	}
	if len(lines) != 1+16 || len(lines[1]) != 16 {
		t.Fatalf("dump() = %d lines, first row %q", len(lines), lines[1])
	}
}

func TestFontByName(t *testing.T) {
	if f, err := fontByName("BOLD"); err != nil || f != fonts.Bold {
		t.Fatalf("fontByName(BOLD) = %v, %v", f, err)
	}
	if _, err := fontByName("serif"); err == nil {
		t.Fatalf("fontByName(serif) err = nil")
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.bmp")
	if err := render(path, fonts.Small, "Hello", 4, 4); err != nil {
		t.Fatalf("render() err = %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("render() wrote nothing: %v", err)
	}
	if err := render(path, fonts.Small, "Hello", 400, 4); err == nil {
		t.Fatalf("render() off the panel err = nil")
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	if err := list(&out, fonts.Regular); err != nil {
		t.Fatalf("list() err = %v", err)
	}
	if !strings.Contains(out.String(), "U+0020..U+007E 95") {
		t.Fatalf("list() = %q", out.String())
	}
}
