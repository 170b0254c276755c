//go:build !tinygo

package hal

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

var errNoClipboard = errors.New("clipboard unavailable")

// hostClipboard talks to the system clipboard. It is initialized on first
// use; without a display server every call fails with errNoClipboard.
type hostClipboard struct {
	once sync.Once
	ok   bool
}

func (c *hostClipboard) init() bool {
	c.once.Do(func() {
		c.ok = clipboard.Init() == nil
	})
	return c.ok
}

func (c *hostClipboard) ReadText() (string, error) {
	if !c.init() {
		return "", errNoClipboard
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (c *hostClipboard) WriteText(s string) error {
	if !c.init() {
		return errNoClipboard
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
