package sim

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcdkit/gfx/blit"
	"lcdkit/kernel"
)

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestScanCode(t *testing.T) {
	sys := kernel.NewSystem()
	s := New(sys, Config{})

	rec := do(t, s, http.MethodPost, "/io/kbd/scancode?P13p")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("POST scancode = %d %q", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != textPlain {
		t.Fatalf("Content-Type = %q", got)
	}
	msg, ok := sys.TryRecv(kernel.EPEventLoop)
	if !ok || msg.Kind != kernel.MsgKbdScanCode || string(msg.Payload()) != "P13p" {
		t.Fatalf("event loop got %v kind %d %q", ok, msg.Kind, msg.Payload())
	}

	for _, q := range []string{"", "P13", "P13pp"} {
		rec := do(t, s, http.MethodPost, "/io/kbd/scancode?"+q)
		if rec.Code != http.StatusBadRequest || rec.Body.String() != "Bad Scancode" {
			t.Fatalf("POST scancode %q = %d %q", q, rec.Code, rec.Body.String())
		}
	}
	if _, ok := sys.TryRecv(kernel.EPEventLoop); ok {
		t.Fatalf("bad scancode reached the event loop")
	}

	if rec := do(t, s, http.MethodGet, "/io/kbd/scancode?P13p"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET scancode = %d, want 404", rec.Code)
	}
}

func TestRoutes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bkbd.js"), []byte("export {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	sys := kernel.NewSystem()
	s := New(sys, Config{WWWDir: dir})

	tests := []struct {
		method, target string
		code           int
		ctype          string
	}{
		{http.MethodGet, "/", http.StatusOK, textHTML},
		{http.MethodHead, "/", http.StatusOK, textHTML},
		{http.MethodGet, "/bkbd.js", http.StatusOK, textJS},
		{http.MethodGet, "/main.js", http.StatusNotFound, ""},
		{http.MethodGet, "/index.html", http.StatusNotFound, ""},
		{http.MethodPost, "/", http.StatusNotFound, ""},
		{http.MethodPut, "/", http.StatusNotImplemented, ""},
		{http.MethodDelete, "/io/screen", http.StatusNotImplemented, ""},
	}
	for _, tt := range tests {
		rec := do(t, s, tt.method, tt.target)
		if rec.Code != tt.code {
			t.Fatalf("%s %s = %d, want %d", tt.method, tt.target, rec.Code, tt.code)
		}
		if tt.ctype != "" && rec.Header().Get("Content-Type") != tt.ctype {
			t.Fatalf("%s %s Content-Type = %q", tt.method, tt.target, rec.Header().Get("Content-Type"))
		}
	}
	if rec := do(t, s, http.MethodGet, "/"); rec.Body.String() != "<html></html>" {
		t.Fatalf("GET / body = %q", rec.Body.String())
	}
	if rec := do(t, s, http.MethodHead, "/"); rec.Body.Len() != 0 {
		t.Fatalf("HEAD / wrote a body")
	}

	empty := New(sys, Config{})
	if rec := do(t, empty, http.MethodGet, "/"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET / without a www dir = %d, want 404", rec.Code)
	}
}

// readEvent reads one Server-Sent Event.
func readEvent(t *testing.T, r *bufio.Reader) (event, data string) {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read event: %v", err)
		}
		line = strings.TrimSuffix(line, "\n")
		switch {
		case line == "":
			return event, data
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestScreenStream(t *testing.T) {
	sys := kernel.NewSystem()
	ts := httptest.NewServer(New(sys, Config{}))
	defer ts.Close()

	var fb blit.FrameBuffer
	blit.Stripes(&fb)
	sys.Frames().Publish(&fb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/io/screen", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /io/screen: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != eventStream {
		t.Fatalf("GET /io/screen = %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	r := bufio.NewReader(resp.Body)
	event, data := readEvent(t, r)
	var got blit.FrameBuffer
	if err := DecodeFrame(data, &got); event != "frame" || err != nil || got != fb {
		t.Fatalf("first event = %q, decode err %v, frame match %v", event, err, got == fb)
	}

	blit.ClearRegion(&fb, blit.Full())
	sys.Frames().Publish(&fb)
	event, data = readEvent(t, r)
	if err := DecodeFrame(data, &got); event != "frame" || err != nil || got != fb {
		t.Fatalf("second event = %q, decode err %v, frame match %v", event, err, got == fb)
	}

	cancel()
	io.Copy(io.Discard, r)
}

func TestDecodeFrameErrors(t *testing.T) {
	var fb blit.FrameBuffer
	if err := DecodeFrame("!!", &fb); err == nil {
		t.Fatalf("DecodeFrame(bad base64) err = nil")
	}
	if err := DecodeFrame("AAAA", &fb); err == nil {
		t.Fatalf("DecodeFrame(short) err = nil")
	}
}

func TestServeStopsWithContext(t *testing.T) {
	sys := kernel.NewSystem()
	s := New(sys, Config{Bind: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() err = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("ListenAndServe() did not return after cancel")
	}
	msg, ok := sys.TryRecv(kernel.EPLogger)
	if !ok || !strings.HasPrefix(string(msg.Payload()), "Serving on http://127.0.0.1:") {
		t.Fatalf("log = %q", msg.Payload())
	}
}
