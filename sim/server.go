// Package sim serves the browser simulator: static assets, keyboard
// scancodes and a Server-Sent Events stream of published frames.
package sim

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lcdkit/gfx/blit"
	"lcdkit/kernel"
)

// DefaultBind is the listen address used when Config.Bind is empty.
const DefaultBind = "127.0.0.1:8000"

const (
	textPlain   = "text/plain;charset=utf-8"
	textHTML    = "text/html;charset=utf-8"
	textJS      = "text/javascript;charset=utf-8"
	textCSS     = "text/css;charset=utf-8"
	eventStream = "text/event-stream;charset=utf-8"
	octetStream = "application/octet-stream"
)

// Config controls the simulator server.
type Config struct {
	Bind string
	// WWWDir holds index.html and the scripts it loads. Static routes
	// answer 404 when it is empty.
	WWWDir string
}

// Server relays keyboard input to the event loop and frames back to
// browsers.
type Server struct {
	cfg Config
	sys *kernel.System
	mux *http.ServeMux
}

// staticFiles maps the routes served from WWWDir to file names.
var staticFiles = map[string]string{
	"/":          "index.html",
	"/main.js":   "main.js",
	"/bkbd.js":   "bkbd.js",
	"/style.css": "style.css",
}

func New(sys *kernel.System, cfg Config) *Server {
	if cfg.Bind == "" {
		cfg.Bind = DefaultBind
	}
	s := &Server{cfg: cfg, sys: sys, mux: http.NewServeMux()}
	s.mux.HandleFunc("/io/kbd/scancode", s.handleScanCode)
	s.mux.HandleFunc("/io/screen", s.handleScreen)
	s.mux.HandleFunc("/", s.handleStatic)
	return s
}

// ServeHTTP logs each request and dispatches it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		s.log(fmt.Sprintf("HTTP501: %s %s", r.Method, r.URL.Path))
		http.Error(w, "Not Implemented", http.StatusNotImplemented)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Bind)
	if err != nil {
		return fmt.Errorf("sim: listen %s: %w", s.cfg.Bind, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.log("Serving on http://" + ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()
	select {
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		// SSE handlers return once ctx is done.
		if err := hs.Shutdown(sctx); err != nil {
			hs.Close()
		}
		<-errc
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sim: serve: %w", err)
	}
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name, ok := staticFiles[r.URL.Path]
	if !ok || s.cfg.WWWDir == "" || r.Method == http.MethodPost {
		s.notFound(w, r)
		return
	}
	f, err := os.Open(filepath.Join(s.cfg.WWWDir, name))
	if err != nil {
		s.notFound(w, r)
		return
	}
	defer f.Close()

	s.log("HTTP200: " + r.URL.Path)
	w.Header().Set("Content-Type", contentType(name))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	io.Copy(w, f)
}

// handleScanCode takes the scancode from the raw query, as in
// POST /io/kbd/scancode?P13p.
func (s *Server) handleScanCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.notFound(w, r)
		return
	}
	sc := r.URL.RawQuery
	if len(sc) != 4 {
		s.log("HTTP400: " + r.URL.String())
		w.Header().Set("Content-Type", textPlain)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "Bad Scancode")
		return
	}
	if err := s.sys.SendContext(r.Context(), kernel.EPServer, kernel.EPEventLoop, kernel.MsgKbdScanCode, []byte(sc)); err != nil {
		return
	}
	w.Header().Set("Content-Type", textPlain)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

// handleScreen streams a "frame" event carrying the base64 of the frame
// buffer words, big endian, for every published frame.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.notFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	s.log("HTTP200: SSE " + r.RemoteAddr)
	h := w.Header()
	h.Set("Content-Type", eventStream)
	h.Set("Cache-Control", "no-cache")
	h.Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	if r.Method == http.MethodHead {
		return
	}

	ctx := r.Context()
	frames := s.sys.Frames()
	var (
		fb  blit.FrameBuffer
		raw = make([]byte, blit.FrameBufSize*4)
		seq uint32
	)
	for {
		if _, err := frames.Wait(ctx, seq); err != nil {
			return
		}
		seq = frames.Read(&fb)
		if err := writeEvent(w, "frame", encodeFrame(raw, &fb)); err != nil {
			return
		}
		flusher.Flush()
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.log("HTTP404: " + r.URL.Path)
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (s *Server) log(line string) {
	s.sys.Log(kernel.EPServer, line)
}

// writeEvent writes one Server-Sent Event.
func writeEvent(w io.Writer, event, data string) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

// encodeFrame packs fb into raw as big-endian words and returns it as
// base64.
func encodeFrame(raw []byte, fb *blit.FrameBuffer) string {
	for i, w := range fb {
		binary.BigEndian.PutUint32(raw[i*4:], w)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeFrame is the inverse of the "frame" event payload encoding.
func DecodeFrame(data string, fb *blit.FrameBuffer) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("sim: decode frame: %w", err)
	}
	if len(raw) != blit.FrameBufSize*4 {
		return fmt.Errorf("sim: decode frame: %d bytes, want %d", len(raw), blit.FrameBufSize*4)
	}
	for i := range fb {
		fb[i] = binary.BigEndian.Uint32(raw[i*4:])
	}
	return nil
}

func contentType(name string) string {
	switch filepath.Ext(name) {
	case ".html":
		return textHTML
	case ".js":
		return textJS
	case ".css":
		return textCSS
	case ".txt":
		return textPlain
	default:
		return octetStream
	}
}
