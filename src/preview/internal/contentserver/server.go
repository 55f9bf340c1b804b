// Package contentserver serves the preview's fallback page over loopback.
//
// Each server instance is exclusively owned by one preview session: it binds a
// kernel-assigned port on 127.0.0.1, serves the single static payload, and is
// torn down with its session. The payload is re-read from storage on every
// request rather than cached at start, so edits to the fallback page during a
// session are reflected on the next load.
package contentserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/yaml-preview/src/preview/internal/fs"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Params are inbound parameters to start a new content server.
type Params struct {
	Logger      *zap.SugaredLogger
	FS          fs.PreviewFS
	Stats       tally.Scope
	PayloadPath string

	// OnPayloadChange, when set, is invoked after the payload file changes on
	// disk (debounced). Used to refresh an already-open preview.
	OnPayloadChange func()
}

// Server is a loopback HTTP server for a single session's fallback page.
type Server struct {
	ln          net.Listener
	srv         *http.Server
	payloadPath string
	fs          fs.PreviewFS
	logger      *zap.SugaredLogger
	stats       tally.Scope

	watcher  *payloadWatcher
	stopOnce sync.Once
	stopErr  error
}

// Start binds the loopback interface on an OS-assigned port and begins serving.
func Start(p Params) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("binding loopback listener: %w", err)
	}

	s := &Server{
		ln:          ln,
		payloadPath: p.PayloadPath,
		fs:          p.FS,
		logger:      p.Logger,
		stats:       p.Stats.SubScope("content_server"),
	}

	r := chi.NewRouter()
	r.Get("/", s.servePayload)
	r.Get("/index.html", s.servePayload)

	s.srv = &http.Server{Handler: r}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Warnw("content server stopped", zap.Error(err))
		}
	}()

	if p.OnPayloadChange != nil {
		// Watch failure is not fatal: the page still serves, it just won't refresh.
		w, err := watchPayload(p.PayloadPath, p.Logger, p.OnPayloadChange)
		if err != nil {
			s.logger.Warnw("unable to watch payload for changes", zap.Error(err))
		} else {
			s.watcher = w
		}
	}

	s.logger.Infow("content server started", zap.String("address", s.BaseURL()))
	return s, nil
}

// BaseURL returns the server's loopback origin, e.g. "http://127.0.0.1:54321".
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", s.ln.Addr().(*net.TCPAddr).Port)
}

// Stop releases the port immediately. Safe to call more than once, and safe
// even if no request was ever served.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		var err error
		if s.watcher != nil {
			err = multierr.Append(err, s.watcher.close())
		}
		err = multierr.Append(err, s.srv.Shutdown(context.Background()))
		s.stopErr = err
	})
	return s.stopErr
}

// servePayload answers the root and canonical index paths with the payload,
// read per request so that edits to the file are picked up live.
func (s *Server) servePayload(w http.ResponseWriter, r *http.Request) {
	data, err := s.fs.ReadFile(s.payloadPath)
	if err != nil {
		s.stats.Counter("serve_errors").Inc(1)
		s.logger.Warnw("unable to read payload", zap.String("path", s.payloadPath), zap.Error(err))
		http.Error(w, "unable to read preview payload", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
