// Package site serves the demo blog the end-to-end suite runs against.
// The server is importable so tests can start and stop it programmatically
// on a random port without shelling out to a separate process.
package site

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds server configuration options.
type Config struct {
	Addr         string        // Listen address (":0" binds a random port)
	ReadTimeout  time.Duration // HTTP read timeout
	WriteTimeout time.Duration // HTTP write timeout
	Logger       *log.Logger   // Optional request logger; nil disables logging
}

// DefaultConfig returns a configuration suitable for testing.
func DefaultConfig() Config {
	return Config{
		Addr:         ":0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server is the importable demo blog HTTP server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     *log.Logger
	addr       string
	mu         sync.Mutex
	running    bool
}

// NewServer creates a server with the given configuration.
// The server does not listen until Start is called.
func NewServer(cfg Config) *Server {
	s := &Server{logger: cfg.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about/{$}", s.handleAbout)
	mux.HandleFunc("GET /posts/{slug}/{$}", s.handlePost)
	mux.HandleFunc("GET /static/gopher.png", s.handleGopher)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.logged(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger != nil {
			s.logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := newPageData(HeroHeading)
	data.Posts = Posts()
	s.render(w, "home", data)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about", newPageData("About — The Demo Blog"))
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	post, ok := PostBySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := newPageData(post.Title + " — The Demo Blog")
	data.Post = &post
	s.render(w, "post", data)
}

func (s *Server) handleGopher(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(gopherPNG)
}

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		if s.logger != nil {
			s.logger.Error("render failed", "template", name, "err", err)
		}
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Start begins listening and serving HTTP requests.
// Returns the actual address the server is listening on (useful when the
// configured port is 0). Non-blocking; the server runs in a goroutine.
func (s *Server) Start() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.addr, nil
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}

	s.listener = ln
	s.addr = ln.Addr().String()
	s.running = true

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Error("serve stopped", "err", err)
			}
		}
	}()

	return s.addr, nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	s.running = false
	s.addr = ""
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on, or "" when stopped.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// BaseURL returns the http URL of the running server, or "" when stopped.
func (s *Server) BaseURL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	return "http://" + addr
}
