// Package remote serves the game to browsers over websockets. Every connection
// plays its own simulation on the server; the browser only draws frames.
package remote

import (
	_ "embed"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"absorb/internal/config"
	"absorb/internal/sim"
)

const (
	TickRate      = 60
	WebSocketPath = "/ws"
	MaxSessions   = 64
)

//go:embed static/index.html
var indexHTML []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:    1024,
	WriteBufferSize:   4096,
	EnableCompression: true,
}

type Server struct {
	cfg         config.Config
	logger      *log.Logger
	mux         *http.ServeMux
	maxSessions int

	mu    sync.Mutex
	conns map[uuid.UUID]*Conn
}

func NewServer(cfg config.Config, logger *log.Logger) *Server {
	s := &Server{
		cfg:         cfg,
		logger:      logger,
		mux:         http.NewServeMux(),
		maxSessions: MaxSessions,
		conns:       make(map[uuid.UUID]*Conn),
	}
	s.mux.HandleFunc(WebSocketPath, s.handleWS)
	s.mux.HandleFunc("/", s.handleIndex)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Count returns the number of live sessions.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// add registers c unless the server is full.
func (s *Server) add(c *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.conns) >= s.maxSessions {
		return false
	}
	s.conns[c.ID] = c
	return true
}

func (s *Server) remove(c *Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, c.ID)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("ws upgrade error: %v", err)
		return
	}
	ws.EnableWriteCompression(true)

	conn := NewConn(ws)
	if !s.add(conn) {
		_ = conn.Send(ErrorMsg{Type: MsgError, Message: "Server full. Please try again later."})
		conn.Close()
		return
	}
	defer func() {
		s.remove(conn)
		conn.Close()
		s.logger.Printf("player disconnected: %s", conn.ID)
	}()

	sess, err := NewSession(conn, sim.Options{
		Tuning:     s.cfg.Tuning,
		Seed:       s.cfg.Seed,
		StartLevel: s.cfg.StartLevel,
	}, s.logger)
	if err != nil {
		s.logger.Printf("session %s: %v", conn.ID, err)
		_ = conn.Send(ErrorMsg{Type: MsgError, Message: "Could not start a game."})
		return
	}
	s.logger.Printf("player connected: %s", conn.ID)
	_ = conn.Send(WelcomeMsg{Type: MsgWelcome, ID: conn.ID.String(), Levels: sess.ctx.NumLevels()})

	done := make(chan struct{})
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		sess.Run(done)
	}()

	// Blocking read loop; runs until the client disconnects.
	conn.ReadLoop(s.logger)
	close(done)
	<-loopDone
}
