package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/logging"
)

// Config holds the simulator configuration.
type Config struct {
	Host     string
	Port     int
	Path     string // Websocket endpoint path, default "/ws"
	LogLevel string

	// Advertise controls mDNS registration. Disabled in tests.
	Advertise bool
	// Instance is the advertised mDNS instance name.
	Instance string
}

// Server is the bridge simulator.
type Server struct {
	config   *Config
	store    *datapoint.MemStore
	httpSrv  *http.Server
	upgrader websocket.Upgrader
	mdns     *zeroconf.Server

	mu       sync.Mutex
	sessions map[string]*session
	wg       sync.WaitGroup

	clockStop chan struct{}
}

// New creates a simulator with a freshly seeded store.
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	if config.Path == "" {
		config.Path = "/ws"
	}
	if config.Instance == "" {
		config.Instance = "mcdu-bridge-sim"
	}

	s := &Server{
		config:    config,
		store:     datapoint.NewMemStore(),
		sessions:  make(map[string]*session),
		clockStop: make(chan struct{}),
	}
	SeedSimulation(s.store)

	// Fan writes out to every connected terminal.
	s.store.Watch(s.broadcastUpdate)
	return s, nil
}

// Store exposes the backing store, used by tests and the serve command's
// scripted value drift.
func (s *Server) Store() *datapoint.MemStore {
	return s.store
}

// Start runs the simulator and blocks until a shutdown signal or a listener
// error.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logging.Info("Starting bridge simulator",
		zap.String("addr", addr),
		zap.String("path", s.config.Path),
		zap.String("log_level", s.config.LogLevel),
	)

	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleUpgrade)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if s.config.Advertise {
		if err := s.register(); err != nil {
			// The simulator is still reachable by explicit URL.
			logging.Warn("mDNS registration failed", zap.Error(err))
		}
	}

	go s.runClock()

	logging.Info("Simulator listening for terminals", zap.String("addr", addr))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpSrv.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping simulator...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// register advertises the simulator over mDNS.
func (s *Server) register() error {
	srv, err := zeroconf.Register(
		s.config.Instance,
		"_mcdu-bridge._tcp",
		"local.",
		s.config.Port,
		[]string{"path=" + s.config.Path, "version=1"},
		nil,
	)
	if err != nil {
		return err
	}
	s.mdns = srv
	logging.Info("Advertising over mDNS", zap.String("instance", s.config.Instance))
	return nil
}

// handleUpgrade upgrades one HTTP request to a websocket session.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("Websocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sess := newSession(conn, s.store)
	remoteAddr := conn.RemoteAddr().String()

	s.mu.Lock()
	s.sessions[remoteAddr] = sess
	s.mu.Unlock()

	logging.LogConnection(remoteAddr, "session_opened")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		sess.run()

		s.mu.Lock()
		delete(s.sessions, remoteAddr)
		s.mu.Unlock()
		logging.LogConnection(remoteAddr, "session_closed")
	}()
}

// broadcastUpdate pushes one value change to every connected session.
func (s *Server) broadcastUpdate(addr string, v datapoint.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.pushUpdate(addr, v)
	}
}

// runClock keeps the simulated cabin clock datapoint on wall time so
// time-based validation rules have something real to compare against.
func (s *Server) runClock() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.clockStop:
			return
		case now := <-ticker.C:
			v := datapoint.StringValue(now.Format("15:04"))
			_ = s.store.Set(context.Background(), ClockAddr, v)
		}
	}
}

// Shutdown closes the listener, all sessions and the mDNS advertisement.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down simulator...")

	close(s.clockStop)
	if s.mdns != nil {
		s.mdns.Shutdown()
	}
	if s.httpSrv != nil {
		if err := s.httpSrv.Close(); err != nil {
			logging.Error("Error closing HTTP server", zap.Error(err))
		}
	}

	s.mu.Lock()
	for addr, sess := range s.sessions {
		logging.Info("Closing session", zap.String("remote_addr", addr))
		sess.close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown cancelled, forcing close")
	case <-time.After(10 * time.Second):
		logging.Warn("Shutdown timeout after 10 seconds, forcing close")
	}

	logging.Sync()
	return nil
}

// SessionCount returns the number of connected terminals.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
