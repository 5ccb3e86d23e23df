// Package server provides the HTTP discovery server that peers register with.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rustycoin/server/internal/config"
	"github.com/rustycoin/server/internal/node"
	"github.com/rustycoin/server/internal/router"
	"github.com/rustycoin/server/pkg/command"
	"github.com/rustycoin/server/pkg/tracer"
	log "github.com/sirupsen/logrus"
)

// Server represents an HTTP server that maintains the registry of active
// nodes and serves the discovery API.
type Server struct {
	Addr string
	ln   net.Listener

	ctx context.Context

	ServerState

	IsAlive    int32
	shouldStop int32

	registry *node.Registry

	OutCommandCh chan command.InternalCommand

	httpRouter *router.Router
	httpSrv    *http.Server
	TraceCh    chan tracer.TraceEvent

	tracer *tracer.Tracer

	srvConfig *config.Config
}

// ServerState holds the current state of the server.
type ServerState struct {
	updated    bool `json:"-"`
	ShouldStop bool `json:"shouldStop"`
	IsAlive    bool `json:"isAlive"`
}

// NewServer creates a new Server. cfg may be nil; then a minimal dev config
// on the loopback interface is used. registry may be nil; then the server
// owns a fresh empty registry.
func NewServer(ctx context.Context, cfg *config.Config, registry *node.Registry) *Server {
	dcfg := cfg
	if dcfg == nil {
		dcfg = &config.Config{}
		dcfg.Server.Host = "127.0.0.1"
		dcfg.Server.Port = "8080"
		dcfg.Server.Env = "dev"
	}
	if registry == nil {
		registry = node.NewRegistry()
	}

	srv := &Server{
		Addr:         net.JoinHostPort(dcfg.Server.Host, dcfg.Server.Port),
		OutCommandCh: make(chan command.InternalCommand, 10),
		ctx:          ctx,
		registry:     registry,
		srvConfig:    dcfg,
	}
	srv.TraceCh = make(chan tracer.TraceEvent, 2000)
	srv.tracer = tracer.NewTracerWithChannel(srv.TraceCh)

	srv.httpRouter = router.NewRouter(
		router.LoggingMiddleware(),
		router.RateLimitMiddleware(dcfg.Server.HTTP.RateLimit.RPS, dcfg.Server.HTTP.RateLimit.Burst),
		srv.traceMiddleware(),
	)
	srv.httpRouter.OnRoute(http.MethodGet, "/", srv.handleIndex)
	srv.httpRouter.OnRoute(http.MethodPost, "/register", srv.handleRegister)
	srv.httpRouter.OnRoute(http.MethodPost, "/deregister", srv.handleDeregister)
	srv.httpRouter.OnRoute(http.MethodGet, "/query", srv.handleQuery)

	return srv
}

// Registry returns the node registry the server operates on.
func (s *Server) Registry() *node.Registry {
	return s.registry
}

// traceMiddleware feeds incoming requests to the tracer. In release
// builds the tracer is a no-op.
func (s *Server) traceMiddleware() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(w http.ResponseWriter, r *http.Request) error {
			s.tracer.Trace(tracer.TraceIn, r.Method, r.URL.Path, r.RemoteAddr, 0)
			return next(w, r)
		}
	}
}

// Run starts the Server and serves the discovery API until Stop is called.
func (s *Server) Run() error {
	s.httpRouter.ListRoutes()
	if atomic.LoadInt32(&s.IsAlive) == 1 {
		return errors.New("server is already running")
	}
	if debug {
		log.WithField("caller", "server").Warn("Running a debug build")
	}

	var err error
	s.ln, err = net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.httpSrv = &http.Server{Handler: s.httpRouter}

	s.setIsAlive(true)
	defer s.setIsAlive(false)
	log.WithField("caller", "server").Infof("Server started on %s", s.Addr)

	serveErr := s.httpSrv.Serve(s.ln)
	if errors.Is(serveErr, http.ErrServerClosed) || atomic.LoadInt32(&s.shouldStop) == 1 {
		return nil
	}
	return serveErr
}

// Stop stops the Server and drains in-flight requests.
func (s *Server) Stop() {
	s.setShouldStop()

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.WithField("caller", "server").WithError(err).Error("Shutdown")
		}
		s.httpSrv = nil
	}
	if s.ln != nil {
		_ = s.ln.Close()
		s.ln = nil
	}
}

// notifyRegistryUpdated signals registry churn on the command channel
// without blocking the handler.
func (s *Server) notifyRegistryUpdated() {
	select {
	case <-s.ctx.Done():
		return
	case s.OutCommandCh <- command.CmdRegistryUpdated:
	default:
	}
}

// setShouldStop marks the server for shutdown and notifies the state update channel.
func (s *Server) setShouldStop() {
	atomic.StoreInt32(&s.shouldStop, 1)
	select {
	case <-s.ctx.Done():
		return
	case s.OutCommandCh <- command.CmdUpdateServerState:
	default:
	}
	s.updated = true
	s.ShouldStop = true
}

// setIsAlive updates the server's alive status and notifies the state update channel.
func (s *Server) setIsAlive(val bool) {
	var v int32
	if val {
		v = 1
	}
	atomic.StoreInt32(&s.IsAlive, v)
	select {
	case <-s.ctx.Done():
		return
	case s.OutCommandCh <- command.CmdUpdateServerState:
	default:
	}
	s.updated = true
	s.ServerState.IsAlive = val
}
