// Package httpapi exposes the service over HTTP/JSON: registration, login,
// and document lookup, plus a liveness endpoint.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/docport/internal/logging"
	"github.com/dmitrijs2005/docport/internal/server/models"
)

// UserService is the slice of the user service the handlers need.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
}

// DocumentService answers document lookups.
type DocumentService interface {
	Get(ctx context.Context, country, documentType string) (*models.DocumentDetail, error)
}

type Server struct {
	addr            string
	shutdownTimeout time.Duration
	engine          *gin.Engine
	logger          logging.Logger
	users           UserService
	documents       DocumentService
}

// Options configures the HTTP server.
type Options struct {
	Addr            string
	GinMode         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

func NewServer(opts Options, l logging.Logger, us UserService, ds DocumentService) *Server {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	s := &Server{
		addr:            opts.Addr,
		shutdownTimeout: opts.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		documents:       ds,
	}

	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(s.logger), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = opts.CORSOrigins
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		engine.Use(cors.New(corsConfig))
	}

	engine.GET("/health", s.health)
	engine.POST("/register", s.register)
	engine.POST("/login", s.login)
	engine.GET("/documents/:country/:type", s.document)

	s.engine = engine
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
