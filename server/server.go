package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/hypertodo/hypertodo/api"
	"github.com/hypertodo/hypertodo/db"
	"github.com/hypertodo/hypertodo/log"
	"github.com/hypertodo/hypertodo/metrics"
	"github.com/hypertodo/hypertodo/todo"
	"github.com/hypertodo/hypertodo/web"
)

// Server owns and coordinates all application components
type Server struct {
	cfg *Config

	// Components (owned by server)
	database *db.DB
	service  *todo.Service
	renderer *web.Renderer

	// Shutdown context - cancelled when server is shutting down.
	// The template watcher listens to this.
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc

	// HTTP
	router *gin.Engine
	http   *http.Server
}

// New creates a new server with all components initialized
func New(cfg *Config) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:            cfg,
		shutdownCtx:    ctx,
		shutdownCancel: cancel,
	}

	// 1. Open database
	log.Info().Msg("initializing database")
	database, err := db.Open(cfg.ToDBConfig())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s.database = database

	// 2. Create todo service over the store
	s.service = todo.NewService(database)

	// 3. Create fragment renderer
	log.Info().Msg("initializing renderer")
	s.renderer, err = web.NewRenderer(cfg.ToWebConfig())
	if err != nil {
		database.Close()
		cancel()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// 4. Setup HTTP router
	s.setupRouter()

	log.Info().Msg("server initialized successfully")
	return s, nil
}

// setupRouter creates and configures the Gin router
func (s *Server) setupRouter() {
	// Set Gin mode
	if !s.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	s.router = gin.New()

	// Middleware
	s.router.Use(gin.Recovery())
	s.router.Use(log.GinLogger())
	s.router.Use(metrics.GinMiddleware())

	// Security headers (production only)
	if !s.cfg.IsDevelopment() {
		s.router.Use(s.securityHeadersMiddleware())
	}

	// Gzip compression
	s.router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Trust proxy headers
	s.router.SetTrustedProxies(nil)

	// Ignore .well-known requests
	s.router.GET("/.well-known/*path", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	// Prometheus metrics
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Application routes
	handlers := api.New(s.service, s.renderer)
	api.SetupRoutes(s.router, handlers)
}

// securityHeadersMiddleware adds security headers for production
func (s *Server) securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Clickjacking protection
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Referrer policy - don't leak full URLs to other origins
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// Start starts the template watcher and the HTTP server (blocks)
func (s *Server) Start() error {
	// Template hot reload in development
	if s.cfg.IsDevelopment() && s.cfg.TemplateDir != "" {
		go func() {
			if err := s.renderer.Watch(s.shutdownCtx); err != nil {
				log.Error().Err(err).Msg("template watcher stopped")
			}
		}()
	}

	s.http = &http.Server{
		Addr:     fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:  s.router,
		ErrorLog: log.StdErrorLogger(), // Route Go's internal HTTP errors through zerolog
	}

	log.Info().
		Str("addr", s.http.Addr).
		Str("env", s.cfg.Env).
		Msg("HTTP server starting")

	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")

	// 1. Stop the template watcher
	s.shutdownCancel()

	// 2. Shutdown HTTP server (stop accepting new requests and wait for existing ones)
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("http server shutdown error")
		}
	}

	// 3. Close database last
	if s.database != nil {
		if err := s.database.Close(); err != nil {
			log.Error().Err(err).Msg("database close error")
			return err
		}
	}

	log.Info().Msg("server shutdown complete")
	return nil
}

// Component accessors
func (s *Server) DB() *db.DB              { return s.database }
func (s *Server) Service() *todo.Service  { return s.service }
func (s *Server) Router() *gin.Engine     { return s.router }
