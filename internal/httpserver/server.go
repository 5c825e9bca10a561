package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookmarks/backend/internal/config"
	authusecase "bookmarks/backend/internal/usecase/auth"
	bookmarkusecase "bookmarks/backend/internal/usecase/bookmark"
	userusecase "bookmarks/backend/internal/usecase/user"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer      *http.Server
	router          chi.Router
	logger          *slog.Logger
	authService     *authusecase.Service
	userService     *userusecase.Service
	bookmarkService *bookmarkusecase.Service
	addr            string
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(
	cfg config.Config,
	logger *slog.Logger,
	authService *authusecase.Service,
	userService *userusecase.Service,
	bookmarkService *bookmarkusecase.Service,
) *Server {
	router := chi.NewRouter()
	router.Use(middlewareStack(cfg, logger)...)

	srv := &Server{
		router:          router,
		logger:          logger,
		authService:     authService,
		userService:     userService,
		bookmarkService: bookmarkService,
		addr:            cfg.Addr(),
	}
	srv.httpServer = &http.Server{
		Addr:         srv.addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	srv.registerRoutes()
	return srv
}

// Start bootstraps the HTTP server on the configured address.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router with its middleware stack.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
