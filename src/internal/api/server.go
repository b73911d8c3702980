package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
	"github.com/babydepdev/otp-network-setting-go/src/internal/networking"
)

// InterfaceLister returns the host's network links. Injectable so handler
// tests run without netlink access.
type InterfaceLister func() ([]networking.Interface, error)

// ServerOptions configure the API server.
type ServerOptions struct {
	Config     *config.Config
	ListenAddr string
	Version    VersionInfo
	// ListInterfaces defaults to networking.GetInterfaceList.
	ListInterfaces InterfaceLister
}

// Server represents the API server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
}

// NewServer creates a new API server
func NewServer(opts ServerOptions) *Server {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.ListInterfaces == nil {
		opts.ListInterfaces = networking.GetInterfaceList
	}

	s := &Server{
		router: NewRouter(opts),
	}

	s.httpServer = &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// NewRouter builds the chi router with all middleware and routes. Split out
// of NewServer so handler tests can drive it through httptest.
func NewRouter(opts ServerOptions) *chi.Mux {
	router := chi.NewRouter()

	router.Use(Recovery)
	router.Use(Logger)
	router.Use(CORS)
	router.Use(JSONContentType)
	if opts.Config.General != nil && opts.Config.General.PrivateSubnetsOnly {
		router.Use(PrivateSubnetOnly)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/document", func(r chi.Router) {
			r.Post("/", HandleDocumentGenerate(opts.Config, opts.Version))
			r.Post("/validate", HandleDocumentValidate())
		})

		r.Post("/priorities/check", HandlePriorityCheck())

		r.Get("/interfaces", HandleInterfacesList(opts.ListInterfaces))

		r.Get("/defaults", HandleDefaults(opts.Config))
	})

	// Health check endpoint at root
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return router
}

// Start starts the API server
func (s *Server) Start() error {
	log.Infof("[API] Starting server on %s", s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/api/v1/defaults", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the API server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
