// Package web provides the HTTP server and JSON handlers for the clinic
// backend.
package web

import (
	"context"
	"net/http"

	"github.com/clinicdesk/clinic-api/internal/clinic"
	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the clinic API.
type Server struct {
	service *clinic.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a Server around the given service and configuration.
func NewServer(service *clinic.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes. Paths mirror the clinic frontend's
// existing contract.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Get("/patient", s.handleListPatients)
	s.router.Get("/patient/{patientID}/reports", s.handlePatientReports)

	s.router.Get("/doctor", s.handleListDoctors)
	s.router.Get("/doctor/{doctorID}/attendance", s.handleDoctorAttendance)
	s.router.Put("/doctor/{doctorID}/attendance", s.handleUpdateAttendance)
	s.router.Get("/doctor/{doctorID}/patients", s.handleDoctorPatients)

	s.router.Get("/appointments/{userID}", s.handleAppointmentsByUser)
	s.router.Put("/appointments", s.handleCreateAppointments)
	s.router.Patch("/appointments/{appointmentID}", s.handleUpdateAppointmentStatus)
}

// Start begins listening for HTTP requests using the configured timeouts.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
