package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/handlers/assessment"
	govmiddleware "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/server/middleware"
)

type Dependencies struct {
	Assessment *assessment.Handler
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func ConfigureRouter(logger *zerolog.Logger, deps Dependencies) *chi.Mux {
	router := chi.NewRouter()

	router.Use(govmiddleware.Logger(logger))
	router.Use(middleware.Recoverer)

	h := deps.Assessment
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects/{project}", func(r chi.Router) {
			r.Put("/responses", h.SaveResponses)
			r.Get("/feasibility", h.GetFeasibility)
			r.Put("/risks", h.SaveRisks)
			r.Get("/risks/summary", h.GetRiskSummary)
			r.Put("/governance", h.SaveGovernance)
			r.Get("/readiness", h.GetReadiness)
			r.Post("/decision", h.SynthesizeDecision)
			r.Post("/brief", h.GenerateBrief)
		})
		r.Post("/maturity/score", h.ScoreMaturity)
		r.Post("/usecases/prioritize", h.PrioritizeUseCases)
		r.Post("/roi", h.CalculateRoi)
		r.Post("/roi/sensitivity", h.CalculateSensitivity)
		r.Post("/roi/enhanced", h.CalculateEnhancedRoi)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(&logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
