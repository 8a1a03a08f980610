package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/handlers/estimate"
	cateringmiddleware "github.com/AjAce1234/Catering-Cost-Calculator/pkg/server/middleware"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/adjust"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Rates      pricing.Rates
	Calculator pricing.Calculator
	Advisor    advisor.Advisor
	Applicator adjust.Applicator
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := estimate.NewHandler(deps.Rates, deps.Calculator, deps.Advisor, deps.Applicator)

	router := chi.NewRouter()
	router.Use(cateringmiddleware.Logger(&deps.Logger))
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/meal-types", handler.ListMealTypes)
		r.Route("/estimates", func(r chi.Router) {
			r.Post("/meal", handler.EstimateMeal)
			r.Post("/event", handler.EstimateEvent)
			r.Post("/analyze", handler.Analyze)
			r.Post("/adjust", handler.Adjust)
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
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

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
