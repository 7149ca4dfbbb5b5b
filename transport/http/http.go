package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canteen/config"
	"canteen/shared/constant"
	"canteen/transport/http/middleware"
	"canteen/transport/http/response"
	"canteen/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState
	mux    *chi.Mux

	appMw middleware.AppMiddleware
}

func New(cfg *config.Config, r router.Router, appMw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		appMw:  appMw,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	if err := http.ListenAndServe(addr, h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Handler exposes the configured mux for serverless adaptors and tests.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	if h.mux != nil {
		return
	}

	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.appMw.CORS)
	h.mux.Use(h.appMw.Tracing)
	h.mux.Use(h.rejectDuringShutdown)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		h.mux.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	h.Router.SetupRoutes(h.mux)
}

// rejectDuringShutdown refuses new work once the grace period has started so
// the load balancer drains this instance.
func (h *HTTP) rejectDuringShutdown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State == ServerStateInGracePeriod || h.State == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
