package health

import (
	"net/http"

	"canteen/config"
	mongoInfra "canteen/infras/mongo"
	"canteen/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Status struct {
	Status string `json:"status"`
	App    string `json:"app"`
	Env    string `json:"env"`
	Mongo  string `json:"mongo"`
}

type Handler struct {
	cfg *config.Config
	db  *mongoInfra.Connection
}

func New(cfg *config.Config, db *mongoInfra.Connection) Handler {
	return Handler{
		cfg: cfg,
		db:  db,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// Health reports service liveness and storage reachability.
// @Summary Health probe
// @Description Report service liveness, including document store reachability.
// @Tags Health
// @Produce json
// @Success 200 {object} Status "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := Status{
		Status: "ok",
		App:    handler.cfg.App.Name,
		Env:    handler.cfg.Server.Env,
		Mongo:  "up",
	}

	if err := handler.db.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("health probe failed to reach document store")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
