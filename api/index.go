package handler

import (
	"net/http"

	"canteen/config"
	"canteen/di"
	_ "canteen/docs"
	"canteen/shared/logger"
)

// Handler adapts the service for serverless platforms that route every
// request through a single entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
