package main

import (
	"canteen/config"
	"canteen/di"
	_ "canteen/docs"
	"canteen/shared/logger"
)

// @title Canteen Pre-Order API
// @version 1.0
// @description Food pre-ordering service with QR based collection.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
