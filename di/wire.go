//go:build wireinject
// +build wireinject

package di

import (
	"canteen/config"
	"canteen/infras/kafka"
	"canteen/infras/mongo"
	"canteen/infras/otel"
	"canteen/infras/qr"
	"canteen/infras/razorpay"
	"canteen/infras/redis"
	"canteen/infras/s3"
	"canteen/infras/session"
	"canteen/shared/cache"
	"canteen/shared/password"
	"canteen/transport/http"
	"canteen/transport/http/middleware"
	"canteen/transport/http/router"

	authService "canteen/internal/domains/auth/service"
	orderRepository "canteen/internal/domains/order/repository"
	orderService "canteen/internal/domains/order/service"
	userRepository "canteen/internal/domains/user/repository"

	authHandler "canteen/internal/handlers/auth"
	healthHandler "canteen/internal/handlers/health"
	orderHandler "canteen/internal/handlers/order"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	mongo.NewTransactionManager,
	otel.New,
	redis.New,
	session.New,
	qr.New,
	razorpay.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	password.NewHasher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var domains = wire.NewSet(
	authDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	orderHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
