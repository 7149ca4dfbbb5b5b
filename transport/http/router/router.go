package router

import (
	"canteen/internal/handlers/auth"
	"canteen/internal/handlers/health"
	"canteen/internal/handlers/order"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth   auth.Handler
	Order  order.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
