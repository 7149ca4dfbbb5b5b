package order

import (
	"net/http"

	"canteen/infras/otel"
	"canteen/internal/domains/order/model/dto"
	"canteen/internal/domains/order/service"
	"canteen/shared/constant"
	gDto "canteen/shared/dto"
	"canteen/shared/failure"
	"canteen/shared/validator"
	"canteen/transport/http/middleware"
	"canteen/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	authMw  middleware.AuthMiddleware
	otel    otel.Otel
}

func New(service service.Order, authMw middleware.AuthMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.RequireSession)

		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/recent", handler.GetRecentOrders)
		routerGroup.With(handler.authMw.RequireRole(constant.RoleAdmin)).Post("/verify", handler.VerifyOrder)
		routerGroup.Get("/{id}", handler.GetOrderByID)
	})
}

// CreateOrder places a new food order.
// @Summary Create a new order
// @Description Create a food order and return its booking id and QR code.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} dto.CreateOrderResponse "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	username := middleware.UsernameFromContext(ctx)

	res, err := handler.service.Create(ctx, username, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOrders returns the caller's full order history, newest first.
// @Summary Get order history
// @Description Get the caller's order history, newest first, paginated.
// @Tags Order
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.GetOrdersResponse "Order history"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	username := middleware.UsernameFromContext(ctx)

	res, err := handler.service.History(ctx, username, params.Page, params.Limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRecentOrders returns the caller's five most recent orders.
// @Summary Get recent orders
// @Description Get the caller's five most recent orders.
// @Tags Order
// @Produce json
// @Success 200 {object} dto.GetOrdersResponse "Recent orders"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/recent [get]
// @Security BearerAuth
func (handler *Handler) GetRecentOrders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentOrders")
	defer scope.End()

	username := middleware.UsernameFromContext(ctx)

	res, err := handler.service.Recent(ctx, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent orders")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOrderByID returns a single order.
// @Summary Get an order by id
// @Description Get a single order. Owners see their own orders; admins see any.
// @Tags Order
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.OrderResponse "Order"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)
	if bookingID == "" {
		response.WithError(writer, failure.BadRequestFromString("booking id is required"))

		return
	}

	username := middleware.UsernameFromContext(ctx)
	role := middleware.RoleFromContext(ctx)

	res, err := handler.service.Get(ctx, username, role, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// VerifyOrder marks an order as collected.
// @Summary Verify and collect an order
// @Description Verify a booking by id or scanned QR payload and mark it collected.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verify Request"
// @Success 200 {object} dto.VerifyResponse "Order collected"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyOrder")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if req.BookingID == "" && req.ScannedQR == "" {
		response.WithError(writer, failure.BadRequestFromString("booking_id or scanned_qr is required"))

		return
	}

	res, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order collected successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
