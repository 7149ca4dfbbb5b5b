package auth

import (
	"net/http"

	"canteen/infras/otel"
	"canteen/infras/session"
	"canteen/internal/domains/auth/model/dto"
	"canteen/internal/domains/auth/service"
	"canteen/shared/constant"
	"canteen/shared/failure"
	"canteen/shared/validator"
	"canteen/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
	})
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user with the provided credentials.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user login
// @Summary Login a user
// @Description Login a user and issue a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes the current session
// @Summary Logout the current user
// @Description Revoke the session named by the Authorization header.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Message "User logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	token, err := session.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.Unauthorized(err.Error()))

		return
	}

	if err := handler.service.Logout(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged out successfully")

	response.WithMessage(w, http.StatusOK, "User logged out successfully")
}
