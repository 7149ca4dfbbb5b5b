package middleware

import (
	"context"
	"net/http"

	"canteen/infras/otel"
	"canteen/infras/session"
	authService "canteen/internal/domains/auth/service"
	"canteen/shared/constant"
	"canteen/shared/failure"
	"canteen/transport/http/response"

	"github.com/rs/zerolog/log"
)

// AuthMiddleware guards routes behind a live session. The session check also
// confirms the account still exists, so a deleted user is cut off immediately.
type AuthMiddleware interface {
	RequireSession(next http.Handler) http.Handler
	RequireRole(role string) func(next http.Handler) http.Handler
}

type authMiddleware struct {
	auth authService.Auth
	otel otel.Otel
}

func NewAuthMiddleware(auth authService.Auth, otel otel.Otel) AuthMiddleware {
	return &authMiddleware{
		auth: auth,
		otel: otel,
	}
}

func (a *authMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, otelHTTPScopeName+".RequireSession")
		defer scope.End()

		token, err := session.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.Unauthorized(err.Error()))

			return
		}

		claims, err := a.auth.Validate(ctx, token)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("rejected request with invalid session")

			response.WithError(w, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeySessionID, claims.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *authMiddleware) RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

			if got != role {
				response.WithError(w, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UsernameFromContext reads the authenticated username set by RequireSession.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	return username
}

// RoleFromContext reads the authenticated role set by RequireSession.
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}
