package middleware

import (
	"fmt"
	"net/http"

	"canteen/config"
	"canteen/infras/otel"

	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.UserAgent(),
			"http.host":       r.Host,
			"http.source":     r.RemoteAddr,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	corsConfig := a.config.App.CORS

	return cors.Handler(cors.Options{
		AllowCredentials: corsConfig.AllowCredentials,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedOrigins:   corsConfig.AllowedOrigins,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})(next)
}
