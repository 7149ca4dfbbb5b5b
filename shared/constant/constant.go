package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername  contextKey = "username"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeySessionID contextKey = "session_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
	RecentOrdersLimit = 5
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelS3ScopeName = "s3"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderForwardedFor  = "X-Forwarded-For"
	RequestHeaderRealIP        = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
