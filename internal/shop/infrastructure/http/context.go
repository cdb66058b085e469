package http

const (
	authHeaderName  = "Authorization"
	requestIdHeader = "X-Request-Id"

	ProductIdKey = "id"

	UserIDContextKey    = "user_id"
	CustomerContextKey  = "customer"
	RequestIDContextKey = "request_id"
)
