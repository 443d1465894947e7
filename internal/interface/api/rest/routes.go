package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUser        = RouteApiV1 + "/user"
	RouteUserCreate  = RouteUser + "/"
	RouteUserByID    = RouteUser + "/:id"
	RouteUserDelete  = RouteUser + "/delete/:id"
	RouteUserGetByID = RouteUser + "/get/:id"
	RouteUserGet     = RouteUser + "/get"
	RouteUserSearch  = RouteUser + "/search"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
