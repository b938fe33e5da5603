package handlers

import (
	"net/http"

	"iotpersistence/interfaces"
	"iotpersistence/service"

	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// RouteOptions are the collaborators of the middleware chain.
type RouteOptions struct {
	Authenticator interfaces.Authenticator
	Realm         string
	Validator     routers.Router
}

// RegisterHandlers adds each server route to the EchoRouter. Every API route runs
// Authenticate, then RequireRoles with the route's gate, then ValidateRequest.
func RegisterHandlers(router *echo.Echo, si ServerInterface, opts RouteOptions) {
	chain := func(gate service.Gate) []echo.MiddlewareFunc {
		mw := []echo.MiddlewareFunc{
			Authenticate(opts.Authenticator, opts.Realm),
			RequireRoles(gate),
		}
		if opts.Validator != nil {
			mw = append(mw, ValidateRequest(opts.Validator))
		}
		return mw
	}
	state := chain(service.StateGate)
	admin := chain(service.AdminGate)

	router.GET("/", si.Root)
	router.GET("/openapi.yaml", si.OpenAPIDocument)

	router.GET("/set", withCaller(si.SetState), state...)
	router.GET("/get", withCaller(si.GetState), state...)
	router.GET("/del", withCaller(si.DeleteState), state...)
	router.GET("/list", withCaller(si.ListStates), state...)

	router.GET("/admin", withCaller(si.ListUsers), admin...)
	router.Add(http.MethodPost, "/admin/adduser", withCaller(si.AddUser), admin...)
	router.GET("/admin/deluser", withCaller(si.DeleteUser), admin...)
	router.GET("/admin/user", withCaller(si.GetUser), admin...)
}
