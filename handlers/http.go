// Package handlers contains http handlers for iotpersistence.
package handlers

import (
	"fmt"
	"net/http"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"
	"iotpersistence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// ServerInterface is the set of operations routed by RegisterHandlers.
type ServerInterface interface {
	// (GET /set)
	SetState(ectx echo.Context, caller domain.User) error
	// (GET /get)
	GetState(ectx echo.Context, caller domain.User) error
	// (GET /del)
	DeleteState(ectx echo.Context, caller domain.User) error
	// (GET /list)
	ListStates(ectx echo.Context, caller domain.User) error
	// (GET /admin)
	ListUsers(ectx echo.Context, caller domain.User) error
	// (POST /admin/adduser)
	AddUser(ectx echo.Context, caller domain.User) error
	// (GET /admin/deluser)
	DeleteUser(ectx echo.Context, caller domain.User) error
	// (GET /admin/user)
	GetUser(ectx echo.Context, caller domain.User) error
	// (GET /)
	Root(ectx echo.Context) error
	// (GET /openapi.yaml)
	OpenAPIDocument(ectx echo.Context) error
}

// HTTPServer implements ServerInterface over the state service and the user directory.
type HTTPServer struct {
	states    interfaces.StateService
	directory interfaces.UserDirectory
	logger    log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(states interfaces.StateService, directory interfaces.UserDirectory, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		states:    helpers.NilPanic(states, "handlers.http.go: states is required"),
		directory: helpers.NilPanic(directory, "handlers.http.go: directory is required"),
		logger:    logger,
	}
}

// SetState (GET /set?key=&value=) stores value under key for the caller.
func (h *HTTPServer) SetState(ectx echo.Context, caller domain.User) error {
	key := ectx.QueryParam("key")
	if err := h.states.Set(ectx.Request().Context(), caller, key, queryParam(ectx, "value")); err != nil {
		return fmt.Errorf("setState failed, err: %w", err)
	}

	return ectx.String(http.StatusOK, "Success")
}

// GetState (GET /get?key=) returns the raw value.
func (h *HTTPServer) GetState(ectx echo.Context, caller domain.User) error {
	value, err := h.states.Get(ectx.Request().Context(), caller, ectx.QueryParam("key"))
	if err != nil {
		return fmt.Errorf("getState failed, err: %w", err)
	}

	return ectx.String(http.StatusOK, value)
}

// DeleteState (GET /del?key=).
func (h *HTTPServer) DeleteState(ectx echo.Context, caller domain.User) error {
	if err := h.states.Delete(ectx.Request().Context(), caller, ectx.QueryParam("key")); err != nil {
		return fmt.Errorf("deleteState failed, err: %w", err)
	}

	return ectx.String(http.StatusOK, "Successfully removed state")
}

// ListStates (GET /list) returns the caller's entries as a JSON object.
func (h *HTTPServer) ListStates(ectx echo.Context, caller domain.User) error {
	states, err := h.states.List(ectx.Request().Context(), caller)
	if err != nil {
		return fmt.Errorf("listStates failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, states)
}

func (h *HTTPServer) ListUsers(ectx echo.Context, caller domain.User) error {
	users, err := h.directory.ListUsers(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("listUsers failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toUsersResponse(users))
}

// AddUser (POST /admin/adduser) creates a user from a JSON body.
func (h *HTTPServer) AddUser(ectx echo.Context, caller domain.User) error {
	var req AddUserRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	user, err := h.directory.AddUser(ectx.Request().Context(), req.Username, req.Password, req.IsAdmin)
	if err != nil {
		return fmt.Errorf("addUser failed, err: %w", err)
	}

	level.Info(h.logger).Log("msg", "user added", "by", caller.Name, "user", user.Name, "role", user.Role)
	return ectx.JSON(http.StatusCreated, toUserInfo(user))
}

// DeleteUser (GET /admin/deluser?username=) removes the user and its entries.
func (h *HTTPServer) DeleteUser(ectx echo.Context, caller domain.User) error {
	name := ectx.QueryParam("username")
	if err := h.directory.DeleteUser(ectx.Request().Context(), name); err != nil {
		return fmt.Errorf("deleteUser failed, err: %w", err)
	}

	level.Info(h.logger).Log("msg", "user deleted", "by", caller.Name, "user", name)
	return ectx.NoContent(http.StatusOK)
}

func (h *HTTPServer) GetUser(ectx echo.Context, caller domain.User) error {
	details, err := h.directory.UserDetails(ectx.Request().Context(), ectx.QueryParam("username"))
	if err != nil {
		return fmt.Errorf("getUser failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toUserDetailsResponse(details))
}

func (h *HTTPServer) Root(ectx echo.Context) error {
	return ectx.String(http.StatusNotFound, "Use the api endpoints")
}

func (h *HTTPServer) OpenAPIDocument(ectx echo.Context) error {
	return ectx.Blob(http.StatusOK, "application/yaml", openapiYAML)
}
