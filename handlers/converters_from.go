package handlers

import (
	"iotpersistence/service"

	"github.com/labstack/echo/v4"
)

// AddUserRequest is the body of POST /admin/adduser.
type AddUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// queryParam returns nil when name is absent from the query string and a pointer to
// its first value otherwise, so "value=" and a missing value stay distinguishable.
func queryParam(ectx echo.Context, name string) *string {
	values, ok := ectx.QueryParams()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return service.Ptr(values[0])
}
