package handlers

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openapiYAML []byte

// NewOpenAPIRouter loads the embedded API description and builds a router over it.
func NewOpenAPIRouter() (routers.Router, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("create openapi router: %w", err)
	}
	return router, nil
}

// ValidateRequest checks query parameters and bodies against the API description.
// Credentials are checked by Authenticate, so security requirements are skipped here.
// Requests the description does not know are passed on for echo to reject.
func ValidateRequest(router routers.Router) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			req := ectx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ectx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, requestErrorMessage(err)).SetInternal(err)
			}

			return next(ectx)
		}
	}
}

// requestErrorMessage is the one-line reason returned to the client. The full validation
// error, schema dump included, stays on the HTTPError as Internal.
func requestErrorMessage(err error) string {
	var requestError *openapi3filter.RequestError
	if !errors.As(err, &requestError) {
		return "invalid request"
	}

	reason := requestError.Reason
	var schemaError *openapi3.SchemaError
	switch {
	case errors.As(requestError.Err, &schemaError) && schemaError.Reason != "":
		reason = schemaError.Reason
	case reason == "" && requestError.Err != nil:
		reason, _, _ = strings.Cut(requestError.Err.Error(), "\n")
	}

	msg := "invalid request"
	switch {
	case requestError.Parameter != nil:
		msg = fmt.Sprintf("invalid %s parameter %q", requestError.Parameter.In, requestError.Parameter.Name)
	case requestError.RequestBody != nil:
		msg = "invalid request body"
	}
	if reason != "" {
		msg += ": " + reason
	}
	return msg
}
