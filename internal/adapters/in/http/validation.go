package http

import (
	"errors"
	"net/http"

	"checkout/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator returns middleware that checks every API request
// against the OpenAPI document before it reaches a handler. Requests for
// paths the document does not describe (health, swagger UI) pass through.
func NewRequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match on path only; the document's server URL is not where we listen.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(ctx)
			}
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) || reqErr.Err == nil {
		return err.Error()
	}
	switch {
	case reqErr.Parameter != nil:
		return "Invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Err.Error()
	case reqErr.RequestBody != nil:
		return "Invalid request body: " + reqErr.Err.Error()
	}
	return err.Error()
}
