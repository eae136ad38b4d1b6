package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"parcels/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

var registerDocsOnce sync.Once

// LoadContract parses and validates the embedded OpenAPI document. Server
// entries are dropped so routes match whatever host the service runs on.
func LoadContract(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}

	doc.Servers = nil
	return doc, nil
}

// RequestValidator rejects requests that do not match the contract with 400.
// Paths the contract does not describe, such as the docs UI, pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if isRouteError(findErr, routers.ErrPathNotFound) {
					return next(c)
				}
				if isRouteError(findErr, routers.ErrMethodNotAllowed) {
					return c.JSON(http.StatusMethodNotAllowed, Error{
						Code:    http.StatusMethodNotAllowed,
						Message: "Method not allowed",
					})
				}
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: findErr.Error(),
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid request: " + validationMessage(validateErr),
				})
			}

			return next(c)
		}
	}, nil
}

// registerDocs publishes the contract to the docs UI. swag keeps a process-wide
// registry that panics on duplicates, so registration happens once.
func registerDocs(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi contract: %w", err)
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(data),
		})
	})
	return nil
}

// isRouteError matches router failures by reason, since routers build fresh
// RouteError values instead of returning the exported ones.
func isRouteError(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}
	var routeErr *routers.RouteError
	return errors.As(err, &routeErr) && routeErr.Reason == target.Error()
}

func validationMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return fmt.Sprintf("%s: %s", strings.Join(pointer, "."), schemaErr.Reason)
		}
		return schemaErr.Reason
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reqErr.Reason)
		}
		if reqErr.Reason != "" {
			return reqErr.Reason
		}
	}
	return err.Error()
}
