package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// Contract is the loaded OpenAPI document with a router over its operations.
type Contract struct {
	doc    *openapi3.T
	router routers.Router
	public map[string]bool
	json   string
}

// LoadContract parses and validates an OpenAPI 3 document.
func LoadContract(ctx context.Context, data []byte) (*Contract, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	c := &Contract{doc: doc, router: router, public: map[string]bool{}, json: string(raw)}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			if op.Security != nil && len(*op.Security) == 0 {
				c.public[routeKey(method, echoPath(path))] = true
			}
		}
	}
	return c, nil
}

// ReadDoc implements swag.Swagger.
func (c *Contract) ReadDoc() string {
	return c.json
}

// IsPublic reports whether the operation behind an echo route opts out of
// bearer authentication.
func (c *Contract) IsPublic(ctx echo.Context) bool {
	return c.public[routeKey(ctx.Request().Method, ctx.Path())]
}

// ValidateRequests checks parameters and bodies against the document before
// the handler runs. Requests for paths the document does not describe pass
// through untouched.
func (c *Contract) ValidateRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, params, err := c.router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(ctx)
				}
				return err
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: params,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			})
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
			}
			return next(ctx)
		}
	}
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// echoPath turns /a/{id}/b into /a/:id/b.
func echoPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}
