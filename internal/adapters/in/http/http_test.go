package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studel/api"
	"studel/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoPath(t *testing.T) {
	tests := map[string]string{
		"/api/v1/vendors":                                  "/api/v1/vendors",
		"/api/v1/vendors/{vendorId}/products":              "/api/v1/vendors/:vendorId/products",
		"/api/v1/runner/orders/{orderId}/accept":           "/api/v1/runner/orders/:orderId/accept",
		"/api/v1/admin/delivery-zones/{zoneId}":            "/api/v1/admin/delivery-zones/:zoneId",
		"/api/v1/vendor/products/{productId}/availability": "/api/v1/vendor/products/:productId/availability",
	}
	for in, want := range tests {
		assert.Equal(t, want, echoPath(in), in)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"conflict", errs.NewStateConflictError("order", "x", "terminal"), http.StatusConflict},
		{"denied", errs.NewAuthorizationDeniedError("cust1", "accept", "wrong role"), http.StatusForbidden},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("role"), http.StatusBadRequest},
		{"wrapped conflict", fmt.Errorf("commit: %w", errs.NewStateConflictError("order", "x", "stale")), http.StatusConflict},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestBearer(t *testing.T) {
	token, err := bearer("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = bearer("bearer   abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Bearer  ", "Basic dXNlcjpwYXNz"} {
		_, err = bearer(header)
		assert.ErrorIs(t, err, errMissingBearer, header)
	}
}

func TestAuthenticator_Subject(t *testing.T) {
	auth := NewAuthenticator("secret", nil)

	t.Run("issued token", func(t *testing.T) {
		token, err := auth.Issue("run1")
		require.NoError(t, err)
		subject, err := auth.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "run1", subject)
	})

	t.Run("another secret", func(t *testing.T) {
		token, err := NewAuthenticator("other", nil).Issue("run1")
		require.NoError(t, err)
		_, err = auth.Subject(token)
		assert.Error(t, err)
	})

	t.Run("another algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "run1"}).
			SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = auth.Subject(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "run1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = auth.Subject(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("no subject", func(t *testing.T) {
		token, err := auth.Issue("")
		require.NoError(t, err)
		_, err = auth.Subject(token)
		assert.Error(t, err)
	})
}

func TestLoadContract(t *testing.T) {
	contract, err := LoadContract(context.Background(), api.OpenAPI)
	require.NoError(t, err)

	e := echo.New()
	public := func(method, path string) bool {
		ctx := e.NewContext(httptest.NewRequest(method, path, nil), httptest.NewRecorder())
		ctx.SetPath(path)
		return contract.IsPublic(ctx)
	}

	assert.True(t, public(http.MethodPost, "/api/v1/signup"))
	assert.True(t, public(http.MethodGet, "/api/v1/vendors"))
	assert.True(t, public(http.MethodGet, "/api/v1/vendors/:vendorId/products"))
	assert.True(t, public(http.MethodGet, "/api/v1/delivery-zones"))
	assert.False(t, public(http.MethodGet, "/api/v1/me"))
	assert.False(t, public(http.MethodPost, "/api/v1/customer/orders"))
	assert.False(t, public(http.MethodPost, "/api/v1/runner/orders/:orderId/accept"))

	assert.Contains(t, contract.ReadDoc(), "Studel Order Lifecycle API")
}

func TestLoadContract_RejectsBrokenDocument(t *testing.T) {
	_, err := LoadContract(context.Background(), []byte("openapi: 3.0.3\npaths: {}\n"))
	assert.Error(t, err)
}

func TestErrorHandler(t *testing.T) {
	handler := ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	t.Run("http error keeps its code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
		handler(echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter orderId"), ctx)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"code":400,"message":"Invalid format for parameter orderId"}`, rec.Body.String())
	})

	t.Run("other errors are not leaked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
		handler(errors.New("pq: password authentication failed"), ctx)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":500,"message":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("route not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
		handler(echo.ErrNotFound, ctx)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) add(method, path string) *echo.Route {
	r.routes = append(r.routes, method+" "+path)
	return &echo.Route{Method: method, Path: path}
}

func (r *routeRecorder) GET(path string, _ echo.HandlerFunc, _ ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodGet, path)
}

func (r *routeRecorder) POST(path string, _ echo.HandlerFunc, _ ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPost, path)
}

func (r *routeRecorder) PUT(path string, _ echo.HandlerFunc, _ ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPut, path)
}

func TestRegisterHandlers_MatchesContract(t *testing.T) {
	contract, err := LoadContract(context.Background(), api.OpenAPI)
	require.NoError(t, err)

	var documented []string
	for path, item := range contract.doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, routeKey(method, echoPath(path)))
		}
	}

	rec := &routeRecorder{}
	RegisterHandlers(rec, &Server{})

	assert.ElementsMatch(t, documented, rec.routes)
}
