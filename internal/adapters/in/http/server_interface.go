package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers of api/openapi.yaml: the
// shared operations plus one capability set per role.
type ServerInterface interface {
	// (POST /api/v1/signup)
	SignUp(ctx echo.Context) error
	// (GET /api/v1/me)
	GetMe(ctx echo.Context) error
	// (GET /api/v1/vendors)
	ListVendors(ctx echo.Context) error
	// (GET /api/v1/vendors/{vendorId}/products)
	ListVendorProducts(ctx echo.Context, vendorId string) error
	// (GET /api/v1/delivery-zones)
	ListDeliveryZones(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	CustomerOps
	RunnerOps
	VendorOps
	AdminOps
}

// CustomerOps are the operations mounted under /api/v1/customer.
type CustomerOps interface {
	// (GET /api/v1/customer/orders)
	ListMyOrders(ctx echo.Context) error
	// (POST /api/v1/customer/orders)
	PlaceOrder(ctx echo.Context) error
	// (POST /api/v1/customer/orders/{orderId}/cancel)
	CancelMyOrder(ctx echo.Context, orderId openapi_types.UUID) error
}

// RunnerOps are the operations mounted under /api/v1/runner.
type RunnerOps interface {
	// (GET /api/v1/runner/orders/available)
	ListAvailableOrders(ctx echo.Context) error
	// (GET /api/v1/runner/orders/active)
	GetActiveDelivery(ctx echo.Context) error
	// (POST /api/v1/runner/orders/{orderId}/accept)
	AcceptForDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/runner/orders/{orderId}/arriving)
	MarkArriving(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/runner/orders/{orderId}/delivered)
	MarkDelivered(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/runner/earnings/today)
	GetTodayEarnings(ctx echo.Context) error
}

// VendorOps are the operations mounted under /api/v1/vendor.
type VendorOps interface {
	// (GET /api/v1/vendor/orders)
	ListVendorQueue(ctx echo.Context) error
	// (POST /api/v1/vendor/orders/{orderId}/accept)
	AcceptByVendor(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/vendor/orders/{orderId}/preparing)
	StartPreparing(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/vendor/orders/{orderId}/ready)
	MarkReady(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/vendor/summary/today)
	GetVendorSummary(ctx echo.Context) error
	// (PUT /api/v1/vendor/products/{productId}/availability)
	SetProductAvailability(ctx echo.Context, productId string) error
}

// AdminOps are the operations mounted under /api/v1/admin.
type AdminOps interface {
	// (GET /api/v1/admin/orders)
	ListAllOrders(ctx echo.Context, params ListAllOrdersParams) error
	// (POST /api/v1/admin/orders/{orderId}/cancel)
	ForceCancel(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/admin/runners)
	ListRunners(ctx echo.Context) error
	// (POST /api/v1/admin/runners/{runnerId}/approve)
	ApproveRunner(ctx echo.Context, runnerId string) error
	// (PUT /api/v1/admin/delivery-zones/{zoneId})
	UpdateDeliveryZone(ctx echo.Context, zoneId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathString(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// orderOp adapts an operation taking the orderId path parameter.
func (w *ServerInterfaceWrapper) orderOp(op func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var orderId openapi_types.UUID
		if err := bindPathString(ctx, "orderId", &orderId); err != nil {
			return err
		}
		return op(ctx, orderId)
	}
}

// stringOp adapts an operation taking one string path parameter.
func (w *ServerInterfaceWrapper) stringOp(name string, op func(echo.Context, string) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var value string
		if err := bindPathString(ctx, name, &value); err != nil {
			return err
		}
		return op(ctx, value)
	}
}

// ListAllOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllOrders(ctx echo.Context) error {
	var params ListAllOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListAllOrders(ctx, params)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers and prepends baseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/signup", si.SignUp)
	router.GET(baseURL+"/api/v1/me", si.GetMe)
	router.GET(baseURL+"/api/v1/vendors", si.ListVendors)
	router.GET(baseURL+"/api/v1/vendors/:vendorId/products", w.stringOp("vendorId", si.ListVendorProducts))
	router.GET(baseURL+"/api/v1/delivery-zones", si.ListDeliveryZones)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.orderOp(si.GetOrder))

	registerCustomerOps(router, &w, si, baseURL+"/api/v1/customer")
	registerRunnerOps(router, &w, si, baseURL+"/api/v1/runner")
	registerVendorOps(router, &w, si, baseURL+"/api/v1/vendor")
	registerAdminOps(router, &w, baseURL+"/api/v1/admin")
}

func registerCustomerOps(router EchoRouter, w *ServerInterfaceWrapper, ops CustomerOps, prefix string) {
	router.GET(prefix+"/orders", ops.ListMyOrders)
	router.POST(prefix+"/orders", ops.PlaceOrder)
	router.POST(prefix+"/orders/:orderId/cancel", w.orderOp(ops.CancelMyOrder))
}

func registerRunnerOps(router EchoRouter, w *ServerInterfaceWrapper, ops RunnerOps, prefix string) {
	router.GET(prefix+"/orders/available", ops.ListAvailableOrders)
	router.GET(prefix+"/orders/active", ops.GetActiveDelivery)
	router.POST(prefix+"/orders/:orderId/accept", w.orderOp(ops.AcceptForDelivery))
	router.POST(prefix+"/orders/:orderId/arriving", w.orderOp(ops.MarkArriving))
	router.POST(prefix+"/orders/:orderId/delivered", w.orderOp(ops.MarkDelivered))
	router.GET(prefix+"/earnings/today", ops.GetTodayEarnings)
}

func registerVendorOps(router EchoRouter, w *ServerInterfaceWrapper, ops VendorOps, prefix string) {
	router.GET(prefix+"/orders", ops.ListVendorQueue)
	router.POST(prefix+"/orders/:orderId/accept", w.orderOp(ops.AcceptByVendor))
	router.POST(prefix+"/orders/:orderId/preparing", w.orderOp(ops.StartPreparing))
	router.POST(prefix+"/orders/:orderId/ready", w.orderOp(ops.MarkReady))
	router.GET(prefix+"/summary/today", ops.GetVendorSummary)
	router.PUT(prefix+"/products/:productId/availability", w.stringOp("productId", ops.SetProductAvailability))
}

// registerAdminOps goes through the wrapper for every route since ListAllOrders
// needs query binding.
func registerAdminOps(router EchoRouter, w *ServerInterfaceWrapper, prefix string) {
	ops := AdminOps(w.Handler)
	router.GET(prefix+"/orders", w.ListAllOrders)
	router.POST(prefix+"/orders/:orderId/cancel", w.orderOp(ops.ForceCancel))
	router.GET(prefix+"/runners", ops.ListRunners)
	router.POST(prefix+"/runners/:runnerId/approve", w.stringOp("runnerId", ops.ApproveRunner))
	router.PUT(prefix+"/delivery-zones/:zoneId", w.stringOp("zoneId", ops.UpdateDeliveryZone))
}
