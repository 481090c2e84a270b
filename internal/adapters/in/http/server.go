package http

import (
	"log/slog"
	"net/http"

	"studel/internal/core/application/usecases/commands"
	"studel/internal/core/application/usecases/queries"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP server delegates to.
type Handlers struct {
	// Command handlers
	PlaceOrder         commands.PlaceOrderCommandHandler
	TransitionOrder    commands.TransitionOrderCommandHandler
	SignUp             commands.SignUpCommandHandler
	ApproveRunner      commands.ApproveRunnerCommandHandler
	UpdateAvailability commands.UpdateProductAvailabilityCommandHandler
	UpdateDeliveryZone commands.UpdateDeliveryZoneCommandHandler

	// Query handlers
	Catalog         queries.CatalogQueryHandler
	Profile         queries.GetProfileQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	CustomerOrders  queries.GetCustomerOrdersQueryHandler
	AvailableOrders queries.GetAvailableOrdersQueryHandler
	ActiveDelivery  queries.GetActiveDeliveryQueryHandler
	RunnerEarnings  queries.GetRunnerEarningsQueryHandler
	VendorQueue     queries.GetVendorQueueQueryHandler
	VendorSummary   queries.GetVendorSummaryQueryHandler
	AllOrders       queries.GetAllOrdersQueryHandler
	Runners         queries.GetRunnersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http_server")}
}

// SignUp handles POST /api/v1/signup - registers an account.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	role, err := user.ParseRole(string(req.Role))
	if err != nil {
		return s.problem(ctx, err)
	}
	cmd, err := commands.NewSignUpCommand(
		kernel.NewUUID().String(), req.Name, req.Email, req.Phone, role, deref(req.CampusId), deref(req.VendorId),
	)
	if err != nil {
		return s.problem(ctx, err)
	}

	u, err := s.h.SignUp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toUser(u))
}

// GetMe handles GET /api/v1/me.
func (s *Server) GetMe(ctx echo.Context) error {
	u, err := s.h.Profile.Handle(ctx.Request().Context(), currentActor(ctx))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

// ListVendors handles GET /api/v1/vendors.
func (s *Server) ListVendors(ctx echo.Context) error {
	vendors, err := s.h.Catalog.Vendors(ctx.Request().Context())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]Vendor, len(vendors))
	for i, v := range vendors {
		response[i] = Vendor{Id: v.ID, Name: v.Name, OperatingHours: v.OperatingHours, Image: v.Image}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListVendorProducts handles GET /api/v1/vendors/{vendorId}/products.
func (s *Server) ListVendorProducts(ctx echo.Context, vendorId string) error {
	products, err := s.h.Catalog.Products(ctx.Request().Context(), vendorId)
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListDeliveryZones handles GET /api/v1/delivery-zones.
func (s *Server) ListDeliveryZones(ctx echo.Context) error {
	zones, err := s.h.Catalog.DeliveryZones(ctx.Request().Context())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]DeliveryZone, len(zones))
	for i, z := range zones {
		response[i] = toZone(z)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - order tracking for anyone allowed to see it.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.problem(ctx, err)
	}
	q, err := queries.NewGetOrderQuery(currentActor(ctx), id)
	if err != nil {
		return s.problem(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ListMyOrders handles GET /api/v1/customer/orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	orders, err := s.h.CustomerOrders.Handle(ctx.Request().Context(),
		queries.NewGetCustomerOrdersQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// PlaceOrder handles POST /api/v1/customer/orders - checkout of the customer's cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	orderID := kernel.NewUUID()
	if req.OrderId != nil {
		var err error
		if orderID, err = kernel.UUIDFromBytes(req.OrderId[:]); err != nil {
			return s.problem(ctx, err)
		}
	}
	lines := make([]commands.PlaceOrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = commands.PlaceOrderLine{ProductID: item.ProductId, Quantity: item.Quantity}
	}

	customer := currentActor(ctx)
	cmd, err := commands.NewPlaceOrderCommand(orderID, customer, req.DeliveryZoneId, lines)
	if err != nil {
		return s.problem(ctx, err)
	}

	o, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	s.logger.InfoContext(ctx.Request().Context(), "order placed",
		"order_id", o.ID().String(), "vendor_id", o.VendorID(), "actor_id", customer.ID,
		"final_amount", o.FinalAmount().String())
	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// CancelMyOrder handles POST /api/v1/customer/orders/{orderId}/cancel.
func (s *Server) CancelMyOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.CancelByCustomer)
}

// ListAvailableOrders handles GET /api/v1/runner/orders/available.
func (s *Server) ListAvailableOrders(ctx echo.Context) error {
	orders, err := s.h.AvailableOrders.Handle(ctx.Request().Context(),
		queries.NewGetAvailableOrdersQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetActiveDelivery handles GET /api/v1/runner/orders/active.
func (s *Server) GetActiveDelivery(ctx echo.Context) error {
	o, err := s.h.ActiveDelivery.Handle(ctx.Request().Context(),
		queries.NewGetActiveDeliveryQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AcceptForDelivery handles POST /api/v1/runner/orders/{orderId}/accept. Of two
// runners racing for the same order exactly one gets 200, the other 409.
func (s *Server) AcceptForDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.AcceptForDelivery)
}

// MarkArriving handles POST /api/v1/runner/orders/{orderId}/arriving.
func (s *Server) MarkArriving(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.MarkArriving)
}

// MarkDelivered handles POST /api/v1/runner/orders/{orderId}/delivered.
func (s *Server) MarkDelivered(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.MarkDelivered)
}

// GetTodayEarnings handles GET /api/v1/runner/earnings/today.
func (s *Server) GetTodayEarnings(ctx echo.Context) error {
	resp, err := s.h.RunnerEarnings.Handle(ctx.Request().Context(),
		queries.NewGetRunnerEarningsQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Earnings{
		Deliveries: resp.Deliveries,
		Earnings:   resp.Earnings.Decimal(),
		Orders:     toOrders(resp.Orders),
	})
}

// ListVendorQueue handles GET /api/v1/vendor/orders.
func (s *Server) ListVendorQueue(ctx echo.Context) error {
	orders, err := s.h.VendorQueue.Handle(ctx.Request().Context(),
		queries.NewGetVendorQueueQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// AcceptByVendor handles POST /api/v1/vendor/orders/{orderId}/accept.
func (s *Server) AcceptByVendor(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.AcceptByVendor)
}

// StartPreparing handles POST /api/v1/vendor/orders/{orderId}/preparing.
func (s *Server) StartPreparing(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.StartPreparing)
}

// MarkReady handles POST /api/v1/vendor/orders/{orderId}/ready.
func (s *Server) MarkReady(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.MarkReady)
}

// GetVendorSummary handles GET /api/v1/vendor/summary/today.
func (s *Server) GetVendorSummary(ctx echo.Context) error {
	resp, err := s.h.VendorSummary.Handle(ctx.Request().Context(),
		queries.NewGetVendorSummaryQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}

	byStatus := make(map[string]int, len(resp.ByStatus))
	for st, n := range resp.ByStatus {
		byStatus[st.String()] = n
	}
	return ctx.JSON(http.StatusOK, VendorSummary{
		VendorId:   resp.VendorID,
		OrderCount: resp.Orders,
		Revenue:    resp.Revenue.Decimal(),
		ByStatus:   byStatus,
	})
}

// SetProductAvailability handles PUT /api/v1/vendor/products/{productId}/availability.
func (s *Server) SetProductAvailability(ctx echo.Context, productId string) error {
	var req AvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateProductAvailabilityCommand(currentActor(ctx), productId, req.IsAvailable)
	if err != nil {
		return s.problem(ctx, err)
	}
	p, err := s.h.UpdateAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

// ListAllOrders handles GET /api/v1/admin/orders with an optional status filter.
func (s *Server) ListAllOrders(ctx echo.Context, params ListAllOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			st, err := order.ParseStatus(string(name))
			if err != nil {
				return s.problem(ctx, err)
			}
			statuses = append(statuses, st)
		}
	}

	q, err := queries.NewGetAllOrdersQuery(currentActor(ctx), statuses...)
	if err != nil {
		return s.problem(ctx, err)
	}
	orders, err := s.h.AllOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ForceCancel handles POST /api/v1/admin/orders/{orderId}/cancel.
func (s *Server) ForceCancel(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, order.ForceCancel)
}

// ListRunners handles GET /api/v1/admin/runners.
func (s *Server) ListRunners(ctx echo.Context) error {
	runners, err := s.h.Runners.Handle(ctx.Request().Context(), queries.NewGetRunnersQuery(currentActor(ctx)))
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]User, len(runners))
	for i, u := range runners {
		response[i] = toUser(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApproveRunner handles POST /api/v1/admin/runners/{runnerId}/approve.
func (s *Server) ApproveRunner(ctx echo.Context, runnerId string) error {
	admin := currentActor(ctx)
	cmd, err := commands.NewApproveRunnerCommand(admin, runnerId)
	if err != nil {
		return s.problem(ctx, err)
	}

	u, err := s.h.ApproveRunner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	s.logger.InfoContext(ctx.Request().Context(), "runner approved", "runner_id", u.ID(), "actor_id", admin.ID)
	return ctx.JSON(http.StatusOK, toUser(u))
}

// UpdateDeliveryZone handles PUT /api/v1/admin/delivery-zones/{zoneId}.
func (s *Server) UpdateDeliveryZone(ctx echo.Context, zoneId string) error {
	var req DeliveryZoneUpdate
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	fee, err := kernel.MoneyFromDecimal(req.DeliveryFee)
	if err != nil {
		return s.problem(ctx, err)
	}
	cmd, err := commands.NewUpdateDeliveryZoneCommand(currentActor(ctx), zoneId, req.Name, fee)
	if err != nil {
		return s.problem(ctx, err)
	}

	zone, err := s.h.UpdateDeliveryZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toZone(zone))
}

// transition runs one state machine action on behalf of the current actor.
func (s *Server) transition(ctx echo.Context, orderId openapi_types.UUID, action order.Action) error {
	reqCtx := ctx.Request().Context()
	actor := currentActor(ctx)

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.problem(ctx, err)
	}
	cmd, err := commands.NewTransitionOrderCommand(id, action, actor)
	if err != nil {
		return s.problem(ctx, err)
	}

	o, err := s.h.TransitionOrder.Handle(reqCtx, cmd)
	if err != nil {
		s.logger.DebugContext(reqCtx, "transition rejected",
			"order_id", id.String(), "action", action.String(), "actor_id", actor.ID, "error", err)
		return s.problem(ctx, err)
	}

	history := o.History()
	from := order.Unknown
	if len(history) > 1 {
		from = history[len(history)-2].Status
	}
	s.logger.InfoContext(reqCtx, "order status changed",
		"order_id", o.ID().String(), "from", from.String(), "to", o.Status().String(), "actor_id", actor.ID)
	return ctx.JSON(http.StatusOK, toOrder(o))
}
