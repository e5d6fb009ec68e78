package http

import (
	"net/http"

	"orders/internal/adapters/in/http/metrics"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// OrderHandler handles HTTP requests for the order resource.
type OrderHandler struct {
	createOrder   commands.CreateOrderCommandHandler
	updateOrder   commands.UpdateOrderCommandHandler
	cancelOrder   commands.CancelOrderCommandHandler
	completeOrder commands.CompleteOrderCommandHandler
	deleteOrder   commands.DeleteOrderCommandHandler

	getOrder   queries.GetOrderByIDQueryHandler
	listOrders queries.ListOrdersQueryHandler
}

// NewOrderHandler wires the order endpoints to their command and query
// handlers.
func NewOrderHandler(
	createOrder commands.CreateOrderCommandHandler,
	updateOrder commands.UpdateOrderCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	completeOrder commands.CompleteOrderCommandHandler,
	deleteOrder commands.DeleteOrderCommandHandler,
	getOrder queries.GetOrderByIDQueryHandler,
	listOrders queries.ListOrdersQueryHandler,
) *OrderHandler {
	return &OrderHandler{
		createOrder:   createOrder,
		updateOrder:   updateOrder,
		cancelOrder:   cancelOrder,
		completeOrder: completeOrder,
		deleteOrder:   deleteOrder,
		getOrder:      getOrder,
		listOrders:    listOrders,
	}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	unitPrice, err := parseMoney(req.UnitPrice)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, req.ProductName, req.Quantity, unitPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	created, err := h.createOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()

	resp, err := h.fetchOrder(c, created.ID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/orders with optional status and user_id filters.
func (h *OrderHandler) List(c echo.Context) error {
	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}
		status = &parsed
	}

	var userID *kernel.UUID
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		userID = &parsed
	}

	query, err := queries.NewListOrdersQuery(status, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.listOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	resp, err := h.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/orders/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err = c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var unitPrice *decimal.Decimal
	if req.UnitPrice != nil {
		parsed, parseErr := parseMoney(*req.UnitPrice)
		if parseErr != nil {
			return parseErr
		}
		unitPrice = &parsed
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.StatusFromString(*req.Status)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.ProductName, req.Quantity, unitPrice, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.updateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if updated.Status() == order.Completed {
		metrics.OrdersCompletedTotal.Inc()
	}

	resp, err := h.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/v1/orders/:id/complete.
func (h *OrderHandler) Complete(c echo.Context) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err = h.completeOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	metrics.OrdersCompletedTotal.Inc()

	resp, err := h.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Cancel handles POST /api/v1/orders/:id/cancel.
func (h *OrderHandler) Cancel(c echo.Context) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err = h.cancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	metrics.OrdersCancelledTotal.Inc()

	resp, err := h.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err = h.deleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) fetchOrder(c echo.Context, orderID kernel.UUID) (orderResponse, error) {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return orderResponse{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	o, err := h.getOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return orderResponse{}, err
	}
	if o == nil {
		return orderResponse{}, echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	return toOrderResponse(*o), nil
}

// parseMoney parses a wire money string into an exact decimal. Values with
// more than two fractional digits are rejected rather than rounded.
func parseMoney(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, echo.NewHTTPError(http.StatusBadRequest, "invalid unit_price")
	}
	if d.Exponent() < -2 {
		return decimal.Zero, echo.NewHTTPError(
			http.StatusBadRequest, "unit_price cannot have more than two decimal places")
	}
	return d, nil
}
