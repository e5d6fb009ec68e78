package http

import (
	"net/http"

	"orders/internal/adapters/in/http/metrics"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for the user resource, including the
// user-scoped order listings and statistics.
type UserHandler struct {
	createUser commands.CreateUserCommandHandler
	updateUser commands.UpdateUserCommandHandler
	deleteUser commands.DeleteUserCommandHandler

	getUser        queries.GetUserByIDQueryHandler
	listUsers      queries.ListUsersQueryHandler
	userExists     queries.UserExistsQueryHandler
	listUserOrders queries.ListOrdersByUserQueryHandler
	userStatistics queries.GetUserStatisticsQueryHandler
}

// NewUserHandler wires the user endpoints to their command and query
// handlers.
func NewUserHandler(
	createUser commands.CreateUserCommandHandler,
	updateUser commands.UpdateUserCommandHandler,
	deleteUser commands.DeleteUserCommandHandler,
	getUser queries.GetUserByIDQueryHandler,
	listUsers queries.ListUsersQueryHandler,
	userExists queries.UserExistsQueryHandler,
	listUserOrders queries.ListOrdersByUserQueryHandler,
	userStatistics queries.GetUserStatisticsQueryHandler,
) *UserHandler {
	return &UserHandler{
		createUser:     createUser,
		updateUser:     updateUser,
		deleteUser:     deleteUser,
		getUser:        getUser,
		listUsers:      listUsers,
		userExists:     userExists,
		listUserOrders: listUserOrders,
		userStatistics: userStatistics,
	}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreateUserCommand(req.Email, req.Password, req.FullName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	created, err := h.createUser.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()

	resp, err := h.fetchUser(c, created.ID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/users with optional is_active and email_contains
// filters.
func (h *UserHandler) List(c echo.Context) error {
	var isActive *bool
	if raw := c.QueryParam("is_active"); raw != "" {
		v := raw == "true"
		isActive = &v
	}
	var emailContains *string
	if raw := c.QueryParam("email_contains"); raw != "" {
		emailContains = &raw
	}

	query := queries.NewListUsersQuery(isActive, emailContains)
	users, err := h.listUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Exists handles GET /api/v1/users/exists?email=.
func (h *UserHandler) Exists(c echo.Context) error {
	query, err := queries.NewUserExistsQuery(c.QueryParam("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exists, err := h.userExists.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userExistsResponse{Exists: exists})
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := parseID(c)
	if err != nil {
		return err
	}

	resp, err := h.fetchUser(c, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err = c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.Email, req.FullName, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err = h.updateUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	resp, err := h.fetchUser(c, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := parseID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err = h.deleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Orders handles GET /api/v1/users/:id/orders with an optional status
// filter.
func (h *UserHandler) Orders(c echo.Context) error {
	userID, err := parseID(c)
	if err != nil {
		return err
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersByUserQuery(userID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.listUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, resp)
}

// Statistics handles GET /api/v1/users/:id/statistics.
func (h *UserHandler) Statistics(c echo.Context) error {
	userID, err := parseID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserStatisticsQuery(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stats, err := h.userStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserStatisticsResponse(stats))
}

func (h *UserHandler) fetchUser(c echo.Context, userID kernel.UUID) (userResponse, error) {
	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return userResponse{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.getUser.Handle(c.Request().Context(), query)
	if err != nil {
		return userResponse{}, err
	}
	if u == nil {
		return userResponse{}, echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return toUserResponse(*u), nil
}

// parseID parses the :id path parameter into a UUID.
func parseID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
