package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles credential verification. There is no session or token
// issuance here; the endpoint answers whether the credential pair matches an
// active account.
type AuthHandler struct {
	authenticate commands.AuthenticateUserCommandHandler
	getUser      queries.GetUserByIDQueryHandler
}

// NewAuthHandler wires the login endpoint to the authenticate handler.
func NewAuthHandler(
	authenticate commands.AuthenticateUserCommandHandler,
	getUser queries.GetUserByIDQueryHandler,
) *AuthHandler {
	return &AuthHandler{
		authenticate: authenticate,
		getUser:      getUser,
	}
}

// Login handles POST /api/v1/auth/login. Unknown email, wrong password, and
// inactive accounts all yield the same 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	matched, err := h.authenticate.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if matched == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	query, err := queries.NewGetUserByIDQuery(matched.ID())
	if err != nil {
		return err
	}
	u, err := h.getUser.Handle(ctx, query)
	if err != nil {
		return err
	}
	if u == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return c.JSON(http.StatusOK, toUserResponse(*u))
}
