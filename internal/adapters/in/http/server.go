// Package http provides the inbound HTTP adapter: request handlers, the
// authentication/authorization middleware, request validation, and the
// error-to-response mapping. Handlers are thin; every business decision
// lives in the application layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"blip/internal/core/application/usecases/commands"
	"blip/internal/core/application/usecases/queries"
	"blip/internal/core/domain/model/order"
	"blip/internal/core/domain/model/user"
	"blip/internal/core/ports"
	"blip/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers and wires them to routes.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	loginHandler        commands.LoginCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	// Token service used by the authentication middleware
	tokens ports.TokenService
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	tokens ports.TokenService,
) *Server {
	return &Server{
		loginHandler:        loginHandler,
		createOrderHandler:  createOrderHandler,
		changeStatusHandler: changeStatusHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		tokens:              tokens,
	}
}

// RegisterRoutes attaches all routes and their middleware to the echo instance.
// The order group runs Authenticate first; write operations additionally
// require the ADMIN role, while listing is open to any authenticated role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/auth/login", s.Login)

	orders := e.Group("/orders", Authenticate(s.tokens))
	orders.POST("", s.CreateOrder, Authorize(user.RoleAdmin))
	orders.GET("", s.GetOrders)
	orders.PATCH("/:id/status", s.UpdateOrderStatus, Authorize(user.RoleAdmin))
}

// loginRequest is the POST /auth/login payload. The fields carry no
// validation tags on purpose: empty credentials are an authentication
// failure, not a malformed request.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors the original API shape: the token plus a public
// user view. The password hash never appears here.
type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// createOrderRequest is the POST /orders payload. A status field in the
// body is ignored: new orders always start PENDING.
type createOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	ProductName  string `json:"product_name" validate:"required,max=255"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
}

// updateOrderStatusRequest is the PATCH /orders/:id/status payload.
type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID CANCELLED"`
}

// orderResponse is the JSON shape of an order in every response.
type orderResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// healthResponse is the GET /health payload.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health. Exempt from authentication and rate limiting.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// Login handles POST /auth/login. Authenticates the credential pair and
// returns the session token with the public user view, or 401.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidationErrorWithCause("invalid request body", err)
	}

	result, err := s.loginHandler.Handle(c.Request().Context(), commands.NewLoginCommand(req.Email, req.Password))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Role:  result.User.Role.String(),
		},
	})
}

// CreateOrder handles POST /orders. Requires the ADMIN role. The created
// order is returned with status 201 and always starts PENDING.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidationErrorWithCause("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.ProductName, req.Quantity)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrders handles GET /orders. Any authenticated role sees the full list,
// most recently created first; the caller's role is logged but never filters
// the result.
func (s *Server) GetOrders(c echo.Context) error {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return errs.NewAuthenticationError(tokenRequiredMessage)
	}

	c.Logger().Debugf("listing orders (userId=%d role=%s)", identity.UserID, identity.Role)

	rows, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery(identity.Role))
	if err != nil {
		return err
	}

	response := make([]orderResponse, len(rows))
	for i, row := range rows {
		response[i] = orderResponse{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			ProductName:  row.ProductName,
			Quantity:     row.Quantity,
			Status:       row.Status.String(),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /orders/:id/status. Requires the ADMIN
// role. Responds 404 for an unknown order and 422 for an illegal transition.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return errs.NewValidationError("order id must be a positive integer")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidationErrorWithCause("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return err
	}

	updated, err := s.changeStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// toOrderResponse maps an order aggregate to its JSON shape.
func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		ProductName:  o.ProductName(),
		Quantity:     o.Quantity(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
