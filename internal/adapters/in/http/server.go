// Package http is the inbound HTTP adapter. It exposes the water
// delivery workflows over a REST surface built on Echo, resolves the
// session cookie into an authenticated principal, and translates
// application errors into the shared error body.
package http

import (
	"net/http"

	"waterflow/internal/core/application/usecases/commands"
	"waterflow/internal/core/application/usecases/queries"
	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/authctx"
	"waterflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterCustomer commands.RegisterCustomerCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	AssignOrder      commands.AssignOrderCommandHandler
	CreateCustomer   commands.CreateCustomerCommandHandler
	CreateAgent      commands.CreateAgentCommandHandler
	CreateFeedback   commands.CreateFeedbackCommandHandler
	UpdateStock      commands.UpdateStockCommandHandler

	Authenticate   queries.AuthenticateQueryHandler
	UserProfile    queries.GetUserProfileQueryHandler
	Orders         queries.GetOrdersQueryHandler
	DashboardStats queries.GetDashboardStatsQueryHandler
	Customers      queries.GetCustomersQueryHandler
	Agents         queries.GetAgentsQueryHandler
	Inventory      queries.GetInventoryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *SessionManager
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(sessions *SessionManager, handlers Handlers) *Server {
	return &Server{sessions: sessions, handlers: handlers}
}

// RegisterRoutes mounts all endpoints on the Echo instance. Every /api
// route passes through the session middleware; authorization is
// enforced per handler.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api", s.sessions.Middleware())

	api.POST("/customers/register", s.RegisterCustomer)
	api.POST("/login", s.Login)
	api.GET("/logout", s.Logout)
	api.GET("/auth/user", s.AuthUser)

	api.GET("/dashboard/stats", s.DashboardStats)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/today", s.GetTodayOrders)
	api.GET("/orders/customer/:id", s.GetCustomerOrders)
	api.GET("/orders/agent/:id", s.GetAgentOrders)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/assign/:agentId", s.AssignOrder)

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)

	api.GET("/delivery-agents", s.GetAgents)
	api.POST("/delivery-agents", s.CreateAgent)

	api.POST("/feedback", s.CreateFeedback)

	api.GET("/inventory", s.GetInventory)
	api.PATCH("/inventory/:id", s.UpdateStock)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// RegisterCustomer handles POST /api/customers/register - customer signup.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name, req.Email, req.Phone, req.Address, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.RegisterCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, customerResponseFromDomain(created))
}

// Login handles POST /api/login - verifies credentials and sets the
// session cookie.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	profile, err := s.handlers.Authenticate.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	cookie, err := s.sessions.Issue(authctx.Principal{
		UserID:     profile.UserID,
		Role:       profile.Role,
		CustomerID: profile.CustomerID,
		AgentID:    profile.AgentID,
	})
	if err != nil {
		return writeError(c, err)
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, authUserResponse(profile))
}

// Logout handles GET /api/logout - expires the session cookie.
func (s *Server) Logout(c echo.Context) error {
	c.SetCookie(s.sessions.Clear())
	return c.NoContent(http.StatusNoContent)
}

// AuthUser handles GET /api/auth/user - returns the account behind the
// current session.
func (s *Server) AuthUser(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetUserProfileQuery(principal.UserID)
	if err != nil {
		return writeError(c, err)
	}

	profile, err := s.handlers.UserProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authUserResponse(profile))
}

// DashboardStats handles GET /api/dashboard/stats - admin only.
func (s *Server) DashboardStats(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	stats, err := s.handlers.DashboardStats.Handle(c.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DashboardStatsResponse{
		TodayOrders:          stats.TodayOrders,
		ActiveCustomers:      stats.ActiveCustomers,
		TotalLitresDelivered: stats.TotalLitresDelivered,
		DeliverySuccessRate:  stats.DeliverySuccessRate,
	})
}

// GetOrders handles GET /api/orders. Admins see every order; customers
// and agents see only the orders linked to their own profile.
func (s *Server) GetOrders(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	var query queries.GetOrdersQuery
	switch {
	case principal.IsAdmin():
		query = queries.NewGetOrdersQuery()
	case principal.CustomerID != nil:
		if query, err = queries.NewGetOrdersQueryForCustomer(*principal.CustomerID); err != nil {
			return writeError(c, err)
		}
	case principal.AgentID != nil:
		if query, err = queries.NewGetOrdersQueryForAgent(*principal.AgentID); err != nil {
			return writeError(c, err)
		}
	default:
		return writeError(c, errs.NewUnauthorizedError("account has no linked profile"))
	}

	return s.respondOrders(c, query)
}

// CreateOrder handles POST /api/orders. Customers can only place orders
// against their own profile; admins may place orders for anyone,
// including walk-in customers without a profile.
func (s *Server) CreateOrder(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	var customerID *kernel.UUID
	switch {
	case !principal.IsAdmin():
		if principal.CustomerID == nil {
			return writeError(c, errs.NewUnauthorizedError("account has no customer profile"))
		}
		customerID = principal.CustomerID
	case req.CustomerID != nil:
		id, err := kernel.UUIDFromString(*req.CustomerID)
		if err != nil {
			return writeError(c, err)
		}
		customerID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, req.CustomerName, req.CustomerPhone, req.DeliveryAddress, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	if req.PreferredDeliveryTime != nil {
		cmd = cmd.WithPreferredDeliveryTime(*req.PreferredDeliveryTime)
	}
	if req.Notes != nil {
		cmd = cmd.WithNotes(*req.Notes)
	}
	cmd = cmd.WithTotalAmount(req.TotalAmount)

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetTodayOrders handles GET /api/orders/today - admin only.
func (s *Server) GetTodayOrders(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}
	return s.respondOrders(c, queries.NewGetTodayOrdersQuery())
}

// GetCustomerOrders handles GET /api/orders/customer/:id. Customers may
// only read their own order history.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	customerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	if !principal.IsAdmin() &&
		(principal.CustomerID == nil || !principal.CustomerID.IsEqual(customerID)) {
		return writeError(c, errs.NewUnauthorizedError("cannot read another customer's orders"))
	}

	query, err := queries.NewGetOrdersQueryForCustomer(customerID)
	if err != nil {
		return writeError(c, err)
	}
	return s.respondOrders(c, query)
}

// GetAgentOrders handles GET /api/orders/agent/:id. Agents may only
// read their own assignments.
func (s *Server) GetAgentOrders(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	agentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	if !principal.IsAdmin() &&
		(principal.AgentID == nil || !principal.AgentID.IsEqual(agentID)) {
		return writeError(c, errs.NewUnauthorizedError("cannot read another agent's orders"))
	}

	query, err := queries.NewGetOrdersQueryForAgent(agentID)
	if err != nil {
		return writeError(c, err)
	}
	return s.respondOrders(c, query)
}

// UpdateOrder handles PATCH /api/orders/:id - admins and delivery
// agents adjust order status, notes, billing, and delivery timestamps.
func (s *Server) UpdateOrder(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if !principal.IsAdmin() && principal.Role != account.RoleDeliveryAgent {
		return writeError(c, errs.NewUnauthorizedError("orders can only be updated by staff"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}
	if req.Status != nil {
		status, err := order.StatusFromString(*req.Status)
		if err != nil {
			return writeError(c, err)
		}
		cmd = cmd.WithStatus(status)
	}
	if req.Notes != nil {
		cmd = cmd.WithNotes(*req.Notes)
	}
	if req.PreferredDeliveryTime != nil {
		cmd = cmd.WithPreferredDeliveryTime(*req.PreferredDeliveryTime)
	}
	if req.TotalAmount != nil {
		cmd = cmd.WithTotalAmount(*req.TotalAmount)
	}
	if req.DeliveredAt != nil {
		cmd = cmd.WithDeliveredAt(*req.DeliveredAt)
	}
	if req.PickupTime != nil {
		cmd = cmd.WithPickupTime(*req.PickupTime)
	}
	if req.DeliveryTime != nil {
		cmd = cmd.WithDeliveryTime(*req.DeliveryTime)
	}

	updated, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// AssignOrder handles PATCH /api/orders/:id/assign/:agentId - admin only.
func (s *Server) AssignOrder(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	agentID, err := kernel.UUIDFromString(c.Param("agentId"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, agentID)
	if err != nil {
		return writeError(c, err)
	}

	assigned, err := s.handlers.AssignOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromDomain(assigned))
}

// GetCustomers handles GET /api/customers - admin only.
func (s *Server) GetCustomers(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.Customers.Handle(c.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]CustomerResponse, len(rows))
	for i, row := range rows {
		response[i] = customerResponseFromQuery(row)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/customers - admin only.
func (s *Server) CreateCustomer(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	userID, err := parseOptionalID(req.UserID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(userID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, customerResponseFromDomain(created))
}

// GetAgents handles GET /api/delivery-agents - admin only.
func (s *Server) GetAgents(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.Agents.Handle(c.Request().Context(), queries.NewGetAgentsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]AgentResponse, len(rows))
	for i, row := range rows {
		response[i] = agentResponseFromQuery(row)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/delivery-agents - admin only.
func (s *Server) CreateAgent(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	var req CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	userID, err := parseOptionalID(req.UserID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateAgentCommand(userID, req.Name, req.Phone, req.VehicleInfo)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.CreateAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, agentResponseFromDomain(created))
}

// CreateFeedback handles POST /api/feedback - the customer behind the
// session rates one of their delivered orders.
func (s *Server) CreateFeedback(c echo.Context) error {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if principal.CustomerID == nil {
		return writeError(c, errs.NewUnauthorizedError("account has no customer profile"))
	}

	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateFeedbackCommand(orderID, *principal.CustomerID, req.Rating, req.Comment)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.CreateFeedback.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, feedbackResponseFromDomain(created))
}

// GetInventory handles GET /api/inventory - admin only.
func (s *Server) GetInventory(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.Inventory.Handle(c.Request().Context(), queries.NewGetInventoryQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]InventoryItemResponse, len(rows))
	for i, row := range rows {
		response[i] = inventoryItemResponseFromQuery(row)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateStock handles PATCH /api/inventory/:id - admin only.
func (s *Server) UpdateStock(c echo.Context) error {
	if _, err := s.requireAdmin(c); err != nil {
		return writeError(c, err)
	}

	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateStockCommand(itemID, req.CurrentStock)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.UpdateStock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, inventoryItemResponseFromDomain(updated))
}

func (s *Server) requireAdmin(c echo.Context) (authctx.Principal, error) {
	principal, err := authctx.RequireSession(c.Request().Context())
	if err != nil {
		return authctx.Principal{}, err
	}
	if !principal.IsAdmin() {
		return authctx.Principal{}, errs.NewUnauthorizedError("admin access required")
	}
	return principal, nil
}

func (s *Server) respondOrders(c echo.Context, query queries.GetOrdersQuery) error {
	rows, err := s.handlers.Orders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = orderResponseFromQuery(row)
	}
	return c.JSON(http.StatusOK, response)
}
