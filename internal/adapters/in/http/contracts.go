package http

import (
	"time"

	"waterflow/internal/core/application/usecases/queries"
	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/feedback"
	"waterflow/internal/core/domain/model/inventory"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
)

// ErrorResponse is the error body returned by every endpoint.
// Errors carries the individual validation messages when a request
// fails on more than one field.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// RegisterCustomerRequest is the self-service signup payload.
type RegisterCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUserResponse describes the authenticated account and its linked
// customer or agent profile.
type AuthUserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Role       string  `json:"role"`
	CustomerID *string `json:"customerId,omitempty"`
	AgentID    *string `json:"agentId,omitempty"`
}

// CreateOrderRequest is the payload for placing an order. CustomerID is
// optional: walk-in orders carry only the contact snapshot.
type CreateOrderRequest struct {
	CustomerID            *string  `json:"customerId"`
	CustomerName          string   `json:"customerName"`
	CustomerPhone         string   `json:"customerPhone"`
	DeliveryAddress       string   `json:"deliveryAddress"`
	Quantity              int      `json:"quantity"`
	PreferredDeliveryTime *string  `json:"preferredDeliveryTime"`
	Notes                 *string  `json:"notes"`
	TotalAmount           *float64 `json:"totalAmount"`
}

// UpdateOrderRequest is a partial order update. Absent fields are left
// untouched.
type UpdateOrderRequest struct {
	Status                *string    `json:"status"`
	Notes                 *string    `json:"notes"`
	PreferredDeliveryTime *string    `json:"preferredDeliveryTime"`
	TotalAmount           *float64   `json:"totalAmount"`
	DeliveredAt           *time.Time `json:"deliveredAt"`
	PickupTime            *time.Time `json:"pickupTime"`
	DeliveryTime          *time.Time `json:"deliveryTime"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID                    string     `json:"id"`
	OrderNumber           string     `json:"orderNumber"`
	CustomerID            *string    `json:"customerId"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	Quantity              int        `json:"quantity"`
	TotalLitres           int        `json:"totalLitres"`
	Status                string     `json:"status"`
	AgentID               *string    `json:"agentId"`
	PreferredDeliveryTime string     `json:"preferredDeliveryTime,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	TotalAmount           *float64   `json:"totalAmount"`
	DeliveredAt           *time.Time `json:"deliveredAt"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// CreateCustomerRequest is the payload for admin-created customer records.
type CreateCustomerRequest struct {
	UserID  *string `json:"userId"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

// CustomerResponse is the wire representation of a customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAgentRequest is the payload for registering a delivery agent.
type CreateAgentRequest struct {
	UserID      *string `json:"userId"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleInfo string  `json:"vehicleInfo"`
}

// AgentResponse is the wire representation of a delivery agent.
type AgentResponse struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"userId"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleInfo string    `json:"vehicleInfo,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateFeedbackRequest is the payload for rating a delivered order.
type CreateFeedbackRequest struct {
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackResponse is the wire representation of order feedback.
type FeedbackResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateStockRequest replaces an inventory item's stock level.
type UpdateStockRequest struct {
	CurrentStock int `json:"currentStock"`
}

// InventoryItemResponse is the wire representation of an inventory item.
type InventoryItemResponse struct {
	ID            string     `json:"id"`
	ItemName      string     `json:"itemName"`
	CurrentStock  int        `json:"currentStock"`
	MinThreshold  int        `json:"minThreshold"`
	UnitPrice     *float64   `json:"unitPrice"`
	IsLowStock    bool       `json:"isLowStock"`
	LastRestocked *time.Time `json:"lastRestocked"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// DashboardStatsResponse is the admin dashboard snapshot.
type DashboardStatsResponse struct {
	TodayOrders          int     `json:"todayOrders"`
	ActiveCustomers      int     `json:"activeCustomers"`
	TotalLitresDelivered int     `json:"totalLitresDelivered"`
	DeliverySuccessRate  float64 `json:"deliverySuccessRate"`
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                    o.ID().String(),
		OrderNumber:           o.Number().String(),
		CustomerID:            uuidPtrToString(o.CustomerID()),
		CustomerName:          o.CustomerName(),
		CustomerPhone:         o.CustomerPhone(),
		DeliveryAddress:       o.DeliveryAddress(),
		Quantity:              o.Quantity(),
		TotalLitres:           o.TotalLitres(),
		Status:                o.Status().String(),
		AgentID:               uuidPtrToString(o.Agent()),
		PreferredDeliveryTime: o.PreferredDeliveryTime(),
		Notes:                 o.Notes(),
		TotalAmount:           o.TotalAmount(),
		DeliveredAt:           o.DeliveredAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func orderResponseFromQuery(row queries.GetOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:                    row.ID.String(),
		OrderNumber:           row.OrderNumber,
		CustomerID:            uuidPtrToString(row.CustomerID),
		CustomerName:          row.CustomerName,
		CustomerPhone:         row.CustomerPhone,
		DeliveryAddress:       row.DeliveryAddress,
		Quantity:              row.Quantity,
		TotalLitres:           row.TotalLitres,
		Status:                row.Status.String(),
		AgentID:               uuidPtrToString(row.AgentID),
		PreferredDeliveryTime: row.PreferredDeliveryTime,
		Notes:                 row.Notes,
		TotalAmount:           row.TotalAmount,
		DeliveredAt:           row.DeliveredAt,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}

func customerResponseFromDomain(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID().String(),
		UserID:    uuidPtrToString(c.UserID()),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
	}
}

func customerResponseFromQuery(row queries.GetCustomersQueryResponse) CustomerResponse {
	return CustomerResponse{
		ID:        row.ID.String(),
		UserID:    uuidPtrToString(row.UserID),
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Address:   row.Address,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

func agentResponseFromDomain(a *agent.Agent) AgentResponse {
	return AgentResponse{
		ID:          a.ID().String(),
		UserID:      uuidPtrToString(a.UserID()),
		Name:        a.Name(),
		Phone:       a.Phone(),
		VehicleInfo: a.VehicleInfo(),
		IsActive:    a.IsActive(),
		CreatedAt:   a.CreatedAt(),
	}
}

func agentResponseFromQuery(row queries.GetAgentsQueryResponse) AgentResponse {
	return AgentResponse{
		ID:          row.ID.String(),
		UserID:      uuidPtrToString(row.UserID),
		Name:        row.Name,
		Phone:       row.Phone,
		VehicleInfo: row.VehicleInfo,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}

func feedbackResponseFromDomain(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         f.ID().String(),
		OrderID:    f.OrderID().String(),
		CustomerID: f.CustomerID().String(),
		Rating:     f.Rating(),
		Comment:    f.Comment(),
		CreatedAt:  f.CreatedAt(),
	}
}

func inventoryItemResponseFromDomain(i *inventory.Item) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            i.ID().String(),
		ItemName:      i.ItemName(),
		CurrentStock:  i.CurrentStock(),
		MinThreshold:  i.MinThreshold(),
		UnitPrice:     i.UnitPrice(),
		IsLowStock:    i.IsLowStock(),
		LastRestocked: i.LastRestocked(),
		CreatedAt:     i.CreatedAt(),
	}
}

func inventoryItemResponseFromQuery(row queries.GetInventoryQueryResponse) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            row.ID.String(),
		ItemName:      row.ItemName,
		CurrentStock:  row.CurrentStock,
		MinThreshold:  row.MinThreshold,
		UnitPrice:     row.UnitPrice,
		IsLowStock:    row.IsLowStock,
		LastRestocked: row.LastRestocked,
		CreatedAt:     row.CreatedAt,
	}
}

func authUserResponse(profile queries.AuthenticateQueryResponse) AuthUserResponse {
	return AuthUserResponse{
		ID:         profile.UserID.String(),
		Email:      profile.Email,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Role:       profile.Role.String(),
		CustomerID: uuidPtrToString(profile.CustomerID),
		AgentID:    uuidPtrToString(profile.AgentID),
	}
}
