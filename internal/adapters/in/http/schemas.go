package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
)

// Money fields travel as strings on the wire so clients never see binary
// float artifacts; values are rendered with exactly two fractional digits.

// --- Request types ---

type createUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	FullName string `json:"full_name" validate:"max=255"`
}

type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Password *string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createOrderRequest struct {
	UserID      string `json:"user_id"      validate:"required,uuid"`
	ProductName string `json:"product_name" validate:"required,max=200"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
	UnitPrice   string `json:"unit_price"   validate:"required"`
}

type updateOrderRequest struct {
	ProductName *string `json:"product_name" validate:"omitempty,max=200"`
	Quantity    *int    `json:"quantity"     validate:"omitempty,gt=0"`
	UnitPrice   *string `json:"unit_price"`
	Status      *string `json:"status"       validate:"omitempty,oneof=pending completed cancelled"`
}

// --- Response types ---

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	TotalAmount string    `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type userStatisticsResponse struct {
	UserID            string  `json:"user_id"`
	UserEmail         *string `json:"user_email"`
	TotalOrders       int64   `json:"total_orders"`
	PendingOrders     int64   `json:"pending_orders"`
	CompletedOrders   int64   `json:"completed_orders"`
	TotalSpent        string  `json:"total_spent"`
	AverageOrderValue string  `json:"average_order_value"`
}

type userExistsResponse struct {
	Exists bool `json:"exists"`
}

func toUserResponse(u queries.UserResponse) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	return orderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID.String(),
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice.StringFixed(2),
		TotalAmount: o.TotalAmount.StringFixed(2),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toUserStatisticsResponse(s queries.GetUserStatisticsQueryResponse) userStatisticsResponse {
	return userStatisticsResponse{
		UserID:            s.UserID.String(),
		UserEmail:         s.UserEmail,
		TotalOrders:       s.TotalOrders,
		PendingOrders:     s.PendingOrders,
		CompletedOrders:   s.CompletedOrders,
		TotalSpent:        s.TotalSpent.StringFixed(2),
		AverageOrderValue: s.AverageOrderValue.StringFixed(2),
	}
}
