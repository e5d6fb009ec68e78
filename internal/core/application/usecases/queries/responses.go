package queries

import (
	"database/sql"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the read-side projection of a user row.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderResponse is the read-side projection of an order row. Status carries
// the lowercase storage representation; money fields are exact decimals.
type OrderResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const userColumns = `id, email, full_name, is_active, created_at, updated_at`

const orderColumns = `id, user_id, product_name, quantity, unit_price, total_amount, status, created_at, updated_at`

func scanUserRow(rows *sql.Rows) (UserResponse, error) {
	var resp UserResponse
	var id uuid.UUID

	err := rows.Scan(
		&id,
		&resp.Email,
		&resp.FullName,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, userID uuid.UUID

	err := rows.Scan(
		&id,
		&userID,
		&resp.ProductName,
		&resp.Quantity,
		&resp.UnitPrice,
		&resp.TotalAmount,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.UserID = ownerID

	return resp, nil
}
