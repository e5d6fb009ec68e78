// Package orderrepo implements the order repository over GORM, handling the
// conversion between the Order aggregate and its database row.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Money columns are numeric(10,2); the status is stored in its
// lowercase string form so rows stay readable and queryable without the Go
// enum.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(200)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status      string          `gorm:"type:varchar(20);index"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		ProductName: aggregate.ProductName(),
		Quantity:    aggregate.Quantity(),
		UnitPrice:   aggregate.UnitPrice(),
		TotalAmount: aggregate.TotalAmount(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.ProductName,
		dto.Quantity,
		dto.UnitPrice,
		dto.TotalAmount,
		status,
	)
}
