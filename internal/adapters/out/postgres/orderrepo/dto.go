// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"blip/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The database assigns the identifier and both timestamps; status is stored
// as the enum's integer value and indexed for the watchdog query.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerName string `gorm:"size:255;not null"`
	ProductName  string `gorm:"size:255;not null"`
	Quantity     int    `gorm:"not null"`
	Status       int    `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID(),
		CustomerName: order.CustomerName(),
		ProductName:  order.ProductName(),
		Quantity:     order.Quantity(),
		Status:       int(order.Status()),
		CreatedAt:    order.CreatedAt(),
		UpdatedAt:    order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which revalidates every field on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.ProductName,
		dto.Quantity,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
