package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a synthetic customer. Behavior is assigned at creation and drives
// order volume, price tier and review likelihood downstream.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	City         string       `json:"city"`
	Address      string       `json:"address"`
	Behavior     BehaviorType `json:"behavior"`
	RegisteredAt time.Time    `json:"registered_at"`
}

// ToMap projects the user onto a flat record for export and joining.
func (u User) ToMap() Record {
	return Record{
		"id":            u.ID.String(),
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"city":          u.City,
		"address":       u.Address,
		"behavior":      string(u.Behavior),
		"registered_at": u.RegisteredAt,
	}
}

// Product is a synthetic catalog item.
type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Brand    string    `json:"brand"`
	Price    float64   `json:"price"`
	Stock    int       `json:"stock"`
	Rating   float64   `json:"rating"`
}

// ToMap projects the product onto a flat record.
func (p Product) ToMap() Record {
	return Record{
		"id":       p.ID.String(),
		"name":     p.Name,
		"category": p.Category,
		"brand":    p.Brand,
		"price":    p.Price,
		"stock":    p.Stock,
		"rating":   p.Rating,
	}
}

// Order links a user to a product purchase.
type Order struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	OrderedAt     time.Time `json:"ordered_at"`
}

// ToMap projects the order onto a flat record.
func (o Order) ToMap() Record {
	return Record{
		"id":             o.ID.String(),
		"user_id":        o.UserID.String(),
		"product_id":     o.ProductID.String(),
		"quantity":       o.Quantity,
		"unit_price":     o.UnitPrice,
		"total":          o.Total,
		"payment_method": o.PaymentMethod,
		"status":         o.Status,
		"ordered_at":     o.OrderedAt,
	}
}

// Review is a user's rating of a purchased product. Comment may be empty;
// callers must check for emptiness, not absence.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMap projects the review onto a flat record.
func (r Review) ToMap() Record {
	return Record{
		"id":         r.ID.String(),
		"user_id":    r.UserID.String(),
		"product_id": r.ProductID.String(),
		"order_id":   r.OrderID.String(),
		"rating":     r.Rating,
		"comment":    r.Comment,
		"created_at": r.CreatedAt,
	}
}
