package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents a staff member or merchant who can sign in.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Sale statuses ---

const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
	SaleStatusRefunded  = "refunded"
)

// Sale represents a single point-of-sale transaction.
// Only completed sales participate in revenue aggregates.
type Sale struct {
	ID          string     `json:"id"`
	SaleDate    time.Time  `json:"sale_date"`
	Status      string     `json:"status"`
	Items       []SaleItem `json:"items"`
	PaymentType string     `json:"payment_type"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Discount    float64    `json:"discount"`
	TotalAmount float64    `json:"total_amount"`
	CustomerID  *string    `json:"customer_id,omitempty"`
	StaffID     *string    `json:"staff_id,omitempty"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantity_sold"`
	UnitPrice    float64 `json:"unit_price"`
	Discount     float64 `json:"discount"`
	Subtotal     float64 `json:"subtotal"`
}

// StockItem is a snapshot of one product's inventory position.
type StockItem struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	SKU          *string `json:"sku,omitempty"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	MinThreshold int     `json:"min_threshold"`
	MaxThreshold *int    `json:"max_threshold,omitempty"`
	UnitCost     float64 `json:"unit_cost"`
	SellingPrice float64 `json:"selling_price"`
}

// Customer holds a shop customer and their derived lifetime statistics.
// The reporting engine recomputes its own aggregates from sales rather
// than trusting these cached figures.
type Customer struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	TotalSpent        float64 `json:"total_spent"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}
