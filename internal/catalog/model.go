package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidPrice reports whether s is a parseable, non-negative decimal.
func ValidPrice(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name  string `json:"name"  example:"Roma Tomatoes 10kg"`
	Price string `json:"price" example:"18.50"`
}

// UpdateProductRequest payload of update. Both fields are required.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// UpdateProductResponse wraps the updated record.
// swagger:model
type UpdateProductResponse struct {
	Updated Product `json:"updated"`
	Message string  `json:"message"`
}
