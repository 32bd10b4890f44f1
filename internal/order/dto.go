package order

// CartLine is one requested line of a draft order.
// Name and Price are accepted so display-side clients can echo their view
// of the catalogue, but they are ignored: snapshots are always re-resolved
// server-side from the catalogue.
// swagger:model CartLine
type CartLine struct {
	ProductID string `json:"productId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity"  example:"2"`
	Name      string `json:"name,omitempty"`
	Price     string `json:"price,omitempty"`
}

// CreateOrderRequest payload of order placement.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	BuyerName       string     `json:"buyerName"       example:"amara"`
	BuyerContact    string     `json:"buyerContact"    example:"5551234567"`
	DeliveryAddress string     `json:"deliveryAddress" example:"12 Market Lane"`
	Items           []CartLine `json:"items"`
}

// UpdateStatusRequest payload of the admin status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"in_progress"`
}

// UpdateOrderResponse wraps the updated record.
// swagger:model
type UpdateOrderResponse struct {
	Updated Order  `json:"updated"`
	Message string `json:"message"`
}

// DeleteOrderResponse wraps the removed record.
// swagger:model
type DeleteOrderResponse struct {
	Deleted Order  `json:"deleted"`
	Message string `json:"message"`
}
