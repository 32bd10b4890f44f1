package order

import "time"

// Status is the order lifecycle state. The forward path is
// pending -> in_progress -> delivered; cancellation is a deletion while
// pending, not a state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDelivered  Status = "delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered:
		return true
	}
	return false
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusDelivered:
		return 2
	}
	return -1
}

// CanAdvance reports whether moving to next follows the forward path.
// The admin console is still allowed to reassign freely; see
// Service.AdvanceStatus.
func (s Status) CanAdvance(next Status) bool {
	return s.Valid() && next.Valid() && next.rank() > s.rank()
}

type Order struct {
	ID              string    `json:"id"`
	BuyerName       string    `json:"buyerName"`
	BuyerContact    string    `json:"buyerContact"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Items           []Item    `json:"items"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Item is a line frozen into the order at creation time. Name and
// TotalPrice are snapshots from the catalogue; later product edits or
// deletions do not touch them.
type Item struct {
	ID        string `json:"-"`
	OrderID   string `json:"-"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	// NUMERIC -> string
	TotalPrice string `json:"totalPrice"`
}
