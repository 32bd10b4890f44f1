package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation     = errors.New("invalid order")
	ErrUnknownProduct = errors.New("unknown product")
)

// ProductSnapshot is the catalogue's answer for one product at resolution
// time.
type ProductSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductSource resolves a product id to its current snapshot. It returns
// ErrUnknownProduct when the id does not exist in the catalogue.
type ProductSource interface {
	FetchProduct(ctx context.Context, id string) (*ProductSnapshot, error)
}

// Resolver turns cart lines into priced line-items. Prices come from the
// catalogue only; anything the client sent in CartLine.Price is discarded,
// so a tampered cart still pays catalogue prices.
type Resolver struct {
	src ProductSource
}

func NewResolver(src ProductSource) *Resolver { return &Resolver{src: src} }

// Resolve is atomic: the first unresolvable line aborts the whole cart and
// no items are returned.
func (r *Resolver) Resolve(ctx context.Context, lines []CartLine) ([]Item, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}
	items := make([]Item, 0, len(lines))
	for _, ln := range lines {
		if ln.Quantity < 1 || ln.Quantity > 10 {
			return nil, fmt.Errorf("%w: quantity must be between 1 and 10", ErrValidation)
		}
		p, err := r.src.FetchProduct(ctx, ln.ProductID)
		if err != nil {
			if errors.Is(err, ErrUnknownProduct) {
				return nil, fmt.Errorf("product with ID %s does not exist: %w", ln.ProductID, ErrUnknownProduct)
			}
			return nil, err
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("catalogue returned bad price %q for %s: %w", p.Price, ln.ProductID, err)
		}
		total := price.Mul(decimal.NewFromInt(int64(ln.Quantity)))
		items = append(items, Item{
			ProductID:  p.ID,
			Name:       p.Name,
			Quantity:   ln.Quantity,
			TotalPrice: total.String(),
		})
	}
	return items, nil
}
