// Package cart is the buyer-side draft order: selected products with
// quantities plus the saved buyer profile, assembled locally and submitted
// to order-service in one shot.
package cart

import (
	"context"
	"errors"

	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/order"
)

var (
	ErrNotSignedIn    = errors.New("sign in to place an order")
	ErrInvalidProfile = errors.New("a valid 10-digit contact number and address are required")
	ErrEmptyCart      = errors.New("add at least one product")
)

// Profile is the buyer's reusable delivery details.
type Profile struct {
	BuyerName       string `json:"buyerName"`
	BuyerContact    string `json:"buyerContact"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// ProfileStore persists the profile between sessions. Load returns
// (nil, nil) when nothing was saved yet.
type ProfileStore interface {
	Load() (*Profile, error)
	Save(Profile) error
}

// Identity is the slice of the identity provider the cart needs.
type Identity interface {
	SignedIn() bool
	Username() string
}

// Placer submits the finished draft.
type Placer interface {
	Place(ctx context.Context, req order.CreateOrderRequest) (*order.Order, error)
}

// Line is one selected product. Price is the catalogue price at selection
// time, for display only; the server re-resolves it on submit.
type Line struct {
	ProductID string
	Name      string
	Price     string
	Quantity  int
}

type Cart struct {
	identity Identity
	profiles ProfileStore
	placer   Placer

	profile Profile
	items   map[string]*Line
	sel     []string // selection order, keeps Lines() stable
}

// New restores the saved profile, then lets the signed-in username win
// over whatever name was stored.
func New(identity Identity, profiles ProfileStore, placer Placer) *Cart {
	c := &Cart{
		identity: identity,
		profiles: profiles,
		placer:   placer,
		items:    make(map[string]*Line),
	}
	if p, err := profiles.Load(); err == nil && p != nil {
		c.profile = *p
	}
	if identity.SignedIn() && identity.Username() != "" {
		c.profile.BuyerName = identity.Username()
	}
	return c
}

// Toggle selects a product with quantity 1, or removes it if it is already
// in the cart. A product appears at most once.
func (c *Cart) Toggle(p catalog.Product) {
	if _, ok := c.items[p.ID]; ok {
		delete(c.items, p.ID)
		for i, id := range c.sel {
			if id == p.ID {
				c.sel = append(c.sel[:i], c.sel[i+1:]...)
				break
			}
		}
		return
	}
	c.items[p.ID] = &Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1}
	c.sel = append(c.sel, p.ID)
}

// SetQuantity updates a selected line. Out-of-range quantities are
// silently dropped, not clamped.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 || qty > 10 {
		return
	}
	if ln, ok := c.items[productID]; ok {
		ln.Quantity = qty
	}
}

func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.items))
	for _, id := range c.sel {
		if ln, ok := c.items[id]; ok {
			out = append(out, *ln)
		}
	}
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Profile() Profile { return c.profile }

func (c *Cart) SetProfile(p Profile) { c.profile = p }

// SaveProfile persists the current buyer details for the next session.
func (c *Cart) SaveProfile() error {
	if c.profile.DeliveryAddress == "" || !order.ValidContact(c.profile.BuyerContact) {
		return ErrInvalidProfile
	}
	return c.profiles.Save(c.profile)
}

// Submit places the order. On success the lines are cleared but the buyer
// profile stays for the next order.
func (c *Cart) Submit(ctx context.Context) (*order.Order, error) {
	if !c.identity.SignedIn() {
		return nil, ErrNotSignedIn
	}
	p := c.profile
	if p.BuyerName == "" || p.BuyerContact == "" || p.DeliveryAddress == "" {
		return nil, ErrInvalidProfile
	}
	if !order.ValidContact(p.BuyerContact) {
		return nil, ErrInvalidProfile
	}
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	req := order.CreateOrderRequest{
		BuyerName:       p.BuyerName,
		BuyerContact:    p.BuyerContact,
		DeliveryAddress: p.DeliveryAddress,
	}
	for _, ln := range c.Lines() {
		req.Items = append(req.Items, order.CartLine{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			Name:      ln.Name,
			Price:     ln.Price,
		})
	}

	o, err := c.placer.Place(ctx, req)
	if err != nil {
		return nil, err
	}
	c.items = make(map[string]*Line)
	c.sel = nil
	return o, nil
}
