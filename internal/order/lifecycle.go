package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidState means a buyer tried to cancel an order that already
	// left pending.
	ErrInvalidState = errors.New("order is not pending")
)

var contactRe = regexp.MustCompile(`^[0-9]{10}$`)

// ValidContact reports whether s is an exactly-10-digit contact number.
func ValidContact(s string) bool { return contactRe.MatchString(s) }

// Service owns the order lifecycle: creation with snapshot pricing, status
// changes, buyer cancellation and admin removal.
type Service struct {
	repo     Repository
	resolver *Resolver
}

func NewService(repo Repository, resolver *Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Create validates the draft, resolves snapshot prices and persists the
// order as pending. Nothing is stored if any line fails to resolve.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if req.BuyerName == "" || req.BuyerContact == "" || req.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: buyer details and items are required", ErrValidation)
	}
	if !ValidContact(req.BuyerContact) {
		return nil, fmt.Errorf("%w: buyerContact must be a 10-digit number", ErrValidation)
	}
	items, err := s.resolver.Resolve(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		ID:              uuid.NewString(),
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		DeliveryAddress: req.DeliveryAddress,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = o.ID
	}
	o.Items = items

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// AdvanceStatus sets the order's status. Any valid status is accepted,
// including moves against the forward path: the admin console relies on
// free reassignment to fix mistakes. Off-path moves are logged.
func (s *Service) AdvanceStatus(ctx context.Context, id string, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != next && !cur.Status.CanAdvance(next) {
		log.Printf("[order] status reassigned off the forward path: id=%s %s -> %s", id, cur.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	// return current state, like the repo sees it
	return s.repo.GetByID(ctx, id)
}

// Cancel removes a buyer's order while it is still pending.
func (s *Service) Cancel(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ErrInvalidState
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

// Delete is the admin removal: no state restriction.
func (s *Service) Delete(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every order; filtering and pagination are the admin
// view's concern, not this layer's.
func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}
