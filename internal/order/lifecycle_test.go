package order

import (
	"context"
	"errors"
	"testing"
)

// memRepo implements Repository in memory.
type memRepo struct {
	orders  map[string]*Order
	creates int
}

func newMemRepo() *memRepo { return &memRepo{orders: make(map[string]*Order)} }

func (m *memRepo) Create(ctx context.Context, o *Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	m.creates++
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memRepo) ListAll(ctx context.Context) ([]Order, error) {
	out := make([]Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

func newTestService(repo Repository) *Service {
	src := newStubSource(
		ProductSnapshot{ID: "P1", Name: "Roma Tomatoes 10kg", Price: "10.00"},
		ProductSnapshot{ID: "P2", Name: "Potatoes 25kg", Price: "18.50"},
	)
	return NewService(repo, NewResolver(src))
}

func validDraft() CreateOrderRequest {
	return CreateOrderRequest{
		BuyerName:       "amara",
		BuyerContact:    "5551234567",
		DeliveryAddress: "12 Market Lane",
		Items:           []CartLine{{ProductID: "P1", Quantity: 3}},
	}
}

func TestCreate_PersistsPendingOrder(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	o, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.Status != StatusPending {
		t.Fatalf("status=%s, expected pending", o.Status)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("createdAt not assigned")
	}
	if len(o.Items) != 1 || o.Items[0].TotalPrice != "30.00" {
		t.Fatalf("unexpected items: %+v", o.Items)
	}
	if repo.creates != 1 {
		t.Fatalf("creates=%d, expected 1", repo.creates)
	}
	stored, err := repo.GetByID(context.Background(), o.ID)
	if err != nil || stored.BuyerName != "amara" {
		t.Fatalf("order not persisted: %v %+v", err, stored)
	}
}

func TestCreate_RejectsBadContact(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	for _, contact := range []string{"", "12345", "abcdefghij", "555123456789", "555-123-45"} {
		req := validDraft()
		req.BuyerContact = contact
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrValidation) {
			t.Fatalf("contact=%q: err=%v, expected ErrValidation", contact, err)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("creates=%d, nothing should have been persisted", repo.creates)
	}
}

func TestCreate_RequiresFieldsAndItems(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	req := validDraft()
	req.DeliveryAddress = ""
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing address: err=%v", err)
	}

	req = validDraft()
	req.Items = nil
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty items: err=%v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("creates=%d, expected 0", repo.creates)
	}
}

func TestCreate_UnknownProductPersistsNothing(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	req := validDraft()
	req.Items = append(req.Items, CartLine{ProductID: "ghost", Quantity: 1})
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("err=%v, expected ErrUnknownProduct", err)
	}
	if repo.creates != 0 {
		t.Fatalf("creates=%d, order leaked through a failed resolve", repo.creates)
	}
}

func TestAdvanceStatus(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	o, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := svc.AdvanceStatus(context.Background(), o.ID, StatusInProgress)
	if err != nil || upd.Status != StatusInProgress {
		t.Fatalf("advance: %v %+v", err, upd)
	}

	if _, err := svc.AdvanceStatus(context.Background(), o.ID, Status("shipped")); !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid status: err=%v", err)
	}

	if _, err := svc.AdvanceStatus(context.Background(), "00000000-0000-0000-0000-000000000000", StatusDelivered); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order: err=%v", err)
	}
}

// The console may reassign freely, including back to pending. Keep this
// pinned until that changes.
func TestAdvanceStatus_AllowsBackwardReassignment(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	o, _ := svc.Create(context.Background(), validDraft())

	if _, err := svc.AdvanceStatus(context.Background(), o.ID, StatusDelivered); err != nil {
		t.Fatalf("to delivered: %v", err)
	}
	upd, err := svc.AdvanceStatus(context.Background(), o.ID, StatusPending)
	if err != nil || upd.Status != StatusPending {
		t.Fatalf("back to pending: %v %+v", err, upd)
	}
}

func TestCancel_OnlyWhilePending(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	o, _ := svc.Create(context.Background(), validDraft())
	if _, err := svc.Cancel(context.Background(), o.ID); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("cancel should delete the order")
	}

	o2, _ := svc.Create(context.Background(), validDraft())
	if _, err := svc.AdvanceStatus(context.Background(), o2.ID, StatusInProgress); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), o2.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("cancel in_progress: err=%v, expected ErrInvalidState", err)
	}
	if _, err := repo.GetByID(context.Background(), o2.ID); err != nil {
		t.Fatal("failed cancel must not delete the order")
	}

	if _, err := svc.Cancel(context.Background(), "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order: err=%v", err)
	}
}

func TestDelete_Unconditional(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	o, _ := svc.Create(context.Background(), validDraft())
	if _, err := svc.AdvanceStatus(context.Background(), o.ID, StatusDelivered); err != nil {
		t.Fatalf("advance: %v", err)
	}
	deleted, err := svc.Delete(context.Background(), o.ID)
	if err != nil || deleted.ID != o.ID {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("order still present after admin delete")
	}
}

func TestStatusCanAdvance(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusDelivered, true},
		{StatusInProgress, StatusDelivered, true},
		{StatusInProgress, StatusPending, false},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusPending, Status("shipped"), false},
	}
	for _, c := range cases {
		if got := c.from.CanAdvance(c.to); got != c.want {
			t.Fatalf("CanAdvance(%s -> %s)=%v, expected %v", c.from, c.to, got, c.want)
		}
	}
}
