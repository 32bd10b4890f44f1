package adminview

import (
	"fmt"
	"testing"

	"github.com/freshlane/bulkstore/internal/order"
)

func sampleOrders(n int) []order.Order {
	out := make([]order.Order, 0, n)
	for i := 0; i < n; i++ {
		status := order.StatusPending
		if i%3 == 1 {
			status = order.StatusInProgress
		} else if i%3 == 2 {
			status = order.StatusDelivered
		}
		out = append(out, order.Order{
			ID:        fmt.Sprintf("order-%02d", i),
			BuyerName: fmt.Sprintf("Buyer %02d", i),
			Status:    status,
		})
	}
	return out
}

func TestPaginationWindow(t *testing.T) {
	v := New(sampleOrders(12))

	if v.TotalPages() != 3 {
		t.Fatalf("totalPages=%d, expected 3", v.TotalPages())
	}
	page := v.Orders()
	if len(page) != 5 {
		t.Fatalf("page len=%d, expected 5", len(page))
	}
	if page[0].ID != "order-00" || page[4].ID != "order-04" {
		t.Fatalf("page 1 window wrong: %s..%s", page[0].ID, page[4].ID)
	}

	v.Next()
	if v.Page() != 2 || v.Orders()[0].ID != "order-05" {
		t.Fatalf("page=%d first=%s", v.Page(), v.Orders()[0].ID)
	}
	v.Next()
	if len(v.Orders()) != 2 {
		t.Fatalf("last page len=%d, expected 2", len(v.Orders()))
	}
}

func TestNextPrevClamp(t *testing.T) {
	v := New(sampleOrders(12))

	v.Prev()
	if v.Page() != 1 {
		t.Fatalf("Prev below 1: page=%d", v.Page())
	}
	for i := 0; i < 10; i++ {
		v.Next()
	}
	if v.Page() != 3 {
		t.Fatalf("Next beyond total: page=%d", v.Page())
	}
}

func TestTextFilter(t *testing.T) {
	v := New([]order.Order{
		{ID: "aaa-111", BuyerName: "Amara Okafor", Status: order.StatusPending},
		{ID: "bbb-222", BuyerName: "Benoit Rivera", Status: order.StatusPending},
		{ID: "ccc-333", BuyerName: "Chen Wei", Status: order.StatusPending},
	})

	// case-insensitive substring on buyer name
	v.SetSearch("amara")
	if got := v.Orders(); len(got) != 1 || got[0].ID != "aaa-111" {
		t.Fatalf("name filter: %+v", got)
	}

	// substring on id
	v.SetSearch("bb-2")
	if got := v.Orders(); len(got) != 1 || got[0].ID != "bbb-222" {
		t.Fatalf("id filter: %+v", got)
	}

	// empty filter passes all
	v.SetSearch("")
	if len(v.Orders()) != 3 {
		t.Fatalf("empty filter should pass all")
	}
}

func TestStatusFilterCombinesWithSearch(t *testing.T) {
	v := New([]order.Order{
		{ID: "1", BuyerName: "Amara", Status: order.StatusPending},
		{ID: "2", BuyerName: "Amara", Status: order.StatusDelivered},
		{ID: "3", BuyerName: "Chen", Status: order.StatusDelivered},
	})

	v.SetSearch("amara")
	v.SetStatus("delivered")
	got := v.Orders()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("AND of filters broken: %+v", got)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	v := New(sampleOrders(12))
	v.Next()
	if v.Page() != 2 {
		t.Fatalf("setup: page=%d", v.Page())
	}
	v.SetSearch("buyer")
	if v.Page() != 1 {
		t.Fatalf("SetSearch should reset page, got %d", v.Page())
	}
	v.Next()
	v.SetStatus("pending")
	if v.Page() != 1 {
		t.Fatalf("SetStatus should reset page, got %d", v.Page())
	}
}

func TestZeroMatchesIsEmptyNotError(t *testing.T) {
	v := New(sampleOrders(12))
	v.SetSearch("no such buyer")
	if v.TotalPages() != 0 {
		t.Fatalf("totalPages=%d, expected 0", v.TotalPages())
	}
	if got := v.Orders(); len(got) != 0 {
		t.Fatalf("expected empty page, got %d", len(got))
	}
}

func TestSetOrdersClampsPage(t *testing.T) {
	v := New(sampleOrders(12))
	v.Next()
	v.Next()
	if v.Page() != 3 {
		t.Fatalf("setup: page=%d", v.Page())
	}

	// refetch shrank the list to one page; the console must land on it
	v.SetOrders(sampleOrders(4))
	if v.Page() != 1 {
		t.Fatalf("page=%d after shrink, expected 1", v.Page())
	}
	if len(v.Orders()) != 4 {
		t.Fatalf("page should show the remaining orders, got %d", len(v.Orders()))
	}

	// refetch to empty keeps a valid page number
	v.SetOrders(nil)
	if v.Page() != 1 {
		t.Fatalf("page=%d on empty list, expected 1", v.Page())
	}
	if len(v.Orders()) != 0 {
		t.Fatalf("expected empty page")
	}
}

func TestForBuyerExactMatch(t *testing.T) {
	orders := []order.Order{
		{ID: "1", BuyerName: "amara"},
		{ID: "2", BuyerName: "Amara"},
		{ID: "3", BuyerName: "amara"},
	}
	mine := ForBuyer(orders, "amara")
	if len(mine) != 2 {
		t.Fatalf("len=%d, expected 2 (exact match only)", len(mine))
	}
}
