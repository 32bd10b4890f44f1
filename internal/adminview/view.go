// Package adminview is the read side of the orders console: a client-side
// filter and fixed-size pagination over the full list fetched from
// order-service. It holds no connection of its own; callers refetch and
// SetOrders after every mutation.
package adminview

import (
	"strings"

	"github.com/freshlane/bulkstore/internal/order"
)

const OrdersPerPage = 5

type View struct {
	orders []order.Order
	search string
	status string // empty means all
	page   int
}

func New(orders []order.Order) *View {
	return &View{orders: orders, page: 1}
}

// SetOrders replaces the backing list after a refetch. Filters survive;
// the page is kept but clamped so a shrunken list never strands the
// console on an empty page.
func (v *View) SetOrders(orders []order.Order) {
	v.orders = orders
	if tp := v.TotalPages(); v.page > tp {
		v.page = tp
	}
	if v.page < 1 {
		v.page = 1
	}
}

func (v *View) SetSearch(q string) {
	v.search = q
	v.page = 1
}

func (v *View) SetStatus(status string) {
	v.status = status
	v.page = 1
}

func (v *View) Search() string { return v.search }
func (v *View) Status() string { return v.status }
func (v *View) Page() int      { return v.page }

// filtered applies the text filter (case-insensitive substring on buyer
// name OR substring on id) AND the status filter.
func (v *View) filtered() []order.Order {
	q := strings.ToLower(v.search)
	var out []order.Order
	for _, o := range v.orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.BuyerName), q) &&
			!strings.Contains(o.ID, v.search) {
			continue
		}
		if v.status != "" && string(o.Status) != v.status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (v *View) TotalPages() int {
	n := len(v.filtered())
	return (n + OrdersPerPage - 1) / OrdersPerPage
}

func (v *View) Next() {
	if v.page < v.TotalPages() {
		v.page++
	}
}

func (v *View) Prev() {
	if v.page > 1 {
		v.page--
	}
}

// Orders returns the current page's window. Zero matches render as an
// empty page rather than an error.
func (v *View) Orders() []order.Order {
	f := v.filtered()
	start := (v.page - 1) * OrdersPerPage
	if start >= len(f) {
		return []order.Order{}
	}
	end := start + OrdersPerPage
	if end > len(f) {
		end = len(f)
	}
	return f[start:end]
}

// ForBuyer is the tracking page's slice of the list: only the orders the
// signed-in buyer placed, matched by exact buyer name.
func ForBuyer(orders []order.Order, buyerName string) []order.Order {
	var out []order.Order
	for _, o := range orders {
		if o.BuyerName == buyerName {
			out = append(out, o)
		}
	}
	return out
}
