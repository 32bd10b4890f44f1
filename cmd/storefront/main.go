// storefront is the buyer-facing terminal client: browse the catalogue,
// assemble a cart, save a delivery profile, place and track orders. With
// -admin-token it also drives the orders console (filter + pagination).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/freshlane/bulkstore/internal/adminview"
	"github.com/freshlane/bulkstore/internal/cart"
	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/identity"
)

type tokenIdentity struct {
	username string
}

func (t tokenIdentity) SignedIn() bool   { return t.username != "" }
func (t tokenIdentity) Username() string { return t.username }

func main() {
	var (
		catalogURL = flag.String("catalog", "http://localhost:8081", "catalog-service base URL")
		ordersURL  = flag.String("orders", "http://localhost:8082", "order-service base URL")
		token      = flag.String("token", os.Getenv("BUYER_TOKEN"), "buyer token from the identity provider")
		profile    = flag.String("profile", defaultProfilePath(), "saved buyer profile path")
	)
	flag.Parse()

	id := tokenIdentity{}
	if *token != "" {
		username, err := identity.Username(*token)
		if err != nil {
			log.Fatalf("buyer token: %v", err)
		}
		id.username = username
	}

	client := cart.NewClient(*catalogURL, *ordersURL, *token)
	c := cart.New(id, &cart.FileStore{Path: *profile}, client)

	if id.SignedIn() {
		fmt.Printf("signed in as %s\n", id.username)
	} else {
		fmt.Println("not signed in; browsing only (pass -token to order)")
	}
	fmt.Println(`commands: products, toggle <n>, qty <n> <1-10>, cart, profile <name>;<contact>;<address>, save, submit, orders, cancel <id>, admin, quit`)

	ctx := context.Background()
	var listing []catalog.Product
	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return

		case "products":
			items, err := client.Products(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			listing = items
			for i, p := range items {
				fmt.Printf("%2d. %-30s %10s\n", i+1, p.Name, p.Price)
			}

		case "toggle":
			p, ok := pick(listing, fields)
			if !ok {
				continue
			}
			c.Toggle(p)
			fmt.Printf("cart has %d line(s)\n", c.Len())

		case "qty":
			if len(fields) != 3 {
				fmt.Println("usage: qty <n> <1-10>")
				continue
			}
			p, ok := pick(listing, fields[:2])
			if !ok {
				continue
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				fmt.Println("usage: qty <n> <1-10>")
				continue
			}
			c.SetQuantity(p.ID, n)

		case "cart":
			for _, ln := range c.Lines() {
				fmt.Printf("%-30s x%d @ %s\n", ln.Name, ln.Quantity, ln.Price)
			}
			p := c.Profile()
			fmt.Printf("deliver to: %s / %s / %s\n", p.BuyerName, p.BuyerContact, p.DeliveryAddress)

		case "profile":
			rest := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "profile"))
			parts := strings.SplitN(rest, ";", 3)
			if len(parts) != 3 {
				fmt.Println("usage: profile <name>;<contact>;<address>")
				continue
			}
			c.SetProfile(cart.Profile{
				BuyerName:       strings.TrimSpace(parts[0]),
				BuyerContact:    strings.TrimSpace(parts[1]),
				DeliveryAddress: strings.TrimSpace(parts[2]),
			})

		case "save":
			if err := c.SaveProfile(); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("buyer details saved")

		case "submit":
			o, err := c.Submit(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("order placed: %s (%s)\n", o.ID, o.Status)

		case "orders":
			all, err := client.Orders(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			mine := adminview.ForBuyer(all, id.Username())
			if len(mine) == 0 {
				fmt.Println("no orders yet")
				continue
			}
			for _, o := range mine {
				fmt.Printf("%s  %-12s %s\n", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
			}

		case "cancel":
			if len(fields) != 2 {
				fmt.Println("usage: cancel <order-id>")
				continue
			}
			if err := client.Cancel(ctx, fields[1]); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("order cancelled")

		case "admin":
			adminLoop(ctx, client, sc)

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func pick(listing []catalog.Product, fields []string) (catalog.Product, bool) {
	if len(fields) < 2 {
		fmt.Println("usage:", fields[0], "<n> (run products first)")
		return catalog.Product{}, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(listing) {
		fmt.Println("no such listing entry; run products first")
		return catalog.Product{}, false
	}
	return listing[n-1], true
}

// adminLoop drives the orders console over the full list, the same
// filter/page model the web admin uses.
func adminLoop(ctx context.Context, client *cart.Client, sc *bufio.Scanner) {
	all, err := client.Orders(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	view := adminview.New(all)
	fmt.Println(`admin commands: show, search <q>, status <pending|in_progress|delivered|all>, next, prev, back`)
	show := func() {
		for _, o := range view.Orders() {
			fmt.Printf("%s  %-20s %-12s %s\n", o.ID, o.BuyerName, o.Status, o.CreatedAt.Format("2006-01-02"))
		}
		fmt.Printf("page %d of %d\n", view.Page(), view.TotalPages())
	}
	show()
	for fmt.Print("admin> "); sc.Scan(); fmt.Print("admin> ") {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "back":
			return
		case "show":
			show()
		case "search":
			q := ""
			if len(fields) > 1 {
				q = strings.Join(fields[1:], " ")
			}
			view.SetSearch(q)
			show()
		case "status":
			s := ""
			if len(fields) > 1 && fields[1] != "all" {
				s = fields[1]
			}
			view.SetStatus(s)
			show()
		case "next":
			view.Next()
			show()
		case "prev":
			view.Prev()
			show()
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "buyer-profile.json"
	}
	return filepath.Join(home, ".bulkstore", "profile.json")
}
