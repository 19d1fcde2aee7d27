package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/aleksandar-ristic/StarterStore/internal/config"
	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/actions"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/cartstore"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/screens"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/state"
)

// Headless storefront walkthrough: log in, fill a cart, place an order and
// inspect the order screen. Useful for smoke-testing a running API.
func main() {
	email := flag.String("email", "admin@example.com", "account email")
	password := flag.String("password", "admin123", "account password")
	productID := flag.String("product", "", "product id to buy")
	qty := flag.Int("qty", 1, "quantity to add")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	redisClient, err := cartstore.Open(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()

	client := api.NewClient(cfg.APIBaseURL)
	store := state.NewStore()
	cart := cartstore.NewRedis(redisClient, cartstore.NewSessionID())
	dispatcher := actions.NewDispatcher(store, client, cart)

	if err := dispatcher.RestoreCart(ctx); err != nil {
		logger.Fatalf("restore cart: %v", err)
	}

	dispatcher.Login(ctx, *email, *password)
	if st := store.State(); st.UserLogin.Err != "" {
		logger.Fatalf("login: %s", st.UserLogin.Err)
	}
	logger.Printf("logged in as %s", store.State().UserLogin.User.Name)

	if *productID == "" {
		products, err := client.ListProducts(ctx)
		if err != nil {
			logger.Fatalf("list products: %v", err)
		}
		if len(products) == 0 {
			logger.Fatalf("no products in catalog, run cmd/seed first")
		}
		*productID = products[0].ID
	}

	if err := dispatcher.AddToCart(ctx, *productID, *qty); err != nil {
		logger.Fatalf("add to cart: %v", err)
	}
	for _, item := range store.State().Cart.Items {
		logger.Printf("cart: %d x %s @ %s", item.Qty, item.Name, domain.FormatMoney(item.Price))
	}

	order, err := dispatcher.CreateOrder(ctx, domain.ShippingAddress{
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "USA",
	}, "PayPal")
	if err != nil {
		logger.Fatalf("create order: %v", err)
	}
	logger.Printf("placed order %s, total %s", order.ID, domain.FormatMoney(order.TotalPrice))

	screen := screens.NewOrderScreen(store, dispatcher, client, order.ID)
	screen.Sync(ctx)
	screen.Sync(ctx)

	view := screen.View()
	switch {
	case view.Err != "":
		logger.Fatalf("order screen: %s", view.Err)
	case view.Loading:
		logger.Printf("order screen still loading")
	default:
		logger.Printf("order %s: items %s, pay button shown: %t",
			view.Order.ID, view.ItemsPrice, view.ShowPayPalButton)
	}
}
