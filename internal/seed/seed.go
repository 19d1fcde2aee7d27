package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name         string
	Image        string
	Description  string
	Price        string
	CountInStock int
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "Admin", "admin@example.com", "admin123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	products := []productSeed{
		{
			Name:         "Airpods Wireless Bluetooth Headphones",
			Image:        "/images/airpods.jpg",
			Description:  "Bluetooth technology lets you connect it with compatible devices wirelessly",
			Price:        "89.99",
			CountInStock: 10,
		},
		{
			Name:         "iPhone 11 Pro 256GB Memory",
			Image:        "/images/phone.jpg",
			Description:  "Introducing the iPhone 11 Pro. A transformative triple-camera system",
			Price:        "599.99",
			CountInStock: 7,
		},
		{
			Name:         "Cannon EOS 80D DSLR Camera",
			Image:        "/images/camera.jpg",
			Description:  "Characterized by versatile imaging specs and a robust feature set",
			Price:        "929.99",
			CountInStock: 5,
		},
		{
			Name:         "Logitech G-Series Gaming Mouse",
			Image:        "/images/mouse.jpg",
			Description:  "Get a better handle on your games with this Logitech gaming mouse",
			Price:        "49.99",
			CountInStock: 0,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, name, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO users (name, email, password_hash, is_admin)
VALUES ($1, $2, $3, true)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, name, email, string(hashed))
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, image, description, price, count_in_stock)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET image = EXCLUDED.image,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    count_in_stock = EXCLUDED.count_in_stock
`
	_, err := pool.Exec(ctx, q, p.Name, p.Image, p.Description, p.Price, p.CountInStock)
	return err
}
