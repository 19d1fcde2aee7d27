package order

import (
	"context"
	"errors"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (
    user_id, shipping_address, shipping_city, shipping_postal_code, shipping_country,
    payment_method, items_price, shipping_price, tax_price, total_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at
`
	var orderID string
	var createdAt time.Time
	if err := tx.QueryRow(ctx, insertOrder,
		in.UserID,
		in.ShippingAddress.Address,
		in.ShippingAddress.City,
		in.ShippingAddress.PostalCode,
		in.ShippingAddress.Country,
		in.PaymentMethod,
		in.ItemsPrice,
		in.ShippingPrice,
		in.TaxPrice,
		in.TotalPrice,
	).Scan(&orderID, &createdAt); err != nil {
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, product_id, name, image, price, qty, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	for pos, item := range in.Items {
		if _, err := tx.Exec(ctx, insertItem, orderID, item.ProductID, item.Name, item.Image, item.Price, item.Qty, pos); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const orderQuery = `
SELECT id::text, user_id::text, shipping_address, shipping_city, shipping_postal_code, shipping_country,
       payment_method, items_price, shipping_price, tax_price, total_price,
       is_paid, paid_at, is_delivered, delivered_at,
       payment_id, payment_status, payment_update_time, payment_email, created_at
FROM orders
WHERE id = $1
`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, orderQuery, id))
	if err != nil {
		return nil, err
	}

	const itemsQuery = `
SELECT product_id::text, name, image, price, qty
FROM order_items
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Image, &item.Price, &item.Qty); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, shipping_address, shipping_city, shipping_postal_code, shipping_country,
       payment_method, items_price, shipping_price, tax_price, total_price,
       is_paid, paid_at, is_delivered, delivered_at,
       payment_id, payment_status, payment_update_time, payment_email, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time, result domain.PaymentResult) error {
	const q = `
UPDATE orders
SET is_paid = true,
    paid_at = $2,
    payment_id = $3,
    payment_status = $4,
    payment_update_time = $5,
    payment_email = $6
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, paidAt, result.ID, result.Status, result.UpdateTime, result.EmailAddress)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	const q = `
UPDATE orders
SET is_delivered = true,
    delivered_at = $2
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, deliveredAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var paymentID, paymentStatus, paymentUpdateTime, paymentEmail *string
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.ShippingAddress.Address,
		&o.ShippingAddress.City,
		&o.ShippingAddress.PostalCode,
		&o.ShippingAddress.Country,
		&o.PaymentMethod,
		&o.ItemsPrice,
		&o.ShippingPrice,
		&o.TaxPrice,
		&o.TotalPrice,
		&o.IsPaid,
		&o.PaidAt,
		&o.IsDelivered,
		&o.DeliveredAt,
		&paymentID,
		&paymentStatus,
		&paymentUpdateTime,
		&paymentEmail,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if paymentID != nil {
		o.PaymentResult = &domain.PaymentResult{
			ID:           *paymentID,
			Status:       deref(paymentStatus),
			UpdateTime:   deref(paymentUpdateTime),
			EmailAddress: deref(paymentEmail),
		}
	}
	return &o, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
