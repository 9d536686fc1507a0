package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/superma0035/zapdine/pkg/types"
)

type OrderRepository struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

func NewOrderRepository(pool *pgxpool.Pool, clock clockwork.Clock) *OrderRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &OrderRepository{pool: pool, clock: clock}
}

// CreateOrder stores the order and its line items in one transaction and
// returns the new order id. Every failure wraps types.ErrOrderCreationFailed.
func (r *OrderRepository) CreateOrder(ctx context.Context, order types.NewOrder) (string, error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("%w: %w", types.ErrOrderCreationFailed, types.ErrEmptyCart)
	}

	id := uuid.NewString()
	now := r.clock.Now().UTC()

	err := withTx(ctx, r.pool, func(ctx context.Context) error {
		const insertOrder = `
INSERT INTO orders (id, restaurant_id, table_number, total_amount_paise, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
		if _, err := exec(ctx, r.pool, insertOrder,
			id, order.RestaurantID, order.TableNumber, int64(order.TotalAmount),
			string(types.OrderPending), order.Notes, now); err != nil {
			return classifyCreate(err, "insert order")
		}

		const insertItem = `
INSERT INTO order_items (order_id, position, menu_item_id, quantity, unit_price_paise, total_price_paise)
VALUES ($1, $2, $3, $4, $5, $6)`
		for i, item := range order.Items {
			if _, err := exec(ctx, r.pool, insertItem,
				id, i, item.MenuItemID, item.Quantity,
				int64(item.UnitPrice), int64(item.TotalPrice)); err != nil {
				return classifyCreate(err, "insert order item")
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrOrderCreationFailed, err)
	}
	return id, nil
}

func classifyCreate(err error, what string) error {
	switch {
	case isInvalidUUID(err):
		return types.ErrInvalidID
	case isForeignKeyViolation(err):
		return types.ErrItemNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}

// ListTodaysOrders returns the orders placed since local midnight for a
// restaurant owned by ownerID, newest first.
func (r *OrderRepository) ListTodaysOrders(ctx context.Context, restaurantID, ownerID string) ([]types.Order, error) {
	if err := authorizeOwner(ctx, r.pool, restaurantID, ownerID); err != nil {
		return nil, err
	}
	since := startOfDay(r.clock.Now())

	const listOrders = `
SELECT id, restaurant_id, table_number, total_amount_paise, status, notes, created_at, updated_at
FROM orders
WHERE restaurant_id = $1 AND created_at >= $2
ORDER BY created_at DESC`

	rows, err := query(ctx, r.pool, listOrders, restaurantID, since)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []types.Order
	index := make(map[string]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	const listItems = `
SELECT oi.order_id, oi.menu_item_id, m.name, oi.quantity, oi.unit_price_paise, oi.total_price_paise
FROM order_items oi
JOIN menu_items m ON m.id = oi.menu_item_id
JOIN orders o ON o.id = oi.order_id
WHERE o.restaurant_id = $1 AND o.created_at >= $2
ORDER BY oi.order_id, oi.position`

	itemRows, err := query(ctx, r.pool, listItems, restaurantID, since)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID    string
			item       types.OrderItem
			unit, line int64
		)
		if err := itemRows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Quantity, &unit, &line); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.UnitPrice = types.Amount(unit)
		item.TotalPrice = types.Amount(line)
		if i, ok := index[orderID]; ok {
			out[i].Items = append(out[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return out, nil
}

// UpdateStatus moves an order to status. The order must belong to a
// restaurant owned by ownerID.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, ownerID string, status types.OrderStatus) (types.Order, error) {
	if !status.Valid() {
		return types.Order{}, types.ErrInvalidStatus
	}

	const stmt = `
UPDATE orders o
SET status = $3, updated_at = $4
FROM restaurants r
WHERE o.id = $1 AND r.id = o.restaurant_id AND r.owner_id = $2
RETURNING o.id, o.restaurant_id, o.table_number, o.total_amount_paise, o.status, o.notes, o.created_at, o.updated_at`

	o, err := scanOrder(queryRow(ctx, r.pool, stmt, orderID, ownerID, string(status), r.clock.Now().UTC()))
	if err != nil {
		if isInvalidUUID(err) {
			return types.Order{}, types.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Order{}, types.ErrOrderNotFound
		}
		return types.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (types.Order, error) {
	var (
		o      types.Order
		total  int64
		status string
	)
	if err := row.Scan(&o.ID, &o.RestaurantID, &o.TableNumber, &total, &status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return types.Order{}, err
	}
	o.TotalAmount = types.Amount(total)
	o.Status = types.OrderStatus(status)
	return o, nil
}
