package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/superma0035/zapdine/pkg/types"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

const menuColumns = `id, restaurant_id, name, description, price_paise, image_url, is_available, sort_order`

// ListAvailable returns the restaurant's available items by sort order.
func (r *MenuRepository) ListAvailable(ctx context.Context, restaurantID string) ([]types.MenuItem, error) {
	rows, err := query(ctx, r.pool, `
SELECT `+menuColumns+`
FROM menu_items
WHERE restaurant_id = $1 AND is_available
ORDER BY sort_order, name`, restaurantID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, types.ErrInvalidID
		}
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	items := []types.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, types.ErrInvalidID
		}
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// GetAvailable looks up one item, failing with types.ErrItemNotFound when it
// is missing, unavailable, or belongs to another restaurant.
func (r *MenuRepository) GetAvailable(ctx context.Context, restaurantID, itemID string) (types.MenuItem, error) {
	item, err := scanMenuItem(queryRow(ctx, r.pool, `
SELECT `+menuColumns+`
FROM menu_items
WHERE id = $1 AND restaurant_id = $2 AND is_available`, itemID, restaurantID))
	if err != nil {
		if isInvalidUUID(err) || errors.Is(err, pgx.ErrNoRows) {
			return types.MenuItem{}, types.ErrItemNotFound
		}
		return types.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func scanMenuItem(row pgx.Row) (types.MenuItem, error) {
	var (
		item  types.MenuItem
		price int64
	)
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
		&price, &item.ImageURL, &item.IsAvailable, &item.SortOrder); err != nil {
		return types.MenuItem{}, err
	}
	item.Price = types.Amount(price)
	return item, nil
}
