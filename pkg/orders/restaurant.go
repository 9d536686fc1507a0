package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/superma0035/zapdine/pkg/types"
)

// checks that restaurantID exists and is owned by ownerID
func authorizeOwner(ctx context.Context, pool *pgxpool.Pool, restaurantID, ownerID string) error {
	var owner string
	err := queryRow(ctx, pool, `SELECT owner_id FROM restaurants WHERE id = $1`, restaurantID).Scan(&owner)
	if err != nil {
		if isInvalidUUID(err) {
			return types.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ErrRestaurantNotFound
		}
		return fmt.Errorf("get restaurant: %w", err)
	}
	if owner != ownerID {
		return types.ErrForbidden
	}
	return nil
}
