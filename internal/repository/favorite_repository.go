package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/route-service/internal/domain"
)

// FavoriteRepository encapsulates favorite-route persistence.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.FavoriteRoute) error
	Delete(ctx context.Context, routeID, userID string) error
	ListRouteIDs(ctx context.Context, userID string) ([]string, error)
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository instantiates repository.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.FavoriteRoute) error {
	const query = `
        INSERT INTO favorite_routes (id, route_id, user_id, added_at)
        VALUES ($1,$2,$3,$4)`

	_, err := r.pool.Exec(ctx, query,
		favorite.ID,
		favorite.RouteID,
		favorite.UserID,
		favorite.AddedAt,
	)
	return err
}

func (r *favoriteRepository) Delete(ctx context.Context, routeID, userID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM favorite_routes WHERE route_id=$1 AND user_id=$2`,
		routeID, userID,
	)
	return err
}

func (r *favoriteRepository) ListRouteIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT route_id FROM favorite_routes WHERE user_id=$1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
