package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/route-service/internal/domain"
)

// RoutePointRepository encapsulates waypoint persistence.
type RoutePointRepository interface {
	Create(ctx context.Context, point *domain.RoutePoint) error
	ListByRoute(ctx context.Context, routeID string) ([]domain.RoutePoint, error)
}

type routePointRepository struct {
	pool *pgxpool.Pool
}

// NewRoutePointRepository instantiates repository.
func NewRoutePointRepository(pool *pgxpool.Pool) RoutePointRepository {
	return &routePointRepository{pool: pool}
}

func (r *routePointRepository) Create(ctx context.Context, point *domain.RoutePoint) error {
	const query = `
        INSERT INTO route_points (id, route_id, name, description, latitude, longitude, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, query,
		point.ID,
		point.RouteID,
		point.Name,
		point.Description,
		point.Latitude,
		point.Longitude,
		point.CreatedAt,
	)
	return err
}

func (r *routePointRepository) ListByRoute(ctx context.Context, routeID string) ([]domain.RoutePoint, error) {
	const query = `
        SELECT id, route_id, name, description, latitude, longitude, created_at
        FROM route_points WHERE route_id=$1`

	rows, err := r.pool.Query(ctx, query, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []domain.RoutePoint{}
	for rows.Next() {
		var point domain.RoutePoint
		if err := rows.Scan(
			&point.ID,
			&point.RouteID,
			&point.Name,
			&point.Description,
			&point.Latitude,
			&point.Longitude,
			&point.CreatedAt,
		); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}
