package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/route-service/internal/domain"
)

// RouteUpdate carries the optional fields of a partial route update. Nil
// fields are left untouched.
type RouteUpdate struct {
	Description   *string
	StartLocation *string
	EndLocation   *string
}

// RouteRepository encapsulates route persistence.
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Route, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Route, error)
	ListAll(ctx context.Context) ([]domain.Route, error)
	SearchByLocations(ctx context.Context, startLocation, endLocation string) ([]domain.Route, error)
	GetImage(ctx context.Context, id string) ([]byte, error)
	UpdateByID(ctx context.Context, id string, update RouteUpdate) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type routeRepository struct {
	pool *pgxpool.Pool
}

// NewRouteRepository instantiates repository.
func NewRouteRepository(pool *pgxpool.Pool) RouteRepository {
	return &routeRepository{pool: pool}
}

const routeColumns = `id, name, description, start_lat, start_lng, end_lat, end_lng,
               user_id, created_at, updated_at, start_location, end_location, finish_image`

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	const query = `
        INSERT INTO routes (id, name, description, start_lat, start_lng, end_lat, end_lng,
                            user_id, created_at, updated_at, start_location, end_location, finish_image)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	_, err := r.pool.Exec(ctx, query,
		route.ID,
		route.Name,
		route.Description,
		route.StartLat,
		route.StartLng,
		route.EndLat,
		route.EndLng,
		route.UserID,
		route.CreatedAt,
		route.UpdatedAt,
		route.StartLocation,
		route.EndLocation,
		route.FinishImage,
	)
	return err
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id=$1`

	var route domain.Route
	if err := r.pool.QueryRow(ctx, query, id).Scan(routeFields(&route)...); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = ANY($1)`
	return r.fetchMany(ctx, query, ids)
}

func (r *routeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE user_id=$1`
	return r.fetchMany(ctx, query, userID)
}

func (r *routeRepository) ListAll(ctx context.Context) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes`
	return r.fetchMany(ctx, query)
}

func (r *routeRepository) SearchByLocations(ctx context.Context, startLocation, endLocation string) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE start_location=$1 AND end_location=$2`
	return r.fetchMany(ctx, query, startLocation, endLocation)
}

func (r *routeRepository) GetImage(ctx context.Context, id string) ([]byte, error) {
	const query = `SELECT finish_image FROM routes WHERE id=$1`

	var image []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(&image); err != nil {
		return nil, err
	}
	return image, nil
}

// UpdateByID applies a partial update built from the non-nil fields.
func (r *routeRepository) UpdateByID(ctx context.Context, id string, update RouteUpdate) error {
	query, args := buildRouteUpdate(id, update)

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// buildRouteUpdate assembles the UPDATE statement column by column so
// absent fields never clobber stored values.
func buildRouteUpdate(id string, update RouteUpdate) (string, []any) {
	sets := []string{}
	args := []any{}

	if update.Description != nil {
		args = append(args, *update.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if update.StartLocation != nil {
		args = append(args, *update.StartLocation)
		sets = append(sets, fmt.Sprintf("start_location=$%d", len(args)))
	}
	if update.EndLocation != nil {
		args = append(args, *update.EndLocation)
		sets = append(sets, fmt.Sprintf("end_location=$%d", len(args)))
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE routes SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))
	return query, args
}

// DeleteByID removes the route together with its comments, points and
// favorite marks.
func (r *routeRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, query := range []string{
		`DELETE FROM comments WHERE route_id=$1`,
		`DELETE FROM route_points WHERE route_id=$1`,
		`DELETE FROM favorite_routes WHERE route_id=$1`,
	} {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return false, err
		}
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *routeRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Route, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := []domain.Route{}
	for rows.Next() {
		var route domain.Route
		if err := rows.Scan(routeFields(&route)...); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

func routeFields(route *domain.Route) []any {
	return []any{
		&route.ID,
		&route.Name,
		&route.Description,
		&route.StartLat,
		&route.StartLng,
		&route.EndLat,
		&route.EndLng,
		&route.UserID,
		&route.CreatedAt,
		&route.UpdatedAt,
		&route.StartLocation,
		&route.EndLocation,
		&route.FinishImage,
	}
}
