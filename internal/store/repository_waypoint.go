package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/models"
)

var waypointColumns = []string{"id", "name", "pos_x", "pos_y"}

type waypointRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewWaypointRepository(db *DB, logger *logger.Logger) WaypointRepository {
	logger.Debug().Msg("creating waypoint repository")
	return &waypointRepository{
		db:     db,
		logger: logger,
	}
}

func scanWaypoint(row scanner) (models.Waypoint, error) {
	var (
		waypoint models.Waypoint
		name     sql.NullString
	)

	if err := row.Scan(&waypoint.ID, &name, &waypoint.PosX, &waypoint.PosY); err != nil {
		return models.Waypoint{}, err
	}
	if name.Valid {
		waypoint.Name = &name.String
	}

	return waypoint, nil
}

func (r *waypointRepository) one(ctx context.Context, fn string, query sq.Sqlizer) (models.Waypoint, error) {
	var waypoint models.Waypoint
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		waypoint, err = scanWaypoint(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("waypoint query failed")
		}
		return models.Waypoint{}, err
	}
	return waypoint, nil
}

func (r *waypointRepository) FindByID(ctx context.Context, id string) (models.Waypoint, error) {
	query := r.db.builder.
		Select(waypointColumns...).
		From(models.Waypoint{}.TableName()).
		Where(sq.Eq{"id": id})

	return r.one(ctx, "*waypointRepository.FindByID", query)
}

func (r *waypointRepository) List(ctx context.Context) ([]models.Waypoint, error) {
	query := r.db.builder.
		Select(waypointColumns...).
		From(models.Waypoint{}.TableName()).
		OrderBy("id")

	waypoints := make([]models.Waypoint, 0)
	err := r.db.queryRows(ctx, query, func(row scanner) error {
		waypoint, err := scanWaypoint(row)
		if err != nil {
			return err
		}
		waypoints = append(waypoints, waypoint)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*waypointRepository.List").Msg("error listing waypoints")
		return nil, err
	}

	return waypoints, nil
}

func (r *waypointRepository) Create(ctx context.Context, waypoint models.Waypoint) (models.Waypoint, error) {
	query := r.db.builder.
		Insert(waypoint.TableName()).
		Columns(waypointColumns...).
		Values(waypoint.ID, waypoint.Name, waypoint.PosX, waypoint.PosY).
		Suffix(returning(waypointColumns))

	return r.one(ctx, "*waypointRepository.Create", query)
}

// Update renames the waypoint. A nil name clears it.
func (r *waypointRepository) Update(ctx context.Context, waypoint models.Waypoint) (models.Waypoint, error) {
	query := r.db.builder.
		Update(waypoint.TableName()).
		Set("name", waypoint.Name).
		Where(sq.Eq{"id": waypoint.ID}).
		Suffix(returning(waypointColumns))

	return r.one(ctx, "*waypointRepository.Update", query)
}

func (r *waypointRepository) UpdatePosition(ctx context.Context, id string, posX, posY float64) (models.Waypoint, error) {
	query := r.db.builder.
		Update(models.Waypoint{}.TableName()).
		Set("pos_x", posX).
		Set("pos_y", posY).
		Where(sq.Eq{"id": id}).
		Suffix(returning(waypointColumns))

	return r.one(ctx, "*waypointRepository.UpdatePosition", query)
}

func (r *waypointRepository) Delete(ctx context.Context, id string) (models.Waypoint, error) {
	query := r.db.builder.
		Delete(models.Waypoint{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(waypointColumns))

	return r.one(ctx, "*waypointRepository.Delete", query)
}
