package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/models"
)

var anchorColumns = []string{"id", "name", "address", "height", "pos_x", "pos_y"}

type anchorRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAnchorRepository(db *DB, logger *logger.Logger) AnchorRepository {
	logger.Debug().Msg("creating anchor repository")
	return &anchorRepository{
		db:     db,
		logger: logger,
	}
}

func scanAnchor(row scanner) (models.Anchor, error) {
	var anchor models.Anchor
	err := row.Scan(&anchor.ID, &anchor.Name, &anchor.Address, &anchor.Height, &anchor.PosX, &anchor.PosY)
	return anchor, err
}

func (r *anchorRepository) one(ctx context.Context, fn string, query sq.Sqlizer) (models.Anchor, error) {
	var anchor models.Anchor
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		anchor, err = scanAnchor(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("anchor query failed")
		}
		return models.Anchor{}, err
	}
	return anchor, nil
}

func (r *anchorRepository) FindByID(ctx context.Context, id string) (models.Anchor, error) {
	query := r.db.builder.
		Select(anchorColumns...).
		From(models.Anchor{}.TableName()).
		Where(sq.Eq{"id": id})

	return r.one(ctx, "*anchorRepository.FindByID", query)
}

func (r *anchorRepository) List(ctx context.Context) ([]models.Anchor, error) {
	query := r.db.builder.
		Select(anchorColumns...).
		From(models.Anchor{}.TableName()).
		OrderBy("name")

	anchors := make([]models.Anchor, 0)
	err := r.db.queryRows(ctx, query, func(row scanner) error {
		anchor, err := scanAnchor(row)
		if err != nil {
			return err
		}
		anchors = append(anchors, anchor)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*anchorRepository.List").Msg("error listing anchors")
		return nil, err
	}

	return anchors, nil
}

func (r *anchorRepository) Create(ctx context.Context, anchor models.Anchor) (models.Anchor, error) {
	query := r.db.builder.
		Insert(anchor.TableName()).
		Columns(anchorColumns...).
		Values(anchor.ID, anchor.Name, anchor.Address, anchor.Height, anchor.PosX, anchor.PosY).
		Suffix(returning(anchorColumns))

	return r.one(ctx, "*anchorRepository.Create", query)
}

// Update changes name, hardware address and mounting height.
func (r *anchorRepository) Update(ctx context.Context, anchor models.Anchor) (models.Anchor, error) {
	query := r.db.builder.
		Update(anchor.TableName()).
		Set("name", anchor.Name).
		Set("address", anchor.Address).
		Set("height", anchor.Height).
		Where(sq.Eq{"id": anchor.ID}).
		Suffix(returning(anchorColumns))

	return r.one(ctx, "*anchorRepository.Update", query)
}

func (r *anchorRepository) UpdatePosition(ctx context.Context, id string, posX, posY float64) (models.Anchor, error) {
	query := r.db.builder.
		Update(models.Anchor{}.TableName()).
		Set("pos_x", posX).
		Set("pos_y", posY).
		Where(sq.Eq{"id": id}).
		Suffix(returning(anchorColumns))

	return r.one(ctx, "*anchorRepository.UpdatePosition", query)
}

func (r *anchorRepository) Delete(ctx context.Context, id string) (models.Anchor, error) {
	query := r.db.builder.
		Delete(models.Anchor{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(anchorColumns))

	return r.one(ctx, "*anchorRepository.Delete", query)
}
