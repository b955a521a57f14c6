package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/models"
)

var tagColumns = []string{"id", "name", "address", "pos_x", "pos_y", "last_contact"}

type tagRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

func scanTag(row scanner) (models.Tag, error) {
	var (
		tag         models.Tag
		posX, posY  sql.NullFloat64
		lastContact sql.NullTime
	)

	if err := row.Scan(&tag.ID, &tag.Name, &tag.Address, &posX, &posY, &lastContact); err != nil {
		return models.Tag{}, err
	}

	if posX.Valid {
		tag.PosX = &posX.Float64
	}
	if posY.Valid {
		tag.PosY = &posY.Float64
	}
	if lastContact.Valid {
		t := lastContact.Time.UTC()
		tag.LastContact = &t
	}

	return tag, nil
}

func (r *tagRepository) one(ctx context.Context, fn string, query sq.Sqlizer) (models.Tag, error) {
	var tag models.Tag
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		tag, err = scanTag(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("tag query failed")
		}
		return models.Tag{}, err
	}
	return tag, nil
}

func (r *tagRepository) FindByID(ctx context.Context, id string) (models.Tag, error) {
	query := r.db.builder.
		Select(tagColumns...).
		From(models.Tag{}.TableName()).
		Where(sq.Eq{"id": id})

	return r.one(ctx, "*tagRepository.FindByID", query)
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	query := r.db.builder.
		Select(tagColumns...).
		From(models.Tag{}.TableName()).
		OrderBy("name")

	tags := make([]models.Tag, 0)
	err := r.db.queryRows(ctx, query, func(row scanner) error {
		tag, err := scanTag(row)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.List").Msg("error listing tags")
		return nil, err
	}

	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag models.Tag) (models.Tag, error) {
	query := r.db.builder.
		Insert(tag.TableName()).
		Columns(tagColumns...).
		Values(tag.ID, tag.Name, tag.Address, tag.PosX, tag.PosY, tag.LastContact).
		Suffix(returning(tagColumns))

	return r.one(ctx, "*tagRepository.Create", query)
}

// Update changes the name and hardware address of a tag. Position and last
// contact are owned by the hardware and are left untouched.
func (r *tagRepository) Update(ctx context.Context, tag models.Tag) (models.Tag, error) {
	query := r.db.builder.
		Update(tag.TableName()).
		Set("name", tag.Name).
		Set("address", tag.Address).
		Where(sq.Eq{"id": tag.ID}).
		Suffix(returning(tagColumns))

	return r.one(ctx, "*tagRepository.Update", query)
}

func (r *tagRepository) ReportPosition(ctx context.Context, address string, posX, posY float64, at time.Time) (models.Tag, error) {
	query := r.db.builder.
		Update(models.Tag{}.TableName()).
		Set("pos_x", posX).
		Set("pos_y", posY).
		Set("last_contact", at.UTC()).
		Where(sq.Eq{"address": address}).
		Suffix(returning(tagColumns))

	return r.one(ctx, "*tagRepository.ReportPosition", query)
}

func (r *tagRepository) Delete(ctx context.Context, id string) (models.Tag, error) {
	query := r.db.builder.
		Delete(models.Tag{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(tagColumns))

	return r.one(ctx, "*tagRepository.Delete", query)
}
