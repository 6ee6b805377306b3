package postgres

import (
	"context"

	"market/internal/errors"

	"gorm.io/gorm"
)

const activeByID = "id = ? AND is_active = ?"

// firstActive loads the row with the given primary key when it is active.
// Missing and soft-deleted rows both yield notFound.
func firstActive[M any](ctx context.Context, db *gorm.DB, id int64, notFound error) (*M, error) {
	var m M
	if err := db.WithContext(ctx).Where(activeByID, id, true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, errors.Wrapf(err, "failed to load active record %d", id)
	}

	return &m, nil
}

// listActive loads every active row matching the optional extra condition, ordered by id.
func listActive[M any](ctx context.Context, db *gorm.DB, conds ...any) ([]M, error) {
	query := db.WithContext(ctx).Where("is_active = ?", true)
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}

	var rows []M
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active records")
	}

	return rows, nil
}

// softDelete flips is_active to false on an active row. Rows are never removed.
func softDelete[M any](ctx context.Context, db *gorm.DB, id int64, notFound error) error {
	result := db.WithContext(ctx).Model(new(M)).Where(activeByID, id, true).Update("is_active", false)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to soft delete record %d", id)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func mapSlice[M any, E any](rows []M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for i := range rows {
		out = append(out, fn(&rows[i]))
	}

	return out
}
