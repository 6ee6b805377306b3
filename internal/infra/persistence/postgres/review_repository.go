package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Review, error) {
	reviewM, err := firstActive[model.ReviewModel](ctx, repo.db, id, repository.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	return toReviewDomain(reviewM), nil
}

func (repo *reviewRepository) FindActiveByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND is_active = ?", userID, productID, true).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and product")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) ListActive(ctx context.Context) ([]*entity.Review, error) {
	rows, err := listActive[model.ReviewModel](ctx, repo.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return mapSlice(rows, toReviewDomain), nil
}

func (repo *reviewRepository) ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	rows, err := listActive[model.ReviewModel](ctx, repo.db, "product_id = ?", productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list reviews of product %d", productID)
	}

	return mapSlice(rows, toReviewDomain), nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReview.WrapMessage("active review already stored")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product reference rejected by storage")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("grade must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// Update writes comment and grade only; product_id is immutable.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where(activeByID, review.ID, true).
		Updates(map[string]any{
			"comment": review.Comment,
			"grade":   review.Grade,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("grade must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete[model.ReviewModel](ctx, repo.db, id, repository.ErrReviewNotFound)
}

// AverageActiveGrade returns AVG(grade) over active reviews, 0 when there are none.
func (repo *reviewRepository) AverageActiveGrade(ctx context.Context, productID int64) (float64, error) {
	var avg float64
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(grade), 0)").
		Where("product_id = ? AND is_active = ?", productID, true).
		Scan(&avg).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to average grades of product %d", productID)
	}

	return avg, nil
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:          m.ID,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		Comment:     m.Comment,
		Grade:       m.Grade,
		CommentDate: m.CommentDate,
		IsActive:    m.IsActive,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		Grade:       r.Grade,
		CommentDate: r.CommentDate,
		IsActive:    r.IsActive,
	}
}
