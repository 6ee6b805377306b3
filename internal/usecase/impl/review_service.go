package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/policy"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	aggregator  usecase.RatingAggregator
	notifier    service.NotificationService
	now         func() time.Time
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Aggregator  usecase.RatingAggregator
	Notifier    service.NotificationService
	Logger      *slog.Logger
}

// NewReviewService creates a new review service
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		aggregator:  params.Aggregator,
		notifier:    params.Notifier,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) ListProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	if _, err := srv.productRepo.FindActiveByID(ctx, productID); err != nil {
		return nil, translateProductNotFound(err)
	}

	reviews, err := srv.reviewRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// CreateReview stores the buyer's review, recomputes the product rating and
// notifies the seller.
func (srv *reviewService) CreateReview(ctx context.Context, actor policy.Actor, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleBuyer)); err != nil {
		return nil, err
	}
	if err := validateGrade(input.Grade); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:      actor.UserID,
		ProductID:   input.ProductID,
		Comment:     input.Comment,
		Grade:       input.Grade,
		CommentDate: srv.now(),
		IsActive:    true,
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		var err error
		product, err = repoFactory.NewProductRepository().FindActiveByID(ctx, input.ProductID)
		if err != nil {
			return translateProductNotFound(err)
		}

		_, err = reviewRepo.FindActiveByUserAndProduct(ctx, actor.UserID, input.ProductID)
		switch {
		case err == nil:
			return domainerrors.ErrDuplicateReview
		case !errors.Is(err, repository.ErrReviewNotFound):
			return errors.Wrap(err, "failed to look up existing review")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create review transaction")
	}

	if err := srv.recompute(ctx, review.ProductID, TriggerReviewCreated); err != nil {
		return nil, err
	}

	srv.notifySeller(ctx, product, review)

	return review, nil
}

// UpdateReview rewrites comment and grade of the buyer's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, actor policy.Actor, id int64, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleBuyer)); err != nil {
		return nil, err
	}
	if err := validateGrade(input.Grade); err != nil {
		return nil, err
	}

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateReviewNotFound(err)
		}

		ownership := policy.Require(entity.RoleBuyer).OwnedBy(review.UserID, domainerrors.ErrReviewUpdateForbidden)
		if err := policy.Check(actor, ownership); err != nil {
			return err
		}

		if input.ProductID != review.ProductID {
			return domainerrors.ErrProductReassignmentForbidden
		}

		review.Comment = input.Comment
		review.Grade = input.Grade

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		updated = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update review", slog.Int64("reviewID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update review transaction")
	}

	if err := srv.recompute(ctx, updated.ProductID, TriggerReviewUpdated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteReview soft-deletes any review. Admin only.
func (srv *reviewService) DeleteReview(ctx context.Context, actor policy.Actor, id int64) (*entity.Review, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	var deleted *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateReviewNotFound(err)
		}

		if err := reviewRepo.SoftDelete(ctx, id); err != nil {
			return translateReviewNotFound(err)
		}
		review.IsActive = false
		deleted = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute delete review transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.Int64("reviewID", id), slog.Int64("actorID", actor.UserID))

	if err := srv.recompute(ctx, deleted.ProductID, TriggerReviewDeleted); err != nil {
		return nil, err
	}

	return deleted, nil
}

// recompute runs after the review transaction has committed. A failure leaves
// the review change in place and surfaces as ErrRatingRecomputeFailed.
func (srv *reviewService) recompute(ctx context.Context, productID int64, trigger string) error {
	if _, err := srv.aggregator.Recompute(ctx, productID, trigger); err != nil {
		srv.log(ctx).Error("Rating recompute failed after committed review change",
			slog.Int64("productID", productID),
			slog.String("trigger", trigger),
			slog.Any("error", err),
		)

		return domainerrors.ErrRatingRecomputeFailed.WrapMessage(err.Error())
	}

	return nil
}

func (srv *reviewService) notifySeller(ctx context.Context, product *entity.Product, review *entity.Review) {
	data := map[string]string{
		"product_id": strconv.FormatInt(product.ID, 10),
		"review_id":  strconv.FormatInt(review.ID, 10),
		"grade":      strconv.Itoa(review.Grade),
	}
	body := fmt.Sprintf("%s received a %d-star review", product.Name, review.Grade)

	if err := srv.notifier.SendTopicNotification(ctx, service.SellerTopic(product.SellerID), "New review", body, data); err != nil {
		srv.log(ctx).Warn("Failed to notify seller of new review",
			slog.Int64("sellerID", product.SellerID),
			slog.Int64("reviewID", review.ID),
			slog.Any("error", err),
		)
	}
}

func validateGrade(grade int) error {
	if !entity.ValidGrade(grade) {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("grade must be between %d and %d", entity.MinGrade, entity.MaxGrade),
		)
	}

	return nil
}

func translateReviewNotFound(err error) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrReviewNotFound
	}

	return errors.Wrap(err, "failed to load review")
}
