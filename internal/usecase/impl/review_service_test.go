package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	aggregator  *mockUsecase.MockRatingAggregator
	notifier    *mockSvc.MockNotificationService
	txFactory   *mockRepo.MockRepositoryFactory
	txReviews   *mockRepo.MockReviewRepository
	txProducts  *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	aggregator := mockUsecase.NewMockRatingAggregator(t)
	notifier := mockSvc.NewMockNotificationService(t)

	svc := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		Aggregator:  aggregator,
		Notifier:    notifier,
		Logger:      newDiscardLogger(),
	})
	svc.(*reviewService).now = fixedClock

	return reviewServiceFixtures{
		service:     svc,
		txManager:   txManager,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		aggregator:  aggregator,
		notifier:    notifier,
		txFactory:   mockRepo.NewMockRepositoryFactory(t),
		txReviews:   mockRepo.NewMockReviewRepository(t),
		txProducts:  mockRepo.NewMockProductRepository(t),
	}
}

func (fx reviewServiceFixtures) expectTx() {
	fx.txFactory.EXPECT().NewReviewRepository().Return(fx.txReviews).Maybe()
	fx.txFactory.EXPECT().NewProductRepository().Return(fx.txProducts).Maybe()
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runWith(fx.txFactory))
}

func buyersReview() *entity.Review {
	return &entity.Review{
		ID:        50,
		UserID:    buyerActor.UserID,
		ProductID: 30,
		Comment:   strPtr("solid"),
		Grade:     4,
		IsActive:  true,
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	fx.expectTx()
	input := &usecase.ReviewInput{ProductID: 30, Comment: strPtr("great"), Grade: 5}

	fx.txProducts.EXPECT().FindActiveByID(mock.Anything, int64(30)).Return(ownedProduct(), nil)
	fx.txReviews.EXPECT().FindActiveByUserAndProduct(mock.Anything, buyerActor.UserID, int64(30)).Return(nil, repository.ErrReviewNotFound)
	fx.txReviews.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, r *entity.Review) { r.ID = 50 }).
		Return(nil)
	fx.aggregator.EXPECT().Recompute(mock.Anything, int64(30), TriggerReviewCreated).Return(5.0, nil)
	fx.notifier.EXPECT().
		SendTopicNotification(mock.Anything, "seller-2", "New review", mock.AnythingOfType("string"), map[string]string{
			"product_id": "30",
			"review_id":  "50",
			"grade":      "5",
		}).
		Return(nil)

	review, err := fx.service.CreateReview(context.Background(), buyerActor, input)

	require.NoError(t, err)
	assert.Equal(t, int64(50), review.ID)
	assert.Equal(t, buyerActor.UserID, review.UserID)
	assert.Equal(t, fixedNow, review.CommentDate)
	assert.True(t, review.IsActive)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	fx.expectTx()

	fx.txProducts.EXPECT().FindActiveByID(mock.Anything, int64(30)).Return(ownedProduct(), nil)
	fx.txReviews.EXPECT().FindActiveByUserAndProduct(mock.Anything, buyerActor.UserID, int64(30)).Return(buyersReview(), nil)

	_, err := fx.service.CreateReview(context.Background(), buyerActor, &usecase.ReviewInput{ProductID: 30, Grade: 3})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
	fx.txReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.aggregator.AssertNotCalled(t, "Recompute", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	t.Run("inactive product", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		fx.txProducts.EXPECT().FindActiveByID(mock.Anything, int64(30)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.CreateReview(context.Background(), buyerActor, &usecase.ReviewInput{ProductID: 30, Grade: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("grade out of range", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), buyerActor, &usecase.ReviewInput{ProductID: 30, Grade: 6})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("seller cannot review", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), sellerActor, &usecase.ReviewInput{ProductID: 30, Grade: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestReviewService_CreateReview_RecomputeFailureIsReported(t *testing.T) {
	fx := createTestReviewService(t)
	fx.expectTx()

	fx.txProducts.EXPECT().FindActiveByID(mock.Anything, int64(30)).Return(ownedProduct(), nil)
	fx.txReviews.EXPECT().FindActiveByUserAndProduct(mock.Anything, buyerActor.UserID, int64(30)).Return(nil, repository.ErrReviewNotFound)
	fx.txReviews.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.aggregator.EXPECT().Recompute(mock.Anything, int64(30), TriggerReviewCreated).Return(0.0, errors.New("deadlock detected"))

	review, err := fx.service.CreateReview(context.Background(), buyerActor, &usecase.ReviewInput{ProductID: 30, Grade: 3})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrRatingRecomputeFailed))
	fx.notifier.AssertNotCalled(t, "SendTopicNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_CreateReview_NotificationFailureIsIgnored(t *testing.T) {
	fx := createTestReviewService(t)
	fx.expectTx()

	fx.txProducts.EXPECT().FindActiveByID(mock.Anything, int64(30)).Return(ownedProduct(), nil)
	fx.txReviews.EXPECT().FindActiveByUserAndProduct(mock.Anything, buyerActor.UserID, int64(30)).Return(nil, repository.ErrReviewNotFound)
	fx.txReviews.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.aggregator.EXPECT().Recompute(mock.Anything, int64(30), TriggerReviewCreated).Return(3.0, nil)
	fx.notifier.EXPECT().
		SendTopicNotification(mock.Anything, "seller-2", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	review, err := fx.service.CreateReview(context.Background(), buyerActor, &usecase.ReviewInput{ProductID: 30, Grade: 3})

	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_UpdateReview(t *testing.T) {
	t.Run("owner updates comment and grade", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		fx.txReviews.EXPECT().FindActiveByID(mock.Anything, int64(50)).Return(buyersReview(), nil)
		fx.txReviews.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
				return r.Grade == 2 && r.Comment != nil && *r.Comment == "changed my mind"
			})).
			Return(nil)
		fx.aggregator.EXPECT().Recompute(mock.Anything, int64(30), TriggerReviewUpdated).Return(2.0, nil)

		review, err := fx.service.UpdateReview(context.Background(), buyerActor, 50, &usecase.ReviewInput{
			ProductID: 30,
			Comment:   strPtr("changed my mind"),
			Grade:     2,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, review.Grade)
	})

	t.Run("another buyer", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		review := buyersReview()
		review.UserID = 88
		fx.txReviews.EXPECT().FindActiveByID(mock.Anything, int64(50)).Return(review, nil)

		_, err := fx.service.UpdateReview(context.Background(), buyerActor, 50, &usecase.ReviewInput{ProductID: 30, Grade: 2})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewUpdateForbidden))
		fx.txReviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("product reassignment", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		fx.txReviews.EXPECT().FindActiveByID(mock.Anything, int64(50)).Return(buyersReview(), nil)

		_, err := fx.service.UpdateReview(context.Background(), buyerActor, 50, &usecase.ReviewInput{ProductID: 31, Grade: 2})

		assert.True(t, errors.Is(err, domainerrors.ErrProductReassignmentForbidden))
		fx.aggregator.AssertNotCalled(t, "Recompute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing review", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		fx.txReviews.EXPECT().FindActiveByID(mock.Anything, int64(50)).Return(nil, repository.ErrReviewNotFound)

		_, err := fx.service.UpdateReview(context.Background(), buyerActor, 50, &usecase.ReviewInput{ProductID: 30, Grade: 2})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("admin soft deletes and recomputes", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.expectTx()
		fx.txReviews.EXPECT().FindActiveByID(mock.Anything, int64(50)).Return(buyersReview(), nil)
		fx.txReviews.EXPECT().SoftDelete(mock.Anything, int64(50)).Return(nil)
		fx.aggregator.EXPECT().Recompute(mock.Anything, int64(30), TriggerReviewDeleted).Return(0.0, nil)

		review, err := fx.service.DeleteReview(context.Background(), adminActor, 50)

		require.NoError(t, err)
		assert.False(t, review.IsActive)
	})

	t.Run("owner is not enough", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.DeleteReview(context.Background(), buyerActor, 50)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestReviewService_ListProductReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("active product", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindActiveByID(ctx, int64(30)).Return(ownedProduct(), nil)
		fx.reviewRepo.EXPECT().ListActiveByProduct(ctx, int64(30)).Return([]*entity.Review{buyersReview()}, nil)

		reviews, err := fx.service.ListProductReviews(ctx, 30)

		require.NoError(t, err)
		assert.Len(t, reviews, 1)
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindActiveByID(ctx, int64(30)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.ListProductReviews(ctx, 30)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}
