package impl

import (
	"context"
	"testing"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/service"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingAggregatorFixtures struct {
	aggregator *ratingAggregator
	txManager  *mockRepo.MockTransactionManager
	publisher  *mockSvc.MockEventPublisher
	txReviews  *mockRepo.MockReviewRepository
	txProducts *mockRepo.MockProductRepository
}

func createTestRatingAggregator(t *testing.T) ratingAggregatorFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	txProducts := mockRepo.NewMockProductRepository(t)

	txFactory.EXPECT().NewReviewRepository().Return(txReviews)
	txFactory.EXPECT().NewProductRepository().Return(txProducts).Maybe()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runWith(txFactory))

	agg := NewRatingAggregator(RatingAggregatorParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}).(*ratingAggregator)
	agg.now = fixedClock

	return ratingAggregatorFixtures{
		aggregator: agg,
		txManager:  txManager,
		publisher:  publisher,
		txReviews:  txReviews,
		txProducts: txProducts,
	}
}

func TestRatingAggregator_Recompute(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
	}{
		{name: "mean of active grades", avg: 3.5},
		{name: "no active reviews", avg: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRatingAggregator(t)
			ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

			fx.txReviews.EXPECT().AverageActiveGrade(ctx, int64(30)).Return(tt.avg, nil)
			fx.txProducts.EXPECT().UpdateRating(ctx, int64(30), tt.avg).Return(nil)
			fx.publisher.EXPECT().
				PublishRatingRecomputed(ctx, &service.RatingRecomputedEvent{
					RequestID:    "req-1",
					ProductID:    30,
					Rating:       tt.avg,
					Trigger:      TriggerReviewUpdated,
					RecomputedAt: fixedNow,
				}).
				Return(nil)

			rating, err := fx.aggregator.Recompute(ctx, 30, TriggerReviewUpdated)

			require.NoError(t, err)
			assert.Equal(t, tt.avg, rating)
		})
	}
}

func TestRatingAggregator_Recompute_StoreFailure(t *testing.T) {
	fx := createTestRatingAggregator(t)
	ctx := context.Background()
	storeErr := errors.New("serialization failure")

	fx.txReviews.EXPECT().AverageActiveGrade(ctx, int64(30)).Return(4.0, nil)
	fx.txProducts.EXPECT().UpdateRating(ctx, int64(30), 4.0).Return(storeErr)

	_, err := fx.aggregator.Recompute(ctx, 30, TriggerReviewCreated)

	assert.True(t, errors.Is(err, storeErr))
	fx.publisher.AssertNotCalled(t, "PublishRatingRecomputed", mock.Anything, mock.Anything)
}

func TestRatingAggregator_Recompute_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestRatingAggregator(t)
	ctx := context.Background()

	fx.txReviews.EXPECT().AverageActiveGrade(ctx, int64(30)).Return(4.0, nil)
	fx.txProducts.EXPECT().UpdateRating(ctx, int64(30), 4.0).Return(nil)
	fx.publisher.EXPECT().PublishRatingRecomputed(ctx, mock.Anything).Return(errors.New("broker down"))

	rating, err := fx.aggregator.Recompute(ctx, 30, TriggerReviewCreated)

	require.NoError(t, err)
	assert.Equal(t, 4.0, rating)
}
