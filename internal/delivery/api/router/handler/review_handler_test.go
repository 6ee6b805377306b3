package handler

import (
	"net/http"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/policy"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_Create(t *testing.T) {
	buyer := policy.Actor{UserID: 3, Role: entity.RoleBuyer}
	comment := "Solid build"

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockReviewUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"product_id":11,"comment":"Solid build","grade":4}`,
			setup: func(uc *mockUsecase.MockReviewUsecase) {
				uc.EXPECT().CreateReview(mock.Anything, buyer, &usecase.ReviewInput{ProductID: 11, Comment: &comment, Grade: 4}).
					Return(&entity.Review{ID: 21, UserID: buyer.UserID, ProductID: 11, Comment: &comment, Grade: 4, IsActive: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "grade out of range",
			body:       `{"product_id":11,"grade":6}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "second review",
			body: `{"product_id":11,"grade":2}`,
			setup: func(uc *mockUsecase.MockReviewUsecase) {
				uc.EXPECT().CreateReview(mock.Anything, buyer, mock.Anything).Return(nil, domainerrors.ErrDuplicateReview)
			},
			wantStatus: domainerrors.ErrDuplicateReview.HTTPCode(),
			wantCode:   domainerrors.ErrDuplicateReview.ErrorCode(),
		},
		{
			name: "recompute failed",
			body: `{"product_id":11,"grade":2}`,
			setup: func(uc *mockUsecase.MockReviewUsecase) {
				uc.EXPECT().CreateReview(mock.Anything, buyer, mock.Anything).
					Return(nil, domainerrors.ErrRatingRecomputeFailed.WrapMessage("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "RATING_RECOMPUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockReviewUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: newDiscardLogger()})

			c, rec := newRequest(http.MethodPost, "/api/v1/reviews", tt.body)
			withUser(c, buyer.UserID, buyer.Role)

			require.NoError(t, h.Create(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				info := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, info.Code)
				assert.NotContains(t, rec.Body.String(), "db down")

				return
			}

			got := decodeData[ReviewResponse](t, rec)
			assert.Equal(t, int64(21), got.ID)
			assert.Equal(t, 4, got.Grade)
		})
	}
}

func TestReviewHandler_UpdateReassignment(t *testing.T) {
	buyer := policy.Actor{UserID: 3, Role: entity.RoleBuyer}
	uc := mockUsecase.NewMockReviewUsecase(t)
	uc.EXPECT().UpdateReview(mock.Anything, buyer, int64(21), mock.Anything).
		Return(nil, domainerrors.ErrProductReassignmentForbidden)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: newDiscardLogger()})

	c, rec := newRequest(http.MethodPut, "/api/v1/reviews/21", `{"product_id":12,"grade":3}`, "id", "21")
	withUser(c, buyer.UserID, buyer.Role)

	require.NoError(t, h.Update(c))

	assert.Equal(t, domainerrors.ErrProductReassignmentForbidden.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrProductReassignmentForbidden.ErrorCode(), decodeError(t, rec).Code)
}

func TestReviewHandler_ListByProduct(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	uc.EXPECT().ListProductReviews(mock.Anything, int64(11)).Return([]*entity.Review{
		{ID: 21, UserID: 3, ProductID: 11, Grade: 4, IsActive: true},
	}, nil)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: newDiscardLogger()})

	c, rec := newRequest(http.MethodGet, "/api/v1/products/11/reviews", "", "id", "11")
	require.NoError(t, h.ListByProduct(c))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]ReviewResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, int64(21), got[0].ID)
}

func TestReviewHandler_DeleteRequiresActor(t *testing.T) {
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: mockUsecase.NewMockReviewUsecase(t), Logger: newDiscardLogger()})

	c, rec := newRequest(http.MethodDelete, "/api/v1/reviews/21", "", "id", "21")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
