package handler

import (
	"log/slog"
	"net/http"
	"time"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest is the body of create and update
type ReviewRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Comment   *string `json:"comment" validate:"omitempty,max=1000"`
	Grade     int     `json:"grade" validate:"required,min=1,max=5"`
}

// ReviewResponse is the public view of a review
type ReviewResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Comment     *string   `json:"comment"`
	Grade       int       `json:"grade"`
	CommentDate time.Time `json:"comment_date"`
	IsActive    bool      `json:"is_active"`
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{
		ProductID: r.ProductID,
		Comment:   r.Comment,
		Grade:     r.Grade,
	}
}

func toReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		Grade:       r.Grade,
		CommentDate: r.CommentDate,
		IsActive:    r.IsActive,
	}
}

func toReviewResponses(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return out
}

// List returns every active review
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews))
}

// ListByProduct returns the active reviews of an active product
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews))
}

// Create posts the authenticated buyer's review
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req, "Invalid review input"); !ok {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// Update rewrites the buyer's own review
func (h *ReviewHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "review")
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req, "Invalid review input"); !ok {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// Delete soft-deletes a review
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "review")
	}

	review, err := h.reviewUC.DeleteReview(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}
