package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the catalog tree
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CategoryRequest is the body of create and update. A null parent_id makes a root.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
	IsActive bool   `json:"is_active"`
}

func toCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}

func toCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}

	return out
}

// List returns every active category
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(categories))
}

// Get returns one active category
func (h *CategoryHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// Create handles category creation
func (h *CategoryHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req, "Invalid category input"); !ok {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), actor, &usecase.CategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

// Update handles category replacement
func (h *CategoryHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req, "Invalid category input"); !ok {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), actor, id, &usecase.CategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// Delete handles category soft deletion
func (h *CategoryHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}

	category, err := h.categoryUC.DeleteCategory(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}
