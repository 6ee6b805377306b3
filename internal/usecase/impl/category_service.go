package impl

import (
	"context"
	"log/slog"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/hierarchy"
	"market/internal/domain/policy"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every active category.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns one active category.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translateCategoryNotFound(err, domainerrors.ErrCategoryNotFound)
	}

	return category, nil
}

// CreateCategory validates the parent, if any, and persists a new active category.
func (srv *categoryService) CreateCategory(ctx context.Context, actor policy.Actor, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:     input.Name,
		ParentID: input.ParentID,
		IsActive: true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		if input.ParentID != nil {
			if err := validateParent(ctx, categoryRepo, *input.ParentID); err != nil {
				return err
			}
		}

		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create category transaction")
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID))

	return category, nil
}

// UpdateCategory replaces name and parent after the hierarchy guard passes.
func (srv *categoryService) UpdateCategory(ctx context.Context, actor policy.Actor, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateCategoryNotFound(err, domainerrors.ErrCategoryNotFound)
		}

		if input.ParentID != nil {
			if err := validateParent(ctx, categoryRepo, *input.ParentID); err != nil {
				return err
			}

			if err := checkHierarchy(ctx, categoryRepo, id, *input.ParentID); err != nil {
				return err
			}
		}

		category.Name = input.Name
		category.ParentID = input.ParentID

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		updated = category

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update category", slog.Int64("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update category transaction")
	}

	return updated, nil
}

// DeleteCategory soft-deletes the category and returns its final state.
func (srv *categoryService) DeleteCategory(ctx context.Context, actor policy.Actor, id int64) (*entity.Category, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	var deleted *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateCategoryNotFound(err, domainerrors.ErrCategoryNotFound)
		}

		if err := categoryRepo.SoftDelete(ctx, id); err != nil {
			return translateCategoryNotFound(err, domainerrors.ErrCategoryNotFound)
		}
		category.IsActive = false
		deleted = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute delete category transaction")
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return deleted, nil
}

func validateParent(ctx context.Context, categoryRepo repository.CategoryRepository, parentID int64) error {
	if _, err := categoryRepo.FindActiveByID(ctx, parentID); err != nil {
		return translateCategoryNotFound(err, domainerrors.ErrParentCategoryNotFound)
	}

	return nil
}

func checkHierarchy(ctx context.Context, categoryRepo repository.CategoryRepository, id, parentID int64) error {
	err := hierarchy.CheckNoCycle(ctx, categoryParents{repo: categoryRepo}, id, parentID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hierarchy.ErrSelfParent):
		return domainerrors.ErrSelfParent
	case errors.Is(err, hierarchy.ErrCircularReference):
		return domainerrors.ErrCircularReference
	default:
		return errors.Wrap(err, "failed to check category hierarchy")
	}
}

// translateCategoryNotFound maps the repository sentinel to notFound and wraps anything else.
func translateCategoryNotFound(err error, notFound error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return notFound
	}

	return errors.Wrap(err, "failed to load category")
}

// categoryParents walks the stored tree one active row at a time.
type categoryParents struct {
	repo repository.CategoryRepository
}

func (p categoryParents) Parent(ctx context.Context, id int64) (*int64, bool, error) {
	category, err := p.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return category.ParentID, true, nil
}
