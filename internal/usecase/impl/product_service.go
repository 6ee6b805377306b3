package impl

import (
	"context"
	"log/slog"
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

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	qrService    service.QRCodeService
	now          func() time.Time
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		qrService:    params.QRService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	if _, err := srv.categoryRepo.FindActiveByID(ctx, categoryID); err != nil {
		return nil, translateCategoryNotFound(err, domainerrors.ErrProductCategoryNotFound)
	}

	products, err := srv.productRepo.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translateProductNotFound(err)
	}

	return product, nil
}

// CreateProduct lists a new product for the acting seller.
func (srv *productService) CreateProduct(ctx context.Context, actor policy.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleSeller)); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	product := &entity.Product{
		SellerID:  actor.UserID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(product, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := validateCategory(ctx, repoFactory.NewCategoryRepository(), input.CategoryID); err != nil {
			return err
		}

		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Int64("sellerID", actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("sellerID", actor.UserID))

	return product, nil
}

// UpdateProduct rewrites the seller-editable fields of an owned product.
func (srv *productService) UpdateProduct(ctx context.Context, actor policy.Actor, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleSeller)); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateProductNotFound(err)
		}

		ownership := policy.Require(entity.RoleSeller).OwnedBy(product.SellerID, domainerrors.ErrProductUpdateForbidden)
		if err := policy.Check(actor, ownership); err != nil {
			return err
		}

		if err := validateCategory(ctx, repoFactory.NewCategoryRepository(), input.CategoryID); err != nil {
			return err
		}

		applyProductInput(product, input)
		product.UpdatedAt = srv.now()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Int64("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update product transaction")
	}

	return updated, nil
}

// DeleteProduct soft-deletes an owned product. Its reviews are left as they are.
func (srv *productService) DeleteProduct(ctx context.Context, actor policy.Actor, id int64) (*entity.Product, error) {
	if err := policy.Check(actor, policy.Require(entity.RoleSeller)); err != nil {
		return nil, err
	}

	var deleted *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateProductNotFound(err)
		}

		ownership := policy.Require(entity.RoleSeller).OwnedBy(product.SellerID, domainerrors.ErrProductDeleteForbidden)
		if err := policy.Check(actor, ownership); err != nil {
			return err
		}

		if err := productRepo.SoftDelete(ctx, id); err != nil {
			return translateProductNotFound(err)
		}
		product.IsActive = false
		deleted = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute delete product transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return deleted, nil
}

// ProductQRCode renders the share code of an active product.
func (srv *productService) ProductQRCode(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case !input.Price.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than 0")
	case !input.Price.Equal(input.Price.Round(2)):
		return domainerrors.ErrValidationFailed.WithDetails("price must have at most 2 decimal places")
	case input.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
}

func validateCategory(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID int64) error {
	if _, err := categoryRepo.FindActiveByID(ctx, categoryID); err != nil {
		return translateCategoryNotFound(err, domainerrors.ErrProductCategoryNotFound)
	}

	return nil
}

func translateProductNotFound(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to load product")
}
