package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/policy"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor  = policy.Actor{UserID: 1, Role: entity.RoleAdmin}
	sellerActor = policy.Actor{UserID: 2, Role: entity.RoleSeller}
	buyerActor  = policy.Actor{UserID: 3, Role: entity.RoleBuyer}
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	txFactory    *mockRepo.MockRepositoryFactory
	txCategories *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      svc,
		txManager:    txManager,
		categoryRepo: categoryRepo,
		txFactory:    mockRepo.NewMockRepositoryFactory(t),
		txCategories: mockRepo.NewMockCategoryRepository(t),
	}
}

// expectTx routes the next transaction to the fixture's transactional category repository.
func (fx categoryServiceFixtures) expectTx() {
	fx.txFactory.EXPECT().NewCategoryRepository().Return(fx.txCategories)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runWith(fx.txFactory))
}

// seedTree makes FindActiveByID answer from the given active categories.
func (fx categoryServiceFixtures) seedTree(categories ...*entity.Category) {
	byID := make(map[int64]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	fx.txCategories.EXPECT().
		FindActiveByID(mock.Anything, mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, id int64) (*entity.Category, error) {
			c, ok := byID[id]
			if !ok {
				return nil, repository.ErrCategoryNotFound
			}
			copied := *c

			return &copied, nil
		}).
		Maybe()
}

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("root category", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.expectTx()
		fx.txCategories.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Category")).
			Run(func(_ context.Context, c *entity.Category) { c.ID = 10 }).
			Return(nil)

		category, err := fx.service.CreateCategory(context.Background(), adminActor, &usecase.CategoryInput{Name: "Books"})

		require.NoError(t, err)
		assert.Equal(t, int64(10), category.ID)
		assert.True(t, category.IsActive)
		assert.Nil(t, category.ParentID)
	})

	t.Run("child of active parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.expectTx()
		fx.seedTree(&entity.Category{ID: 1, Name: "Root", IsActive: true})
		fx.txCategories.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil)

		category, err := fx.service.CreateCategory(context.Background(), adminActor, &usecase.CategoryInput{Name: "Child", ParentID: int64Ptr(1)})

		require.NoError(t, err)
		assert.Equal(t, int64Ptr(1), category.ParentID)
	})

	t.Run("missing parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.expectTx()
		fx.seedTree()

		_, err := fx.service.CreateCategory(context.Background(), adminActor, &usecase.CategoryInput{Name: "Child", ParentID: int64Ptr(404)})

		assert.True(t, errors.Is(err, domainerrors.ErrParentCategoryNotFound))
		fx.txCategories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non admin", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.CreateCategory(context.Background(), sellerActor, &usecase.CategoryInput{Name: "Books"})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestCategoryService_UpdateCategory_Hierarchy(t *testing.T) {
	// 1 -> 2 -> 3 (3 is the deepest), 4 is a separate root, 5 is inactive.
	tree := []*entity.Category{
		{ID: 1, Name: "Root", IsActive: true},
		{ID: 2, Name: "Mid", ParentID: int64Ptr(1), IsActive: true},
		{ID: 3, Name: "Leaf", ParentID: int64Ptr(2), IsActive: true},
		{ID: 4, Name: "Other", IsActive: true},
	}

	tests := []struct {
		name     string
		id       int64
		parentID *int64
		wantErr  error
	}{
		{name: "move under another root", id: 2, parentID: int64Ptr(4)},
		{name: "detach to root", id: 3, parentID: nil},
		{name: "self parent", id: 2, parentID: int64Ptr(2), wantErr: domainerrors.ErrSelfParent},
		{name: "under own child", id: 2, parentID: int64Ptr(3), wantErr: domainerrors.ErrCircularReference},
		{name: "root under deepest descendant", id: 1, parentID: int64Ptr(3), wantErr: domainerrors.ErrCircularReference},
		{name: "inactive parent", id: 2, parentID: int64Ptr(5), wantErr: domainerrors.ErrParentCategoryNotFound},
		{name: "missing category", id: 99, parentID: int64Ptr(1), wantErr: domainerrors.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCategoryService(t)
			fx.expectTx()
			fx.seedTree(tree...)

			if tt.wantErr == nil {
				fx.txCategories.EXPECT().
					Update(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
						return c.ID == tt.id && c.Name == "Renamed"
					})).
					Return(nil)
			}

			category, err := fx.service.UpdateCategory(context.Background(), adminActor, tt.id, &usecase.CategoryInput{
				Name:     "Renamed",
				ParentID: tt.parentID,
			})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				fx.txCategories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.parentID, category.ParentID)
			assert.Equal(t, "Renamed", category.Name)
		})
	}
}

func TestCategoryService_UpdateCategory_LookupFailureDuringWalk(t *testing.T) {
	fx := createTestCategoryService(t)
	fx.expectTx()

	storageErr := errors.New("connection reset")
	fx.txCategories.EXPECT().FindActiveByID(mock.Anything, int64(2)).Return(&entity.Category{ID: 2, IsActive: true}, nil)
	fx.txCategories.EXPECT().FindActiveByID(mock.Anything, int64(4)).Return(&entity.Category{ID: 4, IsActive: true}, nil).Once()
	fx.txCategories.EXPECT().FindActiveByID(mock.Anything, int64(4)).Return(nil, storageErr).Once()

	_, err := fx.service.UpdateCategory(context.Background(), adminActor, 2, &usecase.CategoryInput{Name: "Mid", ParentID: int64Ptr(4)})

	assert.True(t, errors.Is(err, storageErr))
	assert.False(t, errors.Is(err, domainerrors.ErrCircularReference))
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("soft deletes and returns final state", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.expectTx()
		fx.seedTree(&entity.Category{ID: 2, Name: "Mid", ParentID: int64Ptr(1), IsActive: true})
		fx.txCategories.EXPECT().SoftDelete(mock.Anything, int64(2)).Return(nil)

		category, err := fx.service.DeleteCategory(context.Background(), adminActor, 2)

		require.NoError(t, err)
		assert.False(t, category.IsActive)
		assert.Equal(t, int64Ptr(1), category.ParentID)
	})

	t.Run("already deleted", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.expectTx()
		fx.seedTree()

		_, err := fx.service.DeleteCategory(context.Background(), adminActor, 2)

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})

	t.Run("buyer forbidden", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.DeleteCategory(context.Background(), buyerActor, 2)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestCategoryService_Reads(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().ListActive(ctx).Return([]*entity.Category{{ID: 1, IsActive: true}}, nil)
	fx.categoryRepo.EXPECT().FindActiveByID(ctx, int64(8)).Return(nil, repository.ErrCategoryNotFound)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	_, err = fx.service.GetCategory(ctx, 8)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
