package service_test

import (
	"context"
	"errors"
	"testing"

	"menurank/menu-svc/internal/domain"
	"menurank/menu-svc/internal/mocks"
	"menurank/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuService_Create(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name          string
		item          *domain.MenuItem
		prepareMocks  func(*mocks.MenuRepository, *mocks.MenuCache)
		expectedError error
	}{
		{
			name: "success_fills_defaults",
			item: &domain.MenuItem{RestaurantRef: " R1 ", Name: " Pad Thai ", Category: ""},
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				repo.On("CreateMenuItem", ctx, mock.MatchedBy(func(m *domain.MenuItem) bool {
					return m.RestaurantRef == "R1" && m.Name == "Pad Thai" && m.Category == domain.CategoryMain && m.CustomerSentiment == domain.SentimentAbsent
				})).Return(nil).Once()
				cache.On("Invalidate", ctx, "R1").Return(nil).Once()
			},
		},
		{
			name: "duplicate_name",
			item: &domain.MenuItem{RestaurantRef: "R1", Name: "Pad Thai"},
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				repo.On("CreateMenuItem", ctx, mock.Anything).Return(domain.ErrDuplicateItem).Once()
			},
			expectedError: domain.ErrDuplicateItem,
		},
		{
			name: "invalidate_failure_is_not_fatal",
			item: &domain.MenuItem{RestaurantRef: "R1", Name: "Tom Yum", Category: "Starter"},
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				repo.On("CreateMenuItem", ctx, mock.MatchedBy(func(m *domain.MenuItem) bool { return m.Category == "starter" })).Return(nil).Once()
				cache.On("Invalidate", ctx, "R1").Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			cache := mocks.NewMenuCache(t)
			testCase.prepareMocks(repo, cache)

			err := service.NewMenuService(repo, cache).Create(ctx, testCase.item)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestMenuService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	repo.On("UpdateMenuItem", ctx, mock.Anything).Return(nil).Once()
	repo.On("UpdateMenuItem", ctx, mock.Anything).Return(domain.ErrNotFound).Once()
	repo.On("DeleteMenuItem", ctx, "R1", 3).Return(int64(1), nil).Once()
	repo.On("DeleteMenuItem", ctx, "R1", 4).Return(int64(0), nil).Once()
	cache.On("Invalidate", ctx, "R1").Return(nil).Twice()

	assert.NoError(t, svc.Update(ctx, &domain.MenuItem{ID: 3, RestaurantRef: "R1", Name: "Pho"}))
	assert.ErrorIs(t, svc.Update(ctx, &domain.MenuItem{ID: 9, RestaurantRef: "R1", Name: "Pho"}), domain.ErrNotFound)
	assert.NoError(t, svc.Delete(ctx, "R1", 3))
	assert.ErrorIs(t, svc.Delete(ctx, "R1", 4), domain.ErrNotFound)
}

func TestMenuService_Import(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	var stored []domain.MenuItem
	repo.On("UpsertMenuItems", ctx, "R1", mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(2).([]domain.MenuItem)
	}).Return(nil).Once()
	cache.On("Invalidate", ctx, "R1").Return(nil).Once()

	n, err := svc.Import(ctx, " R1", []domain.MenuItem{
		{Name: "Pad Thai", Description: "old"},
		{Name: "   "},
		{Name: "Green Curry", Category: "MAIN"},
		{Name: "pad thai", Description: "Rice noodles, tamarind"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, stored, 2)
	assert.Equal(t, "pad thai", stored[0].Name)
	assert.Equal(t, "Rice noodles, tamarind", stored[0].Description)
	assert.Equal(t, "R1", stored[0].RestaurantRef)
	assert.Equal(t, "main", stored[1].Category)
}

func TestMenuService_ImportNothing(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo, nil)

	n, err := svc.Import(context.Background(), "R1", []domain.MenuItem{{Name: ""}})

	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestMenuService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo, mocks.NewMenuCache(t))

	items := []domain.MenuItem{{ID: 1, RestaurantRef: "R1", Name: "Pho"}}
	repo.On("ListMenuItems", ctx, "R1").Return(items, nil).Once()
	repo.On("GetMenuItem", ctx, "R1", 1).Return(&items[0], nil).Once()

	got, err := svc.List(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	item, err := svc.Get(ctx, "R1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Pho", item.Name)
}
