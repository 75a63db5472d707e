// internal/core/services/visit_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
	"github.com/akarpov/grocery-be/internal/core/services"
	"github.com/akarpov/grocery-be/test/helpers"
	"github.com/akarpov/grocery-be/test/mocks"
)

type visitMocks struct {
	visits    *mocks.MockVisitRepository
	shops     *mocks.MockShopRepository
	purchases *mocks.MockPurchaseRepository
	cache     *mocks.MockCacheRepository
	enqueuer  *mocks.MockTaskEnqueuer
}

func newVisitService(t *testing.T) (*services.VisitService, visitMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := visitMocks{
		visits:    mocks.NewMockVisitRepository(ctrl),
		shops:     mocks.NewMockShopRepository(ctrl),
		purchases: mocks.NewMockPurchaseRepository(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
		enqueuer:  mocks.NewMockTaskEnqueuer(ctrl),
	}
	service := services.NewVisitService(
		m.visits, m.shops, m.purchases, m.cache, m.enqueuer, helpers.TestLogger())
	return service, m
}

func TestVisitService_CreateVisit(t *testing.T) {
	t.Run("creates_visit_for_existing_shop", func(t *testing.T) {
		service, m := newVisitService(t)

		m.shops.EXPECT().
			FindByID(gomock.Any(), int64(3)).
			Return(&domain.Shop{ID: 3, Name: "Corner Grocery"}, nil)
		m.visits.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *domain.Visit) error {
				v.ID = 7
				return nil
			})

		visit, err := service.CreateVisit(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(7), visit.ID)
		assert.Equal(t, int64(3), visit.ShopID)
		assert.Nil(t, visit.Started)
		assert.Nil(t, visit.Completed)
	})

	t.Run("shop_not_found", func(t *testing.T) {
		service, m := newVisitService(t)

		m.shops.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := service.CreateVisit(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVisitService_StartVisit(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)

	service, m := newVisitService(t)
	service.WithClock(func() time.Time { return now })

	m.visits.EXPECT().
		FindByID(gomock.Any(), int64(7)).
		Return(&domain.Visit{ID: 7, ShopID: 3}, nil)
	m.visits.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	visit, err := service.StartVisit(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, visit.Started)
	assert.Equal(t, now, *visit.Started)
	assert.Nil(t, visit.Completed)
}

func TestVisitService_CompleteVisit(t *testing.T) {
	now := time.Date(2025, 6, 14, 11, 45, 0, 0, time.UTC)
	started := now.Add(-time.Hour)

	t.Run("completes_and_enqueues_summary", func(t *testing.T) {
		service, m := newVisitService(t)
		service.WithClock(func() time.Time { return now })

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3, Started: &started}, nil)
		m.visits.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		m.enqueuer.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
				assert.Equal(t, ports.TypeVisitSummary, task.Type())
				return &asynq.TaskInfo{}, nil
			})

		visit, err := service.CompleteVisit(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, visit.Completed)
		assert.Equal(t, now, *visit.Completed)
		assert.Equal(t, started, *visit.Started)
	})

	t.Run("backfills_start_when_never_started", func(t *testing.T) {
		service, m := newVisitService(t)
		service.WithClock(func() time.Time { return now })

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3}, nil)
		m.visits.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		m.enqueuer.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			Return(&asynq.TaskInfo{}, nil)

		visit, err := service.CompleteVisit(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, visit.Started)
		assert.Equal(t, now, *visit.Started)
		assert.Equal(t, now, *visit.Completed)
	})

	t.Run("enqueue_failure_does_not_fail_completion", func(t *testing.T) {
		service, m := newVisitService(t)
		service.WithClock(func() time.Time { return now })

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3, Started: &started}, nil)
		m.visits.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		m.enqueuer.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis unavailable"))

		visit, err := service.CompleteVisit(context.Background(), 7)

		require.NoError(t, err)
		assert.NotNil(t, visit.Completed)
	})
}

func TestVisitService_DeleteVisit(t *testing.T) {
	t.Run("purges_purchases_and_cached_summary", func(t *testing.T) {
		service, m := newVisitService(t)

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3}, nil)
		m.purchases.EXPECT().
			DeleteAllByVisit(gomock.Any(), int64(7)).
			Return(nil)
		m.visits.EXPECT().
			Delete(gomock.Any(), int64(7)).
			Return(nil)
		m.cache.EXPECT().
			Delete(gomock.Any(), ports.VisitSummaryCacheKey(7)).
			Return(nil)

		err := service.DeleteVisit(context.Background(), 7)

		require.NoError(t, err)
	})

	t.Run("visit_not_found", func(t *testing.T) {
		service, m := newVisitService(t)

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		err := service.DeleteVisit(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVisitService_GetVisitSummary(t *testing.T) {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-time.Minute)

	t.Run("serves_precomputed_summary_from_cache", func(t *testing.T) {
		service, m := newVisitService(t)

		cached := domain.VisitSummary{
			VisitID:    7,
			Purchases:  2,
			Units:      5,
			ComputedAt: now,
		}

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3, Completed: &completed}, nil)
		m.cache.EXPECT().
			Get(gomock.Any(), ports.VisitSummaryCacheKey(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
				*dest.(*domain.VisitSummary) = cached
				return nil
			})

		summary, err := service.GetVisitSummary(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Purchases)
		assert.Equal(t, int64(5), summary.Units)
	})

	t.Run("computes_from_database_on_cache_miss", func(t *testing.T) {
		service, m := newVisitService(t)
		service.WithClock(func() time.Time { return now })

		m.visits.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(&domain.Visit{ID: 7, ShopID: 3, Completed: &completed}, nil)
		m.cache.EXPECT().
			Get(gomock.Any(), ports.VisitSummaryCacheKey(7), gomock.Any()).
			Return(errors.New("cache miss"))
		m.purchases.EXPECT().
			FindAllByVisit(gomock.Any(), int64(7)).
			Return([]domain.Purchase{
				{ID: 1, VisitID: 7, ItemID: 10, Quantity: 2, Price: decimalPtr(3)},
				{ID: 2, VisitID: 7, ItemID: 11, Quantity: 1},
			}, nil)

		summary, err := service.GetVisitSummary(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Purchases)
		assert.Equal(t, int64(3), summary.Units)
		assert.Equal(t, "6", summary.Total.String())
		assert.Equal(t, now, summary.ComputedAt)
		require.NotNil(t, summary.Completed)
		assert.Equal(t, completed, *summary.Completed)
	})
}
