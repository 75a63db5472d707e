//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/akarpov/grocery-be/internal/adapters/db"
	"github.com/akarpov/grocery-be/internal/core/ports"
	"github.com/akarpov/grocery-be/test/helpers"
)

type VisitRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	shops  ports.ShopRepository
	lists  ports.ShoppingListRepository
	lines  ports.ShoppingListItemRepository
	items  ports.ItemRepository
	visits ports.VisitRepository
	ctx    context.Context

	shopID int64
}

func (s *VisitRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.shops = db.NewShopRepository(s.testDB.Database, logger)
	s.lists = db.NewShoppingListRepository(s.testDB.Database, logger)
	s.lines = db.NewShoppingListItemRepository(s.testDB.Database, logger)
	s.items = db.NewItemRepository(s.testDB.Database, logger)
	s.visits = db.NewVisitRepository(s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *VisitRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	shop := helpers.CreateTestShop()
	s.NoError(s.shops.Save(s.ctx, shop))
	s.shopID = shop.ID
}

func (s *VisitRepositorySuite) TestLifecycleTimestampsRoundTrip() {
	visit := helpers.CreateTestVisit(s.shopID)
	s.NoError(s.visits.Save(s.ctx, visit))

	found, err := s.visits.FindByID(s.ctx, visit.ID)
	s.NoError(err)
	s.Nil(found.Started)
	s.Nil(found.Completed)

	now := time.Now().UTC().Truncate(time.Microsecond)
	found.Start(now)
	found.Complete(now.Add(time.Hour))
	s.NoError(s.visits.Save(s.ctx, found))

	again, err := s.visits.FindByID(s.ctx, visit.ID)
	s.NoError(err)
	s.NotNil(again.Started)
	s.NotNil(again.Completed)
	s.True(now.Equal(again.Started.UTC()))
	s.True(now.Add(time.Hour).Equal(again.Completed.UTC()))
}

func (s *VisitRepositorySuite) TestShoppingListReferenceClearedOnListDelete() {
	list := helpers.CreateTestShoppingList()
	s.NoError(s.lists.Save(s.ctx, list))

	visit := helpers.CreateTestVisit(s.shopID)
	visit.ShoppingListID = &list.ID
	s.NoError(s.visits.Save(s.ctx, visit))

	s.NoError(s.lists.Delete(s.ctx, list.ID))

	found, err := s.visits.FindByID(s.ctx, visit.ID)
	s.NoError(err)
	s.NotNil(found)
	s.Nil(found.ShoppingListID)
}

func (s *VisitRepositorySuite) TestListDeleteCascadesToLines() {
	list := helpers.CreateTestShoppingList()
	s.NoError(s.lists.Save(s.ctx, list))

	item := helpers.CreateTestItem()
	s.NoError(s.items.Save(s.ctx, item))

	line := helpers.CreateTestShoppingListItem(list.ID, item.ID)
	s.NoError(s.lines.Save(s.ctx, line))

	s.NoError(s.lists.Delete(s.ctx, list.ID))

	found, err := s.lines.FindByID(s.ctx, line.ID)
	s.NoError(err)
	s.Nil(found)
}

func (s *VisitRepositorySuite) TestFindAllByShop() {
	other := helpers.CreateTestShop()
	other.Name = "Other Shop"
	s.NoError(s.shops.Save(s.ctx, other))

	for i := 0; i < 3; i++ {
		s.NoError(s.visits.Save(s.ctx, helpers.CreateTestVisit(s.shopID)))
	}
	s.NoError(s.visits.Save(s.ctx, helpers.CreateTestVisit(other.ID)))

	visits, err := s.visits.FindAllByShop(s.ctx, s.shopID)
	s.NoError(err)
	s.Len(visits, 3)
}

func TestVisitRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(VisitRepositorySuite))
}
