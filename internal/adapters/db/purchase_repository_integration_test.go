//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/akarpov/grocery-be/internal/adapters/db"
	"github.com/akarpov/grocery-be/internal/core/ports"
	"github.com/akarpov/grocery-be/test/helpers"
)

type PurchaseRepositorySuite struct {
	suite.Suite
	testDB    *helpers.TestDB
	shops     ports.ShopRepository
	items     ports.ItemRepository
	visits    ports.VisitRepository
	purchases ports.PurchaseRepository
	ctx       context.Context

	shopID  int64
	itemID  int64
	visitID int64
}

func (s *PurchaseRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.shops = db.NewShopRepository(s.testDB.Database, logger)
	s.items = db.NewItemRepository(s.testDB.Database, logger)
	s.visits = db.NewVisitRepository(s.testDB.Database, logger)
	s.purchases = db.NewPurchaseRepository(s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *PurchaseRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	shop := helpers.CreateTestShop()
	s.NoError(s.shops.Save(s.ctx, shop))
	s.shopID = shop.ID

	item := helpers.CreateTestItem()
	s.NoError(s.items.Save(s.ctx, item))
	s.itemID = item.ID

	visit := helpers.CreateTestVisit(s.shopID)
	s.NoError(s.visits.Save(s.ctx, visit))
	s.visitID = visit.ID
}

func (s *PurchaseRepositorySuite) TestSaveAndFind() {
	purchase := helpers.CreateTestPurchase(s.visitID, s.itemID)

	err := s.purchases.Save(s.ctx, purchase)
	s.NoError(err)
	s.NotZero(purchase.ID)

	found, err := s.purchases.FindOneByVisitAndItem(s.ctx, s.visitID, s.itemID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(purchase.ID, found.ID)
	s.Equal(int64(1), found.Quantity)
	s.NotNil(found.Price)
	s.True(decimal.NewFromFloat(2.50).Equal(*found.Price))
}

func (s *PurchaseRepositorySuite) TestFindOneReturnsNilForMissingPair() {
	found, err := s.purchases.FindOneByVisitAndItem(s.ctx, s.visitID, s.itemID)
	s.NoError(err)
	s.Nil(found)
}

func (s *PurchaseRepositorySuite) TestNilPriceRoundTrip() {
	purchase := helpers.CreateTestPurchase(s.visitID, s.itemID)
	purchase.Price = nil

	s.NoError(s.purchases.Save(s.ctx, purchase))

	found, err := s.purchases.FindOneByVisitAndItem(s.ctx, s.visitID, s.itemID)
	s.NoError(err)
	s.NotNil(found)
	s.Nil(found.Price)
}

func (s *PurchaseRepositorySuite) TestUniquePairRejected() {
	first := helpers.CreateTestPurchase(s.visitID, s.itemID)
	s.NoError(s.purchases.Save(s.ctx, first))

	second := helpers.CreateTestPurchase(s.visitID, s.itemID)
	err := s.purchases.Save(s.ctx, second)
	s.Error(err)
}

func (s *PurchaseRepositorySuite) TestUpdate() {
	purchase := helpers.CreateTestPurchase(s.visitID, s.itemID)
	s.NoError(s.purchases.Save(s.ctx, purchase))

	purchase.Quantity = 5
	price := decimal.NewFromFloat(3.75)
	purchase.Price = &price
	s.NoError(s.purchases.Save(s.ctx, purchase))

	found, err := s.purchases.FindOneByVisitAndItem(s.ctx, s.visitID, s.itemID)
	s.NoError(err)
	s.Equal(int64(5), found.Quantity)
	s.True(price.Equal(*found.Price))
}

func (s *PurchaseRepositorySuite) TestFindPageByVisit() {
	for i := 0; i < 15; i++ {
		item := helpers.CreateTestItem()
		item.Name = itemName(i)
		s.NoError(s.items.Save(s.ctx, item))

		purchase := helpers.CreateTestPurchase(s.visitID, item.ID)
		s.NoError(s.purchases.Save(s.ctx, purchase))
	}

	page, total, err := s.purchases.FindPageByVisit(s.ctx, ports.PageRequest{Page: 1, Size: 10}, s.visitID)
	s.NoError(err)
	s.Equal(int64(15), total)
	s.Len(page, 10)

	page, total, err = s.purchases.FindPageByVisit(s.ctx, ports.PageRequest{Page: 2, Size: 10}, s.visitID)
	s.NoError(err)
	s.Equal(int64(15), total)
	s.Len(page, 5)
}

func (s *PurchaseRepositorySuite) TestDeleteAllByVisit() {
	purchase := helpers.CreateTestPurchase(s.visitID, s.itemID)
	s.NoError(s.purchases.Save(s.ctx, purchase))

	s.NoError(s.purchases.DeleteAllByVisit(s.ctx, s.visitID))

	all, err := s.purchases.FindAllByVisit(s.ctx, s.visitID)
	s.NoError(err)
	s.Empty(all)
}

func (s *PurchaseRepositorySuite) TestShopDeleteRestrictedByVisit() {
	err := s.shops.Delete(s.ctx, s.shopID)
	s.Error(err)
}

func TestPurchaseRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PurchaseRepositorySuite))
}

func itemName(i int) string {
	return fmt.Sprintf("Item %02d", i)
}
