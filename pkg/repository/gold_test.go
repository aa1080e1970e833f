package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/model"
	"droscher.com/BrewLake/pkg/repository"
)

type GoldTestSuite struct {
	RepositorySuite
}

func TestGoldTestSuite(t *testing.T) {
	suite.Run(t, new(GoldTestSuite))
}

func (suite *GoldTestSuite) TestReplaceGold_DeletesFactsFirstAndInsertsDimensionsFirst() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "fact_breweries"`).WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectExec(`DELETE FROM "dim_location"`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`DELETE FROM "dim_brewery_type"`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "dim_location" ("location_key","city","state","country") VALUES ($1,$2,$3,$4)`)).
		WithArgs(int64(1), "Bend", "Oregon", "United States").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "dim_brewery_type" ("type_key","brewery_type") VALUES ($1,$2)`)).
		WithArgs(int64(1), "micro").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "fact_breweries" ("brewery_id","name","location_key","type_key","longitude","latitude") VALUES ($1,$2,$3,$4,$5,$6)`)).
		WithArgs("b-1", "GARGOYLE BREWING", int64(1), int64(1), -121.32, 44.057).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	gold := &model.GoldTables{
		Locations: []model.DimLocation{{LocationKey: 1, City: "Bend", State: "Oregon", Country: "United States"}},
		Types:     []model.DimBreweryType{{TypeKey: 1, BreweryType: "micro"}},
		Facts: []model.FactBrewery{{
			BreweryID:   "b-1",
			Name:        "GARGOYLE BREWING",
			LocationKey: 1,
			TypeKey:     1,
			Longitude:   pointy.Float64(-121.32),
			Latitude:    pointy.Float64(44.057),
		}},
	}

	err := suite.repository.ReplaceGold(context.Background(), gold)
	suite.Require().NoError(err)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *GoldTestSuite) TestGoldCounts_ReportsAllThreeTables() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "dim_location"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "dim_brewery_type"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "fact_breweries"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(97))

	locations, types, facts, err := suite.repository.GoldCounts(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int64(12), locations)
	suite.Equal(int64(6), types)
	suite.Equal(int64(97), facts)
}

// Full-rebuild semantics against a real embedded warehouse: a second load
// replaces the first load's rows instead of accumulating.
func (suite *GoldTestSuite) TestReplaceGold_SecondLoadReplacesFirst() {
	conf := &configs.Config{Warehouse: configs.Warehouse{
		Driver:             "sqlite",
		Path:               suite.T().TempDir() + "/warehouse.db",
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	defer repo.Close()

	ctx := context.Background()
	suite.Require().NoError(repo.Migrate(ctx))

	first := &model.GoldTables{
		Locations: []model.DimLocation{
			{LocationKey: 1, City: "Anchorage", State: "Alaska", Country: "United States"},
			{LocationKey: 2, City: "Bend", State: "Oregon", Country: "United States"},
		},
		Types: []model.DimBreweryType{{TypeKey: 1, BreweryType: "micro"}},
		Facts: []model.FactBrewery{
			{BreweryID: "b-1", Name: "ONE", LocationKey: 1, TypeKey: 1},
			{BreweryID: "b-2", Name: "TWO", LocationKey: 2, TypeKey: 1},
		},
	}
	suite.Require().NoError(repo.ReplaceGold(ctx, first))

	second := &model.GoldTables{
		Locations: []model.DimLocation{{LocationKey: 1, City: "Bend", State: "Oregon", Country: "United States"}},
		Types:     []model.DimBreweryType{{TypeKey: 1, BreweryType: "brewpub"}},
		Facts:     []model.FactBrewery{{BreweryID: "b-3", Name: "THREE", LocationKey: 1, TypeKey: 1}},
	}
	suite.Require().NoError(repo.ReplaceGold(ctx, second))

	locations, types, facts, err := repo.GoldCounts(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), locations)
	suite.Equal(int64(1), types)
	suite.Equal(int64(1), facts)

	var fact model.FactBrewery
	suite.Require().NoError(repo.DB.WithContext(ctx).First(&fact).Error)
	suite.Equal("b-3", fact.BreweryID)
}
