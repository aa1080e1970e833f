package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/repository"
)

type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

type ConnectTestSuite struct {
	suite.Suite
}

func TestConnectTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectTestSuite))
}

func (suite *ConnectTestSuite) TestOpen_RejectsUnknownDriver() {
	conf := &configs.Config{Warehouse: configs.Warehouse{Driver: "duckdb"}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))

	suite.Require().ErrorIs(err, repository.ErrUnknownDriver)
	suite.Nil(repo)
}

func (suite *ConnectTestSuite) TestOpen_OpensSqliteWarehouse() {
	dir := suite.T().TempDir()
	conf := &configs.Config{Warehouse: configs.Warehouse{
		Driver:             "sqlite",
		Path:               dir + "/warehouse.db",
		MaxIdleConnections: 2,
		MaxOpenConnections: 2,
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))

	suite.Require().NoError(err)
	suite.Require().NotNil(repo)
	suite.NoError(repo.Migrate(context.Background()))
	repo.Close()
}
