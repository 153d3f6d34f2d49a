package queries_test

import (
	"context"
	"testing"
	"time"

	"eshop/internal/adapters/out/postgres/productrepo"
	"eshop/internal/core/application/usecases/queries"
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProductsQueryHandlerTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	handler         queries.GetProductsQueryHandler
	lowStockHandler queries.GetLowStockProductsQueryHandler
}

func (suite *GetProductsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductsQueryHandler(db)
	suite.lowStockHandler = queries.NewGetLowStockProductsQueryHandler(db)
}

func (suite *GetProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_ReturnsCatalogOrderedByName() {
	suite.saveProduct("Gadget", 5.00, 3)
	suite.saveProduct("Widget", 19.99, 7)
	suite.saveProduct("Anvil", 120.00, 1)

	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Anvil", result[0].Name)
	suite.Equal("Gadget", result[1].Name)
	suite.Equal("Widget", result[2].Name)
	suite.True(decimal.NewFromFloat(19.99).Equal(result[2].Price))
	suite.Equal(7, result[2].Stock)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductsQuery constructor")
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandleLowStock_ReturnsScarcestFirst() {
	suite.saveProduct("Gadget", 5.00, 3)
	suite.saveProduct("Widget", 19.99, 7)
	suite.saveProduct("Anvil", 120.00, 0)

	query, err := queries.NewGetLowStockProductsQuery(3)
	suite.Require().NoError(err)

	result, err := suite.lowStockHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Anvil", result[0].Name)
	suite.Equal(0, result[0].Stock)
	suite.Equal("Gadget", result[1].Name)
	suite.Equal(3, result[1].Stock)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandleLowStock_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLowStockProductsQuery{}

	result, err := suite.lowStockHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetProductsQueryHandlerTestSuite) saveProduct(name string, price float64, stock int) {
	aggregate, err := product.NewProduct(kernel.NewUUID(), name,
		decimal.NewFromFloat(price), stock)
	suite.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
}

func TestGetProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsQueryHandlerTestSuite))
}
