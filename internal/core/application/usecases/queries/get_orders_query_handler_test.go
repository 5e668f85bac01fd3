package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"waterflow/internal/adapters/out/postgres/orderrepo"
	"waterflow/internal/core/application/usecases/queries"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	sequence  int
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrdersQueryHandlerTestSuite) addOrderFor(customerID, agentID *kernel.UUID) *order.Order {
	suite.sequence++
	number, err := order.NewOrderNumber(2026, suite.sequence)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, customerID,
		"Ayesha Khan", "+92-300-1234567", "12 Canal Road", 1)
	suite.Require().NoError(err)

	if agentID != nil {
		suite.Require().NoError(o.Assign(*agentID))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AllScope_ReturnsEverything() {
	suite.addOrderFor(nil, nil)
	suite.addOrderFor(nil, nil)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_CustomerScope_FiltersOtherCustomers() {
	mine := kernel.NewUUID()
	other := kernel.NewUUID()
	wanted := suite.addOrderFor(&mine, nil)
	suite.addOrderFor(&other, nil)
	suite.addOrderFor(nil, nil)

	query, err := queries.NewGetOrdersQueryForCustomer(mine)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(wanted.ID()))
	suite.Require().NotNil(result[0].CustomerID)
	suite.True(result[0].CustomerID.IsEqual(mine))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AgentScope_FiltersOtherAgents() {
	mine := kernel.NewUUID()
	other := kernel.NewUUID()
	wanted := suite.addOrderFor(nil, &mine)
	suite.addOrderFor(nil, &other)
	suite.addOrderFor(nil, nil)

	query, err := queries.NewGetOrdersQueryForAgent(mine)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(wanted.ID()))
	suite.Equal(order.Assigned, result[0].Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_TodayScope_ExcludesYesterday() {
	today := suite.addOrderFor(nil, nil)
	yesterday := suite.addOrderFor(nil, nil)

	err := suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?",
		time.Now().AddDate(0, 0, -1), yesterday.ID().Bytes()).Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetTodayOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(today.ID()))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	first := suite.addOrderFor(nil, nil)
	second := suite.addOrderFor(nil, nil)

	err := suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?",
		time.Now().Add(-time.Hour), first.ID().Bytes()).Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[1].ID.IsEqual(first.ID()))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
