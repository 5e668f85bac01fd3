package orderrepo_test

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
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) newOrder(sequence int) *order.Order {
	number, err := order.NewOrderNumber(2026, sequence)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, nil,
		"Ayesha Khan", "+92-300-1234567", "12 Canal Road", 3)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	created := suite.newOrder(1)
	created.UpdateNotes("ring the bell")
	suite.Require().NoError(created.UpdateTotalAmount(450))

	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(created))
	suite.Equal(created.Number().String(), loaded.Number().String())
	suite.Equal("Ayesha Khan", loaded.CustomerName())
	suite.Equal(3, loaded.Quantity())
	suite.Equal(60, loaded.TotalLitres())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal("ring the bell", loaded.Notes())
	suite.Require().NotNil(loaded.TotalAmount())
	suite.InDelta(450, *loaded.TotalAmount(), 0.001)
	suite.Nil(loaded.DeliveredAt())
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflict() {
	ctx := context.Background()
	first := suite.newOrder(7)
	second := suite.newOrder(7)

	err := suite.repo.Add(ctx, first)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsStatusAndAgent() {
	ctx := context.Background()
	created := suite.newOrder(2)
	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	agentID := kernel.NewUUID()
	suite.Require().NoError(created.Assign(agentID))
	suite.Require().NoError(created.StartTransit())

	err = suite.repo.Update(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, loaded.Status())
	suite.Require().NotNil(loaded.Agent())
	suite.True(loaded.Agent().IsEqual(agentID))
}

func (suite *OrderRepositoryTestSuite) TestUpdate_DeliveredWithoutTimestampStaysUnset() {
	ctx := context.Background()
	created := suite.newOrder(3)
	suite.Require().NoError(suite.repo.Add(ctx, created))

	suite.Require().NoError(created.Assign(kernel.NewUUID()))
	suite.Require().NoError(created.StartTransit())
	suite.Require().NoError(created.Deliver())
	suite.Require().NoError(suite.repo.Update(ctx, created))

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.Nil(loaded.DeliveredAt())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_NotFound() {
	ghost := suite.newOrder(99)
	err := suite.repo.Update(context.Background(), ghost)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestCount() {
	ctx := context.Background()

	count, err := suite.repo.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	for i := 1; i <= 3; i++ {
		suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(i)))
	}

	count, err = suite.repo.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
