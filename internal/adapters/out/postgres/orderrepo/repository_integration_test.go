package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"blip/internal/adapters/out/postgres/orderrepo"
	"blip/internal/core/domain/model/order"
	"blip/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder("Alice", "Keyboard", 2)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	created, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Require().NotNil(created)

	// The database assigns identifier and timestamps
	suite.Positive(created.ID())
	suite.False(created.CreatedAt().IsZero())
	suite.False(created.UpdatedAt().IsZero())
	suite.Equal("Alice", created.CustomerName())
	suite.Equal("Keyboard", created.ProductName())
	suite.Equal(2, created.Quantity())
	suite.Equal(order.Pending, created.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIdentifiers() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()

	first, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	second, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	suite.Greater(second.ID(), first.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	ctx := context.Background()
	var notConstructed order.Order

	created, err := suite.repository.Add(ctx, &notConstructed)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_Success() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	created, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	fetched, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(fetched)
	suite.Equal(created.ID(), fetched.ID())
	suite.Equal(created.CustomerName(), fetched.CustomerName())
	suite.Equal(created.ProductName(), fetched.ProductName())
	suite.Equal(created.Quantity(), fetched.Quantity())
	suite.Equal(order.Pending, fetched.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	fetched, err := suite.repository.Get(ctx, 424242)

	suite.Require().Error(err)
	suite.Nil(fetched)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "order not found")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_PersistsOnlyStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()

	created, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	suite.Require().NoError(created.ChangeStatus(order.Paid))

	updated, err := suite.repository.UpdateStatus(ctx, created)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(order.Paid, updated.Status())
	suite.Equal(created.CustomerName(), updated.CustomerName())
	suite.Equal(created.ProductName(), updated.ProductName())
	suite.Equal(created.Quantity(), updated.Quantity())

	// Re-read to confirm persistence
	fetched, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, fetched.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(424242, "Alice", "Keyboard", 1, order.Paid, time.Now(), time.Now())
	suite.Require().NoError(err)

	updated, err := suite.repository.UpdateStatus(ctx, ghost)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsRoundTripThroughDomain() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	created, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	fetched, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(created.IsEqual(fetched))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
