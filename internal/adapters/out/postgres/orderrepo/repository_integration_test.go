package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
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

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64, region int) *order.Order {
	deliveryHours, err := kernel.NewSchedule([]string{"10:00-14:00"})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(id, 2.5, region, deliveryHours)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(ctx context.Context, o *order.Order) {
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	original := suite.createTestOrder(42, 2)

	suite.addOrder(ctx, original)

	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)

	suite.Equal(int64(42), retrieved.ID())
	suite.InDelta(2.5, retrieved.Weight(), 1e-9)
	suite.Equal(2, retrieved.Region())
	suite.Equal([]string{"10:00-14:00"}, retrieved.DeliveryHours().Strings())
	suite.Nil(retrieved.Courier())
	suite.Equal(order.Created, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleRoundTrip() {
	ctx := context.Background()
	original := suite.createTestOrder(42, 2)
	suite.addOrder(ctx, original)

	assignedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	completedAt := assignedAt.Add(30 * time.Minute)
	suite.Require().NoError(original.Assign(7, assignedAt))
	suite.Require().NoError(original.Complete(7, completedAt))

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)

	suite.Require().NotNil(retrieved.Courier())
	suite.Equal(int64(7), *retrieved.Courier())
	suite.Require().NotNil(retrieved.AssignedAt())
	suite.True(assignedAt.Equal(*retrieved.AssignedAt()))
	suite.Require().NotNil(retrieved.CompletedAt())
	suite.True(completedAt.Equal(*retrieved.CompletedAt()))
	suite.Equal(order.Completed, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnassignClearsCourier() {
	ctx := context.Background()
	original := suite.createTestOrder(42, 2)
	suite.Require().NoError(original.Assign(7, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	suite.addOrder(ctx, original)

	suite.Require().NoError(original.Unassign())
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)

	suite.Nil(retrieved.Courier())
	suite.Nil(retrieved.AssignedAt())
	suite.Equal(order.Created, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnassigned_ReturnsOnlyPool() {
	ctx := context.Background()

	pooled := suite.createTestOrder(1, 1)
	assigned := suite.createTestOrder(2, 1)
	suite.Require().NoError(assigned.Assign(7, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))

	suite.addOrder(ctx, pooled)
	suite.addOrder(ctx, assigned)

	unassigned, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)

	suite.Len(unassigned, 1)
	suite.Equal(int64(1), unassigned[0].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCourier_IncludesCompletedOrders() {
	ctx := context.Background()
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	active := suite.createTestOrder(1, 1)
	suite.Require().NoError(active.Assign(7, at))

	completed := suite.createTestOrder(2, 2)
	suite.Require().NoError(completed.Assign(7, at))
	suite.Require().NoError(completed.Complete(7, at.Add(20*time.Minute)))

	other := suite.createTestOrder(3, 1)
	suite.Require().NoError(other.Assign(8, at))

	suite.addOrder(ctx, active)
	suite.addOrder(ctx, completed)
	suite.addOrder(ctx, other)

	orders, err := suite.repository.GetAllByCourier(ctx, 7)
	suite.Require().NoError(err)

	suite.Len(orders, 2)
	suite.Equal(int64(1), orders[0].ID())
	suite.Equal(int64(2), orders[1].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
