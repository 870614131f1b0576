package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/core/domain/model/audit"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	suite.Require().NoError(postgres_adapter.Migrate(db))

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, payments, audit_entries, menu_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.PaymentRepository(), "First instance should provide payment repository")
	suite.NotNil(uow1.AuditRepository(), "First instance should provide audit repository")
	suite.NotNil(uow1.MenuRepository(), "First instance should provide menu repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_OrderPaymentWorkflow verifies the full settlement flow:
// order, payment, audit entry, and status change in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPaymentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Creation entry
	creationEntry, err := audit.NewEntry(
		kernel.NewUUID(), testOrder.ID(), nil, order.Pending, testOrder.CreatedBy(), "", time.Now())
	suite.Require().NoError(err)
	err = uow.AuditRepository().Add(ctx, creationEntry)
	suite.Require().NoError(err)

	// Register the payment for the full total
	testPayment := suite.createTestPayment(testOrder)
	err = uow.PaymentRepository().Add(ctx, testPayment)
	suite.Require().NoError(err)

	// Walk the order to delivered; distinct timestamps keep the trail ordered
	for i, target := range []order.Status{order.Preparing, order.Ready, order.Delivered} {
		at := time.Now().Add(time.Duration(i+1) * time.Second)
		from := testOrder.Status()
		suite.Require().NoError(testOrder.ChangeStatus(target, at))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

		entry, entryErr := audit.NewEntry(
			kernel.NewUUID(), testOrder.ID(), &from, target, testOrder.CreatedBy(), "", at)
		suite.Require().NoError(entryErr)
		suite.Require().NoError(uow.AuditRepository().Add(ctx, entry))
	}

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.NotNil(retrievedOrder.DeliveredAt())

	retrievedPayment, err := newUow.PaymentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedPayment.Amount().Equals(testOrder.Total()))

	entries, err := newUow.AuditRepository().ListByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(entries, 4)
	suite.Nil(entries[0].From())
	suite.Equal(order.Delivered, entries[3].To())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testPayment := suite.createTestPayment(testOrder)
	err = uow.PaymentRepository().Add(ctx, testPayment)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	exists, err := uow.PaymentRepository().ExistsForOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	exists, err = newUow.PaymentRepository().ExistsForOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(exists, "Payment should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_DoublePaymentAcrossTransactions verifies the unique index
// on order_id rejects a second payment even from another transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DoublePaymentAcrossTransactions() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	uow1 := suite.factory.Create()
	err := uow1.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow1.PaymentRepository().Add(ctx, suite.createTestPayment(testOrder))
	suite.Require().NoError(err)

	uow2 := suite.factory.Create()
	err = uow2.PaymentRepository().Add(ctx, suite.createTestPayment(testOrder))
	suite.Require().Error(err, "Second payment for the same order should be rejected")
}

// createTestOrder creates a valid pending order with one line.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	unitPrice, err := kernel.NewMoneyFromString("22.00")
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Aji de Gallina", 2, unitPrice, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(time.Now()),
		order.Takeout,
		"",
		"Rosa",
		"",
		kernel.NewUUID(),
		[]order.Line{line},
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestPayment creates a card payment settling the order's full total.
func (suite *UnitOfWorkIntegrationTestSuite) createTestPayment(forOrder *order.Order) *payment.Payment {
	testPayment, err := payment.NewPayment(
		kernel.NewUUID(),
		forOrder.ID(),
		payment.NewTicketNumber(time.Now()),
		payment.Card,
		forOrder.Total(),
		nil,
		kernel.NewUUID(),
		time.Now(),
	)
	suite.Require().NoError(err)
	return testPayment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
