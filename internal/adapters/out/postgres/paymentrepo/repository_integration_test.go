package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"comanda/internal/adapters/out/postgres/paymentrepo"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PaymentRepositoryIntegrationTestSuite provides integration tests for the
// payment ledger, in particular the storage-level one-payment-per-order rule.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError maps unique constraint violations to gorm.ErrDuplicatedKey,
	// which Add turns into an AlreadyPaidError.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_CashPayment_RoundTrips() {
	ctx := context.Background()

	testPayment := suite.createCashPayment(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Once()

	err := suite.repository.Add(ctx, testPayment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOrderID(ctx, testPayment.OrderID())
	suite.Require().NoError(err)

	suite.Equal(testPayment.ID(), retrieved.ID())
	suite.Equal(payment.Cash, retrieved.Method())
	suite.Equal("44.00", retrieved.Amount().String())
	suite.Equal("50.00", retrieved.Received().String())
	suite.Equal("6.00", retrieved.Change().String())
	suite.Equal(testPayment.Ticket().String(), retrieved.Ticket().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_SecondPaymentForOrder_ReturnsAlreadyPaid() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.createCashPayment(orderID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createCashPayment(orderID)

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrAlreadyPaid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestExistsForOrder() {
	ctx := context.Background()

	testPayment := suite.createCashPayment(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	exists, err := suite.repository.ExistsForOrder(ctx, testPayment.OrderID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsForOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByTicket() {
	ctx := context.Background()

	testPayment := suite.createCashPayment(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	retrieved, err := suite.repository.GetByTicket(ctx, testPayment.Ticket())
	suite.Require().NoError(err)
	suite.Equal(testPayment.ID(), retrieved.ID())

	_, err = suite.repository.GetByTicket(ctx, payment.NewTicketNumber(time.Now()))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestExistsTicket() {
	ctx := context.Background()

	testPayment := suite.createCashPayment(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	exists, err := suite.repository.ExistsTicket(ctx, testPayment.Ticket())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsTicket(ctx, payment.NewTicketNumber(time.Now()))
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrderID_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createCashPayment creates a cash payment of 44.00 settled with 50.00.
func (suite *PaymentRepositoryIntegrationTestSuite) createCashPayment(orderID kernel.UUID) *payment.Payment {
	amount, err := kernel.NewMoneyFromString("44.00")
	suite.Require().NoError(err)
	received, err := kernel.NewMoneyFromString("50.00")
	suite.Require().NoError(err)

	testPayment, err := payment.NewPayment(
		kernel.NewUUID(),
		orderID,
		payment.NewTicketNumber(time.Now()),
		payment.Cash,
		amount,
		&received,
		kernel.NewUUID(),
		time.Now(),
	)
	suite.Require().NoError(err)
	return testPayment
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
