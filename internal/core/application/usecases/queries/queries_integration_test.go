package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubTracker satisfies the repositories' tracker dependency; the read side
// has no unit of work, so tracked aggregates are irrelevant here.
type stubTracker struct{}

func (stubTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

// QueriesIntegrationTestSuite exercises every read-side handler against a
// real PostgreSQL container, seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	users     *userrepo.GormUserRepository
	orders    *orderrepo.GormOrderRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}))

	suite.users = userrepo.NewGormUserRepository(db, stubTracker{})
	suite.orders = orderrepo.NewGormOrderRepository(db, stubTracker{})
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, orders").Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedUser(email string, active bool) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), email, "Test User", "$2a$04$fakehashfortests")
	suite.Require().NoError(err)
	if !active {
		u.Deactivate()
	}
	suite.Require().NoError(suite.users.Add(context.Background(), u))
	return u
}

func (suite *QueriesIntegrationTestSuite) seedOrder(
	userID kernel.UUID,
	quantity int,
	unitPrice string,
	status order.Status,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), userID, "Widget", quantity, decimal.RequireFromString(unitPrice))
	suite.Require().NoError(err)
	switch status {
	case order.Completed:
		suite.Require().NoError(o.Complete())
	case order.Cancelled:
		suite.Require().NoError(o.Cancel())
	}
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

// setCreatedAt pins a row's created_at so ordering assertions are
// deterministic regardless of insert timing.
func (suite *QueriesIntegrationTestSuite) setCreatedAt(table string, id kernel.UUID, at time.Time) {
	suite.Require().NoError(
		suite.db.Exec("UPDATE "+table+" SET created_at = ? WHERE id = ?", at, id.Bytes()).Error,
	)
}

func (suite *QueriesIntegrationTestSuite) TestGetUserByID() {
	ctx := context.Background()
	seeded := suite.seedUser("ada@example.com", true)

	query, err := queries.NewGetUserByIDQuery(seeded.ID())
	suite.Require().NoError(err)

	found, err := queries.NewGetUserByIDQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(seeded.ID().IsEqual(found.ID))
	suite.Equal("ada@example.com", found.Email)
	suite.Equal("Test User", found.FullName)
	suite.True(found.IsActive)
	suite.False(found.CreatedAt.IsZero())

	missing, err := queries.NewGetUserByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	found, err = queries.NewGetUserByIDQueryHandler(suite.db).Handle(ctx, missing)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *QueriesIntegrationTestSuite) TestGetUserByEmail() {
	ctx := context.Background()
	seeded := suite.seedUser("ada@example.com", true)
	handler := queries.NewGetUserByEmailQueryHandler(suite.db)

	query, err := queries.NewGetUserByEmailQuery("ada@example.com")
	suite.Require().NoError(err)

	found, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(seeded.ID().IsEqual(found.ID))

	missing, err := queries.NewGetUserByEmailQuery("nobody@example.com")
	suite.Require().NoError(err)

	found, err = handler.Handle(ctx, missing)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *QueriesIntegrationTestSuite) TestListUsers_FiltersAndOrdering() {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	oldest := suite.seedUser("ada@corp.com", true)
	middle := suite.seedUser("bob@example.com", false)
	newest := suite.seedUser("carol@corp.com", true)
	suite.setCreatedAt("users", oldest.ID(), base)
	suite.setCreatedAt("users", middle.ID(), base.Add(time.Hour))
	suite.setCreatedAt("users", newest.ID(), base.Add(2*time.Hour))

	handler := queries.NewListUsersQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewListUsersQuery(nil, nil))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(newest.ID().IsEqual(all[0].ID))
	suite.True(middle.ID().IsEqual(all[1].ID))
	suite.True(oldest.ID().IsEqual(all[2].ID))

	active := true
	activeOnly, err := handler.Handle(ctx, queries.NewListUsersQuery(&active, nil))
	suite.Require().NoError(err)
	suite.Require().Len(activeOnly, 2)
	for _, u := range activeOnly {
		suite.True(u.IsActive)
	}

	contains := "corp"
	corpOnly, err := handler.Handle(ctx, queries.NewListUsersQuery(nil, &contains))
	suite.Require().NoError(err)
	suite.Require().Len(corpOnly, 2)
	suite.True(newest.ID().IsEqual(corpOnly[0].ID))
	suite.True(oldest.ID().IsEqual(corpOnly[1].ID))
}

func (suite *QueriesIntegrationTestSuite) TestUserExists() {
	ctx := context.Background()
	suite.seedUser("ada@example.com", true)
	handler := queries.NewUserExistsQueryHandler(suite.db)

	query, err := queries.NewUserExistsQuery("ada@example.com")
	suite.Require().NoError(err)
	exists, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(exists)

	query, err = queries.NewUserExistsQuery("nobody@example.com")
	suite.Require().NoError(err)
	exists, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderByID() {
	ctx := context.Background()
	owner := suite.seedUser("ada@example.com", true)
	seeded := suite.seedOrder(owner.ID(), 3, "19.99", order.Pending)
	handler := queries.NewGetOrderByIDQueryHandler(suite.db)

	query, err := queries.NewGetOrderByIDQuery(seeded.ID())
	suite.Require().NoError(err)

	found, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(seeded.ID().IsEqual(found.ID))
	suite.True(owner.ID().IsEqual(found.UserID))
	suite.Equal("Widget", found.ProductName)
	suite.Equal(3, found.Quantity)
	suite.True(found.UnitPrice.Equal(decimal.RequireFromString("19.99")))
	suite.True(found.TotalAmount.Equal(decimal.RequireFromString("59.97")))
	suite.Equal("pending", found.Status)

	missing, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	found, err = handler.Handle(ctx, missing)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersAndOrdering() {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ada := suite.seedUser("ada@example.com", true)
	bob := suite.seedUser("bob@example.com", true)

	first := suite.seedOrder(ada.ID(), 1, "10.00", order.Pending)
	second := suite.seedOrder(ada.ID(), 1, "10.00", order.Completed)
	third := suite.seedOrder(bob.ID(), 1, "10.00", order.Pending)
	suite.setCreatedAt("orders", first.ID(), base)
	suite.setCreatedAt("orders", second.ID(), base.Add(time.Hour))
	suite.setCreatedAt("orders", third.ID(), base.Add(2*time.Hour))

	handler := queries.NewListOrdersQueryHandler(suite.db)

	unfiltered, err := queries.NewListOrdersQuery(nil, nil)
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, unfiltered)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(third.ID().IsEqual(all[0].ID))
	suite.True(second.ID().IsEqual(all[1].ID))
	suite.True(first.ID().IsEqual(all[2].ID))

	pending := order.Pending
	query, err := queries.NewListOrdersQuery(&pending, nil)
	suite.Require().NoError(err)
	pendingOnly, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOnly, 2)
	for _, o := range pendingOnly {
		suite.Equal("pending", o.Status)
	}

	adaID := ada.ID()
	query, err = queries.NewListOrdersQuery(nil, &adaID)
	suite.Require().NoError(err)
	adasOrders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(adasOrders, 2)
	for _, o := range adasOrders {
		suite.True(ada.ID().IsEqual(o.UserID))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByUser() {
	ctx := context.Background()
	ada := suite.seedUser("ada@example.com", true)
	bob := suite.seedUser("bob@example.com", true)
	suite.seedOrder(ada.ID(), 1, "10.00", order.Pending)
	suite.seedOrder(ada.ID(), 1, "10.00", order.Completed)
	suite.seedOrder(bob.ID(), 1, "10.00", order.Pending)

	handler := queries.NewListOrdersByUserQueryHandler(suite.db)

	query, err := queries.NewListOrdersByUserQuery(ada.ID(), nil)
	suite.Require().NoError(err)
	adasOrders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(adasOrders, 2)

	completed := order.Completed
	query, err = queries.NewListOrdersByUserQuery(ada.ID(), &completed)
	suite.Require().NoError(err)
	completedOnly, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(completedOnly, 1)
	suite.Equal("completed", completedOnly[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestCountOrdersByUser() {
	ctx := context.Background()
	ada := suite.seedUser("ada@example.com", true)
	suite.seedOrder(ada.ID(), 1, "10.00", order.Pending)
	suite.seedOrder(ada.ID(), 1, "10.00", order.Cancelled)

	handler := queries.NewCountOrdersByUserQueryHandler(suite.db)

	query, err := queries.NewCountOrdersByUserQuery(ada.ID())
	suite.Require().NoError(err)
	count, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	query, err = queries.NewCountOrdersByUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	count, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *QueriesIntegrationTestSuite) TestTotalSpentByUser_CountsCompletedOnly() {
	ctx := context.Background()
	ada := suite.seedUser("ada@example.com", true)
	suite.seedOrder(ada.ID(), 2, "10.00", order.Completed)
	suite.seedOrder(ada.ID(), 1, "5.50", order.Completed)
	suite.seedOrder(ada.ID(), 4, "99.99", order.Pending)
	suite.seedOrder(ada.ID(), 4, "99.99", order.Cancelled)

	handler := queries.NewTotalSpentByUserQueryHandler(suite.db)

	query, err := queries.NewTotalSpentByUserQuery(ada.ID())
	suite.Require().NoError(err)
	total, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.RequireFromString("25.50")), "got %s", total)

	query, err = queries.NewTotalSpentByUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	total, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(total.IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestGetUserStatistics() {
	ctx := context.Background()
	ada := suite.seedUser("ada@example.com", true)
	suite.seedOrder(ada.ID(), 1, "10.00", order.Completed)
	suite.seedOrder(ada.ID(), 2, "10.00", order.Completed)
	suite.seedOrder(ada.ID(), 1, "5.00", order.Pending)

	query, err := queries.NewGetUserStatisticsQuery(ada.ID())
	suite.Require().NoError(err)

	stats, err := queries.NewGetUserStatisticsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(ada.ID().IsEqual(stats.UserID))
	suite.Require().NotNil(stats.UserEmail)
	suite.Equal("ada@example.com", *stats.UserEmail)
	suite.Equal(int64(3), stats.TotalOrders)
	suite.Equal(int64(1), stats.PendingOrders)
	suite.Equal(int64(2), stats.CompletedOrders)
	suite.True(stats.TotalSpent.Equal(decimal.RequireFromString("30.00")), "got %s", stats.TotalSpent)
	// Average spreads completed spend over all orders, matching 30.00 / 3.
	suite.True(stats.AverageOrderValue.Equal(decimal.RequireFromString("10.00")), "got %s", stats.AverageOrderValue)
}

func (suite *QueriesIntegrationTestSuite) TestGetUserStatistics_UnknownUser_ReturnsZeros() {
	query, err := queries.NewGetUserStatisticsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	stats, err := queries.NewGetUserStatisticsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Nil(stats.UserEmail)
	suite.Zero(stats.TotalOrders)
	suite.Zero(stats.PendingOrders)
	suite.Zero(stats.CompletedOrders)
	suite.True(stats.TotalSpent.IsZero())
	suite.True(stats.AverageOrderValue.IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestHandle_NotConstructedQuery_Fails() {
	ctx := context.Background()

	_, err := queries.NewGetUserByIDQueryHandler(suite.db).Handle(ctx, queries.GetUserByIDQuery{})
	suite.ErrorIs(err, queries.ErrGetUserByIDQueryIsNotConstructed)

	_, err = queries.NewGetOrderByIDQueryHandler(suite.db).Handle(ctx, queries.GetOrderByIDQuery{})
	suite.Error(err)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
