package cmd

import (
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the command and query handlers.
// Each Create method returns a fresh handler; handlers are cheap and carry
// no per-request state beyond the unit of work they open.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	notifier      ports.OrderNotifier
	maxQuantity   int
	minOrderValue decimal.Decimal
}

// NewCompositionRoot builds the root from the shared database connection,
// the notifier, and the configured order bounds.
func NewCompositionRoot(
	gormDB *gorm.DB,
	notifier ports.OrderNotifier,
	maxQuantity int,
	minOrderValue decimal.Decimal,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:      notifier,
		maxQuantity:   maxQuantity,
		minOrderValue: minOrderValue,
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.maxQuantity, c.minOrderValue)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.notifier, c.maxQuantity, c.minOrderValue)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByEmailQueryHandler() queries.GetUserByEmailQueryHandler {
	return queries.NewGetUserByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateUserExistsQueryHandler() queries.UserExistsQueryHandler {
	return queries.NewUserExistsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByUserQueryHandler() queries.ListOrdersByUserQueryHandler {
	return queries.NewListOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByUserQueryHandler() queries.CountOrdersByUserQueryHandler {
	return queries.NewCountOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTotalSpentByUserQueryHandler() queries.TotalSpentByUserQueryHandler {
	return queries.NewTotalSpentByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserStatisticsQueryHandler() queries.GetUserStatisticsQueryHandler {
	return queries.NewGetUserStatisticsQueryHandler(c.gormDB)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
