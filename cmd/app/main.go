package main

import (
	"context"
	"fmt"
	"os"

	"orders/cmd"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/notify"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/userrepo"
	"orders/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load(".env")

	ctx := context.Background()

	var config cmd.Config
	if err := envconfig.Process(ctx, &config); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  config.LogLevel,
		Pretty: config.LogPretty,
	})

	minOrderValue, err := config.MinOrderValueDecimal()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	notifier := notify.NewLogNotifier(log)
	root := cmd.NewCompositionRoot(db, notifier, config.MaxOrderQuantity, minOrderValue)

	userHandler := httpadapter.NewUserHandler(
		root.CreateCreateUserCommandHandler(),
		root.CreateUpdateUserCommandHandler(),
		root.CreateDeleteUserCommandHandler(),
		root.CreateGetUserByIDQueryHandler(),
		root.CreateListUsersQueryHandler(),
		root.CreateUserExistsQueryHandler(),
		root.CreateListOrdersByUserQueryHandler(),
		root.CreateGetUserStatisticsQueryHandler(),
	)
	orderHandler := httpadapter.NewOrderHandler(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.CreateListOrdersQueryHandler(),
	)
	authHandler := httpadapter.NewAuthHandler(
		root.CreateAuthenticateUserCommandHandler(),
		root.CreateGetUserByIDQueryHandler(),
	)

	e := httpadapter.NewRouter(log, db, userHandler, orderHandler, authHandler)

	log.Info().Str("port", config.HTTPPort).Msg("starting http server")
	if err = e.Start("0.0.0.0:" + config.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
