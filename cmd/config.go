package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config carries everything the process needs at startup. Fields are loaded
// from the environment via envconfig; a .env file is honored when present.
type Config struct {
	HTTPPort string `env:"HTTP_PORT, default=8080"`

	DBHost     string `env:"DB_HOST, default=localhost"`
	DBPort     string `env:"DB_PORT, default=5432"`
	DBUser     string `env:"DB_USER, default=postgres"`
	DBPassword string `env:"DB_PASSWORD, default=postgres"`
	DBName     string `env:"DB_NAME, default=orders"`
	DBSslMode  string `env:"DB_SSLMODE, default=disable"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// MaxOrderQuantity caps the quantity of a single order.
	MaxOrderQuantity int `env:"MAX_ORDER_QUANTITY, default=1000"`

	// MinOrderValue is the minimum accepted order total, as a decimal
	// string.
	MinOrderValue string `env:"MIN_ORDER_VALUE, default=1.00"`
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// MinOrderValueDecimal parses the configured minimum order value.
func (c Config) MinOrderValueDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.MinOrderValue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid MIN_ORDER_VALUE %q: %w", c.MinOrderValue, err)
	}
	return d, nil
}
