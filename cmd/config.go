package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"

	OrderSinkLog  = "log"
	OrderSinkStan = "stan"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SessionStore          string
	SessionIdleTimeout    time.Duration
	SessionExpirySchedule string
	PickupPoints          []string

	OrderSink     string
	StanClusterID string
	StanClientID  string
	NatsURL       string
	StanSubject   string
}

// LoadConfig reads envFile when it exists, then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	idleTimeout, idleErr := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "30m"))
	if idleErr != nil {
		idleErr = errs.NewValueIsInvalidErrorWithCause("SESSION_IDLE_TIMEOUT", idleErr)
	}

	config := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8082"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "checkout"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		SessionStore:          getEnv("SESSION_STORE", SessionStoreMemory),
		SessionIdleTimeout:    idleTimeout,
		SessionExpirySchedule: getEnv("SESSION_EXPIRY_SCHEDULE", "0 * * * * *"),
		PickupPoints:          parseList(os.Getenv("PICKUP_POINTS"), checkout.DefaultPickupPoints),

		OrderSink:     getEnv("ORDER_SINK", OrderSinkLog),
		StanClusterID: getEnv("STAN_CLUSTER_ID", "test-cluster"),
		StanClientID:  getEnv("STAN_CLIENT_ID", fmt.Sprintf("checkout-%d", time.Now().UnixNano())),
		NatsURL:       getEnv("NATS_URL", "nats://localhost:4222"),
		StanSubject:   getEnv("STAN_SUBJECT", "checkout.orders"),
	}

	if err := errors.Join(idleErr, config.Validate()); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the settings that select adapters.
func (c Config) Validate() error {
	var errList []error

	if c.HTTPPort == "" {
		errList = append(errList, errs.NewValueIsRequiredError("HTTP_PORT"))
	}

	switch c.SessionStore {
	case SessionStoreMemory, SessionStorePostgres:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SESSION_STORE",
			fmt.Errorf("%q is neither %q nor %q", c.SessionStore, SessionStoreMemory, SessionStorePostgres)))
	}

	switch c.OrderSink {
	case OrderSinkLog, OrderSinkStan:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ORDER_SINK",
			fmt.Errorf("%q is neither %q nor %q", c.OrderSink, OrderSinkLog, OrderSinkStan)))
	}

	if c.SessionIdleTimeout < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SESSION_IDLE_TIMEOUT",
			fmt.Errorf("%s is negative", c.SessionIdleTimeout)))
	}

	if len(c.PickupPoints) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("PICKUP_POINTS"))
	}

	return errors.Join(errList...)
}

// DSN is the gorm/pgx connection string for DBName.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseList splits a ';' separated list. Labels may contain commas.
func parseList(raw string, def []string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), def...)
	}

	var result []string
	for _, item := range strings.Split(raw, ";") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
