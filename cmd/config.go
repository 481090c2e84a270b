package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	DefaultOutboxRelaySchedule = "* * * * * *"
	DefaultDailyReportSchedule = "0 55 23 * * *"
	DefaultOrderChangedTopic   = "order.changed"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Storage selects the persistence adapter: postgres or memory.
	Storage       string
	AuthJWTSecret string
	// AppTimezone is the IANA zone in which calendar days start.
	AppTimezone string

	KafkaHost              string
	KafkaOrderChangedTopic string

	OutboxRelaySchedule string
	DailyReportSchedule string
	LogLevel            string
	SeedDemoData        bool
}

// WithDefaults fills optional settings left empty.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.Storage == "" {
		c.Storage = StoragePostgres
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.KafkaOrderChangedTopic == "" {
		c.KafkaOrderChangedTopic = DefaultOrderChangedTopic
	}
	if c.OutboxRelaySchedule == "" {
		c.OutboxRelaySchedule = DefaultOutboxRelaySchedule
	}
	if c.DailyReportSchedule == "" {
		c.DailyReportSchedule = DefaultDailyReportSchedule
	}
	return c
}

// Validate reports every missing or malformed setting.
func (c Config) Validate() error {
	var problems []error
	switch c.Storage {
	case StoragePostgres:
		for key, value := range map[string]string{
			"DB_HOST": c.DBHost, "DB_PORT": c.DBPort, "DB_USER": c.DBUser, "DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, fmt.Errorf("%s is required for postgres storage", key))
			}
		}
	case StorageMemory:
	default:
		problems = append(problems, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage))
	}
	if c.AuthJWTSecret == "" {
		problems = append(problems, errors.New("AUTH_JWT_SECRET is required"))
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	return errors.Join(problems...)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location resolves AppTimezone; empty means the process local zone.
func (c Config) Location() (*time.Location, error) {
	if c.AppTimezone == "" || strings.EqualFold(c.AppTimezone, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.AppTimezone)
}

// KafkaBrokers splits KafkaHost on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
