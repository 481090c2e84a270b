package cmd_test

import (
	"testing"
	"time"

	"studel/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := cmd.Config{AuthJWTSecret: "s"}.WithDefaults()

	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, c.Storage)
	assert.Equal(t, "disable", c.DBSslMode)
	assert.Equal(t, cmd.DefaultOrderChangedTopic, c.KafkaOrderChangedTopic)
	assert.Equal(t, cmd.DefaultOutboxRelaySchedule, c.OutboxRelaySchedule)
	assert.Equal(t, cmd.DefaultDailyReportSchedule, c.DailyReportSchedule)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("memory storage needs only a secret", func(t *testing.T) {
		c := cmd.Config{Storage: cmd.StorageMemory, AuthJWTSecret: "s"}
		assert.NoError(t, c.Validate())
	})

	t.Run("postgres storage needs connection settings", func(t *testing.T) {
		c := cmd.Config{Storage: cmd.StoragePostgres, AuthJWTSecret: "s", DBHost: "localhost"}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT is required")
		assert.Contains(t, err.Error(), "DB_NAME is required")
		assert.NotContains(t, err.Error(), "DB_HOST")
	})

	t.Run("all problems are reported together", func(t *testing.T) {
		c := cmd.Config{Storage: "sqlite", AppTimezone: "Mars/Olympus"}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE must be")
		assert.Contains(t, err.Error(), "AUTH_JWT_SECRET is required")
		assert.Contains(t, err.Error(), "APP_TIMEZONE")
	})
}

func TestConfig_Location(t *testing.T) {
	loc, err := cmd.Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = cmd.Config{AppTimezone: "Asia/Kolkata"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestConfig_DSNAndBrokers(t *testing.T) {
	c := cmd.Config{
		DBHost: "db", DBPort: "5432", DBUser: "studel", DBPassword: "pw", DBName: "orders", DBSslMode: "disable",
		KafkaHost: "k1:9092, k2:9092,",
	}

	assert.Equal(t, "host=db port=5432 user=studel password=pw dbname=orders sslmode=disable", c.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers())
	assert.Empty(t, cmd.Config{}.KafkaBrokers())
}
