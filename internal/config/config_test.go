package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "postgres"
dbname = "mt_booking"

[admin]
token = "secret"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	// Дефолтный WriteTimeout нулевой, иначе SSE обрывается
	assert.Equal(t, 0, cfg.Server.WriteTimeout)

	// Секция [shop] не задана: подтягиваются стандартные правила
	assert.Len(t, cfg.Shop.WorkingHours, 15)
	assert.Equal(t, 20, cfg.Shop.MaxBookingsPerDay)
	assert.Equal(t, 30, cfg.Shop.MaxDaysAhead)
	assert.Equal(t, 5, cfg.Shop.CooldownMinutes)
	assert.Equal(t, []int{0}, cfg.Shop.ClosedWeekdays)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-token", cfg.Admin.Token)
}

func TestLoad_MissingAdminToken(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
dbname = "mt_booking"
`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "pw",
		DBName:   "bookings",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=bookings sslmode=disable", db.DSN())
}

func TestToRules(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[shop]
working_hours = ["09:00", "09:30"]
closed_weekdays = [0, 1]
max_bookings_per_day = 3
max_days_ahead = 7
cooldown_minutes = 10

[shop.service_durations]
"Haircut" = 30
`))
	require.NoError(t, err)

	rules, err := cfg.ToRules()
	require.NoError(t, err)

	assert.Len(t, rules.WorkingHours, 2)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, rules.ClosedWeekdays)
	assert.Equal(t, 3, rules.MaxBookingsPerDay)
	assert.Equal(t, map[string]int{"Haircut": 30}, rules.ServiceDurations)
}

func TestToRules_RejectsBadValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	cfg.Shop.WorkingHours = []string{"25:99"}
	_, err = cfg.ToRules()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err = Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	cfg.Shop.ServiceDurations = map[string]int{"Haircut": 0}
	_, err = cfg.ToRules()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
