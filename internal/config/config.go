package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Shop     ShopConfig     `toml:"shop"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"` // 0 = без дедлайна (нужно для SSE)
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig настройки доступа к админским эндпоинтам
type AdminConfig struct {
	Token string `toml:"token"`
}

// ShopConfig правила работы барбершопа.
// Загружаются один раз при старте и дальше неизменны.
type ShopConfig struct {
	WorkingHours      []string       `toml:"working_hours"`
	ServiceDurations  map[string]int `toml:"service_durations"`
	ClosedWeekdays    []int          `toml:"closed_weekdays"` // 0 = Sunday ... 6 = Saturday
	MaxBookingsPerDay int            `toml:"max_bookings_per_day"`
	MaxDaysAhead      int            `toml:"max_days_ahead"`
	CooldownMinutes   int            `toml:"cooldown_minutes"`
}

// Load читает конфигурацию из TOML-файла и накладывает переменные окружения.
// Файл .env, если он есть рядом с бинарем, подхватывается автоматически.
func Load(path string) (*Config, error) {
	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ToRules конвертирует секцию [shop] в доменные правила
func (c *Config) ToRules() (domain.ShopRules, error) {
	rules := domain.ShopRules{
		ServiceDurations:  make(map[string]int, len(c.Shop.ServiceDurations)),
		MaxBookingsPerDay: c.Shop.MaxBookingsPerDay,
		MaxDaysAhead:      c.Shop.MaxDaysAhead,
		CooldownMinutes:   c.Shop.CooldownMinutes,
	}

	for _, hour := range c.Shop.WorkingHours {
		ts, err := types.NewTimeStringFromString(hour)
		if err != nil {
			return domain.ShopRules{}, fmt.Errorf("%w: working hour %q: %v", ErrInvalidConfig, hour, err)
		}
		rules.WorkingHours = append(rules.WorkingHours, ts)
	}

	for service, duration := range c.Shop.ServiceDurations {
		if duration <= 0 {
			return domain.ShopRules{}, fmt.Errorf("%w: service %q has non-positive duration %d", ErrInvalidConfig, service, duration)
		}
		rules.ServiceDurations[service] = duration
	}

	for _, wd := range c.Shop.ClosedWeekdays {
		if wd < 0 || wd > 6 {
			return domain.ShopRules{}, fmt.Errorf("%w: closed weekday %d out of range", ErrInvalidConfig, wd)
		}
		rules.ClosedWeekdays = append(rules.ClosedWeekdays, time.Weekday(wd))
	}

	return rules, nil
}

// applyDefaults заполняет незаданные значения дефолтами
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 3000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	// WriteTimeout остается 0: SSE поток держит соединение открытым,
	// дедлайн на запись его убьет
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "mt-booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	// Дефолтные правила магазина, если секция [shop] не заполнена
	defaults := domain.DefaultRules()
	if len(c.Shop.WorkingHours) == 0 {
		for _, ts := range defaults.WorkingHours {
			c.Shop.WorkingHours = append(c.Shop.WorkingHours, ts.String())
		}
	}
	if len(c.Shop.ServiceDurations) == 0 {
		c.Shop.ServiceDurations = defaults.ServiceDurations
	}
	if len(c.Shop.ClosedWeekdays) == 0 {
		for _, wd := range defaults.ClosedWeekdays {
			c.Shop.ClosedWeekdays = append(c.Shop.ClosedWeekdays, int(wd))
		}
	}
	if c.Shop.MaxBookingsPerDay == 0 {
		c.Shop.MaxBookingsPerDay = defaults.MaxBookingsPerDay
	}
	if c.Shop.MaxDaysAhead == 0 {
		c.Shop.MaxDaysAhead = defaults.MaxDaysAhead
	}
	if c.Shop.CooldownMinutes == 0 {
		c.Shop.CooldownMinutes = defaults.CooldownMinutes
	}
}

// applyEnv накладывает переменные окружения поверх файла.
// Набор имен совпадает с .env деплоя: PORT, DB_*, ADMIN_TOKEN.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
}

// validate проверяет обязательные значения
func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database host is required", ErrInvalidConfig)
	}
	if c.Database.User == "" {
		return fmt.Errorf("%w: database user is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database name is required", ErrInvalidConfig)
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("%w: admin token is required", ErrInvalidConfig)
	}
	return nil
}
