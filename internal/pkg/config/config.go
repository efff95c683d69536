package config

import (
	"fmt"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/quote"
	"hotel-booking-core/internal/domain/tax"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Cache   CacheConfig
	CORS    CORSConfig
	Log     LogConfig
	Pricing PricingConfig
	Tax     TaxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type CacheConfig struct {
	Driver     string        `envconfig:"CACHE_DRIVER" default:"memory"`
	RedisURL   string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	KeyPrefix  string        `envconfig:"CACHE_KEY_PREFIX" default:"hbc:"`
	CatalogTTL time.Duration `envconfig:"CACHE_CATALOG_TTL" default:"10m"`
	StatusTTL  time.Duration `envconfig:"CACHE_ROOM_STATUS_TTL" default:"1m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type PricingConfig struct {
	WeekendEnabled bool     `envconfig:"PRICING_WEEKEND_ENABLED" default:"false"`
	WeekendDays    []string `envconfig:"PRICING_WEEKEND_DAYS" default:"saturday,sunday"`
	WeekendKind    string   `envconfig:"PRICING_WEEKEND_KIND" default:"percent"`
	WeekendValue   string   `envconfig:"PRICING_WEEKEND_VALUE" default:"0"`

	HolidayEnabled bool     `envconfig:"PRICING_HOLIDAY_ENABLED" default:"false"`
	Holidays       []string `envconfig:"PRICING_HOLIDAYS"`
	HolidayKind    string   `envconfig:"PRICING_HOLIDAY_KIND" default:"percent"`
	HolidayValue   string   `envconfig:"PRICING_HOLIDAY_VALUE" default:"0"`

	// apply both weekend and holiday adjustments instead of the larger one
	StackAdjustments bool `envconfig:"PRICING_STACK_ADJUSTMENTS" default:"false"`

	// chargeable or free
	MissingChildAges string `envconfig:"PRICING_MISSING_CHILD_AGES" default:"chargeable"`
}

type TaxConfig struct {
	Mode              string `envconfig:"TAX_MODE" default:"disabled"`
	AccommodationRate string `envconfig:"TAX_ACCOMMODATION_RATE" default:"0"`
	ExtrasRate        string `envconfig:"TAX_EXTRAS_RATE" default:"0"`
	Rounding          string `envconfig:"TAX_ROUNDING" default:"per_line"`
	Decimals          int32  `envconfig:"TAX_DECIMALS" default:"2"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Settings builds the pricing configuration object handed to the rate resolver.
// Unparseable values fall back to "no adjustment".
func (c PricingConfig) Settings() pricing.Settings {
	return pricing.Settings{
		Weekend: pricing.Adjustment{
			Enabled: c.WeekendEnabled,
			Kind:    pricing.AdjustmentKind(strings.ToLower(c.WeekendKind)),
			Value:   parseDecimal(c.WeekendValue),
		},
		WeekendDays: c.WeekendDays,
		Holiday: pricing.Adjustment{
			Enabled: c.HolidayEnabled,
			Kind:    pricing.AdjustmentKind(strings.ToLower(c.HolidayKind)),
			Value:   parseDecimal(c.HolidayValue),
		},
		Holidays: c.Holidays,
		Stack:    c.StackAdjustments,
	}
}

func (c PricingConfig) ChildPolicy() quote.ChildPolicy {
	return quote.ChildPolicy{MissingAges: quote.MissingAgePolicy(strings.ToLower(c.MissingChildAges))}
}

func (c TaxConfig) Settings() tax.Settings {
	return tax.Settings{
		Mode:              tax.Mode(strings.ToLower(c.Mode)),
		AccommodationRate: parseDecimal(c.AccommodationRate),
		ExtrasRate:        parseDecimal(c.ExtrasRate),
		Rounding:          tax.Rounding(strings.ToLower(c.Rounding)),
		Decimals:          c.Decimals,
	}.Normalize()
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LoadConfig reads the environment and rejects settings that cannot be
// degraded to a safe default.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate covers infrastructure choices only. Pricing and tax values degrade
// to "no adjustment" / "disabled" instead of failing startup.
func (c Config) Validate() error {
	switch strings.ToLower(c.Cache.Driver) {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return errs.Newf("unknown CACHE_DRIVER %q", c.Cache.Driver)
	}
	if c.Cache.CatalogTTL <= 0 || c.Cache.StatusTTL <= 0 {
		return errs.New("cache TTLs must be positive")
	}
	if !c.Pricing.ChildPolicy().MissingAges.IsValid() {
		return errs.Newf("unknown PRICING_MISSING_CHILD_AGES %q", c.Pricing.MissingChildAges)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Cache: CacheConfig{
			Driver:     "memory",
			KeyPrefix:  "test:",
			CatalogTTL: time.Minute,
			StatusTTL:  time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Pricing: PricingConfig{
			WeekendDays:      []string{"saturday", "sunday"},
			WeekendKind:      "percent",
			WeekendValue:     "0",
			HolidayKind:      "percent",
			HolidayValue:     "0",
			MissingChildAges: "chargeable",
		},
		Tax: TaxConfig{
			Mode:              "disabled",
			AccommodationRate: "0",
			ExtrasRate:        "0",
			Rounding:          "per_line",
			Decimals:          2,
		},
	}
}
