package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `env:"ENV" envDefault:"local"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"48h"`
	SearchDebounce    time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"250ms"`
	LayoutDebounce    time.Duration `env:"LAYOUT_DEBOUNCE" envDefault:"150ms"`
	MessageMaxLen     int           `env:"MESSAGE_MAX_LEN" envDefault:"4000"`
	Telegram          Telegram
	Catalog           Catalog
	Pagination        Pagination
	Contact           Contact
	Postgres          Postgres
	Redis             Redis
	Mail              Mail
}

type Telegram struct {
	Token      string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

type Catalog struct {
	BaseUrl        string        `env:"CATALOG_BASE_URL"`
	PagePattern    string        `env:"CATALOG_PAGE_PATTERN" envDefault:"/data/data%d.json"`
	MaxProbe       int           `env:"CATALOG_MAX_PROBE" envDefault:"200"`
	RequestTimeout time.Duration `env:"CATALOG_REQUEST_TIMEOUT" envDefault:"15s"`
	ProxyUrl       string        `env:"PROXY_URL" envDefault:""`
	PageCacheTTL   time.Duration `env:"CATALOG_PAGE_CACHE_TTL" envDefault:"0s"`
}

// Pagination sizes the page strip. Width is the assumed keyboard width in pixels
// and ButtonMinWidth the space one page button needs.
type Pagination struct {
	Width          int `env:"PAGINATION_WIDTH" envDefault:"352"`
	ButtonMinWidth int `env:"PAGINATION_BUTTON_MIN_WIDTH" envDefault:"44"`
	MinVisible     int `env:"PAGINATION_MIN_VISIBLE" envDefault:"5"`
	MaxVisible     int `env:"PAGINATION_MAX_VISIBLE" envDefault:"8"`
}

type Contact struct {
	Phone    string `env:"CONTACT_PHONE" envDefault:""`
	Greeting string `env:"CONTACT_GREETING" envDefault:"Hi, I want to get this template:"`
	Email    string `env:"CONTACT_EMAIL" envDefault:""`
}

type Postgres struct {
	Host            string `env:"PG_HOST" envDefault:"localhost"`
	Port            int    `env:"PG_PORT" envDefault:"5432"`
	DbName          string `env:"PG_DB_NAME" envDefault:"catalog"`
	Password        string `env:"PG_PASSWORD" envDefault:""`
	User            string `env:"PG_USER" envDefault:"postgres"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Mail is optional: an empty Host disables the /request relay.
type Mail struct {
	Host     string `env:"MAIL_HOST" envDefault:""`
	Port     int    `env:"MAIL_PORT" envDefault:"587"`
	Address  string `env:"MAIL_ADDRESS" envDefault:""`
	Password string `env:"MAIL_PASSWORD" envDefault:""`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
