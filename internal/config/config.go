package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	HTTP        HTTPConfig
	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"12h"`
	Secret      string        `env:"SECRET" env-required:"true"`
	DisableAuth bool          `env:"DISABLE_AUTH" env-default:"false"`
	Minio       MinioConfig
	Feed        FeedConfig
	Matchmaker  MatchmakerConfig
}

type HTTPConfig struct {
	Port            int           `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type MinioConfig struct {
	Enabled           bool   `env:"MINIO_ENABLE" env-default:"false"`
	MinioEndpoint     string `env:"MINIO_ENDPOINT"`
	BucketName        string `env:"MINIO_BUCKET" env-default:"listing-photos"`
	MinioRootUser     string `env:"MINIO_USER"`
	MinioRootPassword string `env:"MINIO_PASSWORD"`
	MinioUseSSL       bool   `env:"MINIO_USE_SSL"`
}

// FeedConfig points at the external blog feed the content pages pull from.
type FeedConfig struct {
	Enabled bool          `env:"FEED_ENABLE" env-default:"false"`
	BaseURL string        `env:"FEED_BASE_URL"`
	Timeout time.Duration `env:"FEED_TIMEOUT" env-default:"10s"`
}

// MatchmakerConfig tunes the scoring engine without a redeploy.
type MatchmakerConfig struct {
	TopN int `env:"MATCHMAKER_TOP_N" env-default:"3"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config from environment: " + err.Error())
	}
	return &cfg
}
