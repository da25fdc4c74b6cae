package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
		Auth       `yaml:"auth"`
	}

	App struct {
		Name     string `yaml:"name" env-required:"true"`
		Version  string `yaml:"version" env-required:"true"`
		Timezone string `yaml:"timezone" env:"APP_TIMEZONE" env-default:"UTC"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL         string `env-required:"true" env:"PG_URL"`
	}

	HTTP struct {
		Port      string  `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		RateLimit float64 `yaml:"rate_limit" env:"HTTP_RATE_LIMIT" env-default:"20"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"stashboard.events"`
	}

	Auth struct {
		AdminOwner  string `yaml:"admin_owner" env:"AUTH_ADMIN_OWNER" env-default:"admin"`
		AdminToken  string `env:"AUTH_ADMIN_TOKEN"`
		AdminSecret string `env:"AUTH_ADMIN_SECRET"`
	}
)

const ENV_PATH = "infra/.env.dev"

func init() {
	err := godotenv.Load(ENV_PATH)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", ENV_PATH).Info("Env file not found, using process environment")
	default:
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func New() (*Config, error) {
	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
