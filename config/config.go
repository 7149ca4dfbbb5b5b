package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	Session struct {
		Secret    string `envconfig:"SECRET"`
		Salt      string `envconfig:"SALT"`
		ExpireMin int    `envconfig:"EXPIRE_MIN"`
	} `envconfig:"SESSION"`

	DB struct {
		Mongo struct {
			URI                 string `envconfig:"URI"`
			Database            string `envconfig:"DATABASE"`
			ReadTimeoutSeconds  int    `envconfig:"READ_TIMEOUT_SECONDS"`
			WriteTimeoutSeconds int    `envconfig:"WRITE_TIMEOUT_SECONDS"`
		} `envconfig:"MONGO"`
	} `envconfig:"DB"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		Enable        bool     `envconfig:"ENABLE"`
		OrderTopic    string   `envconfig:"ORDER_TOPIC"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Razorpay struct {
			Enable    bool   `envconfig:"ENABLE"`
			KeyID     string `envconfig:"KEY_ID"`
			KeySecret string `envconfig:"KEY_SECRET"`
		} `envconfig:"RAZORPAY"`

		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`

		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
