package app

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "arweaveCost/internal/api/grpc"
	apihttp "arweaveCost/internal/api/http"
	"arweaveCost/internal/infrastructure/arweave"
	"arweaveCost/internal/infrastructure/click"
	"arweaveCost/internal/infrastructure/coingecko"
	"arweaveCost/internal/infrastructure/kafka"
	"arweaveCost/internal/infrastructure/mongo"
	"arweaveCost/internal/infrastructure/pg"
	"arweaveCost/internal/infrastructure/redis"
	"arweaveCost/internal/pkg/logger"
	"arweaveCost/internal/pkg/memo"
)

const AppName = "ESTIMATOR"

// Бэкенды журнала расчётов.
const (
	JournalNone  = "none"
	JournalPG    = "pg"
	JournalMongo = "mongo"
	JournalRedis = "redis"
)

// JournalConfig — где хранить журнал расчётов. Переменная: ESTIMATOR_JOURNAL_BACKEND.
type JournalConfig struct {
	Backend string `envconfig:"BACKEND" default:"none"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом ESTIMATOR.
type Config struct {
	Log          logger.Config        `envconfig:"LOG"`
	AdminEnabled bool                 `envconfig:"ADMIN_ENABLED" default:"false"`
	Server       apihttp.ServerConfig `envconfig:"SERVER"`
	Grpc         apigrpc.Config       `envconfig:"GRPC"`
	Cache        memo.Config          `envconfig:"CACHE"`
	Coingecko    coingecko.Config     `envconfig:"COINGECKO"`
	Arweave      arweave.Config       `envconfig:"ARWEAVE"`
	Journal      JournalConfig        `envconfig:"JOURNAL"`
	DB           pg.Config            `envconfig:"DB"`
	Mongo        mongo.Config         `envconfig:"MONGO"`
	Redis        redis.Config         `envconfig:"REDIS"`
	Kafka        kafka.Config         `envconfig:"KAFKA"`
	ClickHouse   click.Config         `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig сам не проверит.
func (c Config) Validate() error {
	switch c.Journal.Backend {
	case JournalNone, JournalPG, JournalMongo, JournalRedis:
	default:
		return fmt.Errorf("config: unknown journal backend %q", c.Journal.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: negative cache ttl %s", c.Cache.TTL)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("config: clickhouse analytics requires kafka")
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv, путь из ESTIMATOR_ENV_FILE), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	envFile := os.Getenv(AppName + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("config: %s не найден, используем окружение: %v", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
