package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "arweaveCost/internal/api/grpc"
	apihttp "arweaveCost/internal/api/http"
	estimatorctl "arweaveCost/internal/api/http/controllers/estimator"
	"arweaveCost/internal/api/http/controllers/system"
	"arweaveCost/internal/infrastructure/arweave"
	"arweaveCost/internal/infrastructure/click"
	"arweaveCost/internal/infrastructure/coingecko"
	"arweaveCost/internal/infrastructure/kafka"
	"arweaveCost/internal/infrastructure/mongo"
	"arweaveCost/internal/infrastructure/pg"
	"arweaveCost/internal/infrastructure/redis"
	"arweaveCost/internal/pkg/logger"
	"arweaveCost/internal/pkg/memo"
	"arweaveCost/internal/ports"
	"arweaveCost/internal/usecase/estimator"
)

var _ ports.ICacheAdmin = (*memo.Cache)(nil)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения — в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run поднимает зависимости по конфигу, запускает gRPC и HTTP и ждёт SIGINT/SIGTERM (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := memo.New(a.cfg.Cache, memo.WithLogger(log))
	defer cache.Clear()

	repo, closeRepo, err := a.openJournal(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	var broker ports.IProducer
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer
	}

	var analytics ports.IEstimateAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewEstimateWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = writer
	}

	uc := estimator.New(
		coingecko.New(&a.cfg.Coingecko, log),
		arweave.New(&a.cfg.Arweave, log),
		cache, repo, broker, analytics, log,
	)

	if broker != nil && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcAddr := a.cfg.Grpc.Addr()
	grpcSrv := apigrpc.NewServer(grpcAddr, uc, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	var admin ports.ICacheAdmin
	if a.cfg.AdminEnabled {
		admin = cache
	}
	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, admin, log),
		estimatorctl.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	log.Info("application started",
		"http", httpAddr,
		"grpc", grpcAddr,
		"journal", a.cfg.Journal.Backend,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled,
		"cache_ttl", a.cfg.Cache.TTL,
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

// openJournal подключает выбранный бэкенд журнала. Для "none" возвращает nil-репозиторий.
func (a *App) openJournal(ctx context.Context, log *slog.Logger) (ports.IEstimateRepository, func(), error) {
	noop := func() {}
	switch a.cfg.Journal.Backend {
	case JournalPG:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewEstimateRepo(db, log), func() { _ = db.Close() }, nil
	case JournalMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, noop, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewEstimateRepo(cli, log), func() { _ = cli.Close() }, nil
	case JournalRedis:
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("redis: %w", err)
		}
		return redis.NewEstimateRepo(rdb, log), func() { _ = rdb.Close() }, nil
	default:
		return nil, noop, nil
	}
}
