// Package testutil поднимает инфраструктуру для интеграционных тестов через testcontainers.
// В -short режиме тесты, которым нужен контейнер, пропускаются.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// Endpoint — адрес поднятого контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает адрес "host:port".
func (e Endpoint) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port)
}

// start пропускает тест в -short режиме, запускает контейнер и гасит его в t.Cleanup.
func start(t *testing.T, name string, port nat.Port, run func(ctx context.Context) (testcontainers.Container, error)) Endpoint {
	t.Helper()
	if testing.Short() {
		t.Skipf("пропускаем интеграционный тест (%s) в short режиме", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := run(ctx)
	if err != nil {
		t.Fatalf("%s container: %v", name, err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("%s terminate: %v", name, err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("%s host: %v", name, err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("%s port: %v", name, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}
}

// Postgres — параметры подключения к тестовому PostgreSQL.
type Postgres struct {
	Endpoint
	User     string
	Password string
	DBName   string
}

// StartPostgres поднимает PostgreSQL.
func StartPostgres(t *testing.T) Postgres {
	t.Helper()
	p := Postgres{User: "test", Password: "test", DBName: "arweavecost"}
	p.Endpoint = start(t, "postgres", "5432", func(ctx context.Context) (testcontainers.Container, error) {
		return postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase(p.DBName),
			postgres.WithUsername(p.User),
			postgres.WithPassword(p.Password),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
	})
	return p
}

// StartRedis поднимает Redis.
func StartRedis(t *testing.T) Endpoint {
	t.Helper()
	return start(t, "redis", "6379", func(ctx context.Context) (testcontainers.Container, error) {
		return redis.Run(ctx,
			"redis:7-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30*time.Second),
			),
		)
	})
}

// StartMongo поднимает MongoDB и возвращает URI для mongo-driver.
func StartMongo(t *testing.T) string {
	t.Helper()
	e := start(t, "mongo", "27017", func(ctx context.Context) (testcontainers.Container, error) {
		return mongodb.Run(ctx,
			"mongo:7",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Waiting for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
	})
	return "mongodb://" + e.Addr()
}

// ClickHouse — параметры подключения к тестовому ClickHouse (нативный порт).
type ClickHouse struct {
	Endpoint
	User     string
	Password string
	Database string
}

// StartClickHouse поднимает ClickHouse.
func StartClickHouse(t *testing.T) ClickHouse {
	t.Helper()
	c := ClickHouse{User: "default", Password: "", Database: "default"}
	c.Endpoint = start(t, "clickhouse", "9000", func(ctx context.Context) (testcontainers.Container, error) {
		return clickhouse.Run(ctx,
			"clickhouse/clickhouse-server:24-alpine",
			clickhouse.WithUsername(c.User),
			clickhouse.WithPassword(c.Password),
			clickhouse.WithDatabase(c.Database),
		)
	})
	return c
}
