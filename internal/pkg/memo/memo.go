// Package memo — мемоизация асинхронных вызовов к внешним источникам.
// Одинаковые вызовы (один ключ) в пределах TTL получают один и тот же результат, апстрим вызывается один раз.
package memo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrKey возвращается, когда аргументы не удаётся сериализовать в ключ.
var ErrKey = errors.New("memo: build key")

// Причины вытеснения записи (лейбл метрики).
const (
	reasonTTL     = "ttl"
	reasonError   = "error"
	reasonSettled = "settled"
)

// Config — настройки кэша. Переменные: ESTIMATOR_CACHE_TTL.
type Config struct {
	TTL time.Duration `envconfig:"TTL" default:"30s"`
}

// Func — мемоизируемая операция.
type Func func(ctx context.Context) (any, error)

// entry — результат одного вызова: в полёте или завершённый.
type entry struct {
	key   string
	done  chan struct{}
	val   any
	err   error
	timer *clock.Timer
}

// Cache — таблица записей мемоизации. Безопасен для конкурентного использования.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	log     *slog.Logger
	entries map[string]*entry
}

// Option настраивает Cache при создании.
type Option func(*Cache)

// WithClock подменяет часы (в тестах — clock.NewMock()).
func WithClock(c clock.Clock) Option {
	return func(cache *Cache) {
		cache.clock = c
	}
}

// WithLogger задаёт логгер.
func WithLogger(log *slog.Logger) Option {
	return func(cache *Cache) {
		cache.log = log
	}
}

// New создаёт кэш с TTL из конфига.
func New(cfg Config, opts ...Option) *Cache {
	c := &Cache{
		ttl:     cfg.TTL,
		clock:   clock.New(),
		log:     slog.Default(),
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewKey строит ключ из явного неймспейса операции и JSON-сериализации аргументов, например "storage-cost[1024]".
func NewKey(namespace string, args ...any) (string, error) {
	if args == nil {
		args = []any{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrKey, namespace, err)
	}
	return namespace + string(b), nil
}

// namespaceOf достаёт неймспейс из ключа, построенного NewKey.
func namespaceOf(key string) string {
	if i := strings.IndexByte(key, '['); i >= 0 {
		return key[:i]
	}
	return key
}

// Get возвращает результат fn по ключу. Если живая запись есть — ждёт её и отдаёт тот же результат или ту же ошибку.
// Иначе создаёт запись, запускает fn один раз и планирует вытеснение через TTL от момента вставки.
// fn получает контекст без отмены: если вызывающий перестал ждать (ctx отменён), общий запрос всё равно доработает.
func (c *Cache) Get(ctx context.Context, key string, fn Func) (any, error) {
	c.mu.Lock()
	e, found := c.entries[key]
	if !found {
		e = &entry{key: key, done: make(chan struct{})}
		c.entries[key] = e
		ttl := c.ttl
		if ttl > 0 {
			e.timer = c.clock.AfterFunc(ttl, func() { c.evict(e, reasonTTL) })
		}
		go c.run(context.WithoutCancel(ctx), e, fn, ttl)
	}
	c.mu.Unlock()

	result := "miss"
	if found {
		result = "hit"
	}
	lookupsTotal.WithLabelValues(namespaceOf(key), result).Inc()

	select {
	case <-e.done:
		return e.val, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// run выполняет fn и публикует результат. Упавшая запись (и любая запись при TTL 0) вытесняется
// до того, как ждущие увидят результат, чтобы следующий вызов шёл в апстрим заново.
func (c *Cache) run(ctx context.Context, e *entry, fn Func, ttl time.Duration) {
	defer close(e.done)
	defer func() {
		if r := recover(); r != nil {
			e.val, e.err = nil, fmt.Errorf("memo: %s panicked: %v", e.key, r)
			c.evict(e, reasonError)
		}
	}()

	e.val, e.err = fn(ctx)
	switch {
	case e.err != nil:
		c.log.Debug("memo call failed", "key", e.key, "error", e.err)
		c.evict(e, reasonError)
	case ttl <= 0:
		c.evict(e, reasonSettled)
	}
}

// evict удаляет запись, если в таблице всё ещё лежит именно она (старый таймер не трогает новую запись).
func (c *Cache) evict(e *entry, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[e.key]; !ok || cur != e {
		return
	}
	delete(c.entries, e.key)
	if e.timer != nil {
		e.timer.Stop()
	}
	evictionsTotal.WithLabelValues(reason).Inc()
	c.log.Debug("memo entry evicted", "key", e.key, "reason", reason)
}

// SetTTL меняет TTL для записей, созданных после вызова. Уже запланированные вытеснения не меняются.
func (c *Cache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// TTL возвращает текущий TTL.
func (c *Cache) TTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// Clear удаляет все записи и останавливает их таймеры. Запросы в полёте доработают, но в таблицу не вернутся.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(c.entries, key)
	}
	c.log.Debug("memo cleared")
}

// Len возвращает число живых записей.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Keys возвращает ключи живых записей (отсортированы).
func (c *Cache) Keys() []string {
	c.mu.Lock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Do — типизированная обёртка над Get.
func Do[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("memo: value for %s has type %T", key, v)
	}
	return t, nil
}
