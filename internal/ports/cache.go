package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "time"

// ICacheAdmin — операционные ручки мемо-кэша апстримов: посмотреть ключи, сбросить, поменять TTL.
// Не часть продового контракта, нужно для тестов и ручного сброса.
type ICacheAdmin interface {
	Keys() []string
	Clear()
	SetTTL(ttl time.Duration)
	TTL() time.Duration
}
