package system

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"arweaveCost/internal/mocks"
	"arweaveCost/internal/ports"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRouter(repo ports.IEstimateRepository, cache ports.ICacheAdmin) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(repo, cache, newTestLogger()).RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReadiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIEstimateRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Ping(gomock.Any()).Return(nil),
		repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)
	r := newTestRouter(repo, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/readyness", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/readyness", "").Code)
}

func TestReadiness_NoJournal(t *testing.T) {
	r := newTestRouter(nil, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/liveness", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/readyness", "").Code)
	// Админка кэша не включена — маршрута нет.
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/cache", "").Code)
}

func TestCacheAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockICacheAdmin(ctrl)
	cache.EXPECT().TTL().Return(30 * time.Second)
	cache.EXPECT().Keys().Return([]string{"token-prices[]"}).Times(2)
	cache.EXPECT().Clear()
	cache.EXPECT().SetTTL(5 * time.Second)
	r := newTestRouter(nil, cache)

	w := do(r, http.MethodGet, "/api/v1/cache", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got CacheResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, CacheResponse{TTL: "30s", Keys: []string{"token-prices[]"}}, got)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/v1/cache", "").Code)

	w = do(r, http.MethodPut, "/api/v1/cache/ttl", `{"ttl":"5s"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/cache/ttl", `{"ttl":"soon"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/cache/ttl", `{"ttl":"-1s"}`).Code)
}
