package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	platformobservability "github.com/Apurer/go-gin-grubdash-api/internal/platform/observability"
)

func testInstruments() *platformobservability.Instruments {
	return &platformobservability.Instruments{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

type recordingPlacement struct {
	placed []*orderdomain.Order
}

func (p *recordingPlacement) PlaceOrder(_ context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	p.placed = append(p.placed, order)
	return order, nil
}

func TestBuildStores_MemoryBackend(t *testing.T) {
	stores, cleanup := BuildStores(context.Background(), Config{StoreBackend: BackendMemory}, testInstruments().Logger)
	defer cleanup()
	assert.Equal(t, BackendMemory, stores.Backend)
	assert.False(t, stores.Shared())
	require.NotNil(t, stores.Dishes)
	require.NotNil(t, stores.Orders)
}

func TestBuildStores_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg := Config{StoreBackend: BackendRedis, RedisAddr: "127.0.0.1:1"}
	stores, cleanup := BuildStores(context.Background(), cfg, testInstruments().Logger)
	defer cleanup()
	assert.Equal(t, BackendMemory, stores.Backend)
}

func TestNewRouter_ServesSeededCollections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stores := memoryStores()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dishes:
  - id: d1
    name: Soup
    description: Hot
    price: 4
    image_url: http://img
`), 0o600))
	require.NoError(t, applySeed(context.Background(), path, stores, testInstruments().Logger))

	router := NewRouter(stores, testInstruments(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dishes/d1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"d1","name":"Soup","description":"Hot","price":4,"image_url":"http://img"}}`, rec.Body.String())
}

func TestNewRouter_UsesPlacementForNewOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	placement := &recordingPlacement{}
	router := NewRouter(memoryStores(), testInstruments(), placement)

	body := `{"data":{"deliverTo":"Main St","mobileNumber":"555","dishes":[{"dishId":"d1","quantity":2}]}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, placement.placed, 1)
	assert.Equal(t, "Main St", placement.placed[0].DeliverTo)
}

type stalledPlacement struct{}

func (stalledPlacement) PlaceOrder(ctx context.Context, _ *orderdomain.Order) (*orderdomain.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestNewRouter_PlacementTimeoutEndsCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(memoryStores(), testInstruments(), stalledPlacement{}, orderapp.WithPlacementTimeout(20*time.Millisecond))

	body := `{"data":{"deliverTo":"Main St","mobileNumber":"555","dishes":[{"dishId":"d1","quantity":2}]}}`
	rec := httptest.NewRecorder()
	start := time.Now()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestApplySeed_MissingFile(t *testing.T) {
	err := applySeed(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), memoryStores(), testInstruments().Logger)
	require.Error(t, err)
}
