package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/detection-map-backend/internal/mocks"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
)

func newRouter(t *testing.T, withUploads bool) (*server.Router, *mocks.MockMapService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mapSvc := mocks.NewMockMapService(ctrl)
	reg := prometheus.NewRegistry()

	cfg := server.RouterConfig{
		InformationHandler: handler.NewInformationHandler(mocks.NewMockInformationService(ctrl)),
		MapHandler:         handler.NewMapHandler(mapSvc),
		HTTPObserver:       observability.NewMetrics(reg),
		Gatherer:           reg,
		CORS:               config.CORSConfig{Origin: "*"},
		Logger:             zap.NewNop(),
	}
	if withUploads {
		cfg.UploadHandler = handler.NewUploadHandler(mocks.NewMockUploadService(ctrl), 0)
	}
	return server.NewRouter(cfg), mapSvc
}

func TestRouter_Routes(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		r, _ := newRouter(t, false)

		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics exposes request counter", func(t *testing.T) {
		r, mapSvc := newRouter(t, false)
		mapSvc.EXPECT().TileProviders().Return([]mapview.TileProvider{})
		mapSvc.EXPECT().InitialCamera().Return(mapview.InitialCamera{Zoom: 12})

		r.Engine().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/map/tiles", nil))

		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `route="/api/v1/map/tiles"`)
	})

	t.Run("image routes absent without storage", func(t *testing.T) {
		r, _ := newRouter(t, false)

		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/images/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("image routes present with storage", func(t *testing.T) {
		r, _ := newRouter(t, true)

		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/images/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
