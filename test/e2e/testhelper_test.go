package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/source"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/information"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/upload"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	pgContainer, err := postgres.Run(ctx,
		"postgis/postgis:18-3.6-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	// Repositories
	infoRepo := pgRepo.NewInformationRepo(pool, logger)
	imageRepo := pgRepo.NewImageRepo(pool)

	// Stub storage for e2e tests (avoids S3 dependency)
	stubStorage := &stubImageStorage{}
	stubProcessor := &stubImageProcessor{}

	// Use cases
	fitter := viewport.NewFitter(logger, metrics)
	mapSvc := mapview.NewService(source.NewDatabaseSource(infoRepo, metrics), fitter, mapview.Settings{
		Options:       viewport.DefaultOptions(),
		InitialCenter: valueobject.NewLatLon(42.8125, -1.6458),
		InitialZoom:   12,
	}, logger)
	infoSvc := information.NewService(infoRepo, imageRepo, stubStorage, time.Hour, logger)
	uploadSvc := upload.NewService(imageRepo, infoRepo, stubStorage, stubProcessor, time.Hour, logger)

	router := server.NewRouter(server.RouterConfig{
		InformationHandler: handler.NewInformationHandler(infoSvc),
		MapHandler:         handler.NewMapHandler(mapSvc),
		UploadHandler:      handler.NewUploadHandler(uploadSvc, 0),
		HTTPObserver:       metrics,
		Gatherer:           registry,
		CORS:               config.CORSConfig{Origin: "*", MaxAge: time.Hour},
		Logger:             logger,
		Environment:        "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, apiBasePath+path, nil)
}

func (app *TestApp) getRoot(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, apiBasePath+path, body)
}

func (app *TestApp) delete(path string) (*http.Response, error) {
	return app.request(http.MethodDelete, apiBasePath+path, nil)
}

func (app *TestApp) uploadImage(t *testing.T, path, picDate string) (*http.Response, error) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if picDate != "" {
		require.NoError(t, writer.WriteField("pic_date", picDate))
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, "detection.jpg"))
	h.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func pointDetection(name string, lon, lat float64, extra map[string]any) map[string]any {
	props := map[string]any{"name": name}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"name": name,
		"geojson": map[string]any{
			"type":       "Feature",
			"geometry":   map[string]any{"type": "Point", "coordinates": []float64{lon, lat}},
			"properties": props,
		},
	}
}

func polygonDetection(name string, ring [][]float64) map[string]any {
	return map[string]any{
		"name": name,
		"geojson": map[string]any{
			"type":       "Feature",
			"geometry":   map[string]any{"type": "Polygon", "coordinates": [][][]float64{ring}},
			"properties": map[string]any{"name": name},
		},
	}
}

// Stub implementations for storage (to avoid S3 dependency in e2e tests)

type stubImageStorage struct{}

func (s *stubImageStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error {
	return nil
}

func (s *stubImageStorage) Delete(ctx context.Context, key string) error {
	return nil
}

func (s *stubImageStorage) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *stubImageStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://stub-storage.example.com/" + key + "?signed=true", nil
}

type stubImageProcessor struct{}

func (s *stubImageProcessor) Process(reader io.Reader, contentType string) (io.Reader, int64, int, int, error) {
	data, _ := io.ReadAll(reader)
	return bytes.NewReader(data), int64(len(data)), 800, 600, nil
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
