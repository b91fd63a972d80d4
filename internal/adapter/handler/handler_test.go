package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func pointFeature(id, name string, lon, lat float64) entity.Feature {
	coords, _ := json.Marshal([]float64{lon, lat})
	return entity.NewFeature(id, &entity.Geometry{Type: "Point", Coordinates: coords}, entity.Properties{"name": name})
}
