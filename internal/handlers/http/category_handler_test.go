package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/handlers/dto"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/config"
)

func setupCategoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewCategoryHandler(config.MapConfig{
		TileURL:   "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		CenterLat: 6.2442,
		CenterLng: -75.5812,
		Zoom:      13,
	})

	router := gin.New()
	router.GET("/categories", handler.ListCategories)
	router.GET("/map/config", handler.GetMapConfig)
	return router
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("lista o catálogo completo com badge e marcador", func(t *testing.T) {
		router := setupCategoryRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/categories", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, recebeu %d", w.Code)
		}

		var categories []dto.CategoryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if len(categories) != len(entities.Categories) {
			t.Fatalf("esperava %d categorias, recebeu %d", len(entities.Categories), len(categories))
		}
		for _, cat := range categories {
			if cat.Name == "" || cat.Color == "" || cat.Marker.IconURL == "" {
				t.Errorf("categoria incompleta: %+v", cat)
			}
		}
	})
}

func TestCategoryHandler_GetMapConfig(t *testing.T) {
	t.Run("retorna enquadramento e ícone default", func(t *testing.T) {
		router := setupCategoryRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/map/config", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, recebeu %d", w.Code)
		}

		var cfg dto.MapConfigResponse
		if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}

		if cfg.CenterLat != 6.2442 || cfg.CenterLng != -75.5812 || cfg.Zoom != 13 {
			t.Errorf("enquadramento incorreto: %+v", cfg)
		}
		fallback := entities.MarkerIconFor(entities.DefaultCategoryID)
		if cfg.DefaultMarker.IconURL != fallback.IconURL {
			t.Errorf("ícone default incorreto: %q", cfg.DefaultMarker.IconURL)
		}
		if cfg.DefaultMarker.IconSize != [2]int{35, 35} {
			t.Errorf("dimensões do marcador default incorretas: %v", cfg.DefaultMarker.IconSize)
		}
	})
}
