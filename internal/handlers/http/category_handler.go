package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/handlers/dto"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/config"
)

// CategoryHandler expõe o catálogo de categorias e a configuração do mapa
type CategoryHandler struct {
	mapConfig config.MapConfig
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(mapConfig config.MapConfig) *CategoryHandler {
	return &CategoryHandler{mapConfig: mapConfig}
}

// ListCategories lista as categorias fixas do catálogo
// @Summary Listar categorias
// @Description Catálogo estático de categorias com cor e ícone do marcador
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryResponses())
}

// GetMapConfig retorna o tile server e o enquadramento inicial do mapa
// @Summary Configuração do mapa
// @Tags categories
// @Produce json
// @Success 200 {object} dto.MapConfigResponse
// @Router /map/config [get]
func (h *CategoryHandler) GetMapConfig(c *gin.Context) {
	fallback := entities.MarkerIconFor(entities.DefaultCategoryID)

	c.JSON(http.StatusOK, dto.MapConfigResponse{
		TileURL:   h.mapConfig.TileURL,
		CenterLat: h.mapConfig.CenterLat,
		CenterLng: h.mapConfig.CenterLng,
		Zoom:      h.mapConfig.Zoom,
		DefaultMarker: dto.MarkerIconResponse{
			IconURL:     fallback.IconURL,
			IconSize:    fallback.IconSize,
			IconAnchor:  fallback.IconAnchor,
			PopupAnchor: fallback.PopupAnchor,
		},
	})
}
