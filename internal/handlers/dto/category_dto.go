package dto

import (
	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// MarkerIconResponse descreve o ícone de marcador para o cliente de mapa
type MarkerIconResponse struct {
	IconURL     string `json:"icon_url"`
	IconSize    [2]int `json:"icon_size"`
	IconAnchor  [2]int `json:"icon_anchor"`
	PopupAnchor [2]int `json:"popup_anchor"`
}

// CategoryResponse representa uma categoria do registry com o marcador
type CategoryResponse struct {
	CategoryBadge
	Marker MarkerIconResponse `json:"marker"`
}

// ToCategoryResponses converte o registry completo
func ToCategoryResponses() []CategoryResponse {
	responses := make([]CategoryResponse, len(entities.Categories))
	for i, cat := range entities.Categories {
		marker := entities.MarkerIconFor(cat.ID)
		responses[i] = CategoryResponse{
			CategoryBadge: ToCategoryBadge(cat),
			Marker: MarkerIconResponse{
				IconURL:     marker.IconURL,
				IconSize:    marker.IconSize,
				IconAnchor:  marker.IconAnchor,
				PopupAnchor: marker.PopupAnchor,
			},
		}
	}
	return responses
}

// MapConfigResponse representa a configuração da superfície de mapa.
// DefaultMarker é o ícone usado quando o ponto não resolve categoria.
type MapConfigResponse struct {
	TileURL       string             `json:"tile_url"`
	CenterLat     float64            `json:"center_lat"`
	CenterLng     float64            `json:"center_lng"`
	Zoom          int                `json:"zoom"`
	DefaultMarker MarkerIconResponse `json:"default_marker"`
}
