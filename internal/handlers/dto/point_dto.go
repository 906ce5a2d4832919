package dto

import (
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// CreatePointRequest representa a requisição para criar um ponto.
// Lat/Lng são ponteiros para o binding aceitar o zero como coordenada
// válida. Título, descrição e categoria são opcionais (placeholders).
type CreatePointRequest struct {
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
	Title       string   `json:"title" binding:"omitempty,max=200"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Phone       string   `json:"phone" binding:"omitempty,max=50"`
	Category    string   `json:"category" binding:"omitempty,max=50"`
}

// UpdatePointRequest representa a edição de um ponto.
// As coordenadas são somente leitura e ficam fora da requisição.
type UpdatePointRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Category    string `json:"category" binding:"omitempty,max=50"`
}

// CategoryBadge é o metadado de exibição da categoria de um ponto
type CategoryBadge struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Emblem  string `json:"emblem"`
	Color   string `json:"color"`
	IconURL string `json:"icon_url"`
}

// PointResponse representa um ponto no mapa com tudo que o popup mostra
type PointResponse struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Phone       string        `json:"phone,omitempty"`
	ContactLink string        `json:"contact_link,omitempty"`
	Category    CategoryBadge `json:"category"`
	ImageURL    *string       `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MyPointsResponse representa a lista do vendedor com o limite do cap
type MyPointsResponse struct {
	Points []PointResponse `json:"points"`
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
}

// ImageResponse representa a URL da imagem recém gravada
type ImageResponse struct {
	ImageURL string `json:"image_url"`
}

// ToCategoryBadge converte uma categoria do registry para o badge
func ToCategoryBadge(cat entities.Category) CategoryBadge {
	return CategoryBadge{
		ID:      cat.ID,
		Name:    cat.Name,
		Emblem:  cat.Emblem,
		Color:   cat.Color,
		IconURL: cat.IconURL,
	}
}

// ToPointResponse converte uma entidade Point para PointResponse.
// A categoria sempre resolve (fallback "other") e o link de contato é
// derivado apenas dos dígitos do telefone.
func ToPointResponse(point *entities.Point) PointResponse {
	return PointResponse{
		ID:          point.ID,
		OwnerID:     point.OwnerID,
		Lat:         point.Lat,
		Lng:         point.Lng,
		Title:       point.Title,
		Description: point.Description,
		Phone:       point.Phone.String(),
		ContactLink: point.Phone.ContactLink(),
		Category:    ToCategoryBadge(entities.CategoryByID(point.Category)),
		ImageURL:    point.ImageURL,
		CreatedAt:   point.CreatedAt,
		UpdatedAt:   point.UpdatedAt,
	}
}

// ToPointResponses converte uma lista de entidades Point
func ToPointResponses(points []*entities.Point) []PointResponse {
	responses := make([]PointResponse, len(points))
	for i, point := range points {
		responses[i] = ToPointResponse(point)
	}
	return responses
}
