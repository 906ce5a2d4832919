package entities

import (
	"errors"
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/valueobjects"
)

// MaxPointsPerOwner é o limite de pontos vivos por vendedor
const MaxPointsPerOwner = 2

// Placeholders gravados quando o vendedor salva a localização antes de editar
const (
	DefaultPointTitle       = "Punto del vendedor"
	DefaultPointDescription = "Editable luego"
)

// Point representa um ponto de negócio fixado no mapa, pertencente a um
// vendedor. Só o dono pode alterar ou excluir o registro.
type Point struct {
	ID          string
	OwnerID     string
	Lat         float64
	Lng         float64
	Title       string
	Description string
	Phone       valueobjects.Phone
	Category    string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy verifica se o ponto pertence ao usuário
func (p *Point) IsOwnedBy(userID string) bool {
	return p.OwnerID == userID
}

// HasImage verifica se o ponto tem uma imagem associada
func (p *Point) HasImage() bool {
	return p.ImageURL != nil && *p.ImageURL != ""
}

// Validate valida regras de negócio da entidade Point
func (p *Point) Validate() error {
	if p.OwnerID == "" {
		return errors.New("owner is required")
	}

	if p.Lat < -90 || p.Lat > 90 {
		return errors.New("latitude out of range")
	}

	if p.Lng < -180 || p.Lng > 180 {
		return errors.New("longitude out of range")
	}

	if p.Title == "" {
		return errors.New("title is required")
	}

	if !IsValidCategory(p.Category) {
		return errors.New("unknown category")
	}

	return nil
}
