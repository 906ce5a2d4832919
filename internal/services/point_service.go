package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/domain/ports"
	"github.com/rafabene/plazamap-backend/internal/domain/repositories"
	"github.com/rafabene/plazamap-backend/internal/domain/valueobjects"
)

// PointService contém a lógica de negócio dos pontos no mapa
type PointService struct {
	pointRepo repositories.PointRepository
	uow       ports.UnitOfWork
	store     ports.ObjectStore
	logger    ports.Logger
}

// NewPointService cria um novo PointService
func NewPointService(
	pointRepo repositories.PointRepository,
	uow ports.UnitOfWork,
	store ports.ObjectStore,
	logger ports.Logger,
) *PointService {
	return &PointService{
		pointRepo: pointRepo,
		uow:       uow,
		store:     store,
		logger:    logger,
	}
}

// ListAll lista todos os pontos, com filtro opcional de categoria.
// O filtro é um predicado puro sobre a lista completa; "" e "all"
// significam sem filtro.
func (s *PointService) ListAll(ctx context.Context, categoryID string) ([]*entities.Point, error) {
	points, err := s.pointRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if categoryID == "" || categoryID == "all" {
		return points, nil
	}

	filtered := make([]*entities.Point, 0, len(points))
	for _, p := range points {
		if p.Category == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListByOwner lista os pontos de um vendedor
func (s *PointService) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Point, error) {
	return s.pointRepo.ListByOwner(ctx, ownerID)
}

// CreatePointInput representa os dados para criar um ponto.
// Título, descrição e categoria são opcionais: o fluxo do vendedor salva
// a localização com placeholders e edita depois.
type CreatePointInput struct {
	OwnerID     string
	Lat         float64
	Lng         float64
	Title       string
	Description string
	Phone       string
	Category    string
}

// Create insere um ponto novo respeitando o limite por vendedor.
// A contagem e o insert rodam na mesma transação, então duas criações
// concorrentes do mesmo vendedor não passam do limite.
func (s *PointService) Create(ctx context.Context, input CreatePointInput) (*entities.Point, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = entities.DefaultPointTitle
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = entities.DefaultPointDescription
	}

	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	point := &entities.Point{
		OwnerID:     input.OwnerID,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Title:       title,
		Description: description,
		Phone:       valueobjects.NewPhone(input.Phone),
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := point.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Title:   "invalid point",
			Message: err.Error(),
			Err:     err,
		}
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.pointRepo.CountByOwner(txCtx, input.OwnerID)
		if err != nil {
			return err
		}
		if count >= entities.MaxPointsPerOwner {
			return errors.ErrPointLimitReached
		}
		return s.pointRepo.Create(txCtx, point)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("point created",
		"point_id", point.ID,
		"owner_id", point.OwnerID,
		"category", point.Category,
	)
	return point, nil
}

// UpdatePointInput representa os campos editáveis de um ponto.
// As coordenadas são somente leitura depois da criação.
type UpdatePointInput struct {
	Title       string
	Description string
	Phone       string
	Category    string
}

// Update aplica a edição do dono sobre o ponto
func (s *PointService) Update(ctx context.Context, ownerID, pointID string, input UpdatePointInput) (*entities.Point, error) {
	point, err := s.pointRepo.FindByID(ctx, pointID)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, errors.ErrPointNotFound
	}
	if !point.IsOwnedBy(ownerID) {
		return nil, errors.ErrNotPointOwner
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.ErrEmptyTitle
	}

	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}

	point.Title = title
	point.Description = strings.TrimSpace(input.Description)
	point.Phone = valueobjects.NewPhone(input.Phone)
	point.Category = category
	point.UpdatedAt = time.Now()

	if err := s.pointRepo.Update(ctx, point); err != nil {
		return nil, err
	}

	s.logger.Info("point updated", "point_id", point.ID, "owner_id", ownerID)
	return point, nil
}

// Delete remove o ponto do dono. Id já excluído é no-op; a imagem
// associada é removida best-effort (falha só é logada).
func (s *PointService) Delete(ctx context.Context, ownerID, pointID string) error {
	point, err := s.pointRepo.FindByID(ctx, pointID)
	if err != nil {
		return err
	}
	if point == nil {
		// Exclusão idempotente
		return nil
	}
	if !point.IsOwnedBy(ownerID) {
		return errors.ErrNotPointOwner
	}

	if err := s.pointRepo.Delete(ctx, pointID); err != nil {
		return err
	}

	if point.HasImage() {
		if err := s.store.Remove(ctx, *point.ImageURL); err != nil {
			s.logger.Warn("failed to remove point image, continuing",
				"point_id", pointID,
				"url", *point.ImageURL,
				"error", err,
			)
		}
	}

	s.logger.Info("point deleted", "point_id", pointID, "owner_id", ownerID)
	return nil
}

// normalizeCategory valida a categoria na borda: vazia vira o default,
// id desconhecido é erro
func normalizeCategory(id string) (string, error) {
	if id == "" {
		return entities.DefaultCategoryID, nil
	}
	if !entities.IsValidCategory(id) {
		return "", errors.ErrInvalidCategory
	}
	return id, nil
}
