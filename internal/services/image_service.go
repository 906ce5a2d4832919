package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/domain/ports"
	"github.com/rafabene/plazamap-backend/internal/domain/repositories"
)

// MaxImageSize é o tamanho máximo aceito para a imagem de um ponto (5 MiB)
const MaxImageSize = 5 * 1024 * 1024

// ImageService gerencia as imagens dos pontos no object storage
type ImageService struct {
	pointRepo repositories.PointRepository
	store     ports.ObjectStore
	logger    ports.Logger
}

// NewImageService cria um novo ImageService
func NewImageService(
	pointRepo repositories.PointRepository,
	store ports.ObjectStore,
	logger ports.Logger,
) *ImageService {
	return &ImageService{
		pointRepo: pointRepo,
		store:     store,
		logger:    logger,
	}
}

// UploadInput representa um arquivo enviado pelo vendedor
type UploadInput struct {
	OwnerID     string
	PointID     string
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Upload valida e grava a imagem do ponto, retornando a URL pública.
// Tipo e tamanho são rejeitados antes de qualquer chamada remota.
// Se o ponto já tinha imagem, a anterior é removida best-effort.
func (s *ImageService) Upload(ctx context.Context, input UploadInput) (string, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", errors.ErrNotAnImage
	}
	if input.Size > MaxImageSize {
		return "", errors.ErrImageTooLarge
	}

	point, err := s.pointRepo.FindByID(ctx, input.PointID)
	if err != nil {
		return "", err
	}
	if point == nil {
		return "", errors.ErrPointNotFound
	}
	if !point.IsOwnedBy(input.OwnerID) {
		return "", errors.ErrNotPointOwner
	}

	// Caminho por ponto: o timestamp evita colisão entre uploads
	path := fmt.Sprintf("points/%s/%d_%s", point.ID, time.Now().UnixMilli(), sanitizeFilename(input.Filename))

	url, err := s.store.Put(ctx, path, input.Reader, input.Size, input.ContentType)
	if err != nil {
		return "", err
	}

	previous := point.ImageURL
	point.ImageURL = &url
	point.UpdatedAt = time.Now()
	if err := s.pointRepo.Update(ctx, point); err != nil {
		return "", err
	}

	if previous != nil && *previous != "" {
		if err := s.store.Remove(ctx, *previous); err != nil {
			s.logger.Warn("failed to remove previous image, continuing",
				"point_id", point.ID,
				"url", *previous,
				"error", err,
			)
		}
	}

	s.logger.Info("image uploaded", "point_id", point.ID, "path", path)
	return url, nil
}

// Remove exclui a imagem do ponto. A remoção do objeto remoto é
// best-effort; a URL sai do registro mesmo quando o storage falha.
func (s *ImageService) Remove(ctx context.Context, ownerID, pointID string) error {
	point, err := s.pointRepo.FindByID(ctx, pointID)
	if err != nil {
		return err
	}
	if point == nil {
		return errors.ErrPointNotFound
	}
	if !point.IsOwnedBy(ownerID) {
		return errors.ErrNotPointOwner
	}

	if !point.HasImage() {
		return nil
	}

	if err := s.store.Remove(ctx, *point.ImageURL); err != nil {
		s.logger.Warn("failed to remove image object, continuing",
			"point_id", pointID,
			"url", *point.ImageURL,
			"error", err,
		)
	}

	point.ImageURL = nil
	point.UpdatedAt = time.Now()
	if err := s.pointRepo.Update(ctx, point); err != nil {
		return err
	}

	s.logger.Info("image removed", "point_id", pointID)
	return nil
}

// sanitizeFilename remove separadores de caminho e espaços do nome
// original do arquivo
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "image"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	return replacer.Replace(name)
}
