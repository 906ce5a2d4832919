package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/repositories"
	"github.com/rafabene/plazamap-backend/internal/domain/valueobjects"
)

// PointRepository implementa repositories.PointRepository
type PointRepository struct {
	db *gorm.DB
}

// NewPointRepository cria um novo PointRepository
func NewPointRepository(db *gorm.DB) repositories.PointRepository {
	return &PointRepository{db: db}
}

func (r *PointRepository) ListAll(ctx context.Context) ([]*entities.Point, error) {
	var models []*PointModel

	db := r.getDB(ctx)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PointRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Point, error) {
	var models []*PointModel

	db := r.getDB(ctx)
	if err := db.Where("owner_id = ?", ownerID).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PointRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	db := r.getDB(ctx)

	// Dentro de uma transação, um advisory lock por owner serializa
	// criações concorrentes do mesmo vendedor; contagem + insert viram
	// uma checagem atômica do limite.
	if _, inTx := ctx.Value(txKey).(*gorm.DB); inTx {
		if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?::text))", ownerID).Error; err != nil {
			return 0, err
		}
	}

	var count int64
	if err := db.Model(&PointModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PointRepository) FindByID(ctx context.Context, id string) (*entities.Point, error) {
	var model PointModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PointRepository) Create(ctx context.Context, point *entities.Point) error {
	model := r.toModel(point)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	point.ID = model.ID
	point.CreatedAt = time.Unix(model.CreatedAt, 0)
	point.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PointRepository) Update(ctx context.Context, point *entities.Point) error {
	model := r.toModel(point)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return err
	}

	point.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PointRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Id inexistente não é erro: a exclusão é idempotente
	return db.Where("id = ?", id).Delete(&PointModel{}).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PointRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *PointRepository) toModel(point *entities.Point) *PointModel {
	return &PointModel{
		ID:          point.ID,
		OwnerID:     point.OwnerID,
		Lat:         point.Lat,
		Lng:         point.Lng,
		Title:       point.Title,
		Description: point.Description,
		Phone:       point.Phone.String(),
		Category:    point.Category,
		ImageURL:    point.ImageURL,
		CreatedAt:   point.CreatedAt.Unix(),
		UpdatedAt:   point.UpdatedAt.Unix(),
	}
}

func (r *PointRepository) toEntity(model *PointModel) *entities.Point {
	return &entities.Point{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		Lat:         model.Lat,
		Lng:         model.Lng,
		Title:       model.Title,
		Description: model.Description,
		Phone:       valueobjects.NewPhone(model.Phone),
		Category:    model.Category,
		ImageURL:    model.ImageURL,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}

func (r *PointRepository) toEntities(models []*PointModel) []*entities.Point {
	points := make([]*entities.Point, 0, len(models))
	for _, model := range models {
		points = append(points, r.toEntity(model))
	}
	return points
}
