package repository

import (
	"context"

	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── Zonas ───────────────────────────────────────────────────────────────────

type ZonaRepository interface {
	Create(ctx context.Context, z *model.Zona) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Zona, error)
	List(ctx context.Context) ([]model.Zona, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type zonaRepo struct{ db *gorm.DB }

func NewZonaRepository(db *gorm.DB) ZonaRepository { return &zonaRepo{db: db} }

func (r *zonaRepo) Create(ctx context.Context, z *model.Zona) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *zonaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Zona, error) {
	var z model.Zona
	err := r.db.WithContext(ctx).First(&z, id).Error
	return &z, err
}

func (r *zonaRepo) List(ctx context.Context) ([]model.Zona, error) {
	var zonas []model.Zona
	err := r.db.WithContext(ctx).Order("nombre").Find(&zonas).Error
	return zonas, err
}

func (r *zonaRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Zona{}).Pluck("id", &ids).Error
	return ids, err
}

// ─── Distribuidores ──────────────────────────────────────────────────────────

type DistribuidorRepository interface {
	Create(ctx context.Context, d *model.Distribuidor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Distribuidor, error)
	List(ctx context.Context) ([]model.Distribuidor, error)
}

type distribuidorRepo struct{ db *gorm.DB }

func NewDistribuidorRepository(db *gorm.DB) DistribuidorRepository {
	return &distribuidorRepo{db: db}
}

func (r *distribuidorRepo) Create(ctx context.Context, d *model.Distribuidor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *distribuidorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Distribuidor, error) {
	var d model.Distribuidor
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *distribuidorRepo) List(ctx context.Context) ([]model.Distribuidor, error) {
	var distribuidores []model.Distribuidor
	err := r.db.WithContext(ctx).Where("activo").Order("nombre").Find(&distribuidores).Error
	return distribuidores, err
}
