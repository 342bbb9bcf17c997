package repository

import (
	"context"

	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PerfilRepository interface {
	Create(ctx context.Context, p *model.Perfil) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Perfil, error)
	FindByUsername(ctx context.Context, username string) (*model.Perfil, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Perfil, error)
	Update(ctx context.Context, p *model.Perfil) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type perfilRepo struct{ db *gorm.DB }

func NewPerfilRepository(db *gorm.DB) PerfilRepository { return &perfilRepo{db: db} }

func (r *perfilRepo) Create(ctx context.Context, p *model.Perfil) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *perfilRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Perfil, error) {
	var p model.Perfil
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *perfilRepo) FindByUsername(ctx context.Context, username string) (*model.Perfil, error) {
	var p model.Perfil
	err := r.db.WithContext(ctx).Where("username = ? AND activo", username).First(&p).Error
	return &p, err
}

func (r *perfilRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Perfil, error) {
	var perfiles []model.Perfil
	q := r.db.WithContext(ctx).Order("nombre")
	if !incluirInactivos {
		q = q.Where("activo")
	}
	err := q.Find(&perfiles).Error
	return perfiles, err
}

func (r *perfilRepo) Update(ctx context.Context, p *model.Perfil) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *perfilRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Perfil{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *perfilRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Perfil{}).Where("id = ?", id).Update("activo", true).Error
}
