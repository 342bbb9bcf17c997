package repository

import (
	"context"

	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AjusteGolesRepository interface {
	Create(ctx context.Context, a *model.AjusteGoles) error
	ListEquipo(ctx context.Context, equipoID uuid.UUID) ([]model.AjusteGoles, error)
	// SumPorFuente devuelve la suma de deltas de una fuente para un equipo;
	// con fuente "penal" reconstruye el bonus acumulado de penales.
	SumPorFuente(ctx context.Context, equipoID uuid.UUID, fuente string) (int, error)
}

type ajusteRepo struct{ db *gorm.DB }

func NewAjusteGolesRepository(db *gorm.DB) AjusteGolesRepository { return &ajusteRepo{db: db} }

func (r *ajusteRepo) Create(ctx context.Context, a *model.AjusteGoles) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ajusteRepo) ListEquipo(ctx context.Context, equipoID uuid.UUID) ([]model.AjusteGoles, error) {
	var ajustes []model.AjusteGoles
	err := r.db.WithContext(ctx).
		Where("equipo_id = ?", equipoID).
		Order("created_at DESC").
		Find(&ajustes).Error
	return ajustes, err
}

func (r *ajusteRepo) SumPorFuente(ctx context.Context, equipoID uuid.UUID, fuente string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&model.AjusteGoles{}).
		Where("equipo_id = ? AND fuente = ?", equipoID, fuente).
		Select("COALESCE(SUM(delta), 0)").
		Scan(&total).Error
	return total, err
}
