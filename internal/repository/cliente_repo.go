package repository

import (
	"context"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteCompetenciaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.ClienteCompetencia) error
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.ClienteCompetencia, int64, error)
	CountEquipo(ctx context.Context, equipoID uuid.UUID) (int, error)
	CountPorEquipo(ctx context.Context) (map[uuid.UUID]int, error)
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteCompetenciaRepository(db *gorm.DB) ClienteCompetenciaRepository {
	return &clienteRepo{db: db}
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, c *model.ClienteCompetencia) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.ClienteCompetencia, int64, error) {
	var clientes []model.ClienteCompetencia
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.ClienteCompetencia{})
	if filter.EquipoID != "" {
		q = q.Where("equipo_id = ?", filter.EquipoID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) CountEquipo(ctx context.Context, equipoID uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ClienteCompetencia{}).
		Where("equipo_id = ?", equipoID).
		Count(&total).Error
	return int(total), err
}

func (r *clienteRepo) CountPorEquipo(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		EquipoID uuid.UUID
		Total    int
	}
	err := r.db.WithContext(ctx).Model(&model.ClienteCompetencia{}).
		Select("equipo_id, COUNT(*) AS total").
		Group("equipo_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.EquipoID] = row.Total
	}
	return counts, nil
}
