package repository

import (
	"context"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	// SumPuntosEquipo devuelve SUM(puntos) de las ventas de un equipo.
	SumPuntosEquipo(ctx context.Context, equipoID uuid.UUID) (int, error)
	// SumPuntosPorEquipo devuelve SUM(puntos) agrupado por equipo (todos).
	SumPuntosPorEquipo(ctx context.Context) (map[uuid.UUID]int, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Producto").First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.EquipoID != "" {
		q = q.Where("equipo_id = ?", filter.EquipoID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Producto").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) SumPuntosEquipo(ctx context.Context, equipoID uuid.UUID) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("equipo_id = ?", equipoID).
		Select("COALESCE(SUM(puntos), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ventaRepo) SumPuntosPorEquipo(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		EquipoID uuid.UUID
		Total    int
	}
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("equipo_id, SUM(puntos) AS total").
		Group("equipo_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		sums[row.EquipoID] = row.Total
	}
	return sums, nil
}
