package repository

import (
	"context"
	"errors"

	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSinCreditos se devuelve cuando el equipo no tiene penales disponibles.
var ErrSinCreditos = errors.New("el equipo no tiene penales disponibles")

type PenalRepository interface {
	FindByEquipo(ctx context.Context, equipoID uuid.UUID) (*model.Penal, error)
	// Otorgar suma créditos de forma atómica, creando la fila si no existe.
	Otorgar(ctx context.Context, equipoID uuid.UUID, cantidad int) error
	// Consumir descuenta un crédito solo si hay disponibles (guarda en el
	// WHERE, sin leer-modificar-escribir); ErrSinCreditos si no había.
	Consumir(ctx context.Context, equipoID uuid.UUID) error
	CreateHistorial(ctx context.Context, h *model.HistorialPenal) error
	ListHistorial(ctx context.Context, equipoID uuid.UUID) ([]model.HistorialPenal, error)
}

type penalRepo struct{ db *gorm.DB }

func NewPenalRepository(db *gorm.DB) PenalRepository { return &penalRepo{db: db} }

func (r *penalRepo) FindByEquipo(ctx context.Context, equipoID uuid.UUID) (*model.Penal, error) {
	var p model.Penal
	err := r.db.WithContext(ctx).Where("equipo_id = ?", equipoID).First(&p).Error
	return &p, err
}

func (r *penalRepo) Otorgar(ctx context.Context, equipoID uuid.UUID, cantidad int) error {
	p := model.Penal{EquipoID: equipoID, Disponibles: cantidad}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "equipo_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"disponibles": gorm.Expr("penales.disponibles + ?", cantidad)}),
	}).Create(&p).Error
}

func (r *penalRepo) Consumir(ctx context.Context, equipoID uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Penal{}).
		Where("equipo_id = ? AND disponibles > 0", equipoID).
		Update("disponibles", gorm.Expr("disponibles - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSinCreditos
	}
	return nil
}

func (r *penalRepo) CreateHistorial(ctx context.Context, h *model.HistorialPenal) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *penalRepo) ListHistorial(ctx context.Context, equipoID uuid.UUID) ([]model.HistorialPenal, error) {
	var historial []model.HistorialPenal
	err := r.db.WithContext(ctx).
		Where("equipo_id = ?", equipoID).
		Order("created_at DESC").
		Find(&historial).Error
	return historial, err
}
