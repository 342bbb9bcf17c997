package repository

import (
	"context"

	"superganaderia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EquipoRepository interface {
	Create(ctx context.Context, e *model.Equipo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Equipo, error)
	List(ctx context.Context, zonaID *uuid.UUID) ([]model.Equipo, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Update(ctx context.Context, e *model.Equipo) error
	// ActualizarAgregados sobreescribe el cache puntos_totales/goles en una
	// sola sentencia; los valores vienen de un recálculo completo, nunca de
	// leer-sumar-escribir sobre el contador.
	ActualizarAgregados(ctx context.Context, id uuid.UUID, puntos, goles int) error
	// IncrementarGoles suma goles de forma atómica en el store
	// (goles = goles + delta); lo usa el bonus de penal.
	IncrementarGoles(ctx context.Context, id uuid.UUID, delta int) error
	DB() *gorm.DB
}

type equipoRepo struct{ db *gorm.DB }

func NewEquipoRepository(db *gorm.DB) EquipoRepository { return &equipoRepo{db: db} }

func (r *equipoRepo) DB() *gorm.DB { return r.db }

func (r *equipoRepo) Create(ctx context.Context, e *model.Equipo) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Equipo, error) {
	var e model.Equipo
	err := r.db.WithContext(ctx).Preload("Zona").Preload("Distribuidor").First(&e, id).Error
	return &e, err
}

func (r *equipoRepo) List(ctx context.Context, zonaID *uuid.UUID) ([]model.Equipo, error) {
	var equipos []model.Equipo
	q := r.db.WithContext(ctx).Preload("Zona").Preload("Distribuidor").Order("nombre")
	if zonaID != nil {
		q = q.Where("zona_id = ?", *zonaID)
	}
	err := q.Find(&equipos).Error
	return equipos, err
}

func (r *equipoRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Equipo{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *equipoRepo) Update(ctx context.Context, e *model.Equipo) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *equipoRepo) ActualizarAgregados(ctx context.Context, id uuid.UUID, puntos, goles int) error {
	return r.db.WithContext(ctx).Model(&model.Equipo{}).Where("id = ?", id).
		Updates(map[string]interface{}{"puntos_totales": puntos, "goles": goles}).Error
}

func (r *equipoRepo) IncrementarGoles(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Equipo{}).Where("id = ?", id).
		Update("goles", gorm.Expr("goles + ?", delta)).Error
}
