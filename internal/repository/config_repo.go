package repository

import (
	"context"

	"superganaderia/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	Get(ctx context.Context, clave string) (string, error)
	Set(ctx context.Context, clave, valor string) error
	List(ctx context.Context) ([]model.ConfigSistema, error)
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Get(ctx context.Context, clave string) (string, error) {
	var c model.ConfigSistema
	if err := r.db.WithContext(ctx).First(&c, "clave = ?", clave).Error; err != nil {
		return "", err
	}
	return c.Valor, nil
}

func (r *configRepo) Set(ctx context.Context, clave, valor string) error {
	c := model.ConfigSistema{Clave: clave, Valor: valor}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&c).Error
}

func (r *configRepo) List(ctx context.Context) ([]model.ConfigSistema, error) {
	var items []model.ConfigSistema
	err := r.db.WithContext(ctx).Order("clave").Find(&items).Error
	return items, err
}
