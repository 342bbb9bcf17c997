package infra

import (
	"fmt"

	"superganaderia/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Zona{},
		&model.Distribuidor{},
		&model.Equipo{},
		&model.Producto{},
		&model.Perfil{},
		&model.Venta{},
		&model.ClienteCompetencia{},
		&model.Penal{},
		&model.HistorialPenal{},
		&model.AjusteGoles{},
		&model.ConfigSistema{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Index for the live aggregation queries (SUM by team)
		`CREATE INDEX IF NOT EXISTS idx_ventas_equipo ON ventas (equipo_id)`,
		`CREATE INDEX IF NOT EXISTS idx_clientes_competencia_equipo ON clientes_competencia (equipo_id)`,
		// The adjustment log is queried by (equipo, fuente)
		`CREATE INDEX IF NOT EXISTS idx_ajustes_goles_equipo_fuente ON ajustes_goles (equipo_id, fuente)`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql, err)
		}
	}
	return nil
}
