package model

import "time"

// Claves conocidas de config_sistema.
const (
	ClavePuntosParaGol    = "puntos_para_gol"         // ratio puntos → gol (default 100)
	ClavePoliticaCliente  = "politica_puntos_cliente" // "lote" | "plano"
	ClavePuntosPorCliente = "puntos_por_cliente"      // solo política "plano"
)

// Políticas de puntos por cliente captado.
const (
	PoliticaLote  = "lote"  // floor(clientes/3) goles → puntos
	PoliticaPlano = "plano" // puntos fijos por cliente
)

// ConfigSistema es el almacén clave/valor de parámetros del concurso.
type ConfigSistema struct {
	Clave     string `gorm:"primaryKey"`
	Valor     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (ConfigSistema) TableName() string { return "config_sistema" }
