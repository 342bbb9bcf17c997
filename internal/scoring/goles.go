// Package scoring contiene la aritmética pura del concurso: conversión de
// puntos a goles, puntos por clientes captados y asignación de posiciones.
// Ninguna función tiene efectos secundarios; la capa de servicios orquesta
// la persistencia alrededor de estas reglas.
package scoring

// PuntosParaGolDefault se usa cuando puntos_para_gol falta o es inválido.
const PuntosParaGolDefault = 100

// ClientesPorGol es el tamaño del lote de la política "lote":
// cada 3 clientes captados equivalen a un gol.
const ClientesPorGol = 3

// GolesDesdePuntos convierte puntos acumulados en goles: floor(puntos / ratio).
// Un ratio inválido (≤ 0) cae al default. Puntos negativos violan el
// invariante del ledger; se clavan en 0 en lugar de devolver goles negativos.
func GolesDesdePuntos(puntos, puntosParaGol int) int {
	if puntosParaGol <= 0 {
		puntosParaGol = PuntosParaGolDefault
	}
	if puntos < 0 {
		return 0
	}
	return puntos / puntosParaGol
}

// GolesDesdeClientes aplica la política "lote": floor(clientes / 3).
func GolesDesdeClientes(clientes int) int {
	if clientes < 0 {
		return 0
	}
	return clientes / ClientesPorGol
}

// PuntosDesdeClientesLote convierte capturas en puntos bajo la política "lote":
// los goles completos del lote valen puntos_para_gol cada uno.
func PuntosDesdeClientesLote(clientes, puntosParaGol int) int {
	if puntosParaGol <= 0 {
		puntosParaGol = PuntosParaGolDefault
	}
	return GolesDesdeClientes(clientes) * puntosParaGol
}

// PuntosDesdeClientesPlano convierte capturas en puntos bajo la política
// "plano": un monto fijo por cliente.
func PuntosDesdeClientesPlano(clientes, puntosPorCliente int) int {
	if clientes < 0 || puntosPorCliente < 0 {
		return 0
	}
	return clientes * puntosPorCliente
}

// BonusPenal calcula los goles extra al usar un penal:
// floor(goles_actuales × 0.25). Independiente del total de puntos.
func BonusPenal(golesActuales int) int {
	if golesActuales < 0 {
		return 0
	}
	return golesActuales / 4
}
