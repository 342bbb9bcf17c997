package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fila(nombre string, puntos int) FilaRanking {
	return FilaRanking{EquipoID: uuid.New(), Equipo: nombre, Puntos: puntos}
}

func TestOrdenarPorPuntosDescendente(t *testing.T) {
	filas := []FilaRanking{fila("Bravo", 50), fila("Alfa", 200), fila("Charlie", 120)}
	Ordenar(filas)

	require.Len(t, filas, 3)
	assert.Equal(t, "Alfa", filas[0].Equipo)
	assert.Equal(t, "Charlie", filas[1].Equipo)
	assert.Equal(t, "Bravo", filas[2].Equipo)
}

func TestOrdenarAsignaPosicionesDensas(t *testing.T) {
	filas := []FilaRanking{fila("A", 10), fila("B", 30), fila("C", 20), fila("D", 0)}
	Ordenar(filas)

	for i, f := range filas {
		assert.Equal(t, i+1, f.Posicion, "posición de %s", f.Equipo)
	}
}

func TestOrdenarDesempataPorNombre(t *testing.T) {
	filas := []FilaRanking{fila("Zorro", 100), fila("Aguila", 100), fila("Mula", 100)}
	Ordenar(filas)

	assert.Equal(t, "Aguila", filas[0].Equipo)
	assert.Equal(t, "Mula", filas[1].Equipo)
	assert.Equal(t, "Zorro", filas[2].Equipo)
}

func TestOrdenarEsDeterministaConEmpateTotal(t *testing.T) {
	// Mismo puntaje y mismo nombre: el id fija el orden en cualquier corrida.
	a := FilaRanking{EquipoID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Equipo: "Gemelo", Puntos: 80}
	b := FilaRanking{EquipoID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Equipo: "Gemelo", Puntos: 80}

	primera := []FilaRanking{b, a}
	segunda := []FilaRanking{a, b}
	Ordenar(primera)
	Ordenar(segunda)

	assert.Equal(t, primera[0].EquipoID, segunda[0].EquipoID)
	assert.Equal(t, a.EquipoID, primera[0].EquipoID)
}

func TestOrdenarListaVacia(t *testing.T) {
	var filas []FilaRanking
	Ordenar(filas)
	assert.Empty(t, filas)
}
