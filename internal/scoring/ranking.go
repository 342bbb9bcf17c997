package scoring

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// FilaRanking es una fila del ranking antes y después de ordenar.
// Goles se deriva siempre de Puntos al momento de la consulta; Posicion la
// asigna Ordenar.
type FilaRanking struct {
	EquipoID uuid.UUID
	Equipo   string
	ZonaID   uuid.UUID
	Zona     string
	Puntos   int
	Goles    int
	Posicion int
}

// Ordenar ordena las filas por puntos descendente y asigna posiciones densas
// 1..N. El desempate es determinista: nombre de equipo ascendente y, de último
// recurso, id ascendente — la fuente original dejaba los empates al orden
// incidental de la base, acá queda fijado.
func Ordenar(filas []FilaRanking) {
	slices.SortFunc(filas, func(a, b FilaRanking) int {
		if c := cmp.Compare(b.Puntos, a.Puntos); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Equipo, b.Equipo); c != 0 {
			return c
		}
		return cmp.Compare(a.EquipoID.String(), b.EquipoID.String())
	})
	for i := range filas {
		filas[i].Posicion = i + 1
	}
}
