package service

import (
	"context"
	"testing"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rankingFixture struct {
	svc         RankingService
	equipoRepo  *stubEquipoRepo
	ventaRepo   *stubVentaRepo
	clienteRepo *stubClienteRepo
	configRepo  *stubConfigRepo

	zonaNorte uuid.UUID
	zonaSur   uuid.UUID
}

// newRankingFixture arma tres equipos en dos zonas con ventas ya cargadas:
//
//	Los Toros   (norte)  250 puntos
//	La Tropilla (sur)    180 puntos
//	El Rodeo    (norte)   90 puntos
func newRankingFixture(t *testing.T) *rankingFixture {
	t.Helper()
	ctx := context.Background()

	f := &rankingFixture{
		equipoRepo:  newStubEquipoRepo(),
		ventaRepo:   newStubVentaRepo(),
		clienteRepo: newStubClienteRepo(),
		configRepo:  newStubConfigRepo(),
		zonaNorte:   uuid.New(),
		zonaSur:     uuid.New(),
	}

	crear := func(nombre string, zona uuid.UUID, puntos int) {
		equipo := &model.Equipo{Nombre: nombre, ZonaID: zona, Zona: &model.Zona{ID: zona}}
		require.NoError(t, f.equipoRepo.Create(ctx, equipo))
		if puntos > 0 {
			require.NoError(t, f.ventaRepo.Create(ctx, nil, &model.Venta{
				EquipoID: equipo.ID,
				Cantidad: 1,
				Puntos:   puntos,
			}))
		}
	}
	crear("Los Toros", f.zonaNorte, 250)
	crear("La Tropilla", f.zonaSur, 180)
	crear("El Rodeo", f.zonaNorte, 90)

	configSvc := NewConfigService(f.configRepo)
	f.svc = NewRankingService(f.equipoRepo, f.ventaRepo, f.clienteRepo, configSvc, nil)
	return f
}

func TestRankingGlobalOrdenado(t *testing.T) {
	f := newRankingFixture(t)

	resp, err := f.svc.Ranking(context.Background(), dto.RankingFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)

	assert.Equal(t, "Los Toros", resp.Data[0].Equipo)
	assert.Equal(t, "La Tropilla", resp.Data[1].Equipo)
	assert.Equal(t, "El Rodeo", resp.Data[2].Equipo)
	for i, fila := range resp.Data {
		assert.Equal(t, i+1, fila.Posicion)
	}
	assert.Equal(t, 3, resp.Total)
}

func TestRankingGolesDerivadosDelTotal(t *testing.T) {
	f := newRankingFixture(t)

	// El contador almacenado del equipo trae drift por penales; el ranking
	// deriva goles del total en vivo y lo ignora.
	f.equipoRepo.equipos[0].Goles = 99

	resp, err := f.svc.Ranking(context.Background(), dto.RankingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 250, resp.Data[0].Puntos)
	assert.Equal(t, 2, resp.Data[0].Goles) // floor(250/100)
	assert.Equal(t, 1, resp.Data[1].Goles)
	assert.Equal(t, 0, resp.Data[2].Goles)
}

func TestRankingPorZona(t *testing.T) {
	f := newRankingFixture(t)

	resp, err := f.svc.Ranking(context.Background(), dto.RankingFilter{ZonaID: f.zonaNorte.String()})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	// Posiciones densas dentro de la zona, no heredadas del global.
	assert.Equal(t, "Los Toros", resp.Data[0].Equipo)
	assert.Equal(t, 1, resp.Data[0].Posicion)
	assert.Equal(t, "El Rodeo", resp.Data[1].Equipo)
	assert.Equal(t, 2, resp.Data[1].Posicion)
}

func TestRankingConLimite(t *testing.T) {
	f := newRankingFixture(t)

	resp, err := f.svc.Ranking(context.Background(), dto.RankingFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	// Total sigue reflejando el ranking completo.
	assert.Equal(t, 3, resp.Total)
}

func TestRankingIncluyePuntosDeClientes(t *testing.T) {
	f := newRankingFixture(t)
	ctx := context.Background()

	// 3 clientes para El Rodeo: +100 bajo la política lote → 190 total.
	rodeo := f.equipoRepo.equipos[2]
	for i := 0; i < 3; i++ {
		require.NoError(t, f.clienteRepo.Create(ctx, nil, &model.ClienteCompetencia{
			EquipoID:      rodeo.ID,
			NombreCliente: "Cliente",
		}))
	}

	resp, err := f.svc.Ranking(ctx, dto.RankingFilter{})
	require.NoError(t, err)
	assert.Equal(t, "La Tropilla", resp.Data[1].Equipo) // 180
	assert.Equal(t, 190, resp.Data[2].Puntos)           // aún tercero
	assert.Equal(t, "El Rodeo", resp.Data[2].Equipo)
}

func TestPosicionEquipo(t *testing.T) {
	f := newRankingFixture(t)

	tropilla := f.equipoRepo.equipos[1]
	resp, err := f.svc.PosicionEquipo(context.Background(), tropilla.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Posicion)
	assert.Equal(t, 2, *resp.Posicion)
	assert.Equal(t, 3, resp.TotalEquipos)
}

func TestPosicionEquipoAusente(t *testing.T) {
	f := newRankingFixture(t)

	// Un equipo desconocido no es error: posición nil.
	resp, err := f.svc.PosicionEquipo(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resp.Posicion)
	assert.Equal(t, 3, resp.TotalEquipos)
}

func TestReportePDFGeneraBytes(t *testing.T) {
	f := newRankingFixture(t)

	pdf, err := f.svc.ReportePDF(context.Background(), dto.RankingFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
