package service

import (
	"context"
	"testing"

	"superganaderia/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuntosParaGolConDefault(t *testing.T) {
	tests := []struct {
		name  string
		valor string
		want  int
	}{
		{"clave ausente", "", 100},
		{"valor válido", "40", 40},
		{"no numérico", "cuarenta", 100},
		{"cero", "0", 100},
		{"negativo", "-10", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubConfigRepo()
			if tt.valor != "" {
				repo.valores[model.ClavePuntosParaGol] = tt.valor
			}
			svc := NewConfigService(repo)
			assert.Equal(t, tt.want, svc.PuntosParaGol(context.Background()))
		})
	}
}

func TestPoliticaClienteDefault(t *testing.T) {
	svc := NewConfigService(newStubConfigRepo())

	politica, puntos := svc.PoliticaCliente(context.Background())
	assert.Equal(t, model.PoliticaLote, politica)
	assert.Equal(t, 100, puntos)
}

func TestPoliticaClientePlano(t *testing.T) {
	repo := newStubConfigRepo()
	repo.valores[model.ClavePoliticaCliente] = model.PoliticaPlano
	repo.valores[model.ClavePuntosPorCliente] = "30"
	svc := NewConfigService(repo)

	politica, puntos := svc.PoliticaCliente(context.Background())
	assert.Equal(t, model.PoliticaPlano, politica)
	assert.Equal(t, 30, puntos)
}

func TestPoliticaClienteDesconocidaCaeALote(t *testing.T) {
	repo := newStubConfigRepo()
	repo.valores[model.ClavePoliticaCliente] = "progresivo"
	svc := NewConfigService(repo)

	politica, _ := svc.PoliticaCliente(context.Background())
	assert.Equal(t, model.PoliticaLote, politica)
}

func TestObtenerYActualizar(t *testing.T) {
	repo := newStubConfigRepo()
	svc := NewConfigService(repo)
	ctx := context.Background()

	_, err := svc.Obtener(ctx, model.ClavePuntosParaGol)
	require.Error(t, err)

	resp, err := svc.Actualizar(ctx, model.ClavePuntosParaGol, "40")
	require.NoError(t, err)
	assert.Equal(t, "40", resp.Valor)

	resp, err = svc.Obtener(ctx, model.ClavePuntosParaGol)
	require.NoError(t, err)
	assert.Equal(t, model.ClavePuntosParaGol, resp.Clave)
	assert.Equal(t, "40", resp.Valor)

	// El cambio impacta en la conversión sin reiniciar nada.
	assert.Equal(t, 40, svc.PuntosParaGol(ctx))
}

func TestListarConfig(t *testing.T) {
	repo := newStubConfigRepo()
	repo.valores[model.ClavePuntosParaGol] = "100"
	repo.valores[model.ClavePoliticaCliente] = model.PoliticaLote
	svc := NewConfigService(repo)

	items, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
