package service

import (
	"context"
	"testing"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubZonaRepo struct {
	zonas map[uuid.UUID]*model.Zona
}

func newStubZonaRepo() *stubZonaRepo {
	return &stubZonaRepo{zonas: make(map[uuid.UUID]*model.Zona)}
}

func (r *stubZonaRepo) Create(_ context.Context, z *model.Zona) error {
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	r.zonas[z.ID] = z
	return nil
}

func (r *stubZonaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Zona, error) {
	z, ok := r.zonas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return z, nil
}

func (r *stubZonaRepo) List(_ context.Context) ([]model.Zona, error) {
	var out []model.Zona
	for _, z := range r.zonas {
		out = append(out, *z)
	}
	return out, nil
}

func (r *stubZonaRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id := range r.zonas {
		ids = append(ids, id)
	}
	return ids, nil
}

var _ repository.ZonaRepository = (*stubZonaRepo)(nil)

type stubDistribuidorRepo struct {
	distribuidores map[uuid.UUID]*model.Distribuidor
}

func newStubDistribuidorRepo() *stubDistribuidorRepo {
	return &stubDistribuidorRepo{distribuidores: make(map[uuid.UUID]*model.Distribuidor)}
}

func (r *stubDistribuidorRepo) Create(_ context.Context, d *model.Distribuidor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.distribuidores[d.ID] = d
	return nil
}

func (r *stubDistribuidorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Distribuidor, error) {
	d, ok := r.distribuidores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDistribuidorRepo) List(_ context.Context) ([]model.Distribuidor, error) {
	var out []model.Distribuidor
	for _, d := range r.distribuidores {
		out = append(out, *d)
	}
	return out, nil
}

var _ repository.DistribuidorRepository = (*stubDistribuidorRepo)(nil)

type catalogoFixture struct {
	svc          CatalogoService
	productoRepo *stubProductoRepo

	zonaID         string
	distribuidorID string
}

func newCatalogoFixture(t *testing.T) *catalogoFixture {
	t.Helper()
	ctx := context.Background()

	zonaRepo := newStubZonaRepo()
	distribuidorRepo := newStubDistribuidorRepo()
	productoRepo := newStubProductoRepo()
	svc := NewCatalogoService(zonaRepo, distribuidorRepo, newStubEquipoRepo(), productoRepo)

	zona, err := svc.CrearZona(ctx, dto.CrearZonaRequest{Nombre: "Zona Norte"})
	require.NoError(t, err)
	distribuidor, err := svc.CrearDistribuidor(ctx, dto.CrearDistribuidorRequest{Nombre: "La Pradera"})
	require.NoError(t, err)

	return &catalogoFixture{
		svc:            svc,
		productoRepo:   productoRepo,
		zonaID:         zona.ID,
		distribuidorID: distribuidor.ID,
	}
}

func TestCrearEquipo(t *testing.T) {
	f := newCatalogoFixture(t)

	equipo, err := f.svc.CrearEquipo(context.Background(), dto.CrearEquipoRequest{
		Nombre:         "Los Toros",
		ZonaID:         f.zonaID,
		DistribuidorID: f.distribuidorID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Los Toros", equipo.Nombre)
	assert.Equal(t, 0, equipo.PuntosTotales)
	assert.Equal(t, 0, equipo.Goles)
}

func TestCrearEquipoZonaInexistente(t *testing.T) {
	f := newCatalogoFixture(t)

	_, err := f.svc.CrearEquipo(context.Background(), dto.CrearEquipoRequest{
		Nombre:         "Los Toros",
		ZonaID:         uuid.New().String(),
		DistribuidorID: f.distribuidorID,
	})
	require.EqualError(t, err, "zona no encontrada")
}

func TestActualizarEquipoCambiaZona(t *testing.T) {
	f := newCatalogoFixture(t)
	ctx := context.Background()

	equipo, err := f.svc.CrearEquipo(ctx, dto.CrearEquipoRequest{
		Nombre:         "Los Toros",
		ZonaID:         f.zonaID,
		DistribuidorID: f.distribuidorID,
	})
	require.NoError(t, err)

	otraZona := uuid.New().String()
	actualizado, err := f.svc.ActualizarEquipo(ctx, uuid.MustParse(equipo.ID), dto.ActualizarEquipoRequest{
		ZonaID: otraZona,
	})
	require.NoError(t, err)
	assert.Equal(t, otraZona, actualizado.ZonaID)
	assert.Equal(t, "Los Toros", actualizado.Nombre)
}

func TestCrearProductoConPuntosNegativos(t *testing.T) {
	f := newCatalogoFixture(t)

	_, err := f.svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Nombre: "Vacuna Triple",
		Puntos: -5,
	})
	require.Error(t, err)
}

func TestActualizarProductoNoTocaVentas(t *testing.T) {
	f := newCatalogoFixture(t)
	ctx := context.Background()

	producto, err := f.svc.CrearProducto(ctx, dto.CrearProductoRequest{
		Nombre:      "Vacuna Triple",
		Puntos:      40,
		PrecioLista: decimal.NewFromFloat(10.50),
	})
	require.NoError(t, err)

	nuevos := 55
	actualizado, err := f.svc.ActualizarProducto(ctx, uuid.MustParse(producto.ID), dto.ActualizarProductoRequest{
		Puntos: &nuevos,
	})
	require.NoError(t, err)
	assert.Equal(t, 55, actualizado.Puntos)
	assert.Equal(t, "Vacuna Triple", actualizado.Nombre)
	assert.True(t, actualizado.PrecioLista.Equal(decimal.NewFromFloat(10.50)))
}

func TestListarProductosFiltraInactivos(t *testing.T) {
	f := newCatalogoFixture(t)
	ctx := context.Background()

	activo, err := f.svc.CrearProducto(ctx, dto.CrearProductoRequest{Nombre: "Vacuna Triple", Puntos: 40})
	require.NoError(t, err)
	retirado, err := f.svc.CrearProducto(ctx, dto.CrearProductoRequest{Nombre: "Suplemento", Puntos: 25})
	require.NoError(t, err)
	require.NoError(t, f.svc.DesactivarProducto(ctx, uuid.MustParse(retirado.ID)))

	activos, err := f.svc.ListarProductos(ctx, false)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, activo.ID, activos[0].ID)

	todos, err := f.svc.ListarProductos(ctx, true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
