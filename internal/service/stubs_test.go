package service

// Stubs en memoria de los repositorios, compartidos por los tests del paquete.

import (
	"context"
	"errors"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Perfiles ─────────────────────────────────────────────────────────────────

type stubPerfilRepo struct {
	perfiles map[uuid.UUID]*model.Perfil
}

func newStubPerfilRepo() *stubPerfilRepo {
	return &stubPerfilRepo{perfiles: make(map[uuid.UUID]*model.Perfil)}
}

func (r *stubPerfilRepo) Create(_ context.Context, p *model.Perfil) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.perfiles[p.ID] = p
	return nil
}

func (r *stubPerfilRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Perfil, error) {
	p, ok := r.perfiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPerfilRepo) FindByUsername(_ context.Context, username string) (*model.Perfil, error) {
	for _, p := range r.perfiles {
		if p.Username == username && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPerfilRepo) List(_ context.Context, incluirInactivos bool) ([]model.Perfil, error) {
	var out []model.Perfil
	for _, p := range r.perfiles {
		if p.Activo || incluirInactivos {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPerfilRepo) Update(_ context.Context, p *model.Perfil) error {
	r.perfiles[p.ID] = p
	return nil
}

func (r *stubPerfilRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.perfiles[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubPerfilRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.perfiles[id]; ok {
		p.Activo = true
	}
	return nil
}

var _ repository.PerfilRepository = (*stubPerfilRepo)(nil)

// ── Equipos ──────────────────────────────────────────────────────────────────

type stubEquipoRepo struct {
	equipos []*model.Equipo
	// failActualizar simula una base caída durante el recálculo.
	failActualizar bool
}

func newStubEquipoRepo() *stubEquipoRepo { return &stubEquipoRepo{} }

func (r *stubEquipoRepo) find(id uuid.UUID) *model.Equipo {
	for _, e := range r.equipos {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (r *stubEquipoRepo) Create(_ context.Context, e *model.Equipo) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.equipos = append(r.equipos, e)
	return nil
}

func (r *stubEquipoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Equipo, error) {
	e := r.find(id)
	if e == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *e
	return &copia, nil
}

func (r *stubEquipoRepo) List(_ context.Context, zonaID *uuid.UUID) ([]model.Equipo, error) {
	var out []model.Equipo
	for _, e := range r.equipos {
		if zonaID != nil && e.ZonaID != *zonaID {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEquipoRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(r.equipos))
	for i, e := range r.equipos {
		ids[i] = e.ID
	}
	return ids, nil
}

func (r *stubEquipoRepo) Update(_ context.Context, e *model.Equipo) error {
	if prev := r.find(e.ID); prev != nil {
		*prev = *e
	}
	return nil
}

func (r *stubEquipoRepo) ActualizarAgregados(_ context.Context, id uuid.UUID, puntos, goles int) error {
	if r.failActualizar {
		return errors.New("db caída")
	}
	e := r.find(id)
	if e == nil {
		return gorm.ErrRecordNotFound
	}
	e.PuntosTotales = puntos
	e.Goles = goles
	return nil
}

func (r *stubEquipoRepo) IncrementarGoles(_ context.Context, id uuid.UUID, delta int) error {
	e := r.find(id)
	if e == nil {
		return gorm.ErrRecordNotFound
	}
	e.Goles += delta
	return nil
}

func (r *stubEquipoRepo) DB() *gorm.DB { return nil }

var _ repository.EquipoRepository = (*stubEquipoRepo)(nil)

// ── Ventas ───────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas []*model.Venta
}

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{} }

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if filter.EquipoID != "" && v.EquipoID.String() != filter.EquipoID {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) SumPuntosEquipo(_ context.Context, equipoID uuid.UUID) (int, error) {
	total := 0
	for _, v := range r.ventas {
		if v.EquipoID == equipoID {
			total += v.Puntos
		}
	}
	return total, nil
}

func (r *stubVentaRepo) SumPuntosPorEquipo(_ context.Context) (map[uuid.UUID]int, error) {
	sums := make(map[uuid.UUID]int)
	for _, v := range r.ventas {
		sums[v.EquipoID] += v.Puntos
	}
	return sums, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Clientes captados ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes []*model.ClienteCompetencia
}

func newStubClienteRepo() *stubClienteRepo { return &stubClienteRepo{} }

func (r *stubClienteRepo) Create(_ context.Context, _ *gorm.DB, c *model.ClienteCompetencia) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes = append(r.clientes, c)
	return nil
}

func (r *stubClienteRepo) List(_ context.Context, filter dto.ClienteFilter) ([]model.ClienteCompetencia, int64, error) {
	var out []model.ClienteCompetencia
	for _, c := range r.clientes {
		if filter.EquipoID != "" && c.EquipoID.String() != filter.EquipoID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) CountEquipo(_ context.Context, equipoID uuid.UUID) (int, error) {
	total := 0
	for _, c := range r.clientes {
		if c.EquipoID == equipoID {
			total++
		}
	}
	return total, nil
}

func (r *stubClienteRepo) CountPorEquipo(_ context.Context) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	for _, c := range r.clientes {
		counts[c.EquipoID]++
	}
	return counts, nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteCompetenciaRepository = (*stubClienteRepo)(nil)

// ── Productos ────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) List(_ context.Context, incluirInactivos bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo || incluirInactivos {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Ajustes de goles ─────────────────────────────────────────────────────────

type stubAjusteRepo struct {
	ajustes []model.AjusteGoles
}

func newStubAjusteRepo() *stubAjusteRepo { return &stubAjusteRepo{} }

func (r *stubAjusteRepo) Create(_ context.Context, a *model.AjusteGoles) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.ajustes = append(r.ajustes, *a)
	return nil
}

func (r *stubAjusteRepo) ListEquipo(_ context.Context, equipoID uuid.UUID) ([]model.AjusteGoles, error) {
	var out []model.AjusteGoles
	for _, a := range r.ajustes {
		if a.EquipoID == equipoID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAjusteRepo) SumPorFuente(_ context.Context, equipoID uuid.UUID, fuente string) (int, error) {
	total := 0
	for _, a := range r.ajustes {
		if a.EquipoID == equipoID && a.Fuente == fuente {
			total += a.Delta
		}
	}
	return total, nil
}

var _ repository.AjusteGolesRepository = (*stubAjusteRepo)(nil)

// ── Penales ──────────────────────────────────────────────────────────────────

type stubPenalRepo struct {
	creditos  map[uuid.UUID]*model.Penal
	historial []model.HistorialPenal
}

func newStubPenalRepo() *stubPenalRepo {
	return &stubPenalRepo{creditos: make(map[uuid.UUID]*model.Penal)}
}

func (r *stubPenalRepo) FindByEquipo(_ context.Context, equipoID uuid.UUID) (*model.Penal, error) {
	p, ok := r.creditos[equipoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPenalRepo) Otorgar(_ context.Context, equipoID uuid.UUID, cantidad int) error {
	if p, ok := r.creditos[equipoID]; ok {
		p.Disponibles += cantidad
		return nil
	}
	r.creditos[equipoID] = &model.Penal{ID: uuid.New(), EquipoID: equipoID, Disponibles: cantidad}
	return nil
}

func (r *stubPenalRepo) Consumir(_ context.Context, equipoID uuid.UUID) error {
	p, ok := r.creditos[equipoID]
	if !ok || p.Disponibles <= 0 {
		return repository.ErrSinCreditos
	}
	p.Disponibles--
	return nil
}

func (r *stubPenalRepo) CreateHistorial(_ context.Context, h *model.HistorialPenal) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.historial = append(r.historial, *h)
	return nil
}

func (r *stubPenalRepo) ListHistorial(_ context.Context, equipoID uuid.UUID) ([]model.HistorialPenal, error) {
	var out []model.HistorialPenal
	for _, h := range r.historial {
		if h.EquipoID == equipoID {
			out = append(out, h)
		}
	}
	return out, nil
}

var _ repository.PenalRepository = (*stubPenalRepo)(nil)

// ── Config ───────────────────────────────────────────────────────────────────

type stubConfigRepo struct {
	valores map[string]string
}

func newStubConfigRepo() *stubConfigRepo {
	return &stubConfigRepo{valores: make(map[string]string)}
}

func (r *stubConfigRepo) Get(_ context.Context, clave string) (string, error) {
	v, ok := r.valores[clave]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubConfigRepo) Set(_ context.Context, clave, valor string) error {
	r.valores[clave] = valor
	return nil
}

func (r *stubConfigRepo) List(_ context.Context) ([]model.ConfigSistema, error) {
	var out []model.ConfigSistema
	for k, v := range r.valores {
		out = append(out, model.ConfigSistema{Clave: k, Valor: v})
	}
	return out, nil
}

var _ repository.ConfigRepository = (*stubConfigRepo)(nil)
