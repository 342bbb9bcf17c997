package service

import (
	"context"
	"errors"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService agrupa el CRUD administrativo de zonas, distribuidores,
// equipos y productos. Editar los puntos de un producto nunca toca ventas
// históricas: cada venta guarda su snapshot.
type CatalogoService interface {
	CrearZona(ctx context.Context, req dto.CrearZonaRequest) (*dto.ZonaResponse, error)
	ListarZonas(ctx context.Context) ([]dto.ZonaResponse, error)

	CrearDistribuidor(ctx context.Context, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error)
	ListarDistribuidores(ctx context.Context) ([]dto.DistribuidorResponse, error)

	CrearEquipo(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error)
	ObtenerEquipo(ctx context.Context, id uuid.UUID) (*dto.EquipoResponse, error)
	ListarEquipos(ctx context.Context, zonaID *uuid.UUID) ([]dto.EquipoResponse, error)
	ActualizarEquipo(ctx context.Context, id uuid.UUID, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error)

	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ListarProductos(ctx context.Context, incluirInactivos bool) ([]dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	zonaRepo         repository.ZonaRepository
	distribuidorRepo repository.DistribuidorRepository
	equipoRepo       repository.EquipoRepository
	productoRepo     repository.ProductoRepository
}

func NewCatalogoService(
	zonaRepo repository.ZonaRepository,
	distribuidorRepo repository.DistribuidorRepository,
	equipoRepo repository.EquipoRepository,
	productoRepo repository.ProductoRepository,
) CatalogoService {
	return &catalogoService{
		zonaRepo:         zonaRepo,
		distribuidorRepo: distribuidorRepo,
		equipoRepo:       equipoRepo,
		productoRepo:     productoRepo,
	}
}

// ─── Zonas ───────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearZona(ctx context.Context, req dto.CrearZonaRequest) (*dto.ZonaResponse, error) {
	zona := &model.Zona{Nombre: req.Nombre}
	if err := s.zonaRepo.Create(ctx, zona); err != nil {
		return nil, err
	}
	return &dto.ZonaResponse{ID: zona.ID.String(), Nombre: zona.Nombre}, nil
}

func (s *catalogoService) ListarZonas(ctx context.Context) ([]dto.ZonaResponse, error) {
	zonas, err := s.zonaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ZonaResponse, len(zonas))
	for i, z := range zonas {
		resp[i] = dto.ZonaResponse{ID: z.ID.String(), Nombre: z.Nombre}
	}
	return resp, nil
}

// ─── Distribuidores ──────────────────────────────────────────────────────────

func (s *catalogoService) CrearDistribuidor(ctx context.Context, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	d := &model.Distribuidor{Nombre: req.Nombre, Activo: true}
	if err := s.distribuidorRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return &dto.DistribuidorResponse{ID: d.ID.String(), Nombre: d.Nombre, Activo: d.Activo}, nil
}

func (s *catalogoService) ListarDistribuidores(ctx context.Context) ([]dto.DistribuidorResponse, error) {
	distribuidores, err := s.distribuidorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DistribuidorResponse, len(distribuidores))
	for i, d := range distribuidores {
		resp[i] = dto.DistribuidorResponse{ID: d.ID.String(), Nombre: d.Nombre, Activo: d.Activo}
	}
	return resp, nil
}

// ─── Equipos ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearEquipo(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error) {
	zonaID, err := uuid.Parse(req.ZonaID)
	if err != nil {
		return nil, errors.New("zona_id inválido")
	}
	distribuidorID, err := uuid.Parse(req.DistribuidorID)
	if err != nil {
		return nil, errors.New("distribuidor_id inválido")
	}
	if _, err := s.zonaRepo.FindByID(ctx, zonaID); err != nil {
		return nil, errors.New("zona no encontrada")
	}
	if _, err := s.distribuidorRepo.FindByID(ctx, distribuidorID); err != nil {
		return nil, errors.New("distribuidor no encontrado")
	}

	equipo := &model.Equipo{Nombre: req.Nombre, ZonaID: zonaID, DistribuidorID: distribuidorID}
	if err := s.equipoRepo.Create(ctx, equipo); err != nil {
		return nil, err
	}
	resp := equipoToResponse(equipo)
	return &resp, nil
}

func (s *catalogoService) ObtenerEquipo(ctx context.Context, id uuid.UUID) (*dto.EquipoResponse, error) {
	equipo, err := s.equipoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("equipo no encontrado")
	}
	resp := equipoToResponse(equipo)
	return &resp, nil
}

func (s *catalogoService) ListarEquipos(ctx context.Context, zonaID *uuid.UUID) ([]dto.EquipoResponse, error) {
	equipos, err := s.equipoRepo.List(ctx, zonaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EquipoResponse, len(equipos))
	for i := range equipos {
		resp[i] = equipoToResponse(&equipos[i])
	}
	return resp, nil
}

func (s *catalogoService) ActualizarEquipo(ctx context.Context, id uuid.UUID, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error) {
	equipo, err := s.equipoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("equipo no encontrado")
	}
	if req.Nombre != "" {
		equipo.Nombre = req.Nombre
	}
	if req.ZonaID != "" {
		zonaID, err := uuid.Parse(req.ZonaID)
		if err != nil {
			return nil, errors.New("zona_id inválido")
		}
		equipo.ZonaID = zonaID
	}
	if req.DistribuidorID != "" {
		distribuidorID, err := uuid.Parse(req.DistribuidorID)
		if err != nil {
			return nil, errors.New("distribuidor_id inválido")
		}
		equipo.DistribuidorID = distribuidorID
	}
	if err := s.equipoRepo.Update(ctx, equipo); err != nil {
		return nil, err
	}
	resp := equipoToResponse(equipo)
	return &resp, nil
}

// ─── Productos ───────────────────────────────────────────────────────────────

func (s *catalogoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Puntos < 0 {
		return nil, errors.New("los puntos del producto no pueden ser negativos")
	}
	producto := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Puntos:      req.Puntos,
		PrecioLista: req.PrecioLista,
		Activo:      true,
	}
	if err := s.productoRepo.Create(ctx, producto); err != nil {
		return nil, err
	}
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *catalogoService) ListarProductos(ctx context.Context, incluirInactivos bool) ([]dto.ProductoResponse, error) {
	productos, err := s.productoRepo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	return resp, nil
}

func (s *catalogoService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Nombre != "" {
		producto.Nombre = req.Nombre
	}
	if req.Descripcion != nil {
		producto.Descripcion = req.Descripcion
	}
	if req.Puntos != nil {
		if *req.Puntos < 0 {
			return nil, errors.New("los puntos del producto no pueden ser negativos")
		}
		producto.Puntos = *req.Puntos
	}
	if req.PrecioLista != nil {
		producto.PrecioLista = *req.PrecioLista
	}
	if err := s.productoRepo.Update(ctx, producto); err != nil {
		return nil, err
	}
	resp := productoToResponse(producto)
	return &resp, nil
}

func (s *catalogoService) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	return s.productoRepo.Desactivar(ctx, id)
}

func equipoToResponse(e *model.Equipo) dto.EquipoResponse {
	resp := dto.EquipoResponse{
		ID:             e.ID.String(),
		Nombre:         e.Nombre,
		ZonaID:         e.ZonaID.String(),
		DistribuidorID: e.DistribuidorID.String(),
		PuntosTotales:  e.PuntosTotales,
		Goles:          e.Goles,
	}
	if e.Zona != nil {
		resp.Zona = e.Zona.Nombre
	}
	if e.Distribuidor != nil {
		resp.Distribuidor = e.Distribuidor.Nombre
	}
	return resp
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Puntos:      p.Puntos,
		PrecioLista: p.PrecioLista,
		Activo:      p.Activo,
	}
}
