package service

import (
	"context"
	"errors"
	"fmt"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"
	"superganaderia/internal/scoring"
	"superganaderia/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PuntajeService es el ledger de puntos: registra eventos que suman
// (ventas y clientes captados) y mantiene el cache de agregados por equipo.
//
// Estrategia de totales: la fuente de verdad es siempre la agregación en vivo
// (SUM sobre ventas + política de clientes); equipos.puntos_totales/goles es
// solo un cache que se refresca con un recálculo completo e idempotente.
// Nunca se incrementa el contador con leer-sumar-escribir en aplicación, así
// que dos registros concurrentes no pueden perder incrementos: el último
// recálculo que corre deja el total correcto.
type PuntajeService interface {
	RegistrarVenta(ctx context.Context, representanteID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	RegistrarCliente(ctx context.Context, representanteID uuid.UUID, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	ListClientes(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	// RecalcularEquipo es la reconciliación autoritativa de un equipo
	// (equivalente a fix-team-points para un solo equipo).
	RecalcularEquipo(ctx context.Context, equipoID uuid.UUID) error
	// RecalcularTodos recorre todos los equipos; devuelve cuántos procesó.
	RecalcularTodos(ctx context.Context) (int, error)
}

type puntajeService struct {
	ventaRepo    repository.VentaRepository
	clienteRepo  repository.ClienteCompetenciaRepository
	productoRepo repository.ProductoRepository
	perfilRepo   repository.PerfilRepository
	equipoRepo   repository.EquipoRepository
	ajusteRepo   repository.AjusteGolesRepository
	configSvc    ConfigService
	dispatcher   *worker.Dispatcher
	rdb          *redis.Client
}

func NewPuntajeService(
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteCompetenciaRepository,
	productoRepo repository.ProductoRepository,
	perfilRepo repository.PerfilRepository,
	equipoRepo repository.EquipoRepository,
	ajusteRepo repository.AjusteGolesRepository,
	configSvc ConfigService,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) PuntajeService {
	return &puntajeService{
		ventaRepo:    ventaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		perfilRepo:   perfilRepo,
		equipoRepo:   equipoRepo,
		ajusteRepo:   ajusteRepo,
		configSvc:    configSvc,
		dispatcher:   dispatcher,
		rdb:          rdb,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// equipoDelRepresentante resuelve el equipo del perfil que registra.
func (s *puntajeService) equipoDelRepresentante(ctx context.Context, representanteID uuid.UUID) (uuid.UUID, error) {
	perfil, err := s.perfilRepo.FindByID(ctx, representanteID)
	if err != nil {
		return uuid.Nil, errors.New("perfil no encontrado")
	}
	if perfil.EquipoID == nil {
		return uuid.Nil, ErrSinEquipoAsignado
	}
	return *perfil.EquipoID, nil
}

// ── RegistrarVenta ───────────────────────────────────────────────────────────
// Inserta la venta con snapshot de puntos y monto; ediciones posteriores del
// producto no tocan ventas históricas. Si el recálculo del agregado falla
// después del insert, devuelve la respuesta junto con *AgregadoPendienteError
// y encola un reintento: el evento nunca se duplica.

func (s *puntajeService) RegistrarVenta(ctx context.Context, representanteID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	equipoID, err := s.equipoDelRepresentante(ctx, representanteID)
	if err != nil {
		return nil, err
	}
	if req.Cantidad <= 0 {
		return nil, errors.New("la cantidad debe ser un entero positivo")
	}

	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}
	producto, err := s.productoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("producto %s no encontrado", req.ProductoID)
	}
	if !producto.Activo {
		return nil, fmt.Errorf("producto %s está inactivo", producto.Nombre)
	}

	venta := model.Venta{
		EquipoID:        equipoID,
		ProductoID:      pid,
		RepresentanteID: representanteID,
		Cantidad:        req.Cantidad,
		Puntos:          req.Cantidad * producto.Puntos,
		Monto:           producto.PrecioLista.Mul(decimal.NewFromInt(int64(req.Cantidad))),
	}
	if err := runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		return s.ventaRepo.Create(ctx, tx, &venta)
	}); err != nil {
		return nil, err
	}

	resp := ventaToResponse(&venta, producto.Nombre)
	if err := s.RecalcularEquipo(ctx, equipoID); err != nil {
		s.encolarRecalculo(ctx, equipoID)
		return resp, &AgregadoPendienteError{EquipoID: equipoID, EventoID: venta.ID, Causa: err}
	}
	return resp, nil
}

// ── RegistrarCliente ─────────────────────────────────────────────────────────
// Un representante sin equipo no escribe nada. El fallo del insert es fatal;
// el fallo del recálculo posterior es éxito parcial (mismas semánticas que
// RegistrarVenta).

func (s *puntajeService) RegistrarCliente(ctx context.Context, representanteID uuid.UUID, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error) {
	equipoID, err := s.equipoDelRepresentante(ctx, representanteID)
	if err != nil {
		return nil, err
	}

	cliente := model.ClienteCompetencia{
		EquipoID:          equipoID,
		RepresentanteID:   representanteID,
		NombreCliente:     req.NombreCliente,
		Finca:             req.Finca,
		Telefono:          req.Telefono,
		ProveedorAnterior: req.ProveedorAnterior,
	}
	if err := runTx(ctx, s.clienteRepo.DB(), func(tx *gorm.DB) error {
		return s.clienteRepo.Create(ctx, tx, &cliente)
	}); err != nil {
		return nil, err
	}

	resp := clienteToResponse(&cliente)
	if err := s.RecalcularEquipo(ctx, equipoID); err != nil {
		s.encolarRecalculo(ctx, equipoID)
		return resp, &AgregadoPendienteError{EquipoID: equipoID, EventoID: cliente.ID, Causa: err}
	}
	return resp, nil
}

// ── Recálculo ────────────────────────────────────────────────────────────────

// RecalcularEquipo recalcula desde cero los agregados de un equipo:
//
//	puntos = SUM(ventas.puntos) + puntos por clientes según política
//	goles  = floor(puntos / puntos_para_gol) + SUM(ajustes fuente penal)
//
// y los escribe con una sola sentencia. Es idempotente: correrlo dos veces
// deja el mismo resultado, por eso sirve tanto inline como desde el worker.
func (s *puntajeService) RecalcularEquipo(ctx context.Context, equipoID uuid.UUID) error {
	ppg := s.configSvc.PuntosParaGol(ctx)

	puntosVentas, err := s.ventaRepo.SumPuntosEquipo(ctx, equipoID)
	if err != nil {
		return fmt.Errorf("sumando ventas: %w", err)
	}
	clientes, err := s.clienteRepo.CountEquipo(ctx, equipoID)
	if err != nil {
		return fmt.Errorf("contando clientes: %w", err)
	}

	politica, puntosPorCliente := s.configSvc.PoliticaCliente(ctx)
	var puntosClientes int
	if politica == model.PoliticaPlano {
		puntosClientes = scoring.PuntosDesdeClientesPlano(clientes, puntosPorCliente)
	} else {
		puntosClientes = scoring.PuntosDesdeClientesLote(clientes, ppg)
	}

	bonusPenales, err := s.ajusteRepo.SumPorFuente(ctx, equipoID, model.FuentePenal)
	if err != nil {
		return fmt.Errorf("sumando bonus de penales: %w", err)
	}

	total := puntosVentas + puntosClientes
	goles := scoring.GolesDesdePuntos(total, ppg) + bonusPenales

	prev, err := s.equipoRepo.FindByID(ctx, equipoID)
	if err != nil {
		return fmt.Errorf("equipo no encontrado: %w", err)
	}

	if err := s.equipoRepo.ActualizarAgregados(ctx, equipoID, total, goles); err != nil {
		return fmt.Errorf("actualizando agregados: %w", err)
	}

	// Bitácora de ajustes: solo deltas reales, best-effort (no invalida el recálculo).
	if delta := goles - prev.Goles; delta != 0 {
		ajuste := model.AjusteGoles{
			EquipoID: equipoID,
			Fuente:   model.FuentePuntos,
			Delta:    delta,
			Motivo:   fmt.Sprintf("recálculo: %d puntos con ratio %d", total, ppg),
		}
		if err := s.ajusteRepo.Create(ctx, &ajuste); err != nil {
			log.Warn().Str("equipo_id", equipoID.String()).Err(err).
				Msg("no se pudo registrar el ajuste de goles")
		}
	}

	s.invalidarRankingCache(ctx, prev.ZonaID)
	return nil
}

func (s *puntajeService) RecalcularTodos(ctx context.Context) (int, error) {
	ids, err := s.equipoRepo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}
	procesados := 0
	var firstErr error
	for _, id := range ids {
		if err := s.RecalcularEquipo(ctx, id); err != nil {
			log.Error().Str("equipo_id", id.String()).Err(err).Msg("recálculo fallido")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		procesados++
	}
	return procesados, firstErr
}

func (s *puntajeService) encolarRecalculo(ctx context.Context, equipoID uuid.UUID) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueRecalculo(ctx, worker.RecalculoPayload{EquipoID: equipoID.String()}); err != nil {
		log.Error().Str("equipo_id", equipoID.String()).Err(err).
			Msg("no se pudo encolar el reintento de recálculo")
	}
}

func (s *puntajeService) invalidarRankingCache(ctx context.Context, zonaID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKeyRankingGlobal, cacheKeyRankingZona(zonaID)).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de ranking")
	}
}

// ── Listados ─────────────────────────────────────────────────────────────────

func (s *puntajeService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.ventaRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		nombre := ""
		if v.Producto != nil {
			nombre = v.Producto.Nombre
		}
		items = append(items, *ventaToResponse(&v, nombre))
	}
	return &dto.VentaListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *puntajeService) ListClientes(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	clientes, total, err := s.clienteRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, *clienteToResponse(&c))
	}
	return &dto.ClienteListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func ventaToResponse(v *model.Venta, producto string) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		EquipoID:  v.EquipoID.String(),
		Producto:  producto,
		Cantidad:  v.Cantidad,
		Puntos:    v.Puntos,
		Monto:     v.Monto,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func clienteToResponse(c *model.ClienteCompetencia) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                c.ID.String(),
		EquipoID:          c.EquipoID.String(),
		NombreCliente:     c.NombreCliente,
		Finca:             c.Finca,
		Telefono:          c.Telefono,
		ProveedorAnterior: c.ProveedorAnterior,
		CreatedAt:         c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
