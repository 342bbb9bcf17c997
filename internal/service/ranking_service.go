package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"superganaderia/internal/dto"
	"superganaderia/internal/infra"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"
	"superganaderia/internal/scoring"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRankingGlobal = "ranking:global"
	rankingCacheTTL       = 30 * time.Second
)

func cacheKeyRankingZona(zonaID uuid.UUID) string {
	return "ranking:zona:" + zonaID.String()
}

// RankingService ordena equipos por puntos totales y asigna posiciones densas.
// Los totales salen siempre de la agregación en vivo (nunca del cache
// equipos.puntos_totales) y los goles mostrados se derivan del total al
// momento de la consulta, así ranking y goles son mutuamente consistentes
// aunque el contador almacenado haya derivado por bonus de penales.
type RankingService interface {
	Ranking(ctx context.Context, filter dto.RankingFilter) (*dto.RankingResponse, error)
	PosicionEquipo(ctx context.Context, equipoID uuid.UUID) (*dto.PosicionEquipoResponse, error)
	ReportePDF(ctx context.Context, filter dto.RankingFilter) ([]byte, error)
}

type rankingService struct {
	equipoRepo  repository.EquipoRepository
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteCompetenciaRepository
	configSvc   ConfigService
	rdb         *redis.Client
}

func NewRankingService(
	equipoRepo repository.EquipoRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteCompetenciaRepository,
	configSvc ConfigService,
	rdb *redis.Client,
) RankingService {
	return &rankingService{
		equipoRepo:  equipoRepo,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		configSvc:   configSvc,
		rdb:         rdb,
	}
}

func (s *rankingService) Ranking(ctx context.Context, filter dto.RankingFilter) (*dto.RankingResponse, error) {
	var zonaID *uuid.UUID
	cacheKey := cacheKeyRankingGlobal
	if filter.ZonaID != "" {
		zid, err := uuid.Parse(filter.ZonaID)
		if err != nil {
			return nil, fmt.Errorf("zona_id inválido: %w", err)
		}
		zonaID = &zid
		cacheKey = cacheKeyRankingZona(zid)
	}

	// El límite solo recorta la vista; el cache guarda el ranking completo.
	if resp := s.cacheGet(ctx, cacheKey); resp != nil {
		return recortar(resp, filter.Limit), nil
	}

	filas, err := s.calcular(ctx, zonaID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RankingResponse{Data: make([]dto.FilaRankingResponse, len(filas)), Total: len(filas)}
	for i, f := range filas {
		resp.Data[i] = dto.FilaRankingResponse{
			Posicion: f.Posicion,
			EquipoID: f.EquipoID.String(),
			Equipo:   f.Equipo,
			Zona:     f.Zona,
			Puntos:   f.Puntos,
			Goles:    f.Goles,
		}
	}
	s.cacheSet(ctx, cacheKey, resp)
	return recortar(resp, filter.Limit), nil
}

// calcular arma el ranking desde la agregación en vivo.
func (s *rankingService) calcular(ctx context.Context, zonaID *uuid.UUID) ([]scoring.FilaRanking, error) {
	equipos, err := s.equipoRepo.List(ctx, zonaID)
	if err != nil {
		return nil, err
	}
	ventaSums, err := s.ventaRepo.SumPuntosPorEquipo(ctx)
	if err != nil {
		return nil, err
	}
	clienteCounts, err := s.clienteRepo.CountPorEquipo(ctx)
	if err != nil {
		return nil, err
	}

	ppg := s.configSvc.PuntosParaGol(ctx)
	politica, puntosPorCliente := s.configSvc.PoliticaCliente(ctx)

	filas := make([]scoring.FilaRanking, 0, len(equipos))
	for _, e := range equipos {
		puntos := ventaSums[e.ID]
		clientes := clienteCounts[e.ID]
		if politica == model.PoliticaPlano {
			puntos += scoring.PuntosDesdeClientesPlano(clientes, puntosPorCliente)
		} else {
			puntos += scoring.PuntosDesdeClientesLote(clientes, ppg)
		}
		zona := ""
		if e.Zona != nil {
			zona = e.Zona.Nombre
		}
		filas = append(filas, scoring.FilaRanking{
			EquipoID: e.ID,
			Equipo:   e.Nombre,
			ZonaID:   e.ZonaID,
			Zona:     zona,
			Puntos:   puntos,
			Goles:    scoring.GolesDesdePuntos(puntos, ppg),
		})
	}
	scoring.Ordenar(filas)
	return filas, nil
}

// PosicionEquipo calcula el ranking global y busca al equipo linealmente.
// Un equipo ausente no es error: Posicion queda en nil y TotalEquipos trae
// el total de equipos rankeados.
func (s *rankingService) PosicionEquipo(ctx context.Context, equipoID uuid.UUID) (*dto.PosicionEquipoResponse, error) {
	filas, err := s.calcular(ctx, nil)
	if err != nil {
		return nil, err
	}
	resp := &dto.PosicionEquipoResponse{
		EquipoID:     equipoID.String(),
		TotalEquipos: len(filas),
	}
	for _, f := range filas {
		if f.EquipoID == equipoID {
			pos := f.Posicion
			resp.Posicion = &pos
			break
		}
	}
	return resp, nil
}

func (s *rankingService) ReportePDF(ctx context.Context, filter dto.RankingFilter) ([]byte, error) {
	var zonaID *uuid.UUID
	titulo := "Ranking General"
	if filter.ZonaID != "" {
		zid, err := uuid.Parse(filter.ZonaID)
		if err != nil {
			return nil, fmt.Errorf("zona_id inválido: %w", err)
		}
		zonaID = &zid
	}
	filas, err := s.calcular(ctx, zonaID)
	if err != nil {
		return nil, err
	}
	if zonaID != nil && len(filas) > 0 {
		titulo = "Ranking — Zona " + filas[0].Zona
	}
	return infra.RankingPDF(titulo, filas)
}

// ── Cache ────────────────────────────────────────────────────────────────────

func (s *rankingService) cacheGet(ctx context.Context, key string) *dto.RankingResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil // miss o redis caído: seguimos a la base
	}
	var resp dto.RankingResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *rankingService) cacheSet(ctx context.Context, key string, resp *dto.RankingResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, rankingCacheTTL).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("no se pudo cachear el ranking")
	}
}

func recortar(resp *dto.RankingResponse, limit int) *dto.RankingResponse {
	if limit <= 0 || limit >= len(resp.Data) {
		return resp
	}
	return &dto.RankingResponse{Data: resp.Data[:limit], Total: resp.Total}
}
